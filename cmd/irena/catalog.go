package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/germanamz/irena/cmd/irena/internal/format"
	"github.com/germanamz/irena/pkg/site"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var (
		width int
		raw   bool
	)

	cmd := &cobra.Command{
		Use:       "catalog [collections|bestsellers|testimonials]",
		Short:     "Print the catalog, or one section of it",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{site.SectionCollections, site.SectionBestsellers, "testimonials"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := site.Resolve(opts.sitePath())
			if err != nil {
				return err
			}

			section := ""
			if len(args) == 1 {
				section = args[0]
			}
			md := catalogMarkdown(cfg, section)

			return printMarkdown(cmd.OutOrStdout(), md, width, raw)
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "wrap width")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown source instead of rendering it")

	return cmd
}

func printMarkdown(w io.Writer, md string, width int, raw bool) error {
	if raw {
		_, err := io.WriteString(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("irena: markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("irena: render catalog: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// catalogMarkdown describes the catalog as markdown. An empty section
// selects everything.
func catalogMarkdown(cfg site.Config, section string) string {
	var b strings.Builder
	all := section == ""

	if all {
		fmt.Fprintf(&b, "# %s\n\n", cfg.Brand)
		if cfg.Tagline != "" {
			fmt.Fprintf(&b, "_%s_\n\n", cfg.Tagline)
		}
	}

	if all || section == site.SectionCollections {
		b.WriteString("## Колекции\n\n")
		for _, c := range cfg.Collections {
			fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", c.Title, c.ID, c.Description)
		}
		b.WriteString("\n")
	}

	if all || section == site.SectionBestsellers {
		b.WriteString("## Бестселъри\n\n")
		b.WriteString("| ID | Име | Цена | Детайли |\n|---|---|---|---|\n")
		for _, p := range cfg.Products {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.ID, p.Name, format.FormatPrice(p.Price), p.Details)
		}
		b.WriteString("\n")
	}

	if all || section == "testimonials" {
		b.WriteString("## Отзиви\n\n")
		for _, t := range cfg.Testimonials {
			fmt.Fprintf(&b, "> %s\n>\n> – %s\n\n", t.Text, t.Author)
		}
	}

	return b.String()
}
