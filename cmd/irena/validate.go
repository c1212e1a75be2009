package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/germanamz/irena/pkg/site"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var against string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the site catalog and optionally diff its slides against another catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, source, err := site.Resolve(opts.sitePath())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ok: %s (%d products, %d collections, %d testimonials)\n",
				source, len(cfg.Products), len(cfg.Collections), len(cfg.Testimonials))

			if against == "" {
				return nil
			}

			other, err := site.LoadConfig(against)
			if err != nil {
				return err
			}
			for _, section := range []string{site.SectionCollections, site.SectionBestsellers} {
				diff, err := site.DiffSlides(section, other.Slides(section), cfg.Slides(section))
				if err != nil {
					return err
				}
				fmt.Fprint(out, diff)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&against, "against", "", "catalog file to diff slides against")

	return cmd
}
