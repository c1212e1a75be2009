package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/germanamz/irena/pkg/irenadir"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	dir        string
	configPath string
	envFile    string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "irena",
		Short: "Irena jewelry storefront in the terminal",
		Long: `irena renders the Irena storefront as a scrolling terminal page with
draggable product carousels.

Run without arguments to open the page. The catalog is read from --config
(or <dir>/site.yaml, see "irena init") when that file exists and from the
built-in catalog otherwise; edits to the file are picked up while the page is
open.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadDotEnv(opts.envFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dir, "dir", irenadir.DefaultRoot, "path to the .irena directory")
	flags.StringVar(&opts.configPath, "config", "", "path to the site catalog (default: <dir>/site.yaml, falling back to the built-in catalog)")
	flags.StringVar(&opts.envFile, "env", ".env", "path to .env file (ignored if missing)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file (default with --verbose: <dir>/local/irena.log)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log carousel debug events")

	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newCatalogCmd(opts))
	root.AddCommand(newValidateCmd(opts))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// sitePath is the catalog location: --config when given, otherwise the
// catalog inside --dir.
func (o *rootOptions) sitePath() string {
	if o.configPath != "" {
		return o.configPath
	}
	return irenadir.New(o.dir).SitePath()
}

// logPath is where logs go, or "" to discard them.
func (o *rootOptions) logPath() (string, error) {
	if o.logFile != "" || !o.verbose {
		return o.logFile, nil
	}
	d := irenadir.New(o.dir)
	if err := irenadir.EnsureStructure(d); err != nil {
		return "", err
	}
	return d.LogPath(), nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
