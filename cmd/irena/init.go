package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/germanamz/irena/pkg/irenadir"
	"github.com/germanamz/irena/pkg/site"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .irena directory with an editable copy of the built-in catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := irenadir.New(opts.dir)
			if err := irenadir.Bootstrap(d, site.DefaultYAML(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", d.Root())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing site catalog")

	return cmd
}
