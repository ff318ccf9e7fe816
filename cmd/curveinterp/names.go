package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/mocurve/interp"
)

func (a *app) namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List registered interpolators and extrapolators",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.stdout, "Interpolators:")
			for _, name := range interp.InterpolatorNames() {
				fmt.Fprintf(a.stdout, "  %s\n", name)
			}
			fmt.Fprintln(a.stdout, "Extrapolators:")
			for _, name := range interp.ExtrapolatorNames() {
				fmt.Fprintf(a.stdout, "  %s\n", name)
			}
			return nil
		},
	}
}
