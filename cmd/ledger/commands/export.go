package commands

import (
	"copytrade/api"
	"copytrade/cmd"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "export",
		Short: "Export subscription views as csv",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(c.Context())
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			views, err := deps.InvestmentService.ListViews(c.Context())
			if err != nil {
				return err
			}

			var w io.Writer = c.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			return api.WriteInvestmentsCsv(views, w)
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "output file, defaults to stdout")

	return c
}
