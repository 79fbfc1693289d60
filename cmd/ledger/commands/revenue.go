package commands

import (
	"copytrade/cmd"
	"fmt"

	"github.com/spf13/cobra"
)

func newRevenueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revenue",
		Short: "Print platform fee revenue across open subscriptions",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(c.Context())
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			revenue, err := deps.InvestmentService.PlatformRevenue(c.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "total:    %s\n", revenue.Total.StringFixed(2))
			fmt.Fprintf(c.OutOrStdout(), "included: %d\n", revenue.Included)
			fmt.Fprintf(c.OutOrStdout(), "skipped:  %d\n", revenue.Skipped)
			return nil
		},
	}
}
