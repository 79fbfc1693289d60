package commands

import (
	"copytrade/internal/domain"
	"copytrade/internal/service"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	filter := service.CatalogFilter{}

	c := &cobra.Command{
		Use:   "catalog",
		Short: "List published strategies",
		RunE: func(c *cobra.Command, args []string) error {
			strategies, err := loadCatalog()
			if err != nil {
				return err
			}
			out, err := service.NewCatalogService(strategies).List(filter)
			if err != nil {
				return err
			}
			return printCatalog(c.OutOrStdout(), out)
		},
	}
	c.Flags().StringVar(&filter.Search, "search", "", "match name or asset")
	c.Flags().StringVar(&filter.Type, "type", "", "strategy type")
	c.Flags().StringVar(&filter.Expression, "filter", "", `boolean expression, e.g. 'performanceFeeRate <= 0.1'`)

	return c
}

func printCatalog(w io.Writer, strategies []domain.Strategy) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tRISK\tASSET\tMIN\tFEE\tROI")
	for _, s := range strategies {
		fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%s\t%s\t%s%%\t%s%%\n",
			s.ID,
			s.Name,
			s.Type,
			s.RiskLevel,
			s.AssetReference,
			s.MinInvestment.StringFixed(0),
			s.FeePercent().String(),
			s.Roi.String(),
		)
	}
	return tw.Flush()
}
