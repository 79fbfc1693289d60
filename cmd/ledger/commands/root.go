package commands

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ledger",
		Short:         "Copy-trading investment ledger and performance-fee settlement",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newServeCmd(),
		newSettleCmd(),
		newRevenueCmd(),
		newExportCmd(),
		newCatalogCmd(),
	)

	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
