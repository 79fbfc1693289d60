package commands

import (
	"copytrade/internal/calculator"
	"copytrade/internal/domain"
	"copytrade/internal/repository"
	"copytrade/internal/util"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func loadCatalog() (repository.StrategyRepository, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	if secrets.CatalogPath != "" {
		return repository.NewStrategyRepositoryFromFile(secrets.CatalogPath)
	}
	return repository.NewDefaultStrategyRepository()
}

func newSettleCmd() *cobra.Command {
	var strategyID, invested, current string

	c := &cobra.Command{
		Use:   "settle",
		Short: "Compute gross pnl, fee and net pnl for a position",
		RunE: func(c *cobra.Command, args []string) error {
			strategies, err := loadCatalog()
			if err != nil {
				return err
			}
			return settle(c.OutOrStdout(), strategies, strategyID, invested, current)
		},
	}
	c.Flags().StringVar(&strategyID, "strategy", "", "strategy id")
	c.Flags().StringVar(&invested, "invested", "", "invested amount")
	c.Flags().StringVar(&current, "current", "", "current value")
	c.MarkFlagRequired("strategy")
	c.MarkFlagRequired("invested")
	c.MarkFlagRequired("current")

	return c
}

func settle(w io.Writer, strategies repository.StrategyRepository, strategyID, invested, current string) error {
	strategy, err := strategies.Get(strategyID)
	if err != nil {
		return err
	}
	investedAmount, err := decimal.NewFromString(invested)
	if err != nil {
		return fmt.Errorf("invalid invested amount %q: %w", invested, err)
	}
	currentValue, err := decimal.NewFromString(current)
	if err != nil {
		return fmt.Errorf("invalid current value %q: %w", current, err)
	}
	if !investedAmount.IsPositive() {
		return fmt.Errorf("invested amount must be > 0, got %s", investedAmount)
	}

	settlement, err := calculator.Settle(strategy, domain.Subscription{
		StrategyID:     strategy.ID,
		InvestedAmount: investedAmount,
		CurrentValue:   currentValue,
		Status:         domain.SubscriptionStatusRunning,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "strategy:   %s (%s)\n", strategy.Name, strategy.FeeDisclosure())
	fmt.Fprintf(w, "gross pnl:  %s (%s%%)\n", settlement.GrossPnl.StringFixed(2), settlement.GrossPnlPercent.StringFixed(2))
	fmt.Fprintf(w, "fee:        %s\n", settlement.Fee.StringFixed(2))
	fmt.Fprintf(w, "net pnl:    %s\n", settlement.NetPnl.StringFixed(2))
	return nil
}
