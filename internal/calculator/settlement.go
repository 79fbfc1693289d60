package calculator

import (
	"copytrade/internal/domain"
	"fmt"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Settle computes the settlement for one subscription. The caller resolves
// the strategy; a nil or mismatched strategy is ErrUnknownStrategy.
//
// The fee is charged on current gain only. A position that went up and
// came back to break-even owes nothing: there is no high-water mark.
func Settle(strategy *domain.Strategy, subscription domain.Subscription) (*domain.Settlement, error) {
	if strategy == nil || strategy.ID != subscription.StrategyID {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStrategy, subscription.StrategyID)
	}

	grossPnl := subscription.CurrentValue.Sub(subscription.InvestedAmount)

	fee := decimal.Zero
	if grossPnl.IsPositive() {
		fee = grossPnl.Mul(strategy.PerformanceFeeRate)
	}

	return &domain.Settlement{
		GrossPnl:        grossPnl,
		Fee:             fee,
		NetPnl:          grossPnl.Sub(fee),
		GrossPnlPercent: grossPnl.Div(subscription.InvestedAmount).Mul(oneHundred),
	}, nil
}

// AggregatePlatformRevenue sums fees across open subscriptions. Closed
// subscriptions are left out (their fees were realized on close) and
// subscriptions whose strategy is not in the catalog are skipped.
func AggregatePlatformRevenue(strategies []domain.Strategy, subscriptions []domain.Subscription) domain.PlatformRevenue {
	catalog := domain.StrategyMap(strategies)

	out := domain.PlatformRevenue{
		Total: decimal.Zero,
	}
	for _, sub := range subscriptions {
		if sub.IsClosed() {
			continue
		}
		var strategy *domain.Strategy
		if s, ok := catalog[sub.StrategyID]; ok {
			strategy = &s
		}
		settlement, err := Settle(strategy, sub)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Total = out.Total.Add(settlement.Fee)
		out.Included++
	}

	return out
}

// UnresolvedSubscriptions lists the open subscriptions the revenue rollup
// had to skip, so callers can report them.
func UnresolvedSubscriptions(strategies []domain.Strategy, subscriptions []domain.Subscription) []domain.Subscription {
	catalog := domain.StrategyMap(strategies)
	out := []domain.Subscription{}
	for _, sub := range subscriptions {
		if sub.IsClosed() {
			continue
		}
		if _, ok := catalog[sub.StrategyID]; !ok {
			out = append(out, sub)
		}
	}
	return out
}
