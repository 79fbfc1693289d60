package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownStrategy         = errors.New("unknown strategy")
	ErrBelowMinimumInvestment  = errors.New("below minimum investment")
	ErrAdvisoryUnavailable     = errors.New("advisory unavailable")
	ErrInvalidStrategy         = errors.New("invalid strategy")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrInvalidValuation        = errors.New("invalid valuation")
	ErrInvalidAdvisoryRequest  = errors.New("invalid advisory request")
	ErrInvalidFilter           = errors.New("invalid catalog filter")
)

// MinimumInvestmentError carries the threshold so callers can show it.
type MinimumInvestmentError struct {
	StrategyID    string
	MinInvestment decimal.Decimal
	Amount        decimal.Decimal
}

func (e MinimumInvestmentError) Error() string {
	return fmt.Sprintf(
		"%s: strategy %s requires at least %s, got %s",
		ErrBelowMinimumInvestment,
		e.StrategyID,
		e.MinInvestment.StringFixed(2),
		e.Amount.StringFixed(2),
	)
}

func (e MinimumInvestmentError) Unwrap() error {
	return ErrBelowMinimumInvestment
}
