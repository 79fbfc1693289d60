package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubscriptionStatusRunning SubscriptionStatus = "Running"
	SubscriptionStatusPaused  SubscriptionStatus = "Paused"
	SubscriptionStatusClosed  SubscriptionStatus = "Closed"
)

func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "running":
		return SubscriptionStatusRunning, nil
	case "paused":
		return SubscriptionStatusPaused, nil
	case "closed":
		return SubscriptionStatusClosed, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidStatusTransition, s)
}

var allowedTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionStatusRunning: {SubscriptionStatusPaused, SubscriptionStatusClosed},
	SubscriptionStatusPaused:  {SubscriptionStatusRunning, SubscriptionStatusClosed},
}

func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Subscription struct {
	ID             uuid.UUID
	StrategyID     string
	InvestedAmount decimal.Decimal
	CurrentValue   decimal.Decimal
	Status         SubscriptionStatus
	StartTime      time.Time
	ClosedAt       *time.Time
}

// NewSubscription opens a position at zero gross PnL. The id is left
// empty; the store assigns one.
func NewSubscription(strategy Strategy, amount decimal.Decimal, now time.Time) (*Subscription, error) {
	if amount.LessThan(strategy.MinInvestment) {
		return nil, MinimumInvestmentError{
			StrategyID:    strategy.ID,
			MinInvestment: strategy.MinInvestment,
			Amount:        amount,
		}
	}
	// a zero minimum can't pass Strategy.Validate, but the invariant is on
	// the subscription
	if !amount.IsPositive() {
		return nil, MinimumInvestmentError{
			StrategyID:    strategy.ID,
			MinInvestment: strategy.MinInvestment,
			Amount:        amount,
		}
	}

	return &Subscription{
		StrategyID:     strategy.ID,
		InvestedAmount: amount,
		CurrentValue:   amount,
		Status:         SubscriptionStatusRunning,
		StartTime:      now.UTC(),
	}, nil
}

func (s *Subscription) Transition(next SubscriptionStatus, now time.Time) error {
	if !s.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s.Status, next)
	}
	s.Status = next
	if next == SubscriptionStatusClosed {
		t := now.UTC()
		s.ClosedAt = &t
	}
	return nil
}

// Revalue applies an external mark-to-market update.
func (s *Subscription) Revalue(value decimal.Decimal) error {
	if s.Status == SubscriptionStatusClosed {
		return fmt.Errorf("%w: subscription %s is closed", ErrInvalidValuation, s.ID)
	}
	if value.IsNegative() {
		return fmt.Errorf("%w: value must be >= 0, got %s", ErrInvalidValuation, value)
	}
	s.CurrentValue = value
	return nil
}

func (s Subscription) IsClosed() bool {
	return s.Status == SubscriptionStatusClosed
}
