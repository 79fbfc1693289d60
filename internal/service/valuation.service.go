package service

import (
	"context"
	"copytrade/internal/calculator"
	"copytrade/internal/domain"
	"copytrade/internal/logger"
	"copytrade/internal/repository"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// ValuationService stands in for a market data feed. Each tick moves the
// current value of every Running subscription one step along its
// strategy's series model.
type ValuationService interface {
	Tick(ctx context.Context) (*TickResult, error)
}

type TickResult struct {
	Updated int
	Skipped int
}

type valuationServiceHandler struct {
	StrategyRepository     repository.StrategyRepository
	SubscriptionRepository repository.SubscriptionRepository

	// rand.Rand is not safe for concurrent use.
	mu   *sync.Mutex
	rand *rand.Rand
}

func NewValuationService(
	strategyRepository repository.StrategyRepository,
	subscriptionRepository repository.SubscriptionRepository,
	r *rand.Rand,
) ValuationService {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return valuationServiceHandler{
		StrategyRepository:     strategyRepository,
		SubscriptionRepository: subscriptionRepository,
		mu:                     &sync.Mutex{},
		rand:                   r,
	}
}

func (h valuationServiceHandler) Tick(ctx context.Context) (*TickResult, error) {
	log := logger.FromContext(ctx)

	strategies, err := h.StrategyRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", err)
	}
	subscriptions, err := h.SubscriptionRepository.List(ctx, repository.SubscriptionListFilter{
		Statuses: []domain.SubscriptionStatus{domain.SubscriptionStatusRunning},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list running subscriptions: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	catalog := domain.StrategyMap(strategies)
	result := &TickResult{}
	for _, sub := range subscriptions {
		strategy, ok := catalog[sub.StrategyID]
		if !ok {
			result.Skipped++
			continue
		}
		_, err := h.SubscriptionRepository.Update(ctx, sub.ID, func(s *domain.Subscription) error {
			// status may have changed since the list
			if s.Status != domain.SubscriptionStatusRunning {
				return errNotRunning
			}
			return s.Revalue(calculator.NextValue(s.CurrentValue, strategy.SeriesModel, h.rand))
		})
		if errors.Is(err, errNotRunning) {
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to revalue subscription %s: %w", sub.ID, err)
		}
		result.Updated++
	}

	log.Debugw("valuation tick", "updated", result.Updated, "skipped", result.Skipped)
	return result, nil
}

var errNotRunning = errors.New("subscription is not running")
