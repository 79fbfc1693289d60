package service

import (
	"context"
	"copytrade/internal/calculator"
	"copytrade/internal/domain"
	"copytrade/internal/logger"
	"copytrade/internal/repository"
	"copytrade/internal/util"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvestmentService interface {
	Invest(ctx context.Context, strategyID string, amount decimal.Decimal) (*domain.SubscriptionView, error)
	Get(ctx context.Context, subscriptionID uuid.UUID) (*domain.SubscriptionView, error)
	// ListViews returns every subscription joined with its strategy and
	// settlement, in creation order. Subscriptions whose strategy left the
	// catalog are logged and left out.
	ListViews(ctx context.Context) ([]domain.SubscriptionView, error)
	UpdateStatus(ctx context.Context, subscriptionID uuid.UUID, status domain.SubscriptionStatus) (*domain.SubscriptionView, error)
	ApplyValuation(ctx context.Context, subscriptionID uuid.UUID, value decimal.Decimal) (*domain.SubscriptionView, error)
	PlatformRevenue(ctx context.Context) (*domain.PlatformRevenue, error)
	SeedDemoPortfolio(ctx context.Context) (*domain.Subscription, error)
}

type investmentServiceHandler struct {
	StrategyRepository     repository.StrategyRepository
	SubscriptionRepository repository.SubscriptionRepository
	Now                    func() time.Time
}

func NewInvestmentService(
	strategyRepository repository.StrategyRepository,
	subscriptionRepository repository.SubscriptionRepository,
) InvestmentService {
	return investmentServiceHandler{
		StrategyRepository:     strategyRepository,
		SubscriptionRepository: subscriptionRepository,
		Now:                    time.Now,
	}
}

func (h investmentServiceHandler) now() time.Time {
	if h.Now == nil {
		return time.Now().UTC()
	}
	return h.Now().UTC()
}

func (h investmentServiceHandler) Invest(ctx context.Context, strategyID string, amount decimal.Decimal) (*domain.SubscriptionView, error) {
	log := logger.FromContext(ctx)

	strategy, err := h.StrategyRepository.Get(strategyID)
	if err != nil {
		return nil, err
	}

	subscription, err := domain.NewSubscription(*strategy, amount, h.now())
	if err != nil {
		return nil, err
	}

	inserted, err := h.SubscriptionRepository.Add(ctx, *subscription)
	if err != nil {
		return nil, fmt.Errorf("failed to add subscription: %w", err)
	}

	log.Infow(
		"created subscription",
		"subscriptionID", inserted.ID,
		"strategyID", strategy.ID,
		"amount", amount.String(),
	)

	return h.view(*strategy, *inserted)
}

func (h investmentServiceHandler) view(strategy domain.Strategy, subscription domain.Subscription) (*domain.SubscriptionView, error) {
	settlement, err := calculator.Settle(&strategy, subscription)
	if err != nil {
		return nil, err
	}
	return &domain.SubscriptionView{
		Subscription: subscription,
		Strategy:     strategy,
		Settlement:   *settlement,
	}, nil
}

func (h investmentServiceHandler) viewFor(subscription domain.Subscription) (*domain.SubscriptionView, error) {
	strategy, err := h.StrategyRepository.Get(subscription.StrategyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve strategy for subscription %s: %w", subscription.ID, err)
	}
	return h.view(*strategy, subscription)
}

func (h investmentServiceHandler) Get(ctx context.Context, subscriptionID uuid.UUID) (*domain.SubscriptionView, error) {
	subscription, err := h.SubscriptionRepository.Get(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	return h.viewFor(*subscription)
}

func (h investmentServiceHandler) ListViews(ctx context.Context) ([]domain.SubscriptionView, error) {
	log := logger.FromContext(ctx)

	strategies, err := h.StrategyRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", err)
	}
	subscriptions, err := h.SubscriptionRepository.List(ctx, repository.SubscriptionListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	catalog := domain.StrategyMap(strategies)
	out := []domain.SubscriptionView{}
	for _, sub := range subscriptions {
		strategy, ok := catalog[sub.StrategyID]
		if !ok {
			log.Warnw("skipping subscription with unknown strategy", "subscriptionID", sub.ID, "strategyID", sub.StrategyID)
			continue
		}
		v, err := h.view(strategy, sub)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}

	return out, nil
}

func (h investmentServiceHandler) UpdateStatus(ctx context.Context, subscriptionID uuid.UUID, status domain.SubscriptionStatus) (*domain.SubscriptionView, error) {
	now := h.now()
	var previous domain.SubscriptionStatus
	updated, err := h.SubscriptionRepository.Update(ctx, subscriptionID, func(s *domain.Subscription) error {
		previous = s.Status
		return s.Transition(status, now)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow(
		"updated subscription status",
		"subscriptionID", subscriptionID,
		"from", previous,
		"to", updated.Status,
	)

	return h.viewFor(*updated)
}

func (h investmentServiceHandler) ApplyValuation(ctx context.Context, subscriptionID uuid.UUID, value decimal.Decimal) (*domain.SubscriptionView, error) {
	updated, err := h.SubscriptionRepository.Update(ctx, subscriptionID, func(s *domain.Subscription) error {
		return s.Revalue(value)
	})
	if err != nil {
		return nil, err
	}
	return h.viewFor(*updated)
}

func (h investmentServiceHandler) PlatformRevenue(ctx context.Context) (*domain.PlatformRevenue, error) {
	log := logger.FromContext(ctx)

	strategies, err := h.StrategyRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", err)
	}
	subscriptions, err := h.SubscriptionRepository.List(ctx, repository.SubscriptionListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	revenue := calculator.AggregatePlatformRevenue(strategies, subscriptions)
	for _, sub := range calculator.UnresolvedSubscriptions(strategies, subscriptions) {
		log.Warnw("revenue rollup skipped subscription", "subscriptionID", sub.ID, "strategyID", sub.StrategyID)
	}

	return &revenue, nil
}

const demoStrategyID = "s1"

// SeedDemoPortfolio adds the demo subscription shown on a fresh install.
// It is a no-op when the store already has subscriptions.
func (h investmentServiceHandler) SeedDemoPortfolio(ctx context.Context) (*domain.Subscription, error) {
	existing, err := h.SubscriptionRepository.List(ctx, repository.SubscriptionListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if len(existing) > 0 {
		return nil, nil
	}

	strategy, err := h.StrategyRepository.Get(demoStrategyID)
	if err != nil {
		return nil, err
	}

	subscription, err := domain.NewSubscription(*strategy, decimal.NewFromInt(50000), util.DaysAgo(h.now(), 5))
	if err != nil {
		return nil, err
	}
	if err := subscription.Revalue(decimal.NewFromInt(56200)); err != nil {
		return nil, err
	}

	inserted, err := h.SubscriptionRepository.Add(ctx, *subscription)
	if err != nil {
		return nil, fmt.Errorf("failed to seed demo subscription: %w", err)
	}
	logger.FromContext(ctx).Infow("seeded demo subscription", "subscriptionID", inserted.ID)

	return inserted, nil
}
