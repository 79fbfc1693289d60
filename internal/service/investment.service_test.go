package service

import (
	"context"
	"copytrade/internal/domain"
	"copytrade/internal/repository"
	"copytrade/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestInvestmentService(t *testing.T) (investmentServiceHandler, repository.SubscriptionRepository) {
	strategyRepository, err := repository.NewDefaultStrategyRepository()
	require.NoError(t, err)
	subscriptionRepository := repository.NewMemorySubscriptionRepository()

	now := util.NewDate(2024, 3, 10)
	return investmentServiceHandler{
		StrategyRepository:     strategyRepository,
		SubscriptionRepository: subscriptionRepository,
		Now:                    func() time.Time { return now },
	}, subscriptionRepository
}

func requireDecimal(t *testing.T, expected int64, actual decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.NewFromInt(expected).Equal(actual), "expected %d, got %s", expected, actual)
}

func Test_investmentServiceHandler_Invest(t *testing.T) {
	ctx := context.Background()

	t.Run("opens running subscription at zero pnl", func(t *testing.T) {
		handler, _ := newTestInvestmentService(t)

		view, err := handler.Invest(ctx, "s1", decimal.NewFromInt(5000))
		require.NoError(t, err)

		require.NotEqual(t, uuid.Nil, view.Subscription.ID)
		require.Equal(t, domain.SubscriptionStatusRunning, view.Subscription.Status)
		requireDecimal(t, 5000, view.Subscription.InvestedAmount)
		requireDecimal(t, 5000, view.Subscription.CurrentValue)
		require.Equal(t, util.NewDate(2024, 3, 10), view.Subscription.StartTime)
		require.True(t, view.Settlement.GrossPnl.IsZero())
		require.True(t, view.Settlement.Fee.IsZero())
		require.Equal(t, "s1", view.Strategy.ID)
	})

	t.Run("below minimum", func(t *testing.T) {
		handler, store := newTestInvestmentService(t)

		_, err := handler.Invest(ctx, "s1", decimal.NewFromInt(4999))
		require.ErrorIs(t, err, domain.ErrBelowMinimumInvestment)

		var minErr domain.MinimumInvestmentError
		require.ErrorAs(t, err, &minErr)
		requireDecimal(t, 5000, minErr.MinInvestment)

		subs, err := store.List(ctx, repository.SubscriptionListFilter{})
		require.NoError(t, err)
		require.Empty(t, subs)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		handler, _ := newTestInvestmentService(t)

		_, err := handler.Invest(ctx, "s99", decimal.NewFromInt(5000))
		require.ErrorIs(t, err, domain.ErrUnknownStrategy)
	})
}

func Test_investmentServiceHandler_SeedDemoPortfolio(t *testing.T) {
	ctx := context.Background()
	handler, _ := newTestInvestmentService(t)

	seeded, err := handler.SeedDemoPortfolio(ctx)
	require.NoError(t, err)
	require.NotNil(t, seeded)
	require.Equal(t, util.NewDate(2024, 3, 5), seeded.StartTime)

	view, err := handler.Get(ctx, seeded.ID)
	require.NoError(t, err)
	requireDecimal(t, 6200, view.Settlement.GrossPnl)
	requireDecimal(t, 1240, view.Settlement.Fee)
	requireDecimal(t, 4960, view.Settlement.NetPnl)
	require.True(t, decimal.RequireFromString("12.4").Equal(view.Settlement.GrossPnlPercent))

	again, err := handler.SeedDemoPortfolio(ctx)
	require.NoError(t, err)
	require.Nil(t, again)
}

func Test_investmentServiceHandler_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pause resume close", func(t *testing.T) {
		handler, _ := newTestInvestmentService(t)
		view, err := handler.Invest(ctx, "s2", decimal.NewFromInt(1000))
		require.NoError(t, err)
		id := view.Subscription.ID

		view, err = handler.UpdateStatus(ctx, id, domain.SubscriptionStatusPaused)
		require.NoError(t, err)
		require.Equal(t, domain.SubscriptionStatusPaused, view.Subscription.Status)

		view, err = handler.UpdateStatus(ctx, id, domain.SubscriptionStatusRunning)
		require.NoError(t, err)
		require.Equal(t, domain.SubscriptionStatusRunning, view.Subscription.Status)

		view, err = handler.UpdateStatus(ctx, id, domain.SubscriptionStatusClosed)
		require.NoError(t, err)
		require.Equal(t, domain.SubscriptionStatusClosed, view.Subscription.Status)
		require.NotNil(t, view.Subscription.ClosedAt)

		_, err = handler.UpdateStatus(ctx, id, domain.SubscriptionStatusRunning)
		require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("same status is rejected", func(t *testing.T) {
		handler, _ := newTestInvestmentService(t)
		view, err := handler.Invest(ctx, "s2", decimal.NewFromInt(1000))
		require.NoError(t, err)

		_, err = handler.UpdateStatus(ctx, view.Subscription.ID, domain.SubscriptionStatusRunning)
		require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("missing subscription", func(t *testing.T) {
		handler, _ := newTestInvestmentService(t)
		_, err := handler.UpdateStatus(ctx, uuid.New(), domain.SubscriptionStatusPaused)
		require.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
	})
}

func Test_investmentServiceHandler_ApplyValuation(t *testing.T) {
	ctx := context.Background()
	handler, _ := newTestInvestmentService(t)

	view, err := handler.Invest(ctx, "s1", decimal.NewFromInt(10000))
	require.NoError(t, err)
	id := view.Subscription.ID

	view, err = handler.ApplyValuation(ctx, id, decimal.NewFromInt(9000))
	require.NoError(t, err)
	requireDecimal(t, -1000, view.Settlement.GrossPnl)
	require.True(t, view.Settlement.Fee.IsZero())
	requireDecimal(t, -1000, view.Settlement.NetPnl)

	_, err = handler.ApplyValuation(ctx, id, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, domain.ErrInvalidValuation)

	_, err = handler.UpdateStatus(ctx, id, domain.SubscriptionStatusPaused)
	require.NoError(t, err)
	view, err = handler.ApplyValuation(ctx, id, decimal.NewFromInt(12000))
	require.NoError(t, err)
	requireDecimal(t, 400, view.Settlement.Fee)

	_, err = handler.UpdateStatus(ctx, id, domain.SubscriptionStatusClosed)
	require.NoError(t, err)
	_, err = handler.ApplyValuation(ctx, id, decimal.NewFromInt(13000))
	require.ErrorIs(t, err, domain.ErrInvalidValuation)
}

func Test_investmentServiceHandler_PlatformRevenue(t *testing.T) {
	ctx := context.Background()
	handler, store := newTestInvestmentService(t)

	_, err := handler.SeedDemoPortfolio(ctx)
	require.NoError(t, err)

	_, err = store.Add(ctx, domain.Subscription{
		StrategyID:     "retired",
		InvestedAmount: decimal.NewFromInt(1000),
		CurrentValue:   decimal.NewFromInt(2000),
		Status:         domain.SubscriptionStatusRunning,
		StartTime:      util.NewDate(2024, 3, 1),
	})
	require.NoError(t, err)

	closed, err := handler.Invest(ctx, "s2", decimal.NewFromInt(1000))
	require.NoError(t, err)
	_, err = handler.ApplyValuation(ctx, closed.Subscription.ID, decimal.NewFromInt(3000))
	require.NoError(t, err)
	_, err = handler.UpdateStatus(ctx, closed.Subscription.ID, domain.SubscriptionStatusClosed)
	require.NoError(t, err)

	revenue, err := handler.PlatformRevenue(ctx)
	require.NoError(t, err)
	requireDecimal(t, 1240, revenue.Total)
	require.Equal(t, 1, revenue.Included)
	require.Equal(t, 1, revenue.Skipped)

	views, err := handler.ListViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, "s1", views[0].Strategy.ID)
	require.Equal(t, "s2", views[1].Strategy.ID)
}
