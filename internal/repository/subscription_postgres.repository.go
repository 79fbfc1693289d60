package repository

import (
	"context"
	"copytrade/internal/db/models/postgres/public/model"
	"copytrade/internal/db/models/postgres/public/table"
	"copytrade/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type postgresSubscriptionRepositoryHandler struct {
	Db *sql.DB
}

func NewPostgresSubscriptionRepository(db *sql.DB) SubscriptionRepository {
	return postgresSubscriptionRepositoryHandler{Db: db}
}

func subscriptionToModel(s domain.Subscription) model.Subscription {
	return model.Subscription{
		SubscriptionID: s.ID,
		StrategyID:     s.StrategyID,
		InvestedAmount: s.InvestedAmount,
		CurrentValue:   s.CurrentValue,
		Status:         model.SubscriptionStatus(s.Status),
		StartTime:      s.StartTime,
		ClosedAt:       s.ClosedAt,
	}
}

func subscriptionFromModel(m model.Subscription) domain.Subscription {
	return domain.Subscription{
		ID:             m.SubscriptionID,
		StrategyID:     m.StrategyID,
		InvestedAmount: m.InvestedAmount,
		CurrentValue:   m.CurrentValue,
		Status:         domain.SubscriptionStatus(m.Status),
		StartTime:      m.StartTime.UTC(),
		ClosedAt:       m.ClosedAt,
	}
}

func (h postgresSubscriptionRepositoryHandler) Add(ctx context.Context, s domain.Subscription) (*domain.Subscription, error) {
	m := subscriptionToModel(s)
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = time.Now().UTC()

	query := table.Subscription.
		INSERT(
			table.Subscription.MutableColumns,
		).
		MODEL(m).
		RETURNING(table.Subscription.AllColumns)

	out := model.Subscription{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}

	result := subscriptionFromModel(out)
	return &result, nil
}

func (h postgresSubscriptionRepositoryHandler) get(ctx context.Context, db qrm.Queryable, id uuid.UUID, forUpdate bool) (*domain.Subscription, error) {
	query := table.Subscription.
		SELECT(table.Subscription.AllColumns).
		WHERE(table.Subscription.SubscriptionID.EQ(postgres.UUID(id)))
	if forUpdate {
		query = query.FOR(postgres.UPDATE())
	}

	result := model.Subscription{}
	err := query.QueryContext(ctx, db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSubscriptionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	out := subscriptionFromModel(result)
	return &out, nil
}

func (h postgresSubscriptionRepositoryHandler) Get(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	return h.get(ctx, h.Db, id, false)
}

func (h postgresSubscriptionRepositoryHandler) List(ctx context.Context, filter SubscriptionListFilter) ([]domain.Subscription, error) {
	t := table.Subscription
	query := t.
		SELECT(t.AllColumns).
		ORDER_BY(t.StartTime.ASC(), t.CreatedAt.ASC())

	whereClauses := []postgres.BoolExpression{}
	if len(filter.Statuses) > 0 {
		statuses := []postgres.Expression{}
		for _, s := range filter.Statuses {
			statuses = append(statuses, postgres.NewEnumValue(string(s)))
		}
		whereClauses = append(whereClauses, t.Status.IN(statuses...))
	}
	if len(filter.StrategyIDs) > 0 {
		ids := []postgres.Expression{}
		for _, id := range filter.StrategyIDs {
			ids = append(ids, postgres.String(id))
		}
		whereClauses = append(whereClauses, t.StrategyID.IN(ids...))
	}
	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}

	result := []model.Subscription{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	out := make([]domain.Subscription, 0, len(result))
	for _, m := range result {
		out = append(out, subscriptionFromModel(m))
	}
	return out, nil
}

// Update locks the row for the duration of fn, so concurrent updates to
// the same subscription are serialized by postgres.
func (h postgresSubscriptionRepositoryHandler) Update(ctx context.Context, id uuid.UUID, fn func(*domain.Subscription) error) (*domain.Subscription, error) {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	current, err := h.get(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}
	if err := fn(current); err != nil {
		return nil, err
	}

	m := subscriptionToModel(*current)
	m.ModifiedAt = time.Now().UTC()

	t := table.Subscription
	query := t.
		UPDATE(
			t.CurrentValue,
			t.Status,
			t.ClosedAt,
			t.ModifiedAt,
		).
		MODEL(m).
		WHERE(t.SubscriptionID.EQ(postgres.UUID(id))).
		RETURNING(t.AllColumns)

	out := model.Subscription{}
	err = query.QueryContext(ctx, tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit subscription update: %w", err)
	}

	result := subscriptionFromModel(out)
	return &result, nil
}
