package repository

import (
	"context"
	"copytrade/internal/domain"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// SubscriptionRepository is the subscription store. Writers are serialized
// so readers never see a half-built subscription.
type SubscriptionRepository interface {
	Add(ctx context.Context, s domain.Subscription) (*domain.Subscription, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Subscription, error)
	List(ctx context.Context, filter SubscriptionListFilter) ([]domain.Subscription, error)
	// Update applies fn to the stored subscription under the store's write
	// lock. Nothing is written if fn returns an error.
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.Subscription) error) (*domain.Subscription, error)
}

type SubscriptionListFilter struct {
	Statuses    []domain.SubscriptionStatus
	StrategyIDs []string
}

func (f SubscriptionListFilter) matches(s domain.Subscription) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, status := range f.Statuses {
			if s.Status == status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.StrategyIDs) > 0 {
		found := false
		for _, id := range f.StrategyIDs {
			if s.StrategyID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type memorySubscriptionRepositoryHandler struct {
	mu            sync.RWMutex
	subscriptions []domain.Subscription
	index         map[uuid.UUID]int
}

func NewMemorySubscriptionRepository() SubscriptionRepository {
	return &memorySubscriptionRepositoryHandler{
		subscriptions: []domain.Subscription{},
		index:         map[uuid.UUID]int{},
	}
}

func (h *memorySubscriptionRepositoryHandler) Add(ctx context.Context, s domain.Subscription) (*domain.Subscription, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.index[s.ID]; ok {
		return nil, fmt.Errorf("failed to insert subscription: duplicate id %s", s.ID)
	}
	h.index[s.ID] = len(h.subscriptions)
	h.subscriptions = append(h.subscriptions, s)

	return &s, nil
}

func (h *memorySubscriptionRepositoryHandler) Get(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	i, ok := h.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSubscriptionNotFound, id)
	}
	out := h.subscriptions[i]
	return &out, nil
}

func (h *memorySubscriptionRepositoryHandler) List(ctx context.Context, filter SubscriptionListFilter) ([]domain.Subscription, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := []domain.Subscription{}
	for _, s := range h.subscriptions {
		if filter.matches(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (h *memorySubscriptionRepositoryHandler) Update(ctx context.Context, id uuid.UUID, fn func(*domain.Subscription) error) (*domain.Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i, ok := h.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSubscriptionNotFound, id)
	}

	updated := h.subscriptions[i]
	if err := fn(&updated); err != nil {
		return nil, err
	}
	// identity and principal are immutable
	updated.ID = h.subscriptions[i].ID
	updated.StrategyID = h.subscriptions[i].StrategyID
	updated.InvestedAmount = h.subscriptions[i].InvestedAmount
	updated.StartTime = h.subscriptions[i].StartTime
	h.subscriptions[i] = updated

	return &updated, nil
}
