package order

import (
	"context"
	"sync"

	"github.com/danie1204clmm-ctrl/diegao/internal/logger"

	"go.uber.org/zap"
)

// Service owns the order sequence. Every mutation is applied in memory
// first and then write-through persisted; a persistence failure is
// returned for logging but the in-memory sequence stays authoritative.
type Service interface {
	Append(ctx context.Context, o *Order) error
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	List(ctx context.Context) []*Order
	Get(ctx context.Context, id string) (*Order, bool)
	Count(ctx context.Context) int
}

type service struct {
	mu     sync.Mutex
	repo   Repository
	orders []*Order
}

// NewService loads the persisted sequence. A failing load degrades to
// an empty sequence so the till can still open.
func NewService(ctx context.Context, repo Repository) Service {
	orders, err := repo.Load(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("could not load saved orders, starting empty",
			zap.Error(err),
		)
		orders = []*Order{}
	}

	return &service{repo: repo, orders: orders}
}

// Append adds o to the end of the sequence. The lock is held across
// mutate and persist so interleaved saves cannot drop an update.
func (s *service) Append(ctx context.Context, o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, o)
	return s.repo.Save(ctx, s.orders)
}

// Remove filters the order with the given id out of the sequence.
// A nonexistent id leaves the sequence unchanged but still persists.
func (s *service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	return s.repo.Save(ctx, s.orders)
}

// Clear empties the sequence and persists the empty list.
func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = []*Order{}
	return s.repo.Save(ctx, s.orders)
}

// List returns the sequence in insertion order.
func (s *service) List(ctx context.Context) []*Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get looks an order up by id.
func (s *service) Get(ctx context.Context, id string) (*Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// Count reports the number of stored orders.
func (s *service) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.orders)
}
