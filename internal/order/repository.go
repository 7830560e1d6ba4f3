package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danie1204clmm-ctrl/diegao/internal/kv"
	"github.com/danie1204clmm-ctrl/diegao/internal/logger"

	"go.uber.org/zap"
)

// ordersKey is the single kv key holding the whole serialized order list.
const ordersKey = "pastelaria_pedidos"

// Repository persists the full order sequence with every call.
type Repository interface {
	Save(ctx context.Context, orders []*Order) error
	Load(ctx context.Context) ([]*Order, error)
}

type kvRepository struct {
	store kv.Store
}

func NewRepository(store kv.Store) Repository {
	return &kvRepository{store: store}
}

func (r *kvRepository) Save(ctx context.Context, orders []*Order) error {
	if orders == nil {
		orders = []*Order{}
	}

	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}

	if err := r.store.Set(ctx, ordersKey, string(payload)); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

// Load reads the persisted sequence. A missing key or a payload that no
// longer parses yields an empty list, never an error; only the store
// itself failing is reported.
func (r *kvRepository) Load(ctx context.Context) ([]*Order, error) {
	payload, ok, err := r.store.Get(ctx, ordersKey)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if !ok {
		return []*Order{}, nil
	}

	var orders []*Order
	if err := json.Unmarshal([]byte(payload), &orders); err != nil {
		logger.FromCtx(ctx).Warn("stored order list is malformed, starting empty",
			zap.Error(err),
		)
		return []*Order{}, nil
	}
	if orders == nil {
		orders = []*Order{}
	}
	return orders, nil
}
