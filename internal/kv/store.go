package kv

import "context"

// Store is the persistence collaborator: an opaque string keyed store.
// Each call is atomic on its own; nothing here spans multiple calls.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
