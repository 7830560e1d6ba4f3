package order

import (
	"github.com/danie1204clmm-ctrl/diegao/internal/catalog"
)

// Order is an immutable snapshot of a confirmed cart. Items holds the
// products that were selected, Quantities maps product id to the
// quantity at submission time. The whole order list is persisted as a
// single JSON array, so the field tags are the storage schema.
type Order struct {
	ID         string            `json:"id"`
	PlacedAt   string            `json:"placed_at"`
	Items      []catalog.Product `json:"items"`
	Quantities map[string]int    `json:"quantities"`
	Total      float64           `json:"total"`
}
