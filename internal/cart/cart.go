package cart

import (
	"sync"
	"time"

	"github.com/danie1204clmm-ctrl/diegao/internal/catalog"
	"github.com/danie1204clmm-ctrl/diegao/internal/order"
)

// MaxQuantity is the per-product cap for a single order.
const MaxQuantity = 99

// Cart tracks per-product quantities for the current session. It is an
// owned store object: all mutation goes through its methods and state
// is guarded for concurrent handlers.
type Cart struct {
	mu         sync.Mutex
	catalog    *catalog.Catalog
	quantities map[string]int
}

func New(cat *catalog.Catalog) *Cart {
	return &Cart{
		catalog:    cat,
		quantities: map[string]int{},
	}
}

// Increase increments the quantity for the given product by one and
// returns the new quantity. At the cap it is a no-op that reports
// ErrQuantityLimit so the caller can show the limit notice.
func (c *Cart) Increase(productID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.catalog.Get(productID); !ok {
		return 0, ErrUnknownProduct
	}

	qty := c.quantities[productID]
	if qty >= MaxQuantity {
		return qty, ErrQuantityLimit
	}

	c.quantities[productID] = qty + 1
	return qty + 1, nil
}

// Decrease decrements the quantity by one, floored at zero.
func (c *Cart) Decrease(productID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.catalog.Get(productID); !ok {
		return 0, ErrUnknownProduct
	}

	qty := c.quantities[productID]
	if qty <= 0 {
		c.quantities[productID] = 0
		return 0, nil
	}

	c.quantities[productID] = qty - 1
	return qty - 1, nil
}

// Quantity reports the current quantity for a product.
func (c *Cart) Quantity(productID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quantities[productID]
}

// Quantities returns a snapshot of all non-zero quantities.
func (c *Cart) Quantities() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]int, len(c.quantities))
	for id, qty := range c.quantities {
		if qty > 0 {
			out[id] = qty
		}
	}
	return out
}

// Total sums quantity times price over the whole catalog.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

// ItemCount sums all quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemCountLocked()
}

func (c *Cart) totalLocked() float64 {
	var total float64
	for _, p := range c.catalog.All() {
		total += float64(c.quantities[p.ID]) * p.Price
	}
	return total
}

func (c *Cart) itemCountLocked() int {
	var count int
	for _, qty := range c.quantities {
		count += qty
	}
	return count
}

// ConfirmAndReset snapshots every selected product into a new Order,
// stamped with a fresh id and the submission time, then clears the
// cart. An empty cart is rejected before any Order is created.
func (c *Cart) ConfirmAndReset(now time.Time) (*order.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.itemCountLocked() == 0 {
		return nil, ErrCartEmpty
	}

	var items []catalog.Product
	quantities := map[string]int{}
	for _, p := range c.catalog.All() {
		if qty := c.quantities[p.ID]; qty > 0 {
			items = append(items, p)
			quantities[p.ID] = qty
		}
	}

	o := &order.Order{
		ID:         order.NewID(now),
		PlacedAt:   now.Format(order.PlacedAtLayout),
		Items:      items,
		Quantities: quantities,
		Total:      c.totalLocked(),
	}

	c.quantities = map[string]int{}
	return o, nil
}
