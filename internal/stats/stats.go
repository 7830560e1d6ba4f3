package stats

import (
	"sort"

	"github.com/danie1204clmm-ctrl/diegao/internal/order"
)

// ProductSales is the per-product aggregate. Entries are keyed by the
// display name, as the till has always done; two catalog entries that
// share a name merge here.
type ProductSales struct {
	Name    string  `json:"name"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

// Summary is a read-time projection of the order list. It is never
// persisted and is recomputed for every view.
type Summary struct {
	TotalOrders       int            `json:"total_orders"`
	TotalRevenue      float64        `json:"total_revenue"`
	TotalUnits        int            `json:"total_units"`
	Products          []ProductSales `json:"products"`
	BestSeller        *ProductSales  `json:"best_seller,omitempty"`
	AverageOrderValue float64        `json:"average_order_value"`
}

// Compute folds over every (order, item) pair in one pass. Orders
// missing their item or quantity structure still count toward order and
// revenue totals but are skipped by the per-product fold, so a damaged
// record can never break the statistics view.
func Compute(orders []*order.Order) Summary {
	s := Summary{Products: []ProductSales{}}

	index := map[string]int{}
	for _, o := range orders {
		if o == nil {
			continue
		}

		s.TotalOrders++
		s.TotalRevenue += o.Total

		if o.Items == nil || o.Quantities == nil {
			continue
		}

		for _, item := range o.Items {
			qty := o.Quantities[item.ID]
			s.TotalUnits += qty

			i, ok := index[item.Name]
			if !ok {
				i = len(s.Products)
				index[item.Name] = i
				s.Products = append(s.Products, ProductSales{Name: item.Name})
			}

			s.Products[i].Units += qty
			s.Products[i].Revenue += item.Price * float64(qty)
		}
	}

	// best seller: most units, first encountered wins ties
	for i := range s.Products {
		if s.BestSeller == nil || s.Products[i].Units > s.BestSeller.Units {
			s.BestSeller = &s.Products[i]
		}
	}

	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(s.TotalOrders)
	}

	return s
}

// Ranked returns the per-product breakdown sorted by units, highest
// first, preserving first-encounter order between equals.
func (s Summary) Ranked() []ProductSales {
	out := make([]ProductSales, len(s.Products))
	copy(out, s.Products)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Units > out[j].Units
	})
	return out
}
