package catalog

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed produtos.toml
var catalogFS embed.FS

type catalogFile struct {
	Products []Product `toml:"product"`
}

// Catalog is the static list of purchasable products.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// Load parses the embedded product list. It fails on duplicate ids,
// negative prices or a color tag count outside 1..2, so a bad edit of
// produtos.toml is caught at startup instead of at checkout.
func Load() (*Catalog, error) {
	raw, err := catalogFS.ReadFile("produtos.toml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}

	var file catalogFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byID := make(map[string]Product, len(file.Products))
	for _, p := range file.Products {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("catalog entry missing id or name: %+v", p)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q has negative price", p.ID)
		}
		if len(p.Colors) < 1 || len(p.Colors) > 2 {
			return nil, fmt.Errorf("product %q must have one or two color tags", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: file.Products, byID: byID}, nil
}

// All returns the products in menu order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
