package catalog

// Product is a single catalog entry. The catalog is fixed at build
// time; nothing mutates a Product after load.
type Product struct {
	ID     string   `toml:"id" json:"id"`
	Name   string   `toml:"name" json:"name"`
	Price  float64  `toml:"price" json:"price"`
	Colors []string `toml:"colors" json:"colors"`
}
