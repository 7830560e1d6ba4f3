package cart

import "errors"

var (
	// -- Validation & Input --
	ErrUnknownProduct = errors.New("product not in catalog")
	ErrQuantityLimit  = errors.New("quantity limit reached")

	// -- Resource State --
	ErrCartEmpty = errors.New("cart is empty")
)
