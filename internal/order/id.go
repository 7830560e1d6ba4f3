package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// PlacedAtLayout is the display timestamp stamped on new orders.
const PlacedAtLayout = "02/01/2006 15:04:05"

// NewID produces an order id from the wall clock plus a random
// three-digit suffix. Unique enough for one till; a collision only
// garbles the display, it cannot corrupt stored orders.
func NewID(now time.Time) string {
	return fmt.Sprintf("%d%03d", now.UnixMilli(), rand.IntN(1000))
}
