package quote

import (
	"context"
	"errors"
	"time"

	"PriceDesk/internal/pricing"
)

type Item struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// Quote is a priced cart snapshot. DiscountRate is the accumulated chain
// rate in [0,1]; cents fields are derived from it at creation time.
type Quote struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Items         []Item    `json:"items"`
	SubtotalCents int64     `json:"subtotal_cents"`
	DiscountRate  float64   `json:"discount_rate"`
	DiscountCents int64     `json:"discount_cents"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

// ErrQuoteExists reports an ID collision on insert.
var ErrQuoteExists = errors.New("quote already exists")

type Store interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, q Quote) error
	Get(ctx context.Context, id string) (Quote, bool, error)
}

// Cent-denominated thresholds for the stock discount pipeline: 5% above
// three units, 10% from a 500.00 subtotal.
const (
	bulkMinItems  = 3
	bulkRate      = 0.05
	totalMinCents = 500 * 100
	totalRate     = 0.10
)

// NewPricingChain builds the discount chain the quote service runs. The
// rule order is fixed here; contributions are additive either way.
func NewPricingChain() *pricing.Chain {
	return pricing.NewChain(
		pricing.ItemCountRule{MinItems: bulkMinItems, Rate: bulkRate},
		pricing.CartTotalRule{MinTotal: totalMinCents, Rate: totalRate},
	)
}
