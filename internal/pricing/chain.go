package pricing

import (
	"fmt"
	"math"
)

// Default thresholds for NewDefaultChain.
const (
	DefaultBulkMinItems = 3
	DefaultBulkRate     = 0.05
	DefaultTotalMin     = 500
	DefaultTotalRate    = 0.10
)

// Chain evaluates an ordered sequence of rules over a cart. The sequence
// is fixed at construction; there is no successor rewiring afterwards, so
// a chain can never loop. Rule order is caller-supplied configuration.
type Chain struct {
	rules []Rule
}

func NewChain(rules ...Rule) *Chain {
	return &Chain{rules: append([]Rule(nil), rules...)}
}

// NewDefaultChain wires the stock pipeline: 5% over three items, plus 10%
// at a total of 500 or more. A cart satisfying both gets 15%.
func NewDefaultChain() *Chain {
	return NewChain(
		ItemCountRule{MinItems: DefaultBulkMinItems, Rate: DefaultBulkRate},
		CartTotalRule{MinTotal: DefaultTotalMin, Rate: DefaultTotalRate},
	)
}

func (ch *Chain) Len() int { return len(ch.rules) }

// Rate computes the accumulated discount rate for the cart, clamped into
// [0, 1]. Carts with a negative, NaN or infinite amount are rejected with
// ErrInvalidAmount; the empty cart is valid and rates to zero.
func (ch *Chain) Rate(c Cart) (float64, error) {
	if err := validate(c); err != nil {
		return 0, err
	}

	var rate float64
	for _, r := range ch.rules {
		rate += r.Contribution(c)
	}

	return clamp01(rate), nil
}

func validate(c Cart) error {
	for i, p := range c.Products {
		if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) || p.Amount < 0 {
			return fmt.Errorf("%w: product %d has amount %v", ErrInvalidAmount, i, p.Amount)
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
