package pricing

// Rule is one step of a discount chain. Every rule in a chain is
// evaluated; contributions accumulate additively, a rule never
// short-circuits the ones after it.
type Rule interface {
	Contribution(c Cart) float64
}

// ItemCountRule grants Rate when the cart holds strictly more than
// MinItems products.
type ItemCountRule struct {
	MinItems int
	Rate     float64
}

func (r ItemCountRule) Contribution(c Cart) float64 {
	if c.Count() > r.MinItems {
		return r.Rate
	}
	return 0
}

// CartTotalRule grants Rate when the cart total reaches MinTotal.
type CartTotalRule struct {
	MinTotal float64
	Rate     float64
}

func (r CartTotalRule) Contribution(c Cart) float64 {
	if c.Total() >= r.MinTotal {
		return r.Rate
	}
	return 0
}
