package pricing

// Product is a single priced unit in a cart. Amount is in the caller's
// monetary unit; rules compare against thresholds in the same unit.
type Product struct {
	Amount float64
}

// Cart is an ordered collection of products. Order does not affect the
// computed rate.
type Cart struct {
	Products []Product
}

func NewCart(amounts ...float64) Cart {
	c := Cart{Products: make([]Product, 0, len(amounts))}
	for _, a := range amounts {
		c.Add(a)
	}
	return c
}

func (c *Cart) Add(amount float64) {
	c.Products = append(c.Products, Product{Amount: amount})
}

func (c Cart) Count() int {
	return len(c.Products)
}

// Total sums every product amount. The empty cart sums to zero.
func (c Cart) Total() float64 {
	var total float64
	for _, p := range c.Products {
		total += p.Amount
	}
	return total
}
