package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultChain_Rate(t *testing.T) {
	tests := []struct {
		name    string
		amounts []float64
		want    float64
	}{
		{name: "empty cart", amounts: nil, want: 0},
		{name: "small cheap cart", amounts: []float64{50, 50}, want: 0},
		{name: "three items under total", amounts: []float64{100, 100, 100}, want: 0},
		{name: "four cheap items", amounts: []float64{10, 10, 10, 10}, want: 0.05},
		{name: "two expensive items", amounts: []float64{250, 250}, want: 0.10},
		{name: "boundary total exactly 500", amounts: []float64{500}, want: 0.10},
		{name: "just under total", amounts: []float64{499.99}, want: 0},
		{name: "both rules fire", amounts: []float64{100, 100, 100, 100, 100}, want: 0.15},
		{name: "four items over total", amounts: []float64{200, 200, 200, 200}, want: 0.15},
	}

	ch := NewDefaultChain()
	require.Equal(t, 2, ch.Len())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ch.Rate(NewCart(tc.amounts...))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestChain_Rate_AdditiveNotMultiplicative(t *testing.T) {
	ch := NewDefaultChain()

	got, err := ch.Rate(NewCart(100, 100, 100, 100, 100))
	require.NoError(t, err)

	// 0.05 + 0.10, not (1-0.05)*(1-0.10) style compounding.
	assert.InDelta(t, 0.15, got, 1e-9)
}

func TestChain_Rate_InvalidAmounts(t *testing.T) {
	ch := NewDefaultChain()

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ch.Rate(NewCart(100, bad))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestChain_RulesComposableInAnyOrder(t *testing.T) {
	count := ItemCountRule{MinItems: 3, Rate: 0.05}
	total := CartTotalRule{MinTotal: 500, Rate: 0.10}

	cart := NewCart(200, 200, 200, 200)

	a, err := NewChain(count, total).Rate(cart)
	require.NoError(t, err)
	b, err := NewChain(total, count).Rate(cart)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestChain_CustomRulesAndClamp(t *testing.T) {
	ch := NewChain(
		CartTotalRule{MinTotal: 1, Rate: 0.70},
		CartTotalRule{MinTotal: 1, Rate: 0.70},
	)

	got, err := ch.Rate(NewCart(10))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestChain_EmptyChainYieldsZero(t *testing.T) {
	got, err := NewChain().Rate(NewCart(1000, 1000, 1000, 1000))
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCart_Total_EmptyIsZero(t *testing.T) {
	var c Cart
	assert.Zero(t, c.Total())
	assert.Zero(t, c.Count())
}

func TestCart_AddAndTotal(t *testing.T) {
	var c Cart
	c.Add(100)
	c.Add(250.50)

	assert.Equal(t, 2, c.Count())
	assert.InDelta(t, 350.50, c.Total(), 1e-9)
}
