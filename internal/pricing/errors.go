package pricing

import "errors"

// ErrInvalidAmount reports a cart whose product amounts are not
// well-formed non-negative numbers.
var ErrInvalidAmount = errors.New("pricing: invalid product amount")
