package mathutil

import (
	"errors"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// ErrOverflow is returned when the result of an operation does not fit
	// into an uint64.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrUnderflow is returned when a subtraction would produce a negative
	// amount.
	ErrUnderflow = errors.New("arithmetic underflow")
	// ErrDivisionByZero ...
	ErrDivisionByZero = errors.New("division by zero")
)

var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// Add returns x + y, or ErrOverflow if the sum does not fit into an uint64.
func Add(x, y uint64) (uint64, error) {
	z := x + y
	if z < x {
		return 0, ErrOverflow
	}
	return z, nil
}

// Sub returns x - y, or ErrUnderflow if y is greater than x.
func Sub(x, y uint64) (uint64, error) {
	if y > x {
		return 0, ErrUnderflow
	}
	return x - y, nil
}

// Mul returns x * y, or ErrOverflow if the product does not fit into an
// uint64.
func Mul(x, y uint64) (uint64, error) {
	X, Y := new(big.Int).SetUint64(x), new(big.Int).SetUint64(y)
	Z := new(big.Int).Mul(X, Y)
	if Z.Cmp(maxUint64) > 0 {
		return 0, ErrOverflow
	}
	return Z.Uint64(), nil
}

// Div returns x / y rounded towards zero, or ErrDivisionByZero.
func Div(x, y uint64) (uint64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// BigMulDiv returns x * y / d with the intermediate product computed at
// arbitrary precision, so the multiplication itself can never overflow.
// The division rounds towards zero. It returns ErrDivisionByZero if d is 0
// and ErrOverflow if the final quotient does not fit into an uint64.
func BigMulDiv(x, y, d uint64) (uint64, error) {
	if d == 0 {
		return 0, ErrDivisionByZero
	}
	X, Y := new(big.Int).SetUint64(x), new(big.Int).SetUint64(y)
	Z := new(big.Int).Quo(new(big.Int).Mul(X, Y), new(big.Int).SetUint64(d))
	if Z.Cmp(maxUint64) > 0 {
		return 0, ErrOverflow
	}
	return Z.Uint64(), nil
}

// Decimal returns the given amount as a decimal.Decimal.
func Decimal(x uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
}
