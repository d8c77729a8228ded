// Package arith provides basic arithmetic operations as deferred
// computations, demonstrating both failure styles: a plain error and a
// tagged failure carrying the offending operands.
package arith

import (
	"errors"
	"fmt"

	"github.com/half-applied/deferred_go/deferred"
)

// Add returns the sum of a and b.
func Add(a, b float64) float64 { return a + b }

// Subtract returns a minus b.
func Subtract(a, b float64) float64 { return a - b }

// Multiply returns a times b.
func Multiply(a, b float64) float64 { return a * b }

// ErrDivideByZero is the untyped divide failure. Handlers receiving it have
// no discriminator to branch on.
var ErrDivideByZero = errors.New("Cannot divide by zero")

// Divide returns the deferred quotient of a and b, failing with a plain
// error when b is zero.
func Divide(a, b float64) deferred.Deferred[float64, error] {
	return deferred.Cond(b != 0,
		func() float64 { return a / b },
		func() error { return ErrDivideByZero },
	)
}

// TagDivideByZero is the discriminator of DivideByZeroError.
const TagDivideByZero = "ErrorDivideByZero"

var _ deferred.Tagged = (*DivideByZeroError)(nil)

// DivideByZeroError is the tagged divide failure. It keeps both operands so
// handlers can report or retry with them.
type DivideByZeroError struct {
	Dividend float64
	Divisor  float64
}

func (e *DivideByZeroError) Tag() string { return TagDivideByZero }

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("cannot divide %v by %v", e.Dividend, e.Divisor)
}

// DivideTagged returns the deferred quotient of a and b, failing with a
// DivideByZeroError when b is zero.
func DivideTagged(a, b float64) deferred.Deferred[float64, *DivideByZeroError] {
	return deferred.Cond(b != 0,
		func() float64 { return a / b },
		func() *DivideByZeroError { return &DivideByZeroError{Dividend: a, Divisor: b} },
	)
}
