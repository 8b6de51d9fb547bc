// Package mathutil provides the arithmetic kernel for easing curves.
//
// Every function is generic over the caller's floating-point type and returns
// the same type it received. The transcendental functions (Sqrt, Exp, Pow,
// Sin, Cos) exist in two interchangeable implementations: a pass-through to
// the standard math package, and a self-contained set built from iterative
// numeric methods that needs no math library at all. The build tag
// easing_ownmath selects the self-contained set; the default build uses the
// platform routines. The choice is made once at build time and never branched
// at runtime.
package mathutil

import "math"

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Machine epsilon per representation: 2^-23 and 2^-52.
const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

// E is Euler's number. It seeds the logarithm iteration inside Pow.
const E = 2.71828182845904523536

// Epsilon returns the machine epsilon for type F. It is the convergence
// tolerance used by every iterative method in this package.
func Epsilon[F Float]() F {
	var zero F
	switch any(zero).(type) {
	case float32:
		return F(epsilon32)
	default:
		return F(epsilon64)
	}
}

// Inf returns positive infinity of type F.
func Inf[F Float]() F {
	return F(math.Inf(1))
}

// NaN returns a quiet not-a-number of type F.
func NaN[F Float]() F {
	return F(math.NaN())
}

// Abs returns the absolute value of x.
func Abs[F Float](x F) F {
	if x >= 0 {
		return x
	}
	return -x
}

// Equal reports whether x and y agree within machine epsilon for F.
// All convergence loops in this package terminate on this predicate.
func Equal[F Float](x, y F) bool {
	return Abs(x-y) <= Epsilon[F]()
}
