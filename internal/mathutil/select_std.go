//go:build !easing_ownmath

package mathutil

import "math"

// Kernel selection: platform math routines. Computation runs at float64 and
// converts back to F, as the standard library does not provide float32
// transcendentals.

// Sqrt returns the square root of x. Sqrt(-x) for x > 0 is NaN; Sqrt(+Inf)
// is +Inf.
func Sqrt[F Float](x F) F { return F(math.Sqrt(float64(x))) }

// Exp returns eˣ.
func Exp[F Float](x F) F { return F(math.Exp(float64(x))) }

// Pow returns xʸ with the standard math.Pow special cases.
func Pow[F Float](x, y F) F { return F(math.Pow(float64(x), float64(y))) }

// PowInt returns x raised to the integer power n.
func PowInt[F Float](x F, n int) F { return F(math.Pow(float64(x), float64(n))) }

// Sin returns the sine of x (radians).
func Sin[F Float](x F) F { return F(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos[F Float](x F) F { return F(math.Cos(float64(x))) }
