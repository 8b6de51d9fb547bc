//go:build easing_ownmath

package mathutil

// Kernel selection: self-contained numeric methods, no platform math.

// Sqrt returns the square root of x. Sqrt(-x) for x > 0 is NaN; Sqrt(+Inf)
// is +Inf.
func Sqrt[F Float](x F) F { return ownSqrt(x) }

// Exp returns eˣ.
func Exp[F Float](x F) F { return ownExp(x) }

// Pow returns xʸ. Pow(x, +Inf) is +Inf and Pow(x, -Inf) is 0 for any base;
// negative bases with non-integral exponents are undefined.
func Pow[F Float](x, y F) F { return ownPow(x, y) }

// PowInt returns x raised to the integer power n.
func PowInt[F Float](x F, n int) F { return ownPowInt(x, n) }

// Sin returns the sine of x (radians).
func Sin[F Float](x F) F { return ownSin(x) }

// Cos returns the cosine of x (radians).
func Cos[F Float](x F) F { return ownCos(x) }
