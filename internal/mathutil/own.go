package mathutil

// Self-contained kernel: square root, exponential, logarithm, power, sine and
// cosine built from iterative numeric methods, with no dependency on the
// platform math routines. The exported names alias these when the module is
// built with -tags easing_ownmath; they are compiled unconditionally so that
// either build can compare them against the platform implementations.
//
// Each loop runs until two successive iterates (or partial sums) agree within
// machine epsilon for F. Floating-point precision is finite, so for the
// documented domains the tolerance is always reached.

// ownSqrt computes the square root by Newton-Raphson iteration on y²-x,
// seeded at x. Negative input yields NaN and +Inf maps to +Inf, matching
// standard sqrt at the boundaries where the iteration itself cannot converge.
func ownSqrt[F Float](x F) F {
	if x >= 0 && x < Inf[F]() {
		curr, prev := x, F(0)
		for !Equal(curr, prev) {
			curr, prev = 0.5*(curr+x/curr), curr
		}
		return curr
	}
	if x < 0 {
		return NaN[F]()
	}
	return Inf[F]()
}

// ownExp sums the Maclaurin series of eˣ. Each term is derived from the
// previous one (multiply by x, divide by the next integer), and summation
// stops when adding the next term no longer moves the sum.
func ownExp[F Float](x F) F {
	sum, n, t := F(1), F(1), x
	for i := 2; !Equal(sum, sum+t/n); i++ {
		sum += t / n
		n *= F(i)
		t *= x
	}
	return sum
}

// ownLog solves exp(y) = x by the fixed-point iteration
// y ← y + 2(x-exp(y))/(x+exp(y)), starting from the caller's seed. It is a
// building block for ownPow (seeded with e) and deliberately not part of the
// exported kernel surface.
func ownLog[F Float](x, y F) F {
	for {
		e := ownExp(y)
		next := y + 2*(x-e)/(x+e)
		if Equal(y, next) {
			return y
		}
		y = next
	}
}

// ownPowInt raises x to an integer power by recursive exponentiation by
// squaring. Negative exponents take the reciprocal.
func ownPowInt[F Float](x F, n int) F {
	switch {
	case n == 0:
		return 1
	case n == 1:
		return x
	case n > 1:
		if n&1 == 1 {
			return x * ownPowInt(x, n-1)
		}
		half := ownPowInt(x, n/2)
		return half * half
	default:
		return 1 / ownPowInt(x, -n)
	}
}

// ownPow reduces xʸ to exp(log(x)·y). Exponents of ±Inf short-circuit to
// +Inf and 0 regardless of base, matching standard pow asymptotics. Negative
// bases with non-integral exponents are undefined: the result is whatever the
// log-based reduction produces.
func ownPow[F Float](x, y F) F {
	switch {
	case y == Inf[F]():
		return Inf[F]()
	case y == -Inf[F]():
		return 0
	}
	return ownExp(ownLog(x, F(E)) * y)
}

// ownSincos accumulates the shared alternating power series behind sine and
// cosine. The caller seeds the partial sum, denominator, term index, sign and
// first pending term; sin and cos differ only in those seeds.
func ownSincos[F Float](x, sum, n F, i, s int, t F) F {
	for !Equal(sum, sum+t*F(s)/n) {
		sum += t * F(s) / n
		n *= F(i * (i + 1))
		i += 2
		s = -s
		t *= x * x
	}
	return sum
}

// ownSin sums the Taylor series of sin around 0: x - x³/3! + x⁵/5! - …
func ownSin[F Float](x F) F {
	return ownSincos(x, x, 6, 4, -1, x*x*x)
}

// ownCos sums the Taylor series of cos around 0: 1 - x²/2! + x⁴/4! - …
func ownCos[F Float](x F) F {
	return ownSincos(x, 1, 2, 3, -1, x*x)
}
