// Package easing provides the standard catalog of animation easing curves in
// pure Go, generic over float32 and float64.
//
// A curve maps a progress fraction t, conventionally in [0,1], to an eased
// value of the same type. Every curve is a pure closed-form function: no
// state, no allocation, safe for unlimited concurrent use. The catalog holds
// 31 curves: Linear plus In/Out/InOut variants of Sinusoidal, Quadratic,
// Cubic, Quartic, Quintic, Exponential, Circular, Back, Elastic and Bounce.
//
// # Usage
//
//	y := easing.OutCubic(0.25)            // float64
//	z := easing.InQuadratic(float32(0.5)) // float32
//
// An animation driver typically binds a [Func] once and evaluates it per
// frame:
//
//	var curve easing.Func[float64] = easing.InOutSinusoidal[float64]
//	for t := 0.0; t <= 1.0; t += 1.0 / 60 {
//	    draw(easing.Lerp(x0, x1, curve(t)))
//	}
//
// # Contract
//
// No range checking is performed: t outside [0,1] is extrapolated by the same
// formula, so clamp before calling if you need clamping. Every curve maps 0
// to exactly 0 and 1 to exactly 1. The Back, Elastic and Bounce families
// deliberately exceed [0,1] between the endpoints; that overshoot is the
// point of those curves.
//
// # Envelopes
//
// [Sample] renders a curve into a lookup table, and [Envelope] applies a
// curve as a block-stepped gain ramp over a sample buffer (an audio fade),
// using SIMD-accelerated scaling where available.
//
// # Arithmetic kernel
//
// The transcendental math behind the curves lives in an internal kernel with
// two interchangeable implementations: the platform math package (default),
// or self-contained iterative methods selected by building with
// -tags easing_ownmath. The selection changes no curve's input/output
// contract, only how the math is computed.
package easing
