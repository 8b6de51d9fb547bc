package easing

// Curve family constants. These are fixed by the classic Penner formulas:
// changing any of them changes the curve shapes, so they are not exposed as
// parameters.
const (
	pi     = 3.14159265358979323846
	halfPi = pi * 0.5
	twoPi  = pi * 2
)

const (
	// Back overshoot factor; the in/out curves dip about 10% past the
	// endpoints before settling.
	backFactor = 1.70158

	// In-out back uses a scaled overshoot so each half keeps the same
	// relative excursion.
	backFactorInOut = backFactor * 1.525
)

const (
	// Angular frequency of the elastic oscillation, in/out variants.
	elasticFactor = twoPi / 3

	// Angular frequency for the in-out variant.
	elasticFactorInOut = twoPi / 4.5
)

const (
	// Bounce segment boundaries are multiples of 1/bounceFactor; bounceGain
	// is the parabola steepness shared by all four segments.
	bounceFactor = 2.75
	bounceGain   = 7.5625
)
