package easing

import "github.com/tphakala/go-easing/internal/mathutil"

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Func is the signature shared by every curve in the catalog.
type Func[F Float] func(t F) F

// Linear is the identity curve.
func Linear[F Float](t F) F {
	return t
}

// InSinusoidal accelerates along a quarter cosine wave.
func InSinusoidal[F Float](t F) F {
	return -mathutil.Cos(t*halfPi) + 1
}

// OutSinusoidal decelerates along a quarter sine wave.
func OutSinusoidal[F Float](t F) F {
	return mathutil.Sin(t * halfPi)
}

// InOutSinusoidal eases both ends along half a cosine wave.
func InOutSinusoidal[F Float](t F) F {
	return -0.5 * (mathutil.Cos(t*pi) - 1)
}

// InQuadratic accelerates as t².
func InQuadratic[F Float](t F) F {
	return t * t
}

// OutQuadratic is the point reflection of InQuadratic about (0.5, 0.5).
func OutQuadratic[F Float](t F) F {
	return -t * (t - 2)
}

// InOutQuadratic splices the scaled in and out halves at t = 0.5.
func InOutQuadratic[F Float](t F) F {
	d := t * 2
	if d < 1 {
		return 0.5 * d * d
	}
	d--
	return -0.5 * (d*(d-2) - 1)
}

// InCubic accelerates as t³.
func InCubic[F Float](t F) F {
	return t * t * t
}

// OutCubic decelerates as (t-1)³+1.
func OutCubic[F Float](t F) F {
	u := t - 1
	return u*u*u + 1
}

// InOutCubic splices the scaled in and out halves at t = 0.5.
func InOutCubic[F Float](t F) F {
	d := t * 2
	if d < 1 {
		return 0.5 * d * d * d
	}
	d -= 2
	return 0.5 * (d*d*d + 2)
}

// InQuartic accelerates as t⁴.
func InQuartic[F Float](t F) F {
	return t * t * t * t
}

// OutQuartic decelerates as 1-(t-1)⁴.
func OutQuartic[F Float](t F) F {
	u := t - 1
	return -(u*u*u*u - 1)
}

// InOutQuartic splices the scaled in and out halves at t = 0.5.
func InOutQuartic[F Float](t F) F {
	d := t * 2
	if d < 1 {
		return 0.5 * d * d * d * d
	}
	d -= 2
	return -0.5 * (d*d*d*d - 2)
}

// InQuintic accelerates as t⁵.
func InQuintic[F Float](t F) F {
	return t * t * t * t * t
}

// OutQuintic decelerates as (t-1)⁵+1.
func OutQuintic[F Float](t F) F {
	u := t - 1
	return u*u*u*u*u + 1
}

// InOutQuintic splices the scaled in and out halves at t = 0.5.
func InOutQuintic[F Float](t F) F {
	d := t * 2
	if d < 1 {
		return 0.5 * d * d * d * d * d
	}
	d -= 2
	return 0.5 * (d*d*d*d*d + 2)
}

// InExponential accelerates along 2^(10(t-1)). The exact endpoint is checked
// explicitly rather than relying on the power function's precision there.
func InExponential[F Float](t F) F {
	if mathutil.Equal(t, 0) {
		return 0
	}
	return mathutil.Pow(2, 10*(t-1))
}

// OutExponential decelerates along 1-2^(-10t), with an explicit endpoint
// check at t = 1.
func OutExponential[F Float](t F) F {
	if mathutil.Equal(t, 1) {
		return 1
	}
	return -mathutil.Pow(2, -10*t) + 1
}

// InOutExponential splices the exponential halves at t = 0.5, with explicit
// endpoint checks at both ends.
func InOutExponential[F Float](t F) F {
	if mathutil.Equal(t, 0) {
		return 0
	}
	if mathutil.Equal(t, 1) {
		return 1
	}
	d := t * 2
	if d < 1 {
		return 0.5 * mathutil.Pow(2, 10*(d-1))
	}
	return 0.5 * (-mathutil.Pow(2, -10*(d-1)) + 2)
}

// InCircular accelerates along a quarter-circle arc.
func InCircular[F Float](t F) F {
	return -(mathutil.Sqrt(1-t*t) - 1)
}

// OutCircular decelerates along a quarter-circle arc.
func OutCircular[F Float](t F) F {
	u := t - 1
	return mathutil.Sqrt(1 - u*u)
}

// InOutCircular splices the circular halves at t = 0.5.
func InOutCircular[F Float](t F) F {
	d := t * 2
	if d < 1 {
		return -0.5 * (mathutil.Sqrt(1-d*d) - 1)
	}
	d -= 2
	return 0.5 * (mathutil.Sqrt(1-d*d) + 1)
}

// InBack pulls slightly below 0 before accelerating to 1.
func InBack[F Float](t F) F {
	return t * t * ((backFactor+1)*t - backFactor)
}

// OutBack overshoots past 1 before settling.
func OutBack[F Float](t F) F {
	u := t - 1
	return u*u*((backFactor+1)*u+backFactor) + 1
}

// InOutBack overshoots at both ends, with the scaled overshoot factor.
func InOutBack[F Float](t F) F {
	d := t * 2
	if d < 1 {
		return 0.5 * (d * d * ((backFactorInOut+1)*d - backFactorInOut))
	}
	d -= 2
	return 0.5 * (d*d*((backFactorInOut+1)*d+backFactorInOut) + 2)
}

// InElastic winds up with a damped oscillation before snapping to 1. Exactly
// 0 at t <= 0 and 1 at t >= 1; the oscillation is unstable at the boundaries.
func InElastic[F Float](t F) F {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return -mathutil.Pow(2, 10*t-10) * elasticSin[F](10*float64(t)-10.75, elasticFactor)
}

// OutElastic overshoots 1 with a decaying oscillation. Exactly 0 at t <= 0
// and 1 at t >= 1.
func OutElastic[F Float](t F) F {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return mathutil.Pow(2, -10*t)*elasticSin[F](10*float64(t)-0.75, elasticFactor) + 1
}

// InOutElastic oscillates into and out of the midpoint. Exactly 0 at t <= 0
// and 1 at t >= 1.
func InOutElastic[F Float](t F) F {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	osc := elasticSin[F](20*float64(t)-11.125, elasticFactorInOut)
	if t < 0.5 {
		return -0.5 * (mathutil.Pow(2, 20*t-10) * osc)
	}
	return 0.5*(mathutil.Pow(2, -20*t+10)*osc) + 1
}

// elasticSin evaluates the oscillator term at float64 and converts once. The
// float32 sine series loses too much precision at elastic's large angular
// arguments, so the oscillator always runs at double precision.
func elasticSin[F Float](phase, factor float64) F {
	return F(mathutil.Sin(phase * factor))
}

// OutBounce decays through four parabolic bounce segments of decreasing
// amplitude.
func OutBounce[F Float](t F) F {
	switch {
	case t < 1/bounceFactor:
		return bounceGain * t * t
	case t < 2/bounceFactor:
		t -= 1.5 / bounceFactor
		return bounceGain*t*t + 0.75
	case t < 2.5/bounceFactor:
		t -= 2.25 / bounceFactor
		return bounceGain*t*t + 0.9375
	default:
		t -= 2.625 / bounceFactor
		return bounceGain*t*t + 0.984375
	}
}

// InBounce is the time reversal of OutBounce.
func InBounce[F Float](t F) F {
	return 1 - OutBounce(1-t)
}

// InOutBounce splices a reversed, halved InBounce with a halved OutBounce at
// t = 0.5.
func InOutBounce[F Float](t F) F {
	if t < 0.5 {
		return (1 - OutBounce(1-2*t)) * 0.5
	}
	return (1 + OutBounce(2*t-1)) * 0.5
}
