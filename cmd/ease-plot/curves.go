package main

import easing "github.com/tphakala/go-easing"

// namedCurve binds a CLI name to a catalog function. The library keeps no
// registry; each consumer enumerates the curves it cares about.
type namedCurve struct {
	name string
	fn   easing.Func[float64]
}

var curves = []namedCurve{
	{"linear", easing.Linear[float64]},
	{"inSinusoidal", easing.InSinusoidal[float64]},
	{"outSinusoidal", easing.OutSinusoidal[float64]},
	{"inOutSinusoidal", easing.InOutSinusoidal[float64]},
	{"inQuadratic", easing.InQuadratic[float64]},
	{"outQuadratic", easing.OutQuadratic[float64]},
	{"inOutQuadratic", easing.InOutQuadratic[float64]},
	{"inCubic", easing.InCubic[float64]},
	{"outCubic", easing.OutCubic[float64]},
	{"inOutCubic", easing.InOutCubic[float64]},
	{"inQuartic", easing.InQuartic[float64]},
	{"outQuartic", easing.OutQuartic[float64]},
	{"inOutQuartic", easing.InOutQuartic[float64]},
	{"inQuintic", easing.InQuintic[float64]},
	{"outQuintic", easing.OutQuintic[float64]},
	{"inOutQuintic", easing.InOutQuintic[float64]},
	{"inExponential", easing.InExponential[float64]},
	{"outExponential", easing.OutExponential[float64]},
	{"inOutExponential", easing.InOutExponential[float64]},
	{"inCircular", easing.InCircular[float64]},
	{"outCircular", easing.OutCircular[float64]},
	{"inOutCircular", easing.InOutCircular[float64]},
	{"inBack", easing.InBack[float64]},
	{"outBack", easing.OutBack[float64]},
	{"inOutBack", easing.InOutBack[float64]},
	{"inElastic", easing.InElastic[float64]},
	{"outElastic", easing.OutElastic[float64]},
	{"inOutElastic", easing.InOutElastic[float64]},
	{"inBounce", easing.InBounce[float64]},
	{"outBounce", easing.OutBounce[float64]},
	{"inOutBounce", easing.InOutBounce[float64]},
}
