package main

import (
	"strings"

	easing "github.com/tphakala/go-easing"
)

// curveNames lists the catalog in family order, for -list and error messages.
var curveNames = []string{
	"linear",
	"inSinusoidal", "outSinusoidal", "inOutSinusoidal",
	"inQuadratic", "outQuadratic", "inOutQuadratic",
	"inCubic", "outCubic", "inOutCubic",
	"inQuartic", "outQuartic", "inOutQuartic",
	"inQuintic", "outQuintic", "inOutQuintic",
	"inExponential", "outExponential", "inOutExponential",
	"inCircular", "outCircular", "inOutCircular",
	"inBack", "outBack", "inOutBack",
	"inElastic", "outElastic", "inOutElastic",
	"inBounce", "outBounce", "inOutBounce",
}

// lookupCurve resolves a curve name case-insensitively for the requested
// precision. The library keeps no registry; binding names is the caller's job.
func lookupCurve[F easing.Float](name string) easing.Func[F] {
	switch strings.ToLower(name) {
	case "linear":
		return easing.Linear[F]
	case "insinusoidal":
		return easing.InSinusoidal[F]
	case "outsinusoidal":
		return easing.OutSinusoidal[F]
	case "inoutsinusoidal":
		return easing.InOutSinusoidal[F]
	case "inquadratic":
		return easing.InQuadratic[F]
	case "outquadratic":
		return easing.OutQuadratic[F]
	case "inoutquadratic":
		return easing.InOutQuadratic[F]
	case "incubic":
		return easing.InCubic[F]
	case "outcubic":
		return easing.OutCubic[F]
	case "inoutcubic":
		return easing.InOutCubic[F]
	case "inquartic":
		return easing.InQuartic[F]
	case "outquartic":
		return easing.OutQuartic[F]
	case "inoutquartic":
		return easing.InOutQuartic[F]
	case "inquintic":
		return easing.InQuintic[F]
	case "outquintic":
		return easing.OutQuintic[F]
	case "inoutquintic":
		return easing.InOutQuintic[F]
	case "inexponential":
		return easing.InExponential[F]
	case "outexponential":
		return easing.OutExponential[F]
	case "inoutexponential":
		return easing.InOutExponential[F]
	case "incircular":
		return easing.InCircular[F]
	case "outcircular":
		return easing.OutCircular[F]
	case "inoutcircular":
		return easing.InOutCircular[F]
	case "inback":
		return easing.InBack[F]
	case "outback":
		return easing.OutBack[F]
	case "inoutback":
		return easing.InOutBack[F]
	case "inelastic":
		return easing.InElastic[F]
	case "outelastic":
		return easing.OutElastic[F]
	case "inoutelastic":
		return easing.InOutElastic[F]
	case "inbounce":
		return easing.InBounce[F]
	case "outbounce":
		return easing.OutBounce[F]
	case "inoutbounce":
		return easing.InOutBounce[F]
	default:
		return nil
	}
}
