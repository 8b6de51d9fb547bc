package easing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-easing/internal/testutil"
)

// denseSamples is the grid size for the finiteness sweep.
const denseSamples = 12345

type namedCurve[F Float] struct {
	name string
	fn   Func[F]
}

// catalog lists all 31 curves in family order.
func catalog[F Float]() []namedCurve[F] {
	return []namedCurve[F]{
		{"Linear", Linear[F]},
		{"InSinusoidal", InSinusoidal[F]},
		{"OutSinusoidal", OutSinusoidal[F]},
		{"InOutSinusoidal", InOutSinusoidal[F]},
		{"InQuadratic", InQuadratic[F]},
		{"OutQuadratic", OutQuadratic[F]},
		{"InOutQuadratic", InOutQuadratic[F]},
		{"InCubic", InCubic[F]},
		{"OutCubic", OutCubic[F]},
		{"InOutCubic", InOutCubic[F]},
		{"InQuartic", InQuartic[F]},
		{"OutQuartic", OutQuartic[F]},
		{"InOutQuartic", InOutQuartic[F]},
		{"InQuintic", InQuintic[F]},
		{"OutQuintic", OutQuintic[F]},
		{"InOutQuintic", InOutQuintic[F]},
		{"InExponential", InExponential[F]},
		{"OutExponential", OutExponential[F]},
		{"InOutExponential", InOutExponential[F]},
		{"InCircular", InCircular[F]},
		{"OutCircular", OutCircular[F]},
		{"InOutCircular", InOutCircular[F]},
		{"InBack", InBack[F]},
		{"OutBack", OutBack[F]},
		{"InOutBack", InOutBack[F]},
		{"InElastic", InElastic[F]},
		{"OutElastic", OutElastic[F]},
		{"InOutElastic", InOutElastic[F]},
		{"InBounce", InBounce[F]},
		{"OutBounce", OutBounce[F]},
		{"InOutBounce", InOutBounce[F]},
	}
}

func testEndpoints[F Float](t *testing.T, tol float64) {
	t.Helper()
	for _, c := range catalog[F]() {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, 0, float64(c.fn(0)), tol, "%s(0)", c.name)
			assert.InDelta(t, 1, float64(c.fn(1)), tol, "%s(1)", c.name)
		})
	}
}

// TestEndpoints verifies every curve maps 0 to 0 and 1 to 1.
func TestEndpoints(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testEndpoints[float32](t, testutil.EndpointTolerance32) })
	t.Run("float64", func(t *testing.T) { testEndpoints[float64](t, testutil.EndpointTolerance64) })
}

func testFinite[F Float](t *testing.T) {
	t.Helper()
	for _, c := range catalog[F]() {
		t.Run(c.name, func(t *testing.T) {
			for i := 0; i < denseSamples; i++ {
				v := float64(c.fn(F(i) / F(denseSamples-1)))
				if !testutil.AssertFinite(t, v, "%s at sample %d", c.name, i) {
					return
				}
			}
		})
	}
}

// TestFinite sweeps every curve densely over [0,1] and rejects NaN or Inf.
func TestFinite(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFinite[float32](t) })
	t.Run("float64", func(t *testing.T) { testFinite[float64](t) })
}

// TestSymmetry verifies Out(t) == 1 - In(1-t) for the families whose out
// variant is the point reflection of in.
func TestSymmetry(t *testing.T) {
	pairs := []struct {
		name    string
		in, out Func[float64]
	}{
		{"Quadratic", InQuadratic[float64], OutQuadratic[float64]},
		{"Cubic", InCubic[float64], OutCubic[float64]},
		{"Quartic", InQuartic[float64], OutQuartic[float64]},
		{"Quintic", InQuintic[float64], OutQuintic[float64]},
		{"Bounce", InBounce[float64], OutBounce[float64]},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for i := 0; i <= 256; i++ {
				x := float64(i) / 256
				assert.InDelta(t, p.out(x), 1-p.in(1-x), testutil.SymmetryTolerance,
					"Out(%v) vs 1-In(1-%v)", x, x)
			}
		})
	}
}

// TestInOutMidpoint verifies both halves of every in-out splice meet at
// (0.5, 0.5): the branch boundary value and continuity across it.
func TestInOutMidpoint(t *testing.T) {
	curves := []struct {
		name string
		fn   Func[float64]
		tol  float64
	}{
		{"InOutSinusoidal", InOutSinusoidal[float64], 1e-6},
		{"InOutQuadratic", InOutQuadratic[float64], 1e-6},
		{"InOutCubic", InOutCubic[float64], 1e-6},
		{"InOutQuartic", InOutQuartic[float64], 1e-6},
		{"InOutQuintic", InOutQuintic[float64], 1e-6},
		{"InOutExponential", InOutExponential[float64], 1e-6},
		// The circular splice has a vertical tangent: the symmetric
		// difference over ±h is ~2·√(2h) for any correct implementation.
		{"InOutCircular", InOutCircular[float64], 1e-4},
		{"InOutBack", InOutBack[float64], 1e-6},
		{"InOutElastic", InOutElastic[float64], 1e-6},
		{"InOutBounce", InOutBounce[float64], 1e-6},
	}
	const h = 1e-9
	for _, c := range curves {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, 0.5, c.fn(0.5), 1e-9, "%s(0.5)", c.name)
			assert.InDelta(t, c.fn(0.5-h), c.fn(0.5+h), c.tol,
				"%s discontinuous at the splice", c.name)
		})
	}
}

// TestKnownValues spot-checks closed-form anchor points.
func TestKnownValues(t *testing.T) {
	assert.Equal(t, 0.25, InQuadratic(0.5))
	assert.Equal(t, 0.3, Linear(0.3))
	assert.Equal(t, float32(0.3), Linear(float32(0.3)))
	assert.InDelta(t, 1.0, OutBounce(1.0), 1e-12)

	// InOutBack(0.25) takes the first branch: d = 0.5 < 1.
	d := 0.5
	want := 0.5 * (d * d * ((backFactorInOut+1)*d - backFactorInOut))
	assert.InDelta(t, want, InOutBack(0.25), 1e-15)
}

// TestExtrapolation verifies out-of-range t passes straight through the
// formulas, except the elastic clamps which are part of those curves.
func TestExtrapolation(t *testing.T) {
	assert.Equal(t, 4.0, InQuadratic(2.0))
	assert.Equal(t, -0.5, Linear(-0.5))

	assert.Zero(t, InElastic(-1.0))
	assert.Equal(t, 1.0, InElastic(2.0))
	assert.Zero(t, OutElastic(-0.25))
	assert.Equal(t, 1.0, OutElastic(1.5))
	assert.Zero(t, InOutElastic(0.0))
	assert.Equal(t, 1.0, InOutElastic(1.0))
}

// TestOvershoot verifies the back and elastic families leave [0,1] between
// the endpoints, which is their defining behavior.
func TestOvershoot(t *testing.T) {
	tests := []struct {
		name  string
		fn    Func[float64]
		below bool // excursion below 0 rather than above 1
	}{
		{"InBack", InBack[float64], true},
		{"OutBack", OutBack[float64], false},
		{"InElastic", InElastic[float64], true},
		{"OutElastic", OutElastic[float64], false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Sample(tt.fn, 1001)
			require.NotNil(t, table)
			if tt.below {
				assert.Less(t, floats.Min(table), 0.0, "%s never dips below 0", tt.name)
			} else {
				assert.Greater(t, floats.Max(table), 1.0, "%s never exceeds 1", tt.name)
			}
		})
	}
}

// TestBounceStaysInRange: bounce overshoots in velocity, not value.
func TestBounceStaysInRange(t *testing.T) {
	for _, fn := range []Func[float64]{InBounce[float64], OutBounce[float64], InOutBounce[float64]} {
		table := Sample(fn, 1001)
		testutil.AssertAllInRange(t, table, -1e-12, 1+1e-12)
	}
}

func testDeterminism[F Float](t *testing.T) {
	t.Helper()
	inputs := []F{0, 0.125, 0.37, 0.5, 0.75, 1}
	for _, c := range catalog[F]() {
		for _, x := range inputs {
			a, b := c.fn(x), c.fn(x)
			if a != b {
				t.Errorf("%s(%v) not deterministic: %v != %v", c.name, x, a, b)
			}
		}
	}
}

// TestDeterminism verifies repeated invocation is bit-identical.
func TestDeterminism(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testDeterminism[float32](t) })
	t.Run("float64", func(t *testing.T) { testDeterminism[float64](t) })
}

func BenchmarkCatalog(b *testing.B) {
	for _, c := range catalog[float64]() {
		b.Run(c.name, func(b *testing.B) {
			t := 0.0
			for b.Loop() {
				_ = c.fn(t)
				t += 1.0 / 4096
				if t > 1 {
					t = 0
				}
			}
		})
	}
}

// Endpoint exactness at math.Pi-derived constants is covered by TestEndpoints;
// this anchors the package-local pi against the platform constant.
func TestPiConstant(t *testing.T) {
	assert.InDelta(t, math.Pi, pi, 1e-15)
}
