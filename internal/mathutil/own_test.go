package mathutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// Comparison tolerances against the platform math routines.
const (
	sqrtTol32 = 1e-6
	sqrtTol64 = 1e-12
	powTol32  = 1e-4
	powTol64  = 1e-9
	trigTol   = 1e-4 // four decimal places
)

func testOwnSqrt[F Float](t *testing.T, tol float64) {
	t.Helper()
	inputs := []F{0, 0.5, 1, 2, 4, Inf[F]()}
	for _, x := range inputs {
		want := math.Sqrt(float64(x))
		got := float64(ownSqrt(x))
		if math.IsInf(want, 1) {
			assert.True(t, math.IsInf(got, 1), "ownSqrt(+Inf) = %v, want +Inf", got)
			continue
		}
		assert.True(t, scalar.EqualWithinAbsOrRel(got, want, tol, tol),
			"ownSqrt(%v) = %v, want %v", x, got, want)
	}
}

// TestOwnSqrt compares the Newton-Raphson square root against math.Sqrt.
func TestOwnSqrt(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testOwnSqrt[float32](t, sqrtTol32) })
	t.Run("float64", func(t *testing.T) { testOwnSqrt[float64](t, sqrtTol64) })
}

// TestOwnSqrt_Negative verifies that a negative argument produces NaN from
// both implementations. NaN compares unequal to everything including itself.
func TestOwnSqrt_Negative(t *testing.T) {
	s := math.Sqrt(-1)
	e := ownSqrt(-1.0)
	assert.False(t, s == s, "math.Sqrt(-1) should be NaN")
	assert.False(t, e == e, "ownSqrt(-1) should be NaN")
	assert.False(t, s == e, "two NaNs should not compare equal")

	e32 := ownSqrt(float32(-1))
	assert.False(t, e32 == e32, "ownSqrt(float32(-1)) should be NaN")
}

// TestOwnExp compares the Maclaurin series against math.Exp over a range that
// covers every argument the catalog feeds it.
func TestOwnExp(t *testing.T) {
	for x := -8.0; x <= 8.0; x += 0.25 {
		want := math.Exp(x)
		got := ownExp(x)
		assert.True(t, scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-10),
			"ownExp(%v) = %v, want %v", x, got, want)
	}
}

// TestOwnLog verifies the seeded fixed-point iteration against math.Log.
// The catalog only ever seeds it with e, via ownPow.
func TestOwnLog(t *testing.T) {
	inputs := []float64{0.25, 0.5, 1, 2, E, 4, 10, 100}
	for _, x := range inputs {
		want := math.Log(x)
		got := ownLog(x, E)
		assert.True(t, scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-10),
			"ownLog(%v, e) = %v, want %v", x, got, want)
	}
}

func testOwnPowInt[F Float](t *testing.T, tol float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	for n := 0; n <= 31; n++ {
		base := F(0.1 + 3.9*rng.Float64())
		want := math.Pow(float64(base), float64(n))
		got := float64(ownPowInt(base, n))
		assert.True(t, scalar.EqualWithinAbsOrRel(got, want, tol, tol),
			"ownPowInt(%v, %d) = %v, want %v", base, n, got, want)
	}
}

// TestOwnPowInt compares exponentiation by squaring against math.Pow for
// integer exponents 0..31 over random positive bases.
func TestOwnPowInt(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testOwnPowInt[float32](t, powTol32) })
	t.Run("float64", func(t *testing.T) { testOwnPowInt[float64](t, powTol64) })
}

// TestOwnPowInt_Negative verifies the reciprocal path.
func TestOwnPowInt_Negative(t *testing.T) {
	tests := []struct {
		base float64
		n    int
		want float64
	}{
		{2, -1, 0.5},
		{2, -2, 0.25},
		{4, -2, 0.0625},
		{10, -3, 0.001},
	}
	for _, tt := range tests {
		got := ownPowInt(tt.base, tt.n)
		assert.True(t, scalar.EqualWithinAbsOrRel(got, tt.want, powTol64, powTol64),
			"ownPowInt(%v, %d) = %v, want %v", tt.base, tt.n, got, tt.want)
	}
}

// TestOwnPow compares the exp/log reduction against math.Pow for real
// exponents, including the infinite shortcuts.
func TestOwnPow(t *testing.T) {
	exponents := []float64{math.Inf(1), math.Inf(-1), 2, -2, 1, -1, 0.5, -0.5, 0}
	for _, y := range exponents {
		want := math.Pow(2, y)
		got := ownPow(2, y)
		switch {
		case math.IsInf(want, 1):
			assert.True(t, math.IsInf(got, 1), "ownPow(2, %v) = %v, want +Inf", y, got)
		default:
			assert.True(t, scalar.EqualWithinAbsOrRel(got, want, powTol64, powTol64),
				"ownPow(2, %v) = %v, want %v", y, got, want)
		}
	}
}

// TestOwnPow_InfShortcut verifies that the infinite-exponent shortcuts do not
// depend on the base.
func TestOwnPow_InfShortcut(t *testing.T) {
	for _, base := range []float64{0.5, 2, 10} {
		assert.True(t, math.IsInf(ownPow(base, math.Inf(1)), 1),
			"ownPow(%v, +Inf) should be +Inf", base)
		assert.Zero(t, ownPow(base, math.Inf(-1)),
			"ownPow(%v, -Inf) should be 0", base)
	}
}

func testOwnSinCos[F Float](t *testing.T) {
	t.Helper()
	for deg := 0; deg < 360; deg++ {
		rad := float64(deg) * math.Pi / 180
		assert.InDelta(t, math.Sin(rad), float64(ownSin(F(rad))), trigTol,
			"ownSin(%d°)", deg)
		assert.InDelta(t, math.Cos(rad), float64(ownCos(F(rad))), trigTol,
			"ownCos(%d°)", deg)
	}
}

// TestOwnSinCos compares the shared alternating series against math.Sin and
// math.Cos for every whole degree of one full turn.
func TestOwnSinCos(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testOwnSinCos[float32](t) })
	t.Run("float64", func(t *testing.T) { testOwnSinCos[float64](t) })
}

// TestKernelSelection verifies the exported kernel surface behaves the same
// under either build configuration on a few anchor points.
func TestKernelSelection(t *testing.T) {
	assert.InDelta(t, math.Sqrt2, float64(Sqrt(2.0)), 1e-9)
	assert.InDelta(t, math.E, float64(Exp(1.0)), 1e-9)
	assert.InDelta(t, 8.0, float64(Pow(2.0, 3.0)), 1e-9)
	assert.InDelta(t, 1024.0, float64(PowInt(2.0, 10)), 1e-9)
	assert.InDelta(t, 1.0, float64(Sin(math.Pi/2)), 1e-9)
	assert.InDelta(t, -1.0, float64(Cos(math.Pi)), 1e-9)

	require.True(t, math.IsNaN(float64(Sqrt(-1.0))), "Sqrt(-1) must be NaN")
	require.True(t, math.IsInf(float64(Sqrt(Inf[float64]())), 1), "Sqrt(+Inf) must be +Inf")
}

func BenchmarkOwnSqrt(b *testing.B) {
	for b.Loop() {
		_ = ownSqrt(2.0)
	}
}

func BenchmarkPlatformSqrt(b *testing.B) {
	for b.Loop() {
		_ = math.Sqrt(2.0)
	}
}

func BenchmarkOwnSin(b *testing.B) {
	for b.Loop() {
		_ = ownSin(1.0)
	}
}

func BenchmarkOwnPow(b *testing.B) {
	for b.Loop() {
		_ = ownPow(2.0, 0.5)
	}
}
