package easing

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-easing/internal/simdops"
)

// Errors returned by the envelope layer.
var (
	// ErrInvalidEnvelope indicates an invalid envelope configuration.
	ErrInvalidEnvelope = errors.New("invalid envelope configuration")

	// ErrLengthMismatch indicates dst and src differ in length.
	ErrLengthMismatch = errors.New("dst and src lengths differ")
)

// DefaultBlockSize is the default gain block size for envelopes, in samples.
// At 44.1 kHz this steps the gain about every 1.5 ms, well below audibility
// for fade ramps.
const DefaultBlockSize = 64

// Sample evaluates fn at n equally spaced points over [0,1], endpoints
// included. It returns nil when n < 2 (a table needs both endpoints).
func Sample[F Float](fn Func[F], n int) []F {
	if n < 2 {
		return nil
	}
	table := make([]F, n)
	for i := range table {
		table[i] = fn(F(i) / F(n-1))
	}
	return table
}

// Lerp maps an eased fraction t onto the interval [a, b].
func Lerp[F Float](a, b, t F) F {
	return a + (b-a)*t
}

// Envelope applies a curve as a gain ramp over a sample buffer. The gain is
// stepped per block rather than per sample (control-rate processing): each
// block is scaled by the curve evaluated at the block's center, which keeps
// the inner loop a plain SIMD scale.
type Envelope[F Float] struct {
	fn        Func[F]
	blockSize int
	reverse   bool
	ops       *simdops.Ops[F]
}

// NewFadeIn creates an envelope ramping from the curve's value at 0 up to its
// value at 1 across the buffer. blockSize 0 selects DefaultBlockSize.
func NewFadeIn[F Float](fn Func[F], blockSize int) (*Envelope[F], error) {
	return newEnvelope(fn, blockSize, false)
}

// NewFadeOut creates the time-reversed envelope: full gain at the start of
// the buffer, the curve's value at 0 by the end.
func NewFadeOut[F Float](fn Func[F], blockSize int) (*Envelope[F], error) {
	return newEnvelope(fn, blockSize, true)
}

func newEnvelope[F Float](fn Func[F], blockSize int, reverse bool) (*Envelope[F], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: curve function is nil", ErrInvalidEnvelope)
	}
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: block size must be positive", ErrInvalidEnvelope)
	}
	return &Envelope[F]{
		fn:        fn,
		blockSize: blockSize,
		reverse:   reverse,
		ops:       simdops.For[F](),
	}, nil
}

// Gain returns the envelope's gain at progress fraction t.
func (e *Envelope[F]) Gain(t F) F {
	if e.reverse {
		t = 1 - t
	}
	return e.fn(t)
}

// Apply writes src scaled by the envelope into dst. The fade spans the whole
// buffer. dst and src must be the same length and may alias; an empty buffer
// is a no-op.
func (e *Envelope[F]) Apply(dst, src []F) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	n := len(src)
	if n == 0 {
		return nil
	}
	for start := 0; start < n; start += e.blockSize {
		end := min(start+e.blockSize, n)
		center := (F(start) + F(end)) / (2 * F(n))
		e.ops.Scale(dst[start:end], src[start:end], e.Gain(center))
	}
	return nil
}
