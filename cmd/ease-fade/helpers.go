package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	easing "github.com/tphakala/go-easing"
	"github.com/tphakala/go-easing/internal/simdops"
)

// Sample format constants.
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	stereoChannels = 2
	wavPCMFormat   = 1
)

// wavFile holds a fully decoded WAV file.
type wavFile struct {
	buf      *audio.IntBuffer
	rate     int
	channels int
	bitDepth int
}

// readWAV decodes the whole input file into memory. Fades need the total
// length up front, so streaming buys nothing here.
func readWAV(path string) (*wavFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &wavFile{
		buf:      buf,
		rate:     buf.Format.SampleRate,
		channels: buf.Format.NumChannels,
		bitDepth: int(decoder.BitDepth),
	}, nil
}

// writeWAV encodes the buffer to the output path with the input's format.
func writeWAV(path string, w *wavFile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, w.rate, w.bitDepth, w.channels, wavPCMFormat)
	if err := enc.Write(w.buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return nil
}

// fullScale returns the PCM full-scale value for a bit depth.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// deinterleave splits interleaved PCM ints into normalized per-channel
// buffers of type F.
func deinterleave[F easing.Float](data []int, channels int, invScale float64) [][]F {
	frames := len(data) / channels
	out := make([][]F, channels)
	for ch := range out {
		out[ch] = make([]F, frames)
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = F(float64(data[i*channels+ch]) * invScale)
		}
	}
	return out
}

// interleave merges per-channel buffers back into the interleaved int slice.
// Stereo takes the SIMD interleave fast path through a scratch buffer.
func interleave[F easing.Float](dst []int, chans [][]F, scale float64) {
	channels := len(chans)
	if channels == stereoChannels {
		merged := make([]F, len(dst))
		simdops.For[F]().Interleave2(merged, chans[0], chans[1])
		for i, v := range merged {
			dst[i] = toPCM(float64(v), scale)
		}
		return
	}
	frames := len(dst) / channels
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			dst[i*channels+ch] = toPCM(float64(chans[ch][i]), scale)
		}
	}
}

// toPCM converts one normalized sample to PCM, clamped to full scale.
func toPCM(sample, scale float64) int {
	if sample > 1 {
		sample = 1
	} else if sample < -1 {
		sample = -1
	}
	return int(math.Round(sample * scale))
}

// applySegment runs one fade over [start, start+length) of every channel.
func applySegment[F easing.Float](chans [][]F, seg fadeSegment, rate, blockSize int) error {
	fn := lookupCurve[F](seg.Curve)
	if fn == nil {
		return fmt.Errorf("unknown curve %q", seg.Curve)
	}

	var env *easing.Envelope[F]
	var err error
	switch seg.Direction {
	case directionIn:
		env, err = easing.NewFadeIn(fn, blockSize)
	case directionOut:
		env, err = easing.NewFadeOut(fn, blockSize)
	default:
		return fmt.Errorf("unknown fade direction %q", seg.Direction)
	}
	if err != nil {
		return err
	}

	frames := len(chans[0])
	start := int(seg.Start * float64(rate))
	length := int(seg.Duration * float64(rate))
	if start < 0 || length <= 0 || start >= frames {
		return fmt.Errorf("fade segment [%gs +%gs] outside the file", seg.Start, seg.Duration)
	}
	end := min(start+length, frames)

	for _, ch := range chans {
		if err := env.Apply(ch[start:end], ch[start:end]); err != nil {
			return err
		}
	}
	return nil
}
