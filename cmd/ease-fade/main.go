// Command ease-fade applies eased fade-in/fade-out envelopes to WAV files.
//
// Usage:
//
//	ease-fade -curve outCubic -fade-in 2 -fade-out 3 input.wav output.wav
//	ease-fade -plan fades.yaml input.wav output.wav
//	ease-fade -fast -curve linear -fade-in 1 input.wav output.wav   # float32 path
//
// A fade plan is a yaml file listing fade segments:
//
//	fades:
//	  - {curve: outSinusoidal, direction: in, start: 0, duration: 1.5}
//	  - {curve: inQuintic, direction: out, start: 58.5, duration: 1.5}
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	easing "github.com/tphakala/go-easing"
)

func main() {
	var (
		curveName = flag.String("curve", "linear", "Curve name for -fade-in/-fade-out")
		fadeIn    = flag.Float64("fade-in", 0, "Fade-in duration in seconds")
		fadeOut   = flag.Float64("fade-out", 0, "Fade-out duration in seconds")
		planPath  = flag.String("plan", "", "Yaml fade plan (overrides -curve/-fade-in/-fade-out)")
		blockSize = flag.Int("block", easing.DefaultBlockSize, "Gain block size in samples")
		fast      = flag.Bool("fast", false, "Process at float32 precision")
		list      = flag.Bool("list", false, "List available curve names")
		verbose   = flag.Bool("verbose", false, "Print processing details")
	)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(curveNames, "\n"))
		return
	}
	if flag.NArg() != 2 {
		log.Fatal("usage: ease-fade [flags] input.wav output.wav")
	}

	input, err := readWAV(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("Input: %d Hz, %d channels, %d-bit, %d frames",
			input.rate, input.channels, input.bitDepth,
			len(input.buf.Data)/input.channels)
	}

	plan, err := buildPlan(*planPath, *curveName, *fadeIn, *fadeOut, input)
	if err != nil {
		log.Fatal(err)
	}

	if *fast {
		err = process[float32](input, plan, *blockSize)
	} else {
		err = process[float64](input, plan, *blockSize)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := writeWAV(flag.Arg(1), input); err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("Wrote %s (%d fades applied)", flag.Arg(1), len(plan.Fades))
	}
}

// buildPlan loads the yaml plan, or synthesizes one from the simple flags:
// a fade-in at the head of the file, a fade-out at its tail.
func buildPlan(planPath, curveName string, fadeIn, fadeOut float64, input *wavFile) (*fadePlan, error) {
	if planPath != "" {
		return loadPlan(planPath)
	}
	if fadeIn <= 0 && fadeOut <= 0 {
		return nil, fmt.Errorf("nothing to do: need -fade-in, -fade-out or -plan")
	}
	totalSec := float64(len(input.buf.Data)/input.channels) / float64(input.rate)
	var plan fadePlan
	if fadeIn > 0 {
		plan.Fades = append(plan.Fades, fadeSegment{
			Curve: curveName, Direction: directionIn, Start: 0, Duration: fadeIn,
		})
	}
	if fadeOut > 0 {
		plan.Fades = append(plan.Fades, fadeSegment{
			Curve: curveName, Direction: directionOut, Start: totalSec - fadeOut, Duration: fadeOut,
		})
	}
	return &plan, nil
}

// process runs every fade segment over the decoded buffer at precision F.
func process[F easing.Float](input *wavFile, plan *fadePlan, blockSize int) error {
	scale, err := fullScale(input.bitDepth)
	if err != nil {
		return err
	}

	chans := deinterleave[F](input.buf.Data, input.channels, 1/scale)
	for _, seg := range plan.Fades {
		if err := applySegment(chans, seg, input.rate, blockSize); err != nil {
			return err
		}
	}
	interleave(input.buf.Data, chans, scale)
	return nil
}
