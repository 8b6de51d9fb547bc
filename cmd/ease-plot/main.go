// Command ease-plot samples easing curves and prints them as CSV or an ASCII
// plot, or verifies their endpoint and finiteness properties.
//
// Usage:
//
//	ease-plot -curve outBounce                  # ASCII plot of one curve
//	ease-plot -curve inOutBack -format csv      # CSV samples to stdout
//	ease-plot -check                            # property report for all curves
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"

	easing "github.com/tphakala/go-easing"
)

const (
	defaultSamples = 101
	plotRows       = 21
	checkSamples   = 1001

	// endpointTol bounds |f(0)| and |f(1)-1|. Curves like outBack reach the
	// endpoint through cancellation and may be off by a rounding ulp.
	endpointTol = 1e-12
)

func main() {
	var (
		curveName = flag.String("curve", "", "Curve name (empty with -check means all)")
		samples   = flag.Int("samples", defaultSamples, "Number of sample points over [0,1]")
		format    = flag.String("format", "ascii", "Output format: ascii, csv")
		check     = flag.Bool("check", false, "Verify endpoint and finiteness properties")
		list      = flag.Bool("list", false, "List available curve names")
	)
	flag.Parse()

	if *list {
		for _, c := range curves {
			fmt.Println(c.name)
		}
		return
	}

	if *check {
		runCheck(*samples)
		return
	}

	if *curveName == "" {
		log.Fatal("missing -curve (use -list to see available names)")
	}
	fn := lookup(*curveName)
	if fn == nil {
		log.Fatalf("unknown curve %q (use -list to see available names)", *curveName)
	}
	if *samples < 2 {
		log.Fatalf("need at least 2 samples, got %d", *samples)
	}

	grid := floats.Span(make([]float64, *samples), 0, 1)
	values := make([]float64, *samples)
	for i, t := range grid {
		values[i] = fn(t)
	}

	switch *format {
	case "csv":
		printCSV(grid, values)
	case "ascii":
		printASCII(*curveName, grid, values)
	default:
		log.Fatalf("unknown format %q", *format)
	}
}

// lookup resolves a curve name case-insensitively.
func lookup(name string) easing.Func[float64] {
	for _, c := range curves {
		if strings.EqualFold(c.name, name) {
			return c.fn
		}
	}
	return nil
}

func printCSV(grid, values []float64) {
	fmt.Println("t,value")
	for i := range grid {
		fmt.Printf("%.6f,%.9f\n", grid[i], values[i])
	}
}

// printASCII renders the curve into a fixed character grid. The vertical
// range expands past [0,1] when the curve overshoots.
func printASCII(name string, grid, values []float64) {
	lo := math.Min(0, floats.Min(values))
	hi := math.Max(1, floats.Max(values))

	cols := len(values)
	rows := make([][]byte, plotRows)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(" ", cols))
	}
	for c, v := range values {
		r := int((hi - v) / (hi - lo) * float64(plotRows-1))
		rows[r][c] = '*'
	}

	fmt.Printf("%s over [0,1], value range [%.4f, %.4f]\n", name, floats.Min(values), floats.Max(values))
	for r, row := range rows {
		y := hi - (hi-lo)*float64(r)/float64(plotRows-1)
		fmt.Printf("%8.3f |%s\n", y, row)
	}
	fmt.Printf("%8s +%s\n", "", strings.Repeat("-", cols))
	fmt.Printf("%8s  t=0%st=1\n", "", strings.Repeat(" ", max(cols-7, 1)))
}

// runCheck prints a property report: endpoints, extrema and finiteness over a
// dense sweep, for every curve.
func runCheck(samples int) {
	if samples < checkSamples {
		samples = checkSamples
	}
	grid := floats.Span(make([]float64, samples), 0, 1)
	values := make([]float64, samples)

	fmt.Printf("%-18s %12s %12s %10s %10s %8s\n", "curve", "f(0)", "f(1)", "min", "max", "finite")
	failed := false
	for _, c := range curves {
		finite := true
		for i, t := range grid {
			values[i] = c.fn(t)
			if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
				finite = false
			}
		}
		f0, f1 := c.fn(0), c.fn(1)
		if math.Abs(f0) > endpointTol || math.Abs(f1-1) > endpointTol || !finite {
			failed = true
		}
		fmt.Printf("%-18s %12.3e %12.9f %10.6f %10.6f %8v\n",
			c.name, f0, f1, floats.Min(values), floats.Max(values), finite)
	}
	if failed {
		fmt.Fprintln(os.Stderr, "property check FAILED")
		os.Exit(1)
	}
	fmt.Println("all curves OK")
}
