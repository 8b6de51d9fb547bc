// Command ease-demo is an interactive viewer for the easing catalog. It draws
// the active curve and sweeps an animated marker along it.
//
// Controls:
//
//	Left/Right Arrow  - Previous/next curve
//	Space             - Toggle pause
//	A                 - Toggle auto-advance to the next curve after each sweep
//	Q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	easing "github.com/tphakala/go-easing"
)

const (
	screenWidth  = 800
	screenHeight = 600

	// Plot box geometry. The box spans t in [0,1] horizontally and the
	// eased value vertically; overshooting curves draw outside it.
	plotLeft   = 80
	plotTop    = 120
	plotSize   = 360
	plotBottom = plotTop + plotSize

	// Sweep timing at the default 60 ticks per second.
	sweepStep = 1.0 / 120 // two seconds per sweep
	holdTicks = 45        // pause at the end of each sweep

	curveSamples = 240
)

var (
	gridColor   = color.RGBA{60, 60, 70, 255}
	curveColor  = color.RGBA{90, 200, 120, 255}
	markerColor = color.RGBA{240, 120, 80, 255}
	trackColor  = color.RGBA{120, 140, 230, 255}
)

var (
	startFlag = flag.String("curve", "", "Start at a specific curve name")
	autoFlag  = flag.Bool("auto", false, "Advance to the next curve after each sweep")
)

// viewer implements ebiten.Game.
type viewer struct {
	index  int
	t      float64
	hold   int
	paused bool
	auto   bool

	table []float64 // cached curve samples for drawing
}

func newViewer(startCurve string, auto bool) *viewer {
	v := &viewer{auto: auto}
	for i, c := range curves {
		if c.name == startCurve {
			v.index = i
			break
		}
	}
	v.resample()
	return v
}

// resample caches the active curve's plot table.
func (v *viewer) resample() {
	v.table = easing.Sample(curves[v.index].fn, curveSamples+1)
}

func (v *viewer) step(delta int) {
	v.index = (v.index + delta + len(curves)) % len(curves)
	v.t = 0
	v.hold = 0
	v.resample()
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.paused = !v.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		v.auto = !v.auto
	}

	if v.paused {
		return nil
	}
	if v.t >= 1 {
		v.hold++
		if v.hold >= holdTicks {
			if v.auto {
				v.step(1)
			} else {
				v.t = 0
				v.hold = 0
			}
		}
		return nil
	}
	v.t = min(v.t+sweepStep, 1)
	return nil
}

// plotX maps progress to screen x; plotY maps an eased value to screen y.
func plotX(t float64) float32 {
	return float32(plotLeft + t*plotSize)
}

func plotY(y float64) float32 {
	return float32(plotBottom - y*plotSize)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	c := curves[v.index]

	// Plot box and the y=0 / y=1 guides.
	vector.StrokeRect(screen, plotLeft, plotTop, plotSize, plotSize, 1, gridColor, true)
	vector.StrokeLine(screen, plotLeft, plotY(0.5), plotLeft+plotSize, plotY(0.5), 1, gridColor, true)

	// Curve polyline.
	for i := 0; i < curveSamples; i++ {
		t0 := float64(i) / curveSamples
		t1 := float64(i+1) / curveSamples
		vector.StrokeLine(screen, plotX(t0), plotY(v.table[i]), plotX(t1), plotY(v.table[i+1]),
			2, curveColor, true)
	}

	// Marker on the curve plus the animated property it drives: a dot
	// sliding along a horizontal track, eased the way a UI element would be.
	eased := c.fn(v.t)
	vector.DrawFilledCircle(screen, plotX(v.t), plotY(eased), 5, markerColor, true)

	trackY := float32(plotBottom + 60)
	vector.StrokeLine(screen, plotLeft, trackY, plotLeft+plotSize, trackY, 1, gridColor, true)
	vector.DrawFilledCircle(screen, plotX(easing.Lerp(0, 1, eased)), trackY, 8, trackColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%d/%d)", c.name, v.index+1, len(curves)), plotLeft, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("t=%.3f  f(t)=%+.4f", v.t, eased), plotLeft, 40)
	status := "arrows: switch curve   space: pause   a: auto   q: quit"
	if v.paused {
		status = "[paused] " + status
	}
	ebitenutil.DebugPrintAt(screen, status, plotLeft, screenHeight-30)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("go-easing curve viewer")

	if err := ebiten.RunGame(newViewer(*startFlag, *autoFlag)); err != nil {
		log.Fatal(err)
	}
}
