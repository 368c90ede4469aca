// Package engine owns all simulation state and advances it one display
// frame at a time. Every mutable value (clock, charge, trace, particles)
// is touched only from Frame, on whichever single goroutine drives it.
package engine

import (
	"context"
	"math"

	"github.com/danahmedkhan/faraday/internal/induction"
	"github.com/danahmedkhan/faraday/internal/spark"
	"github.com/danahmedkhan/faraday/internal/trace"
)

// Coil layout as fractions of the viewport. The spawn region and the
// renderer both derive from these.
const (
	coilWidthFrac  = 0.40
	coilHeightFrac = 0.36
)

// Gauge is the externally owned charge display. The engine writes the
// percentage straight into it every frame instead of routing the value
// through the host's update path; the write must be O(1).
type Gauge interface {
	SetPercent(p float64)
}

// Viewport is the drawing surface geometry in subpixels.
type Viewport struct {
	Width, Height int
}

// CoilRegion returns the coil's bounding box centered in the viewport.
func CoilRegion(v Viewport) spark.Region {
	w := float64(v.Width) * coilWidthFrac
	h := float64(v.Height) * coilHeightFrac
	return spark.Region{
		X: (float64(v.Width) - w) / 2,
		Y: (float64(v.Height) - h) / 2,
		W: w,
		H: h,
	}
}

// Snapshot is the engine's per-frame output, consumed by the renderer
// and by headless recording. It holds no references into mutable engine
// state except Particles, which is valid until the next Frame.
type Snapshot struct {
	Clock        uint64
	Displacement float64
	Velocity     float64
	Speed        float64
	Polarity     induction.Polarity
	Glow         float64
	EMF          float64
	Charge       float64
	ChargeCycles int
	Trace        []float64
	Particles    []spark.Particle
	Viewport     Viewport
}

// Engine is the frame engine. Not safe for concurrent use; the driving
// loop is single-threaded by design.
type Engine struct {
	osc    induction.Oscillator
	charge induction.Charge
	trace  *trace.Buffer
	sparks *spark.Field
	view   Viewport
	gauge  Gauge
	seed   int64
}

func New(seed int64) *Engine {
	return &Engine{
		trace:  trace.New(0),
		sparks: spark.NewField(seed),
		seed:   seed,
	}
}

// Publish attaches the gauge the engine mutates each frame. Passing nil
// detaches it.
func (e *Engine) Publish(g Gauge) { e.gauge = g }

// Resize records new surface geometry. The trace window shrinks or grows
// with it; shrinking evicts the oldest samples immediately.
func (e *Engine) Resize(width, height int) {
	e.view = Viewport{Width: width, Height: height}
	e.trace.SetCapacity(width / 2)
}

func (e *Engine) Viewport() Viewport { return e.view }

// Frame runs one full simulation step: physics, derived signals, trace
// append, particle spawn and decay, and the gauge write. All work is
// synchronous.
func (e *Engine) Frame() Snapshot {
	displacement, velocity := e.osc.Step()
	speed := math.Abs(velocity)
	pol := induction.PolarityOf(velocity)

	e.charge.Observe(speed)

	// Capacity follows the live viewport width every frame.
	e.trace.SetCapacity(e.view.Width / 2)
	e.trace.Push(velocity)

	if speed > induction.SparkThreshold {
		e.sparks.Burst(CoilRegion(e.view), pol)
	}
	e.sparks.Advance()

	if e.gauge != nil {
		e.gauge.SetPercent(e.charge.Level())
	}

	return Snapshot{
		Clock:        e.osc.Clock(),
		Displacement: displacement,
		Velocity:     velocity,
		Speed:        speed,
		Polarity:     pol,
		Glow:         induction.Glow(speed),
		EMF:          induction.EMF(velocity),
		Charge:       e.charge.Level(),
		ChargeCycles: e.charge.Cycles(),
		Trace:        e.trace.Values(),
		Particles:    e.sparks.Particles(),
		Viewport:     e.view,
	}
}

// Reset restores everything except the clock, which never decreases.
func (e *Engine) Reset() {
	e.charge.Reset()
	e.trace.Reset()
	e.sparks.Reset()
}

// Run drives the engine headless for the given number of frames, calling
// fn after each one. Returning false from fn stops the run early. The
// context is checked between frames; a frame in flight always completes.
func (e *Engine) Run(ctx context.Context, frames int, fn func(Snapshot) bool) error {
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		snap := e.Frame()
		if fn != nil && !fn(snap) {
			return nil
		}
	}
	return nil
}
