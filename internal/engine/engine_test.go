package engine_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/danahmedkhan/faraday/internal/engine"
	"github.com/danahmedkhan/faraday/internal/induction"
)

type recordingGauge struct {
	writes []float64
}

func (g *recordingGauge) SetPercent(p float64) { g.writes = append(g.writes, p) }

var _ = Describe("Engine", func() {
	var eng *engine.Engine

	BeforeEach(func() {
		eng = engine.New(42)
		eng.Resize(200, 120)
	})

	Describe("a single frame from a fresh clock", func() {
		It("advances the clock to 1 and matches the closed-form motion", func() {
			snap := eng.Frame()

			Expect(snap.Clock).To(Equal(uint64(1)))
			Expect(snap.Displacement).To(BeNumerically("~", induction.Displacement(1), 1e-12))
			Expect(snap.Velocity).To(BeNumerically("~", induction.Velocity(1), 1e-12))
			Expect(snap.Speed).To(Equal(math.Abs(snap.Velocity)))
		})

		It("classifies polarity from the velocity sign", func() {
			snap := eng.Frame()
			Expect(snap.Polarity).To(Equal(induction.PolarityOf(snap.Velocity)))
		})
	})

	Describe("running many frames", func() {
		It("keeps every invariant", func() {
			lifespan := int(1.0 / induction.SparkDecay)
			var prevClock uint64

			err := eng.Run(context.Background(), 2000, func(s engine.Snapshot) bool {
				Expect(s.Clock).To(BeNumerically(">", prevClock))
				prevClock = s.Clock

				Expect(s.Charge).To(And(
					BeNumerically(">=", 0),
					BeNumerically("<=", 100),
				))
				Expect(math.Abs(s.Velocity)).To(BeNumerically("<=", induction.MaxSpeed+1e-9))
				Expect(len(s.Trace)).To(BeNumerically("<=", s.Viewport.Width/2))

				Expect(len(s.Particles)).To(BeNumerically("<=", induction.SparkBatch*lifespan))
				for _, p := range s.Particles {
					Expect(p.Life).To(BeNumerically(">", 0))
					Expect(p.Life).To(BeNumerically("<=", 1))
				}
				return true
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("wraps the charge meter back to zero", func() {
			sawHigh := false
			sawWrap := false
			prev := 0.0

			_ = eng.Run(context.Background(), 5000, func(s engine.Snapshot) bool {
				if s.Charge > 90 {
					sawHigh = true
				}
				if sawHigh && s.Charge == 0 && prev > 0 {
					sawWrap = true
				}
				prev = s.Charge
				return !sawWrap
			})

			Expect(sawHigh).To(BeTrue(), "charge never approached 100")
			Expect(sawWrap).To(BeTrue(), "charge never wrapped to zero")
		})
	})

	Describe("viewport shrink mid-run", func() {
		It("evicts oldest trace samples down to the new capacity", func() {
			var recorded []float64
			_ = eng.Run(context.Background(), 150, func(s engine.Snapshot) bool {
				recorded = append(recorded, s.Velocity)
				return true
			})

			eng.Resize(60, 120)
			snap := eng.Frame()
			recorded = append(recorded, snap.Velocity)

			Expect(len(snap.Trace)).To(Equal(30))
			Expect(snap.Trace).To(Equal(recorded[len(recorded)-30:]))
		})
	})

	Describe("the charge gauge", func() {
		It("receives one direct write per frame", func() {
			g := &recordingGauge{}
			eng.Publish(g)

			var levels []float64
			_ = eng.Run(context.Background(), 25, func(s engine.Snapshot) bool {
				levels = append(levels, s.Charge)
				return true
			})

			Expect(g.writes).To(Equal(levels))
		})
	})

	Describe("cancellation", func() {
		It("stops between frames when the context is done", func() {
			ctx, cancel := context.WithCancel(context.Background())
			frames := 0

			err := eng.Run(ctx, 1000, func(s engine.Snapshot) bool {
				frames++
				if frames == 10 {
					cancel()
				}
				return true
			})

			Expect(err).To(MatchError(context.Canceled))
			Expect(frames).To(Equal(10), "in-flight frame should complete, later ones should not start")
		})
	})

	Describe("reset", func() {
		It("clears charge, trace, and particles but not the clock", func() {
			_ = eng.Run(context.Background(), 100, nil)
			before := eng.Frame().Clock

			eng.Reset()
			snap := eng.Frame()

			Expect(snap.Clock).To(Equal(before + 1))
			Expect(snap.Charge).To(BeNumerically("<=", induction.ChargeStep))
			Expect(len(snap.Trace)).To(Equal(1))
		})
	})
})

var _ = Describe("CoilRegion", func() {
	It("is centered in the viewport", func() {
		r := engine.CoilRegion(engine.Viewport{Width: 100, Height: 50})
		Expect(r.X + r.W/2).To(BeNumerically("~", 50, 1e-9))
		Expect(r.Y + r.H/2).To(BeNumerically("~", 25, 1e-9))
		Expect(r.W).To(BeNumerically(">", 0))
		Expect(r.H).To(BeNumerically(">", 0))
	})
})
