package induction

import "math"

// Simulation constants. These are calibrated for the visual, not derived
// from electromagnetic formulas; the thresholds and gains are deliberate
// and should not be "corrected" toward physical accuracy.
const (
	// Amplitude is the peak magnet displacement from the coil center,
	// in canvas subpixels.
	Amplitude = 80.0

	// AngularFreq is the oscillation frequency in radians per frame.
	AngularFreq = 0.05

	// MaxSpeed is the peak magnet speed, |v| never exceeds it.
	MaxSpeed = Amplitude * AngularFreq

	// GlowDivisor normalizes speed into the [0,1] glow intensity.
	GlowDivisor = 4.0

	// EMFGain maps magnet velocity to the displayed voltage.
	EMFGain = 1.25

	// SparkThreshold is the speed above which spark bursts fire.
	SparkThreshold = 2.5

	// SparkBatch is the number of particles per burst.
	SparkBatch = 3

	// SparkDecay is the per-frame life loss of a spark particle.
	SparkDecay = 0.05

	// ChargeThreshold is the speed above which the charge meter accrues.
	ChargeThreshold = 3.0

	// ChargeStep is the per-frame charge increment.
	ChargeStep = 0.5
)

// Polarity classifies the induced current direction from the magnet's
// velocity sign. There are exactly two values.
type Polarity int

const (
	Attract Polarity = iota
	Repel
)

func (p Polarity) String() string {
	if p == Attract {
		return "attract"
	}
	return "repel"
}

// PolarityOf maps velocity to polarity: v > 0 attracts, v <= 0 repels.
func PolarityOf(velocity float64) Polarity {
	if velocity > 0 {
		return Attract
	}
	return Repel
}

// Oscillator drives the magnet with closed-form simple harmonic motion.
// The only state is the frame clock; displacement and velocity are fully
// recomputed each frame rather than integrated.
type Oscillator struct {
	clock uint64
}

// Clock returns the current frame count. It never decreases.
func (o *Oscillator) Clock() uint64 { return o.clock }

// Step advances the clock by one frame, then evaluates the motion at the
// new time. Pure apart from the clock increment.
func (o *Oscillator) Step() (displacement, velocity float64) {
	o.clock++
	t := float64(o.clock)
	return Displacement(t), Velocity(t)
}

// Displacement is y(t) = A*sin(t*f).
func Displacement(t float64) float64 {
	return Amplitude * math.Sin(t*AngularFreq)
}

// Velocity is v(t) = A*f*cos(t*f).
func Velocity(t float64) float64 {
	return Amplitude * AngularFreq * math.Cos(t*AngularFreq)
}

// Glow maps speed to a shadow/halo intensity in [0,1].
func Glow(speed float64) float64 {
	g := speed / GlowDivisor
	if g > 1 {
		g = 1
	}
	return g
}

// EMF is the displayed induced voltage. It is a cosmetic stand-in mapped
// directly from velocity (Lenz sign convention), not a field solution.
func EMF(velocity float64) float64 {
	return -velocity * EMFGain
}
