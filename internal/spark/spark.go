// Package spark implements the short-lived particle bursts emitted while
// the magnet moves fast through the coil.
package spark

import (
	"math/rand"

	"github.com/danahmedkhan/faraday/internal/induction"
)

// MaxBurstSpeed bounds each random velocity component of a new particle,
// in subpixels per frame.
const MaxBurstSpeed = 1.5

// Particle is one spark. Life is in (0,1] while the particle is present;
// it is pruned the same frame life reaches zero or below.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Life     float64
	Polarity induction.Polarity
}

// Region is the coil's bounding box, in subpixels.
type Region struct {
	X, Y, W, H float64
}

// Field holds the live particle collection. Membership is transient and
// order carries no meaning.
type Field struct {
	rng       *rand.Rand
	particles []Particle
}

func NewField(seed int64) *Field {
	return &Field{rng: rand.New(rand.NewSource(seed))}
}

// Burst spawns one batch of particles at random positions inside the
// region, tagged with the current polarity so their color survives later
// sign flips.
func (f *Field) Burst(r Region, pol induction.Polarity) {
	for i := 0; i < induction.SparkBatch; i++ {
		f.particles = append(f.particles, Particle{
			X:        r.X + f.rng.Float64()*r.W,
			Y:        r.Y + f.rng.Float64()*r.H,
			VX:       (f.rng.Float64()*2 - 1) * MaxBurstSpeed,
			VY:       (f.rng.Float64()*2 - 1) * MaxBurstSpeed,
			Life:     1.0,
			Polarity: pol,
		})
	}
}

// Advance integrates every particle one unit timestep and decays its
// life, pruning dead ones in the same pass. Survivors are filtered into
// the prefix of the backing slice so no element is skipped.
func (f *Field) Advance() {
	kept := f.particles[:0]
	for _, p := range f.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= induction.SparkDecay
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	f.particles = kept
}

// Particles returns the live collection. The slice is owned by the field
// and valid until the next Advance or Burst.
func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) Count() int { return len(f.particles) }

// Reset drops all particles.
func (f *Field) Reset() { f.particles = f.particles[:0] }
