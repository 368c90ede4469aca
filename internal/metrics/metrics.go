// Package metrics summarizes headless runs.
package metrics

import (
	"math"

	"github.com/danahmedkhan/faraday/internal/engine"
)

// Metric observes every frame of a run and reduces it to one value.
type Metric interface {
	Name() string
	Observe(s engine.Snapshot)
	Value() float64
	Reset()
}

// PeakEMF tracks the largest induced voltage magnitude seen.
type PeakEMF struct {
	peak float64
}

func (m *PeakEMF) Name() string { return "peak_emf" }

func (m *PeakEMF) Observe(s engine.Snapshot) {
	if v := math.Abs(s.EMF); v > m.peak {
		m.peak = v
	}
}

func (m *PeakEMF) Value() float64 { return m.peak }
func (m *PeakEMF) Reset()         { m.peak = 0 }

// RMSVelocity is the root-mean-square magnet velocity over the run.
type RMSVelocity struct {
	sumSquares float64
	samples    int
}

func (m *RMSVelocity) Name() string { return "rms_velocity" }

func (m *RMSVelocity) Observe(s engine.Snapshot) {
	m.sumSquares += s.Velocity * s.Velocity
	m.samples++
}

func (m *RMSVelocity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return math.Sqrt(m.sumSquares / float64(m.samples))
}

func (m *RMSVelocity) Reset() {
	m.sumSquares = 0
	m.samples = 0
}

// ChargeCycles counts completed charge/discharge cycles.
type ChargeCycles struct {
	cycles int
}

func (m *ChargeCycles) Name() string { return "charge_cycles" }

func (m *ChargeCycles) Observe(s engine.Snapshot) {
	m.cycles = s.ChargeCycles
}

func (m *ChargeCycles) Value() float64 { return float64(m.cycles) }
func (m *ChargeCycles) Reset()         { m.cycles = 0 }

// MeanParticles is the average live particle population.
type MeanParticles struct {
	total   int
	samples int
}

func (m *MeanParticles) Name() string { return "mean_particles" }

func (m *MeanParticles) Observe(s engine.Snapshot) {
	m.total += len(s.Particles)
	m.samples++
}

func (m *MeanParticles) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

func (m *MeanParticles) Reset() {
	m.total = 0
	m.samples = 0
}

// Default returns the standard metric set for a recorded run.
func Default() []Metric {
	return []Metric{&PeakEMF{}, &RMSVelocity{}, &ChargeCycles{}, &MeanParticles{}}
}
