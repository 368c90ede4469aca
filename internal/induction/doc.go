// Package induction holds the physics of the oscillating magnet and the
// per-frame signals derived from it.
//
// The magnet follows closed-form simple harmonic motion driven by a
// frame clock; nothing is numerically integrated. Derived values — the
// polarity classification, glow intensity, induced voltage, and the
// charge meter — are visual calibrations, not field solutions, and
// their constants are fixed at build time.
package induction
