package induction

// Charge is the gamified energy meter. While the magnet moves fast enough
// it accrues a fixed step per frame; on reaching 100 it wraps to zero on
// the same frame, with no partial carry-over. The level is always in
// [0,100].
type Charge struct {
	level  float64
	cycles int
}

// Observe accrues charge for one frame at the given magnet speed.
func (c *Charge) Observe(speed float64) {
	if speed <= ChargeThreshold {
		return
	}
	c.level += ChargeStep
	if c.level >= 100 {
		c.level = 0
		c.cycles++
	}
}

// Level returns the current charge percentage.
func (c *Charge) Level() float64 { return c.level }

// Cycles returns how many full charge/discharge cycles have completed.
func (c *Charge) Cycles() int { return c.cycles }

// Reset clears the level and cycle count.
func (c *Charge) Reset() {
	c.level = 0
	c.cycles = 0
}
