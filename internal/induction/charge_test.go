package induction

import "testing"

func TestChargeBelowThreshold(t *testing.T) {
	var c Charge
	for i := 0; i < 100; i++ {
		c.Observe(ChargeThreshold)
	}
	if c.Level() != 0 {
		t.Errorf("charge accrued at threshold speed: %v", c.Level())
	}
}

func TestChargeAccrues(t *testing.T) {
	var c Charge
	c.Observe(ChargeThreshold + 1)
	if c.Level() != ChargeStep {
		t.Errorf("expected level %v after one frame, got %v", ChargeStep, c.Level())
	}
}

func TestChargeWraps(t *testing.T) {
	var c Charge
	frames := int(100 / ChargeStep)

	for i := 0; i < frames-1; i++ {
		c.Observe(MaxSpeed)
	}
	if c.Level() != 100-ChargeStep {
		t.Fatalf("expected level %v one frame before wrap, got %v", 100-ChargeStep, c.Level())
	}

	// The frame that reaches 100 resets to exactly zero, no carry-over.
	c.Observe(MaxSpeed)
	if c.Level() != 0 {
		t.Errorf("expected wrap to 0, got %v", c.Level())
	}
	if c.Cycles() != 1 {
		t.Errorf("expected 1 cycle, got %d", c.Cycles())
	}
}

func TestChargeRange(t *testing.T) {
	var c Charge
	for i := 0; i < 5000; i++ {
		c.Observe(MaxSpeed)
		if c.Level() < 0 || c.Level() > 100 {
			t.Fatalf("level %v out of [0,100] at frame %d", c.Level(), i)
		}
	}
}

func TestChargeReset(t *testing.T) {
	var c Charge
	for i := 0; i < 10; i++ {
		c.Observe(MaxSpeed)
	}
	c.Reset()
	if c.Level() != 0 || c.Cycles() != 0 {
		t.Errorf("reset left level=%v cycles=%d", c.Level(), c.Cycles())
	}
}
