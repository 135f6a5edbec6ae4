package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// Wall time between calls accumulates; Due reports how many whole ticks have
// elapsed since it was last consulted, capped so a stalled host (debugger,
// suspended terminal) does not trigger a catch-up burst.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxCatchUp: 4}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Due returns the number of ticks the simulation should advance by.
func (f *FixedStep) Due() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < f.maxCatchUp {
		f.accumulator -= f.step
		n++
	}
	if n == f.maxCatchUp {
		// Drop the backlog instead of spiraling.
		f.accumulator = 0
	}
	return n
}
