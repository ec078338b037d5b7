package core

import "time"

// Pacer spaces simulation ticks a fixed wall-clock interval apart. It is
// polled from a render loop that runs faster than the tick rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer with the given interval between ticks. The
// first poll always fires so the opening frame is not delayed.
func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{}
	p.SetInterval(interval)
	p.accumulator = p.step
	return p
}

// SetInterval changes the spacing between ticks. Non-positive intervals
// fall back to one millisecond.
func (p *Pacer) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	p.step = interval
}

// ShouldTick reports whether enough time has passed for the next tick.
func (p *Pacer) ShouldTick() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
