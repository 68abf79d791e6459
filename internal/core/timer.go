package core

import "time"

// Pacer holds a caller to a steady frame period. The first call to Wait
// blocks for a full period; later calls subtract whatever time the caller
// spent between frames so that drawing and stepping do not stretch the
// cadence.
type Pacer struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer constructs a Pacer driven by the wall clock.
func NewPacer() *Pacer {
	return &Pacer{now: time.Now, sleep: time.Sleep}
}

// Wait blocks until period has elapsed since the previous frame boundary.
func (p *Pacer) Wait(period time.Duration) {
	if period <= 0 {
		return
	}
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	due := p.last.Add(period)
	if remaining := due.Sub(now); remaining > 0 {
		p.sleep(remaining)
		p.last = due
		return
	}
	// Fell behind by more than a frame; restart the cadence from now
	// instead of bursting to catch up.
	p.last = now
}
