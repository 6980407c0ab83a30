package system

import "time"

// DefaultStepInterval is roughly how long one walk cycle takes to read as a step
const DefaultStepInterval = 150 * time.Millisecond

// StepGate rate-limits steps. Check and update happen in one call so no
// tick can observe a stale timestamp between them.
type StepGate struct {
	MinInterval time.Duration

	last    time.Time
	stepped bool
}

// NewStepGate creates a gate; a zero interval uses DefaultStepInterval
func NewStepGate(minInterval time.Duration) *StepGate {
	if minInterval <= 0 {
		minInterval = DefaultStepInterval
	}
	return &StepGate{MinInterval: minInterval}
}

// Allow reports whether a step may happen at now and, if so, records it.
// A step needs strictly more than MinInterval since the last accepted one.
func (g *StepGate) Allow(now time.Time) bool {
	if g.stepped && now.Sub(g.last) <= g.MinInterval {
		return false
	}
	g.last = now
	g.stepped = true
	return true
}

// LastStep returns when the last step was accepted
func (g *StepGate) LastStep() (time.Time, bool) {
	return g.last, g.stepped
}
