// Package debounce implements the two-state cooldown used by the board: a
// machine is either Normal (accepting triggers) or Holding a countdown of
// frames. The same machine suppresses repeated button-B inversions and
// delays the automatic reseed of an empty board.
package debounce

import "fmt"

// DefaultWidth is the hold length, in frames, the board uses for both
// machines.
const DefaultWidth uint16 = 5

// Mode distinguishes the two states.
type Mode uint8

const (
	// Normal accepts new trigger events.
	Normal Mode = iota
	// Holding ignores triggers until the countdown is released.
	Holding
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Holding:
		return "holding"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// State is a tagged value: Normal, or Holding with a remaining tick count.
// Ticks is meaningless in Normal and kept at zero there.
type State struct {
	Mode  Mode
	Ticks uint16
}

func (s State) String() string {
	if s.Mode == Holding {
		return fmt.Sprintf("holding(%d)", s.Ticks)
	}
	return s.Mode.String()
}

// Flip moves Normal to Holding(width) and any Holding state straight back to
// Normal.
func (s State) Flip(width uint16) State {
	if s.Mode == Normal {
		return State{Mode: Holding, Ticks: width}
	}
	return State{Mode: Normal}
}

// WaitOne decrements a hold by one tick, saturating at zero. Normal is left
// untouched.
func (s State) WaitOne() State {
	if s.Mode == Normal {
		return s
	}
	if s.Ticks > 0 {
		s.Ticks--
	}
	return s
}

// Machine is one independently ticking instance of State with a fixed hold
// width.
type Machine struct {
	width uint16
	state State
}

// New returns a Machine in the Normal state.
func New(width uint16) *Machine {
	return &Machine{width: width}
}

// Width reports the configured hold length.
func (m *Machine) Width() uint16 { return m.width }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Holding reports whether the machine is counting down.
func (m *Machine) Holding() bool { return m.state.Mode == Holding }

// Ticks reports the remaining hold, zero in Normal.
func (m *Machine) Ticks() uint16 { return m.state.Ticks }

// Flip enters a hold from Normal or releases any hold immediately.
func (m *Machine) Flip() { m.state = m.state.Flip(m.width) }

// WaitOne spends one tick of the current hold.
func (m *Machine) WaitOne() { m.state = m.state.WaitOne() }

// Tick runs the per-frame hold step: an exhausted hold flips back to Normal
// and reports true, otherwise one tick is spent. Normal machines are left
// alone and report false.
func (m *Machine) Tick() (released bool) {
	if !m.Holding() {
		return false
	}
	if m.state.Ticks == 0 {
		m.Flip()
		return true
	}
	m.WaitOne()
	return false
}

func (m *Machine) String() string { return m.state.String() }
