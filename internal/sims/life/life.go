package life

import "gridlife/internal/core"

// Name is the registry key and value domain for Conway's Game of Life.
const Name = "life"

const (
	// Dead is the baseline state.
	Dead core.State = 0
	// Alive cells count towards neighbours and population.
	Alive core.State = 1
)

// Life implements Conway's Game of Life (B3/S23).
type Life struct{}

// New returns the Conway rule set.
func New() *Life { return &Life{} }

// Name returns the rule set identifier.
func (l *Life) Name() string { return Name }

// States reports the two-valued domain.
func (l *Life) States() int { return 2 }

// Transition applies survival on 2 or 3 neighbours and birth on exactly 3.
func (l *Life) Transition(s core.State, neighbors int) core.State {
	if s == Alive {
		if neighbors == 2 || neighbors == 3 {
			return Alive
		}
		return Dead
	}
	if neighbors == 3 {
		return Alive
	}
	return Dead
}

// IsActive reports whether s is alive.
func (l *Life) IsActive(s core.State) bool { return s == Alive }

// Sample returns Alive when r falls below probability.
func (l *Life) Sample(r, probability float64) core.State {
	if r < probability {
		return Alive
	}
	return Dead
}

// Off returns Dead.
func (l *Life) Off() core.State { return Dead }

// Toggle inverts the cell.
func (l *Life) Toggle(s core.State) core.State {
	if s == Alive {
		return Dead
	}
	return Alive
}

func init() {
	core.Register(Name, func() core.RuleSet { return New() })
}
