package briansbrain

import "gridlife/internal/core"

// Name is the registry key and value domain for Brian's Brain.
const Name = "briansbrain"

const (
	// Off cells may fire when exactly two neighbours are on.
	Off core.State = 0
	// On cells always decay to Dying on the next tick.
	On core.State = 1
	// Dying cells always return to Off on the next tick.
	Dying core.State = 2
)

// Brain implements Brian's Brain cellular automaton.
type Brain struct{}

// New returns the Brian's Brain rule set.
func New() *Brain { return &Brain{} }

// Name identifies the rule set.
func (b *Brain) Name() string { return Name }

// States reports the three-valued domain.
func (b *Brain) States() int { return 3 }

// Transition advances the off/on/dying cycle.
func (b *Brain) Transition(s core.State, neighbors int) core.State {
	switch s {
	case On:
		return Dying
	case Dying:
		return Off
	default:
		if neighbors == 2 {
			return On
		}
		return Off
	}
}

// IsActive reports whether s is firing.
func (b *Brain) IsActive(s core.State) bool { return s == On }

// Sample splits probability evenly between On and Dying.
func (b *Brain) Sample(r, probability float64) core.State {
	half := probability / 2
	switch {
	case r < half:
		return On
	case r < probability:
		return Dying
	default:
		return Off
	}
}

// Off returns the resting state.
func (b *Brain) Off() core.State { return Off }

// Toggle swaps Off and On. Dying cells are left as they are.
func (b *Brain) Toggle(s core.State) core.State {
	switch s {
	case Off:
		return On
	case On:
		return Off
	default:
		return s
	}
}

func init() {
	core.Register(Name, func() core.RuleSet { return New() })
}
