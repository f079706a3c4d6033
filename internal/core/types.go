package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRule is returned when a rule set name is not registered.
var ErrUnknownRule = errors.New("unknown rule set")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether (x, y) lies inside the grid without wrapping.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// State is the raw per-cell value. Its meaning belongs to the rule set that
// produced it; two rule sets never share a generation.
type State uint8

// Value is a cell state tagged with the rule set domain it belongs to.
type Value struct {
	Domain string
	State  State
	Active bool
}

// RuleSet describes one cellular automaton over a Moore neighbourhood.
type RuleSet interface {
	Name() string
	// States is the size of the state domain; valid states are [0, States()).
	States() int
	Transition(s State, neighbors int) State
	IsActive(s State) bool
	// Sample maps a uniform draw r in [0,1) to an initial state.
	Sample(r, probability float64) State
	Off() State
	Toggle(s State) State
}

// Factory constructs a RuleSet.
type Factory func() RuleSet

var rules = map[string]Factory{}

// Register adds a rule set factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	rules[name] = f
}

// RuleNames returns the registered names in a stable order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup constructs the named rule set.
func Lookup(name string) (RuleSet, error) {
	f, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return f(), nil
}
