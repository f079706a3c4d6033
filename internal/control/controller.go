// Package control maps presentation commands onto engine calls and decides
// when the simulation ticks.
package control

import (
	"slices"
	"time"

	"gridlife/internal/core"
	"gridlife/internal/engine"
)

// Command identifies a user action.
type Command int

const (
	// CmdNone does nothing.
	CmdNone Command = iota
	// CmdTogglePause flips between paused and running.
	CmdTogglePause
	// CmdResume unpauses; it is a no-op while running.
	CmdResume
	// CmdStepOnce runs exactly one generation on the next Advance.
	CmdStepOnce
	// CmdClear sets every cell to the off state.
	CmdClear
	// CmdReseed clears and refills at the reseed density.
	CmdReseed
	// CmdRandomize refills at the reseed density without clearing first.
	CmdRandomize
	// CmdSwitchRule installs Action.Rule, or the next rule in the cycle.
	CmdSwitchRule
	// CmdToggleCell toggles the cell at Action.X, Action.Y.
	CmdToggleCell
)

var commandNames = map[Command]string{
	CmdNone:        "none",
	CmdTogglePause: "pause",
	CmdResume:      "resume",
	CmdStepOnce:    "step",
	CmdClear:       "clear",
	CmdReseed:      "reseed",
	CmdRandomize:   "randomize",
	CmdSwitchRule:  "switch-rule",
	CmdToggleCell:  "toggle-cell",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Action is one command with its arguments. X and Y apply to CmdToggleCell;
// Rule selects a rule set for CmdSwitchRule and cycles when empty.
type Action struct {
	Cmd  Command
	X, Y int
	Rule string
}

// Options configures a Controller.
type Options struct {
	Interval      time.Duration
	ReseedDensity float64
	Paused        bool
	// Rules is the cycle order for CmdSwitchRule. Defaults to the registry order.
	Rules []string
}

// Controller owns the pause flag and tick pacing around an engine.
type Controller struct {
	engine   *engine.Engine
	clock    *core.FixedStep
	paused   bool
	tickOnce bool
	reseed   float64
	rules    []string
}

// New wires a controller to e.
func New(e *engine.Engine, opts Options) *Controller {
	rules := opts.Rules
	if len(rules) == 0 {
		rules = core.RuleNames()
	}
	return &Controller{
		engine: e,
		clock:  core.NewFixedStep(opts.Interval),
		paused: opts.Paused,
		reseed: opts.ReseedDensity,
		rules:  rules,
	}
}

// Engine returns the controlled engine.
func (c *Controller) Engine() *engine.Engine { return c.engine }

// Paused reports whether ticking is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Apply executes a single action. It reports false when the action had no
// effect on the grid or the pause state. Resuming and reinitialising the grid
// restart the tick interval.
func (c *Controller) Apply(a Action) bool {
	switch a.Cmd {
	case CmdTogglePause:
		c.paused = !c.paused
		if !c.paused {
			c.clock.Reset()
		}
	case CmdResume:
		if !c.paused {
			return false
		}
		c.paused = false
		c.clock.Reset()
	case CmdStepOnce:
		c.tickOnce = true
	case CmdClear:
		c.engine.Clear()
		c.clock.Reset()
	case CmdReseed:
		c.engine.Reseed(c.reseed)
		c.clock.Reset()
	case CmdRandomize:
		c.engine.Randomize(c.reseed)
		c.clock.Reset()
	case CmdSwitchRule:
		if !c.switchRule(a.Rule) {
			return false
		}
		c.clock.Reset()
	case CmdToggleCell:
		return c.engine.ToggleCell(a.X, a.Y)
	default:
		return false
	}
	return true
}

func (c *Controller) switchRule(name string) bool {
	if name == "" {
		name = c.nextRule()
	}
	if name == "" {
		return false
	}
	rule, err := core.Lookup(name)
	if err != nil {
		return false
	}
	c.engine.SwitchRuleSet(rule)
	return true
}

func (c *Controller) nextRule() string {
	if len(c.rules) == 0 {
		return ""
	}
	i := slices.Index(c.rules, c.engine.Rule().Name())
	return c.rules[(i+1)%len(c.rules)]
}

// Advance feeds elapsed frame time to the tick clock and steps the engine
// when a tick is due. A pending single step runs regardless of pause.
func (c *Controller) Advance(dt time.Duration) bool {
	due := c.clock.Advance(dt)
	if c.tickOnce {
		c.tickOnce = false
		c.engine.Step()
		return true
	}
	if c.paused || !due {
		return false
	}
	c.engine.Step()
	return true
}
