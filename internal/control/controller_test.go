package control

import (
	"testing"
	"time"

	"gridlife/internal/core"
	"gridlife/internal/engine"
	"gridlife/internal/sims/briansbrain"
	"gridlife/internal/sims/life"
)

func newController(paused bool) *Controller {
	e := engine.New(core.Size{W: 6, H: 6}, 5, life.New(), 1)
	return New(e, Options{
		Interval:      50 * time.Millisecond,
		ReseedDensity: 0.1,
		Paused:        paused,
		Rules:         []string{life.Name, briansbrain.Name},
	})
}

func TestAdvanceRespectsPauseAndInterval(t *testing.T) {
	c := newController(true)
	if c.Advance(time.Second) {
		t.Fatal("paused controller stepped")
	}

	c.Apply(Action{Cmd: CmdTogglePause})
	if c.Paused() {
		t.Fatal("toggle did not resume")
	}
	if c.Advance(10 * time.Millisecond) {
		t.Fatal("stepped before the interval elapsed")
	}
	if !c.Advance(45 * time.Millisecond) {
		t.Fatal("did not step after the interval elapsed")
	}
	if got := c.Engine().Generation(); got != 1 {
		t.Fatalf("generation = %d, want 1", got)
	}
}

func TestStepOnceWhilePaused(t *testing.T) {
	c := newController(true)
	c.Apply(Action{Cmd: CmdStepOnce})
	if !c.Advance(0) {
		t.Fatal("single step did not run")
	}
	if c.Advance(0) {
		t.Fatal("single step ran twice")
	}
	if c.Engine().Generation() != 1 {
		t.Fatalf("generation = %d", c.Engine().Generation())
	}
}

func TestResume(t *testing.T) {
	c := newController(true)
	if !c.Apply(Action{Cmd: CmdResume}) || c.Paused() {
		t.Fatal("resume did not unpause")
	}
	if c.Apply(Action{Cmd: CmdResume}) {
		t.Fatal("resume while running reported a change")
	}
}

func TestGridCommands(t *testing.T) {
	c := newController(true)
	e := c.Engine()

	if !c.Apply(Action{Cmd: CmdToggleCell, X: 2, Y: 3}) {
		t.Fatal("toggle in range failed")
	}
	if e.State(2, 3) != life.Alive {
		t.Fatal("toggle did not set the cell")
	}
	if c.Apply(Action{Cmd: CmdToggleCell, X: -1, Y: 3}) {
		t.Fatal("out of range toggle reported success")
	}

	c.Apply(Action{Cmd: CmdClear})
	if e.Population() != 0 {
		t.Fatal("clear left live cells")
	}

	c.Apply(Action{Cmd: CmdReseed})
	c.Apply(Action{Cmd: CmdRandomize})
	if c.Apply(Action{Cmd: CmdNone}) {
		t.Fatal("CmdNone reported a change")
	}
}

func TestSwitchRuleCycles(t *testing.T) {
	c := newController(true)
	if !c.Apply(Action{Cmd: CmdSwitchRule}) {
		t.Fatal("switch failed")
	}
	if got := c.Engine().Rule().Name(); got != briansbrain.Name {
		t.Fatalf("rule = %q, want %q", got, briansbrain.Name)
	}
	c.Apply(Action{Cmd: CmdSwitchRule})
	if got := c.Engine().Rule().Name(); got != life.Name {
		t.Fatalf("rule = %q, want %q", got, life.Name)
	}

	if !c.Apply(Action{Cmd: CmdSwitchRule, Rule: briansbrain.Name}) {
		t.Fatal("switch by name failed")
	}
	if c.Apply(Action{Cmd: CmdSwitchRule, Rule: "nope"}) {
		t.Fatal("unknown rule reported success")
	}
	if got := c.Engine().Rule().Name(); got != briansbrain.Name {
		t.Fatalf("failed switch changed the rule to %q", got)
	}
}

func TestCommandString(t *testing.T) {
	if CmdReseed.String() != "reseed" || Command(99).String() != "unknown" {
		t.Fatal("unexpected command names")
	}
}

func TestGridCommandsRestartInterval(t *testing.T) {
	for _, cmd := range []Command{CmdClear, CmdReseed, CmdRandomize, CmdSwitchRule} {
		t.Run(cmd.String(), func(t *testing.T) {
			c := newController(false)
			if c.Advance(40 * time.Millisecond) {
				t.Fatal("stepped before the interval elapsed")
			}
			c.Apply(Action{Cmd: cmd})
			if c.Advance(20 * time.Millisecond) {
				t.Fatalf("%s did not restart the interval", cmd)
			}
			if !c.Advance(30 * time.Millisecond) {
				t.Fatal("did not step a full interval later")
			}
		})
	}
}

func TestResumeRestartsInterval(t *testing.T) {
	c := newController(true)
	c.Advance(40 * time.Millisecond)
	c.Apply(Action{Cmd: CmdResume})
	if c.Advance(20 * time.Millisecond) {
		t.Fatal("time spent paused counted towards the first tick")
	}
	if !c.Advance(30 * time.Millisecond) {
		t.Fatal("did not step a full interval after resuming")
	}
}
