package app

import (
	"testing"
	"time"

	"gridlife/internal/control"
	"gridlife/internal/core"
	"gridlife/internal/engine"
	"gridlife/internal/sims/briansbrain"
	"gridlife/internal/sims/life"
)

func newTestController(paused bool) *control.Controller {
	e := engine.New(core.Size{W: 8, H: 8}, 5, life.New(), 1)
	return control.New(e, control.Options{
		Interval:      50 * time.Millisecond,
		ReseedDensity: 0.1,
		Paused:        paused,
		Rules:         []string{life.Name, briansbrain.Name},
	})
}

func TestFrameStepsOnlyOnGenerations(t *testing.T) {
	ctl := newTestController(true)
	tr := newFrameTracker(ctl)

	for _, cmd := range []control.Command{control.CmdClear, control.CmdReseed, control.CmdRandomize} {
		ctl.Apply(control.Action{Cmd: cmd})
		if u := tr.update(ctl, time.Second); u.Stepped {
			t.Fatalf("%s reported a generation while paused", cmd)
		}
	}

	ctl.Apply(control.Action{Cmd: control.CmdStepOnce})
	if u := tr.update(ctl, 0); !u.Stepped {
		t.Fatal("single step was not reported")
	}
	if u := tr.update(ctl, 0); u.Stepped {
		t.Fatal("idle frame reported a generation")
	}
}

func TestFrameRetitlesOnRuleSwitch(t *testing.T) {
	ctl := newTestController(true)
	tr := newFrameTracker(ctl)
	if u := tr.update(ctl, 0); u.Title != "" {
		t.Fatalf("unchanged rule produced title %q", u.Title)
	}

	ctl.Apply(control.Action{Cmd: control.CmdSwitchRule})
	u := tr.update(ctl, 0)
	if want := windowTitle(briansbrain.Name); u.Title != want {
		t.Fatalf("title = %q, want %q", u.Title, want)
	}
	if u := tr.update(ctl, 0); u.Title != "" {
		t.Fatal("title repeated without a further switch")
	}
}
