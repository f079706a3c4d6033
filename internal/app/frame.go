package app

import (
	"time"

	"gridlife/internal/control"
)

// frameUpdate is what the window has to react to after one Update.
type frameUpdate struct {
	// Stepped is set when the controller produced a generation.
	Stepped bool
	// Title is non-empty when the active rule set changed.
	Title string
}

// frameTracker advances the controller once per frame and notices rule
// switches.
type frameTracker struct {
	rule string
}

func newFrameTracker(ctl *control.Controller) frameTracker {
	return frameTracker{rule: ctl.Engine().Rule().Name()}
}

func (t *frameTracker) update(ctl *control.Controller, dt time.Duration) frameUpdate {
	u := frameUpdate{Stepped: ctl.Advance(dt)}
	if name := ctl.Engine().Rule().Name(); name != t.rule {
		t.rule = name
		u.Title = windowTitle(name)
	}
	return u
}

func windowTitle(rule string) string { return "gridlife: " + rule }
