package ui

import (
	"fmt"

	"gridlife/internal/core"
)

// Status is the per-frame information shown in the top-left corner.
type Status struct {
	FPS    float64
	Paused bool
	Muted  bool
	Params core.ParameterSnapshot
}

// Lines renders the status block in display order.
func (s Status) Lines() []string {
	state := "RUNNING"
	if s.Paused {
		state = "PAUSED"
	}
	lines := []string{
		fmt.Sprintf("FPS: %.0f", s.FPS),
		state,
	}
	if p, ok := s.Params.Lookup("population"); ok {
		lines = append(lines, "Population: "+p.Value)
	}
	if p, ok := s.Params.Lookup("rule"); ok {
		lines = append(lines, "Rule: "+p.Value)
	}
	if p, ok := s.Params.Lookup("generation"); ok {
		lines = append(lines, "Generation: "+p.Value)
	}
	if s.Muted {
		lines = append(lines, "MUTED")
	}
	return lines
}

// KeyHelp lists the key bindings of the windowed shell.
var KeyHelp = []string{
	"SPACE pause  N step  R reseed  X randomize  C clear",
	"B rule  G grid  M mute  H help  Z/Shift+Z reset view  Q quit",
	"click toggle cell  drag or arrows pan  wheel zoom",
}
