package main

import (
	"fmt"
	"image"
	"sort"

	"gridlife/internal/engine"
)

// patterns are cell offsets from the top-left of each shape.
var patterns = map[string][]image.Point{
	"glider":     {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	"blinker":    {{0, 0}, {1, 0}, {2, 0}},
	"rpentomino": {{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	"block":      {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"diehard":    {{6, 0}, {0, 1}, {1, 1}, {1, 2}, {5, 2}, {6, 2}, {7, 2}},
}

func patternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// stamp clears the grid and places the named pattern at its centre, in the
// state one toggle away from off.
func stamp(e *engine.Engine, name string) error {
	cells, ok := patterns[name]
	if !ok {
		return fmt.Errorf("unknown pattern %q (have %v)", name, patternNames())
	}
	rule := e.Rule()
	on := rule.Toggle(rule.Off())
	size := e.Size()
	e.Clear()
	for _, p := range cells {
		x := (size.W/2 + p.X) % size.W
		y := (size.H/2 + p.Y) % size.H
		e.SetCell(x, y, on)
	}
	return nil
}
