package ui

import (
	"slices"
	"testing"

	"gridlife/internal/camera"
	"gridlife/internal/core"
)

func TestStatusLines(t *testing.T) {
	s := Status{
		FPS:    59.6,
		Paused: true,
		Params: core.ParameterSnapshot{Groups: []core.ParameterGroup{{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "rule", Value: "life"},
				{Key: "generation", Value: "12"},
				{Key: "population", Value: "42"},
			},
		}}},
	}
	want := []string{"FPS: 60", "PAUSED", "Population: 42", "Rule: life", "Generation: 12"}
	if got := s.Lines(); !slices.Equal(got, want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}

	s.Paused = false
	s.Muted = true
	got := s.Lines()
	if got[1] != "RUNNING" || got[len(got)-1] != "MUTED" {
		t.Fatalf("Lines() = %q", got)
	}
}

func TestGridLines(t *testing.T) {
	segs := GridLines(4, 3, 5, camera.Vec{X: 20, Y: 15})
	if len(segs) != 5+4+2 {
		t.Fatalf("got %d segments, want 11", len(segs))
	}
	last := segs[4]
	if last.From.X != 20 || last.To.Y != 15 {
		t.Fatalf("last vertical line = %+v", last)
	}
	axes := segs[len(segs)-2:]
	for _, a := range axes {
		if a.Thickness != AxisThickness {
			t.Fatalf("axis thickness = %v", a.Thickness)
		}
	}
	if axes[0].From.Y != 7.5 || axes[1].From.X != 10 {
		t.Fatalf("axes not centred: %+v", axes)
	}
	if GridLines(0, 3, 5, camera.Vec{}) != nil {
		t.Fatal("empty grid must produce no lines")
	}
}

func TestStrokesKeepSeparatorsWhenZoomedOut(t *testing.T) {
	segs := GridLines(4, 3, 5, camera.Vec{X: 20, Y: 15})
	cam := camera.New(camera.Limits{
		DefaultZoom: 0.9,
		MinZoom:     0.75,
		MaxZoom:     10,
		Home:        camera.Vec{X: 10, Y: 7.5},
	})

	strokes := Strokes(segs, cam)
	if len(strokes) != len(segs) {
		t.Fatalf("got %d strokes for %d segments", len(strokes), len(segs))
	}
	axes := 0
	for i, st := range strokes {
		want := float32(segs[i].Thickness * 0.9)
		if st.Width != want {
			t.Fatalf("stroke %d width = %v, want %v", i, st.Width, want)
		}
		if st.Axis {
			axes++
		}
	}
	if axes != 2 {
		t.Fatalf("got %d axis strokes, want 2", axes)
	}
	// The vertical line at world x=10 passes through the screen centre.
	mid := strokes[2]
	if mid.X0 != 10 || mid.X1 != 10 {
		t.Fatalf("centre separator at x=%v..%v, want 10", mid.X0, mid.X1)
	}
}
