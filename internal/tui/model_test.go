package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gridlife/internal/control"
	"gridlife/internal/core"
	"gridlife/internal/engine"
	"gridlife/internal/sims/briansbrain"
	"gridlife/internal/sims/life"
)

func newModel() Model {
	e := engine.New(core.Size{W: 12, H: 8}, 5, life.New(), 1)
	ctl := control.New(e, control.Options{
		Interval:      50 * time.Millisecond,
		ReseedDensity: 0.1,
		Paused:        true,
		Rules:         []string{life.Name, briansbrain.Name},
	})
	return New(ctl, 20*time.Millisecond)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestCursorWrapsAndToggles(t *testing.T) {
	m := newModel()
	if x, y := m.cursor(); x != 6 || y != 4 {
		t.Fatalf("cursor starts at %d,%d", x, y)
	}
	m = press(m, "up", "up", "up", "up", "up")
	if _, y := m.cursor(); y != 7 {
		t.Fatalf("cursor y = %d, want wrap to 7", y)
	}
	m = press(m, "t")
	x, y := m.cursor()
	if m.ctl.Engine().State(x, y) != life.Alive {
		t.Fatal("toggle key did not flip the cell under the cursor")
	}
	m = press(m, "enter")
	if m.ctl.Engine().State(x, y) != life.Dead {
		t.Fatal("enter did not flip the cell back")
	}
}

func TestTickStepsOnlyWhenRunning(t *testing.T) {
	m := newModel()
	start := time.Now()
	next, cmd := m.Update(TickMsg(start))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("tick must schedule the next frame")
	}
	next, _ = m.Update(TickMsg(start.Add(time.Second)))
	m = next.(Model)
	if m.ctl.Engine().Generation() != 0 {
		t.Fatal("paused model advanced")
	}

	m = press(m, " ")
	next, _ = m.Update(TickMsg(start.Add(2 * time.Second)))
	m = next.(Model)
	if m.ctl.Engine().Generation() != 1 {
		t.Fatalf("generation = %d, want 1", m.ctl.Engine().Generation())
	}
	if len(m.history) != 1 {
		t.Fatalf("history length = %d", len(m.history))
	}
}

func TestRuleSwitchKey(t *testing.T) {
	m := press(newModel(), "b")
	if got := m.ctl.Engine().Rule().Name(); got != briansbrain.Name {
		t.Fatalf("rule = %q", got)
	}
}

func TestViewShowsStatus(t *testing.T) {
	m := newModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = next.(Model)
	out := m.View()
	for _, want := range []string{"PAUSED", "life", "population"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	m.history = []float64{1, 2, 3}
	m = press(m, "g")
	if !strings.Contains(m.View(), "population") {
		t.Fatal("graph view missing caption")
	}
}

func TestQuit(t *testing.T) {
	m := newModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit must return a command")
	}
	if next.(Model).View() != "" {
		t.Fatal("view after quit must be empty")
	}
}

func TestBookmarkRestoresGrid(t *testing.T) {
	m := press(newModel(), "u")
	if m.notice != "no bookmark" {
		t.Fatalf("notice = %q", m.notice)
	}

	m = press(m, "t", "s")
	x, y := m.cursor()
	e := m.ctl.Engine()
	e.Step()
	if e.State(x, y) != life.Dead || e.Generation() != 1 {
		t.Fatal("isolated cell should have died")
	}

	m = press(m, "u")
	if e.State(x, y) != life.Alive || e.Generation() != 0 {
		t.Fatalf("restore left state %d at generation %d", e.State(x, y), e.Generation())
	}
	if !strings.Contains(m.notice, "restored") {
		t.Fatalf("notice = %q", m.notice)
	}

	m = press(m, "b", "u")
	if !strings.Contains(m.notice, "does not match") {
		t.Fatalf("bookmark from another rule set was not refused: %q", m.notice)
	}
	if e.Rule().Name() != briansbrain.Name {
		t.Fatal("refused restore changed the rule")
	}
}

func TestViewShowsCursorCell(t *testing.T) {
	m := press(newModel(), "t")
	out := m.View()
	if !strings.Contains(out, "life:1") || !strings.Contains(out, "neighbours") {
		t.Fatalf("cursor readout missing:\n%s", out)
	}
}
