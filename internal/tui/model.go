// Package tui is a terminal shell around the engine.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"gridlife/internal/control"
	"gridlife/internal/engine"
)

const (
	historyLen   = 120
	chrome       = 7
	graphRows    = 6
	minViewCells = 4
)

// TickMsg drives frames.
type TickMsg time.Time

// Model renders a viewport of the grid and maps keys to controller actions.
type Model struct {
	ctl   *control.Controller
	frame time.Duration
	last  time.Time

	cursorX, cursorY int
	viewX, viewY     int
	width, height    int

	history   []float64
	showGraph bool
	quitting  bool

	bookmark *engine.Snapshot
	notice   string
}

// New returns a model drawing at the given frame interval.
func New(ctl *control.Controller, frame time.Duration) Model {
	if frame <= 0 {
		frame = time.Second / 30
	}
	size := ctl.Engine().Size()
	return Model{
		ctl:     ctl,
		frame:   frame,
		cursorX: size.W / 2,
		cursorY: size.H / 2,
		width:   80,
		height:  24,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Init schedules the first frame.
func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles keys, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.follow()
		return m, nil
	case TickMsg:
		now := time.Time(msg)
		dt := m.frame
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		if m.ctl.Advance(dt) {
			m.record()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	size := m.ctl.Engine().Size()
	m.notice = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case " ":
		m.ctl.Apply(control.Action{Cmd: control.CmdTogglePause})
	case "n":
		m.ctl.Apply(control.Action{Cmd: control.CmdStepOnce})
	case "c":
		m.ctl.Apply(control.Action{Cmd: control.CmdClear})
		m.history = m.history[:0]
	case "r":
		m.ctl.Apply(control.Action{Cmd: control.CmdReseed})
		m.history = m.history[:0]
	case "x":
		m.ctl.Apply(control.Action{Cmd: control.CmdRandomize})
	case "b":
		m.ctl.Apply(control.Action{Cmd: control.CmdSwitchRule})
		m.history = m.history[:0]
	case "g":
		m.showGraph = !m.showGraph
	case "s":
		snap := m.ctl.Engine().Snapshot()
		m.bookmark = &snap
		m.notice = fmt.Sprintf("bookmarked generation %d", snap.Generation)
	case "u":
		m.restore()
	case "enter", "t":
		m.ctl.Apply(control.Action{Cmd: control.CmdToggleCell, X: m.cursorX, Y: m.cursorY})
	case "up", "k":
		m.cursorY = (m.cursorY - 1 + size.H) % size.H
	case "down", "j":
		m.cursorY = (m.cursorY + 1) % size.H
	case "left", "h":
		m.cursorX = (m.cursorX - 1 + size.W) % size.W
	case "right", "l":
		m.cursorX = (m.cursorX + 1) % size.W
	}
	m.follow()
	return m, nil
}

// restore returns the grid to the bookmark. A bookmark taken under another
// rule set is refused.
func (m *Model) restore() {
	if m.bookmark == nil {
		m.notice = "no bookmark"
		return
	}
	if err := m.ctl.Engine().Restore(*m.bookmark); err != nil {
		m.notice = err.Error()
		return
	}
	m.history = m.history[:0]
	m.notice = fmt.Sprintf("restored generation %d", m.bookmark.Generation)
}

func (m *Model) record() {
	m.history = append(m.history, float64(m.ctl.Engine().Population()))
	if len(m.history) > historyLen {
		m.history = m.history[len(m.history)-historyLen:]
	}
}

// viewport returns the number of visible columns and rows.
func (m Model) viewport() (int, int) {
	size := m.ctl.Engine().Size()
	cols := m.width - 2
	rows := m.height - chrome
	if m.showGraph {
		rows -= graphRows + 1
	}
	cols = max(min(cols, size.W), min(minViewCells, size.W))
	rows = max(min(rows, size.H), min(minViewCells, size.H))
	return cols, rows
}

// follow scrolls the viewport so the cursor stays visible.
func (m *Model) follow() {
	cols, rows := m.viewport()
	if m.cursorX < m.viewX {
		m.viewX = m.cursorX
	} else if m.cursorX >= m.viewX+cols {
		m.viewX = m.cursorX - cols + 1
	}
	if m.cursorY < m.viewY {
		m.viewY = m.cursorY
	} else if m.cursorY >= m.viewY+rows {
		m.viewY = m.cursorY - rows + 1
	}
	size := m.ctl.Engine().Size()
	m.viewX = max(0, min(m.viewX, size.W-cols))
	m.viewY = max(0, min(m.viewY, size.H-rows))
}

func (m Model) cursor() (int, int) { return m.cursorX, m.cursorY }

// View renders the status line, the visible part of the grid and the
// optional population chart.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	e := m.ctl.Engine()
	cols, rows := m.viewport()

	var grid strings.Builder
	cells := e.Cells()
	w := e.Size().W
	for y := m.viewY; y < m.viewY+rows; y++ {
		if y > m.viewY {
			grid.WriteByte('\n')
		}
		var row strings.Builder
		for x := m.viewX; x < m.viewX+cols; x++ {
			r := glyph(cells[y*w+x])
			if x == m.cursorX && y == m.cursorY {
				grid.WriteString(row.String())
				row.Reset()
				grid.WriteString(cursorStyle.Render(string(r)))
				continue
			}
			row.WriteRune(r)
		}
		grid.WriteString(row.String())
	}

	var b strings.Builder
	status := runningStyle.Render("RUNNING")
	if m.ctl.Paused() {
		status = pausedStyle.Render("PAUSED")
	}
	b.WriteString(titleStyle.Render("gridlife") + "  " + status + "  " +
		labelStyle.Render("rule ") + valueStyle.Render(e.Rule().Name()) + "  " +
		labelStyle.Render("population ") + valueStyle.Render(fmt.Sprint(e.Population())) + "  " +
		labelStyle.Render("gen ") + valueStyle.Render(fmt.Sprint(e.Generation())) + "\n")
	b.WriteString(frameStyle.Render(grid.String()) + "\n")
	if m.showGraph && len(m.history) > 1 {
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(graphRows),
			asciigraph.Width(max(cols-10, 10)),
			asciigraph.Caption("population"),
		) + "\n")
	}
	cell, _ := e.Cell(m.cursorX, m.cursorY)
	b.WriteString(labelStyle.Render(fmt.Sprintf("cursor %d,%d ", m.cursorX, m.cursorY)) +
		valueStyle.Render(fmt.Sprintf("%s:%d", cell.Value.Domain, cell.Value.State)) +
		labelStyle.Render(fmt.Sprintf("  neighbours %d", e.NeighborCount(m.cursorX, m.cursorY))))
	if m.notice != "" {
		b.WriteString("  " + subtleStyle.Render(m.notice))
	}
	b.WriteString("\n" + subtleStyle.Render("space pause  n step  r reseed  x randomize  c clear  b rule  t toggle  s mark  u back  g graph  q quit"))
	return b.String()
}

// Run starts the terminal program on the alternate screen.
func Run(ctl *control.Controller, frame time.Duration) error {
	_, err := tea.NewProgram(New(ctl, frame), tea.WithAltScreen()).Run()
	return err
}
