// Package engine owns the double-buffered grid and advances it under a
// pluggable rule set.
package engine

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"gridlife/internal/core"
)

// ReseedProbability is the fill density used when switching rule sets.
const ReseedProbability = 0.1

// ErrSnapshotMismatch is returned by Restore when a snapshot does not fit the engine.
var ErrSnapshotMismatch = errors.New("snapshot does not match engine")

// Cell is a read-only view of one grid cell.
type Cell struct {
	X, Y  int
	Pos   image.Point
	Value core.Value
}

// Snapshot is an in-memory copy of one generation.
type Snapshot struct {
	Rule       string
	Size       core.Size
	Generation uint64
	Cells      []uint8
}

// Engine simulates a toroidal grid. It is not safe for concurrent use; the
// caller serialises every call on one control flow.
type Engine struct {
	size     core.Size
	cellSize int
	rule     core.RuleSet
	cur      *core.ByteGrid
	nxt      *core.ByteGrid
	rng      *core.RNG

	generation uint64
}

// New allocates both buffers and fills them with the rule's off state.
func New(size core.Size, cellSize int, rule core.RuleSet, seed int64) *Engine {
	if cellSize <= 0 {
		cellSize = 1
	}
	cur := core.NewByteGrid(size.W, size.H)
	e := &Engine{
		size:     cur.Size(),
		cellSize: cellSize,
		rule:     rule,
		cur:      cur,
		nxt:      core.NewByteGrid(size.W, size.H),
		rng:      core.NewRNG(seed),
	}
	e.Initialize(rule.Off())
	return e
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.size }

// Rule returns the active rule set.
func (e *Engine) Rule() core.RuleSet { return e.rule }

// Generation counts steps since the grid was last reinitialised.
func (e *Engine) Generation() uint64 { return e.generation }

// Cells exposes the current generation buffer in row-major order. Callers
// must treat it as read-only.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Initialize sets every cell to s and mirrors the result into the scratch
// buffer. States outside the rule's domain fall back to its off state.
func (e *Engine) Initialize(s core.State) {
	if int(s) >= e.rule.States() {
		s = e.rule.Off()
	}
	e.cur.Fill(s)
	e.nxt.CopyFrom(e.cur)
	e.generation = 0
}

// Randomize draws one uniform sample per cell and maps it through the rule.
// Only the current buffer is written.
func (e *Engine) Randomize(probability float64) {
	p := clamp01(probability)
	cells := e.cur.Cells()
	for i := range cells {
		cells[i] = uint8(e.rule.Sample(e.rng.Float64(), p))
	}
	e.generation = 0
}

// Reseed is Initialize(off) followed by Randomize(probability).
func (e *Engine) Reseed(probability float64) {
	e.Initialize(e.rule.Off())
	e.Randomize(probability)
}

// Clear sets every cell to the rule's off state.
func (e *Engine) Clear() {
	e.cur.Fill(e.rule.Off())
	e.generation = 0
}

// SwitchRuleSet installs rule and reseeds the grid. Cell values of the
// previous rule set are never carried over.
func (e *Engine) SwitchRuleSet(rule core.RuleSet) {
	if rule == nil {
		return
	}
	e.rule = rule
	e.Reseed(ReseedProbability)
}

// ToggleCell flips the cell at (x, y) per the rule's toggle semantics.
// Coordinates outside the grid are ignored and reported as false.
func (e *Engine) ToggleCell(x, y int) bool {
	if !e.size.Contains(x, y) {
		return false
	}
	i := e.cur.Index(x, y)
	cells := e.cur.Cells()
	cells[i] = uint8(e.rule.Toggle(core.State(cells[i])))
	return true
}

// SetCell stores s at (x, y). Out-of-range coordinates or states are ignored.
func (e *Engine) SetCell(x, y int, s core.State) bool {
	if !e.size.Contains(x, y) || int(s) >= e.rule.States() {
		return false
	}
	e.cur.Cells()[e.cur.Index(x, y)] = uint8(s)
	return true
}

// State returns the raw state at (x, y) with toroidal wrapping.
func (e *Engine) State(x, y int) core.State {
	return e.cur.At(x, y)
}

// Cell returns the position and tagged value of the cell at (x, y).
func (e *Engine) Cell(x, y int) (Cell, bool) {
	if !e.size.Contains(x, y) {
		return Cell{}, false
	}
	s := core.State(e.cur.Cells()[e.cur.Index(x, y)])
	return Cell{
		X:   x,
		Y:   y,
		Pos: image.Pt(x*e.cellSize, y*e.cellSize),
		Value: core.Value{
			Domain: e.rule.Name(),
			State:  s,
			Active: e.rule.IsActive(s),
		},
	}, true
}

// NeighborCount counts active cells in the Moore neighbourhood of (x, y),
// wrapping across the edges of the grid.
func (e *Engine) NeighborCount(x, y int) int {
	return e.neighbors(e.cur.Cells(), x, y)
}

func (e *Engine) neighbors(cells []uint8, x, y int) int {
	w, h := e.size.W, e.size.H
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%w + w) % w
			ny := ((y+dy)%h + h) % h
			if e.rule.IsActive(core.State(cells[ny*w+nx])) {
				count++
			}
		}
	}
	return count
}

// Step computes the next generation into the scratch buffer and swaps it in.
func (e *Engine) Step() {
	w, h := e.size.W, e.size.H
	cur := e.cur.Cells()
	nxt := e.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := e.neighbors(cur, x, y)
			nxt[idx] = uint8(e.rule.Transition(core.State(cur[idx]), n))
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// Population counts active cells in the current generation.
func (e *Engine) Population() int {
	total := 0
	for _, c := range e.cur.Cells() {
		if e.rule.IsActive(core.State(c)) {
			total++
		}
	}
	return total
}

// Snapshot copies the current generation.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Rule:       e.rule.Name(),
		Size:       e.size,
		Generation: e.generation,
		Cells:      append([]uint8(nil), e.cur.Cells()...),
	}
}

// Restore loads a snapshot taken from an engine with the same size and rule.
func (e *Engine) Restore(s Snapshot) error {
	if s.Rule != e.rule.Name() {
		return fmt.Errorf("%w: rule %q, engine runs %q", ErrSnapshotMismatch, s.Rule, e.rule.Name())
	}
	if s.Size != e.size || len(s.Cells) != e.size.Cells() {
		return fmt.Errorf("%w: size %dx%d, engine is %dx%d", ErrSnapshotMismatch, s.Size.W, s.Size.H, e.size.W, e.size.H)
	}
	copy(e.cur.Cells(), s.Cells)
	e.nxt.CopyFrom(e.cur)
	e.generation = s.Generation
	return nil
}

// Parameters describes the engine for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Grid",
				Params: []core.Parameter{
					{Key: "w", Label: "Width", Value: strconv.Itoa(e.size.W)},
					{Key: "h", Label: "Height", Value: strconv.Itoa(e.size.H)},
					{Key: "cell", Label: "Cell size", Value: strconv.Itoa(e.cellSize)},
				},
			},
			{
				Name: "Simulation",
				Params: []core.Parameter{
					{Key: "rule", Label: "Rule", Value: e.rule.Name()},
					{Key: "generation", Label: "Generation", Value: strconv.FormatUint(e.generation, 10)},
					{Key: "population", Label: "Population", Value: strconv.Itoa(e.Population())},
				},
			},
		},
	}
}

func clamp01(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
