package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the value at (x, y) after wrapping.
func (g *ByteGrid) At(x, y int) State {
	x, y = g.Wrap(x, y)
	return State(g.data[g.Index(x, y)])
}

// Set stores s at (x, y) after wrapping.
func (g *ByteGrid) Set(x, y int, s State) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = uint8(s)
}

// Fill sets every cell to s.
func (g *ByteGrid) Fill(s State) {
	v := uint8(s)
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	g.Fill(0)
}

// CopyFrom copies src into g. Grids of different dimensions are left untouched.
func (g *ByteGrid) CopyFrom(src *ByteGrid) bool {
	if src == nil || src.W != g.W || src.H != g.H {
		return false
	}
	copy(g.data, src.data)
	return true
}
