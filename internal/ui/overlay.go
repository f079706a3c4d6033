//go:build ebiten

package ui

import (
	"image/color"

	"gridlife/internal/camera"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	gridLineColor = color.RGBA{R: 245, G: 245, B: 245, A: 90}
	gridAxisColor = color.RGBA{R: 245, G: 245, B: 245, A: 255}
)

// Overlay draws cell separators and centre axes on top of the grid.
type Overlay struct {
	segments []Segment
	show     bool
}

// NewOverlay precomputes the line geometry for a w*h grid.
func NewOverlay(w, h, cellSize int, extent camera.Vec) *Overlay {
	return &Overlay{segments: GridLines(w, h, cellSize, extent), show: true}
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.show = !o.show }

// Draw renders the overlay through cam.
func (o *Overlay) Draw(screen *ebiten.Image, cam *camera.Camera) {
	if o == nil || !o.show {
		return
	}
	for _, st := range Strokes(o.segments, cam) {
		col := gridLineColor
		if st.Axis {
			col = gridAxisColor
		}
		vector.StrokeLine(screen, st.X0, st.Y0, st.X1, st.Y1, st.Width, col, true)
	}
}
