package ui

import "gridlife/internal/camera"

const (
	// LineThickness is the width of cell separators in world pixels.
	LineThickness = 0.2
	// AxisThickness is the width of the centre axes in world pixels.
	AxisThickness = 0.9
)

// Segment is a line in world coordinates.
type Segment struct {
	From, To  camera.Vec
	Thickness float64
}

// GridLines returns one separator per cell boundary across a w*h grid plus
// the horizontal and vertical centre axes of the display extent.
func GridLines(w, h, cellSize int, extent camera.Vec) []Segment {
	if w <= 0 || h <= 0 || cellSize <= 0 {
		return nil
	}
	segs := make([]Segment, 0, w+h+4)
	cs := float64(cellSize)
	for i := 0; i <= w; i++ {
		x := float64(i) * cs
		segs = append(segs, Segment{
			From:      camera.Vec{X: x, Y: 0},
			To:        camera.Vec{X: x, Y: extent.Y},
			Thickness: LineThickness,
		})
	}
	for j := 0; j <= h; j++ {
		y := float64(j) * cs
		segs = append(segs, Segment{
			From:      camera.Vec{X: 0, Y: y},
			To:        camera.Vec{X: extent.X, Y: y},
			Thickness: LineThickness,
		})
	}
	segs = append(segs,
		Segment{
			From:      camera.Vec{X: 0, Y: extent.Y / 2},
			To:        camera.Vec{X: extent.X, Y: extent.Y / 2},
			Thickness: AxisThickness,
		},
		Segment{
			From:      camera.Vec{X: extent.X / 2, Y: 0},
			To:        camera.Vec{X: extent.X / 2, Y: extent.Y},
			Thickness: AxisThickness,
		},
	)
	return segs
}

// Stroke is a segment projected to screen space.
type Stroke struct {
	X0, Y0, X1, Y1 float32
	Width          float32
	Axis           bool
}

// Strokes projects every segment through cam. Widths scale with zoom, so
// separators stay hairlines when zoomed out.
func Strokes(segs []Segment, cam *camera.Camera) []Stroke {
	out := make([]Stroke, 0, len(segs))
	for _, seg := range segs {
		from := cam.WorldToScreen(seg.From)
		to := cam.WorldToScreen(seg.To)
		out = append(out, Stroke{
			X0:    float32(from.X),
			Y0:    float32(from.Y),
			X1:    float32(to.X),
			Y1:    float32(to.Y),
			Width: float32(seg.Thickness * cam.Zoom),
			Axis:  seg.Thickness >= AxisThickness,
		})
	}
	return out
}
