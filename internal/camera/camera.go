// Package camera implements the 2D view transform used to pan and zoom over
// the grid.
package camera

// Vec is a point or offset in screen or world space.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v*s.
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Limits bounds camera movement.
type Limits struct {
	DefaultZoom float64
	MinZoom     float64
	MaxZoom     float64
	ZoomRate    float64
	PanRate     float64
	// DragClamp limits the drag target to this fraction of Extent.
	DragClamp float64
	// Extent is the world size of the grid in pixels.
	Extent Vec
	// Home is the screen centre; target and offset return there on reset.
	Home Vec
}

// Camera maps world coordinates to the screen. A world point equal to Target
// is drawn at Offset, scaled by Zoom.
type Camera struct {
	Target Vec
	Offset Vec
	Zoom   float64

	limits Limits
}

// New returns a camera centred on l.Home at the default zoom.
func New(l Limits) *Camera {
	c := &Camera{limits: l}
	c.Target = l.Home
	c.Offset = l.Home
	c.Zoom = c.clampZoom(l.DefaultZoom)
	return c
}

// ScreenToWorld converts a screen position to world coordinates.
func (c *Camera) ScreenToWorld(p Vec) Vec {
	return Vec{
		X: (p.X-c.Offset.X)/c.Zoom + c.Target.X,
		Y: (p.Y-c.Offset.Y)/c.Zoom + c.Target.Y,
	}
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p Vec) Vec {
	return Vec{
		X: (p.X-c.Target.X)*c.Zoom + c.Offset.X,
		Y: (p.Y-c.Target.Y)*c.Zoom + c.Offset.Y,
	}
}

// CellAt returns the grid cell under a screen position. ok is false when the
// point lies outside a w*h grid.
func (c *Camera) CellAt(p Vec, cellSize, w, h int) (x, y int, ok bool) {
	if cellSize <= 0 {
		return 0, 0, false
	}
	world := c.ScreenToWorld(p)
	if world.X < 0 || world.Y < 0 {
		return 0, 0, false
	}
	x = int(world.X / float64(cellSize))
	y = int(world.Y / float64(cellSize))
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// Pan moves the target by PanRate in the given direction (-1, 0, 1 per axis).
func (c *Camera) Pan(dx, dy float64) {
	c.Target.X += dx * c.limits.PanRate
	c.Target.Y += dy * c.limits.PanRate
}

// ZoomAt zooms by wheel notches around the screen point under the cursor.
func (c *Camera) ZoomAt(cursor Vec, wheel float64) {
	if wheel == 0 {
		return
	}
	world := c.ScreenToWorld(cursor)
	c.Offset = cursor
	c.Target = world
	c.Zoom = c.clampZoom(c.Zoom + wheel*c.limits.ZoomRate*c.Zoom)
}

// Drag pans by a screen-space mouse delta and keeps the target within the
// clamped extent of the grid.
func (c *Camera) Drag(delta Vec) {
	c.Target = c.Target.Add(delta.Scale(-1 / c.Zoom))
	c.Target.X = clamp(c.Target.X, 0, c.limits.Extent.X*c.limits.DragClamp)
	c.Target.Y = clamp(c.Target.Y, 0, c.limits.Extent.Y*c.limits.DragClamp)
}

// Reset recentres the camera. With resetZoom the zoom returns to 1.
func (c *Camera) Reset(resetZoom bool) {
	c.Target = c.limits.Home
	c.Offset = c.limits.Home
	if resetZoom {
		c.Zoom = c.clampZoom(1)
	}
}

func (c *Camera) clampZoom(z float64) float64 {
	if c.limits.MaxZoom > 0 && c.limits.MaxZoom >= c.limits.MinZoom {
		z = clamp(z, c.limits.MinZoom, c.limits.MaxZoom)
	}
	if z <= 0 {
		z = 1
	}
	return z
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
