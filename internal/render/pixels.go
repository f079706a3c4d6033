package render

import (
	"image/color"

	"gridlife/internal/core"
)

// Background is the colour behind the grid.
var Background = color.RGBA{R: 39, G: 41, B: 40, A: 255}

// PaletteProvider is implemented by rule sets that colour their own states.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// PaletteFor returns one colour per state of rule. Rule sets without their
// own palette draw active states white on the background colour.
func PaletteFor(rule core.RuleSet) []color.RGBA {
	if p, ok := rule.(PaletteProvider); ok {
		if pal := p.Palette(); len(pal) >= rule.States() {
			return pal
		}
	}
	pal := make([]color.RGBA, rule.States())
	for i := range pal {
		if rule.IsActive(core.State(i)) {
			pal[i] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			continue
		}
		pal[i] = Background
	}
	return pal
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
