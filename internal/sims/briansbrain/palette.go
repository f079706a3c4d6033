package briansbrain

import "image/color"

var palette = []color.RGBA{
	{R: 39, G: 41, B: 40, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 64, G: 120, B: 230, A: 255},
}

// Palette colours Off, On and Dying cells.
func (b *Brain) Palette() []color.RGBA { return palette }
