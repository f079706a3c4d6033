package life

import "image/color"

var palette = []color.RGBA{
	{R: 39, G: 41, B: 40, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Palette maps Dead and Alive to background and white.
func (l *Life) Palette() []color.RGBA { return palette }
