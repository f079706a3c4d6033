//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMarginX    = 10
	hudMarginY    = 20
	hudLineHeight = 20
)

var (
	hudText  = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	hudHint  = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	hudPanel = color.RGBA{R: 16, G: 16, B: 20, A: 170}
)

// HUD renders the status block and key hints over the simulation view.
type HUD struct {
	status    Status
	showHelp  bool
	panel     *ebiten.Image
	panelSize int
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	return &HUD{showHelp: true}
}

// Update stores the status to draw on the next frame.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	h.status = s
}

// ToggleHelp shows or hides the key hints.
func (h *HUD) ToggleHelp() { h.showHelp = !h.showHelp }

// Draw paints the HUD in screen space.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	lines := h.status.Lines()
	height := hudMarginY/2 + len(lines)*hudLineHeight
	if h.panel == nil || h.panelSize != height {
		h.panel = ebiten.NewImage(180, height)
		h.panel.Fill(hudPanel)
		h.panelSize = height
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudMarginX/2, 0)
	screen.DrawImage(h.panel, op)

	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(screen, line, face, hudMarginX, hudMarginY+i*hudLineHeight, hudText)
	}
	if !h.showHelp {
		return
	}
	bottom := screen.Bounds().Dy() - hudMarginX
	for i := range KeyHelp {
		y := bottom - (len(KeyHelp)-1-i)*hudLineHeight
		text.Draw(screen, KeyHelp[i], face, hudMarginX, y, hudHint)
	}
}
