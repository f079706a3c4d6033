package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00cccc"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	pausedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	frameStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466"))
)

// glyphs indexed by state; states past the end reuse the last glyph.
var glyphs = []rune{' ', '█', '▒'}

func glyph(s uint8) rune {
	if int(s) >= len(glyphs) {
		return glyphs[len(glyphs)-1]
	}
	return glyphs[s]
}
