//go:build !ebiten

package app

import (
	"errors"

	"gridlife/internal/config"
	"gridlife/internal/control"
)

// ErrNoGUI is returned when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the windowed shell requires building with -tags ebiten; try the tui command")

// Run reports that the GUI build tag is missing.
func Run(*config.Config, *control.Controller) error {
	return ErrNoGUI
}
