package config

import (
	"sort"
	"time"
)

// Presets are named starting points, selected with --preset.
var Presets = map[string]*Config{
	"default": preset(func(c *Config) {}),
	"small": preset(func(c *Config) {
		c.Display = DisplayConfig{Width: 640, Height: 400, CellSize: 8}
	}),
	"hd": preset(func(c *Config) {
		c.Display = DisplayConfig{Width: 1920, Height: 1080, CellSize: 4}
		c.Sim.Tick = 33 * time.Millisecond
	}),
	"brain": preset(func(c *Config) {
		c.Rule = "briansbrain"
		c.Sim.InitialDensity = 0.2
	}),
	"soup": preset(func(c *Config) {
		c.Sim.InitialDensity = 0.35
		c.Sim.Paused = false
	}),
}

func preset(mod func(*Config)) *Config {
	c := DefaultConfig()
	mod(c)
	return c
}

// GetPreset returns a copy of the named preset or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
