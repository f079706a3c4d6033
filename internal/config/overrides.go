package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ParseOverrides splits key=value pairs.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("%w: override %q is not key=value", ErrInvalid, kv)
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out, nil
}

type setter func(c *Config, v string) error

var overrideKeys = map[string]setter{
	"rule":            func(c *Config, v string) error { c.Rule = v; return nil },
	"seed":            int64Setter(func(c *Config) *int64 { return &c.Seed }),
	"width":           intSetter(func(c *Config) *int { return &c.Display.Width }),
	"height":          intSetter(func(c *Config) *int { return &c.Display.Height }),
	"cell_size":       intSetter(func(c *Config) *int { return &c.Display.CellSize }),
	"tick":            durationSetter(func(c *Config) *time.Duration { return &c.Sim.Tick }),
	"initial_density": floatSetter(func(c *Config) *float64 { return &c.Sim.InitialDensity }),
	"reseed_density":  floatSetter(func(c *Config) *float64 { return &c.Sim.ReseedDensity }),
	"paused":          boolSetter(func(c *Config) *bool { return &c.Sim.Paused }),
	"zoom":            floatSetter(func(c *Config) *float64 { return &c.Camera.Zoom }),
	"min_zoom":        floatSetter(func(c *Config) *float64 { return &c.Camera.MinZoom }),
	"max_zoom":        floatSetter(func(c *Config) *float64 { return &c.Camera.MaxZoom }),
	"zoom_rate":       floatSetter(func(c *Config) *float64 { return &c.Camera.ZoomRate }),
	"pan_rate":        floatSetter(func(c *Config) *float64 { return &c.Camera.PanRate }),
	"drag_clamp":      floatSetter(func(c *Config) *float64 { return &c.Camera.DragClamp }),
	"audio":           boolSetter(func(c *Config) *bool { return &c.Audio.Enabled }),
	"volume":          floatSetter(func(c *Config) *float64 { return &c.Audio.Volume }),
	"tui_frame":       durationSetter(func(c *Config) *time.Duration { return &c.TUI.Frame }),
}

// OverrideKeys lists the keys accepted by Apply.
func OverrideKeys() []string {
	keys := make([]string, 0, len(overrideKeys))
	for k := range overrideKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Apply sets fields from a flag-style key/value map.
func (c *Config) Apply(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		set, ok := overrideKeys[k]
		if !ok {
			return fmt.Errorf("%w: unknown key %q (have %s)", ErrInvalid, k, strings.Join(OverrideKeys(), ", "))
		}
		if err := set(c, overrides[k]); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, k, err)
		}
	}
	return nil
}

func intSetter(field func(*Config) *int) setter {
	return func(c *Config, v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}

func int64Setter(field func(*Config) *int64) setter {
	return func(c *Config, v string) error {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}

func floatSetter(field func(*Config) *float64) setter {
	return func(c *Config, v string) error {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}

func boolSetter(field func(*Config) *bool) setter {
	return func(c *Config, v string) error {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}

func durationSetter(field func(*Config) *time.Duration) setter {
	return func(c *Config, v string) error {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}
