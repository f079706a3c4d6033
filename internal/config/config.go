// Package config loads and validates runtime settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gridlife/internal/camera"
	"gridlife/internal/core"
)

// Defaults mirror the original window: 1440x900 at 5px cells, 50ms ticks.
const (
	DefaultRule           = "life"
	DefaultWidth          = 1440
	DefaultHeight         = 900
	DefaultCellSize       = 5
	DefaultTick           = 50 * time.Millisecond
	DefaultInitialDensity = 0.5
	DefaultReseedDensity  = 0.1
	DefaultZoom           = 0.9
	DefaultMinZoom        = 0.75
	DefaultMaxZoom        = 10.0
	DefaultZoomRate       = 0.1
	DefaultPanRate        = 5.0
	DefaultDragClamp      = 0.75
	DefaultVolume         = 0.15
	DefaultFrame          = time.Second / 30
)

// ErrInvalid is wrapped by every validation and override error.
var ErrInvalid = errors.New("invalid config")

// Config holds every runtime setting of the program.
type Config struct {
	Rule    string        `yaml:"rule"`
	Seed    int64         `yaml:"seed"`
	Display DisplayConfig `yaml:"display"`
	Sim     SimConfig     `yaml:"sim"`
	Camera  CameraConfig  `yaml:"camera"`
	Audio   AudioConfig   `yaml:"audio"`
	TUI     TUIConfig     `yaml:"tui"`
}

// DisplayConfig fixes the window extent. The grid is Width/CellSize by
// Height/CellSize cells and does not change at runtime.
type DisplayConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SimConfig controls tick pacing and fill densities.
type SimConfig struct {
	Tick           time.Duration `yaml:"tick"`
	InitialDensity float64       `yaml:"initial_density"`
	ReseedDensity  float64       `yaml:"reseed_density"`
	Paused         bool          `yaml:"paused"`
}

// CameraConfig bounds zoom and sets pan and drag rates.
type CameraConfig struct {
	Zoom      float64 `yaml:"zoom"`
	MinZoom   float64 `yaml:"min_zoom"`
	MaxZoom   float64 `yaml:"max_zoom"`
	ZoomRate  float64 `yaml:"zoom_rate"`
	PanRate   float64 `yaml:"pan_rate"`
	DragClamp float64 `yaml:"drag_clamp"`
}

// AudioConfig enables the per-generation blip.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// TUIConfig sets the terminal redraw interval.
type TUIConfig struct {
	Frame time.Duration `yaml:"frame"`
}

// DefaultConfig returns a fresh config with every default filled in.
func DefaultConfig() *Config {
	return &Config{
		Rule: DefaultRule,
		Seed: 1,
		Display: DisplayConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			CellSize: DefaultCellSize,
		},
		Sim: SimConfig{
			Tick:           DefaultTick,
			InitialDensity: DefaultInitialDensity,
			ReseedDensity:  DefaultReseedDensity,
			Paused:         true,
		},
		Camera: CameraConfig{
			Zoom:      DefaultZoom,
			MinZoom:   DefaultMinZoom,
			MaxZoom:   DefaultMaxZoom,
			ZoomRate:  DefaultZoomRate,
			PanRate:   DefaultPanRate,
			DragClamp: DefaultDragClamp,
		},
		Audio: AudioConfig{Enabled: true, Volume: DefaultVolume},
		TUI:   TUIConfig{Frame: DefaultFrame},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file on top of base, which it modifies. Keys absent
// from the file keep their base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// GridSize derives the grid dimensions from the display extent.
func (c *Config) GridSize() core.Size {
	if c.Display.CellSize <= 0 {
		return core.Size{}
	}
	return core.Size{
		W: c.Display.Width / c.Display.CellSize,
		H: c.Display.Height / c.Display.CellSize,
	}
}

// CameraLimits converts the camera section for the view transform.
func (c *Config) CameraLimits() camera.Limits {
	size := c.GridSize()
	cs := float64(c.Display.CellSize)
	return camera.Limits{
		DefaultZoom: c.Camera.Zoom,
		MinZoom:     c.Camera.MinZoom,
		MaxZoom:     c.Camera.MaxZoom,
		ZoomRate:    c.Camera.ZoomRate,
		PanRate:     c.Camera.PanRate,
		DragClamp:   c.Camera.DragClamp,
		Extent:      camera.Vec{X: float64(size.W) * cs, Y: float64(size.H) * cs},
		Home:        camera.Vec{X: float64(c.Display.Width) / 2, Y: float64(c.Display.Height) / 2},
	}
}

// Validate checks ranges and that the rule set is registered.
func (c *Config) Validate() error {
	if _, err := core.Lookup(c.Rule); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	d := c.Display
	if d.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, d.CellSize)
	}
	if d.Width < d.CellSize || d.Height < d.CellSize {
		return fmt.Errorf("%w: display %dx%d smaller than one cell", ErrInvalid, d.Width, d.Height)
	}
	if c.Sim.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalid, c.Sim.Tick)
	}
	if !unit(c.Sim.InitialDensity) || !unit(c.Sim.ReseedDensity) {
		return fmt.Errorf("%w: densities must lie in [0,1]", ErrInvalid)
	}
	cam := c.Camera
	if cam.MinZoom <= 0 || cam.MaxZoom < cam.MinZoom {
		return fmt.Errorf("%w: zoom bounds [%v, %v]", ErrInvalid, cam.MinZoom, cam.MaxZoom)
	}
	if cam.Zoom < cam.MinZoom || cam.Zoom > cam.MaxZoom {
		return fmt.Errorf("%w: zoom %v outside [%v, %v]", ErrInvalid, cam.Zoom, cam.MinZoom, cam.MaxZoom)
	}
	if !unit(cam.DragClamp) {
		return fmt.Errorf("%w: drag_clamp must lie in [0,1]", ErrInvalid)
	}
	if !unit(c.Audio.Volume) {
		return fmt.Errorf("%w: volume must lie in [0,1]", ErrInvalid)
	}
	return nil
}

func unit(v float64) bool { return v >= 0 && v <= 1 }
