//go:build ebiten

package app

import (
	"errors"
	"log"
	"time"

	"gridlife/internal/camera"
	"gridlife/internal/config"
	"gridlife/internal/control"
	"gridlife/internal/render"
	"gridlife/internal/sound"
	"gridlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the controller to the ebiten.Game interface.
type Game struct {
	cfg     *config.Config
	ctl     *control.Controller
	cam     *camera.Camera
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	sound   *sound.Player

	frames     frameTracker
	lastFrame  time.Time
	lastCursor camera.Vec
}

// New constructs a Game around ctl.
func New(cfg *config.Config, ctl *control.Controller) *Game {
	size := ctl.Engine().Size()
	limits := cfg.CameraLimits()
	g := &Game{
		cfg:     cfg,
		ctl:     ctl,
		cam:     camera.New(limits),
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(size.W, size.H, cfg.Display.CellSize, limits.Extent),
		hud:     ui.NewHUD(),
		frames:  newFrameTracker(ctl),
	}
	if cfg.Audio.Enabled {
		p, err := sound.NewPlayer(cfg.Audio.Volume)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		}
		g.sound = p
	}
	return g
}

func (g *Game) cursor() camera.Vec {
	x, y := ebiten.CursorPosition()
	return camera.Vec{X: float64(x), Y: float64(y)}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()

	now := time.Now()
	dt := time.Second / time.Duration(ebiten.TPS())
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame)
	}
	g.lastFrame = now
	u := g.frames.update(g.ctl, dt)
	if u.Title != "" {
		ebiten.SetWindowTitle(u.Title)
	}

	e := g.ctl.Engine()
	if u.Stepped {
		g.sound.Tick(e.Population(), e.Size().Cells())
	}

	g.hud.Update(ui.Status{
		FPS:    ebiten.ActualFPS(),
		Paused: g.ctl.Paused(),
		Muted:  g.sound.Muted(),
		Params: e.Parameters(),
	})
	return nil
}

var keyActions = map[ebiten.Key]control.Command{
	ebiten.KeySpace: control.CmdTogglePause,
	ebiten.KeyEnter: control.CmdResume,
	ebiten.KeyN:     control.CmdStepOnce,
	ebiten.KeyC:     control.CmdClear,
	ebiten.KeyR:     control.CmdReseed,
	ebiten.KeyX:     control.CmdRandomize,
	ebiten.KeyB:     control.CmdSwitchRule,
}

func (g *Game) handleKeys() {
	for key, cmd := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.ctl.Apply(control.Action{Cmd: cmd})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sound.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.cam.Reset(ebiten.IsKeyPressed(ebiten.KeyShift))
	}

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if dx != 0 || dy != 0 {
		g.cam.Pan(dx, dy)
	}
}

func (g *Game) handleMouse() {
	cur := g.cursor()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		size := g.ctl.Engine().Size()
		if x, y, ok := g.cam.CellAt(cur, g.cfg.Display.CellSize, size.W, size.H); ok {
			g.ctl.Apply(control.Action{Cmd: control.CmdToggleCell, X: x, Y: y})
		}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.cam.Drag(camera.Vec{X: cur.X - g.lastCursor.X, Y: cur.Y - g.lastCursor.Y})
	}
	g.lastCursor = cur

	if _, wheel := ebiten.Wheel(); wheel != 0 {
		g.cam.ZoomAt(cur, wheel)
	}
}

// Draw renders the grid, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)

	var geo ebiten.GeoM
	geo.Translate(-g.cam.Target.X, -g.cam.Target.Y)
	geo.Scale(g.cam.Zoom, g.cam.Zoom)
	geo.Translate(g.cam.Offset.X, g.cam.Offset.Y)

	e := g.ctl.Engine()
	g.painter.Blit(screen, e.Cells(), render.PaletteFor(e.Rule()), g.cfg.Display.CellSize, geo)
	g.overlay.Draw(screen, g.cam)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.Width, g.cfg.Display.Height
}

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config, ctl *control.Controller) error {
	game := New(cfg, ctl)

	ebiten.SetWindowTitle(windowTitle(ctl.Engine().Rule().Name()))
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Printf("closed after %d generations", ctl.Engine().Generation())
	return nil
}
