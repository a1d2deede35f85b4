package glint

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS sets ebiten's ticks per second. Zero keeps ebiten's default (60).
	TPS int
	// ShowFPS draws FPS/TPS and live effect counts in the top-left corner.
	ShowFPS bool
	// HideCursor hides the system cursor, for scenes with a custom one.
	HideCursor bool
	// Update, when set, runs before the scene ticks each frame. Returning an
	// error stops the game loop.
	Update func() error
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.scene.SetDebugMode(!g.scene.debug)
	}
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\ntweens: %d timers: %d triggers: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.scene.ActiveTweens(), g.scene.PendingTasks(), g.scene.triggers.Len()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.scene.viewport.Width), int(g.scene.viewport.Height)
}

// Run opens a window and drives the scene until the window closes or
// cfg.Update returns an error. The viewport is resized to the window.
// F3 toggles debug mode.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = int(s.viewport.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(s.viewport.Height)
	}
	s.viewport.Width = float64(cfg.Width)
	s.viewport.Height = float64(cfg.Height)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	return ebiten.RunGame(&game{scene: s, cfg: cfg})
}
