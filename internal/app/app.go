//go:build ebiten

package app

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"lifeboard/internal/board"
	"lifeboard/internal/core"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game emulates the board in a window. The controller runs its own frame
// loop on a separate goroutine; the window only publishes key levels to it
// and paints the last frame it rendered.
type Game struct {
	ctrl    *board.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	scale   int

	a, b atomic.Bool
	errc chan error

	mu     sync.Mutex
	frame  core.Grid
	status core.ParameterSnapshot
}

// New constructs a Game and wires a controller to it.
func New(cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		painter: render.NewGridPainter(),
		hud:     ui.NewHUD(hudWidth),
		scale:   cfg.Scale,
		errc:    make(chan error, 1),
	}
	ctrl, err := board.New(cfg.Board(), board.Peripherals{
		ButtonA: keyButton{&g.a},
		ButtonB: keyButton{&g.b},
		Display: &windowDisplay{game: g, pacer: core.NewPacer()},
		Entropy: cfg.Entropy(),
		Log:     cfg.Logger(os.Stderr),
	})
	if err != nil {
		return nil, err
	}
	g.ctrl = ctrl
	g.frame = cfg.Board().Seed
	return g, nil
}

// Start launches the controller loop.
func (g *Game) Start() {
	go func() { g.errc <- g.ctrl.Run() }()
}

// Size returns the window size in screen pixels.
func (g *Game) Size() (int, int) {
	return core.Size*g.scale + hudWidth, core.Size * g.scale
}

// Update samples the keyboard and surfaces controller failures.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.a.Store(ebiten.IsKeyPressed(ebiten.KeyA))
	g.b.Store(ebiten.IsKeyPressed(ebiten.KeyB))

	select {
	case err := <-g.errc:
		if err == nil {
			err = errors.New("board loop stopped")
		}
		return err
	default:
	}

	g.mu.Lock()
	status := g.status
	g.mu.Unlock()
	g.hud.Update(status)
	return nil
}

// Draw renders the most recent frame and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	frame := g.frame
	g.mu.Unlock()
	g.painter.Blit(screen, frame, render.LEDOn, render.LEDOff, g.scale)
	g.hud.Draw(screen, core.Size*g.scale, core.Size*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}

type keyButton struct{ level *atomic.Bool }

func (k keyButton) Pressed() (bool, error) { return k.level.Load(), nil }

// windowDisplay hands frames to the window and paces the controller.
type windowDisplay struct {
	game  *Game
	pacer *core.Pacer
}

func (d *windowDisplay) Show(frame core.Grid, period time.Duration) error {
	// Show runs on the controller goroutine, so reading its status here is
	// race free.
	var status core.ParameterSnapshot
	if d.game.ctrl != nil {
		status = d.game.ctrl.Status()
	}
	d.game.mu.Lock()
	d.game.frame = frame
	d.game.status = status
	d.game.mu.Unlock()
	d.pacer.Wait(period)
	return nil
}
