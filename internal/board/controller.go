// Package board drives the 5x5 Game of Life: it owns the grid, the random
// stream and both debounce machines, and runs one iteration per display
// frame.
package board

import (
	"errors"
	"fmt"

	"lifeboard/internal/core"
	"lifeboard/internal/debounce"
	pkgcore "lifeboard/pkg/core"
	"lifeboard/pkg/sims/life"
)

// Controller is the single owner of all mutable board state. It is not safe
// for concurrent use; one goroutine runs the frame loop.
type Controller struct {
	cfg  Config
	life *life.Life
	rng  *pkgcore.RNG

	invert   *debounce.Machine
	recovery *debounce.Machine

	buttonA Button
	buttonB Button
	display Display
	log     Logger

	frames     uint64
	inversions uint64
	randomized uint64
	recoveries uint64
}

// New wires a controller to its peripherals and seeds the random stream from
// two 64-bit entropy draws. Any failure here is meant to be fatal.
func New(cfg Config, p Peripherals) (*Controller, error) {
	switch {
	case p.ButtonA == nil:
		return nil, errors.New("board: button A not connected")
	case p.ButtonB == nil:
		return nil, errors.New("board: button B not connected")
	case p.Display == nil:
		return nil, errors.New("board: display not connected")
	case p.Entropy == nil:
		return nil, errors.New("board: entropy source not connected")
	}
	hi, err := p.Entropy.Uint64()
	if err != nil {
		return nil, fmt.Errorf("board: seed high word: %w: %w", ErrEntropy, err)
	}
	lo, err := p.Entropy.Uint64()
	if err != nil {
		return nil, fmt.Errorf("board: seed low word: %w: %w", ErrEntropy, err)
	}
	logger := p.Log
	if logger == nil {
		logger = discard{}
	}
	c := &Controller{
		cfg:      cfg,
		life:     life.New(cfg.Seed),
		rng:      pkgcore.NewRNG128(hi, lo),
		invert:   debounce.New(cfg.InvertHold),
		recovery: debounce.New(cfg.RecoveryHold),
		buttonA:  p.ButtonA,
		buttonB:  p.ButtonB,
		display:  p.Display,
		log:      logger,
	}
	c.log.Printf("seeded %016x%016x, frame %s, holds %d/%d", hi, lo, cfg.Frame, cfg.InvertHold, cfg.RecoveryHold)
	return c, nil
}

// Run executes frames until one fails. It never returns nil.
func (c *Controller) Run() error {
	for {
		if err := c.Frame(); err != nil {
			return err
		}
	}
}

// Frame runs one iteration: sample button A, sample button B against the
// inversion hold, check for an empty board, render, then step.
func (c *Controller) Frame() error {
	grid := c.life.Grid()

	pressedA, err := c.buttonA.Pressed()
	if err != nil {
		return fmt.Errorf("frame %d: button A: %w: %w", c.frames, ErrButtonRead, err)
	}
	if pressedA {
		grid.Randomize(c.rng)
		c.randomized++
	}

	pressedB, err := c.buttonB.Pressed()
	if err != nil {
		return fmt.Errorf("frame %d: button B: %w: %w", c.frames, ErrButtonRead, err)
	}
	c.updateInvert(grid, pressedB)
	c.updateRecovery(grid)

	if err := c.display.Show(*grid, c.cfg.Frame); err != nil {
		return fmt.Errorf("frame %d: %w: %w", c.frames, ErrDisplay, err)
	}

	c.life.Step()
	c.frames++
	return nil
}

// updateInvert applies button B: a press seen while armed inverts once and
// starts the hold; the hold then runs out regardless of the button level.
func (c *Controller) updateInvert(grid *core.Grid, pressed bool) {
	if c.invert.Holding() {
		if c.invert.Tick() {
			c.log.Printf("invert: re-armed")
		}
		return
	}
	if !pressed {
		return
	}
	grid.Invert()
	c.invert.Flip()
	c.inversions++
	c.log.Printf("invert: %d live cells, %s", grid.Alive(), c.invert)
}

// updateRecovery keeps an empty board blank for the recovery hold and then
// reseeds it.
func (c *Controller) updateRecovery(grid *core.Grid) {
	empty := grid.IsEmpty()
	switch {
	case !c.recovery.Holding():
		if empty {
			c.recovery.Flip()
			c.log.Printf("empty: %s", c.recovery)
		}
	case !empty:
		// Button A or B refilled the board during the countdown.
		c.recovery.Flip()
		c.log.Printf("empty: cancelled, %d live cells", grid.Alive())
	default:
		if !c.recovery.Tick() {
			c.log.Printf("empty: %s", c.recovery)
			return
		}
		grid.Randomize(c.rng)
		c.recoveries++
		c.log.Printf("empty: reseeded, %d live cells", grid.Alive())
	}
}

// Grid returns a copy of the current board.
func (c *Controller) Grid() core.Grid { return *c.life.Grid() }

// Generation reports how many generations have been computed.
func (c *Controller) Generation() uint64 { return c.life.Generation() }

// Frames reports how many frames completed.
func (c *Controller) Frames() uint64 { return c.frames }

// InvertState exposes the button-B debounce state.
func (c *Controller) InvertState() debounce.State { return c.invert.State() }

// RecoveryState exposes the empty-board recovery state.
func (c *Controller) RecoveryState() debounce.State { return c.recovery.State() }

// Stats counts the actions taken so far.
type Stats struct {
	Frames     uint64
	Inversions uint64
	Randomized uint64
	Recoveries uint64
}

// Stats returns the action counters.
func (c *Controller) Stats() Stats {
	return Stats{
		Frames:     c.frames,
		Inversions: c.inversions,
		Randomized: c.randomized,
		Recoveries: c.recoveries,
	}
}
