//go:build tinygo && microbit

// Package microbit binds the board to a BBC micro:bit: the two face buttons,
// the 5x5 LED matrix and the nRF hardware random number generator.
package microbit

import (
	"fmt"
	"image/color"
	"log"
	"machine"
	"time"

	"tinygo.org/x/drivers/microbitmatrix"

	"lifeboard/internal/board"
	"lifeboard/internal/core"
)

var lit = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Open configures every peripheral. The buttons are externally pulled up, so
// a low level means pressed.
func Open() (board.Peripherals, error) {
	machine.BUTTONA.Configure(machine.PinConfig{Mode: machine.PinInput})
	machine.BUTTONB.Configure(machine.PinConfig{Mode: machine.PinInput})

	matrix := microbitmatrix.New()
	matrix.Configure(microbitmatrix.Config{})
	matrix.ClearDisplay()

	return board.Peripherals{
		ButtonA: button{pin: machine.BUTTONA},
		ButtonB: button{pin: machine.BUTTONB},
		Display: &display{matrix: &matrix},
		Entropy: hwrng{},
		Log:     log.New(machine.Serial, "", 0),
	}, nil
}

type button struct {
	pin machine.Pin
}

func (b button) Pressed() (bool, error) { return !b.pin.Get(), nil }

type display struct {
	matrix *microbitmatrix.Device
}

// Show loads the frame and keeps multiplexing rows until the frame period is
// over.
func (d *display) Show(g core.Grid, frame time.Duration) error {
	d.matrix.ClearDisplay()
	for row := range g {
		for col := range g[row] {
			if g[row][col] == 1 {
				d.matrix.SetPixel(int16(col), int16(row), lit)
			}
		}
	}
	deadline := time.Now().Add(frame)
	for time.Now().Before(deadline) {
		if err := d.matrix.Display(); err != nil {
			return fmt.Errorf("microbit: matrix: %w", err)
		}
	}
	return nil
}

type hwrng struct{}

// Uint64 composes two 32-bit hardware draws.
func (hwrng) Uint64() (uint64, error) {
	hi, err := machine.GetRNG()
	if err != nil {
		return 0, fmt.Errorf("microbit: rng: %w", err)
	}
	lo, err := machine.GetRNG()
	if err != nil {
		return 0, fmt.Errorf("microbit: rng: %w", err)
	}
	return uint64(hi)<<32 | uint64(lo), nil
}
