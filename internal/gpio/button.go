// Package gpio reads the two push-buttons from Linux GPIO character device
// lines, for boards wired to a single-board computer.
package gpio

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by Open on platforms without GPIO character
// devices.
var ErrUnsupported = errors.New("gpio: not supported on this platform")

// Config names the chip and line offsets the buttons are wired to.
type Config struct {
	Chip    string
	ButtonA int
	ButtonB int
}

// DefaultConfig matches a Raspberry Pi with buttons on GPIO 17 and 27.
func DefaultConfig() Config {
	return Config{Chip: "gpiochip0", ButtonA: 17, ButtonB: 27}
}

type lineValue interface {
	Value() (int, error)
	Close() error
}

// Button is one requested input line. Lines are requested active-low with a
// pull-up, so a logical 1 means the button is held down.
type Button struct {
	name   string
	offset int
	line   lineValue
}

// Pressed samples the line.
func (b *Button) Pressed() (bool, error) {
	v, err := b.line.Value()
	if err != nil {
		return false, fmt.Errorf("gpio: button %s (line %d): %w", b.name, b.offset, err)
	}
	return v == 1, nil
}

// Buttons holds both requested lines.
type Buttons struct {
	A, B *Button
}

// Close releases both lines.
func (bs *Buttons) Close() error {
	var errs []error
	for _, b := range []*Button{bs.A, bs.B} {
		if b == nil || b.line == nil {
			continue
		}
		if err := b.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("gpio: close line %d: %w", b.offset, err))
		}
	}
	return errors.Join(errs...)
}
