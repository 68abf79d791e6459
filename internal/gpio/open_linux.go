//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

const consumer = "lifeboard"

// Open requests both button lines as pulled-up active-low inputs. A failure
// on the second line releases the first.
func Open(cfg Config) (*Buttons, error) {
	a, err := request(cfg.Chip, "A", cfg.ButtonA)
	if err != nil {
		return nil, err
	}
	b, err := request(cfg.Chip, "B", cfg.ButtonB)
	if err != nil {
		a.line.Close()
		return nil, err
	}
	return &Buttons{A: a, B: b}, nil
}

func request(chip, name string, offset int) (*Button, error) {
	line, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsInput,
		gpiocdev.AsActiveLow,
		gpiocdev.WithPullUp,
		gpiocdev.WithConsumer(consumer),
	)
	if err != nil {
		return nil, fmt.Errorf("gpio: request %s line %d for button %s: %w", chip, offset, name, err)
	}
	return &Button{name: name, offset: offset, line: line}, nil
}
