package board

import (
	"errors"
	"time"

	"lifeboard/internal/core"
)

var (
	// ErrButtonRead marks a failed button sample inside the frame loop.
	ErrButtonRead = errors.New("button read failed")
	// ErrDisplay marks a failed frame render.
	ErrDisplay = errors.New("display failed")
	// ErrEntropy marks a failed entropy draw while seeding.
	ErrEntropy = errors.New("entropy source failed")
)

// Button samples the current level of a push-button. Pressed reports true
// while the button is held down.
type Button interface {
	Pressed() (bool, error)
}

// Display renders a board and blocks for roughly the frame duration while
// doing so. It is the only pacing the frame loop has.
type Display interface {
	Show(g core.Grid, frame time.Duration) error
}

// Entropy returns 64 random bits per call.
type Entropy interface {
	Uint64() (uint64, error)
}

// Logger receives informational status lines. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Peripherals bundles everything the controller consumes from the outside.
// Log may be nil.
type Peripherals struct {
	ButtonA Button
	ButtonB Button
	Display Display
	Entropy Entropy
	Log     Logger
}

type discard struct{}

func (discard) Printf(string, ...any) {}
