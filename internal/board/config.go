package board

import (
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/debounce"
)

// DefaultFrame is how long each generation stays on the matrix.
const DefaultFrame = 500 * time.Millisecond

// Config controls the frame cadence, hold widths and starting board.
type Config struct {
	Frame        time.Duration
	InvertHold   uint16
	RecoveryHold uint16
	Seed         core.Grid
}

// DefaultConfig returns the standard configuration: half-second frames,
// five-frame holds, and the build's default pattern.
func DefaultConfig() Config {
	seed, _ := core.Lookup(core.DefaultPattern)
	return Config{
		Frame:        DefaultFrame,
		InvertHold:   debounce.DefaultWidth,
		RecoveryHold: debounce.DefaultWidth,
		Seed:         seed,
	}
}
