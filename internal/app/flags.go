package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"slices"
	"strings"
	"time"

	"lifeboard/internal/board"
	"lifeboard/internal/core"
	"lifeboard/internal/debounce"
	"lifeboard/internal/entropy"
	"lifeboard/internal/gpio"
)

// Backends selectable on host builds.
const (
	BackendConsole = "console"
	BackendGPIO    = "gpio"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern string
	Frame   time.Duration
	Hold    uint
	Seed    int64
	Scale   int
	Backend string
	GPIO    gpio.Config
	Quiet   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern: core.DefaultPattern,
		Frame:   board.DefaultFrame,
		Hold:    uint(debounce.DefaultWidth),
		Scale:   64,
		Backend: BackendConsole,
		GPIO:    gpio.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting board: "+strings.Join(core.Patterns(), ", "))
	fs.DurationVar(&c.Frame, "frame", c.Frame, "how long each generation is shown")
	fs.UintVar(&c.Hold, "hold", c.Hold, "frames to ignore button B after an inversion and to keep an empty board blank")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "fixed random seed for replay (0 draws from the OS entropy pool)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per LED")
	fs.StringVar(&c.Backend, "backend", c.Backend, "button source for terminal builds: console or gpio")
	fs.StringVar(&c.GPIO.Chip, "gpio-chip", c.GPIO.Chip, "GPIO character device for the gpio backend")
	fs.IntVar(&c.GPIO.ButtonA, "button-a", c.GPIO.ButtonA, "GPIO line offset of button A")
	fs.IntVar(&c.GPIO.ButtonB, "button-b", c.GPIO.ButtonB, "GPIO line offset of button B")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "discard diagnostic output")
}

// Validate rejects settings the board cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := core.Lookup(c.Pattern); !ok {
		errs = append(errs, fmt.Errorf("unknown pattern %q (have %s)", c.Pattern, strings.Join(core.Patterns(), ", ")))
	}
	if c.Frame <= 0 {
		errs = append(errs, fmt.Errorf("frame must be positive, got %s", c.Frame))
	}
	if c.Hold > math.MaxUint16 {
		errs = append(errs, fmt.Errorf("hold must be at most %d frames, got %d", math.MaxUint16, c.Hold))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if !slices.Contains([]string{BackendConsole, BackendGPIO}, c.Backend) {
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	return errors.Join(errs...)
}

// Board converts the flags into controller settings. Call Validate first.
func (c *Config) Board() board.Config {
	seed, _ := core.Lookup(c.Pattern)
	return board.Config{
		Frame:        c.Frame,
		InvertHold:   uint16(c.Hold),
		RecoveryHold: uint16(c.Hold),
		Seed:         seed,
	}
}

// Entropy returns the seed source: a replayable stream when -seed is set,
// the OS pool otherwise.
func (c *Config) Entropy() board.Entropy {
	if c.Seed != 0 {
		return entropy.NewFixed(c.Seed)
	}
	return entropy.System()
}

// Logger returns the diagnostic sink writing to w, or a silent one when
// -quiet is set.
func (c *Config) Logger(w io.Writer) *log.Logger {
	if c.Quiet {
		w = io.Discard
	}
	return log.New(w, "lifeboard: ", log.LstdFlags|log.Lmicroseconds)
}
