package app

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"lifeboard/internal/board"
	"lifeboard/internal/console"
	"lifeboard/internal/gpio"
)

// RunConsole drives the board in the terminal until the user quits or a
// frame fails. The keyboard always provides quit; with the gpio backend the
// buttons come from GPIO lines instead of keys.
func RunConsole(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	kb, err := console.OpenKeyboard(os.Stdin)
	if err != nil {
		return err
	}
	defer kb.Close()

	periph := board.Peripherals{
		ButtonA: kb.ButtonA(),
		ButtonB: kb.ButtonB(),
		Entropy: cfg.Entropy(),
	}
	if cfg.Backend == BackendGPIO {
		buttons, err := gpio.Open(cfg.GPIO)
		if err != nil {
			return err
		}
		defer buttons.Close()
		periph.ButtonA, periph.ButtonB = buttons.A, buttons.B
	}

	display := console.NewDisplay(os.Stdout)
	diag := &lastLine{}
	periph.Display = display
	periph.Log = cfg.Logger(diag)

	ctrl, err := board.New(cfg.Board(), periph)
	if err != nil {
		return err
	}
	display.SetFooter(func() string { return footer(ctrl, diag.String()) })

	errc := make(chan error, 1)
	go func() { errc <- ctrl.Run() }()
	select {
	case err := <-errc:
		return err
	case <-kb.Quit():
		return nil
	}
}

func footer(ctrl *board.Controller, diag string) string {
	status := ctrl.Status()
	parts := []string{}
	for _, key := range []string{"generation", "alive", "invert", "recovery"} {
		if p, ok := status.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf("%s %s", strings.ToLower(p.Label), p.Value))
		}
	}
	line := strings.Join(parts, "  ") + "  [a] random [b] invert [q] quit"
	if diag != "" {
		line += "  | " + diag
	}
	return line
}

// lastLine keeps only the most recent diagnostic so it can be shown under
// the matrix instead of scrolling the terminal.
type lastLine struct {
	mu   sync.Mutex
	line string
}

func (l *lastLine) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\r\n")
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	}
	l.mu.Lock()
	l.line = text
	l.mu.Unlock()
	return len(p), nil
}

func (l *lastLine) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line
}
