// Package console runs the board in a terminal: the matrix is drawn with ANSI
// escapes and the keyboard stands in for the two buttons.
package console

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"lifeboard/internal/core"
	"lifeboard/internal/render"
)

const (
	clearHome = "\x1b[H\x1b[2J"
	ledOn     = "\x1b[31m██\x1b[0m"
	ledOff    = "\x1b[90m··\x1b[0m"
)

// Display prints each frame and then holds the caller for the rest of the
// frame period.
type Display struct {
	w      io.Writer
	ansi   bool
	pacer  *core.Pacer
	footer func() string
}

// NewDisplay writes frames to f, using ANSI colour and cursor control when f
// is a terminal.
func NewDisplay(f *os.File) *Display {
	return newDisplay(f, term.IsTerminal(int(f.Fd())), core.NewPacer())
}

func newDisplay(w io.Writer, ansi bool, pacer *core.Pacer) *Display {
	return &Display{w: w, ansi: ansi, pacer: pacer}
}

// SetFooter installs a callback whose text is printed under every frame.
func (d *Display) SetFooter(footer func() string) { d.footer = footer }

// Show draws g and blocks until the frame period has elapsed.
func (d *Display) Show(g core.Grid, frame time.Duration) error {
	var out string
	if d.ansi {
		// Raw mode disables output post-processing, so rows need an
		// explicit carriage return.
		out = clearHome + render.Text(g, ledOn, ledOff, "\r\n") + "\r\n"
	} else {
		out = render.Text(g, "#", ".", "\n") + "\n\n"
	}
	if d.footer != nil {
		out += d.footer()
		if d.ansi {
			out += "\r\n"
		} else {
			out += "\n"
		}
	}
	if _, err := io.WriteString(d.w, out); err != nil {
		return fmt.Errorf("console: write frame: %w", err)
	}
	d.pacer.Wait(frame)
	return nil
}
