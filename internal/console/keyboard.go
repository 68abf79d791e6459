package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/term"

	"lifeboard/internal/board"
)

// Keyboard maps key presses onto the two board buttons. Terminals report key
// presses rather than levels, so each press asserts its button for exactly
// one sample.
type Keyboard struct {
	in    *os.File
	state *term.State

	a, b atomic.Bool
	quit chan struct{}
	once sync.Once

	mu  sync.Mutex
	err error
}

// OpenKeyboard starts reading keys from in, switching it to raw mode when it
// is a terminal. Close restores the terminal.
func OpenKeyboard(in *os.File) (*Keyboard, error) {
	k := &Keyboard{in: in, quit: make(chan struct{})}
	if fd := int(in.Fd()); term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("console: raw mode: %w", err)
		}
		k.state = state
	}
	go k.feed(in)
	return k, nil
}

func newKeyboard() *Keyboard {
	return &Keyboard{quit: make(chan struct{})}
}

// ButtonA is asserted by 'a'.
func (k *Keyboard) ButtonA() board.Button { return keyButton{k: k, latch: &k.a} }

// ButtonB is asserted by 'b'.
func (k *Keyboard) ButtonB() board.Button { return keyButton{k: k, latch: &k.b} }

// Quit is closed once 'q', Ctrl-C or Ctrl-D is read.
func (k *Keyboard) Quit() <-chan struct{} { return k.quit }

// Close restores the terminal mode.
func (k *Keyboard) Close() error {
	if k.state == nil {
		return nil
	}
	return term.Restore(int(k.in.Fd()), k.state)
}

func (k *Keyboard) feed(r io.Reader) {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, c := range buf[:n] {
			switch c {
			case 'a', 'A':
				k.a.Store(true)
			case 'b', 'B':
				k.b.Store(true)
			case 'q', 'Q', 0x03, 0x04:
				k.once.Do(func() { close(k.quit) })
			}
		}
		if errors.Is(err, io.EOF) {
			// Input closed: the buttons simply stay released.
			return
		}
		if err != nil {
			k.mu.Lock()
			k.err = fmt.Errorf("console: read keys: %w", err)
			k.mu.Unlock()
			return
		}
	}
}

func (k *Keyboard) readErr() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.err
}

type keyButton struct {
	k     *Keyboard
	latch *atomic.Bool
}

func (b keyButton) Pressed() (bool, error) {
	if err := b.k.readErr(); err != nil {
		return false, err
	}
	return b.latch.Swap(false), nil
}
