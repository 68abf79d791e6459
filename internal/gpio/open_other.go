//go:build !linux

package gpio

// Open always fails off Linux.
func Open(Config) (*Buttons, error) {
	return nil, ErrUnsupported
}
