//go:build !emptyseed

package core

// DefaultPattern is the board shown at power-on. Build with the emptyseed
// tag to start blank instead.
const DefaultPattern = "glider"
