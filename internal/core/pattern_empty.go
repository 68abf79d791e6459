//go:build emptyseed

package core

// DefaultPattern is the board shown at power-on.
const DefaultPattern = "empty"
