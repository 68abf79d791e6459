// Package entropy provides seed sources for hosts without a hardware RNG
// peripheral.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	pkgcore "lifeboard/pkg/core"
)

// Reader draws 64-bit words from an io.Reader, by default the operating
// system's CSPRNG.
type Reader struct {
	r io.Reader
}

// System returns a source backed by crypto/rand.
func System() *Reader { return &Reader{r: rand.Reader} }

// FromReader wraps an arbitrary byte stream.
func FromReader(r io.Reader) *Reader { return &Reader{r: r} }

// Uint64 reads eight bytes and returns them as a little-endian word.
func (s *Reader) Uint64() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		return 0, fmt.Errorf("entropy: read: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Fixed replays a deterministic stream derived from a single seed so a run
// can be reproduced exactly.
type Fixed struct {
	rng *pkgcore.RNG
}

// NewFixed returns a deterministic source for seed.
func NewFixed(seed int64) *Fixed {
	return &Fixed{rng: pkgcore.NewRNG(seed)}
}

// Uint64 never fails.
func (f *Fixed) Uint64() (uint64, error) { return f.rng.Uint64(), nil }
