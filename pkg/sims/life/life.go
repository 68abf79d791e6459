package life

import (
	"lifeboard/internal/core"
)

// Life implements Conway's Game of Life on the bounded 5x5 board. Cells
// past the edge do not exist, so corners see at most three neighbours and
// edges at most five.
type Life struct {
	cur, nxt   *core.Grid
	a, b       core.Grid
	generation uint64
}

// New returns a Life simulation seeded with the provided board.
func New(seed core.Grid) *Life {
	l := &Life{}
	l.a = seed
	l.cur, l.nxt = &l.a, &l.b
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Grid exposes the current board so the caller can mutate it between steps.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation reports how many times Step has run.
func (l *Life) Generation() uint64 { return l.generation }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Next(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Next writes the generation following src into dst. dst and src must be
// different grids; every cell of dst is overwritten.
func Next(dst, src *core.Grid) {
	if dst == src {
		panic("life: Next called with aliased grids")
	}
	for row := 0; row < core.Size; row++ {
		for col := 0; col < core.Size; col++ {
			neighbors := LiveNeighbors(src, row, col)
			alive := src[row][col] == 1
			dst[row][col] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				dst[row][col] = 1
			}
		}
	}
}

// LiveNeighbors counts live cells among the in-bounds neighbours of
// (row, col).
func LiveNeighbors(g *core.Grid, row, col int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny, nx := row+dy, col+dx
			if !core.InBounds(ny, nx) {
				continue
			}
			neighbors += int(g[ny][nx])
		}
	}
	return neighbors
}

// Neighbors returns how many in-bounds neighbour positions (row, col) has,
// regardless of their state.
func Neighbors(row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && core.InBounds(row+dy, col+dx) {
				n++
			}
		}
	}
	return n
}
