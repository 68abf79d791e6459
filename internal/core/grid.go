package core

// Size is the edge length of the LED matrix.
const Size = 5

// Grid stores the 5x5 board as 0/1 cell values indexed [row][col].
type Grid [Size][Size]uint8

// Empty is the all-dead board.
var Empty Grid

// Cell addresses a single position on the board.
type Cell struct {
	Row, Col int
}

// InBounds reports whether (row, col) lies on the board. There is no
// wraparound: anything outside [0, Size) does not exist.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsEmpty reports whether every cell is dead.
func (g *Grid) IsEmpty() bool { return *g == Empty }

// Alive counts live cells.
func (g *Grid) Alive() int {
	n := 0
	for row := range g {
		for col := range g[row] {
			n += int(g[row][col])
		}
	}
	return n
}

// AliveCells lists the live cells in row-major order.
func (g *Grid) AliveCells() []Cell {
	cells := make([]Cell, 0, Size*Size)
	for row := range g {
		for col := range g[row] {
			if g[row][col] == 1 {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Invert photo-negates the board in place.
func (g *Grid) Invert() {
	for row := range g {
		for col := range g[row] {
			g[row][col] ^= 1
		}
	}
}

// Randomize overwrites every cell with an independent coin flip.
func (g *Grid) Randomize(rng interface{ Bool() bool }) {
	for row := range g {
		for col := range g[row] {
			if rng.Bool() {
				g[row][col] = 1
			} else {
				g[row][col] = 0
			}
		}
	}
}

// Clear kills every cell.
func (g *Grid) Clear() { *g = Empty }

// Cells flattens the board into a row-major slice, the layout the pixel
// helpers expect.
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, 0, Size*Size)
	for row := range g {
		out = append(out, g[row][:]...)
	}
	return out
}

// FromRows builds a grid from row strings where '1', '#', '*' or 'O' mark a
// live cell. Missing rows and columns stay dead; extra ones are ignored.
func FromRows(rows ...string) Grid {
	var g Grid
	for row := 0; row < Size && row < len(rows); row++ {
		for col := 0; col < Size && col < len(rows[row]); col++ {
			switch rows[row][col] {
			case '1', '#', '*', 'O':
				g[row][col] = 1
			}
		}
	}
	return g
}

// String renders the grid as five lines of '#' and '.'.
func (g Grid) String() string {
	buf := make([]byte, 0, Size*(Size+1))
	for row := range g {
		for col := range g[row] {
			if g[row][col] == 1 {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		if row < Size-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
