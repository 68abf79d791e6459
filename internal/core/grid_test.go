package core

import (
	"slices"
	"testing"
)

type alternating struct{ next bool }

func (a *alternating) Bool() bool {
	a.next = !a.next
	return a.next
}

func TestEmptyDetection(t *testing.T) {
	var g Grid
	if !g.IsEmpty() {
		t.Fatal("zero grid must be empty")
	}
	g[4][4] = 1
	if g.IsEmpty() {
		t.Fatal("grid with a live corner reported empty")
	}
	g.Clear()
	if !g.IsEmpty() || g != Empty {
		t.Fatal("Clear must restore the empty grid")
	}
}

func TestInvertTwiceRestores(t *testing.T) {
	g := FromRows(".....", "..#..", "...#.", ".###.", ".....")
	orig := g
	g.Invert()
	if got, want := g.Alive(), Size*Size-5; got != want {
		t.Fatalf("inverted alive=%d, want %d", got, want)
	}
	for row := range g {
		for col := range g[row] {
			if g[row][col] != 1-orig[row][col] {
				t.Fatalf("cell (%d,%d)=%d after invert, original %d", row, col, g[row][col], orig[row][col])
			}
		}
	}
	g.Invert()
	if g != orig {
		t.Fatalf("double invert changed grid:\n%s\nwant\n%s", g, orig)
	}
}

func TestInvertEmptyFillsBoard(t *testing.T) {
	g := Empty
	g.Invert()
	if g.Alive() != Size*Size {
		t.Fatalf("inverted empty grid has %d live cells", g.Alive())
	}
}

func TestRandomizeOverwritesEveryCell(t *testing.T) {
	g := FromRows("#####", "#####", "#####", "#####", "#####")
	g.Randomize(&alternating{})
	for row := range g {
		for col := range g[row] {
			want := uint8(0)
			if (row*Size+col)%2 == 0 {
				want = 1
			}
			if g[row][col] != want {
				t.Fatalf("cell (%d,%d)=%d, want %d", row, col, g[row][col], want)
			}
		}
	}
}

func TestAliveCellsAndFlatten(t *testing.T) {
	g := FromRows("#....", ".....", ".....", ".....", "....#")
	want := []Cell{{Row: 0, Col: 0}, {Row: 4, Col: 4}}
	if got := g.AliveCells(); !slices.Equal(got, want) {
		t.Fatalf("AliveCells=%v, want %v", got, want)
	}
	cells := g.Cells()
	if len(cells) != Size*Size {
		t.Fatalf("Cells len=%d", len(cells))
	}
	if cells[0] != 1 || cells[len(cells)-1] != 1 || cells[1] != 0 {
		t.Fatalf("unexpected flattened layout %v", cells)
	}
}

func TestInBounds(t *testing.T) {
	cases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{4, 4, true},
		{-1, 0, false},
		{0, 5, false},
		{5, 2, false},
		{2, -1, false},
	}
	for _, tc := range cases {
		if got := InBounds(tc.row, tc.col); got != tc.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestStringRendering(t *testing.T) {
	g := FromRows("#", "", "", "", "....#")
	want := "#....\n.....\n.....\n.....\n....#"
	if got := g.String(); got != want {
		t.Fatalf("String()=\n%s\nwant\n%s", got, want)
	}
}
