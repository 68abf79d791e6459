package core

import "sort"

var patterns = map[string]Grid{}

// Register adds a starting pattern under the provided name.
func Register(name string, g Grid) {
	if name == "" {
		return
	}
	patterns[name] = g
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Grid, bool) {
	g, ok := patterns[name]
	return g, ok
}

// Patterns lists the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("empty", Empty)
	Register("glider", FromRows(
		".....",
		"..#..",
		"...#.",
		".###.",
		".....",
	))
	Register("blinker", FromRows(
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	))
	Register("block", FromRows(
		".....",
		".##..",
		".##..",
		".....",
		".....",
	))
}
