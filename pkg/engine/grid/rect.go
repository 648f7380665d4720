package grid

// Rect is an inclusive rectangle of grid positions: rows R0..R1 and
// columns C0..C1. A rectangle with R1 < R0 or C1 < C0 is empty.
type Rect struct {
	R0 int `json:"r0"`
	C0 int `json:"c0"`
	R1 int `json:"r1"`
	C1 int `json:"c1"`
}

// Width returns the number of columns, never negative.
func (r Rect) Width() int {
	if r.C1 < r.C0 {
		return 0
	}
	return r.C1 - r.C0 + 1
}

// Height returns the number of rows, never negative.
func (r Rect) Height() int {
	if r.R1 < r.R0 {
		return 0
	}
	return r.R1 - r.R0 + 1
}

// Empty returns true if the rectangle covers no positions.
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains checks if a position lies inside the rectangle
func (r Rect) Contains(row, col int) bool {
	return row >= r.R0 && row <= r.R1 && col >= r.C0 && col <= r.C1
}

// Within reports whether every position of r lies inside o. An empty
// rectangle is within anything.
func (r Rect) Within(o Rect) bool {
	if r.Empty() {
		return true
	}
	return r.R0 >= o.R0 && r.C0 >= o.C0 && r.R1 <= o.R1 && r.C1 <= o.C1
}

// Full is the rectangle covering the whole grid.
var Full = Rect{R0: 0, C0: 0, R1: Height - 1, C1: Width - 1}
