package grid

import "testing"

func TestNew_AllDefault(t *testing.T) {
	g := New()
	g.ForEachCell(func(row, col int, c Cell) {
		if c != DefaultCell {
			t.Fatalf("cell (%d,%d) = %+v, want DefaultCell", row, col, c)
		}
	})
}

func TestTransparentDistinctFromBlack(t *testing.T) {
	if Transparent == Opaque(Black) {
		t.Error("Transparent == Opaque(Black), want distinct sentinel")
	}
	if !Transparent.IsTransparent() {
		t.Error("Transparent.IsTransparent() = false, want true")
	}
	if Opaque(Black).IsTransparent() {
		t.Error("Opaque(Black).IsTransparent() = true, want false")
	}
}

func TestGetSet_OutOfBounds(t *testing.T) {
	g := New()
	cases := []struct{ row, col int }{
		{-1, 0}, {0, -1}, {Height, 0}, {0, Width},
	}
	for _, tc := range cases {
		if g.Set(tc.row, tc.col, BlankCell) {
			t.Errorf("Set(%d,%d) = true, want false", tc.row, tc.col)
		}
		if _, ok := g.Get(tc.row, tc.col); ok {
			t.Errorf("Get(%d,%d) ok = true, want false", tc.row, tc.col)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	cp := g.Clone()
	cp.Set(3, 4, NewCell('x', White, Opaque(Black)))

	if g.Equal(cp) {
		t.Error("mutating clone changed equality with original")
	}
	if g.At(3, 4) != DefaultCell {
		t.Errorf("original (3,4) = %+v, want DefaultCell", g.At(3, 4))
	}
}

func TestNewClear_Holes(t *testing.T) {
	g := NewClear()
	if !g.At(0, 0).IsHole() {
		t.Error("NewClear cell is not a hole")
	}
	if BlankCell.IsHole() {
		t.Error("BlankCell.IsHole() = true, want false")
	}
}

func TestRect(t *testing.T) {
	cases := []struct {
		name  string
		r     Rect
		w, h  int
		empty bool
	}{
		{"single row", Rect{0, 0, 0, 9}, 10, 1, false},
		{"full", Full, Width, Height, false},
		{"inverted cols", Rect{0, 5, 2, 4}, 0, 3, true},
		{"inverted rows", Rect{3, 0, 2, 4}, 5, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Width(); got != tc.w {
				t.Errorf("Width() = %d, want %d", got, tc.w)
			}
			if got := tc.r.Height(); got != tc.h {
				t.Errorf("Height() = %d, want %d", got, tc.h)
			}
			if got := tc.r.Empty(); got != tc.empty {
				t.Errorf("Empty() = %v, want %v", got, tc.empty)
			}
		})
	}
}

func TestRectWithin(t *testing.T) {
	cases := []struct {
		name string
		r    Rect
		want bool
	}{
		{"full", Full, true},
		{"inside", Rect{2, 3, 4, 5}, true},
		{"past last column", Rect{0, 70, 0, Width}, false},
		{"past last row", Rect{0, 0, Height, 9}, false},
		{"negative row", Rect{-1, 0, 0, 9}, false},
		{"empty off grid", Rect{3, 90, 2, 95}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Within(Full); got != tc.want {
				t.Errorf("Within(Full) = %v, want %v", got, tc.want)
			}
		})
	}
}
