package grid

// Screen dimensions. Every grid has exactly this size for its whole life.
const (
	Width  = 80
	Height = 25
)

// Grid represents one full screen of cells with encapsulated storage.
// Grids are plain values: == compares every cell.
type Grid struct {
	cells [Height * Width]Cell
}

// New creates a grid filled with DefaultCell.
func New() *Grid {
	return Filled(DefaultCell)
}

// NewTransparent creates a grid of BlankCell, used as the base of drawn
// layer frames so unspecified positions show the layers beneath.
func NewTransparent() *Grid {
	return Filled(BlankCell)
}

// NewClear creates a grid where no position has been painted yet.
func NewClear() *Grid {
	return Filled(holeCell)
}

// Filled creates a grid with every position set to c.
func Filled(c Cell) *Grid {
	g := &Grid{}
	for i := range g.cells {
		g.cells[i] = c
	}
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return Height
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return Width
}

// IsValidPosition checks if a row/col position is within grid bounds
func IsValidPosition(row, col int) bool {
	return row >= 0 && row < Height && col >= 0 && col < Width
}

// Get returns the cell at the given position. ok is false when the
// position is out of bounds.
func (g *Grid) Get(row, col int) (c Cell, ok bool) {
	if !IsValidPosition(row, col) {
		return Cell{}, false
	}
	return g.cells[row*Width+col], true
}

// At returns the cell at the given position, or DefaultCell if out of bounds.
func (g *Grid) At(row, col int) Cell {
	c, ok := g.Get(row, col)
	if !ok {
		return DefaultCell
	}
	return c
}

// Set stores c at the given position. Returns false if out of bounds.
func (g *Grid) Set(row, col int, c Cell) bool {
	if !IsValidPosition(row, col) {
		return false
	}
	g.cells[row*Width+col] = c
	return true
}

// Fill sets every position to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := *g
	return &cp
}

// Equal reports whether both grids hold identical cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.cells == other.cells
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell Cell)) {
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			fn(row, col, g.cells[row*Width+col])
		}
	}
}

// Row returns a copy of the cells in a row, or nil if out of bounds.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= Height {
		return nil
	}
	out := make([]Cell, Width)
	copy(out, g.cells[row*Width:(row+1)*Width])
	return out
}
