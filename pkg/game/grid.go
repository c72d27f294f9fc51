package game

// Grid dimensions.
const (
	Rows  = 10
	Cols  = 10
	Cells = Rows * Cols
)

// Own-field cell values. Empty is open water, ship segments carry their
// ship length. CellReserved marks the one-cell buffer kept around a ship
// while placing; no finished layout contains it.
const (
	CellEmpty    byte = 0
	CellReserved byte = 1
)

// Shot markers, shared by both shot-tracking grids.
const (
	ShotNone byte = 0
	ShotHit  byte = 'H'
	ShotMiss byte = 'M'
)

// Grid is a 10x10 row-major field. (x, y) addresses row x, column y.
type Grid [Cells]byte

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) byte {
	return g[x*Cols+y]
}

// Set stores v at (x, y).
func (g *Grid) Set(x, y int, v byte) {
	g[x*Cols+y] = v
}

// Reset clears all cells.
func (g *Grid) Reset() {
	*g = Grid{}
}

// RowChars renders row x as the 10 field characters of the wire format,
// one digit per cell.
func (g *Grid) RowChars(x int) (chars [Cols]byte) {
	for y := 0; y < Cols; y++ {
		chars[y] = '0' + g.At(x, y)
	}
	return
}

// InBounds reports whether (x, y) addresses a cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < Rows && y >= 0 && y < Cols
}
