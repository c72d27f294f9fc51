package game

// Checksums holds the per-row occupancy counts exchanged at handshake
// time. They allow post-game field verification without revealing ship
// positions early.
type Checksums [Rows]uint8

// FieldChecksums counts the occupied cells per row of an own field.
func FieldChecksums(g *Grid) (cs Checksums) {
	for x := 0; x < Rows; x++ {
		var n uint8
		for y := 0; y < Cols; y++ {
			if g.At(x, y) != CellEmpty {
				n++
			}
		}
		cs[x] = n
	}
	return
}

// MirrorChecksums counts the occupied cells per row of the received
// opponent mirror, whose cells hold raw field characters. Cells never
// filled in count as empty.
func MirrorChecksums(g *Grid) (cs Checksums) {
	for x := 0; x < Rows; x++ {
		var n uint8
		for y := 0; y < Cols; y++ {
			if c := g.At(x, y); c != 0 && c != '0' {
				n++
			}
		}
		cs[x] = n
	}
	return
}

// Equal compares all rows.
func (cs Checksums) Equal(other Checksums) bool {
	return cs == other
}
