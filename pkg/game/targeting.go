package game

// hunterOffsets is the fixed probe order around a hit: right, left,
// down, up.
var hunterOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Targeting selects the next cell to attack. After a confirmed hit it
// hunts the orthogonal neighbors of the hit; otherwise it searches the
// row the exchanged checksum reports as fullest, restricted to one
// color of a checkerboard coloring since no ship is shorter than 2.
type Targeting struct {
	hunting          bool
	anchorX, anchorY int
	lastX, lastY     int
}

// Hunting reports whether hunter mode is armed.
func (t *Targeting) Hunting() bool {
	return t.hunting
}

// LastShot returns the coordinate of the last own shot.
func (t *Targeting) LastShot() (x, y int) {
	return t.lastX, t.lastY
}

// Next picks the next shot, given the record of own shots and the
// opponent's checksum row, and records it as the last own shot. The
// checksum counts are never decremented as hits land; the row choice is
// a static heuristic.
func (t *Targeting) Next(shots *Grid, sums Checksums) (x, y int) {
	if t.hunting {
		var ok bool
		if x, y, ok = t.huntNext(shots); !ok {
			t.hunting = false
			x, y = searchNext(shots, sums)
		}
	} else {
		x, y = searchNext(shots, sums)
	}
	t.lastX, t.lastY = x, y
	return
}

// Record stores the outcome of the last own shot and arms hunter mode
// anchored there on a hit.
func (t *Targeting) Record(shots *Grid, hit bool) {
	if hit {
		shots.Set(t.lastX, t.lastY, ShotHit)
		t.hunting = true
		t.anchorX, t.anchorY = t.lastX, t.lastY
	} else {
		shots.Set(t.lastX, t.lastY, ShotMiss)
	}
}

func (t *Targeting) huntNext(shots *Grid) (x, y int, ok bool) {
	for _, d := range hunterOffsets {
		x, y = t.anchorX+d[0], t.anchorY+d[1]
		if InBounds(x, y) && shots.At(x, y) == ShotNone {
			return x, y, true
		}
	}
	return 0, 0, false
}

func searchNext(shots *Grid, sums Checksums) (int, int) {
	best := 0
	for x := 1; x < Rows; x++ {
		if sums[x] > sums[best] {
			best = x
		}
	}
	for y := 0; y < Cols; y++ {
		if (best+y)%2 == 0 && shots.At(best, y) == ShotNone {
			return best, y
		}
	}
	// The preferred row is exhausted; take the first untried cell.
	for i, c := range shots {
		if c == ShotNone {
			return i / Cols, i % Cols
		}
	}
	return 0, 0
}
