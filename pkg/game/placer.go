package game

import (
	"errors"
	"math/rand"
	"time"
)

// fleet is the ship set in descending length: the big ships need the
// long runs, so they go first.
var fleet = [...]int{5, 4, 4, 3, 3, 3, 2, 2, 2, 2}

// SegmentCount is the number of ship segments in a complete layout.
const SegmentCount = 30

// MaxPlaceAttempts bounds whole-layout retries when some ship cannot be
// placed.
const MaxPlaceAttempts = 100

// ErrPlacement indicates no valid layout was found within
// MaxPlaceAttempts.
var ErrPlacement = errors.New("no valid ship placement found")

// Placer generates randomized ship layouts.
type Placer struct {
	rnd *rand.Rand
}

// NewPlacer creates a placer. A nil source is seeded from the clock.
func NewPlacer(src rand.Source) *Placer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Placer{rnd: rand.New(src)}
}

// Place fills g with a fresh layout: for each ship the 10 line indices
// are shuffled and both orientations tried; the ship lands at a
// uniformly random offset inside the longest empty run of the first
// line that fits it. A one-cell buffer, diagonals included, is kept
// around every ship so no two ships touch. If some ship cannot be
// placed the whole layout is retried from blank; after
// MaxPlaceAttempts the grid is left empty and ErrPlacement returned.
func (p *Placer) Place(g *Grid) error {
	for attempt := 0; attempt < MaxPlaceAttempts; attempt++ {
		g.Reset()
		if p.tryLayout(g) {
			clearReserved(g)
			return nil
		}
	}
	g.Reset()
	return ErrPlacement
}

func (p *Placer) tryLayout(g *Grid) bool {
	for _, size := range fleet {
		if !p.placeShip(g, size) {
			return false
		}
	}
	return true
}

func (p *Placer) placeShip(g *Grid, size int) bool {
	var lines [Rows]int
	for i := range lines {
		lines[i] = i
	}
	// Fisher-Yates
	for i := Rows - 1; i > 0; i-- {
		j := p.rnd.Intn(i + 1)
		lines[i], lines[j] = lines[j], lines[i]
	}
	horizFirst := p.rnd.Intn(2) == 0
	for _, line := range lines {
		for o := 0; o < 2; o++ {
			horiz := horizFirst == (o == 0)
			start, run := longestRun(g, line, horiz)
			if run < size {
				continue
			}
			offset := start + p.rnd.Intn(run-size+1)
			placeAt(g, line, offset, size, horiz)
			return true
		}
	}
	return false
}

// longestRun scans row line (horizontal) or column line (vertical) for
// the longest contiguous stretch of empty cells.
func longestRun(g *Grid, line int, horiz bool) (start, length int) {
	run, runStart := 0, 0
	for i := 0; i < Cols; i++ {
		var c byte
		if horiz {
			c = g.At(line, i)
		} else {
			c = g.At(i, line)
		}
		if c == CellEmpty {
			if run == 0 {
				runStart = i
			}
			run++
			if run > length {
				start, length = runStart, run
			}
		} else {
			run = 0
		}
	}
	return
}

func placeAt(g *Grid, line, offset, size int, horiz bool) {
	for i := 0; i < size; i++ {
		x, y := line, offset+i
		if !horiz {
			x, y = y, x
		}
		g.Set(x, y, byte(size))
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				nx, ny := x+dx, y+dy
				if InBounds(nx, ny) && g.At(nx, ny) == CellEmpty {
					g.Set(nx, ny, CellReserved)
				}
			}
		}
	}
}

func clearReserved(g *Grid) {
	for i, c := range g {
		if c == CellReserved {
			g[i] = CellEmpty
		}
	}
}
