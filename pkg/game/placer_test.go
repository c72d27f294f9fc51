package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceInvariants(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		p := NewPlacer(rand.NewSource(seed))
		var g Grid
		require.NoErrorf(t, p.Place(&g), "seed %d", seed)
		checkLayout(t, &g, seed)
	}
}

func checkLayout(t *testing.T, g *Grid, seed int64) {
	occupied := 0
	for i, c := range g {
		require.NotEqualf(t, CellReserved, c, "seed %d: buffer marker left at %d", seed, i)
		if c != CellEmpty {
			occupied++
		}
	}
	require.Equalf(t, SegmentCount, occupied, "seed %d: occupied cells", seed)

	// Every 8-connected group of occupied cells must be one straight
	// ship of its own length; touching ships would merge groups.
	var seen [Cells]bool
	counts := map[int]int{}
	for i := range g {
		if g[i] == CellEmpty || seen[i] {
			continue
		}
		cells := collectShip(g, &seen, i)
		size := int(g[i])
		require.Lenf(t, cells, size, "seed %d: ship at %d", seed, i)
		for _, j := range cells {
			require.Equalf(t, byte(size), g[j], "seed %d: mixed ship at %d", seed, i)
		}
		require.Truef(t, isStraight(cells, size), "seed %d: ship at %d not straight", seed, i)
		counts[size]++
	}
	require.Equalf(t, map[int]int{5: 1, 4: 2, 3: 3, 2: 4}, counts, "seed %d: fleet", seed)

	cs := FieldChecksums(g)
	for x := 0; x < Rows; x++ {
		n := uint8(0)
		for y := 0; y < Cols; y++ {
			if g.At(x, y) != CellEmpty {
				n++
			}
		}
		require.Equalf(t, n, cs[x], "seed %d: checksum row %d", seed, x)
	}
}

func collectShip(g *Grid, seen *[Cells]bool, start int) (cells []int) {
	stack := []int{start}
	seen[start] = true
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells = append(cells, i)
		x, y := i/Cols, i%Cols
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				nx, ny := x+dx, y+dy
				if !InBounds(nx, ny) {
					continue
				}
				j := nx*Cols + ny
				if !seen[j] && g[j] != CellEmpty {
					seen[j] = true
					stack = append(stack, j)
				}
			}
		}
	}
	return
}

func isStraight(cells []int, size int) bool {
	minX, maxX := Rows, -1
	minY, maxY := Cols, -1
	for _, i := range cells {
		x, y := i/Cols, i%Cols
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	if minX == maxX {
		return maxY-minY == size-1
	}
	if minY == maxY {
		return maxX-minX == size-1
	}
	return false
}

func TestPlaceResetsPreviousLayout(t *testing.T) {
	p := NewPlacer(rand.NewSource(42))
	var g Grid
	require.NoError(t, p.Place(&g))
	first := g
	require.NoError(t, p.Place(&g))
	checkLayout(t, &g, 42)
	// A second placement with the same generator should not leak cells
	// of the first one; equality of layouts is astronomically unlikely.
	require.NotEqual(t, first, g)
}
