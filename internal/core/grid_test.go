package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows, cols int, m Margins) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols, m)
	require.NoError(t, err)
	return g
}

func uniformMargins(n int) Margins {
	return Margins{North: n, East: n, South: n, West: n}
}

func TestNewGridValidation(t *testing.T) {
	// Any margin below 1 is unusable.
	_, err := NewGrid(10, 10, Margins{North: 0, East: 1, South: 1, West: 1})
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewGrid(10, 10, Margins{North: 1, East: 1, South: 1, West: -2})
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	// Each dimension must hold its two opposing margins.
	_, err = NewGrid(3, 10, Margins{North: 2, East: 1, South: 2, West: 1})
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewGrid(10, 5, Margins{North: 1, East: 3, South: 1, West: 3})
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	g := mustGrid(t, 4, 6, uniformMargins(1))
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 6, g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			assert.False(t, g.Alive(r, c))
		}
	}
}

func TestCellOutOfBoundsIsDead(t *testing.T) {
	g := mustGrid(t, 5, 5, uniformMargins(1))
	g.Apply([]Point{{Row: 2, Col: 2, Alive: true}}, false)

	// Out-of-bounds lookups are always dead, however far out.
	coords := [][2]int{
		{-1, 0}, {0, -1}, {5, 0}, {0, 5},
		{-100, 2}, {2, -100}, {1000000, 2}, {2, 1000000},
		{-1, -1}, {5, 5},
	}
	for _, rc := range coords {
		assert.False(t, g.Alive(rc[0], rc[1]), "coords (%d,%d)", rc[0], rc[1])
		assert.Equal(t, Cell{}, g.Cell(rc[0], rc[1]))
	}
	assert.True(t, g.Alive(2, 2))
}

func TestRowNeighbors(t *testing.T) {
	g := mustGrid(t, 3, 3, uniformMargins(1))
	g.Apply([]Point{{Row: 1, Col: 1, Alive: true}}, false)
	require.Equal(t, Size{Rows: 3, Cols: 3}, g.Size())

	// Every neighbor of the center sees count 1, the center itself 0.
	assert.Equal(t, []int{1, 1, 1}, g.RowNeighbors(0))
	assert.Equal(t, []int{1, 0, 1}, g.RowNeighbors(1))
	assert.Equal(t, []int{1, 1, 1}, g.RowNeighbors(2))
}

func TestRowNeighborsDiagonals(t *testing.T) {
	g := mustGrid(t, 5, 5, uniformMargins(1))
	g.Apply([]Point{
		{Row: 1, Col: 1, Alive: true},
		{Row: 3, Col: 3, Alive: true},
	}, false)

	// (2,2) touches both live cells only diagonally.
	assert.Equal(t, 2, g.RowNeighbors(2)[2])
}

func TestApplyGrowsAtEdges(t *testing.T) {
	g := mustGrid(t, 5, 5, uniformMargins(1))
	g.Apply([]Point{{Row: 0, Col: 0, Alive: true}}, false)

	// A live corner cell forces one new row north and one new column west;
	// the excess south/east margin stays because trimNow is false.
	assert.Equal(t, Size{Rows: 6, Cols: 6}, g.Size())
	assert.True(t, g.Alive(1, 1))
}

func TestApplyGrowthNeverDeferred(t *testing.T) {
	g := mustGrid(t, 5, 5, uniformMargins(2))
	g.Apply([]Point{{Row: 4, Col: 4, Alive: true}}, false)

	// Two rows south and two columns east are needed; growth happens even
	// though nothing may be trimmed.
	assert.Equal(t, Size{Rows: 7, Cols: 7}, g.Size())
	assert.True(t, g.Alive(4, 4))
	// The live cell must never sit on the literal board edge.
	assert.Equal(t, 2, g.Rows()-1-4)
}

func TestApplyTrimDeferredThenTaken(t *testing.T) {
	g := mustGrid(t, 9, 9, uniformMargins(1))
	g.Apply([]Point{{Row: 4, Col: 4, Alive: true}}, false)
	// Excess margin persists while trims are deferred.
	assert.Equal(t, Size{Rows: 9, Cols: 9}, g.Size())

	g.Apply(nil, true)
	// Trimming leaves exactly the configured margin on every side.
	assert.Equal(t, Size{Rows: 3, Cols: 3}, g.Size())
	assert.True(t, g.Alive(1, 1))
}

func TestApplyAllDeadBoardIsStable(t *testing.T) {
	g := mustGrid(t, 4, 6, uniformMargins(1))
	g.Apply(nil, false)
	assert.Equal(t, Size{Rows: 4, Cols: 6}, g.Size())
	g.Apply(nil, true)
	assert.Equal(t, Size{Rows: 4, Cols: 6}, g.Size())

	// Killing the only live cell must not shrink the board either.
	g.Apply([]Point{{Row: 2, Col: 2, Alive: true}}, false)
	g.Apply([]Point{{Row: 2, Col: 2, Alive: false}}, true)
	assert.Equal(t, Size{Rows: 4, Cols: 6}, g.Size())
}

func TestApplyAsymmetricMargins(t *testing.T) {
	m := Margins{North: 2, East: 3, South: 2, West: 3}
	g := mustGrid(t, 25, 25, m)
	g.Apply([]Point{
		{Row: 12, Col: 12, Alive: true},
		{Row: 12, Col: 13, Alive: true},
		{Row: 13, Col: 12, Alive: true},
		{Row: 13, Col: 13, Alive: true},
	}, true)

	// Trim reduces the board to the live block plus exact margins.
	assert.Equal(t, Size{Rows: 6, Cols: 8}, g.Size())
	assert.True(t, g.Alive(2, 3))
	assert.True(t, g.Alive(3, 4))
}
