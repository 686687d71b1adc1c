package gridgraph_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid and FromLayout reject bad input.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		fn   func() error
		err  error
	}{
		{"ZeroWidth", func() error { _, err := gridgraph.NewGrid(0, 3); return err }, gridgraph.ErrEmptyGrid},
		{"NegativeHeight", func() error { _, err := gridgraph.NewGrid(3, -1); return err }, gridgraph.ErrEmptyGrid},
		{"ZeroCellSize", func() error {
			_, err := gridgraph.NewGrid(3, 3, gridgraph.WithCellSize(0))
			return err
		}, gridgraph.ErrBadCellSize},
		{"EmptyLayout", func() error { _, err := gridgraph.FromLayout(nil); return err }, gridgraph.ErrEmptyGrid},
		{"EmptyRow", func() error { _, err := gridgraph.FromLayout([]string{""}); return err }, gridgraph.ErrEmptyGrid},
		{"NonRectangular", func() error {
			_, err := gridgraph.FromLayout([]string{"...", ".."})
			return err
		}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			if !errors.Is(err, tc.err) {
				t.Errorf("error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNewGrid_AllWalkable checks defaults of a fresh grid.
func TestNewGrid_AllWalkable(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 1.0, g.CellSize())
	assert.Equal(t, gridgraph.Conn4, g.Connectivity())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c, ok := g.Cell(x, y)
			require.True(t, ok)
			assert.True(t, c.Walkable, "(%d,%d)", x, y)
			assert.Equal(t, gridgraph.Coord{X: x, Y: y}, c.Coord)
		}
	}
}

// TestFromLayout marks '#' as blocked and keeps rows top to bottom.
func TestFromLayout(t *testing.T) {
	g, err := gridgraph.FromLayout([]string{
		".#.",
		"S.#",
	}, gridgraph.WithConnectivity(gridgraph.Conn8))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, gridgraph.Conn8, g.Connectivity())
	assert.False(t, g.Walkable(gridgraph.Coord{X: 1, Y: 0}))
	assert.False(t, g.Walkable(gridgraph.Coord{X: 2, Y: 1}))
	assert.True(t, g.Walkable(gridgraph.Coord{X: 0, Y: 1}))
	assert.Equal(t, ".#.\n..#\n", g.String())
}

//----------------------------------------------------------------------------//
// Lookup and mutation
//----------------------------------------------------------------------------//

// TestCell_OutOfBounds checks that lookups outside the grid report absence.
func TestCell_OutOfBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 2)
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		_, ok := g.Cell(xy[0], xy[1])
		assert.True(t, ok, "Cell(%d,%d)", xy[0], xy[1])
		assert.True(t, g.InBounds(xy[0], xy[1]))
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		_, ok := g.Cell(xy[0], xy[1])
		assert.False(t, ok, "Cell(%d,%d)", xy[0], xy[1])
		assert.False(t, g.Walkable(gridgraph.Coord{X: xy[0], Y: xy[1]}))
	}
}

// TestSetWalkable toggles a cell and rejects foreign coordinates.
func TestSetWalkable(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)
	c := gridgraph.Coord{X: 1, Y: 2}

	require.NoError(t, g.SetWalkable(c, false))
	assert.False(t, g.Walkable(c))
	require.NoError(t, g.SetWalkable(c, true))
	assert.True(t, g.Walkable(c))

	err = g.SetWalkable(gridgraph.Coord{X: 3, Y: 0}, false)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestSnapshot_IsolatedFromLaterWrites verifies a snapshot does not observe
// mutations made after it was taken.
func TestSnapshot_IsolatedFromLaterWrites(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 2)
	require.NoError(t, err)

	snap := g.Snapshot()
	require.NoError(t, g.SetWalkable(gridgraph.Coord{X: 1, Y: 1}, false))

	assert.True(t, snap.Walkable(snap.Index(1, 1)))
	assert.False(t, g.Snapshot().Walkable(snap.Index(1, 1)))
	assert.Equal(t, gridgraph.Coord{X: 1, Y: 1}, snap.Coordinate(3))
	assert.Equal(t, 4, snap.Len())
}

// TestSetWalkable_Concurrent exercises the grid lock under the race detector.
func TestSetWalkable_Concurrent(t *testing.T) {
	g, err := gridgraph.NewGrid(16, 16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 256; i++ {
				c := gridgraph.Coord{X: i % 16, Y: (i/16 + w) % 16}
				_ = g.SetWalkable(c, i%2 == 0)
				_ = g.Snapshot()
				_ = g.Neighbors(c, gridgraph.Conn8)
			}
		}(w)
	}
	wg.Wait()
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func coords(cells []gridgraph.Cell) []gridgraph.Coord {
	out := make([]gridgraph.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Coord
	}
	return out
}

// TestNeighbors_Conn4 checks the fixed orthogonal order in the interior.
func TestNeighbors_Conn4(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	got := coords(g.Neighbors(gridgraph.Coord{X: 1, Y: 1}, gridgraph.Conn4))
	want := []gridgraph.Coord{{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0}}
	assert.Equal(t, want, got)
}

// TestNeighbors_Conn8 checks diagonals are appended after the axial four.
func TestNeighbors_Conn8(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	got := coords(g.Neighbors(gridgraph.Coord{X: 1, Y: 1}, gridgraph.Conn8))
	want := []gridgraph.Coord{
		{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0},
		{X: 2, Y: 2}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0},
	}
	assert.Equal(t, want, got)
}

// TestNeighbors_CornerDropsAbsent checks edge filtering at (0,0).
func TestNeighbors_CornerDropsAbsent(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	got := coords(g.Neighbors(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Conn8))
	want := []gridgraph.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	assert.Equal(t, want, got)
}

// TestNeighbors_NoCornerCutting shows a diagonal is offered between two walls.
func TestNeighbors_NoCornerCutting(t *testing.T) {
	g, err := gridgraph.FromLayout([]string{
		".#",
		"#.",
	})
	require.NoError(t, err)

	nb := g.Neighbors(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Conn8)
	require.Len(t, nb, 3)
	assert.False(t, nb[0].Walkable)
	assert.False(t, nb[1].Walkable)
	assert.Equal(t, gridgraph.Coord{X: 1, Y: 1}, nb[2].Coord)
	assert.True(t, nb[2].Walkable)
}

//----------------------------------------------------------------------------//
// World mapping
//----------------------------------------------------------------------------//

// TestWorldMapping_RoundTrip checks exact grid-aligned inputs map back.
func TestWorldMapping_RoundTrip(t *testing.T) {
	g, err := gridgraph.NewGrid(5, 4, gridgraph.WithCellSize(2.5))
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			c := gridgraph.Coord{X: x, Y: y}
			p := g.CoordinateToWorld(c)
			assert.Equal(t, gridgraph.Point{X: float64(x) * 2.5, Y: float64(y) * 2.5}, p)
			assert.Equal(t, c, g.WorldToCoordinate(p))
		}
	}
}

// TestWorldToCoordinate_Rounding checks nearest-cell mapping and CellAt bounds.
func TestWorldToCoordinate_Rounding(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	assert.Equal(t, gridgraph.Coord{X: 1, Y: 2}, g.WorldToCoordinate(gridgraph.Point{X: 1.4, Y: 1.6}))
	assert.Equal(t, gridgraph.Coord{X: 2, Y: 0}, g.WorldToCoordinate(gridgraph.Point{X: 2.5, Y: 0.5}))

	_, ok := g.CellAt(gridgraph.Point{X: 1.2, Y: 0.9})
	assert.True(t, ok)
	_, ok = g.CellAt(gridgraph.Point{X: -0.7, Y: 0})
	assert.False(t, ok)
	assert.InDelta(t, 5.0, gridgraph.Point{}.Distance(gridgraph.Point{X: 3, Y: 4}), 1e-9)
}

// TestRender overlays endpoints and path cells on the String dump.
func TestRender(t *testing.T) {
	g, err := gridgraph.FromLayout([]string{"..#", "...", "#.."})
	require.NoError(t, err)

	path := []gridgraph.Cell{
		{Coord: gridgraph.Coord{X: 0, Y: 1}},
		{Coord: gridgraph.Coord{X: 1, Y: 1}},
		{Coord: gridgraph.Coord{X: 1, Y: 2}},
		{Coord: gridgraph.Coord{X: 2, Y: 2}},
		{Coord: gridgraph.Coord{X: 9, Y: 9}},
	}
	got := g.Render(path, gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 2, Y: 2})
	assert.Equal(t, "S.#\n**.\n#*G\n", got)
	assert.Equal(t, "..#\n...\n#..\n", g.String(), "Render must not change the grid")
}
