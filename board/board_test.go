package board_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func xy(x, y int) gridgraph.Coord { return gridgraph.Coord{X: x, Y: y} }

func newBoard(t *testing.T, rows []string, start, goal gridgraph.Coord) *board.Board {
	t.Helper()
	g, err := gridgraph.FromLayout(rows)
	require.NoError(t, err)
	b, err := board.New(g, start, goal)
	require.NoError(t, err)
	return b
}

func TestNew_Errors(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	_, err = board.New(nil, xy(0, 0), xy(1, 1))
	assert.ErrorIs(t, err, board.ErrNilGrid)
	_, err = board.New(g, xy(0, 0), xy(0, 0))
	assert.ErrorIs(t, err, board.ErrSameEndpoints)
	_, err = board.New(g, xy(0, 0), xy(3, 0))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	one, err := gridgraph.NewGrid(1, 1)
	require.NoError(t, err)
	_, err = board.NewRandom(one, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, board.ErrTooSmall)
}

func TestNewRandom_DistinctEndpoints(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 1)
	require.NoError(t, err)
	for seed := int64(0); seed < 20; seed++ {
		b, err := board.NewRandom(g, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.NotEqual(t, b.Start(), b.Goal())
		assert.True(t, g.InBounds(b.Start().X, b.Start().Y))
		assert.True(t, g.InBounds(b.Goal().X, b.Goal().Y))
	}
}

func TestToggleWall(t *testing.T) {
	b := newBoard(t, []string{"...", "..."}, xy(0, 0), xy(2, 1))

	changed, err := b.ToggleWall(xy(1, 0))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, b.Grid().Walkable(xy(1, 0)))

	changed, err = b.ToggleWall(xy(1, 0))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, b.Grid().Walkable(xy(1, 0)))

	// Endpoints are protected.
	changed, err = b.ToggleWall(xy(0, 0))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, b.Grid().Walkable(xy(0, 0)))

	_, err = b.ToggleWall(xy(5, 5))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestMoveEndpoints(t *testing.T) {
	b := newBoard(t, []string{"#..", "..#"}, xy(0, 0), xy(2, 1))

	// Moving the start frees the old (blocked) cell.
	moved, err := b.MoveStart(xy(1, 1))
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, xy(1, 1), b.Start())
	assert.True(t, b.Grid().Walkable(xy(0, 0)))

	moved, err = b.MoveGoal(xy(2, 0))
	require.NoError(t, err)
	assert.True(t, moved)
	assert.True(t, b.Grid().Walkable(xy(2, 1)))

	// Refusals: onto the other endpoint, or onto itself.
	moved, err = b.MoveGoal(xy(1, 1))
	require.NoError(t, err)
	assert.False(t, moved)
	moved, err = b.MoveStart(xy(1, 1))
	require.NoError(t, err)
	assert.False(t, moved)

	_, err = b.MoveGoal(xy(-1, 0))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestPlan_StoresAndInvalidates(t *testing.T) {
	b := newBoard(t, []string{".....", "..#..", "....."}, xy(0, 1), xy(4, 1))

	res, err := b.Plan()
	require.NoError(t, err)
	assert.Len(t, res.Path, 6)
	path, ok := b.Path()
	assert.True(t, ok)
	assert.Equal(t, res.Path, path)

	// An edit invalidates the stored path.
	_, err = b.ToggleWall(xy(2, 1))
	require.NoError(t, err)
	path, ok = b.Path()
	assert.False(t, ok)
	assert.Nil(t, path)

	res, err = b.Plan()
	require.NoError(t, err)
	assert.Len(t, res.Path, 4)

	// Seal the goal: plan fails and clears the path.
	for _, c := range []gridgraph.Coord{xy(3, 1), xy(4, 0), xy(4, 2)} {
		_, err = b.ToggleWall(c)
		require.NoError(t, err)
	}
	_, err = b.Plan()
	assert.ErrorIs(t, err, astar.ErrNoPath)
	_, ok = b.Path()
	assert.False(t, ok)
}

func TestPlan_PassesOptions(t *testing.T) {
	b := newBoard(t, []string{"....", "....", "....", "...."}, xy(0, 0), xy(3, 3))

	res, err := b.Plan(astar.WithDiagonals(true))
	require.NoError(t, err)
	assert.Len(t, res.Path, 3)
}
