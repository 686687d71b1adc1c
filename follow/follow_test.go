package follow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/follow"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func pt(x, y float64) gridgraph.Point { return gridgraph.Point{X: x, Y: y} }

func TestNewFollower_MapsCellsToWorld(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 4, gridgraph.WithCellSize(2))
	require.NoError(t, err)
	path := []gridgraph.Cell{
		{Coord: gridgraph.Coord{X: 1, Y: 0}, Walkable: true},
		{Coord: gridgraph.Coord{X: 1, Y: 1}, Walkable: true},
	}

	f := follow.NewFollower(g, path)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []gridgraph.Point{pt(2, 0), pt(2, 2)}, f.Waypoints())
	target, ok := f.Target()
	require.True(t, ok)
	assert.Equal(t, pt(2, 0), target)
}

func TestFollower_EmptyPathIsDone(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 2)
	require.NoError(t, err)

	f := follow.NewFollower(g, nil)
	assert.True(t, f.Done())
	_, ok := f.Target()
	assert.False(t, ok)

	pos, done := f.Step(pt(1, 1), time.Second)
	assert.True(t, done)
	assert.Equal(t, pt(1, 1), pos)
}

func TestFollower_ArriveWithinTolerance(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 1)
	require.NoError(t, err)
	path := []gridgraph.Cell{{Coord: gridgraph.Coord{X: 1}}, {Coord: gridgraph.Coord{X: 2}}}
	f := follow.NewFollower(g, path, follow.WithTolerance(0.25))

	assert.False(t, f.Arrive(pt(0.5, 0)), "too far")
	assert.Equal(t, 0, f.Index())
	assert.True(t, f.Arrive(pt(0.8, 0)))
	assert.Equal(t, 1, f.Index())
	assert.True(t, f.Arrive(pt(2.1, 0)))
	assert.True(t, f.Done())
	assert.False(t, f.Arrive(pt(2, 0)), "nothing left")

	f.Reset()
	assert.Equal(t, 0, f.Index())
}

// TestFollower_StepWalksWholePath drives a follower at a fixed frame rate
// along a planned route and checks it visits every waypoint in order.
func TestFollower_StepWalksWholePath(t *testing.T) {
	g, err := gridgraph.FromLayout([]string{
		"..#",
		"...",
	})
	require.NoError(t, err)
	res, err := astar.FindPath(g, gridgraph.Coord{}, gridgraph.Coord{X: 2, Y: 1})
	require.NoError(t, err)

	f := follow.NewFollower(g, res.Path, follow.WithSpeed(4))
	pos := g.CoordinateToWorld(gridgraph.Coord{})
	var reached []int
	done := false
	for frame := 0; frame < 1000 && !done; frame++ {
		before := f.Index()
		pos, done = f.Step(pos, 16*time.Millisecond)
		if f.Index() != before {
			reached = append(reached, before)
		}
	}
	require.True(t, done, "follower never finished")
	assert.Equal(t, []int{0, 1, 2}, reached)
	assert.InDelta(t, 0, pos.Distance(g.CoordinateToWorld(gridgraph.Coord{X: 2, Y: 1})), follow.DefaultTolerance)
}

func TestMoveTowards(t *testing.T) {
	assert.Equal(t, pt(3, 4), follow.MoveTowards(pt(0, 0), pt(3, 4), 10))
	got := follow.MoveTowards(pt(0, 0), pt(3, 4), 2.5)
	assert.InDelta(t, 1.5, got.X, 1e-9)
	assert.InDelta(t, 2.0, got.Y, 1e-9)
	assert.Equal(t, pt(1, 1), follow.MoveTowards(pt(1, 1), pt(1, 1), 0))
}

func TestOptions_IgnoreNonPositive(t *testing.T) {
	o := follow.DefaultOptions()
	follow.WithSpeed(-1)(&o)
	follow.WithTolerance(0)(&o)
	assert.Equal(t, follow.DefaultOptions(), o)
}
