package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/follow"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// frame is the redraw and agent update interval.
const frame = 33 * time.Millisecond

type app struct {
	screen tcell.Screen
	board  *board.Board
	rng    *rand.Rand
	chime  chime
	speed  float64
	diag   bool

	// Size used by 'r'.
	width, height int

	explored mapset.Set[gridgraph.Coord]
	// Walls whose removal would connect start and goal after a failed plan.
	hint     mapset.Set[gridgraph.Coord]
	buttons  tcell.ButtonMask
	follower *follow.Follower
	agent    gridgraph.Point
	status   string
}

func newApp(screen tcell.Screen, b *board.Board, rng *rand.Rand, ch chime, speed float64, diag bool) *app {
	a := &app{
		screen: screen,
		board:  b,
		rng:    rng,
		chime:  ch,
		speed:  speed,
		diag:   diag,
		width:  b.Grid().Width(),
		height: b.Grid().Height(),
	}
	a.resetAgent()
	a.status = "space: plan  d: diagonals  r: random  q: quit"
	return a
}

func (a *app) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.draw()
	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()
		case now := <-ticker.C:
			a.tick(now.Sub(last))
			last = now
			a.draw()
		}
	}
}

// handleEvent applies one input event and reports whether to keep running.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() != tcell.KeyRune:
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.plan()
		case 'd':
			a.diag = !a.diag
			a.clearPlan()
			a.status = fmt.Sprintf("diagonals: %v", a.diag)
		case 'r':
			a.regenerate()
		}
	case *tcell.EventMouse:
		// Act on press only; drags repeat the event.
		pressed := ev.Buttons() &^ a.buttons
		a.buttons = ev.Buttons()
		if c, ok := a.cellAt(ev.Position()); ok && pressed != 0 {
			a.click(pressed, c)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// click applies a mouse press: Button1 is left, Button3 middle, Button2 right.
func (a *app) click(btn tcell.ButtonMask, c gridgraph.Coord) {
	var (
		changed bool
		err     error
	)
	switch {
	case btn&tcell.Button1 != 0:
		changed, err = a.board.ToggleWall(c)
	case btn&tcell.Button3 != 0:
		changed, err = a.board.MoveStart(c)
		if changed {
			a.resetAgent()
		}
	case btn&tcell.Button2 != 0:
		changed, err = a.board.MoveGoal(c)
	default:
		return
	}
	if err != nil {
		log.Printf("click (%d,%d): %v", c.X, c.Y, err)
		return
	}
	if changed {
		a.clearPlan()
	}
}

// plan searches from start to goal, recording expanded cells.
func (a *app) plan() {
	a.resetAgent()
	a.explored = mapset.New[gridgraph.Coord]()
	a.hint = mapset.Set[gridgraph.Coord]{}
	opts := []astar.Option{
		astar.WithDiagonals(a.diag),
		astar.WithOnExpand(func(c gridgraph.Coord, _ int) { a.explored.Put(c) }),
	}
	if a.diag {
		opts = append(opts, astar.WithHeuristic(astar.Chebyshev))
	}

	res, err := a.board.Plan(opts...)
	switch {
	case errors.Is(err, astar.ErrNoPath):
		a.follower = nil
		a.status = fmt.Sprintf("no path (%d cells explored)", res.Expanded)
		a.suggestWalls()
		return
	case err != nil:
		a.follower = nil
		a.status = err.Error()
		log.Printf("plan: %v", err)
		return
	}

	g := a.board.Grid()
	a.follower = follow.NewFollower(g, res.Path, follow.WithSpeed(a.speed*g.CellSize()))
	a.status = fmt.Sprintf("path: %d steps, %d cells explored", len(res.Path), res.Expanded)
	log.Printf("plan %v -> %v: %d steps, %d expanded", a.board.Start(), a.board.Goal(), len(res.Path), res.Expanded)
}

// suggestWalls marks the fewest walls to open so the goal becomes reachable.
func (a *app) suggestWalls() {
	conn := gridgraph.Conn4
	if a.diag {
		conn = gridgraph.Conn8
	}
	walls, cost, err := a.board.Grid().OpenWalls(a.board.Start(), a.board.Goal(), conn)
	if err != nil {
		log.Printf("open walls: %v", err)
		return
	}
	a.hint = mapset.New[gridgraph.Coord]()
	for _, c := range walls {
		a.hint.Put(c)
	}
	a.status += fmt.Sprintf("; open %d wall(s)", cost)
}

// tick advances the agent along the current plan.
func (a *app) tick(dt time.Duration) {
	if a.follower == nil || a.follower.Done() {
		return
	}
	var done bool
	a.agent, done = a.follower.Step(a.agent, dt)
	if done {
		a.follower = nil
		a.status = "arrived"
		a.chime.Play()
	}
}

func (a *app) regenerate() {
	b, err := randomBoard(a.width, a.height, a.rng)
	if err != nil {
		a.status = err.Error()
		log.Printf("random board: %v", err)
		return
	}
	a.board = b
	a.clearPlan()
	a.resetAgent()
	a.screen.Clear()
	a.status = "new board"
}

func (a *app) clearPlan() {
	a.follower = nil
	a.explored = mapset.Set[gridgraph.Coord]{}
	a.hint = mapset.Set[gridgraph.Coord]{}
}

func (a *app) resetAgent() {
	a.agent = a.board.Grid().CoordinateToWorld(a.board.Start())
}

// agentCell returns the cell the agent is nearest to.
func (a *app) agentCell() gridgraph.Coord {
	return a.board.Grid().WorldToCoordinate(a.agent)
}
