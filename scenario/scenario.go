// Package scenario loads navigation maps from YAML files.
//
// A scenario file describes the grid as text rows plus a few settings:
//
//	name: corridor
//	cell_size: 1
//	diagonals: false
//	layout:
//	  - "S..#...."
//	  - "...#..G."
//
// In layout rows '#' is a wall, 'S' the start, 'G' the goal, and any other
// rune an open cell. Lowercase 's' and 'g' mark an endpoint standing on a
// wall. Exactly one start and one goal are required.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for scenario loading.
var (
	// ErrBadScenario wraps decoding and grid construction failures.
	ErrBadScenario = errors.New("scenario: invalid scenario")
	// ErrMissingEndpoint indicates the layout has no 'S' or no 'G'.
	ErrMissingEndpoint = errors.New("scenario: layout needs one 'S' and one 'G'")
	// ErrDuplicateEndpoint indicates more than one 'S' or 'G'.
	ErrDuplicateEndpoint = errors.New("scenario: layout has more than one 'S' or 'G'")
)

// Layout markers.
const (
	startRune        = 'S'
	goalRune         = 'G'
	blockedStartRune = 's'
	blockedGoalRune  = 'g'
)

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Name      string   `yaml:"name"`
	CellSize  float64  `yaml:"cell_size"`
	Diagonals bool     `yaml:"diagonals"`
	Layout    []string `yaml:"layout"`
}

// Load decodes a scenario from r. Unknown fields are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	if s.CellSize == 0 {
		s.CellSize = 1
	}

	return &s, nil
}

// LoadFile reads and decodes the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Connectivity returns Conn8 when diagonals are enabled.
func (s *Scenario) Connectivity() gridgraph.Connectivity {
	if s.Diagonals {
		return gridgraph.Conn8
	}
	return gridgraph.Conn4
}

// Board builds the grid and a board with the layout's endpoints.
func (s *Scenario) Board() (*board.Board, error) {
	g, err := gridgraph.FromLayout(s.Layout,
		gridgraph.WithCellSize(s.CellSize),
		gridgraph.WithConnectivity(s.Connectivity()),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	start, goal, err := s.endpoints()
	if err != nil {
		return nil, err
	}
	for _, e := range []endpoint{start, goal} {
		if e.blocked {
			if err := g.SetWalkable(e.Coord, false); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
			}
		}
	}

	return board.New(g, start.Coord, goal.Coord)
}

// Marshal encodes the scenario back to YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// FromBoard captures the current state of b as a scenario.
func FromBoard(name string, b *board.Board) *Scenario {
	g := b.Grid()
	rows := make([]string, g.Height())
	for y := range rows {
		row := make([]rune, g.Width())
		for x := range row {
			c := gridgraph.Coord{X: x, Y: y}
			switch {
			case c == b.Start() && g.Walkable(c):
				row[x] = startRune
			case c == b.Start():
				row[x] = blockedStartRune
			case c == b.Goal() && g.Walkable(c):
				row[x] = goalRune
			case c == b.Goal():
				row[x] = blockedGoalRune
			case g.Walkable(c):
				row[x] = '.'
			default:
				row[x] = '#'
			}
		}
		rows[y] = string(row)
	}

	return &Scenario{
		Name:      name,
		CellSize:  g.CellSize(),
		Diagonals: g.Connectivity() == gridgraph.Conn8,
		Layout:    rows,
	}
}

// endpoint is a start or goal marker and whether it stands on a wall.
type endpoint struct {
	gridgraph.Coord
	blocked bool
}

func (s *Scenario) endpoints() (start, goal endpoint, err error) {
	var starts, goals int
	for y, row := range s.Layout {
		x := 0
		for _, r := range row {
			at := gridgraph.Coord{X: x, Y: y}
			switch r {
			case startRune, blockedStartRune:
				start = endpoint{Coord: at, blocked: r == blockedStartRune}
				starts++
			case goalRune, blockedGoalRune:
				goal = endpoint{Coord: at, blocked: r == blockedGoalRune}
				goals++
			}
			x++
		}
	}
	switch {
	case starts == 0 || goals == 0:
		return start, goal, ErrMissingEndpoint
	case starts > 1 || goals > 1:
		return start, goal, fmt.Errorf("%w: %d starts, %d goals", ErrDuplicateEndpoint, starts, goals)
	}

	return start, goal, nil
}
