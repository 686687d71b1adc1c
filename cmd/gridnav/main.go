// Command gridnav is an interactive terminal front-end for the grid planner.
//
// Mouse: left toggles a wall, middle moves the start, right moves the goal.
// Keys:  space plans and sends the agent, d toggles diagonals,
//
//	r makes a new random board, q or Esc quits.
package main

import (
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/scenario"
)

type config struct {
	mapPath string
	width   int
	height  int
	seed    int64
	diag    bool
	speed   float64
	mute    bool
	logPath string
}

func parseFlags() config {
	var c config
	flag.StringVar(&c.mapPath, "map", "", "scenario YAML file (random board when empty)")
	flag.IntVar(&c.width, "width", 30, "random board width in cells")
	flag.IntVar(&c.height, "height", 20, "random board height in cells")
	flag.Int64Var(&c.seed, "seed", 0, "random seed (0 uses the clock)")
	flag.BoolVar(&c.diag, "diag", false, "start with diagonal moves enabled")
	flag.Float64Var(&c.speed, "speed", 6, "agent speed in cells per second")
	flag.BoolVar(&c.mute, "mute", false, "disable the arrival chime")
	flag.StringVar(&c.logPath, "log", "", "log file (discarded when empty)")
	flag.Parse()
	if c.seed == 0 {
		c.seed = time.Now().UnixNano()
	}
	return c
}

func main() {
	cfg := parseFlags()

	// tcell owns the terminal, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if cfg.logPath != "" {
		f, err := os.OpenFile(cfg.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	b, diag, err := loadBoard(cfg, rng)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("board: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var ch chime = silentChime{}
	if !cfg.mute {
		tone, err := newToneChime()
		if err != nil {
			// Non-fatal, the planner works without sound
			log.Printf("audio init failed: %v", err)
		} else {
			ch = tone
		}
	}

	a := newApp(screen, b, rng, ch, cfg.speed, diag)
	a.width, a.height = randomSize(cfg, b)
	log.Printf("gridnav: %dx%d board, seed %d", b.Grid().Width(), b.Grid().Height(), cfg.seed)
	a.run()
}

// loadBoard reads the scenario named by -map, or builds a random board.
func loadBoard(cfg config, rng *rand.Rand) (*board.Board, bool, error) {
	if cfg.mapPath != "" {
		s, err := scenario.LoadFile(cfg.mapPath)
		if err != nil {
			return nil, false, err
		}
		b, err := s.Board()
		if err != nil {
			return nil, false, err
		}
		return b, s.Diagonals || cfg.diag, nil
	}

	b, err := randomBoard(cfg.width, cfg.height, rng)
	return b, cfg.diag, err
}

// randomSize is the size 'r' regenerates at: the flag size for random
// boards, the loaded map's size otherwise.
func randomSize(cfg config, b *board.Board) (width, height int) {
	if cfg.mapPath != "" {
		return b.Grid().Width(), b.Grid().Height()
	}
	return cfg.width, cfg.height
}

// wallDensity is the share of cells turned into walls on a random board.
const wallDensity = 0.25

func randomBoard(width, height int, rng *rand.Rand) (*board.Board, error) {
	g, err := gridgraph.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	b, err := board.NewRandom(g, rng)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := gridgraph.Coord{X: x, Y: y}
			if b.IsEndpoint(c) || rng.Float64() >= wallDensity {
				continue
			}
			if _, err := b.ToggleWall(c); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
