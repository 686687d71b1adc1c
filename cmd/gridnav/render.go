package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// cellWidth is the number of terminal columns per grid cell.
const cellWidth = 2

var (
	styleFloor    = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleWall     = tcell.StyleDefault.Background(tcell.ColorGray)
	styleHint     = tcell.StyleDefault.Background(tcell.ColorPurple)
	styleExplored = tcell.StyleDefault.Background(tcell.ColorNavy)
	stylePath     = tcell.StyleDefault.Background(tcell.ColorOlive)
	styleStart    = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleGoal     = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
	styleAgent    = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// cellAt maps a screen position to a grid coordinate.
func (a *app) cellAt(sx, sy int) (gridgraph.Coord, bool) {
	c := gridgraph.Coord{X: sx / cellWidth, Y: sy}
	return c, sx >= 0 && a.board.Grid().InBounds(c.X, c.Y)
}

func (a *app) draw() {
	g := a.board.Grid()
	onPath := mapset.New[gridgraph.Coord]()
	if path, ok := a.board.Path(); ok {
		for _, c := range path {
			onPath.Put(c.Coord)
		}
	}
	agent := a.agentCell()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := gridgraph.Coord{X: x, Y: y}
			glyph, style := ' ', styleFloor
			switch {
			case c == a.board.Goal():
				glyph, style = 'G', styleGoal
			case c == agent:
				glyph, style = '@', styleAgent
			case c == a.board.Start():
				glyph, style = 'S', styleStart
			case a.hint.Has(c):
				glyph, style = '×', styleHint
			case !g.Walkable(c):
				style = styleWall
			case onPath.Has(c):
				glyph, style = '·', stylePath
			case a.explored.Has(c):
				style = styleExplored
			}
			a.screen.SetContent(x*cellWidth, y, glyph, nil, style)
			a.screen.SetContent(x*cellWidth+1, y, ' ', nil, style)
		}
	}
	a.drawStatus(g.Height())
	a.screen.Show()
}

func (a *app) drawStatus(row int) {
	w, _ := a.screen.Size()
	col := 0
	for _, r := range a.status {
		if col >= w {
			break
		}
		a.screen.SetContent(col, row, r, nil, styleStatus)
		col++
	}
	for ; col < w; col++ {
		a.screen.SetContent(col, row, ' ', nil, styleStatus)
	}
}
