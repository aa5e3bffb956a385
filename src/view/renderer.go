package view

import "gameoflife/src/universe"

// CursorGlyph marks the cursor position in the edit mode
const CursorGlyph = 'X'

// Renderer draws the grid to the Surface, one character per cell
type Renderer struct {
	s          Surface
	liveFiller rune
	deadFiller rune
}

func NewRenderer(s Surface, alive rune, dead rune) *Renderer {
	return &Renderer{s: s, liveFiller: alive, deadFiller: dead}
}

// Surface returns the surface the renderer draws to
func (r *Renderer) Surface() Surface {
	return r.s
}

// RenderFull clears the surface and draws every cell of the grid
// used when an unknown number of cells was changed
func (r *Renderer) RenderFull(g *universe.Grid) {
	r.s.Clear()
	g.Walk(func(x int, y int, c universe.Cell) {
		r.s.SetCell(x, y, r.symbol(c))
	})
	r.s.Show()
}

// RenderDiff draws only the cells which differ between current and previous
// previous must be the grid current was calculated from, returns the count of drawn cells
// when current is the untouched Step result of previous only the recorded changes are visited
func (r *Renderer) RenderDiff(current *universe.Grid, previous *universe.Grid) int {
	drawn := 0
	draw := func(x int, y int, c universe.Cell) {
		r.s.SetCell(x, y, r.symbol(c))
		drawn++
	}
	if !current.ChangesFrom(previous, draw) {
		current.Walk(func(x int, y int, c universe.Cell) {
			if c != previous.At(x, y) {
				draw(x, y, c)
			}
		})
	}
	if drawn > 0 {
		r.s.Show()
	}
	return drawn
}

// RestoreCell draws the true state of the cell at x,y
func (r *Renderer) RestoreCell(g *universe.Grid, x int, y int) {
	r.s.SetCell(x, y, r.symbol(g.At(x, y)))
}

// DrawCursor overwrites the cell at x,y with the cursor glyph
func (r *Renderer) DrawCursor(x int, y int) {
	r.s.SetCell(x, y, CursorGlyph)
	r.s.ShowCursor(x, y)
	r.s.Show()
}

// HideCursor hides the terminal cursor, the glyph is removed by the next full render
func (r *Renderer) HideCursor() {
	r.s.HideCursor()
	r.s.Show()
}

func (r *Renderer) symbol(c universe.Cell) rune {
	if c {
		return r.liveFiller
	}
	return r.deadFiller
}
