package game

import (
	"context"
	"log"
	"math/rand"

	"github.com/pkg/errors"

	"gameoflife/src/universe"
	"gameoflife/src/view"
)

// Helper shows the help and blocks until it is dismissed
type Helper interface {
	Show() error
}

// Cursor is the edit position, always inside the grid
type Cursor struct {
	X int
	Y int
}

// Move moves the cursor by dx,dy clamped to [0,width-1] x [0,height-1]
func (c Cursor) Move(dx int, dy int, width int, height int) Cursor {
	return Cursor{X: clamp(c.X+dx, width-1), Y: clamp(c.Y+dy, height-1)}
}

func clamp(v int, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Editor is the setup mode: the cursor driven editing of the active grid
// Run blocks on the key reads until Escape is pressed
type Editor struct {
	buf    *universe.Buffer
	r      *view.Renderer
	keys   *view.Keyboard
	help   Helper
	rnd    *rand.Rand
	log    *log.Logger
	cursor Cursor
}

func NewEditor(buf *universe.Buffer, r *view.Renderer, keys *view.Keyboard, help Helper, rnd *rand.Rand, logger *log.Logger) *Editor {
	return &Editor{buf: buf, r: r, keys: keys, help: help, rnd: rnd, log: logger}
}

// Cursor returns the current cursor position
func (e *Editor) Cursor() Cursor {
	return e.cursor
}

// Run starts the editing with the cursor at the top left corner
// the grid is fully redrawn on exit, the context error is returned on cancellation
func (e *Editor) Run(ctx context.Context) error {
	e.log.Printf("setup mode")
	e.cursor = Cursor{}
	e.redraw()
	for {
		key, err := e.keys.Next(ctx)
		if err != nil {
			return err
		}
		switch key {
		case view.KeyUp:
			e.move(0, -1)
		case view.KeyDown:
			e.move(0, 1)
		case view.KeyLeft:
			e.move(-1, 0)
		case view.KeyRight:
			e.move(1, 0)
		case view.KeyEnter:
			e.buf.Active().Toggle(e.cursor.X, e.cursor.Y)
		case view.KeyDelete:
			e.log.Printf("clear")
			e.buf.Reset(e.buf.Width(), e.buf.Height())
			e.redraw()
		case view.KeySoup:
			universe.Soup(e.buf.Active(), e.rnd)
			e.log.Printf("soup, live cells: %v", e.buf.Active().LiveCells())
			e.redraw()
		case view.KeyHelp:
			if e.help != nil {
				if err := e.help.Show(); err != nil {
					return errors.Wrap(err, "help")
				}
			}
			e.redraw()
		case view.KeyEscape:
			e.r.RenderFull(e.buf.Active())
			e.r.HideCursor()
			e.log.Printf("live mode, live cells: %v", e.buf.Active().LiveCells())
			return nil
		}
	}
}

// move repaints the two affected cells only
func (e *Editor) move(dx int, dy int) {
	e.r.RestoreCell(e.buf.Active(), e.cursor.X, e.cursor.Y)
	e.cursor = e.cursor.Move(dx, dy, e.buf.Width(), e.buf.Height())
	e.r.DrawCursor(e.cursor.X, e.cursor.Y)
}

func (e *Editor) redraw() {
	e.r.RenderFull(e.buf.Active())
	e.r.DrawCursor(e.cursor.X, e.cursor.Y)
}
