package game

import (
	"context"
	"log"
	"time"

	"gameoflife/src/universe"
	"gameoflife/src/view"
)

// statusEvery is the period of the status log records, in generations
const statusEvery = 100

// Status represents the status of the simulation at concrete moment
type Status struct {
	IterationNum  int
	LiveCells     int
	IterationTime time.Duration
}

// Loop is the live mode: one generation per tick until the context is cancelled
type Loop struct {
	buf      *universe.Buffer
	r        *view.Renderer
	keys     *view.Keyboard // nil when there is no keyboard
	editor   *Editor
	interval time.Duration
	maxSteps int
	log      *log.Logger
	status   Status
}

func NewLoop(buf *universe.Buffer, r *view.Renderer, keys *view.Keyboard, editor *Editor, interval time.Duration, maxSteps int, logger *log.Logger) *Loop {
	return &Loop{buf: buf, r: r, keys: keys, editor: editor, interval: interval, maxSteps: maxSteps, log: logger}
}

// Status returns the status after the last generation
func (l *Loop) Status() Status {
	return l.status
}

// Run loops until the context is cancelled or maxSteps generations are done
// Escape or Q switches to the editor, the loop is resumed afterwards
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.maxSteps > 0 && l.status.IterationNum >= l.maxSteps {
			l.r.RenderDiff(l.buf.Active(), l.buf.Staging())
			return nil
		}

		//staging holds the grid the active one was calculated from
		l.r.RenderDiff(l.buf.Active(), l.buf.Staging())
		l.step()

		if l.keys != nil && l.editor != nil && l.editRequested() {
			if err := l.editor.Run(ctx); err != nil {
				return err
			}
		}

		if l.interval > 0 {
			t := time.NewTimer(l.interval)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
	}
}

// editRequested drains the keys pressed during the tick up to the first Escape or Q
// the keys after it are left for the editor, the others are ignored in live mode
func (l *Loop) editRequested() bool {
	if n := l.keys.Dropped(); n > 0 {
		l.log.Printf("%v keys dropped, the keyboard is full", n)
	}
	for {
		key, ok := l.keys.Poll()
		if !ok {
			return false
		}
		if key == view.KeyEscape || key == view.KeyQuit {
			return true
		}
	}
}

// step calculates the next generation and swaps the grids
func (l *Loop) step() {
	gen := universe.Step(l.buf.Active(), l.buf.Staging())
	l.buf.Swap()
	l.status.IterationNum++
	l.status.LiveCells = gen.LiveCells
	l.status.IterationTime = gen.IterationTime
	if l.status.IterationNum%statusEvery == 0 {
		l.log.Printf("generation %v, live cells: %v, changed: %v, evaluation time: %v",
			l.status.IterationNum, gen.LiveCells, gen.ChangedCells, gen.IterationTime)
	}
}
