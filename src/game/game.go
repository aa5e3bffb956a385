package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/pkg/errors"

	"gameoflife/src/config"
	"gameoflife/src/universe"
	"gameoflife/src/view"
)

// Options are the collaborators of the Game
type Options struct {
	Config  config.Config
	Surface view.Surface
	Keys    *view.Keyboard // nil runs the simulation without the setup mode
	Help    Helper
	Rand    *rand.Rand
	Log     *log.Logger
}

// Game is the setup mode followed by the live mode
type Game struct {
	buf    *universe.Buffer
	r      *view.Renderer
	editor *Editor
	loop   *Loop
	log    *log.Logger
}

// New creates the game with the all-dead grid, the template is settled if configured
func New(o Options) (*Game, error) {
	if o.Log == nil {
		o.Log = log.New(io.Discard, "", 0)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(o.Config.Seed))
	}
	c := o.Config
	g := Game{
		buf: universe.NewBuffer(c.Width, c.Height),
		r:   view.NewRenderer(o.Surface, c.Alive, c.Dead),
		log: o.Log,
	}
	if c.Template != "" {
		if err := universe.SettleTemplate(g.buf.Active(), c.Template); err != nil {
			return nil, err
		}
	}
	if o.Keys != nil {
		g.editor = NewEditor(g.buf, g.r, o.Keys, o.Help, o.Rand, o.Log)
	} else if c.Template == "" {
		universe.Soup(g.buf.Active(), o.Rand)
	}
	g.loop = NewLoop(g.buf, g.r, o.Keys, g.editor, c.Interval, c.MaxSteps, o.Log)
	return &g, nil
}

// Buffer returns the grids of the game
func (g *Game) Buffer() *universe.Buffer {
	return g.buf
}

// Status returns the simulation status
func (g *Game) Status() Status {
	return g.loop.Status()
}

// Run draws the grid, starts the setup mode if there is a keyboard and then the live mode
// a panic is returned as the error
func (g *Game) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprint(r))
		}
	}()
	g.r.RenderFull(g.buf.Active())
	if g.editor != nil {
		if err = g.editor.Run(ctx); err != nil {
			return err
		}
	}
	return g.loop.Run(ctx)
}

// Results describes the status for the console output
func (g *Game) Results() map[string]interface{} {
	st := g.Status()
	return map[string]interface{}{
		"Last iteration": st.IterationNum,
		"Live cells":     st.LiveCells,
	}
}
