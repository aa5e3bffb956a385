package game

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"gameoflife/src/config"
	"gameoflife/src/universe"
	"gameoflife/src/view"
)

func newTestLoop(buf *universe.Buffer, c *view.Canvas, keys *view.Keyboard, maxSteps int, logs io.Writer) *Loop {
	r := view.NewRenderer(c, '#', '.')
	logger := log.New(logs, "", 0)
	var e *Editor
	if keys != nil {
		e = NewEditor(buf, r, keys, nil, nil, logger)
	}
	return NewLoop(buf, r, keys, e, 0, maxSteps, logger)
}

func pressAll(t *testing.T, keys *view.Keyboard, ks ...view.Key) {
	t.Helper()
	for _, k := range ks {
		if !keys.Press(k) {
			t.Fatalf("key %v is dropped by the full keyboard", k)
		}
	}
}

func TestLoopBlinker(t *testing.T) {
	tests := []struct {
		steps int
		want  string
	}{
		{1, "...#...\n...#...\n...#..."},
		{2, ".......\n..###..\n......."},
		{3, "...#...\n...#...\n...#..."},
	}
	for _, tt := range tests {
		buf := universe.NewBuffer(7, 3)
		universe.Settle(buf.Active(), [][]int{{2, 1}, {3, 1}, {4, 1}})
		c := view.NewCanvas(7, 3)
		view.NewRenderer(c, '#', '.').RenderFull(buf.Active())

		l := newTestLoop(buf, c, nil, tt.steps, io.Discard)
		if err := l.Run(context.Background()); err != nil {
			t.Fatal(err)
		}
		if c.String() != tt.want {
			t.Errorf("after %v steps got\n%v", tt.steps, c)
		}
		if st := l.Status(); st.IterationNum != tt.steps || st.LiveCells != 3 {
			t.Errorf("unexpected status %+v", st)
		}
	}
}

func TestLoopCancelledBeforeStart(t *testing.T) {
	buf := universe.NewBuffer(5, 5)
	c := view.NewCanvas(5, 5)
	l := newTestLoop(buf, c, nil, 0, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if c.Writes != 0 || l.Status().IterationNum != 0 {
		t.Fatal("nothing should be rendered after the cancellation")
	}
}

func TestLoopCancelledWhileSleeping(t *testing.T) {
	buf := universe.NewBuffer(5, 5)
	l := newTestLoop(buf, view.NewCanvas(5, 5), nil, 0, io.Discard)
	l.interval = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}
	if l.Status().IterationNum != 1 {
		t.Errorf("got %v iterations", l.Status().IterationNum)
	}
}

func TestLoopEntersSetupMode(t *testing.T) {
	buf := universe.NewBuffer(6, 6)
	c := view.NewCanvas(6, 6)
	keys := view.NewKeyboard(16)
	//Escape is polled by the loop, the block is drawn in the editor
	pressAll(t, keys, view.KeyEscape,
		view.KeyRight, view.KeyDown, view.KeyEnter, view.KeyRight, view.KeyEnter,
		view.KeyDown, view.KeyEnter, view.KeyLeft, view.KeyEnter, view.KeyEscape)
	logs := bytes.Buffer{}
	l := newTestLoop(buf, c, keys, 3, &logs)
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "setup mode") {
		t.Fatal("setup mode is not entered")
	}
	want := "......\n.##...\n.##...\n......\n......\n......"
	if c.String() != want {
		t.Fatalf("got\n%v", c)
	}
}

func TestLoopIgnoresOtherKeys(t *testing.T) {
	buf := universe.NewBuffer(5, 5)
	keys := view.NewKeyboard(16)
	pressAll(t, keys, view.KeySoup, view.KeyHelp)
	logs := bytes.Buffer{}
	l := newTestLoop(buf, view.NewCanvas(5, 5), keys, 2, &logs)
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(logs.String(), "setup mode") {
		t.Fatal("unexpected setup mode")
	}
	if _, ok := keys.Poll(); ok {
		t.Error("stray keys are left in the keyboard")
	}
}

// the stray keys pressed during one tick must not hide Escape behind them
func TestLoopDrainsStrayKeys(t *testing.T) {
	buf := universe.NewBuffer(5, 5)
	keys := view.NewKeyboard(16)
	pressAll(t, keys, view.KeySoup, view.KeyUp, view.KeyEnter, view.KeyHelp, view.KeyQuit,
		view.KeyEnter, view.KeyEscape)
	logs := bytes.Buffer{}
	l := newTestLoop(buf, view.NewCanvas(5, 5), keys, 1, &logs)
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "setup mode") {
		t.Fatal("setup mode is not entered on the first tick")
	}
	//Enter after Q is handled by the editor
	if !buf.Active().At(0, 0) {
		t.Error("the cell under the cursor is not toggled")
	}
}

func TestLoopLogsDroppedKeys(t *testing.T) {
	buf := universe.NewBuffer(5, 5)
	keys := view.NewKeyboard(2)
	keys.Press(view.KeySoup)
	keys.Press(view.KeySoup)
	if keys.Press(view.KeyEscape) {
		t.Fatal("the key must be dropped when the queue is full")
	}
	logs := bytes.Buffer{}
	l := newTestLoop(buf, view.NewCanvas(5, 5), keys, 1, &logs)
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "1 keys dropped") {
		t.Fatalf("dropped keys are not logged: %q", logs.String())
	}
	if keys.Dropped() != 0 {
		t.Error("the dropped counter is not reset")
	}
}

func TestGameHeadless(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 7, 3
	cfg.Interval = 0
	cfg.MaxSteps = 2
	cfg.Template = "blinker"
	c := view.NewCanvas(7, 3)
	g, err := New(Options{Config: cfg, Surface: c})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := "·······\n··♦♦♦··\n·······"
	if c.String() != want {
		t.Fatalf("got\n%v", c)
	}
	res := g.Results()
	if res["Last iteration"] != 2 || res["Live cells"] != 3 {
		t.Errorf("unexpected results %v", res)
	}
}

func TestGameStartsWithSetup(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 10, 10
	cfg.Interval = 0
	cfg.MaxSteps = 1
	keys := view.NewKeyboard(5)
	keys.Press(view.KeyDelete)
	keys.Press(view.KeyEscape)
	help := &fakeHelp{}
	g, err := New(Options{Config: cfg, Surface: view.NewCanvas(10, 10), Keys: keys, Help: help})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, ok := keys.Poll(); ok {
		t.Error("setup mode did not consume the keys")
	}
	if g.Buffer().Active().LiveCells() != 0 {
		t.Error("grid should stay empty")
	}
}

func TestGameUnknownTemplate(t *testing.T) {
	cfg := config.Default()
	cfg.Template = "unknown"
	if _, err := New(Options{Config: cfg, Surface: view.NewCanvas(1, 1)}); err == nil {
		t.Fatal("expected an error")
	}
}
