package view

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

func TestKeyboard(t *testing.T) {
	k := NewKeyboard(2)
	if _, ok := k.Poll(); ok {
		t.Fatal("poll of the empty keyboard must not return a key")
	}
	k.Press(KeyUp)
	k.Press(KeySoup)
	if k.Press(KeyDown) {
		t.Fatal("the key must be dropped when the queue is full")
	}
	if n := k.Dropped(); n != 1 {
		t.Fatalf("got %v dropped keys", n)
	}
	if n := k.Dropped(); n != 0 {
		t.Fatalf("got %v dropped keys after the reset", n)
	}
	if key, ok := k.Poll(); !ok || key != KeyUp {
		t.Fatalf("got %v %v", key, ok)
	}
	key, err := k.Next(context.Background())
	if err != nil || key != KeySoup {
		t.Fatalf("got %v %v", key, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := k.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Key
	}{
		{tcell.KeyUp, 0, KeyUp},
		{tcell.KeyDown, 0, KeyDown},
		{tcell.KeyLeft, 0, KeyLeft},
		{tcell.KeyRight, 0, KeyRight},
		{tcell.KeyEnter, 0, KeyEnter},
		{tcell.KeyDelete, 0, KeyDelete},
		{tcell.KeyBackspace2, 0, KeyDelete},
		{tcell.KeyEscape, 0, KeyEscape},
		{tcell.KeyRune, 'h', KeyHelp},
		{tcell.KeyRune, 'S', KeySoup},
		{tcell.KeyRune, 'q', KeyQuit},
		{tcell.KeyRune, 'z', KeyUnknown},
		{tcell.KeyTab, 0, KeyUnknown},
	}
	for _, tt := range tests {
		if got := translateKey(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)); got != tt.want {
			t.Errorf("key %v rune %q: got %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func newSimulationSurface(t *testing.T) (*TermSurface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	ts, err := newTermSurface(screen)
	if err != nil {
		t.Fatal(err)
	}
	screen.SetSize(20, 10)
	return ts, screen
}

func TestTermSurfaceSetCell(t *testing.T) {
	ts, screen := newSimulationSurface(t)
	defer ts.Close()

	ts.SetCell(3, 2, '#')
	ts.Show()
	if r, _, _, _ := screen.GetContent(3, 2); r != '#' {
		t.Fatalf("got %q", r)
	}
	ts.Clear()
	ts.Show()
	if r, _, _, _ := screen.GetContent(3, 2); r == '#' {
		t.Fatal("cell is not cleared")
	}
}

func TestPump(t *testing.T) {
	ts, screen := newSimulationSurface(t)
	defer ts.Close()

	k := NewKeyboard(10)
	done := make(chan error, 1)
	go func() {
		done <- ts.Pump(context.Background(), k)
	}()

	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	screen.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, want := range []Key{KeySoup, KeyEscape} {
		got, err := k.Next(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)
	select {
	case err := <-done:
		if err != ErrInterrupted {
			t.Fatalf("expected interruption, got %v", err)
		}
	case <-ctx.Done():
		t.Fatal("pump did not stop on Ctrl+C")
	}
}
