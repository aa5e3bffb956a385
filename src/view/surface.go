package view

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Surface is the character display the grid is drawn on
type Surface interface {
	SetCell(x int, y int, r rune)
	Clear()
	ShowCursor(x int, y int)
	HideCursor()
	//Show makes all changes since the last call visible
	Show()
}

// TermSurface is the Surface drawn to the terminal by tcell
type TermSurface struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTermSurface initializes the terminal screen
func NewTermSurface() (*TermSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	return newTermSurface(screen)
}

func newTermSurface(screen tcell.Screen) (*TermSurface, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	t := TermSurface{screen: screen, style: tcell.StyleDefault}
	screen.SetStyle(t.style)
	screen.HideCursor()
	screen.Clear()
	return &t, nil
}

func (t *TermSurface) SetCell(x int, y int, r rune) {
	t.screen.SetContent(x, y, r, nil, t.style)
}

func (t *TermSurface) Clear() {
	t.screen.Clear()
}

func (t *TermSurface) ShowCursor(x int, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *TermSurface) HideCursor() {
	t.screen.HideCursor()
}

func (t *TermSurface) Show() {
	t.screen.Show()
}

// Size returns the terminal size
func (t *TermSurface) Size() (int, int) {
	return t.screen.Size()
}

// Suspend releases the terminal so another program can use it
func (t *TermSurface) Suspend() error {
	return errors.Wrap(t.screen.Suspend(), "suspend terminal screen")
}

// Resume takes the terminal back after Suspend
func (t *TermSurface) Resume() error {
	return errors.Wrap(t.screen.Resume(), "resume terminal screen")
}

// Close restores the terminal, the screen is cleared
func (t *TermSurface) Close() {
	t.screen.Fini()
}

// Pump reads the terminal events and feeds the keyboard until the screen is closed
// Ctrl+C is not queued, Pump returns ErrInterrupted for it
func (t *TermSurface) Pump(ctx context.Context, k *Keyboard) error {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			//the screen is finalized
			return nil
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if kev.Key() == tcell.KeyCtrlC {
			return ErrInterrupted
		}
		key := translateKey(kev)
		if key == KeyUnknown {
			continue
		}
		if ctx.Err() != nil {
			continue
		}
		k.Press(key)
	}
}

func translateKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyDelete
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'H':
			return KeyHelp
		case 's', 'S':
			return KeySoup
		case 'q', 'Q':
			return KeyQuit
		}
	}
	return KeyUnknown
}
