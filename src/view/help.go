package view

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// KeyBinding is one line of the help screen
type KeyBinding struct {
	Name  string
	Descr string
}

// KeyBindings describes the commands of the game in the order they are shown on the help screen
var KeyBindings = []KeyBinding{
	{"H", "Toggle this help screen"},
	{"Escape", "Toggle between setup and live mode"},
	{"Q", "Enter setup mode from live mode"},
	{"Up/Down/Left/Right", "Position cursor in setup mode"},
	{"Enter", "Toggle the current cell"},
	{"Delete", "Clear grid"},
	{"S", "Generate soup (a random distribution of live and dead cells)"},
	{"Ctrl + C", "Exit program"},
}

// Suspender is the Surface owning the terminal which should release it while the help is shown
type Suspender interface {
	Suspend() error
	Resume() error
}

// HelpScreen shows the key bindings on its own screen
type HelpScreen struct {
	owner Suspender
	au    aurora.Aurora
}

// NewHelpScreen creates the help screen, owner is suspended while the help is visible
func NewHelpScreen(owner Suspender) *HelpScreen {
	return &HelpScreen{owner: owner, au: aurora.NewAurora(true)}
}

// HelpText returns the help content
func HelpText(au aurora.Aurora) string {
	b := bytes.Buffer{}
	b.WriteString("Commands:\n")
	for _, k := range KeyBindings {
		b.WriteString(au.Green(k.Name).String())
		b.WriteString(" - ")
		b.WriteString(k.Descr)
		b.WriteByte('\n')
	}
	b.WriteString("\nPress enter to continue... ")
	return b.String()
}

// Show displays the help and blocks until it is dismissed by Enter, Escape or H
func (h *HelpScreen) Show() (err error) {
	if h.owner != nil {
		if err = h.owner.Suspend(); err != nil {
			return err
		}
		defer func() {
			if rerr := h.owner.Resume(); rerr != nil && err == nil {
				err = rerr
			}
		}()
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return errors.Wrap(err, "create help screen")
	}
	defer g.Close()

	g.SetManagerFunc(h.layout)
	for _, key := range []interface{}{gocui.KeyEnter, gocui.KeyEsc, 'h', 'H'} {
		if err = g.SetKeybinding("", key, gocui.ModNone, quit); err != nil {
			return errors.Wrap(err, "help screen key binding")
		}
	}
	if err = g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "help screen")
	}
	return nil
}

func quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func (h *HelpScreen) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if _, err := h.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}
	if v, err := g.SetView("help", 0, 3, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Help"
		v.Frame = true
		v.Wrap = true
		_, _ = fmt.Fprint(v, HelpText(h.au))
	}
	return nil
}

func (h *HelpScreen) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	}
	return
}
