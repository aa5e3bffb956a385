package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
)

// Prompter asks the numeric options interactively
// unparsable or out of range answers fall back to the defaults
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	au  aurora.Aurora
}

func NewPrompter(in io.Reader, out io.Writer, colors bool) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, au: aurora.NewAurora(colors)}
}

// Prompt fills speed, width and height of cfg
func (p *Prompter) Prompt(cfg Config) Config {
	_, _ = fmt.Fprintln(p.out, p.au.Cyan("Running interactively."))
	cfg.Interval = time.Duration(p.ask("Set speed (in milliseconds): ", "speed", MinSpeed, MaxSpeed, DefSpeed)) * time.Millisecond
	cfg.Width = p.ask("Set console width: ", "width", MinWidth, MaxWidth, DefWidth)
	cfg.Height = p.ask("Set console height: ", "height", MinHeight, MaxHeight, DefHeight)
	return cfg
}

func (p *Prompter) ask(question string, name string, min int, max int, def int) int {
	_, _ = fmt.Fprint(p.out, p.au.Green(question))
	if !p.in.Scan() {
		_, _ = fmt.Fprintln(p.out)
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
	if err != nil {
		return def
	}
	if v < min || v > max {
		_, _ = fmt.Fprintln(p.out, p.au.Yellow(fmt.Sprintf("%s out of range, using default value: %v", name, def)))
		return def
	}
	return v
}
