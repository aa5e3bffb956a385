package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"gameoflife/src/universe"
)

// Args is the command line parser
// the positional arguments are "speed" or "speed width height", without them the options are prompted
type Args struct {
	p      *flaggy.Parser
	speed  string
	width  string
	height string
	alive  string
	dead   string
	cfg    Config
}

// NewArgs creates the parser for the program name
func NewArgs(name string) *Args {
	a := Args{cfg: Default()}
	a.alive = string(a.cfg.Alive)
	a.dead = string(a.cfg.Dead)

	p := flaggy.NewParser(name)
	p.Description = "Conway's \"The Life\" game simulation in the terminal"
	p.ShowHelpOnUnexpected = false
	p.ShowVersionWithVersionFlag = false
	p.AdditionalHelpAppend = "\nWithout the positional arguments the options are asked interactively.\n" +
		"Ranges: speed " + rangeOf(MinSpeed, MaxSpeed) + " ms, width " + rangeOf(MinWidth, MaxWidth) +
		", height " + rangeOf(MinHeight, MaxHeight) + "."

	p.AddPositionalValue(&a.speed, "speed", 1, false, "refresh interval in milliseconds")
	p.AddPositionalValue(&a.width, "width", 2, false, "grid width in characters")
	p.AddPositionalValue(&a.height, "height", 3, false, "grid height in characters")
	p.String(&a.alive, "a", "alive", "Symbol of the live cell")
	p.String(&a.dead, "d", "dead", "Symbol of the dead cell")
	p.Int64(&a.cfg.Seed, "s", "seed", "Seed of the soup generator, 0 is time based")
	p.String(&a.cfg.Template, "t", "template", "Settle the template on start ["+strings.Join(universe.TemplateNames(), "|")+"]")
	p.Int(&a.cfg.MaxSteps, "n", "steps", "Run maxSteps generations without the terminal and print the result")
	p.String(&a.cfg.LogFile, "l", "log", "Write the diagnostic log to the file")
	a.p = p
	return &a
}

// Parse parses the arguments (without the program name)
// interactive is true when the numeric options should be prompted
func (a *Args) Parse(args []string) (cfg Config, interactive bool, err error) {
	if err = checkArgs(args); err != nil {
		return
	}
	if err = a.p.ParseArgs(args); err != nil {
		return cfg, false, &ConfigurationError{Reason: err.Error()}
	}
	cfg = a.cfg

	if cfg.Alive, err = parseSymbol("alive", a.alive); err != nil {
		return
	}
	if cfg.Dead, err = parseSymbol("dead", a.dead); err != nil {
		return
	}
	if cfg.Template != "" {
		if err = checkTemplate(cfg.Template); err != nil {
			return
		}
	}

	switch {
	case a.speed == "":
		//nothing to parse, the options are prompted unless the run is headless
		interactive = cfg.MaxSteps == 0
	case a.width == "" && a.height == "":
		if cfg.Interval, err = parseSpeed(a.speed); err != nil {
			return
		}
	case a.width != "" && a.height != "":
		if cfg.Interval, err = parseSpeed(a.speed); err != nil {
			return
		}
		if cfg.Width, err = parseInt("width", a.width); err != nil {
			return
		}
		if cfg.Height, err = parseInt("height", a.height); err != nil {
			return
		}
	default:
		err = invalid("expected speed or speed, width and height")
		return
	}

	err = cfg.Validate()
	return
}

// Usage prints the help with the message
func (a *Args) Usage(message string) {
	a.p.ShowHelpWithMessage(message)
}

// valueFlags are the flags followed by their value, true when the value is separate
var valueFlags = map[string]bool{
	"-a": true, "--alive": true,
	"-d": true, "--dead": true,
	"-s": true, "--seed": true,
	"-t": true, "--template": true,
	"-n": true, "--steps": true,
	"-l": true, "--log": true,
	"-h": false, "--help": false,
}

// checkArgs rejects what flaggy would skip silently:
// unknown flags, negative numbers taken for flags and the positional count other than 0, 1 or 3
func checkArgs(args []string) error {
	positional := 0
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional += len(args) - i - 1
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positional++
			continue
		}
		if _, err := strconv.Atoi(arg); err == nil {
			return invalid("negative value %v", arg)
		}
		name := arg
		if eq := strings.IndexByte(arg, '='); eq > 0 {
			name = arg[:eq]
		}
		separate, ok := valueFlags[name]
		if !ok {
			return invalid("unknown flag %v", name)
		}
		if separate && name == arg {
			i++
		}
	}
	switch positional {
	case 0, 1, 3:
		return nil
	}
	return invalid("expected speed or speed, width and height, got %v arguments", positional)
}

func parseSpeed(s string) (d time.Duration, err error) {
	ms, err := parseInt("speed", s)
	if err != nil {
		return 0, err
	}
	//checked before the conversion, a huge value overflows the Duration
	if ms < MinSpeed || ms > MaxSpeed {
		return 0, invalid("speed %v is out of range %v-%v", ms, MinSpeed, MaxSpeed)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func parseInt(name string, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid("%s %q is not a number", name, s)
	}
	return v, nil
}

func checkTemplate(name string) error {
	for _, n := range universe.TemplateNames() {
		if n == name {
			return nil
		}
	}
	return invalid("unknown template %q", name)
}

func rangeOf(min int, max int) string {
	return strconv.Itoa(min) + "-" + strconv.Itoa(max)
}
