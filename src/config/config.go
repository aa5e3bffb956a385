package config

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// default options
const (
	DefSpeed  = 300
	DefWidth  = 80
	DefHeight = 40
	DefAlive  = '♦'
	DefDead   = '·'

	MinSpeed  = 50
	MaxSpeed  = 10000
	MinWidth  = 10
	MaxWidth  = 150
	MinHeight = 5
	MaxHeight = 80
)

// Config represents the validated simulation configuration
type Config struct {
	Interval time.Duration
	Width    int
	Height   int
	Alive    rune
	Dead     rune
	Seed     int64  // soup random seed, 0 means time based
	Template string // built-in template settled on start
	MaxSteps int    // 0 is unlimited, positive value runs without the terminal
	LogFile  string
}

// Default returns the configuration used when nothing is specified
func Default() Config {
	return Config{
		Interval: DefSpeed * time.Millisecond,
		Width:    DefWidth,
		Height:   DefHeight,
		Alive:    DefAlive,
		Dead:     DefDead,
	}
}

// ConfigurationError is returned for malformed or out of range arguments
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func invalid(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// Speed returns the tick interval in milliseconds
func (c Config) Speed() int {
	return int(c.Interval / time.Millisecond)
}

// Validate checks the ranges of the numeric options and the symbols
func (c Config) Validate() error {
	if s := c.Speed(); s < MinSpeed || s > MaxSpeed {
		return invalid("speed %v is out of range %v-%v", s, MinSpeed, MaxSpeed)
	}
	if c.Width < MinWidth || c.Width > MaxWidth {
		return invalid("width %v is out of range %v-%v", c.Width, MinWidth, MaxWidth)
	}
	if c.Height < MinHeight || c.Height > MaxHeight {
		return invalid("height %v is out of range %v-%v", c.Height, MinHeight, MaxHeight)
	}
	if c.Alive == c.Dead {
		return invalid("alive and dead symbols must differ")
	}
	if c.MaxSteps < 0 {
		return invalid("steps %v must not be negative", c.MaxSteps)
	}
	return nil
}

// Summary describes the configuration for the console output
func (c Config) Summary() map[string]interface{} {
	s := map[string]interface{}{
		"Dimension": fmt.Sprintf("%v x %v", c.Width, c.Height),
		"Interval":  c.Interval,
		"Symbols":   fmt.Sprintf("alive %q, dead %q", c.Alive, c.Dead),
	}
	if c.MaxSteps > 0 {
		s["Iterations"] = fmt.Sprintf("%v steps", c.MaxSteps)
	}
	if c.Template != "" {
		s["Template"] = c.Template
	}
	return s
}

func parseSymbol(name string, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, invalid("%s symbol must be exactly one character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
