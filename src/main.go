package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"gameoflife/src/config"
	"gameoflife/src/game"
	"gameoflife/src/view"
)

// terminal is the display owning the process terminal
type terminal interface {
	view.Surface
	view.Suspender
	Pump(ctx context.Context, k *view.Keyboard) error
	Close()
}

func newTerminal() (terminal, error) {
	return view.NewTermSurface()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, newTerminal))
}

func run(args []string, stdin io.Reader, stdout io.Writer, newTerm func() (terminal, error)) (code int) {
	out := view.NewConsoleOut(stdout, true)
	defer func() {
		if r := recover(); r != nil {
			out.Error(fmt.Errorf("%v", r))
			code = 1
		}
	}()

	a := config.NewArgs("gameoflife")
	cfg, interactive, err := a.Parse(args)
	var ce *config.ConfigurationError
	if errors.As(err, &ce) {
		a.Usage(ce.Error())
		return 0
	} else if err != nil {
		out.Error(err)
		return 1
	}
	if interactive {
		cfg = config.NewPrompter(stdin, stdout, true).Prompt(cfg)
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		out.Error(err)
		return 1
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("configuration: %v, seed %v", cfg.Summary(), seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var g *game.Game
	if cfg.MaxSteps > 0 {
		g, err = runHeadless(ctx, cfg, rand.New(rand.NewSource(seed)), logger, out)
	} else {
		g, err = runTerminal(ctx, cfg, rand.New(rand.NewSource(seed)), logger, newTerm)
	}

	if err != nil && !errors.Is(err, view.ErrInterrupted) && !errors.Is(err, context.Canceled) {
		logger.Printf("failed: %+v", err)
		out.Error(err)
		return 1
	}
	if g != nil {
		out.Finish(g.Results())
	}
	return 0
}

// runHeadless runs the configured count of generations on the in-memory surface, like a benchmark
func runHeadless(ctx context.Context, cfg config.Config, rnd *rand.Rand, logger *log.Logger, out *view.ConsoleOut) (*game.Game, error) {
	g, err := game.New(game.Options{
		Config:  cfg,
		Surface: view.NewCanvas(cfg.Width, cfg.Height),
		Rand:    rnd,
		Log:     logger,
	})
	if err != nil {
		return nil, err
	}
	out.Start(cfg.Summary())
	return g, g.Run(ctx)
}

// runTerminal runs the setup and the live modes on the terminal until Ctrl+C or the signal
func runTerminal(ctx context.Context, cfg config.Config, rnd *rand.Rand, logger *log.Logger, newTerm func() (terminal, error)) (*game.Game, error) {
	term, err := newTerm()
	if err != nil {
		return nil, err
	}
	keys := view.NewKeyboard(16)
	g, err := game.New(game.Options{
		Config:  cfg,
		Surface: term,
		Keys:    keys,
		Help:    view.NewHelpScreen(term),
		Rand:    rnd,
		Log:     logger,
	})
	if err != nil {
		term.Close()
		return nil, err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		//the terminal is restored and cleared before any message is printed
		defer term.Close()
		return g.Run(ctx)
	})
	eg.Go(func() error {
		return term.Pump(ctx, keys)
	})
	return g, eg.Wait()
}

func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %v", path)
	}
	return log.New(f, "gameoflife ", log.LstdFlags), func() { _ = f.Close() }, nil
}
