// Package main is the entry point for Mystery Machine.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/samdwyer/mysterymachine/internal/config"
	"github.com/samdwyer/mysterymachine/internal/game"
	"github.com/samdwyer/mysterymachine/internal/logger"
	"github.com/samdwyer/mysterymachine/internal/rng"
	"github.com/samdwyer/mysterymachine/internal/storage"
	"github.com/samdwyer/mysterymachine/internal/telemetry"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

// Exit codes
const (
	exitOK          = 0
	exitIOError     = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Settings come from an optional .env file, never the environment
	settings, settingsErr := config.Load(config.DefaultFile)

	closeLog, err := logger.Init(settings.Logger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Note: logging disabled: %v\n", err)
	}
	defer closeLog()
	if settingsErr != nil {
		logger.Log.WithError(settingsErr).Warn("Settings file partly ignored")
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, settings.Telemetry())
	if err != nil {
		logger.Log.WithError(err).Warn("Telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Log.WithError(err).Warn("Error shutting down telemetry")
			}
		}()
	}

	cfg := game.DefaultConfig()
	cfg.Seed = settings.Seed

	timing := ui.DefaultTiming
	timing.Pause = cfg.Pace

	out, closeOut, err := newPresenter(timing)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to initialize terminal")
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return exitIOError
	}

	// The presenters panic with a sentinel when input ends or the player
	// interrupts; anything else is a bug and keeps panicking.
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		closeOut()
		err, ok := r.(error)
		switch {
		case ok && errors.Is(err, ui.ErrInterrupted):
			logger.Log.Info("Interrupted")
			code = exitInterrupted
		case ok && errors.Is(err, ui.ErrInputClosed):
			logger.Log.Info("Input closed")
			code = exitIOError
		default:
			logger.Log.WithField("panic", r).Error("Invariant violated")
			panic(r)
		}
	}()

	g := game.New(cfg, out, rng.New(cfg.Seed), storage.NewFileSlot(cfg.SavePath))
	if err := g.Run(ctx); err != nil {
		closeOut()
		logger.Log.WithError(err).Error("Game error")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		return exitIOError
	}

	closeOut()
	return exitOK
}

// newPresenter returns a full-screen console when attached to a terminal,
// and a plain stream otherwise. The close function is safe to call twice.
func newPresenter(timing ui.Timing) (ui.Presenter, func(), error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ui.NewStream(os.Stdin, os.Stdout, timing), func() {}, nil
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	closed := false
	closeScreen := func() {
		if !closed {
			closed = true
			screen.Close()
		}
	}
	return ui.NewConsole(screen, timing), closeScreen, nil
}
