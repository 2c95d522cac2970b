package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tartampluch/go-birthfacts/internal/cli"
	"github.com/tartampluch/go-birthfacts/internal/config"
)

// main is the application entry point.
// It delegates execution to runMain so that deferred calls run before
// os.Exit, which does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain runs the command line under a context cancelled on SIGINT or SIGTERM.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// cobra has already printed the error; the log keeps a structured trace.
	if err := cli.Execute(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Debug(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}
