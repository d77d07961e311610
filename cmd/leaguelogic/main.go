// Command leaguelogic validates OpenAPI documents and summarizes the tip log.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/leaguelogic/internal/cli"
	"github.com/okian/leaguelogic/pkg/logger"
)

func main() {
	// Diagnostics go to stderr so stdout stays clean for results
	if err := logger.Init(logger.WithWriter(os.Stderr)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	_ = logger.SetLevelString("warn")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
