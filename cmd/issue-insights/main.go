// Package main is the entry point for the issue-insights CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("issue-insights failed", "error", err)
		stop()
		os.Exit(errors.ExitCode(err))
	}
}
