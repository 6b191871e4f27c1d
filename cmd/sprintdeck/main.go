package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/sprintdeck/internal/cli"
	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context) int {
	c := cli.New(os.Stderr, cli.LogInfo)
	observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))

	err := c.RootCommand().ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130 // Standard shell convention for SIGINT
	}

	msg := errs.UserMessage(err)
	var e *errs.Error
	if errors.As(err, &e) && e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	cli.PrintError(os.Stderr, "%s", msg)
	return errs.ExitCode(err)
}
