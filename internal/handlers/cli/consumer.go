package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/gabapcia/reconwatch/internal/reconcile"

	"github.com/urfave/cli/v3"
)

// startConsumerCommand returns the CLI command that runs the reconciliation
// consumer loop. The process runs until SIGINT or SIGTERM.
//
// When the explorer is unconfigured the command fails before pulling a
// single task: a worker that cannot resolve block heights or list
// transaction histories has nothing useful to do with a task.
func startConsumerCommand(svc reconcile.Service, explorerConfigured bool) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the reconciliation consumer, processing order ids from the task queue.",
		Usage:       "Runs until Ctrl+C or a termination signal.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if !explorerConfigured {
				return reconcile.ErrExplorerNotConfigured
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			return nil
		},
	}
}
