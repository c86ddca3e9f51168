package cli

import (
	"context"
	"os"

	"github.com/gabapcia/reconwatch/internal/reconcile"

	"github.com/urfave/cli/v3"
)

// QueueWriter pushes order ids onto a network's reconciliation queue. It is
// the producer-side counterpart of reconcile.TaskQueue.
type QueueWriter interface {
	Enqueue(ctx context.Context, network, orderID string) error
}

// Run builds and executes the reconwatch CLI application.
//
// Registered commands:
//
//   - `start`: runs the reconciliation consumer until interrupted.
//   - `enqueue`: pushes an order id onto the network queue.
func Run(ctx context.Context, svc reconcile.Service, queue QueueWriter, network string, explorerConfigured bool) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "reconwatch",
		Description:           "Command-line interface for the missed-deposit reconciliation worker.",
		Usage:                 "reconwatch [command] [flags]",
		Commands: []*cli.Command{
			startConsumerCommand(svc, explorerConfigured),
			enqueueOrderCommand(queue, network),
		},
	}

	return app.Run(ctx, os.Args)
}
