package cli

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
)

// ErrMissingOrderID is returned when the enqueue command is invoked without
// an order id argument.
var ErrMissingOrderID = errors.New("missing order id argument")

// enqueueOrderCommand returns the CLI command that schedules an order for
// reconciliation by pushing its id onto the network queue.
//
// Usage example:
//
//	reconwatch enqueue 0d6f7f1e-5a0a-4c5e-9c7b-2f85c8f0f2a4
func enqueueOrderCommand(queue QueueWriter, network string) *cli.Command {
	return &cli.Command{
		Name:        "enqueue",
		Description: "Pushes an order id onto the reconciliation queue for this network.",
		Usage:       "reconwatch enqueue <order-id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			orderID := c.Args().First()
			if orderID == "" {
				return ErrMissingOrderID
			}

			return queue.Enqueue(ctx, network, orderID)
		},
	}
}
