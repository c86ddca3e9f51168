package reconcile

import (
	"context"
	"errors"

	"github.com/gabapcia/reconwatch/internal/pkg/logger"
)

// ErrExplorerNotConfigured is returned by Run when the service was built
// without explorer access. Configuration absence is a startup condition:
// the consumer must not pull a single task it cannot process.
var ErrExplorerNotConfigured = errors.New("explorer not configured")

// TaskQueue delivers order ids awaiting reconciliation. Delivery is
// at-least-once with no ordering guarantee, so the same id may arrive again
// after a crash mid-processing; the unique-id-keyed credit call makes that
// safe end to end.
type TaskQueue interface {
	// Dequeue blocks until an order id is available on the network's queue,
	// an internal poll timeout elapses (empty id, nil error), or ctx ends.
	Dequeue(ctx context.Context, network string) (string, error)
}

// Run pulls order ids from the per-network queue and reconciles them one at
// a time until ctx is canceled. Per-task failures are logged and never stop
// the loop; the consumer survives an unbounded sequence of them. Transient
// dequeue failures are retried with backoff when a retry policy is set.
func (s *service) Run(ctx context.Context) error {
	if s.blockTime == nil || s.history == nil {
		return ErrExplorerNotConfigured
	}

	logger.Info(ctx, "reconciliation consumer started", "queue.network", s.method.Network)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		orderID, err := s.dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			logger.Error(ctx, "dequeue failed", "queue.network", s.method.Network, "error", err)
			continue
		}

		if orderID == "" {
			continue
		}

		if err := s.ReconcileOrder(ctx, orderID); err != nil {
			logger.Error(ctx, "order reconciliation failed",
				"order.id", orderID,
				"error", err,
			)
		}
	}
}

// dequeue reads the next order id, applying the configured retry policy to
// transient queue errors.
func (s *service) dequeue(ctx context.Context) (string, error) {
	if s.retry == nil {
		return s.queue.Dequeue(ctx, s.method.Network)
	}

	var orderID string
	err := s.retry.Execute(ctx, func() error {
		id, err := s.queue.Dequeue(ctx, s.method.Network)
		if err != nil {
			return err
		}

		orderID = id
		return nil
	})

	return orderID, err
}
