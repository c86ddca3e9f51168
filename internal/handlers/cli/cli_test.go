package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/gabapcia/reconwatch/internal/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceStub struct {
	reconcileOrder func(ctx context.Context, orderID string) error
	run            func(ctx context.Context) error
}

func (s *serviceStub) ReconcileOrder(ctx context.Context, orderID string) error {
	return s.reconcileOrder(ctx, orderID)
}

func (s *serviceStub) Run(ctx context.Context) error {
	return s.run(ctx)
}

type queueWriterStub struct {
	enqueue func(ctx context.Context, network, orderID string) error
}

func (s *queueWriterStub) Enqueue(ctx context.Context, network, orderID string) error {
	return s.enqueue(ctx, network, orderID)
}

func TestStartConsumerCommand(t *testing.T) {
	t.Run("refuses to start without explorer access", func(t *testing.T) {
		started := false
		svc := &serviceStub{
			run: func(ctx context.Context) error {
				started = true
				return nil
			},
		}

		cmd := startConsumerCommand(svc, false)
		err := cmd.Run(t.Context(), []string{"start"})

		require.ErrorIs(t, err, reconcile.ErrExplorerNotConfigured)
		assert.False(t, started)
	})

	t.Run("runs the consumer until it returns", func(t *testing.T) {
		started := false
		svc := &serviceStub{
			run: func(ctx context.Context) error {
				started = true
				return nil
			},
		}

		cmd := startConsumerCommand(svc, true)
		err := cmd.Run(t.Context(), []string{"start"})

		require.NoError(t, err)
		assert.True(t, started)
	})

	t.Run("cancellation is a clean shutdown", func(t *testing.T) {
		svc := &serviceStub{
			run: func(ctx context.Context) error {
				return context.Canceled
			},
		}

		cmd := startConsumerCommand(svc, true)
		err := cmd.Run(t.Context(), []string{"start"})

		assert.NoError(t, err)
	})

	t.Run("consumer failures propagate", func(t *testing.T) {
		runErr := errors.New("queue unavailable")

		svc := &serviceStub{
			run: func(ctx context.Context) error {
				return runErr
			},
		}

		cmd := startConsumerCommand(svc, true)
		err := cmd.Run(t.Context(), []string{"start"})

		assert.ErrorIs(t, err, runErr)
	})
}

func TestEnqueueOrderCommand(t *testing.T) {
	t.Run("pushes the order id onto the network queue", func(t *testing.T) {
		var gotNetwork, gotOrderID string
		queue := &queueWriterStub{
			enqueue: func(ctx context.Context, network, orderID string) error {
				gotNetwork = network
				gotOrderID = orderID
				return nil
			},
		}

		cmd := enqueueOrderCommand(queue, "ethereum")
		err := cmd.Run(t.Context(), []string{"enqueue", "order-1"})

		require.NoError(t, err)
		assert.Equal(t, "ethereum", gotNetwork)
		assert.Equal(t, "order-1", gotOrderID)
	})

	t.Run("missing order id fails", func(t *testing.T) {
		called := false
		queue := &queueWriterStub{
			enqueue: func(ctx context.Context, network, orderID string) error {
				called = true
				return nil
			},
		}

		cmd := enqueueOrderCommand(queue, "ethereum")
		err := cmd.Run(t.Context(), []string{"enqueue"})

		require.ErrorIs(t, err, ErrMissingOrderID)
		assert.False(t, called)
	})

	t.Run("queue failures propagate", func(t *testing.T) {
		queueErr := errors.New("redis down")

		queue := &queueWriterStub{
			enqueue: func(ctx context.Context, network, orderID string) error {
				return queueErr
			},
		}

		cmd := enqueueOrderCommand(queue, "ethereum")
		err := cmd.Run(t.Context(), []string{"enqueue", "order-1"})

		assert.ErrorIs(t, err, queueErr)
	})
}
