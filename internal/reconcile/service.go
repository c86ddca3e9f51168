// Package reconcile implements the missed-deposit reconciliation core: task
// intake from a queue, candidate-transaction filtering, value
// reconstruction including fee overpayment, and at-most-once crediting
// through an idempotent ledger call.
package reconcile

import (
	"context"

	"github.com/gabapcia/reconwatch/internal/pkg/resilience/retry"
)

const defaultScanConcurrency = 10

// Service is the reconciliation entrypoint.
type Service interface {
	// ReconcileOrder back-fills missed deposits for a single order id.
	ReconcileOrder(ctx context.Context, orderID string) error

	// Run consumes order ids from the task queue until ctx is canceled.
	Run(ctx context.Context) error
}

type service struct {
	method NativeMethod

	orders    OrderStorage
	blockTime BlockTimeResolver
	history   TransactionHistory
	node      ChainNode
	ledger    CreditLedger
	queue     TaskQueue

	retry           retry.Retry
	candidateLimit  int
	scanConcurrency int
}

var _ Service = (*service)(nil)

type config struct {
	retry           retry.Retry
	candidateLimit  int
	scanConcurrency int
}

// Option customizes the service built by New.
type Option func(*config)

// New wires the reconciliation service with its collaborators. All
// dependencies are passed explicitly; there is no ambient lookup.
func New(
	method NativeMethod,
	orders OrderStorage,
	blockTime BlockTimeResolver,
	history TransactionHistory,
	node ChainNode,
	ledger CreditLedger,
	queue TaskQueue,
	opts ...Option,
) *service {
	cfg := config{
		retry:           nil,
		candidateLimit:  defaultCandidateLimit,
		scanConcurrency: defaultScanConcurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		method:          method,
		orders:          orders,
		blockTime:       blockTime,
		history:         history,
		node:            node,
		ledger:          ledger,
		queue:           queue,
		retry:           cfg.retry,
		candidateLimit:  cfg.candidateLimit,
		scanConcurrency: cfg.scanConcurrency,
	}
}

// WithDequeueRetry sets the retry policy applied to transient queue errors.
func WithDequeueRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCandidateLimit overrides how many recent positive-value transactions
// are inspected per order.
func WithCandidateLimit(n int) Option {
	return func(c *config) {
		c.candidateLimit = n
	}
}

// WithScanConcurrency bounds the number of simultaneous node lookups during
// the candidate scan.
func WithScanConcurrency(n int) Option {
	return func(c *config) {
		c.scanConcurrency = n
	}
}
