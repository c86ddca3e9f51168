package reconcile

import (
	"context"
	"errors"
	"time"
)

// ErrOrderNotFound is returned by OrderStorage when no order matches the
// lookup. It is an expected outcome, not a failure: orders disappear when
// completed elsewhere, and unrelated senders have no order at all.
var ErrOrderNotFound = errors.New("order not found")

// Order is the read-only order record owned by the external order service.
// This worker never mutates it.
type Order struct {
	ID              string
	DepositMethodID string

	// DepositAddress is nil when the address was unassigned after the order
	// completed or was canceled.
	DepositAddress *string

	// CreatedAt bounds the block-height search: deposits for this order can
	// only exist at or after the block mined around this time.
	CreatedAt time.Time
}

// NativeMethod describes the native-asset deposit method this worker
// reconciles. It is configuration and never mutated at runtime.
type NativeMethod struct {
	Asset    string // asset symbol, e.g. "ETH"
	ID       string // deposit method identifier used as Order.DepositMethodID
	Account  string // receiving account deposits must be paid to
	Network  string // network identifier namespacing the task queue
	Decimals int    // smallest-unit decimals used for major-unit rendering
}

// OrderStorage is the keyed record store holding orders. Implementations are
// thin clients over the external order service.
type OrderStorage interface {
	// GetByID returns the order with the given id, or ErrOrderNotFound when
	// it does not exist.
	GetByID(ctx context.Context, id string) (Order, error)

	// FindByDepositAddress resolves the order whose recorded deposit address
	// equals address under the given deposit method. The store enforces
	// uniqueness of active deposit addresses per method, so at most one
	// order can match. Returns ErrOrderNotFound when none does.
	FindByDepositAddress(ctx context.Context, depositMethodID, address string) (Order, error)
}
