package reconcile

import (
	"context"
	"errors"
)

// ErrTransactionNotFound is returned by ChainNode when it does not know the
// requested hash. Node and explorer indexes are not perfectly synchronized,
// so a miss is expected and the candidate is simply skipped.
var ErrTransactionNotFound = errors.New("transaction not found")

// ChainNode fetches full transaction detail directly from a chain node.
type ChainNode interface {
	// GetTransaction returns the transaction with the given hash, or
	// ErrTransactionNotFound when the node is unaware of it.
	GetTransaction(ctx context.Context, hash string) (FullTransaction, error)
}
