package reconcile

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// CreditLedger is the idempotent external crediting service.
type CreditLedger interface {
	// Credit asks the ledger to credit the order for the given transaction.
	// The uniqueID makes the call idempotent: the ledger returns true only
	// when this call newly created a credit, and false when an equivalent
	// credit already exists or the order cannot accept further credit.
	// Both false outcomes mean the same thing to the caller: nothing left
	// to do for this transaction.
	Credit(ctx context.Context, orderID, txID, amount, uniqueID string) (bool, error)
}

// UniqueID derives the idempotency key for crediting a transaction under a
// deposit method. The same (method, hash) pair always produces the same id,
// so queue redelivery or task re-runs cannot create a duplicate credit.
func UniqueID(depositMethodID, txHash string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s", depositMethodID, txHash))
	return hex.EncodeToString(sum[:])
}
