package reconcile

import (
	"context"
	"time"
)

// defaultCandidateLimit caps how many recent transactions are inspected per
// order. Explorers can return long histories; only a bounded recent window
// is worth the node-lookup fan-out.
const defaultCandidateLimit = 10

// CandidateTransaction is the minimal transaction shape returned by the
// explorer's history listing. It exists only for the duration of one task.
type CandidateTransaction struct {
	Hash  string
	From  string
	To    string
	Value string // smallest-unit decimal string
}

// BlockTimeResolver maps a point in time to a block height via the
// explorer's time-to-block endpoint.
type BlockTimeResolver interface {
	// BlockByTime returns the number of the last block mined at or before t.
	// The boolean is false when the explorer cannot resolve a block for the
	// given time.
	BlockByTime(ctx context.Context, t time.Time) (uint64, bool, error)
}

// TransactionHistory lists an address's transactions as reported by the
// chain explorer.
type TransactionHistory interface {
	// ListTransactions returns the address's transactions from fromBlock
	// forward, sorted newest-first.
	ListTransactions(ctx context.Context, address string, fromBlock uint64) ([]CandidateTransaction, error)
}

// filterCandidates keeps transactions with a strictly positive value and
// then truncates to limit, preserving the newest-first input order.
//
// Filtering before slicing can return fewer than limit non-zero entries when
// zero-value transactions sit inside the first page. That imprecision is
// accepted: the window is an approximation, not a completeness guarantee.
func filterCandidates(txs []CandidateTransaction, limit int) []CandidateTransaction {
	candidates := make([]CandidateTransaction, 0, limit)
	for _, tx := range txs {
		if !isPositiveValue(tx.Value) {
			continue
		}

		candidates = append(candidates, tx)
		if len(candidates) == limit {
			break
		}
	}

	return candidates
}

// isPositiveValue reports whether a smallest-unit decimal string is > 0.
// Malformed values are treated as zero and filtered out; the structural
// guard on the full transaction catches them later if they matter.
func isPositiveValue(value string) bool {
	if value == "" {
		return false
	}

	nonZero := false
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
		if r != '0' {
			nonZero = true
		}
	}
	return nonZero
}
