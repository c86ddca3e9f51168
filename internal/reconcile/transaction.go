package reconcile

import (
	"errors"
	"fmt"

	"github.com/gabapcia/reconwatch/internal/pkg/validator"
)

// ErrMalformedTransaction is returned when a node response fails the
// structural guard. Node responses are not contractually typed; a malformed
// record must never reach the crediting path.
var ErrMalformedTransaction = errors.New("malformed transaction")

// FullTransaction is the full transaction detail fetched from the chain
// node for each candidate. All amounts are smallest-unit decimal strings.
// It is transient and discarded after the scan decision.
type FullTransaction struct {
	Hash string `validate:"required"`
	From string `validate:"required"`

	// To is nil for contract-creation transactions.
	To *string

	Value    string
	GasLimit string

	// GasPrice is nil when the record comes from a source lacking standard
	// fee data.
	GasPrice *string

	BlockHash string `validate:"required"`
}

// validate applies the structural guard: the transaction id, sender, and
// containing block hash must all be present before any monetary
// computation runs.
func (t FullTransaction) validate() error {
	if err := validator.Validate(t); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTransaction, err)
	}

	return nil
}
