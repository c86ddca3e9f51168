package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/reconwatch/internal/pkg/logger"
)

// scanTransaction decides whether a validated transaction is a missed
// deposit and, if so, requests an idempotent credit. It returns true when a
// credit was newly created.
//
// Not-credited outcomes are not errors: unrelated traffic through the
// receiving account, records without standard fee data, and senders with no
// pending order are all expected. An error is returned only when a
// collaborator call fails; the caller keeps scanning sibling candidates.
func (s *service) scanTransaction(ctx context.Context, tx FullTransaction) (bool, error) {
	if tx.To == nil || !strings.EqualFold(*tx.To, s.method.Account) {
		return false, nil
	}

	if tx.GasPrice == nil {
		return false, nil
	}

	total, err := totalCost(tx.Value, tx.GasLimit, *tx.GasPrice)
	if err != nil {
		return false, err
	}

	order, err := s.orders.FindByDepositAddress(ctx, s.method.ID, tx.From)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("resolving order for sender %s: %w", tx.From, err)
	}

	amount, err := majorUnits(total, s.method.Decimals)
	if err != nil {
		return false, err
	}

	created, err := s.ledger.Credit(ctx, order.ID, tx.Hash, amount, UniqueID(s.method.ID, tx.Hash))
	if err != nil {
		return false, fmt.Errorf("crediting order %s: %w", order.ID, err)
	}

	if !created {
		// Either the ledger already holds an equivalent credit or the order
		// rejected further credit. No local retry in either case.
		return false, nil
	}

	logger.Info(ctx, "missed deposit credited",
		"transaction.hash", tx.Hash,
		"credit.amount", amount,
		"credit.asset", s.method.Asset,
		"order.id", order.ID,
	)

	return true, nil
}
