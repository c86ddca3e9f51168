package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/reconwatch/internal/pkg/logger"
	"github.com/gabapcia/reconwatch/internal/pkg/x/chflow"
)

// ReconcileOrder runs the back-fill reconciliation for a single order id:
// resolve the order, map its creation time to a starting block, list the
// address's transaction history from there, and scan the most recent
// positive-value candidates for a missed deposit.
//
// Absent orders, unassigned addresses, and unresolvable blocks are handled
// terminations (logged, nil returned): the queue must not see them as
// failures. External call failures are returned to the caller for logging;
// they never abort other orders. Completing without crediting anything is
// the normal outcome for an order with no missed deposit.
func (s *service) ReconcileOrder(ctx context.Context, orderID string) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			logger.Warn(ctx, "order disappeared before reconciliation", "order.id", orderID)
			return nil
		}

		return fmt.Errorf("fetching order %s: %w", orderID, err)
	}

	if order.DepositAddress == nil {
		// The address may have been intentionally unassigned after the
		// order completed or was canceled.
		logger.Info(ctx, "order has no deposit address assigned", "order.id", orderID)
		return nil
	}
	address := *order.DepositAddress

	fromBlock, ok, err := s.blockTime.BlockByTime(ctx, order.CreatedAt)
	if err != nil {
		logger.Error(ctx, "block height resolution failed",
			"order.id", orderID,
			"error", err,
		)
		return nil
	}
	if !ok {
		logger.Info(ctx, "no block resolvable for order creation time",
			"order.id", orderID,
			"order.created_at", order.CreatedAt,
		)
		return nil
	}

	history, err := s.history.ListTransactions(ctx, address, fromBlock)
	if err != nil {
		return fmt.Errorf("listing transactions for order %s: %w", orderID, err)
	}

	candidates := filterCandidates(history, s.candidateLimit)

	if err := s.scanCandidates(ctx, orderID, candidates); err != nil {
		return err
	}

	logger.Info(ctx, "order reconciliation finished",
		"order.id", orderID,
		"candidates.count", len(candidates),
	)
	return nil
}

// scanCandidates fetches full detail for every candidate and scans each
// one, with at most scanConcurrency node lookups in flight. Node RPC
// latency dominates wall time and candidates are independent, so they run
// concurrently; all results are joined before the task completes.
//
// A candidate the node does not know is skipped: explorer and node indexes
// drift apart and the next reconciliation pass will see it. Any other
// per-candidate failure is collected and reported without stopping the
// siblings.
func (s *service) scanCandidates(ctx context.Context, orderID string, candidates []CandidateTransaction) error {
	var (
		wg    sync.WaitGroup
		sem   = make(chan struct{}, s.scanConcurrency)
		errCh = make(chan error, len(candidates))
	)

	for _, candidate := range candidates {
		wg.Add(1)
		sem <- struct{}{}

		go func(candidate CandidateTransaction) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.scanCandidate(ctx, candidate); err != nil {
				logger.Error(ctx, "candidate scan failed",
					"order.id", orderID,
					"transaction.hash", candidate.Hash,
					"error", err,
				)

				chflow.Send(ctx, errCh, fmt.Errorf("candidate %s: %w", candidate.Hash, err))
			}
		}(candidate)
	}

	wg.Wait()
	close(errCh)

	errs := make([]error, 0, len(candidates))
	for err := range errCh {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// scanCandidate hydrates one candidate from the chain node, applies the
// structural guard, and runs the deposit scan.
func (s *service) scanCandidate(ctx context.Context, candidate CandidateTransaction) error {
	tx, err := s.node.GetTransaction(ctx, candidate.Hash)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			logger.Debug(ctx, "node does not know candidate yet, skipping",
				"transaction.hash", candidate.Hash,
			)
			return nil
		}

		return err
	}

	if err := tx.validate(); err != nil {
		return err
	}

	_, err = s.scanTransaction(ctx, tx)
	return err
}
