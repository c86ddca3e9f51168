package reconcile

import (
	"context"
	"time"

	"github.com/gabapcia/reconwatch/internal/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func init() {
	// Initialize the global logger so code under test can log.
	_ = logger.Init("error")
}

// OrderStorageMock is a testify mock for OrderStorage.
type OrderStorageMock struct {
	mock.Mock
}

func (m *OrderStorageMock) GetByID(ctx context.Context, id string) (Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Order), args.Error(1)
}

func (m *OrderStorageMock) FindByDepositAddress(ctx context.Context, depositMethodID, address string) (Order, error) {
	args := m.Called(ctx, depositMethodID, address)
	return args.Get(0).(Order), args.Error(1)
}

// BlockTimeResolverMock is a testify mock for BlockTimeResolver.
type BlockTimeResolverMock struct {
	mock.Mock
}

func (m *BlockTimeResolverMock) BlockByTime(ctx context.Context, t time.Time) (uint64, bool, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(uint64), args.Bool(1), args.Error(2)
}

// TransactionHistoryMock is a testify mock for TransactionHistory.
type TransactionHistoryMock struct {
	mock.Mock
}

func (m *TransactionHistoryMock) ListTransactions(ctx context.Context, address string, fromBlock uint64) ([]CandidateTransaction, error) {
	args := m.Called(ctx, address, fromBlock)

	var txs []CandidateTransaction
	if v := args.Get(0); v != nil {
		txs = v.([]CandidateTransaction)
	}
	return txs, args.Error(1)
}

// ChainNodeMock is a testify mock for ChainNode.
type ChainNodeMock struct {
	mock.Mock
}

func (m *ChainNodeMock) GetTransaction(ctx context.Context, hash string) (FullTransaction, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).(FullTransaction), args.Error(1)
}

// CreditLedgerMock is a testify mock for CreditLedger.
type CreditLedgerMock struct {
	mock.Mock
}

func (m *CreditLedgerMock) Credit(ctx context.Context, orderID, txID, amount, uniqueID string) (bool, error) {
	args := m.Called(ctx, orderID, txID, amount, uniqueID)
	return args.Bool(0), args.Error(1)
}

// taskQueueStub scripts queue behavior with a plain function, which is
// easier than a mock when a test needs to drive the consumer loop.
type taskQueueStub struct {
	dequeue func(ctx context.Context, network string) (string, error)
}

func (s *taskQueueStub) Dequeue(ctx context.Context, network string) (string, error) {
	return s.dequeue(ctx, network)
}
