package ethereum

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/gabapcia/reconwatch/internal/pkg/types"
	"github.com/gabapcia/reconwatch/internal/reconcile"
)

// TransactionResponse is the raw transaction object returned by
// eth_getTransactionByHash. Quantities come hex-encoded; To and GasPrice
// can be null (contract creation, non-legacy fee data).
type TransactionResponse struct {
	Hash      string     `json:"hash"`
	From      string     `json:"from"`
	To        *string    `json:"to"`
	Value     types.Hex  `json:"value"`
	Gas       types.Hex  `json:"gas"`
	GasPrice  *types.Hex `json:"gasPrice"`
	BlockHash string     `json:"blockHash"`
	Nonce     string     `json:"nonce"`
	Input     string     `json:"input"`
}

// toFullTransaction converts the node response to the reconcile shape,
// decoding hex quantities into smallest-unit decimal strings.
func (t TransactionResponse) toFullTransaction() reconcile.FullTransaction {
	var gasPrice *string
	if t.GasPrice != nil {
		price := t.GasPrice.Decimal()
		gasPrice = &price
	}

	return reconcile.FullTransaction{
		Hash:      t.Hash,
		From:      t.From,
		To:        t.To,
		Value:     t.Value.Decimal(),
		GasLimit:  t.Gas.Decimal(),
		GasPrice:  gasPrice,
		BlockHash: t.BlockHash,
	}
}

// GetTransaction fetches the transaction with the given hash. A null result
// means the node does not know the hash, which maps to
// reconcile.ErrTransactionNotFound.
func (c *client) GetTransaction(ctx context.Context, hash string) (reconcile.FullTransaction, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionByHash", hash)
	if err != nil {
		return reconcile.FullTransaction{}, err
	}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return reconcile.FullTransaction{}, reconcile.ErrTransactionNotFound
	}

	var tx TransactionResponse
	if err := json.Unmarshal(data, &tx); err != nil {
		return reconcile.FullTransaction{}, err
	}

	return tx.toFullTransaction(), nil
}
