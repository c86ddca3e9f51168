// Package http implements the reconcile.CreditLedger contract against the
// credit-ledger REST API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gabapcia/reconwatch/internal/reconcile"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrLedgerRequestFailed indicates the ledger answered with a status code
// outside its documented contract.
var ErrLedgerRequestFailed = errors.New("ledger request failed")

// Client posts credit requests to the ledger service. Requests are keyed by
// a caller-supplied unique id, so HTTP-level retries are safe.
type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
}

var _ reconcile.CreditLedger = (*Client)(nil)

// NewClient returns a ledger client for the service at baseURL.
func NewClient(httpClient *retryablehttp.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// creditRequest is the POST /credits payload.
type creditRequest struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	UniqueID      string `json:"unique_id"`
}

// Credit asks the ledger to credit the order. Contract:
//   - 201: the credit was newly created (true)
//   - 200: an equivalent credit already exists for this unique id (false)
//   - 409: the order cannot accept further credit (false)
//
// Every other status is an error.
func (c *Client) Credit(ctx context.Context, orderID, txID, amount, uniqueID string) (bool, error) {
	body, err := json.Marshal(creditRequest{
		OrderID:       orderID,
		TransactionID: txID,
		Amount:        amount,
		UniqueID:      uniqueID,
	})
	if err != nil {
		return false, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/credits", body)
	if err != nil {
		return false, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusCreated:
		return true, nil
	case http.StatusOK, http.StatusConflict:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unexpected status code %d", ErrLedgerRequestFailed, res.StatusCode)
	}
}
