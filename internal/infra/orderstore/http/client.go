// Package http implements the reconcile.OrderStorage contract against the
// order service's REST API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gabapcia/reconwatch/internal/reconcile"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrOrderStoreRequestFailed indicates the order service answered with an
// unexpected status code. A 409 on the deposit-address lookup means the
// store found more than one active order for the same address, which is a
// data-integrity fault to report, not to retry.
var ErrOrderStoreRequestFailed = errors.New("order store request failed")

// Client reads orders from the order service.
type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
}

var _ reconcile.OrderStorage = (*Client)(nil)

// NewClient returns an order store client for the service at baseURL.
func NewClient(httpClient *retryablehttp.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// orderResponse is the order record as serialized by the order service.
type orderResponse struct {
	ID              string    `json:"id"`
	DepositMethodID string    `json:"deposit_method_id"`
	DepositAddress  *string   `json:"deposit_address"`
	CreatedAt       time.Time `json:"created_at"`
}

func (o orderResponse) toOrder() reconcile.Order {
	return reconcile.Order{
		ID:              o.ID,
		DepositMethodID: o.DepositMethodID,
		DepositAddress:  o.DepositAddress,
		CreatedAt:       o.CreatedAt,
	}
}

// getOrder performs a GET and decodes a single order. A 404 maps to
// reconcile.ErrOrderNotFound.
func (c *Client) getOrder(ctx context.Context, endpoint string) (reconcile.Order, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return reconcile.Order{}, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return reconcile.Order{}, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		// fallthrough to decoding
	case http.StatusNotFound:
		return reconcile.Order{}, reconcile.ErrOrderNotFound
	default:
		return reconcile.Order{}, fmt.Errorf("%w: unexpected status code %d", ErrOrderStoreRequestFailed, res.StatusCode)
	}

	var data orderResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return reconcile.Order{}, err
	}

	return data.toOrder(), nil
}

// GetByID fetches one order by id.
func (c *Client) GetByID(ctx context.Context, id string) (reconcile.Order, error) {
	return c.getOrder(ctx, c.baseURL+"/orders/"+url.PathEscape(id))
}

// FindByDepositAddress resolves the order bound to a deposit address under
// the given method.
func (c *Client) FindByDepositAddress(ctx context.Context, depositMethodID, address string) (reconcile.Order, error) {
	params := url.Values{
		"deposit_method_id": {depositMethodID},
		"deposit_address":   {address},
	}

	return c.getOrder(ctx, c.baseURL+"/orders/lookup?"+params.Encode())
}
