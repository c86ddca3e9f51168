// Package etherscan implements the reconcile explorer contracts
// (BlockTimeResolver and TransactionHistory) against an Etherscan-compatible
// HTTP API.
package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gabapcia/reconwatch/internal/reconcile"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrExplorerRequestFailed indicates the explorer answered with a non-OK
// envelope status or an unexpected HTTP status code.
var ErrExplorerRequestFailed = errors.New("explorer request failed")

// historyPageSize is the number of entries requested per txlist call. The
// reconciliation core only inspects a small recent window, so one page is
// always enough.
const historyPageSize = 100

// Client talks to an Etherscan-compatible explorer.
type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

var (
	_ reconcile.BlockTimeResolver  = (*Client)(nil)
	_ reconcile.TransactionHistory = (*Client)(nil)
)

// NewClient returns a Client for the explorer at baseURL authenticated with
// apiKey.
func NewClient(httpClient *retryablehttp.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// envelope is the common Etherscan response wrapper. Status is "1" on
// success; on failure Result may hold a string instead of the documented
// payload, hence the RawMessage.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// txlistEntry is one entry of the account txlist action. Values are
// smallest-unit decimal strings.
type txlistEntry struct {
	Hash  string `json:"hash"`
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
}

func (e txlistEntry) toCandidateTransaction() reconcile.CandidateTransaction {
	return reconcile.CandidateTransaction{
		Hash:  e.Hash,
		From:  e.From,
		To:    e.To,
		Value: e.Value,
	}
}

// get performs one explorer call and decodes the response envelope.
func (c *Client) get(ctx context.Context, params url.Values) (envelope, error) {
	params.Set("apikey", c.apiKey)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return envelope{}, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return envelope{}, fmt.Errorf("%w: unexpected status code %d", ErrExplorerRequestFailed, res.StatusCode)
	}

	var data envelope
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return envelope{}, err
	}

	return data, nil
}

// BlockByTime resolves the number of the last block mined at or before t
// using the getblocknobytime action. An unresolvable time (e.g. before the
// chain existed) reports ok=false rather than an error.
func (c *Client) BlockByTime(ctx context.Context, t time.Time) (uint64, bool, error) {
	params := url.Values{
		"module":    {"block"},
		"action":    {"getblocknobytime"},
		"timestamp": {strconv.FormatInt(t.Unix(), 10)},
		"closest":   {"before"},
	}

	data, err := c.get(ctx, params)
	if err != nil {
		return 0, false, err
	}

	if data.Status != "1" {
		return 0, false, nil
	}

	var blockNumber string
	if err := json.Unmarshal(data.Result, &blockNumber); err != nil {
		return 0, false, err
	}

	number, err := strconv.ParseUint(blockNumber, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: malformed block number %q", ErrExplorerRequestFailed, blockNumber)
	}

	return number, true, nil
}

// ListTransactions returns the address's transactions from fromBlock
// forward, newest-first, via the account txlist action. An address with no
// history yields an empty slice.
func (c *Client) ListTransactions(ctx context.Context, address string, fromBlock uint64) ([]reconcile.CandidateTransaction, error) {
	params := url.Values{
		"module":     {"account"},
		"action":     {"txlist"},
		"address":    {address},
		"startblock": {strconv.FormatUint(fromBlock, 10)},
		"endblock":   {"99999999"},
		"page":       {"1"},
		"offset":     {strconv.Itoa(historyPageSize)},
		"sort":       {"desc"},
	}

	data, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	if data.Status != "1" {
		// Etherscan reports an empty history as a failure envelope.
		if data.Message == "No transactions found" {
			return []reconcile.CandidateTransaction{}, nil
		}

		return nil, fmt.Errorf("%w: %s", ErrExplorerRequestFailed, data.Message)
	}

	var entries []txlistEntry
	if err := json.Unmarshal(data.Result, &entries); err != nil {
		return nil, err
	}

	transactions := make([]reconcile.CandidateTransaction, len(entries))
	for i, entry := range entries {
		transactions[i] = entry.toCandidateTransaction()
	}

	return transactions, nil
}
