package etherscan

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	transporthttp "github.com/gabapcia/reconwatch/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(time.Second),
		transporthttp.WithRetryMax(0),
	)

	return NewClient(httpClient, server.URL, "test-api-key")
}

func TestBlockByTime(t *testing.T) {
	timestamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("resolves a block number", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "block", query.Get("module"))
			assert.Equal(t, "getblocknobytime", query.Get("action"))
			assert.Equal(t, "before", query.Get("closest"))
			assert.Equal(t, "1709294400", query.Get("timestamp"))
			assert.Equal(t, "test-api-key", query.Get("apikey"))

			w.Write([]byte(`{"status":"1","message":"OK","result":"19342025"}`))
		})

		number, ok, err := client.BlockByTime(t.Context(), timestamp)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, uint64(19342025), number)
	})

	t.Run("unresolvable time reports no block without error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Error! No closest block found"}`))
		})

		_, ok, err := client.BlockByTime(t.Context(), timestamp)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed block number fails", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"1","message":"OK","result":"not-a-number"}`))
		})

		_, _, err := client.BlockByTime(t.Context(), timestamp)

		assert.ErrorIs(t, err, ErrExplorerRequestFailed)
	})

	t.Run("unexpected status code fails", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, _, err := client.BlockByTime(t.Context(), timestamp)

		assert.ErrorIs(t, err, ErrExplorerRequestFailed)
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("maps entries preserving order", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "account", query.Get("module"))
			assert.Equal(t, "txlist", query.Get("action"))
			assert.Equal(t, "0xdeposit", query.Get("address"))
			assert.Equal(t, "19000000", query.Get("startblock"))
			assert.Equal(t, "desc", query.Get("sort"))

			w.Write([]byte(`{
				"status": "1",
				"message": "OK",
				"result": [
					{"hash": "0xb", "from": "0xdeposit", "to": "0xaccount", "value": "200"},
					{"hash": "0xa", "from": "0xdeposit", "to": "0xaccount", "value": "100"}
				]
			}`))
		})

		txs, err := client.ListTransactions(t.Context(), "0xdeposit", 19000000)

		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, "0xb", txs[0].Hash)
		assert.Equal(t, "200", txs[0].Value)
		assert.Equal(t, "0xa", txs[1].Hash)
	})

	t.Run("empty history is not an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"0","message":"No transactions found","result":[]}`))
		})

		txs, err := client.ListTransactions(t.Context(), "0xdeposit", 19000000)

		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("failure envelope propagates the explorer message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"0","message":"Max rate limit reached","result":""}`))
		})

		_, err := client.ListTransactions(t.Context(), "0xdeposit", 19000000)

		require.ErrorIs(t, err, ErrExplorerRequestFailed)
		assert.ErrorContains(t, err, "Max rate limit reached")
	})

	t.Run("malformed result payload fails", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"1","message":"OK","result":"oops"}`))
		})

		_, err := client.ListTransactions(t.Context(), "0xdeposit", 19000000)

		assert.Error(t, err)
	})
}
