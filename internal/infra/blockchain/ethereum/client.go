// Package ethereum implements the reconcile.ChainNode contract for
// Ethereum-compatible nodes over JSON-RPC.
package ethereum

import (
	"github.com/gabapcia/reconwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/reconwatch/internal/reconcile"
)

// client fetches transaction detail from an Ethereum node via JSON-RPC.
type client struct {
	conn jsonrpc.Client
}

var _ reconcile.ChainNode = (*client)(nil)

// NewClient returns a chain node client using the provided JSON-RPC
// connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
