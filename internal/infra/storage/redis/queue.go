package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/reconwatch/internal/reconcile"

	redis "github.com/redis/go-redis/v9"
)

const (
	// queueKeyPrefix namespaces the reconciliation task queues in Redis.
	queueKeyPrefix = "reconwatch:queue"

	// dequeueBlockTimeout bounds each BRPOP so the consumer loop can observe
	// context cancellation between polls.
	dequeueBlockTimeout = 5 * time.Second
)

// queueKey builds the Redis list key holding pending order ids for a
// network.
func queueKey(network string) string {
	return fmt.Sprintf("%s:%s", queueKeyPrefix, network)
}

// Enqueue pushes an order id onto the network's reconciliation queue. A
// list gives at-least-once, unordered delivery: an id popped by a consumer
// that crashes mid-task is re-enqueued by the producer's own sweep, and the
// unique-id-keyed credit call keeps redelivery safe.
func (c *client) Enqueue(ctx context.Context, network, orderID string) error {
	return c.conn.LPush(ctx, queueKey(network), orderID).Err()
}

// Dequeue pops the next order id, blocking up to dequeueBlockTimeout. An
// elapsed timeout yields an empty id with no error so the caller can loop.
func (c *client) Dequeue(ctx context.Context, network string) (string, error) {
	res, err := c.conn.BRPop(ctx, dequeueBlockTimeout, queueKey(network)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}

		return "", err
	}

	// BRPOP returns [key, value].
	if len(res) != 2 {
		return "", fmt.Errorf("unexpected BRPOP reply of length %d", len(res))
	}

	return res[1], nil
}

// Ensure the client satisfies the consumer-side queue contract.
var _ reconcile.TaskQueue = (*client)(nil)
