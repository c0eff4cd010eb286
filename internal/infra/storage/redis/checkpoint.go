package redis

import (
	"context"
	"errors"
	"strconv"

	"github.com/gabapcia/chaintrack/internal/chainpoll"

	"github.com/redis/go-redis/v9"
)

const checkpointKeyPrefix = "checkpoint"

// checkpointKey returns "checkpoint:<chain>".
func checkpointKey(chain string) string {
	return checkpointKeyPrefix + ":" + chain
}

// SaveCheckpoint stores the last processed height of chain with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, chain string, height uint64) error {
	return c.conn.Set(ctx, checkpointKey(chain), strconv.FormatUint(height, 10), 0).Err()
}

// LoadLatestCheckpoint returns the stored height of chain or
// chainpoll.ErrNoCheckpointFound.
func (c *client) LoadLatestCheckpoint(ctx context.Context, chain string) (uint64, error) {
	val, err := c.conn.Get(ctx, checkpointKey(chain)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainpoll.ErrNoCheckpointFound
		}

		return 0, err
	}

	return strconv.ParseUint(val, 10, 64)
}

var _ chainpoll.CheckpointStorage = new(client)
