package redis

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/chaintrack/internal/alerting"

	"github.com/redis/go-redis/v9"
)

const (
	// notifyKeyPrefix namespaces notification idempotency entries.
	notifyKeyPrefix = "notify:idempotency"

	// notifyDelivered is the value of a key whose delivery completed. A claim
	// in progress holds an empty string.
	notifyDelivered = "done"
)

func notifyKey(key string) string {
	return notifyKeyPrefix + ":" + key
}

// Claim reserves key for ttl.
//
// It returns alerting.ErrAlreadyDelivered when the key was marked delivered
// and alerting.ErrStillInProgress while another claim is alive.
func (c *client) Claim(ctx context.Context, key string, ttl time.Duration) error {
	k := notifyKey(key)

	val, err := c.conn.Get(ctx, k).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == notifyDelivered {
		return alerting.ErrAlreadyDelivered
	}

	ok, err := c.conn.SetNX(ctx, k, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return alerting.ErrStillInProgress
	}

	return nil
}

// MarkDelivered records key as delivered for the configured retention.
func (c *client) MarkDelivered(ctx context.Context, key string) error {
	return c.conn.Set(ctx, notifyKey(key), notifyDelivered, c.deliveredTTL).Err()
}

// Release drops a pending claim. Delivered keys are left alone.
func (c *client) Release(ctx context.Context, key string) error {
	k := notifyKey(key)

	val, err := c.conn.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	if val == notifyDelivered {
		return nil
	}

	return c.conn.Del(ctx, k).Err()
}

var _ alerting.IdempotencyGuard = new(client)
