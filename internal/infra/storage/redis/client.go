// Package redis implements the engine's storage contracts on Redis:
// checkpoints, tracking rules, chain statuses, notification idempotency keys
// and USD rates.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const defaultDeliveredTTL = 72 * time.Hour

type client struct {
	conn         *redis.Client
	deliveredTTL time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	username     string
	password     string
	db           int
	deliveredTTL time.Duration
}

type Option func(*config)

// WithCredentials authenticates with an ACL user or a plain password.
func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithDeliveredTTL sets how long delivered notification keys are kept.
// Zero keeps them forever.
func WithDeliveredTTL(d time.Duration) Option {
	return func(c *config) {
		c.deliveredTTL = d
	}
}

// NewClient connects to addr and pings it.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{deliveredTTL: defaultDeliveredTTL}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:         conn,
		deliveredTTL: cfg.deliveredTTL,
	}, nil
}
