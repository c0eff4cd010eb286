// Package postgres is a relational tracking rule store for deployments that
// keep subscription state next to other application data.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS tracking_rules (
	id              TEXT PRIMARY KEY,
	chain           TEXT        NOT NULL,
	token           TEXT        NOT NULL,
	addresses       TEXT[]      NOT NULL DEFAULT '{}',
	mode            TEXT        NOT NULL,
	min_amount      NUMERIC,
	max_amount      NUMERIC,
	whale_threshold NUMERIC,
	enabled         BOOLEAN     NOT NULL,
	subscribers     TEXT[]      NOT NULL DEFAULT '{}',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS tracking_rules_chain_idx ON tracking_rules (chain);
`

type client struct {
	pool *pgxpool.Pool
}

func (c *client) Close() {
	c.pool.Close()
}

// Migrate creates the tables used by the store when missing.
func (c *client) Migrate(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	return nil
}

// NewClient opens a pool on dsn and pings it.
func NewClient(ctx context.Context, dsn string) (*client, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &client{pool: pool}, nil
}
