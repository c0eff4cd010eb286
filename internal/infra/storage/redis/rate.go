package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/gabapcia/chaintrack/internal/alerting"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const rateKeyPrefix = "rate"

// rateKey returns "rate:<SYMBOL>"; symbols are stored upper case.
func rateKey(symbol string) string {
	return rateKeyPrefix + ":" + strings.ToUpper(symbol)
}

// SaveRate sets the USD price of one unit of symbol.
func (c *client) SaveRate(ctx context.Context, symbol string, rate decimal.Decimal) error {
	return c.conn.Set(ctx, rateKey(symbol), rate.String(), 0).Err()
}

func (c *client) LoadRate(ctx context.Context, symbol string) (decimal.Decimal, bool, error) {
	val, err := c.conn.Get(ctx, rateKey(symbol)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, err
	}

	return rate, true, nil
}

var _ alerting.RateStorage = new(client)
