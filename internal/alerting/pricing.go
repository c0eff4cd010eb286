package alerting

import (
	"context"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/pkg/logger"

	"github.com/shopspring/decimal"
)

// RateStorage looks up USD rates by currency symbol.
type RateStorage interface {
	// LoadRate returns the USD price of one unit of symbol. found is false
	// when no rate is configured.
	LoadRate(ctx context.Context, symbol string) (rate decimal.Decimal, found bool, err error)
}

type valuing struct {
	next  chainpoll.NotificationSink
	rates RateStorage
}

// WithUSDValue fills MatchEvent.AmountUSD from rates before passing the event
// on. Missing rates and lookup failures leave it unset.
func WithUSDValue(next chainpoll.NotificationSink, rates RateStorage) chainpoll.NotificationSink {
	return &valuing{next: next, rates: rates}
}

func (v *valuing) Notify(ctx context.Context, event chainpoll.MatchEvent) error {
	symbol := event.Transaction.Currency
	if symbol == "" {
		symbol = event.Token
	}

	rate, found, err := v.rates.LoadRate(ctx, symbol)
	switch {
	case err != nil:
		logger.Warn(ctx, "failed to load usd rate", "currency", symbol, "error", err)
	case found:
		usd := event.Transaction.Value.Mul(rate)
		event.AmountUSD = &usd
	}

	return v.next.Notify(ctx, event)
}
