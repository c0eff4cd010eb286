package chainpoll

import (
	"context"

	"github.com/gabapcia/chaintrack/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	cycles       metric.Int64Counter
	failures     metric.Int64Counter
	matches      metric.Int64Counter
	transactions metric.Int64Counter
	checkpoint   metric.Int64Gauge
}

func newMetrics() (*metrics, error) {
	meter := telemetry.Meter()

	cycles, err := meter.Int64Counter("chaintrack.cycles",
		metric.WithDescription("Completed polling cycles"))
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("chaintrack.cycle.failures",
		metric.WithDescription("Polling cycles that ended in backoff or disabled the chain"))
	if err != nil {
		return nil, err
	}

	matches, err := meter.Int64Counter("chaintrack.matches",
		metric.WithDescription("Match events delivered to the sink"))
	if err != nil {
		return nil, err
	}

	transactions, err := meter.Int64Counter("chaintrack.transactions",
		metric.WithDescription("Transactions returned by chain adapters"))
	if err != nil {
		return nil, err
	}

	checkpoint, err := meter.Int64Gauge("chaintrack.checkpoint",
		metric.WithDescription("Last processed height per chain"))
	if err != nil {
		return nil, err
	}

	return &metrics{
		cycles:       cycles,
		failures:     failures,
		matches:      matches,
		transactions: transactions,
		checkpoint:   checkpoint,
	}, nil
}

func chainAttr(chain string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("chain.name", chain))
}

func (m *metrics) cycleDone(ctx context.Context, chain string, txs, matches int) {
	opt := chainAttr(chain)
	m.cycles.Add(ctx, 1, opt)
	m.transactions.Add(ctx, int64(txs), opt)
	m.matches.Add(ctx, int64(matches), opt)
}

func (m *metrics) cycleFailed(ctx context.Context, chain string, state State) {
	m.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("chain.name", chain),
		attribute.String("chain.state", string(state)),
	))
}

func (m *metrics) checkpointSaved(ctx context.Context, chain string, height uint64) {
	m.checkpoint.Record(ctx, int64(height), chainAttr(chain))
}
