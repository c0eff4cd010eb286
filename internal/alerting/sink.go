// Package alerting delivers match events: formatting, sink composition,
// delivery deduplication and USD valuation. Transports live under
// internal/infra/notifier.
package alerting

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/pkg/logger"
)

// SinkFunc adapts a function to chainpoll.NotificationSink.
type SinkFunc func(ctx context.Context, event chainpoll.MatchEvent) error

func (f SinkFunc) Notify(ctx context.Context, event chainpoll.MatchEvent) error {
	return f(ctx, event)
}

type logSink struct {
	formatter *Formatter
}

var _ chainpoll.NotificationSink = (*logSink)(nil)

// NewLogSink returns a sink that writes every event to the structured log.
func NewLogSink(formatter *Formatter) *logSink {
	return &logSink{formatter: formatter}
}

func (s *logSink) Notify(ctx context.Context, event chainpoll.MatchEvent) error {
	logger.Info(ctx, "tracked transaction matched",
		"chain.name", event.Chain,
		"rule.id", event.RuleID,
		"tx.hash", event.Transaction.Hash,
		"tx.direction", event.Direction,
		"tx.whale", event.Whale,
		"subscribers", event.Subscribers,
		"message", s.formatter.Format(event),
	)
	return nil
}

type fanout struct {
	sinks []chainpoll.NotificationSink
}

// Fanout delivers every event to all sinks. Each sink is attempted even when
// another fails; the failures are joined.
func Fanout(sinks ...chainpoll.NotificationSink) chainpoll.NotificationSink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return &fanout{sinks: sinks}
}

func (f *fanout) Notify(ctx context.Context, event chainpoll.MatchEvent) error {
	var errs []error
	for i, sink := range f.sinks {
		if err := sink.Notify(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("sink %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

type perSubscriber struct {
	next chainpoll.NotificationSink
}

// PerSubscriber splits each event into one event per subscriber so that
// downstream decorators track delivery per recipient.
func PerSubscriber(next chainpoll.NotificationSink) chainpoll.NotificationSink {
	return &perSubscriber{next: next}
}

func (p *perSubscriber) Notify(ctx context.Context, event chainpoll.MatchEvent) error {
	var errs []error
	for _, subscriber := range event.Subscribers {
		single := event
		single.Subscribers = []string{subscriber}

		if err := p.next.Notify(ctx, single); err != nil {
			errs = append(errs, fmt.Errorf("subscriber %s: %w", subscriber, err))
		}
	}
	return errors.Join(errs...)
}
