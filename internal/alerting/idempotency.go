package alerting

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	"github.com/gabapcia/chaintrack/internal/pkg/resilience/retry"
)

var (
	// ErrAlreadyDelivered is returned by Claim when the delivery completed before.
	ErrAlreadyDelivered = errors.New("notification already delivered")

	// ErrStillInProgress is returned by Claim while another delivery holds the key.
	ErrStillInProgress = errors.New("notification delivery still in progress")
)

// IdempotencyGuard records deliveries so that redelivered events are sent at
// most once per key.
type IdempotencyGuard interface {
	// Claim reserves key for ttl. It fails with ErrAlreadyDelivered or
	// ErrStillInProgress when the key is taken.
	Claim(ctx context.Context, key string, ttl time.Duration) error

	// MarkDelivered records key as delivered for good.
	MarkDelivered(ctx context.Context, key string) error

	// Release drops a claim after a failed delivery.
	Release(ctx context.Context, key string) error
}

type idempotent struct {
	name  string
	next  chainpoll.NotificationSink
	guard IdempotencyGuard
	ttl   time.Duration
	mark  retry.Retry
}

// IdempotentOption configures the sink built by Idempotent.
type IdempotentOption func(*idempotent)

// WithMarkRetry sets the policy used to record a completed delivery. A pending
// claim left behind by a failed mark blocks redelivery until the claim ttl
// expires, so the mark is retried harder than the send.
func WithMarkRetry(r retry.Retry) IdempotentOption {
	return func(s *idempotent) {
		s.mark = r
	}
}

// Idempotent wraps next so each (name, event key, subscribers) is delivered
// once. The claim expires after ttl if the process dies mid delivery.
func Idempotent(name string, next chainpoll.NotificationSink, guard IdempotencyGuard, ttl time.Duration, opts ...IdempotentOption) chainpoll.NotificationSink {
	s := &idempotent{
		name:  name,
		next:  next,
		guard: guard,
		ttl:   ttl,
		mark:  retry.New(retry.WithAttempts(5), retry.WithDelay(100*time.Millisecond), retry.WithMaxDelay(2*time.Second)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *idempotent) key(event chainpoll.MatchEvent) string {
	return s.name + ":" + event.Key() + ":" + strings.Join(event.Subscribers, ",")
}

func (s *idempotent) Notify(ctx context.Context, event chainpoll.MatchEvent) error {
	key := s.key(event)

	if err := s.guard.Claim(ctx, key, s.ttl); err != nil {
		if errors.Is(err, ErrAlreadyDelivered) {
			logger.Debug(ctx, "skipping delivered notification", "sink", s.name, "delivery.key", key)
			return nil
		}
		return err
	}

	if err := s.next.Notify(ctx, event); err != nil {
		if releaseErr := s.guard.Release(ctx, key); releaseErr != nil {
			logger.Warn(ctx, "failed to release notification claim", "sink", s.name, "delivery.key", key, "error", releaseErr)
		}
		return err
	}

	// The send went out; a cancelled ctx must not leave the claim pending.
	markCtx := context.WithoutCancel(ctx)
	if err := s.mark.Execute(markCtx, func() error { return s.guard.MarkDelivered(markCtx, key) }); err != nil {
		logger.Warn(ctx, "failed to mark notification delivered", "sink", s.name, "delivery.key", key, "error", err)
	}

	return nil
}
