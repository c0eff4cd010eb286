package chainpoll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	"github.com/gabapcia/chaintrack/internal/pkg/x/chflow"

	"github.com/cenkalti/backoff/v5"
)

// errStopped ends a cycle between steps once the unit's context is done.
var errStopped = errors.New("chain poller stopped")

// unit runs the polling state machine of a single chain. Only its own
// goroutine touches checkpoint; status is guarded for Status readers.
type unit struct {
	chain Chain
	svc   *service

	cancel context.CancelFunc
	done   chan struct{}

	checkpoint    uint64
	hasCheckpoint bool

	mu     sync.RWMutex
	status ChainStatus
}

func newUnit(chain Chain, svc *service) *unit {
	return &unit{
		chain: chain,
		svc:   svc,
		status: ChainStatus{
			Chain: chain.Name,
			State: StateIdle,
		},
	}
}

func (u *unit) snapshot() ChainStatus {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.status
}

func (u *unit) setState(state State) {
	u.mu.Lock()
	u.status.State = state
	u.mu.Unlock()
}

func (u *unit) state() State {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.status.State
}

func (u *unit) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return CallContext(context.WithoutCancel(ctx), u.svc.callTimeout)
}

func (u *unit) newBackOff() (*backoff.ExponentialBackOff, time.Duration) {
	maxInterval := u.chain.PollInterval * time.Duration(u.svc.backoffFactor)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = min(u.svc.backoffInitial, maxInterval)
	b.MaxInterval = maxInterval
	b.Reset()

	return b, maxInterval
}

// run cycles until ctx is done or the chain hits a fatal error.
func (u *unit) run(ctx context.Context) {
	logger.Info(ctx, "chain poller started",
		"chain.name", u.chain.Name,
		"chain.family", u.chain.Family,
		"chain.poll_interval", u.chain.PollInterval.String(),
	)
	defer logger.Info(ctx, "chain poller stopped", "chain.name", u.chain.Name)

	bo, maxDelay := u.newBackOff()
	for {
		wait := u.chain.PollInterval

		err := u.cycle(ctx)
		switch {
		case err == nil:
			bo.Reset()
		case errors.Is(err, errStopped):
			u.setState(StateIdle)
			return
		case IsFatal(err):
			u.fail(ctx, err, true)
			return
		default:
			attempt := u.fail(ctx, err, false)
			u.maybeReset(ctx, attempt)
			wait = min(bo.NextBackOff(), maxDelay)
		}

		if !chflow.Sleep(ctx, wait) {
			return
		}
	}
}

// cycle runs one pass of the state machine. Height, sink and storage calls
// are bounded by the call timeout and are not interrupted by ctx. The range
// fetch has no side effects and is interrupted by ctx; the adapter bounds each
// of its calls. Cancellation is otherwise honored between steps, except that
// a pass which already notified always persists its checkpoint.
func (u *unit) cycle(ctx context.Context) error {
	if err := u.ensureCheckpoint(ctx); err != nil {
		return err
	}

	if ctx.Err() != nil {
		return errStopped
	}

	u.setState(StateFetchingHeight)
	height, err := u.currentHeight(ctx)
	if err != nil {
		return fmt.Errorf("fetch current height: %w", err)
	}

	from, to, ok := ScanRange(u.checkpoint, height, u.chain.MaxBlocksPerScan)
	if !ok {
		u.succeed(ctx)
		return nil
	}

	if ctx.Err() != nil {
		return errStopped
	}

	u.setState(StateFetchingTxs)
	txs, err := u.fetchRange(ctx, from, to)
	if err != nil {
		if ctx.Err() != nil {
			return errStopped
		}
		return fmt.Errorf("fetch range [%d, %d]: %w", from, to, err)
	}

	if ctx.Err() != nil {
		return errStopped
	}

	u.setState(StateMatching)
	events := u.svc.matcher.Match(u.chain.Name, txs)

	if ctx.Err() != nil {
		return errStopped
	}

	u.setState(StateNotifying)
	for _, event := range events {
		if err := u.notify(ctx, event); err != nil {
			// Sink errors are never fatal; %v keeps ErrFatal out of the chain.
			return fmt.Errorf("notify %s: %v", event.Key(), err)
		}
	}

	u.setState(StateCheckpointing)
	if err := u.saveCheckpoint(ctx, to); err != nil {
		return fmt.Errorf("save checkpoint %d: %w", to, err)
	}

	logger.Debug(ctx, "chain range processed",
		"chain.name", u.chain.Name,
		"block.from", from,
		"block.to", to,
		"block.head", height,
		"tx.count", len(txs),
		"match.count", len(events),
	)

	u.svc.metrics.cycleDone(ctx, u.chain.Name, len(txs), len(events))
	u.succeed(ctx)
	return nil
}

func (u *unit) currentHeight(ctx context.Context) (uint64, error) {
	callCtx, cancel := u.callContext(ctx)
	defer cancel()

	return u.chain.Adapter.CurrentHeight(callCtx)
}

func (u *unit) fetchRange(ctx context.Context, from, to uint64) ([]RawTransaction, error) {
	return u.chain.Adapter.FetchRange(ctx, from, to)
}

func (u *unit) notify(ctx context.Context, event MatchEvent) error {
	callCtx, cancel := u.callContext(ctx)
	defer cancel()

	return u.svc.sink.Notify(callCtx, event)
}

// initialCheckpoint is the checkpoint used when none was saved: one below the
// configured start height, or the current head.
func (u *unit) initialCheckpoint(ctx context.Context) (uint64, error) {
	if u.chain.StartHeight > 0 {
		return u.chain.StartHeight - 1, nil
	}

	return u.chain.Adapter.CurrentHeight(ctx)
}

func (u *unit) ensureCheckpoint(ctx context.Context) error {
	if u.hasCheckpoint {
		return nil
	}

	u.setState(StateFetchingHeight)

	callCtx, cancel := u.callContext(ctx)
	defer cancel()

	height, found, err := LoadCheckpoint(callCtx, u.svc.checkpointStorage, u.chain.Name, u.initialCheckpoint)
	if err != nil {
		return fmt.Errorf("load checkpoint: %w", err)
	}

	if !found {
		logger.Info(ctx, "no checkpoint found, starting from fallback height",
			"chain.name", u.chain.Name,
			"block.height", height,
		)

		if err := u.persistCheckpoint(ctx, height); err != nil {
			return fmt.Errorf("save initial checkpoint %d: %w", height, err)
		}
	}

	u.checkpoint = height
	u.hasCheckpoint = true

	u.mu.Lock()
	u.status.Checkpoint = height
	u.mu.Unlock()

	return nil
}

func (u *unit) persistCheckpoint(ctx context.Context, height uint64) error {
	return u.svc.retry.Execute(context.WithoutCancel(ctx), func() error {
		callCtx, cancel := u.callContext(ctx)
		defer cancel()

		return u.svc.checkpointStorage.SaveCheckpoint(callCtx, u.chain.Name, height)
	})
}

// saveCheckpoint persists height and only then advances the in-memory
// checkpoint. Heights at or below the current checkpoint are ignored.
func (u *unit) saveCheckpoint(ctx context.Context, height uint64) error {
	if height <= u.checkpoint {
		return nil
	}

	if err := u.persistCheckpoint(ctx, height); err != nil {
		return err
	}

	u.checkpoint = height
	u.svc.metrics.checkpointSaved(ctx, u.chain.Name, height)

	u.mu.Lock()
	u.status.Checkpoint = height
	u.mu.Unlock()

	return nil
}

func (u *unit) succeed(ctx context.Context) {
	u.mu.Lock()
	u.status.State = StateIdle
	u.status.LastSuccessHeight = u.checkpoint
	u.status.LastSuccessAt = u.svc.now()
	u.status.ConsecutiveFailures = 0
	status := u.status
	u.mu.Unlock()

	u.publishStatus(ctx, status)
}

// fail records a failed cycle and returns the number of consecutive failures.
func (u *unit) fail(ctx context.Context, err error, fatal bool) int {
	failedAt := u.state()

	u.mu.Lock()
	u.status.LastError = err.Error()
	u.status.LastErrorAt = u.svc.now()
	u.status.ConsecutiveFailures++
	if fatal {
		u.status.State = StateDisabled
		u.status.Disabled = true
	} else {
		u.status.State = StateBackoff
	}
	status := u.status
	u.mu.Unlock()

	u.svc.metrics.cycleFailed(ctx, u.chain.Name, failedAt)
	u.publishStatus(ctx, status)

	failure := CycleFailure{
		Chain:      u.chain.Name,
		State:      failedAt,
		Checkpoint: status.Checkpoint,
		Attempt:    status.ConsecutiveFailures,
		Fatal:      fatal,
		Err:        err,
	}
	_ = chflow.Send(ctx, u.svc.failureCh, failure)

	return status.ConsecutiveFailures
}

// maybeReset rebuilds the adapter connection every resetAfter consecutive
// failures when the adapter supports it.
func (u *unit) maybeReset(ctx context.Context, attempt int) {
	resetter, ok := u.chain.Adapter.(Resetter)
	if !ok || u.svc.resetAfter <= 0 || attempt%u.svc.resetAfter != 0 {
		return
	}

	callCtx, cancel := u.callContext(ctx)
	defer cancel()

	if err := resetter.Reset(callCtx); err != nil {
		logger.Warn(ctx, "chain adapter reset failed",
			"chain.name", u.chain.Name,
			"error", err,
		)
		return
	}

	logger.Info(ctx, "chain adapter reset", "chain.name", u.chain.Name, "attempt", attempt)
}

func (u *unit) publishStatus(ctx context.Context, status ChainStatus) {
	if u.svc.statusStorage == nil {
		return
	}

	callCtx, cancel := u.callContext(ctx)
	defer cancel()

	if err := u.svc.statusStorage.SaveStatus(callCtx, status); err != nil {
		logger.Warn(ctx, "failed to publish chain status",
			"chain.name", u.chain.Name,
			"error", err,
		)
	}
}
