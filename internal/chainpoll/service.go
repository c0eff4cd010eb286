package chainpoll

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	"github.com/gabapcia/chaintrack/internal/pkg/resilience/retry"
	"github.com/gabapcia/chaintrack/internal/pkg/validator"
	"github.com/gabapcia/chaintrack/internal/pkg/x/chflow"
)

var (
	ErrServiceAlreadyStarted  = errors.New("service already started")
	ErrChainAlreadyRegistered = errors.New("chain already registered")
	ErrChainNotRegistered     = errors.New("chain not registered")
)

const (
	cycleFailureChannelBufferSize = 5

	defaultBackoffInitial = time.Second
	defaultBackoffFactor  = 8
	defaultResetAfter     = 5
)

// Service polls every registered chain on its own cadence.
type Service interface {
	// Start launches one poller per chain and returns immediately.
	Start(ctx context.Context) error

	// Close stops every poller, waiting for in-flight steps to finish.
	Close()

	// AddChain registers a chain, starting its poller if the service runs.
	AddChain(chain Chain) error

	// RemoveChain stops and forgets a chain.
	RemoveChain(name string) error

	// Status reports every chain ordered by name.
	Status() []ChainStatus
}

type closeFunc func()
type cycleFailureHandler func(ctx context.Context, failure CycleFailure)

type service struct {
	mu        sync.Mutex
	isStarted bool
	runCtx    context.Context
	closeFunc closeFunc
	wg        sync.WaitGroup

	units map[string]*unit

	matcher           Matcher
	sink              NotificationSink
	checkpointStorage CheckpointStorage
	statusStorage     StatusStorage
	retry             retry.Retry
	metrics           *metrics

	callTimeout    time.Duration
	backoffInitial time.Duration
	backoffFactor  int
	resetAfter     int
	now            func() time.Time

	failureCh           chan CycleFailure
	cycleFailureHandler cycleFailureHandler
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	failureCh := make(chan CycleFailure, cycleFailureChannelBufferSize)

	s.runCtx = ctx
	s.failureCh = failureCh
	s.closeFunc = func() {
		cancel()
		s.wg.Wait()
		close(failureCh)
	}

	s.startHandleCycleFailures(ctx, failureCh)

	for _, u := range s.units {
		s.launch(ctx, u)
	}

	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
	s.runCtx = nil
}

func (s *service) AddChain(chain Chain) error {
	if err := validateChain(chain); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[chain.Name]; ok {
		return ErrChainAlreadyRegistered
	}

	u := newUnit(chain, s)
	s.units[chain.Name] = u

	if s.isStarted {
		s.launch(s.runCtx, u)
	}

	return nil
}

func (s *service) RemoveChain(name string) error {
	s.mu.Lock()
	u, ok := s.units[name]
	if !ok {
		s.mu.Unlock()
		return ErrChainNotRegistered
	}

	delete(s.units, name)
	cancel, done := u.cancel, u.done
	s.mu.Unlock()

	// The unit may be inside a network call; wait outside the lock so that
	// Status and AddChain stay responsive.
	if cancel != nil {
		cancel()
		<-done
	}

	return nil
}

func (s *service) Status() []ChainStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]ChainStatus, 0, len(s.units))
	for _, u := range s.units {
		statuses = append(statuses, u.snapshot())
	}

	slices.SortFunc(statuses, func(a, b ChainStatus) int {
		return cmp.Compare(a.Chain, b.Chain)
	})

	return statuses
}

// launch starts u under ctx. Callers hold s.mu.
func (s *service) launch(ctx context.Context, u *unit) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	u.cancel = cancel
	u.done = done

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)
		defer cancel()

		u.run(ctx)
	}()
}

// handleCycleFailures hands every failure to the configured handler until
// failureCh is closed or ctx is done.
func (s *service) handleCycleFailures(ctx context.Context, failureCh <-chan CycleFailure) {
	for {
		failure, ok := chflow.Receive(ctx, failureCh)
		if !ok {
			return
		}

		if s.cycleFailureHandler != nil {
			s.cycleFailureHandler(ctx, failure)
		}
	}
}

func (s *service) startHandleCycleFailures(ctx context.Context, failureCh <-chan CycleFailure) {
	go s.handleCycleFailures(ctx, failureCh)
}

type chainInput struct {
	Name         string        `validate:"required"`
	PollInterval time.Duration `validate:"gt=0"`
}

func validateChain(chain Chain) error {
	if chain.Adapter == nil {
		return validator.Invalid("Adapter", nil, "required")
	}

	return validator.Validate(chainInput{
		Name:         chain.Name,
		PollInterval: chain.PollInterval,
	})
}

type config struct {
	checkpointStorage   CheckpointStorage
	statusStorage       StatusStorage
	retry               retry.Retry
	callTimeout         time.Duration
	backoffInitial      time.Duration
	backoffFactor       int
	resetAfter          int
	now                 func() time.Time
	cycleFailureHandler cycleFailureHandler
}

type Option func(*config)

// New builds a poller for chains. Every matched batch goes through matcher
// and every event to sink.
func New(chains []Chain, matcher Matcher, sink NotificationSink, opts ...Option) (*service, error) {
	cfg := config{
		checkpointStorage:   nopCheckpoint{},
		retry:               retry.New(retry.WithAttempts(3), retry.WithDelay(200*time.Millisecond), retry.WithMaxDelay(time.Second)),
		callTimeout:         DefaultCallTimeout,
		backoffInitial:      defaultBackoffInitial,
		backoffFactor:       defaultBackoffFactor,
		resetAfter:          defaultResetAfter,
		now:                 time.Now,
		cycleFailureHandler: defaultOnCycleFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	s := &service{
		units:               make(map[string]*unit, len(chains)),
		matcher:             matcher,
		sink:                sink,
		checkpointStorage:   cfg.checkpointStorage,
		statusStorage:       cfg.statusStorage,
		retry:               cfg.retry,
		metrics:             m,
		callTimeout:         cfg.callTimeout,
		backoffInitial:      cfg.backoffInitial,
		backoffFactor:       cfg.backoffFactor,
		resetAfter:          cfg.resetAfter,
		now:                 cfg.now,
		cycleFailureHandler: cfg.cycleFailureHandler,
	}

	for _, chain := range chains {
		if err := s.AddChain(chain); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func defaultOnCycleFailure(ctx context.Context, failure CycleFailure) {
	if failure.Fatal {
		logger.Error(ctx, "chain disabled after fatal error",
			"chain.name", failure.Chain,
			"chain.state", failure.State,
			"chain.checkpoint", failure.Checkpoint,
			"error", failure.Err,
		)
		return
	}

	logger.Warn(ctx, "chain polling cycle failed, backing off",
		"chain.name", failure.Chain,
		"chain.state", failure.State,
		"chain.checkpoint", failure.Checkpoint,
		"chain.attempt", failure.Attempt,
		"error", failure.Err,
	)
}

func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

func WithStatusStorage(ss StatusStorage) Option {
	return func(c *config) {
		c.statusStorage = ss
	}
}

// WithRetry sets the policy used to persist checkpoints.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCallTimeout bounds every height, sink and storage call. Range fetches
// are left to the adapter, which bounds each call it makes. Default 10s.
func WithCallTimeout(d time.Duration) Option {
	return func(c *config) {
		c.callTimeout = d
	}
}

// WithBackoff sets the first backoff delay and the cap as a multiple of the
// chain's poll interval. Defaults: 1s and 8.
func WithBackoff(initial time.Duration, maxFactor int) Option {
	return func(c *config) {
		c.backoffInitial = initial
		c.backoffFactor = maxFactor
	}
}

// WithResetAfter sets how many consecutive failures trigger an adapter
// reset. Zero disables resets. Default 5.
func WithResetAfter(n int) Option {
	return func(c *config) {
		c.resetAfter = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

func WithCycleFailureHandler(f cycleFailureHandler) Option {
	return func(c *config) {
		c.cycleFailureHandler = f
	}
}
