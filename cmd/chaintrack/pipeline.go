package main

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/chaintrack/internal/alerting"
	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/config"
	"github.com/gabapcia/chaintrack/internal/handlers/cli"
	"github.com/gabapcia/chaintrack/internal/infra/blockchain/registry"
	"github.com/gabapcia/chaintrack/internal/infra/notifier/nats"
	"github.com/gabapcia/chaintrack/internal/infra/notifier/telegram"
	"github.com/gabapcia/chaintrack/internal/matching"
	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	"github.com/gabapcia/chaintrack/internal/tracking"
)

// store is the redis client seen through the contracts the pipeline needs.
type store interface {
	chainpoll.CheckpointStorage
	chainpoll.StatusStorage
	alerting.IdempotencyGuard
	alerting.RateStorage
}

type ruleRefresher interface {
	Refresh(ctx context.Context) error
	RunRefresh(ctx context.Context, interval time.Duration)
}

type pipelineInput struct {
	cfg      config.Config
	chains   []config.Chain
	catalog  *registry.Catalog
	tracking ruleRefresher
	ruleSet  *tracking.RuleSet
	store    store
}

type pipeline struct {
	poller          chainpoll.Service
	tracking        ruleRefresher
	refreshInterval time.Duration
	closers         []func()

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

var _ cli.Pipeline = (*pipeline)(nil)

func newSink(ctx context.Context, in pipelineInput) (chainpoll.NotificationSink, []func(), error) {
	var (
		cfg       = in.cfg
		formatter = alerting.NewFormatter(in.catalog.Explorers())
		sinks     []chainpoll.NotificationSink
		closers   []func()
	)

	if cfg.HasNotifier(config.NotifierLog) {
		sinks = append(sinks, alerting.NewLogSink(formatter))
	}

	if cfg.HasNotifier(config.NotifierTelegram) {
		tg := telegram.New(cfg.Telegram.Token, formatter, telegram.WithBaseURL(cfg.Telegram.BaseURL))
		sinks = append(sinks, alerting.PerSubscriber(
			alerting.Idempotent(config.NotifierTelegram, tg, in.store, cfg.Idempotency.ClaimTTL),
		))
	}

	if cfg.HasNotifier(config.NotifierNATS) {
		nc, err := nats.Connect(ctx, cfg.NATS.URL, cfg.Telemetry.ServiceName)
		if err != nil {
			return nil, closers, err
		}
		closers = append(closers, func() { _ = nc.Close() })

		if err := nc.EnsureStream(ctx, cfg.NATS.Stream, cfg.NATS.SubjectPrefix); err != nil {
			return nil, closers, err
		}
		sinks = append(sinks, nats.NewSink(nc, cfg.NATS.SubjectPrefix, formatter))
	}

	return alerting.WithUSDValue(alerting.Fanout(sinks...), in.store), closers, nil
}

// newPipeline dials every chain and builds the poller. Resources opened
// along the way are released on failure.
func newPipeline(ctx context.Context, in pipelineInput) (p *pipeline, err error) {
	var closers []func()
	defer func() {
		if err != nil {
			for _, c := range slices.Backward(closers) {
				c()
			}
		}
	}()

	reg, err := registry.New(ctx, in.chains, registry.WithCallTimeout(in.cfg.CallTimeout))
	if err != nil {
		return nil, fmt.Errorf("build chain adapters: %w", err)
	}
	closers = append(closers, reg.Close)

	sink, sinkClosers, err := newSink(ctx, in)
	closers = append(closers, sinkClosers...)
	if err != nil {
		return nil, fmt.Errorf("build notifiers: %w", err)
	}

	matcher := matching.New(in.ruleSet, reg.MatcherOptions()...)

	poller, err := chainpoll.New(reg.Chains(), matcher, sink,
		chainpoll.WithCheckpointStorage(in.store),
		chainpoll.WithStatusStorage(in.store),
		chainpoll.WithCallTimeout(in.cfg.CallTimeout),
	)
	if err != nil {
		return nil, err
	}

	return &pipeline{
		poller:          poller,
		tracking:        in.tracking,
		refreshInterval: in.cfg.RuleRefreshInterval,
		closers:         closers,
	}, nil
}

// Start loads the rules, keeps them fresh in the background and starts
// polling.
func (p *pipeline) Start(ctx context.Context) error {
	if err := p.tracking.Refresh(ctx); err != nil {
		return fmt.Errorf("load tracking rules: %w", err)
	}

	refreshCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.tracking.RunRefresh(refreshCtx, p.refreshInterval)
	}()

	if err := p.poller.Start(ctx); err != nil {
		cancel()
		p.wg.Wait()
		return err
	}

	logger.Info(ctx, "pipeline started")
	return nil
}

// Close stops polling, then the rule refresh, then releases connections.
func (p *pipeline) Close() {
	p.poller.Close()

	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()

	for _, c := range slices.Backward(p.closers) {
		c()
	}
}
