package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/chaintrack/internal/config"
	"github.com/gabapcia/chaintrack/internal/handlers/cli"
	"github.com/gabapcia/chaintrack/internal/infra/blockchain/registry"
	"github.com/gabapcia/chaintrack/internal/infra/storage/postgres"
	"github.com/gabapcia/chaintrack/internal/infra/storage/redis"
	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	"github.com/gabapcia/chaintrack/internal/pkg/telemetry"
	"github.com/gabapcia/chaintrack/internal/tracking"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	chains, err := config.LoadChains(cfg.ChainsFile)
	if err != nil {
		return err
	}

	catalog, err := registry.NewCatalog(chains)
	if err != nil {
		return err
	}

	store, err := redis.NewClient(ctx, cfg.Redis.Addr,
		redis.WithCredentials(cfg.Redis.Username, cfg.Redis.Password),
		redis.WithDB(cfg.Redis.DB),
		redis.WithDeliveredTTL(cfg.Idempotency.Retention),
	)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer store.Close()

	var ruleStorage tracking.RuleStorage = store
	if cfg.RuleStore == config.RuleStorePostgres {
		pg, err := postgres.NewClient(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer pg.Close()

		if err := pg.Migrate(ctx); err != nil {
			return err
		}
		ruleStorage = pg
	}

	ruleSet := tracking.NewRuleSet()
	trackingSvc := tracking.New(ruleSet,
		tracking.WithRuleStorage(ruleStorage),
		tracking.WithChainValidator(catalog.ValidateChain),
		tracking.WithAddressValidator(catalog.ValidateAddress),
	)

	return cli.Run(ctx, cli.Dependencies{
		Tracking: trackingSvc,
		Statuses: store,
		Rates:    store,
		Pipeline: func(ctx context.Context) (cli.Pipeline, error) {
			return newPipeline(ctx, pipelineInput{
				cfg:      cfg,
				chains:   chains,
				catalog:  catalog,
				tracking: trackingSvc,
				ruleSet:  ruleSet,
				store:    store,
			})
		},
	})
}
