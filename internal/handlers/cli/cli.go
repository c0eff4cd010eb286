package cli

import (
	"context"
	"os"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/tracking"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// Pipeline is the long running polling process started by `start`.
type Pipeline interface {
	Start(ctx context.Context) error
	Close()
}

// PipelineFactory builds the pipeline on demand so that commands other than
// `start` never open node connections.
type PipelineFactory func(ctx context.Context) (Pipeline, error)

// StatusStorage reads the chain statuses published by a running pipeline.
type StatusStorage interface {
	LoadStatuses(ctx context.Context) ([]chainpoll.ChainStatus, error)
}

// RateStorage stores USD rates used to value matches.
type RateStorage interface {
	SaveRate(ctx context.Context, symbol string, rate decimal.Decimal) error
}

// Dependencies are the services behind the commands.
type Dependencies struct {
	Tracking tracking.Service
	Statuses StatusStorage
	Rates    RateStorage
	Pipeline PipelineFactory
}

func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "chaintrack",
		Description:           "Command-line interface for tracking token transfers across blockchains.",
		Usage:                 "chaintrack [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(deps.Pipeline),
			trackCommand(deps.Tracking),
			untrackCommand(deps.Tracking),
			enableCommand(deps.Tracking),
			disableCommand(deps.Tracking),
			listRulesCommand(deps.Tracking),
			statusCommand(deps.Statuses),
			setRateCommand(deps.Rates),
		},
	}
}

// Run initializes and executes the chaintrack CLI application with the
// process arguments.
//
// Commands:
//
//   - `start`: runs the polling pipeline until interrupted.
//   - `track` / `untrack`: subscribe to or unsubscribe from a token on a chain.
//   - `enable` / `disable`: toggle a tracking rule for all of its subscribers.
//   - `rules`: list tracking rules.
//   - `status`: show the per-chain poller status.
//   - `set-rate`: set the USD rate of a symbol.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}
