package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// startPipelineCommand returns a CLI command that builds and starts the
// polling pipeline for every configured chain.
//
// Usage example:
//
//	chaintrack start
//
// The process runs until it receives SIGINT or SIGTERM, or ctx is done.
func startPipelineCommand(newPipeline PipelineFactory) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts polling every configured chain and delivering matches to the notifiers.",
		Usage:       "Runs the polling pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			p, err := newPipeline(ctx)
			if err != nil {
				return err
			}

			if err := p.Start(ctx); err != nil {
				return err
			}
			defer p.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}
