package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// errNonPositiveRate rejects zero and negative USD rates.
var errNonPositiveRate = errors.New("rate must be positive")

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

// statusCommand returns a CLI command that prints the last status published
// by the pipeline for each chain.
//
// Usage example:
//
//	chaintrack status
func statusCommand(statuses StatusStorage) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Show the polling status of every chain.",
		Usage:       "Prints state, checkpoint and last error per chain as last published by the pipeline.",
		Action: func(ctx context.Context, c *cli.Command) error {
			list, err := statuses.LoadStatuses(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(c.Root().Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CHAIN\tSTATE\tCHECKPOINT\tLAST SUCCESS\tFAILURES\tLAST ERROR\tLAST ERROR AT")
			for _, s := range list {
				lastError := s.LastError
				if lastError == "" {
					lastError = "-"
				}

				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\t%s\n",
					s.Chain,
					s.State,
					s.Checkpoint,
					formatTime(s.LastSuccessAt),
					s.ConsecutiveFailures,
					lastError,
					formatTime(s.LastErrorAt),
				)
			}
			return tw.Flush()
		},
	}
}

// setRateCommand returns a CLI command that stores the USD price of a
// symbol, used to value matches.
//
// Usage example:
//
//	chaintrack set-rate --symbol ETH --usd 3500.25
func setRateCommand(rates RateStorage) *cli.Command {
	return &cli.Command{
		Name:        "set-rate",
		Description: "Set the USD rate of a token symbol.",
		Usage:       "Stores the USD price of one unit of the symbol. Requires symbol and usd.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "symbol",
				Usage:    "Token symbol (e.g., ETH, USDT)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "usd",
				Usage:    "USD price of one unit",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rate, err := decimal.NewFromString(c.String("usd"))
			if err != nil {
				return fmt.Errorf("invalid --usd %q: %w", c.String("usd"), err)
			}

			if !rate.IsPositive() {
				return errNonPositiveRate
			}

			return rates.SaveRate(ctx, strings.ToUpper(c.String("symbol")), rate)
		},
	}
}
