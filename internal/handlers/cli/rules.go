package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gabapcia/chaintrack/internal/tracking"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

func chainFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "chain",
		Usage:    "Chain name as configured in the chains file (e.g., ethereum, solana)",
		Required: true,
	}
}

func tokenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "token",
		Usage:    "Token symbol, contract address, mint, or 'native'",
		Required: true,
	}
}

func subscriberFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "subscriber",
		Usage:    "Subscriber id notifications are delivered to (e.g., a Telegram chat id)",
		Required: required,
	}
}

// decimalFlag parses an optional amount flag. Empty means unset.
func decimalFlag(c *cli.Command, name string) (*decimal.Decimal, error) {
	raw := c.String(name)
	if raw == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return &d, nil
}

func formatAmount(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func printRules(w io.Writer, rules []tracking.Rule) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMODE\tENABLED\tMIN\tMAX\tWHALE\tADDRESSES\tSUBSCRIBERS")
	for _, rule := range rules {
		addresses := "*"
		if len(rule.Addresses) > 0 {
			addresses = strings.Join(rule.Addresses, ",")
		}

		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\t%s\t%s\t%s\n",
			rule.ID,
			rule.Mode,
			rule.Enabled,
			formatAmount(rule.MinAmount),
			formatAmount(rule.MaxAmount),
			formatAmount(rule.WhaleThreshold),
			addresses,
			strings.Join(rule.Subscribers, ","),
		)
	}
	return tw.Flush()
}

// trackCommand returns a CLI command that subscribes to a token on a chain.
// A second subscriber of the same token shares the rule and replaces its
// filters.
//
// Usage example:
//
//	chaintrack track --subscriber 12345 --chain ethereum --token USDT --mode buy_only --min 10000
func trackCommand(svc tracking.Service) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Subscribe to transfers of a token on a chain, optionally filtered by wallet, direction and amount.",
		Usage:       "Adds or updates a tracking rule. Requires subscriber, chain and token.",
		Flags: []cli.Flag{
			subscriberFlag(true),
			chainFlag(),
			tokenFlag(),
			&cli.StringSliceFlag{
				Name:  "address",
				Usage: "Wallet address to restrict matches to (repeatable). Omit to track every transfer of the token",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Direction filter: buy_only, sell_only or both",
				Value: string(tracking.ModeBoth),
			},
			&cli.StringFlag{Name: "min", Usage: "Minimum amount, inclusive"},
			&cli.StringFlag{Name: "max", Usage: "Maximum amount, inclusive"},
			&cli.StringFlag{Name: "whale", Usage: "Amount above which a match is flagged as whale"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sub := tracking.Subscription{
				Subscriber: c.String("subscriber"),
				Chain:      c.String("chain"),
				Token:      c.String("token"),
				Addresses:  c.StringSlice("address"),
				Mode:       tracking.DirectionMode(c.String("mode")),
			}

			var err error
			if sub.MinAmount, err = decimalFlag(c, "min"); err != nil {
				return err
			}
			if sub.MaxAmount, err = decimalFlag(c, "max"); err != nil {
				return err
			}
			if sub.WhaleThreshold, err = decimalFlag(c, "whale"); err != nil {
				return err
			}

			if err := svc.Refresh(ctx); err != nil {
				return err
			}

			rule, err := svc.AddRule(ctx, sub)
			if err != nil {
				return err
			}

			return printRules(c.Root().Writer, []tracking.Rule{rule})
		},
	}
}

// untrackCommand returns a CLI command that removes a subscriber from a
// rule. The rule is deleted with its last subscriber.
//
// Usage example:
//
//	chaintrack untrack --subscriber 12345 --chain ethereum --token USDT
func untrackCommand(svc tracking.Service) *cli.Command {
	return &cli.Command{
		Name:        "untrack",
		Description: "Unsubscribe from a token on a chain.",
		Usage:       "Removes the subscriber from the tracking rule. Requires subscriber, chain and token.",
		Flags: []cli.Flag{
			subscriberFlag(true),
			chainFlag(),
			tokenFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := svc.Refresh(ctx); err != nil {
				return err
			}

			return svc.RemoveRule(ctx, c.String("subscriber"), c.String("chain"), c.String("token"))
		},
	}
}

func toggleCommand(svc tracking.Service, name string, enabled bool) *cli.Command {
	verb := "Enables"
	if !enabled {
		verb = "Disables"
	}

	return &cli.Command{
		Name:        name,
		Description: verb + " a tracking rule for all of its subscribers.",
		Usage:       verb + " the rule of a token on a chain. Requires chain and token.",
		Flags: []cli.Flag{
			chainFlag(),
			tokenFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := svc.Refresh(ctx); err != nil {
				return err
			}

			rule, err := svc.SetEnabled(ctx, c.String("chain"), c.String("token"), enabled)
			if err != nil {
				return err
			}

			return printRules(c.Root().Writer, []tracking.Rule{rule})
		},
	}
}

// enableCommand usage example:
//
//	chaintrack enable --chain ethereum --token USDT
func enableCommand(svc tracking.Service) *cli.Command {
	return toggleCommand(svc, "enable", true)
}

// disableCommand usage example:
//
//	chaintrack disable --chain ethereum --token USDT
func disableCommand(svc tracking.Service) *cli.Command {
	return toggleCommand(svc, "disable", false)
}

// listRulesCommand returns a CLI command that lists the rules of a
// subscriber, or every rule without --subscriber.
func listRulesCommand(svc tracking.Service) *cli.Command {
	return &cli.Command{
		Name:        "rules",
		Description: "List tracking rules.",
		Usage:       "Prints the tracking rules referenced by a subscriber, or all rules.",
		Flags: []cli.Flag{
			subscriberFlag(false),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := svc.Refresh(ctx); err != nil {
				return err
			}

			return printRules(c.Root().Writer, svc.Rules(c.String("subscriber")))
		},
	}
}
