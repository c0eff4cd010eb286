package postgres

import (
	"context"
	"fmt"

	"github.com/gabapcia/chaintrack/internal/tracking"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func decimalText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}

	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveRule upserts rule by id.
func (c *client) SaveRule(ctx context.Context, rule tracking.Rule) error {
	query := `
		INSERT INTO tracking_rules (
			id, chain, token, addresses, mode, min_amount, max_amount, whale_threshold,
			enabled, subscribers, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8::numeric, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			addresses       = EXCLUDED.addresses,
			mode            = EXCLUDED.mode,
			min_amount      = EXCLUDED.min_amount,
			max_amount      = EXCLUDED.max_amount,
			whale_threshold = EXCLUDED.whale_threshold,
			enabled         = EXCLUDED.enabled,
			subscribers     = EXCLUDED.subscribers,
			updated_at      = EXCLUDED.updated_at
	`

	addresses, subscribers := rule.Addresses, rule.Subscribers
	if addresses == nil {
		addresses = []string{}
	}
	if subscribers == nil {
		subscribers = []string{}
	}

	_, err := c.pool.Exec(ctx, query,
		rule.ID,
		rule.Chain,
		rule.Token,
		addresses,
		string(rule.Mode),
		decimalText(rule.MinAmount),
		decimalText(rule.MaxAmount),
		decimalText(rule.WhaleThreshold),
		rule.Enabled,
		subscribers,
		rule.CreatedAt,
		rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save tracking rule: %w", err)
	}
	return nil
}

// DeleteRule removes the rule. Deleting a missing rule is not an error.
func (c *client) DeleteRule(ctx context.Context, id string) error {
	if _, err := c.pool.Exec(ctx, `DELETE FROM tracking_rules WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tracking rule: %w", err)
	}
	return nil
}

func scanRule(row pgx.Row) (tracking.Rule, error) {
	var (
		rule                 tracking.Rule
		mode                 string
		minAmount, maxAmount *string
		whaleThreshold       *string
	)

	err := row.Scan(
		&rule.ID,
		&rule.Chain,
		&rule.Token,
		&rule.Addresses,
		&mode,
		&minAmount,
		&maxAmount,
		&whaleThreshold,
		&rule.Enabled,
		&rule.Subscribers,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return tracking.Rule{}, err
	}

	rule.Mode = tracking.DirectionMode(mode)
	if len(rule.Addresses) == 0 {
		rule.Addresses = nil
	}

	if rule.MinAmount, err = parseDecimal(minAmount); err != nil {
		return tracking.Rule{}, err
	}
	if rule.MaxAmount, err = parseDecimal(maxAmount); err != nil {
		return tracking.Rule{}, err
	}
	if rule.WhaleThreshold, err = parseDecimal(whaleThreshold); err != nil {
		return tracking.Rule{}, err
	}

	return rule, nil
}

// LoadRules returns every rule ordered by id.
func (c *client) LoadRules(ctx context.Context) ([]tracking.Rule, error) {
	query := `
		SELECT id, chain, token, addresses, mode, min_amount::text, max_amount::text,
			whale_threshold::text, enabled, subscribers, created_at, updated_at
		FROM tracking_rules
		ORDER BY id ASC
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load tracking rules: %w", err)
	}
	defer rows.Close()

	var rules []tracking.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tracking rule: %w", err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load tracking rules: %w", err)
	}

	return rules, nil
}

var _ tracking.RuleStorage = new(client)
