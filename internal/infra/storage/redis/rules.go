package redis

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	"github.com/gabapcia/chaintrack/internal/tracking"
)

// rulesKey is the hash holding every tracking rule, field = rule id.
const rulesKey = "tracking:rules"

// SaveRule upserts rule as JSON.
func (c *client) SaveRule(ctx context.Context, rule tracking.Rule) error {
	data, err := json.Marshal(rule)
	if err != nil {
		return err
	}

	return c.conn.HSet(ctx, rulesKey, rule.ID, data).Err()
}

// DeleteRule removes the rule. Deleting a missing rule is not an error.
func (c *client) DeleteRule(ctx context.Context, id string) error {
	return c.conn.HDel(ctx, rulesKey, id).Err()
}

// LoadRules returns every stored rule ordered by id. Entries that no longer
// decode are skipped and logged.
func (c *client) LoadRules(ctx context.Context) ([]tracking.Rule, error) {
	entries, err := c.conn.HGetAll(ctx, rulesKey).Result()
	if err != nil {
		return nil, err
	}

	rules := make([]tracking.Rule, 0, len(entries))
	for id, data := range entries {
		var rule tracking.Rule
		if err := json.Unmarshal([]byte(data), &rule); err != nil {
			logger.Warn(ctx, "skipping undecodable tracking rule",
				"rule.id", id,
				"error", err,
			)
			continue
		}

		rules = append(rules, rule)
	}

	slices.SortFunc(rules, func(a, b tracking.Rule) int {
		return strings.Compare(a.ID, b.ID)
	})

	return rules, nil
}

var _ tracking.RuleStorage = new(client)
