package tracking

import "context"

// RuleStorage persists tracking rules so they survive restarts and can be
// shared between the poller and the command line.
type RuleStorage interface {
	// SaveRule inserts or overwrites the rule with rule.ID.
	SaveRule(ctx context.Context, rule Rule) error

	// DeleteRule removes the rule with id. Deleting a missing rule is not an error.
	DeleteRule(ctx context.Context, id string) error

	// LoadRules returns every stored rule.
	LoadRules(ctx context.Context) ([]Rule, error)
}

type nopRuleStorage struct{}

var _ RuleStorage = nopRuleStorage{}

func (nopRuleStorage) SaveRule(context.Context, Rule) error { return nil }

func (nopRuleStorage) DeleteRule(context.Context, string) error { return nil }

func (nopRuleStorage) LoadRules(context.Context) ([]Rule, error) { return nil, nil }
