// Package matching turns scanned transactions into match events: it looks
// up the tracking rules each transaction satisfies, classifies its direction
// with the chain's strategy and drops duplicates within the batch.
package matching

import (
	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/pkg/types"
	"github.com/gabapcia/chaintrack/internal/tracking"
)

// RuleMatcher finds the rules a transaction satisfies.
type RuleMatcher interface {
	Match(chain string, tx chainpoll.RawTransaction) []tracking.Rule
}

type matcher struct {
	rules       RuleMatcher
	classifiers map[string]Classifier
	fallback    Classifier
}

var _ chainpoll.Matcher = (*matcher)(nil)

type dedupeKey struct {
	hash   string
	ruleID string
}

// Match emits one event per (transaction hash, rule) whose classified
// direction passes the rule's mode.
func (m *matcher) Match(chain string, txs []chainpoll.RawTransaction) []chainpoll.MatchEvent {
	classifier, ok := m.classifiers[chain]
	if !ok {
		classifier = m.fallback
	}

	var (
		events []chainpoll.MatchEvent
		seen   = types.NewSet[dedupeKey]()
	)

	for _, tx := range txs {
		rules := m.rules.Match(chain, tx)
		if len(rules) == 0 {
			continue
		}

		class := classifier.Classify(tx)
		for _, rule := range rules {
			if !rule.Mode.Allows(class.Direction) {
				continue
			}

			key := dedupeKey{hash: tx.Hash, ruleID: rule.ID}
			if seen.Has(key) {
				continue
			}
			seen.Add(key)

			events = append(events, chainpoll.MatchEvent{
				Chain:       chain,
				RuleID:      rule.ID,
				Token:       rule.Token,
				Subscribers: rule.Subscribers,
				Transaction: tx,
				Direction:   class.Direction,
				DEX:         class.DEX,
				Whale:       rule.IsWhale(tx.Value),
			})
		}
	}

	return events
}

type config struct {
	classifiers map[string]Classifier
}

type Option func(*config)

// WithClassifier sets the strategy used for chain. Chains without one treat
// every transaction as a plain transfer.
func WithClassifier(chain string, c Classifier) Option {
	return func(cfg *config) {
		cfg.classifiers[chain] = c
	}
}

func New(rules RuleMatcher, opts ...Option) *matcher {
	cfg := config{
		classifiers: make(map[string]Classifier),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &matcher{
		rules:       rules,
		classifiers: cfg.classifiers,
		fallback:    transferClassifier{},
	}
}
