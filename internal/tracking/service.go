package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	"github.com/gabapcia/chaintrack/internal/pkg/x/chflow"
)

// Service is the subscription management surface over a RuleSet. Every
// mutation is persisted before it becomes visible to matching.
type Service interface {
	// AddRule subscribes sub.Subscriber to sub.Token on sub.Chain.
	AddRule(ctx context.Context, sub Subscription) (Rule, error)

	// RemoveRule drops subscriber from the rule, deleting it with the last
	// reference.
	RemoveRule(ctx context.Context, subscriber, chain, token string) error

	// SetEnabled enables or disables a rule for all of its subscribers.
	SetEnabled(ctx context.Context, chain, token string, enabled bool) (Rule, error)

	// Rules lists the rules referenced by subscriber, or every rule when
	// subscriber is empty.
	Rules(subscriber string) []Rule

	// Refresh reloads the rule set from storage.
	Refresh(ctx context.Context) error
}

// ChainValidator rejects chains the process does not poll.
type ChainValidator func(chain string) error

// AddressValidator rejects addresses that are malformed for chain.
type AddressValidator func(chain, address string) error

type service struct {
	mu sync.Mutex

	ruleSet          *RuleSet
	ruleStorage      RuleStorage
	chainValidator   ChainValidator
	addressValidator AddressValidator
}

var _ Service = (*service)(nil)

func (s *service) validateTarget(chain, token string, addresses []string) error {
	if s.chainValidator != nil {
		if err := s.chainValidator(chain); err != nil {
			return err
		}
	}

	if s.addressValidator == nil {
		return nil
	}

	if NormalizeToken(token) != TokenNative && len(token) > maxSymbolLength {
		if err := s.addressValidator(chain, token); err != nil {
			return err
		}
	}

	for _, address := range addresses {
		if err := s.addressValidator(chain, address); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) AddRule(ctx context.Context, sub Subscription) (Rule, error) {
	if err := sub.validate(); err != nil {
		return Rule{}, err
	}

	if err := s.validateTarget(sub.Chain, sub.Token, sub.Addresses); err != nil {
		return Rule{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var existing *Rule
	if r, ok := s.ruleSet.Get(RuleID(sub.Chain, sub.Token)); ok {
		existing = &r
	}

	rule, err := applySubscription(existing, sub, s.ruleSet.now())
	if err != nil {
		return Rule{}, err
	}

	if err := s.ruleStorage.SaveRule(ctx, rule); err != nil {
		return Rule{}, err
	}

	s.ruleSet.Put(rule)

	logger.Info(ctx, "tracking rule saved",
		"rule.id", rule.ID,
		"rule.subscribers", len(rule.Subscribers),
		"subscriber.id", sub.Subscriber,
	)

	return rule, nil
}

func (s *service) RemoveRule(ctx context.Context, subscriber, chain, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := RuleID(chain, token)
	current, ok := s.ruleSet.Get(id)
	if !ok {
		return ErrRuleNotFound
	}

	rule, remaining, err := removeSubscriber(current, subscriber, s.ruleSet.now())
	if err != nil {
		return err
	}

	if !remaining {
		if err := s.ruleStorage.DeleteRule(ctx, id); err != nil {
			return err
		}

		s.ruleSet.Delete(id)
		logger.Info(ctx, "tracking rule deleted", "rule.id", id, "subscriber.id", subscriber)
		return nil
	}

	if err := s.ruleStorage.SaveRule(ctx, rule); err != nil {
		return err
	}

	s.ruleSet.Put(rule)
	logger.Info(ctx, "subscriber removed from tracking rule",
		"rule.id", id,
		"rule.subscribers", len(rule.Subscribers),
		"subscriber.id", subscriber,
	)

	return nil
}

func (s *service) SetEnabled(ctx context.Context, chain, token string, enabled bool) (Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rule, ok := s.ruleSet.Get(RuleID(chain, token))
	if !ok {
		return Rule{}, ErrRuleNotFound
	}

	rule.Enabled = enabled
	rule.UpdatedAt = s.ruleSet.now()

	if err := s.ruleStorage.SaveRule(ctx, rule); err != nil {
		return Rule{}, err
	}

	s.ruleSet.Put(rule)
	logger.Info(ctx, "tracking rule toggled", "rule.id", rule.ID, "rule.enabled", enabled)

	return rule, nil
}

func (s *service) Rules(subscriber string) []Rule {
	if subscriber == "" {
		return s.ruleSet.Rules()
	}
	return s.ruleSet.RulesFor(subscriber)
}

func (s *service) Refresh(ctx context.Context) error {
	rules, err := s.ruleStorage.LoadRules(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ruleSet.Replace(rules)
	return nil
}

// RunRefresh reloads rules every interval until ctx is done. Failed reloads
// keep the current set and are logged.
func (s *service) RunRefresh(ctx context.Context, interval time.Duration) {
	for chflow.Sleep(ctx, interval) {
		if err := s.Refresh(ctx); err != nil {
			logger.Warn(ctx, "failed to refresh tracking rules", "error", err)
			continue
		}

		logger.Debug(ctx, "tracking rules refreshed", "rule.count", len(s.ruleSet.Rules()))
	}
}

type config struct {
	ruleStorage      RuleStorage
	chainValidator   ChainValidator
	addressValidator AddressValidator
}

type Option func(*config)

// New returns a Service mutating ruleSet. Without WithRuleStorage changes
// only live in memory.
func New(ruleSet *RuleSet, opts ...Option) *service {
	cfg := config{
		ruleStorage: nopRuleStorage{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		ruleSet:          ruleSet,
		ruleStorage:      cfg.ruleStorage,
		chainValidator:   cfg.chainValidator,
		addressValidator: cfg.addressValidator,
	}
}

func WithRuleStorage(rs RuleStorage) Option {
	return func(c *config) {
		c.ruleStorage = rs
	}
}

func WithChainValidator(v ChainValidator) Option {
	return func(c *config) {
		c.chainValidator = v
	}
}

func WithAddressValidator(v AddressValidator) Option {
	return func(c *config) {
		c.addressValidator = v
	}
}
