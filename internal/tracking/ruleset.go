package tracking

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/pkg/types"
)

type indexKey struct {
	chain string
	token string
}

type compiledRule struct {
	rule      Rule
	addresses types.Set[string]
}

// matchesParty reports whether tx touches a tracked address. Rules without
// addresses track every transfer of the token.
func (c compiledRule) matchesParty(tx chainpoll.RawTransaction) bool {
	if len(c.addresses) == 0 {
		return true
	}
	return c.addresses.Has(NormalizeAddress(tx.To)) || c.addresses.Has(NormalizeAddress(tx.From))
}

// snapshot is an immutable index of enabled rules by (chain, token).
type snapshot struct {
	byKey map[indexKey][]compiledRule
}

// RuleSet holds every tracking rule and answers Match from an immutable
// snapshot that is swapped atomically on each mutation. Readers never block.
type RuleSet struct {
	mu    sync.Mutex
	rules map[string]Rule
	snap  atomic.Pointer[snapshot]
	now   func() time.Time
}

// NewRuleSet returns a RuleSet holding rules.
func NewRuleSet(rules ...Rule) *RuleSet {
	rs := &RuleSet{
		rules: make(map[string]Rule, len(rules)),
		now:   time.Now,
	}
	for _, r := range rules {
		rs.rules[r.ID] = r.clone()
	}
	rs.rebuild()
	return rs
}

// rebuild recompiles the index. Callers hold rs.mu (or own rs exclusively).
func (rs *RuleSet) rebuild() {
	index := types.NewDefaultMap[indexKey, []compiledRule](func() []compiledRule { return nil })
	for _, r := range rs.rules {
		if !r.Enabled {
			continue
		}

		key := indexKey{chain: r.Chain, token: NormalizeToken(r.Token)}
		index.Set(key, append(index.Get(key), compiledRule{
			rule:      r.clone(),
			addresses: types.NewSet(normalizeAddresses(r.Addresses)...),
		}))
	}

	rs.snap.Store(&snapshot{byKey: index.ToMap()})
}

// tokenKeys lists the identities under which tx can be tracked: the native
// marker or its contract, plus its currency symbol.
func tokenKeys(tx chainpoll.RawTransaction) []string {
	keys := make([]string, 0, 2)
	if tx.IsNative() {
		keys = append(keys, TokenNative)
	} else {
		keys = append(keys, NormalizeToken(tx.Contract))
	}

	if tx.Currency != "" {
		if symbol := NormalizeToken(tx.Currency); !slices.Contains(keys, symbol) {
			keys = append(keys, symbol)
		}
	}

	return keys
}

// Match returns the enabled rules of chain that track tx's token, one of its
// parties and its amount, ordered by rule ID.
func (rs *RuleSet) Match(chain string, tx chainpoll.RawTransaction) []Rule {
	snap := rs.snap.Load()

	var matched []Rule
	for _, token := range tokenKeys(tx) {
		for _, c := range snap.byKey[indexKey{chain: chain, token: token}] {
			if !c.matchesParty(tx) || !c.rule.InRange(tx.Value) {
				continue
			}

			if slices.ContainsFunc(matched, func(r Rule) bool { return r.ID == c.rule.ID }) {
				continue
			}

			matched = append(matched, c.rule.clone())
		}
	}

	slices.SortFunc(matched, func(a, b Rule) int { return cmp.Compare(a.ID, b.ID) })
	return matched
}

// Get returns the rule with id.
func (rs *RuleSet) Get(id string) (Rule, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	r, ok := rs.rules[id]
	return r.clone(), ok
}

// Rules returns every rule ordered by ID.
func (rs *RuleSet) Rules() []Rule {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	out := make([]Rule, 0, len(rs.rules))
	for _, r := range rs.rules {
		out = append(out, r.clone())
	}

	slices.SortFunc(out, func(a, b Rule) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// RulesFor returns the rules referenced by subscriber ordered by ID.
func (rs *RuleSet) RulesFor(subscriber string) []Rule {
	return slices.DeleteFunc(rs.Rules(), func(r Rule) bool {
		return !r.HasSubscriber(subscriber)
	})
}

// Add applies sub to the set and returns the resulting rule.
func (rs *RuleSet) Add(sub Subscription) (Rule, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	var existing *Rule
	if r, ok := rs.rules[RuleID(sub.Chain, sub.Token)]; ok {
		existing = &r
	}

	rule, err := applySubscription(existing, sub, rs.now())
	if err != nil {
		return Rule{}, err
	}

	rs.rules[rule.ID] = rule
	rs.rebuild()
	return rule.clone(), nil
}

// Remove drops subscriber from the rule with id, deleting the rule when no
// subscriber is left. deleted reports whether the rule is gone.
func (rs *RuleSet) Remove(id, subscriber string) (rule Rule, deleted bool, err error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	current, ok := rs.rules[id]
	if !ok {
		return Rule{}, false, ErrRuleNotFound
	}

	rule, remaining, err := removeSubscriber(current, subscriber, rs.now())
	if err != nil {
		return Rule{}, false, err
	}

	if remaining {
		rs.rules[id] = rule
	} else {
		delete(rs.rules, id)
	}

	rs.rebuild()
	return rule.clone(), !remaining, nil
}

// SetEnabled toggles the rule with id. Disabled rules stay in the set but
// never match.
func (rs *RuleSet) SetEnabled(id string, enabled bool) (Rule, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rule, ok := rs.rules[id]
	if !ok {
		return Rule{}, ErrRuleNotFound
	}

	rule = rule.clone()
	rule.Enabled = enabled
	rule.UpdatedAt = rs.now()

	rs.rules[id] = rule
	rs.rebuild()
	return rule.clone(), nil
}

// Put stores rule as is, replacing any rule with the same ID.
func (rs *RuleSet) Put(rule Rule) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.rules[rule.ID] = rule.clone()
	rs.rebuild()
}

// Delete removes the rule with id if present.
func (rs *RuleSet) Delete(id string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	delete(rs.rules, id)
	rs.rebuild()
}

// Replace swaps the whole set for rules in a single step.
func (rs *RuleSet) Replace(rules []Rule) {
	next := make(map[string]Rule, len(rules))
	for _, r := range rules {
		next[r.ID] = r.clone()
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.rules = next
	rs.rebuild()
}
