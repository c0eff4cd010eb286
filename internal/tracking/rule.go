package tracking

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/pkg/types"
	"github.com/gabapcia/chaintrack/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

var (
	// ErrRuleNotFound is returned when no rule exists for a (chain, token) pair.
	ErrRuleNotFound = errors.New("tracking rule not found")

	// ErrNotSubscribed is returned when a subscriber removes a rule it does not reference.
	ErrNotSubscribed = errors.New("subscriber is not tracking this rule")
)

// TokenNative is the token identity of a chain's native asset.
const TokenNative = "native"

// maxSymbolLength separates ticker symbols from base58 token ids, which are
// always longer and case sensitive.
const maxSymbolLength = 15

// DirectionMode filters match events by classified direction.
type DirectionMode string

const (
	ModeBuyOnly  DirectionMode = "buy_only"
	ModeSellOnly DirectionMode = "sell_only"
	ModeBoth     DirectionMode = "both"
)

// Allows reports whether an event classified as d passes the mode.
func (m DirectionMode) Allows(d chainpoll.Direction) bool {
	switch m {
	case ModeBuyOnly:
		return d == chainpoll.DirectionBuy
	case ModeSellOnly:
		return d == chainpoll.DirectionSell
	default:
		return true
	}
}

// Rule is the shared tracking configuration for one token on one chain.
// Subscribers referencing the same (chain, token) share a single rule.
type Rule struct {
	ID        string        `json:"id"`
	Chain     string        `json:"chain"`
	Token     string        `json:"token"`
	Addresses []string      `json:"addresses,omitempty"`
	Mode      DirectionMode `json:"mode"`

	MinAmount      *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount      *decimal.Decimal `json:"max_amount,omitempty"`
	WhaleThreshold *decimal.Decimal `json:"whale_threshold,omitempty"`

	Enabled     bool      `json:"enabled"`
	Subscribers []string  `json:"subscribers"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InRange reports whether amount lies within the inclusive bounds. Missing
// bounds are unbounded.
func (r Rule) InRange(amount decimal.Decimal) bool {
	if r.MinAmount != nil && amount.LessThan(*r.MinAmount) {
		return false
	}
	if r.MaxAmount != nil && amount.GreaterThan(*r.MaxAmount) {
		return false
	}
	return true
}

// IsWhale reports whether amount exceeds the rule's whale threshold.
func (r Rule) IsWhale(amount decimal.Decimal) bool {
	return r.WhaleThreshold != nil && amount.GreaterThan(*r.WhaleThreshold)
}

// HasSubscriber reports whether subscriber references the rule.
func (r Rule) HasSubscriber(subscriber string) bool {
	return slices.Contains(r.Subscribers, subscriber)
}

// Subscription is a subscriber's request to track a token.
type Subscription struct {
	Subscriber string        `validate:"required"`
	Chain      string        `validate:"required"`
	Token      string        `validate:"required"`
	Addresses  []string      `validate:"dive,required"`
	Mode       DirectionMode `validate:"omitempty,oneof=buy_only sell_only both"`

	MinAmount      *decimal.Decimal
	MaxAmount      *decimal.Decimal
	WhaleThreshold *decimal.Decimal
}

func (s Subscription) validate() error {
	if err := validator.Validate(s); err != nil {
		return err
	}

	for field, amount := range map[string]*decimal.Decimal{
		"MinAmount":      s.MinAmount,
		"MaxAmount":      s.MaxAmount,
		"WhaleThreshold": s.WhaleThreshold,
	} {
		if amount != nil && amount.IsNegative() {
			return validator.Invalid(field, amount.String(), "gte=0")
		}
	}

	if s.MinAmount != nil && s.MaxAmount != nil && s.MinAmount.GreaterThan(*s.MaxAmount) {
		return validator.Invalid("MaxAmount", s.MaxAmount.String(), "gtefield=MinAmount")
	}

	return nil
}

// RuleID returns the identifier shared by every subscription to token on chain.
func RuleID(chain, token string) string {
	return chain + ":" + strings.ToLower(NormalizeToken(token))
}

// NormalizeToken canonicalizes a token identity: "native", a lowercased 0x
// contract, an uppercased ticker symbol, or an untouched base58 id.
func NormalizeToken(token string) string {
	token = strings.TrimSpace(token)

	switch {
	case strings.EqualFold(token, TokenNative):
		return TokenNative
	case hasHexPrefix(token):
		return strings.ToLower(token)
	case len(token) <= maxSymbolLength:
		return strings.ToUpper(token)
	default:
		return token
	}
}

// NormalizeAddress lowercases 0x addresses and keeps every other encoding,
// since base58 and bech32 forms are case sensitive or already canonical.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if hasHexPrefix(address) {
		return strings.ToLower(address)
	}
	return address
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func normalizeAddresses(addresses []string) []string {
	set := types.NewSet[string]()
	for _, a := range addresses {
		set.Add(NormalizeAddress(a))
	}
	return types.Sorted(set)
}

// applySubscription returns the rule resulting from sub. A new rule starts
// enabled; an existing one gains the subscriber, merges addresses and takes
// the subscription's filters.
func applySubscription(existing *Rule, sub Subscription, now time.Time) (Rule, error) {
	if err := sub.validate(); err != nil {
		return Rule{}, err
	}

	mode := sub.Mode
	if mode == "" {
		mode = ModeBoth
	}

	if existing == nil {
		return Rule{
			ID:             RuleID(sub.Chain, sub.Token),
			Chain:          sub.Chain,
			Token:          NormalizeToken(sub.Token),
			Addresses:      normalizeAddresses(sub.Addresses),
			Mode:           mode,
			MinAmount:      sub.MinAmount,
			MaxAmount:      sub.MaxAmount,
			WhaleThreshold: sub.WhaleThreshold,
			Enabled:        true,
			Subscribers:    []string{sub.Subscriber},
			CreatedAt:      now,
			UpdatedAt:      now,
		}, nil
	}

	rule := existing.clone()
	rule.Addresses = normalizeAddresses(append(rule.Addresses, sub.Addresses...))
	rule.Mode = mode
	rule.MinAmount = sub.MinAmount
	rule.MaxAmount = sub.MaxAmount
	rule.WhaleThreshold = sub.WhaleThreshold
	if !rule.HasSubscriber(sub.Subscriber) {
		rule.Subscribers = append(rule.Subscribers, sub.Subscriber)
		slices.Sort(rule.Subscribers)
	}
	rule.UpdatedAt = now

	return rule, nil
}

// removeSubscriber drops subscriber from rule. remaining is false when it was
// the last reference and the rule should be deleted.
func removeSubscriber(rule Rule, subscriber string, now time.Time) (updated Rule, remaining bool, err error) {
	if !rule.HasSubscriber(subscriber) {
		return rule, true, ErrNotSubscribed
	}

	updated = rule.clone()
	updated.Subscribers = slices.DeleteFunc(updated.Subscribers, func(s string) bool { return s == subscriber })
	updated.UpdatedAt = now

	return updated, len(updated.Subscribers) > 0, nil
}

func (r Rule) clone() Rule {
	r.Addresses = slices.Clone(r.Addresses)
	r.Subscribers = slices.Clone(r.Subscribers)
	return r
}
