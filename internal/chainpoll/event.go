package chainpoll

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction is the best-effort classification of a transfer relative to the
// tracked wallet.
type Direction string

const (
	DirectionBuy      Direction = "buy"
	DirectionSell     Direction = "sell"
	DirectionTransfer Direction = "transfer"
)

// MatchEvent is a transaction that satisfied a tracking rule.
type MatchEvent struct {
	Chain       string
	RuleID      string
	Token       string
	Subscribers []string
	Transaction RawTransaction
	Direction   Direction

	// DEX names the venue recognized by the classifier, if any.
	DEX string

	// Whale is set when the amount exceeds the rule's whale threshold.
	Whale bool

	// AmountUSD is filled by pricing sinks when a rate is known.
	AmountUSD *decimal.Decimal
}

// Key identifies the delivery of one transaction for one rule. Sinks use it
// to drop duplicate deliveries.
func (e MatchEvent) Key() string {
	return fmt.Sprintf("%s:%s:%s", e.Chain, e.Transaction.Hash, e.RuleID)
}

// Matcher turns a scanned batch into match events. It must be pure with
// respect to its inputs and the rule set it reads.
type Matcher interface {
	Match(chain string, txs []RawTransaction) []MatchEvent
}

// NotificationSink receives match events. Any error is treated as transient
// and the event is delivered again on a later cycle, so implementations must
// tolerate duplicates of the same Key.
type NotificationSink interface {
	Notify(ctx context.Context, event MatchEvent) error
}
