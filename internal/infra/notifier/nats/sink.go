package nats

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gabapcia/chaintrack/internal/alerting"
	"github.com/gabapcia/chaintrack/internal/chainpoll"

	"github.com/shopspring/decimal"
)

type transaction struct {
	Hash        string          `json:"hash"`
	From        string          `json:"from,omitempty"`
	To          string          `json:"to,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency,omitempty"`
	Contract    string          `json:"contract,omitempty"`
	BlockHeight uint64          `json:"block_height"`
	Timestamp   time.Time       `json:"timestamp,omitzero"`
}

// Message is the JSON payload published for each match event.
type Message struct {
	ID          string           `json:"id"`
	Chain       string           `json:"chain"`
	RuleID      string           `json:"rule_id"`
	Token       string           `json:"token"`
	Subscribers []string         `json:"subscribers"`
	Direction   string           `json:"direction"`
	DEX         string           `json:"dex,omitempty"`
	Whale       bool             `json:"whale"`
	AmountUSD   *decimal.Decimal `json:"amount_usd,omitempty"`
	Transaction transaction      `json:"transaction"`
	Text        string           `json:"text"`
}

type sink struct {
	publisher     Publisher
	subjectPrefix string
	formatter     *alerting.Formatter
}

var _ chainpoll.NotificationSink = (*sink)(nil)

var subjectReplacer = strings.NewReplacer(".", "_", " ", "_", "*", "_", ">", "_")

// Subject returns the subject events of chain are published on.
func Subject(prefix, chain string) string {
	return prefix + "." + subjectReplacer.Replace(strings.ToLower(chain))
}

func (s *sink) Notify(ctx context.Context, event chainpoll.MatchEvent) error {
	tx := event.Transaction
	data, err := json.Marshal(Message{
		ID:          event.Key(),
		Chain:       event.Chain,
		RuleID:      event.RuleID,
		Token:       event.Token,
		Subscribers: event.Subscribers,
		Direction:   string(event.Direction),
		DEX:         event.DEX,
		Whale:       event.Whale,
		AmountUSD:   event.AmountUSD,
		Transaction: transaction{
			Hash:        tx.Hash,
			From:        tx.From,
			To:          tx.To,
			Value:       tx.Value,
			Currency:    tx.Currency,
			Contract:    tx.Contract,
			BlockHeight: tx.BlockHeight,
			Timestamp:   tx.Timestamp,
		},
		Text: s.formatter.Format(event),
	})
	if err != nil {
		return err
	}

	return s.publisher.Publish(ctx, Subject(s.subjectPrefix, event.Chain), data, event.Key())
}

// NewSink returns a sink publishing on <subjectPrefix>.<chain>.
func NewSink(publisher Publisher, subjectPrefix string, formatter *alerting.Formatter) *sink {
	return &sink{
		publisher:     publisher,
		subjectPrefix: subjectPrefix,
		formatter:     formatter,
	}
}
