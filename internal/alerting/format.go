package alerting

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
)

// Formatter renders match events as human readable messages.
type Formatter struct {
	explorers map[string]string
}

// NewFormatter returns a Formatter linking transactions to the explorer base
// URL configured for each chain (e.g. "https://etherscan.io").
func NewFormatter(explorers map[string]string) *Formatter {
	trimmed := make(map[string]string, len(explorers))
	for chain, url := range explorers {
		trimmed[chain] = strings.TrimRight(url, "/")
	}

	return &Formatter{explorers: trimmed}
}

// ExplorerLink returns the transaction URL of event, or "" when the chain has
// no explorer configured.
func (f *Formatter) ExplorerLink(event chainpoll.MatchEvent) string {
	base, ok := f.explorers[event.Chain]
	if !ok || base == "" {
		return ""
	}
	return base + "/tx/" + event.Transaction.Hash
}

func headline(event chainpoll.MatchEvent) string {
	var h string
	switch event.Direction {
	case chainpoll.DirectionBuy:
		h = "BUY"
	case chainpoll.DirectionSell:
		h = "SELL"
	default:
		h = "TRANSFER"
	}

	if event.Whale {
		h = "WHALE " + h
	}

	return fmt.Sprintf("%s %s on %s", h, event.Token, event.Chain)
}

// Format renders event as plain text.
func (f *Formatter) Format(event chainpoll.MatchEvent) string {
	tx := event.Transaction

	currency := tx.Currency
	if currency == "" {
		currency = event.Token
	}

	var b strings.Builder
	b.WriteString(headline(event))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Amount: %s %s", tx.Value.String(), currency)
	if event.AmountUSD != nil {
		fmt.Fprintf(&b, " ($%s)", event.AmountUSD.StringFixed(2))
	}
	b.WriteString("\n")

	if event.DEX != "" {
		fmt.Fprintf(&b, "DEX: %s\n", event.DEX)
	}
	if tx.From != "" {
		fmt.Fprintf(&b, "From: %s\n", tx.From)
	}
	if tx.To != "" {
		fmt.Fprintf(&b, "To: %s\n", tx.To)
	}

	fmt.Fprintf(&b, "Block: %d\n", tx.BlockHeight)
	if !tx.Timestamp.IsZero() {
		fmt.Fprintf(&b, "Time: %s\n", tx.Timestamp.UTC().Format(time.RFC3339))
	}

	if link := f.ExplorerLink(event); link != "" {
		fmt.Fprintf(&b, "Explorer: %s\n", link)
	} else {
		fmt.Fprintf(&b, "Tx: %s\n", tx.Hash)
	}

	return strings.TrimRight(b.String(), "\n")
}
