package chainpoll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrFatal marks adapter errors that retrying cannot fix: bad configuration,
// rejected credentials, unsupported chains. A chain whose adapter returns a
// fatal error is disabled instead of backing off.
var ErrFatal = errors.New("fatal chain error")

// Fatal wraps err so that IsFatal reports true for it.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrFatal, err)
}

// IsFatal reports whether err was marked with Fatal.
func IsFatal(err error) bool {
	return errors.Is(err, ErrFatal)
}

// DefaultCallTimeout bounds a single network call when nothing else is
// configured.
const DefaultCallTimeout = 10 * time.Second

// CallContext derives the context of one network call, bounded by d. A
// non-positive d only propagates cancellation.
func CallContext(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// Family groups chains that share an RPC surface and direction heuristics.
type Family string

const (
	FamilyEVM    Family = "evm"
	FamilySolana Family = "solana"
	FamilyUTXO   Family = "utxo"
)

// RawTransaction is a transfer normalized by a ChainAdapter. It only lives for
// the duration of one scan.
type RawTransaction struct {
	Hash  string
	From  string
	To    string
	Value decimal.Decimal

	// Currency is the symbol of the moved asset, e.g. "ETH" or "USDT".
	Currency string

	// Contract identifies the token contract (EVM) or mint (Solana). Empty for
	// the chain's native asset.
	Contract string

	// Programs lists the on-chain programs invoked by the transaction, for
	// chains where venues are identified by program rather than address.
	Programs []string

	BlockHeight uint64
	Timestamp   time.Time
}

// IsNative reports whether tx moves the chain's native asset.
func (tx RawTransaction) IsNative() bool {
	return tx.Contract == ""
}

// ChainAdapter hides a chain's RPC surface. Implementations must not mutate
// engine state and must classify unrecoverable errors with Fatal.
type ChainAdapter interface {
	// CurrentHeight returns the latest height known to the node. It never
	// reports 0 in place of an error.
	CurrentHeight(ctx context.Context) (uint64, error)

	// FetchRange returns the tracked transfers in the inclusive range
	// [from, to]. A from greater than to yields an empty slice and no error.
	// Items that fail to decode are dropped and logged, not returned as errors.
	// ctx only carries cancellation: a range spans many calls, and each of
	// them is bounded by the adapter itself.
	FetchRange(ctx context.Context, from, to uint64) ([]RawTransaction, error)
}

// Resetter is implemented by adapters able to rebuild their connection after
// a run of failures.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Chain is one polled blockchain.
type Chain struct {
	Name             string
	Family           Family
	Adapter          ChainAdapter
	PollInterval     time.Duration
	MaxBlocksPerScan uint64

	// StartHeight is the first height scanned when no checkpoint exists.
	// Zero means start from the chain head.
	StartHeight uint64
}
