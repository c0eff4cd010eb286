// Package solana adapts Solana RPC nodes to chainpoll.ChainAdapter. Slots are
// heights; transfers are derived from the balance changes each transaction
// recorded, for SOL and for SPL tokens.
package solana

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"slices"
	"time"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	transporthttp "github.com/gabapcia/chaintrack/internal/pkg/transport/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/shopspring/decimal"
)

const (
	nativeDecimals = 9

	// Slot skipped, or missing in long-term storage.
	codeSlotSkipped         = -32007
	codeLongTermStorageSlot = -32009
)

// ErrZeroHeight is returned when the node reports slot 0.
var ErrZeroHeight = errors.New("node reported slot 0")

// Client is the subset of rpc.Client used by the adapter.
type Client interface {
	GetSlot(ctx context.Context, commitment rpc.CommitmentType) (uint64, error)
	GetBlockWithOpts(ctx context.Context, slot uint64, opts *rpc.GetBlockOpts) (*rpc.GetBlockResult, error)
}

var _ Client = (*rpc.Client)(nil)

// Token is an SPL mint tracked under a symbol.
type Token struct {
	Symbol string
	Mint   string
}

// Config describes one Solana cluster.
type Config struct {
	Name         string
	Endpoint     string
	NativeSymbol string
	Tokens       []Token
}

type adapter struct {
	name         string
	nativeSymbol string
	symbols      map[solana.PublicKey]string
	client       Client
	callTimeout  time.Duration
}

var _ chainpoll.ChainAdapter = (*adapter)(nil)

func classify(err error) error {
	var httpErr *jsonrpc.HTTPError
	if errors.As(err, &httpErr) && (httpErr.Code == http.StatusUnauthorized || httpErr.Code == http.StatusForbidden) {
		return chainpoll.Fatal(err)
	}
	return err
}

func isSkippedSlot(err error) bool {
	var rpcErr *jsonrpc.RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	return rpcErr.Code == codeSlotSkipped || rpcErr.Code == codeLongTermStorageSlot
}

func (a *adapter) CurrentHeight(ctx context.Context) (uint64, error) {
	callCtx, cancel := chainpoll.CallContext(ctx, a.callTimeout)
	defer cancel()

	slot, err := a.client.GetSlot(callCtx, rpc.CommitmentFinalized)
	if err != nil {
		return 0, classify(err)
	}

	if slot == 0 {
		return 0, ErrZeroHeight
	}

	return slot, nil
}

func (a *adapter) FetchRange(ctx context.Context, from, to uint64) ([]chainpoll.RawTransaction, error) {
	txs := make([]chainpoll.RawTransaction, 0)
	if from > to {
		return txs, nil
	}

	maxVersion := uint64(0)
	for slot := from; ; slot++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		block, err := a.block(ctx, slot, &maxVersion)
		switch {
		case isSkippedSlot(err):
			logger.Debug(ctx, "slot skipped", "chain.name", a.name, "block.height", slot)
		case err != nil:
			return nil, classify(err)
		case block != nil:
			txs = append(txs, a.blockTransfers(ctx, slot, block)...)
		}

		if slot == to {
			break
		}
	}

	return txs, nil
}

func (a *adapter) block(ctx context.Context, slot uint64, maxVersion *uint64) (*rpc.GetBlockResult, error) {
	callCtx, cancel := chainpoll.CallContext(ctx, a.callTimeout)
	defer cancel()

	return a.client.GetBlockWithOpts(callCtx, slot, &rpc.GetBlockOpts{
		Encoding:                       solana.EncodingBase64,
		TransactionDetails:             rpc.TransactionDetailsFull,
		MaxSupportedTransactionVersion: maxVersion,
		Commitment:                     rpc.CommitmentFinalized,
	})
}

func (a *adapter) blockTransfers(ctx context.Context, slot uint64, block *rpc.GetBlockResult) []chainpoll.RawTransaction {
	var timestamp time.Time
	if block.BlockTime != nil {
		timestamp = block.BlockTime.Time().UTC()
	}

	var txs []chainpoll.RawTransaction
	for i, txWithMeta := range block.Transactions {
		if txWithMeta.Meta == nil || txWithMeta.Meta.Err != nil || txWithMeta.Transaction == nil {
			continue
		}

		transfers, err := a.transactionTransfers(txWithMeta)
		if err != nil {
			logger.Warn(ctx, "dropping undecodable transaction",
				"chain.name", a.name,
				"block.height", slot,
				"tx.index", i,
				"error", err,
			)
			continue
		}

		for _, tx := range transfers {
			tx.BlockHeight = slot
			tx.Timestamp = timestamp
			txs = append(txs, tx)
		}
	}

	return txs
}

// balanceChange is the signed movement of one asset on one account.
type balanceChange struct {
	account string
	delta   decimal.Decimal
}

func (a *adapter) transactionTransfers(txWithMeta rpc.TransactionWithMeta) ([]chainpoll.RawTransaction, error) {
	parsed, err := txWithMeta.GetTransaction()
	if err != nil {
		return nil, err
	}
	if len(parsed.Signatures) == 0 {
		return nil, errors.New("transaction without signatures")
	}

	meta := txWithMeta.Meta
	keys := slices.Concat(parsed.Message.AccountKeys, meta.LoadedAddresses.Writable, meta.LoadedAddresses.ReadOnly)
	if len(meta.PreBalances) != len(keys) || len(meta.PostBalances) != len(keys) {
		return nil, fmt.Errorf("balances cover %d accounts, transaction has %d", len(meta.PreBalances), len(keys))
	}

	var (
		hash     = parsed.Signatures[0].String()
		programs = programIDs(parsed, keys)
		txs      []chainpoll.RawTransaction
	)

	native := make([]balanceChange, 0)
	for i, key := range keys {
		delta := new(big.Int).Sub(new(big.Int).SetUint64(meta.PostBalances[i]), new(big.Int).SetUint64(meta.PreBalances[i]))
		if i == 0 {
			delta.Add(delta, new(big.Int).SetUint64(meta.Fee))
		}
		if delta.Sign() == 0 {
			continue
		}
		native = append(native, balanceChange{account: key.String(), delta: decimal.NewFromBigInt(delta, -nativeDecimals)})
	}
	for _, tx := range pairTransfers(native) {
		tx.Hash = hash
		tx.Currency = a.nativeSymbol
		tx.Programs = programs
		txs = append(txs, tx)
	}

	tokenChanges, err := tokenBalanceChanges(meta, keys)
	if err != nil {
		return nil, err
	}
	for _, mint := range sortedMints(tokenChanges) {
		for _, tx := range pairTransfers(tokenChanges[mint]) {
			tx.Hash = hash
			tx.Contract = mint.String()
			tx.Currency = a.symbols[mint]
			tx.Programs = programs
			txs = append(txs, tx)
		}
	}

	return txs, nil
}

// pairTransfers turns balance changes into transfers. A single debit matched
// by a single credit is one transfer between both accounts; anything else is
// reported per account, credits with only To set and debits with only From.
func pairTransfers(changes []balanceChange) []chainpoll.RawTransaction {
	var credits, debits []balanceChange
	for _, c := range changes {
		if c.delta.IsPositive() {
			credits = append(credits, c)
		} else {
			debits = append(debits, c)
		}
	}

	if len(credits) == 1 && len(debits) == 1 {
		return []chainpoll.RawTransaction{{
			From:  debits[0].account,
			To:    credits[0].account,
			Value: credits[0].delta,
		}}
	}

	txs := make([]chainpoll.RawTransaction, 0, len(changes))
	for _, c := range credits {
		txs = append(txs, chainpoll.RawTransaction{To: c.account, Value: c.delta})
	}
	for _, d := range debits {
		txs = append(txs, chainpoll.RawTransaction{From: d.account, Value: d.delta.Neg()})
	}
	return txs
}

func programIDs(tx *solana.Transaction, keys solana.PublicKeySlice) []string {
	var programs []string
	for _, inst := range tx.Message.Instructions {
		if int(inst.ProgramIDIndex) >= len(keys) {
			continue
		}
		if id := keys[inst.ProgramIDIndex].String(); !slices.Contains(programs, id) {
			programs = append(programs, id)
		}
	}
	return programs
}

type tokenAccount struct {
	index uint16
	mint  solana.PublicKey
}

// tokenBalanceChanges groups SPL balance changes by mint. Changes are
// attributed to the token account owner when the node reports one.
func tokenBalanceChanges(meta *rpc.TransactionMeta, keys solana.PublicKeySlice) (map[solana.PublicKey][]balanceChange, error) {
	type balance struct {
		owner  string
		amount decimal.Decimal
	}

	read := func(tb rpc.TokenBalance) (tokenAccount, balance, error) {
		if tb.UiTokenAmount == nil {
			return tokenAccount{}, balance{}, errors.New("token balance without amount")
		}
		if int(tb.AccountIndex) >= len(keys) {
			return tokenAccount{}, balance{}, fmt.Errorf("token balance account index %d out of range", tb.AccountIndex)
		}

		raw, ok := new(big.Int).SetString(tb.UiTokenAmount.Amount, 10)
		if !ok {
			return tokenAccount{}, balance{}, fmt.Errorf("invalid token amount %q", tb.UiTokenAmount.Amount)
		}

		owner := keys[tb.AccountIndex].String()
		if tb.Owner != nil {
			owner = tb.Owner.String()
		}

		return tokenAccount{index: tb.AccountIndex, mint: tb.Mint},
			balance{owner: owner, amount: decimal.NewFromBigInt(raw, -int32(tb.UiTokenAmount.Decimals))},
			nil
	}

	pre := make(map[tokenAccount]balance, len(meta.PreTokenBalances))
	for _, tb := range meta.PreTokenBalances {
		account, b, err := read(tb)
		if err != nil {
			return nil, err
		}
		pre[account] = b
	}

	post := make(map[tokenAccount]balance, len(meta.PostTokenBalances))
	for _, tb := range meta.PostTokenBalances {
		account, b, err := read(tb)
		if err != nil {
			return nil, err
		}
		post[account] = b
	}

	accounts := make([]tokenAccount, 0, len(pre)+len(post))
	for account := range pre {
		accounts = append(accounts, account)
	}
	for account := range post {
		if _, ok := pre[account]; !ok {
			accounts = append(accounts, account)
		}
	}
	slices.SortFunc(accounts, func(a, b tokenAccount) int { return int(a.index) - int(b.index) })

	changes := make(map[solana.PublicKey][]balanceChange)
	for _, account := range accounts {
		before, after := pre[account], post[account]

		owner := after.owner
		if owner == "" {
			owner = before.owner
		}

		delta := after.amount.Sub(before.amount)
		if delta.IsZero() {
			continue
		}

		changes[account.mint] = append(changes[account.mint], balanceChange{account: owner, delta: delta})
	}

	return changes, nil
}

func sortedMints(changes map[solana.PublicKey][]balanceChange) []solana.PublicKey {
	mints := make([]solana.PublicKey, 0, len(changes))
	for mint := range changes {
		mints = append(mints, mint)
	}
	slices.SortFunc(mints, func(a, b solana.PublicKey) int {
		return slices.Compare(a[:], b[:])
	})
	return mints
}

type options struct {
	client      Client
	callTimeout time.Duration
}

type Option func(*options)

// WithClient replaces the RPC client built from the endpoint.
func WithClient(c Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithCallTimeout bounds every single RPC call. Default
// chainpoll.DefaultCallTimeout.
func WithCallTimeout(d time.Duration) Option {
	return func(o *options) {
		o.callTimeout = d
	}
}

// New validates cfg and builds the adapter. Configuration problems are fatal.
func New(cfg Config, opts ...Option) (*adapter, error) {
	o := options{
		callTimeout: chainpoll.DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.Endpoint == "" && o.client == nil {
		return nil, chainpoll.Fatal(fmt.Errorf("chain %s: rpc endpoint is required", cfg.Name))
	}

	symbols := make(map[solana.PublicKey]string, len(cfg.Tokens))
	for _, token := range cfg.Tokens {
		mint, err := solana.PublicKeyFromBase58(token.Mint)
		if err != nil {
			return nil, chainpoll.Fatal(fmt.Errorf("chain %s: invalid mint %q for token %s: %w", cfg.Name, token.Mint, token.Symbol, err))
		}
		symbols[mint] = token.Symbol
	}

	if o.client == nil {
		o.client = rpc.NewWithCustomRPCClient(jsonrpc.NewClientWithOpts(cfg.Endpoint, &jsonrpc.RPCClientOpts{
			HTTPClient: transporthttp.NewStandardClient(),
		}))
	}

	nativeSymbol := cfg.NativeSymbol
	if nativeSymbol == "" {
		nativeSymbol = "SOL"
	}

	return &adapter{
		name:         cfg.Name,
		nativeSymbol: nativeSymbol,
		symbols:      symbols,
		client:       o.client,
		callTimeout:  o.callTimeout,
	}, nil
}
