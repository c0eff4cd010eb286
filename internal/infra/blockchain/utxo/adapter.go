// Package utxo adapts bitcoind style nodes (Bitcoin, Dogecoin, Litecoin) to
// chainpoll.ChainAdapter. Every output paying an address becomes one
// transfer.
package utxo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	"github.com/gabapcia/chaintrack/internal/pkg/transport/jsonrpc"

	"github.com/shopspring/decimal"
)

// verbosity 2 returns decoded transactions inside getblock.
const blockVerbosity = 2

// ErrZeroHeight is returned when the node reports height 0.
var ErrZeroHeight = errors.New("node reported height 0")

type scriptPubKey struct {
	Address   string   `json:"address"`
	Addresses []string `json:"addresses"`
}

func (s scriptPubKey) address() string {
	if s.Address != "" {
		return s.Address
	}
	if len(s.Addresses) == 1 {
		return s.Addresses[0]
	}
	return ""
}

type output struct {
	Value        decimal.Decimal `json:"value"`
	N            int             `json:"n"`
	ScriptPubKey scriptPubKey    `json:"scriptPubKey"`
}

type input struct {
	Coinbase string `json:"coinbase"`
	Prevout  *struct {
		ScriptPubKey scriptPubKey `json:"scriptPubKey"`
	} `json:"prevout"`
}

type transaction struct {
	TxID string   `json:"txid"`
	Vin  []input  `json:"vin"`
	Vout []output `json:"vout"`
}

type blockResponse struct {
	Hash   string            `json:"hash"`
	Height uint64            `json:"height"`
	Time   int64             `json:"time"`
	Tx     []json.RawMessage `json:"tx"`
}

// sender returns the address funding the first input when the node reports
// previous outputs (bitcoind getblock verbosity 3), or "".
func (tx transaction) sender() string {
	for _, in := range tx.Vin {
		if in.Prevout != nil {
			return in.Prevout.ScriptPubKey.address()
		}
	}
	return ""
}

// Config describes one UTXO chain.
type Config struct {
	Name         string
	NativeSymbol string
}

type adapter struct {
	name         string
	nativeSymbol string
	conn         jsonrpc.Client
	callTimeout  time.Duration
}

var _ chainpoll.ChainAdapter = (*adapter)(nil)

func classify(err error) error {
	if errors.Is(err, jsonrpc.ErrUnauthorized) {
		return chainpoll.Fatal(err)
	}
	return err
}

func (a *adapter) fetch(ctx context.Context, out any, method string, params ...any) error {
	callCtx, cancel := chainpoll.CallContext(ctx, a.callTimeout)
	defer cancel()

	data, err := a.conn.Fetch(callCtx, method, params...)
	if err != nil {
		return classify(fmt.Errorf("%s: %w", method, err))
	}
	return json.Unmarshal(data, out)
}

func (a *adapter) CurrentHeight(ctx context.Context) (uint64, error) {
	var height uint64
	if err := a.fetch(ctx, &height, "getblockcount"); err != nil {
		return 0, err
	}

	if height == 0 {
		return 0, ErrZeroHeight
	}

	return height, nil
}

func (a *adapter) FetchRange(ctx context.Context, from, to uint64) ([]chainpoll.RawTransaction, error) {
	txs := make([]chainpoll.RawTransaction, 0)
	if from > to {
		return txs, nil
	}

	for height := from; ; height++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		blockTxs, err := a.blockTransfers(ctx, height)
		if err != nil {
			return nil, err
		}
		txs = append(txs, blockTxs...)

		if height == to {
			break
		}
	}

	return txs, nil
}

func (a *adapter) blockTransfers(ctx context.Context, height uint64) ([]chainpoll.RawTransaction, error) {
	var hash string
	if err := a.fetch(ctx, &hash, "getblockhash", height); err != nil {
		return nil, err
	}

	var block blockResponse
	if err := a.fetch(ctx, &block, "getblock", hash, blockVerbosity); err != nil {
		return nil, err
	}

	timestamp := time.Unix(block.Time, 0).UTC()

	var txs []chainpoll.RawTransaction
	for i, raw := range block.Tx {
		var tx transaction
		if err := json.Unmarshal(raw, &tx); err != nil || tx.TxID == "" {
			logger.Warn(ctx, "dropping undecodable transaction",
				"chain.name", a.name,
				"block.height", height,
				"tx.index", i,
				"error", err,
			)
			continue
		}

		from := tx.sender()
		for _, out := range tx.Vout {
			to := out.ScriptPubKey.address()
			if to == "" || !out.Value.IsPositive() {
				continue
			}

			txs = append(txs, chainpoll.RawTransaction{
				Hash:        tx.TxID,
				From:        from,
				To:          to,
				Value:       out.Value,
				Currency:    a.nativeSymbol,
				BlockHeight: height,
				Timestamp:   timestamp,
			})
		}
	}

	return txs, nil
}

type options struct {
	callTimeout time.Duration
}

type Option func(*options)

// WithCallTimeout bounds every single node call. Default
// chainpoll.DefaultCallTimeout.
func WithCallTimeout(d time.Duration) Option {
	return func(o *options) {
		o.callTimeout = d
	}
}

// New builds an adapter over conn.
func New(cfg Config, conn jsonrpc.Client, opts ...Option) (*adapter, error) {
	o := options{
		callTimeout: chainpoll.DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.NativeSymbol == "" {
		return nil, chainpoll.Fatal(fmt.Errorf("chain %s: native token symbol is required", cfg.Name))
	}

	return &adapter{
		name:         cfg.Name,
		nativeSymbol: cfg.NativeSymbol,
		conn:         conn,
		callTimeout:  o.callTimeout,
	}, nil
}
