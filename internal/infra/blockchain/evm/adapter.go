// Package evm adapts Ethereum compatible nodes to chainpoll.ChainAdapter.
// Native transfers come from full blocks; token transfers come from ERC-20
// Transfer logs of the configured contracts.
package evm

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/pkg/blockrange"
	"github.com/gabapcia/chaintrack/internal/pkg/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/shopspring/decimal"
)

const (
	defaultNativeDecimals = 18
	defaultLogChunkSize   = 1000
)

// TransferTopic is the event signature hash of ERC-20 Transfer.
var TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

var (
	// ErrZeroHeight is returned when the node reports height 0.
	ErrZeroHeight = errors.New("node reported height 0")

	// ErrChainIDMismatch is returned when the endpoint serves another chain.
	ErrChainIDMismatch = errors.New("endpoint serves a different chain id")
)

// Token is an ERC-20 contract tracked on the chain.
type Token struct {
	Symbol   string
	Contract string
	Decimals int32
}

// Config describes one EVM chain.
type Config struct {
	Name           string
	Endpoint       string
	NativeSymbol   string
	NativeDecimals int32
	Tokens         []Token

	// ChainID, when set, is checked against the endpoint on connect.
	ChainID uint64
}

type adapter struct {
	name           string
	endpoint       string
	chainID        uint64
	nativeSymbol   string
	nativeDecimals int32
	tokens         map[common.Address]Token
	contracts      []common.Address
	logChunkSize   uint64
	callTimeout    time.Duration
	dial           DialFunc

	mu     sync.RWMutex
	client Client
}

var (
	_ chainpoll.ChainAdapter = (*adapter)(nil)
	_ chainpoll.Resetter     = (*adapter)(nil)
)

func (a *adapter) conn() Client {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.client
}

// classify marks rejected credentials as fatal.
func classify(err error) error {
	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) && (httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
		return chainpoll.Fatal(err)
	}
	return err
}

func (a *adapter) CurrentHeight(ctx context.Context) (uint64, error) {
	callCtx, cancel := chainpoll.CallContext(ctx, a.callTimeout)
	defer cancel()

	height, err := a.conn().BlockNumber(callCtx)
	if err != nil {
		return 0, classify(err)
	}

	if height == 0 {
		return 0, ErrZeroHeight
	}

	return height, nil
}

func (a *adapter) FetchRange(ctx context.Context, from, to uint64) ([]chainpoll.RawTransaction, error) {
	if from > to {
		return []chainpoll.RawTransaction{}, nil
	}

	client := a.conn()

	txs, times, err := a.nativeTransfers(ctx, client, from, to)
	if err != nil {
		return nil, err
	}

	tokenTxs, err := a.tokenTransfers(ctx, client, from, to, times)
	if err != nil {
		return nil, err
	}

	txs = append(txs, tokenTxs...)
	slices.SortStableFunc(txs, func(a, b chainpoll.RawTransaction) int {
		return cmp.Compare(a.BlockHeight, b.BlockHeight)
	})

	return txs, nil
}

// transaction is the part of a block transaction the adapter reads. Nodes
// report the sender, so no signature scheme needs to be known.
type transaction struct {
	Hash  common.Hash     `json:"hash"`
	From  *common.Address `json:"from"`
	To    *common.Address `json:"to"`
	Value *hexutil.Big    `json:"value"`
}

func decodeTransaction(raw json.RawMessage) (transaction, error) {
	var tx transaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return transaction{}, err
	}

	if tx.Hash == (common.Hash{}) {
		return transaction{}, errors.New("transaction without hash")
	}
	if tx.From == nil {
		return transaction{}, errors.New("transaction without sender")
	}

	return tx, nil
}

func (a *adapter) block(ctx context.Context, client Client, height uint64) (*RawBlock, error) {
	callCtx, cancel := chainpoll.CallContext(ctx, a.callTimeout)
	defer cancel()

	block, err := client.RawBlock(callCtx, height)
	if err != nil {
		return nil, classify(err)
	}

	return block, nil
}

func (a *adapter) nativeTransfers(ctx context.Context, client Client, from, to uint64) ([]chainpoll.RawTransaction, map[uint64]time.Time, error) {
	var (
		txs   = make([]chainpoll.RawTransaction, 0)
		times = make(map[uint64]time.Time, to-from+1)
	)

	for height := from; height <= to; height++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		block, err := a.block(ctx, client, height)
		if err != nil {
			return nil, nil, err
		}

		timestamp := time.Unix(int64(block.Timestamp), 0).UTC()
		times[height] = timestamp

		for i, raw := range block.Transactions {
			tx, err := decodeTransaction(raw)
			if err != nil {
				logger.Warn(ctx, "dropping undecodable transaction",
					"chain.name", a.name,
					"block.height", height,
					"tx.index", i,
					"error", err,
				)
				continue
			}

			if tx.To == nil || tx.Value == nil || tx.Value.ToInt().Sign() == 0 {
				continue
			}

			txs = append(txs, chainpoll.RawTransaction{
				Hash:        tx.Hash.Hex(),
				From:        tx.From.Hex(),
				To:          tx.To.Hex(),
				Value:       decimal.NewFromBigInt(tx.Value.ToInt(), -a.nativeDecimals),
				Currency:    a.nativeSymbol,
				BlockHeight: height,
				Timestamp:   timestamp,
			})
		}

		if height == to {
			break
		}
	}

	return txs, times, nil
}

func (a *adapter) tokenTransfers(ctx context.Context, client Client, from, to uint64, times map[uint64]time.Time) ([]chainpoll.RawTransaction, error) {
	txs := make([]chainpoll.RawTransaction, 0)
	if len(a.contracts) == 0 {
		return txs, nil
	}

	for chunk := range blockrange.Chunks(from, to, a.logChunkSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logs, err := a.filterLogs(ctx, client, chunk)
		if err != nil {
			return nil, err
		}

		for _, log := range logs {
			tx, err := a.decodeTransfer(log)
			if err != nil {
				logger.Warn(ctx, "dropping undecodable transfer log",
					"chain.name", a.name,
					"block.height", log.BlockNumber,
					"tx.hash", log.TxHash.Hex(),
					"error", err,
				)
				continue
			}
			if tx == nil {
				continue
			}

			tx.Timestamp = times[tx.BlockHeight]
			txs = append(txs, *tx)
		}
	}

	return txs, nil
}

func (a *adapter) filterLogs(ctx context.Context, client Client, chunk blockrange.Range) ([]types.Log, error) {
	callCtx, cancel := chainpoll.CallContext(ctx, a.callTimeout)
	defer cancel()

	logs, err := client.FilterLogs(callCtx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(chunk.From),
		ToBlock:   new(big.Int).SetUint64(chunk.To),
		Addresses: a.contracts,
		Topics:    [][]common.Hash{{TransferTopic}},
	})
	if err != nil {
		return nil, classify(err)
	}

	return logs, nil
}

// decodeTransfer turns a Transfer log into a transaction. It returns nil for
// removed logs and contracts the chain does not track.
func (a *adapter) decodeTransfer(log types.Log) (*chainpoll.RawTransaction, error) {
	if log.Removed {
		return nil, nil
	}

	token, ok := a.tokens[log.Address]
	if !ok {
		return nil, nil
	}

	if len(log.Topics) != 3 || log.Topics[0] != TransferTopic {
		return nil, fmt.Errorf("unexpected topics count %d", len(log.Topics))
	}
	if len(log.Data) != 32 {
		return nil, fmt.Errorf("unexpected data length %d", len(log.Data))
	}

	value := new(big.Int).SetBytes(log.Data)

	return &chainpoll.RawTransaction{
		Hash:        log.TxHash.Hex(),
		From:        common.BytesToAddress(log.Topics[1].Bytes()).Hex(),
		To:          common.BytesToAddress(log.Topics[2].Bytes()).Hex(),
		Value:       decimal.NewFromBigInt(value, -token.Decimals),
		Currency:    token.Symbol,
		Contract:    log.Address.Hex(),
		BlockHeight: log.BlockNumber,
	}, nil
}

// connect dials the endpoint and checks the chain id when one is configured.
func (a *adapter) connect(ctx context.Context) (Client, error) {
	client, err := a.dial(ctx, a.endpoint)
	if err != nil {
		return nil, classify(err)
	}

	if a.chainID == 0 {
		return client, nil
	}

	callCtx, cancel := chainpoll.CallContext(ctx, a.callTimeout)
	defer cancel()

	id, err := client.ChainID(callCtx)
	if err != nil {
		client.Close()
		return nil, classify(err)
	}

	if !id.IsUint64() || id.Uint64() != a.chainID {
		client.Close()
		return nil, chainpoll.Fatal(fmt.Errorf("%w: chain %s expects %d, got %s", ErrChainIDMismatch, a.name, a.chainID, id))
	}

	return client, nil
}

// Reset redials the endpoint and swaps the connection.
func (a *adapter) Reset(ctx context.Context) error {
	client, err := a.connect(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	old := a.client
	a.client = client
	a.mu.Unlock()

	if old != nil {
		old.Close()
	}

	logger.Info(ctx, "evm connection reset", "chain.name", a.name)
	return nil
}

// Close releases the connection.
func (a *adapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		a.client.Close()
		a.client = nil
	}
}

type options struct {
	dial         DialFunc
	logChunkSize uint64
	callTimeout  time.Duration
}

type Option func(*options)

// WithDialer replaces Dial.
func WithDialer(dial DialFunc) Option {
	return func(o *options) {
		o.dial = dial
	}
}

// WithLogChunkSize caps the block span of a single eth_getLogs call.
func WithLogChunkSize(n uint64) Option {
	return func(o *options) {
		o.logChunkSize = n
	}
}

// WithCallTimeout bounds every single node call. Default
// chainpoll.DefaultCallTimeout.
func WithCallTimeout(d time.Duration) Option {
	return func(o *options) {
		o.callTimeout = d
	}
}

// New validates cfg and dials the endpoint. Configuration problems are fatal.
func New(ctx context.Context, cfg Config, opts ...Option) (*adapter, error) {
	o := options{
		dial:         Dial,
		logChunkSize: defaultLogChunkSize,
		callTimeout:  chainpoll.DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.Endpoint == "" {
		return nil, chainpoll.Fatal(fmt.Errorf("chain %s: rpc endpoint is required", cfg.Name))
	}

	a := &adapter{
		name:           cfg.Name,
		endpoint:       cfg.Endpoint,
		chainID:        cfg.ChainID,
		nativeSymbol:   cfg.NativeSymbol,
		nativeDecimals: cfg.NativeDecimals,
		tokens:         make(map[common.Address]Token, len(cfg.Tokens)),
		logChunkSize:   o.logChunkSize,
		callTimeout:    o.callTimeout,
		dial:           o.dial,
	}

	if a.nativeDecimals == 0 {
		a.nativeDecimals = defaultNativeDecimals
	}

	for _, token := range cfg.Tokens {
		if !common.IsHexAddress(token.Contract) {
			return nil, chainpoll.Fatal(fmt.Errorf("chain %s: invalid contract %q for token %s", cfg.Name, token.Contract, token.Symbol))
		}

		address := common.HexToAddress(token.Contract)
		a.tokens[address] = token
		a.contracts = append(a.contracts, address)
	}

	client, err := a.connect(ctx)
	if err != nil {
		return nil, err
	}
	a.client = client

	return a, nil
}
