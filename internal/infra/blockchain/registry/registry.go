package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/config"
	"github.com/gabapcia/chaintrack/internal/infra/blockchain/evm"
	"github.com/gabapcia/chaintrack/internal/infra/blockchain/solana"
	"github.com/gabapcia/chaintrack/internal/infra/blockchain/utxo"
	"github.com/gabapcia/chaintrack/internal/pkg/logger"
	"github.com/gabapcia/chaintrack/internal/pkg/transport/jsonrpc"
)

type closer interface {
	Close()
}

// Registry owns one adapter per configured chain.
type Registry struct {
	*Catalog

	chains   []chainpoll.Chain
	adapters []chainpoll.ChainAdapter
}

type options struct {
	evm         []evm.Option
	solana      []solana.Option
	utxo        []jsonrpc.Option
	callTimeout time.Duration
}

type Option func(*options)

// WithEVMOptions forwards opts to every EVM adapter.
func WithEVMOptions(opts ...evm.Option) Option {
	return func(o *options) {
		o.evm = append(o.evm, opts...)
	}
}

// WithSolanaOptions forwards opts to every Solana adapter.
func WithSolanaOptions(opts ...solana.Option) Option {
	return func(o *options) {
		o.solana = append(o.solana, opts...)
	}
}

// WithUTXOOptions forwards opts to the JSON-RPC client of every UTXO adapter.
func WithUTXOOptions(opts ...jsonrpc.Option) Option {
	return func(o *options) {
		o.utxo = append(o.utxo, opts...)
	}
}

// WithCallTimeout bounds every single node call of every adapter. Default
// chainpoll.DefaultCallTimeout.
func WithCallTimeout(d time.Duration) Option {
	return func(o *options) {
		o.callTimeout = d
	}
}

func newAdapter(ctx context.Context, chain config.Chain, f chainpoll.Family, o options) (chainpoll.ChainAdapter, error) {
	switch f {
	case chainpoll.FamilyEVM:
		tokens := make([]evm.Token, 0, len(chain.Tokens))
		for symbol, token := range chain.Tokens {
			tokens = append(tokens, evm.Token{Symbol: symbol, Contract: token.Contract, Decimals: token.Decimals})
		}

		return evm.New(ctx, evm.Config{
			Name:           chain.Name,
			Endpoint:       chain.RPCEndpoint,
			NativeSymbol:   chain.NativeTokenSymbol,
			NativeDecimals: chain.NativeDecimals,
			Tokens:         tokens,
			ChainID:        chain.ChainID,
		}, append([]evm.Option{evm.WithCallTimeout(o.callTimeout)}, o.evm...)...)
	case chainpoll.FamilySolana:
		tokens := make([]solana.Token, 0, len(chain.Tokens))
		for symbol, token := range chain.Tokens {
			tokens = append(tokens, solana.Token{Symbol: symbol, Mint: token.Contract})
		}

		return solana.New(solana.Config{
			Name:         chain.Name,
			Endpoint:     chain.RPCEndpoint,
			NativeSymbol: chain.NativeTokenSymbol,
			Tokens:       tokens,
		}, append([]solana.Option{solana.WithCallTimeout(o.callTimeout)}, o.solana...)...)
	case chainpoll.FamilyUTXO:
		opts := o.utxo
		if chain.RPCUsername != "" {
			opts = append([]jsonrpc.Option{jsonrpc.WithBasicAuth(chain.RPCUsername, chain.RPCPassword)}, opts...)
		}

		return utxo.New(utxo.Config{
			Name:         chain.Name,
			NativeSymbol: chain.NativeTokenSymbol,
		}, jsonrpc.NewClient(chain.RPCEndpoint, opts...), utxo.WithCallTimeout(o.callTimeout))
	default:
		return nil, chainpoll.Fatal(fmt.Errorf("unsupported chain family %q", f))
	}
}

// New builds every adapter eagerly so that configuration errors surface at
// startup. Adapters already built are closed when a later one fails.
func New(ctx context.Context, chains []config.Chain, opts ...Option) (*Registry, error) {
	catalog, err := NewCatalog(chains)
	if err != nil {
		return nil, err
	}

	o := options{
		callTimeout: chainpoll.DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{Catalog: catalog}
	for _, chain := range chains {
		adapter, err := newAdapter(ctx, chain, catalog.families[chain.Name], o)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("chain %s: %w", chain.Name, err)
		}

		r.adapters = append(r.adapters, adapter)
		r.chains = append(r.chains, chainpoll.Chain{
			Name:             chain.Name,
			Family:           catalog.families[chain.Name],
			Adapter:          adapter,
			PollInterval:     chain.PollInterval,
			MaxBlocksPerScan: chain.MaxBlocksPerScan,
			StartHeight:      chain.StartHeight,
		})

		logger.Debug(ctx, "chain adapter ready",
			"chain.name", chain.Name,
			"chain.family", catalog.families[chain.Name],
		)
	}

	return r, nil
}

// Chains returns the pollable chains.
func (r *Registry) Chains() []chainpoll.Chain {
	return r.chains
}

// Adapter returns the adapter of chain.
func (r *Registry) Adapter(chain string) (chainpoll.ChainAdapter, error) {
	for _, c := range r.chains {
		if c.Name == chain {
			return c.Adapter, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownChain, chain)
}

// Close releases adapters holding connections.
func (r *Registry) Close() {
	for _, adapter := range r.adapters {
		if c, ok := adapter.(closer); ok {
			c.Close()
		}
	}
}
