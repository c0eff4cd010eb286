package evm

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"

	transporthttp "github.com/gabapcia/chaintrack/internal/pkg/transport/http"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// RawBlock is an eth_getBlockByNumber result with full transactions. The
// transactions stay undecoded so that a type unknown to go-ethereum (rollup
// deposits, system transactions) only costs that one transaction.
type RawBlock struct {
	Number       hexutil.Uint64    `json:"number"`
	Timestamp    hexutil.Uint64    `json:"timestamp"`
	Transactions []json.RawMessage `json:"transactions"`
}

// Client is the node surface used by the adapter.
type Client interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	RawBlock(ctx context.Context, number uint64) (*RawBlock, error)
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)
	Close()
}

// rpcClient pairs ethclient with the raw connection it wraps.
type rpcClient struct {
	*ethclient.Client
	conn *rpc.Client
}

var _ Client = (*rpcClient)(nil)

func (c *rpcClient) RawBlock(ctx context.Context, number uint64) (*RawBlock, error) {
	var block *RawBlock
	if err := c.conn.CallContext(ctx, &block, "eth_getBlockByNumber", hexutil.EncodeUint64(number), true); err != nil {
		return nil, err
	}

	if block == nil {
		return nil, ethereum.NotFound
	}

	return block, nil
}

// DialFunc opens a Client to endpoint.
type DialFunc func(ctx context.Context, endpoint string) (Client, error)

// Dial connects to endpoint. HTTP endpoints go through the retrying transport.
func Dial(ctx context.Context, endpoint string) (Client, error) {
	var opts []rpc.ClientOption
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		opts = append(opts, rpc.WithHTTPClient(transporthttp.NewStandardClient()))
	}

	conn, err := rpc.DialOptions(ctx, endpoint, opts...)
	if err != nil {
		return nil, err
	}

	return &rpcClient{
		Client: ethclient.NewClient(conn),
		conn:   conn,
	}, nil
}
