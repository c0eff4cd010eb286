package config

import (
	"time"

	"github.com/gabapcia/chaintrack/internal/pkg/validator"
)

const (
	TypeEVM    = "evm"
	TypeSolana = "solana"
	TypeUTXO   = "utxo"
)

const (
	defaultPollInterval     = 12 * time.Second
	defaultMaxBlocksPerScan = 100
)

// Token is a tracked token contract (EVM) or mint (Solana), keyed by symbol
// in the chains file.
type Token struct {
	Contract string `yaml:"contract" validate:"required"`
	Decimals int32  `yaml:"decimals" validate:"gte=0,lte=36"`
}

// Chain is one entry of the chains file.
type Chain struct {
	Name string `yaml:"-" validate:"required"`
	Type string `yaml:"type" validate:"required,oneof=evm solana utxo"`

	RPCEndpoint string `yaml:"rpc_endpoint" validate:"required,url"`
	RPCUsername string `yaml:"rpc_username"`
	RPCPassword string `yaml:"rpc_password"`

	PollInterval     time.Duration `yaml:"poll_interval" validate:"gt=0"`
	MaxBlocksPerScan uint64        `yaml:"max_blocks_per_scan" validate:"gt=0"`
	StartHeight      uint64        `yaml:"start_height"`

	NativeTokenSymbol string           `yaml:"native_token_symbol" validate:"required"`
	NativeDecimals    int32            `yaml:"native_decimals" validate:"gte=0,lte=36"`
	Tokens            map[string]Token `yaml:"tokens" validate:"dive,keys,required,endkeys"`

	// DEXAddresses maps router addresses to venue names (evm).
	DEXAddresses map[string]string `yaml:"dex_addresses"`
	// DEXPrograms maps program ids to venue names (solana).
	DEXPrograms map[string]string `yaml:"dex_programs"`

	ExplorerURL string `yaml:"explorer_url" validate:"omitempty,url"`
	ChainID     uint64 `yaml:"chain_id"`
}

func (c *Chain) applyDefaults() {
	if c.PollInterval == 0 {
		c.PollInterval = defaultPollInterval
	}

	if c.MaxBlocksPerScan == 0 {
		c.MaxBlocksPerScan = defaultMaxBlocksPerScan
	}
}

func (c Chain) validate() error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	if c.Type == TypeUTXO && len(c.Tokens) > 0 {
		return validator.Invalid("Tokens", len(c.Tokens), "excluded_if=Type utxo")
	}

	return nil
}
