package chainpoll

import (
	"context"
	"time"
)

// State is a step of the per-chain polling state machine.
type State string

const (
	StateIdle           State = "idle"
	StateFetchingHeight State = "fetching_height"
	StateFetchingTxs    State = "fetching_txs"
	StateMatching       State = "matching"
	StateNotifying      State = "notifying"
	StateCheckpointing  State = "checkpointing"
	StateBackoff        State = "backoff"
	StateDisabled       State = "disabled"
)

// ChainStatus is a point-in-time view of one chain's poller.
type ChainStatus struct {
	Chain               string    `json:"chain"`
	State               State     `json:"state"`
	Checkpoint          uint64    `json:"checkpoint"`
	LastSuccessHeight   uint64    `json:"last_success_height"`
	LastSuccessAt       time.Time `json:"last_success_at,omitzero"`
	LastError           string    `json:"last_error,omitempty"`
	LastErrorAt         time.Time `json:"last_error_at,omitzero"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	Disabled            bool      `json:"disabled"`
}

// StatusStorage publishes chain statuses outside the process.
type StatusStorage interface {
	SaveStatus(ctx context.Context, status ChainStatus) error
}

// CycleFailure describes a failed polling cycle.
type CycleFailure struct {
	Chain      string
	State      State
	Checkpoint uint64
	Attempt    int
	Fatal      bool
	Err        error
}
