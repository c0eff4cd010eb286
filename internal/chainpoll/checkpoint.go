package chainpoll

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when nothing has
// been saved for the chain yet.
var ErrNoCheckpointFound = errors.New("no checkpoint found for chain")

// CheckpointStorage persists the last fully processed height per chain.
// Calls for different chains may run concurrently; calls for one chain are
// serialized by the poller.
type CheckpointStorage interface {
	// SaveCheckpoint overwrites the checkpoint of chain.
	SaveCheckpoint(ctx context.Context, chain string, height uint64) error

	// LoadLatestCheckpoint returns the saved checkpoint of chain or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, chain string) (uint64, error)
}

// LoadCheckpoint returns the saved checkpoint of chain, or the result of
// fallback when none exists. found reports which one was used.
func LoadCheckpoint(ctx context.Context, storage CheckpointStorage, chain string, fallback func(context.Context) (uint64, error)) (height uint64, found bool, err error) {
	height, err = storage.LoadLatestCheckpoint(ctx, chain)
	if err == nil {
		return height, true, nil
	}

	if !errors.Is(err, ErrNoCheckpointFound) {
		return 0, false, err
	}

	height, err = fallback(ctx)
	return height, false, err
}

// nopCheckpoint keeps no state; every chain starts from its fallback.
type nopCheckpoint struct{}

var _ CheckpointStorage = nopCheckpoint{}

func (nopCheckpoint) SaveCheckpoint(context.Context, string, uint64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(context.Context, string) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
