package chainpoll

import "github.com/gabapcia/chaintrack/internal/pkg/blockrange"

// ScanRange returns the inclusive range to fetch after checkpoint when the
// chain head is at height, capped to maxBlocks heights. ok is false when
// there is nothing new.
func ScanRange(checkpoint, height, maxBlocks uint64) (from, to uint64, ok bool) {
	r, ok := blockrange.Next(checkpoint, height, maxBlocks)
	return r.From, r.To, ok
}
