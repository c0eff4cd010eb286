// Package blockrange holds arithmetic over inclusive height ranges shared by
// the poller and the chain adapters.
package blockrange

import "iter"

// Range is an inclusive [From, To] span of heights.
type Range struct {
	From uint64
	To   uint64
}

// Len returns the number of heights in r, or 0 when r is empty.
func (r Range) Len() uint64 {
	if r.From > r.To {
		return 0
	}
	return r.To - r.From + 1
}

// Next computes the range to scan after checkpoint given the current head
// height, capped to max heights. ok is false when there is nothing new.
// A max of 0 disables the cap.
func Next(checkpoint, head, max uint64) (Range, bool) {
	if head <= checkpoint {
		return Range{}, false
	}

	r := Range{From: checkpoint + 1, To: head}
	if max > 0 && r.Len() > max {
		r.To = r.From + max - 1
	}

	return r, true
}

// Chunks splits [from, to] into consecutive ranges of at most size heights.
// It yields nothing when from > to. A size of 0 yields the whole range.
func Chunks(from, to, size uint64) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		if from > to {
			return
		}

		if size == 0 {
			yield(Range{From: from, To: to})
			return
		}

		for start := from; start <= to; start += size {
			end := start + size - 1
			if end > to || end < start {
				end = to
			}

			if !yield(Range{From: start, To: end}) {
				return
			}

			if end == to {
				return
			}
		}
	}
}
