package sorter

import (
	"time"

	"github.com/dhanush-r-m/TradeWiz/internal/model"
)

// RadixSort sorts a batch ascending by the encoded key of the requested
// field using an LSD base-10 radix sort. Each digit pass distributes into
// ten buckets in encounter order, which keeps the sort stable.
//
// The returned encoded slice is the post-encoding, pre-sort intermediate,
// exposed for diagnostic display only; it never affects the result. The
// elapsed duration covers encoding plus the digit passes, measured
// wall-clock. Batches of length 0 or 1 are returned as-is with zero
// elapsed time. The only error is encoder misconfiguration (a symbol too
// long for the key width).
func RadixSort(items []model.Transaction, field model.SortField) ([]model.Transaction, []model.EncodedTransaction, time.Duration, error) {
	if len(items) <= 1 {
		return items, nil, 0, nil
	}

	start := time.Now()

	encoded, err := encodeAll(items, field)
	if err != nil {
		return nil, nil, 0, err
	}

	// Keep the pre-sort encoded view; the passes below reorder a copy.
	working := make([]model.EncodedTransaction, len(encoded))
	copy(working, encoded)

	maxKey := working[0].SortKey
	for _, e := range working[1:] {
		if e.SortKey > maxKey {
			maxKey = e.SortKey
		}
	}

	digits := digitCount(maxKey)

	next := make([]model.EncodedTransaction, 0, len(working))
	divisor := uint64(1)
	for d := 0; d < digits; d++ {
		var buckets [10][]model.EncodedTransaction
		for _, e := range working {
			b := (e.SortKey / divisor) % 10
			buckets[b] = append(buckets[b], e)
		}
		next = next[:0]
		for b := 0; b < 10; b++ {
			next = append(next, buckets[b]...)
		}
		working, next = next, working
		divisor *= 10
	}

	elapsed := time.Since(start)

	sorted := make([]model.Transaction, len(working))
	for i, e := range working {
		sorted[i] = e.Transaction
	}
	return sorted, encoded, elapsed, nil
}

// digitCount returns the number of decimal digits in key; zero counts as
// one digit.
func digitCount(key uint64) int {
	n := 1
	for key >= 10 {
		key /= 10
		n++
	}
	return n
}
