package sorter

import (
	"time"

	"github.com/dhanush-r-m/TradeWiz/internal/model"
)

// MergeSort sorts a batch ascending by the natural ordering of the
// requested field using a classic stable top-down merge sort. Ties prefer
// the left element, which preserves input order for equal field values.
// Batches of length 0 or 1 are returned as-is with zero elapsed time.
func MergeSort(items []model.Transaction, field model.SortField) ([]model.Transaction, time.Duration) {
	if len(items) <= 1 {
		return items, 0
	}

	start := time.Now()

	work := make([]model.Transaction, len(items))
	copy(work, items)
	sorted := mergeSort(work, field)

	return sorted, time.Since(start)
}

func mergeSort(items []model.Transaction, field model.SortField) []model.Transaction {
	if len(items) <= 1 {
		return items
	}
	mid := len(items) / 2
	left := mergeSort(items[:mid], field)
	right := mergeSort(items[mid:], field)
	return merge(left, right, field)
}

func merge(left, right []model.Transaction, field model.SortField) []model.Transaction {
	out := make([]model.Transaction, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// <= keeps the merge stable: equal elements come from the left half
		// first, matching their original relative order.
		if lessOrEqual(left[i], right[j], field) {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

func lessOrEqual(a, b model.Transaction, field model.SortField) bool {
	switch field {
	case model.FieldPrice:
		return a.Price <= b.Price
	case model.FieldSymbol:
		return a.Symbol <= b.Symbol
	default:
		return a.Timestamp <= b.Timestamp
	}
}
