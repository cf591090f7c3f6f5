package model

import "fmt"

// Transaction represents a single simulated trade event. Immutable once created.
type Transaction struct {
	ID          string  `json:"id"`
	Symbol      string  `json:"symbol"`
	Price       float64 `json:"price"`
	Timestamp   int64   `json:"timestamp"`
	DisplayTime string  `json:"display_time"`
}

// EncodedTransaction is a Transaction plus the integer sort key derived for
// one sort field. Valid only for the field it was computed for; built
// transiently per sort pass and discarded after.
type EncodedTransaction struct {
	Transaction
	SortKey uint64 `json:"sort_key"`
}

// SortField selects both the comparison used by the merge sort and the
// integer-encoding rule used by the radix sort.
type SortField string

const (
	FieldPrice     SortField = "price"
	FieldSymbol    SortField = "symbol"
	FieldTimestamp SortField = "timestamp"
)

// ParseSortField validates a field name coming in over a command boundary.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case FieldPrice, FieldSymbol, FieldTimestamp:
		return SortField(s), nil
	}
	return "", fmt.Errorf("unknown sort field %q (want price, symbol or timestamp)", s)
}

// Algorithm selects which sorted output is surfaced for display.
// Both algorithms always run for comparison.
type Algorithm string

const (
	AlgorithmRadix Algorithm = "radix"
	AlgorithmMerge Algorithm = "merge"
)

// ParseAlgorithm validates an algorithm name coming in over a command boundary.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmRadix, AlgorithmMerge:
		return Algorithm(s), nil
	}
	return "", fmt.Errorf("unknown algorithm %q (want radix or merge)", s)
}

// RunStatistics is the engine's running aggregate, refreshed on every
// completed sort pass.
type RunStatistics struct {
	TotalTransactions     int64   `json:"total_transactions"`
	LastRadixDurationMs   float64 `json:"last_radix_duration_ms"`
	LastMergeDurationMs   float64 `json:"last_merge_duration_ms"`
	AverageSortDurationMs float64 `json:"average_sort_duration_ms"`
}

// PerformanceSample is one immutable record per completed batch, kept in a
// bounded trailing history for trend display.
type PerformanceSample struct {
	CapturedAt      string  `json:"captured_at"`
	RadixDurationMs float64 `json:"radix_duration_ms"`
	MergeDurationMs float64 `json:"merge_duration_ms"`
	BatchSize       int     `json:"batch_size"`
	RunningTotal    int64   `json:"running_total"`
}
