package data

import (
	"sync"
	"time"

	"github.com/dhanush-r-m/TradeWiz/internal/model"
)

// StoreConfig holds configuration for the statistics store
type StoreConfig struct {
	HistoryCapacity   int
	SortedWindowSize  int
	EncodedSampleSize int
}

// DefaultStoreConfig returns sensible default configuration
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		HistoryCapacity:   20,  // trailing performance samples for trend display
		SortedWindowSize:  500, // most recent sorted output kept for display
		EncodedSampleSize: 20,  // first encoded keys of the last pass
	}
}

// StatsStore is the engine's observable state: running statistics, the
// bounded trailing sample history, and the latest pass outputs. All
// reads copy out so callers can never mutate internal state.
type StatsStore struct {
	totalTransactions int64
	lastRadixMs       float64
	lastMergeMs       float64
	averageMs         float64
	history           []model.PerformanceSample
	latestSorted      []model.Transaction
	encodedSample     []model.EncodedTransaction
	config            StoreConfig
	mu                sync.RWMutex
}

// NewStatsStore creates a statistics store with default config
func NewStatsStore() *StatsStore {
	return NewStatsStoreWithConfig(DefaultStoreConfig())
}

// NewStatsStoreWithConfig creates a statistics store with custom config
func NewStatsStoreWithConfig(config StoreConfig) *StatsStore {
	return &StatsStore{config: config}
}

// AddGenerated advances the running total by n freshly generated
// transactions. The total is the only statistic that moves on ticks that
// do not reach the flush threshold.
func (s *StatsStore) AddGenerated(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalTransactions += int64(n)
}

// RecordPass records the timings of one completed sort pass and appends a
// performance sample, evicting the oldest once the history is at capacity.
// The batch transactions were already counted at generation time, so the
// running total is not advanced here.
func (s *StatsStore) RecordPass(radix, merge time.Duration, batchSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRadixMs = float64(radix.Microseconds()) / 1000
	s.lastMergeMs = float64(merge.Microseconds()) / 1000
	s.averageMs = (s.lastRadixMs + s.lastMergeMs) / 2

	sample := model.PerformanceSample{
		CapturedAt:      time.Now().Format("15:04:05"),
		RadixDurationMs: s.lastRadixMs,
		MergeDurationMs: s.lastMergeMs,
		BatchSize:       batchSize,
		RunningTotal:    s.totalTransactions,
	}

	s.history = append(s.history, sample)
	if len(s.history) > s.config.HistoryCapacity {
		s.history = s.history[len(s.history)-s.config.HistoryCapacity:]
	}
}

// SetLatestPass stores the display outputs of the most recent pass,
// bounded to the configured windows (trailing sorted transactions, leading
// encoded keys).
func (s *StatsStore) SetLatestPass(sorted []model.Transaction, encoded []model.EncodedTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(sorted) > s.config.SortedWindowSize {
		sorted = sorted[len(sorted)-s.config.SortedWindowSize:]
	}
	s.latestSorted = make([]model.Transaction, len(sorted))
	copy(s.latestSorted, sorted)

	if len(encoded) > s.config.EncodedSampleSize {
		encoded = encoded[:s.config.EncodedSampleSize]
	}
	s.encodedSample = make([]model.EncodedTransaction, len(encoded))
	copy(s.encodedSample, encoded)
}

// Snapshot returns the current running statistics.
func (s *StatsStore) Snapshot() model.RunStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.RunStatistics{
		TotalTransactions:     s.totalTransactions,
		LastRadixDurationMs:   s.lastRadixMs,
		LastMergeDurationMs:   s.lastMergeMs,
		AverageSortDurationMs: s.averageMs,
	}
}

// History returns a copy of the trailing performance sample history,
// oldest first.
func (s *StatsStore) History() []model.PerformanceSample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.PerformanceSample, len(s.history))
	copy(result, s.history)
	return result
}

// LatestSorted returns up to limit transactions from the tail of the most
// recent sorted output. limit <= 0 returns the whole retained window.
func (s *StatsStore) LatestSorted(limit int) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := s.latestSorted
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[len(sorted)-limit:]
	}

	result := make([]model.Transaction, len(sorted))
	copy(result, sorted)
	return result
}

// EncodedSample returns a copy of the retained encoded-key sample of the
// last pass, for diagnostic display.
func (s *StatsStore) EncodedSample() []model.EncodedTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.EncodedTransaction, len(s.encodedSample))
	copy(result, s.encodedSample)
	return result
}

// Reset clears every statistic, the history and the retained pass outputs.
func (s *StatsStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalTransactions = 0
	s.lastRadixMs = 0
	s.lastMergeMs = 0
	s.averageMs = 0
	s.history = nil
	s.latestSorted = nil
	s.encodedSample = nil
}
