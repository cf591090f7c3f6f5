package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dhanush-r-m/TradeWiz/internal/model"
	"github.com/dhanush-r-m/TradeWiz/internal/sorter"
)

// Generator produces the synthetic transactions fed into each tick.
type Generator interface {
	GenerateBatch(n int) []model.Transaction
}

// StatsRecorder receives the engine's bookkeeping updates.
type StatsRecorder interface {
	AddGenerated(n int)
	RecordPass(radix, merge time.Duration, batchSize int)
	SetLatestPass(sorted []model.Transaction, encoded []model.EncodedTransaction)
	Reset()
}

// SchedulerConfig holds configuration for the batch scheduler
type SchedulerConfig struct {
	TickInterval   time.Duration
	FlushThreshold int
	RateMin        int
	RateMax        int
	DefaultRate    int
}

// DefaultSchedulerConfig returns sensible default configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		TickInterval:   100 * time.Millisecond,
		FlushThreshold: 500, // small batches give noise-dominated timings
		RateMin:        100,
		RateMax:        10000,
		DefaultRate:    1000,
	}
}

// Engine is the batch scheduler: it accumulates generated transactions in
// a buffer and, once the flush threshold is reached, runs both sort
// algorithms against the same snapshot and records the timings. It has
// two states, idle and running; while running a single goroutine owns the
// tick loop, so ticks never overlap.
type Engine struct {
	config SchedulerConfig
	gen    Generator
	stats  StatsRecorder
	logger *slog.Logger

	mu          sync.Mutex
	running     bool
	cancelTicks context.CancelFunc
	buffer      []model.Transaction
	rate        int
	field       model.SortField
	display     model.Algorithm
}

// NewEngine creates an idle engine with default scheduler config
func NewEngine(gen Generator, stats StatsRecorder, logger *slog.Logger) *Engine {
	return NewEngineWithConfig(gen, stats, DefaultSchedulerConfig(), logger)
}

// NewEngineWithConfig creates an idle engine with custom scheduler config
func NewEngineWithConfig(gen Generator, stats StatsRecorder, config SchedulerConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		config:  config,
		gen:     gen,
		stats:   stats,
		logger:  logger,
		rate:    config.DefaultRate,
		field:   model.FieldPrice,
		display: model.AlgorithmRadix,
	}
}

// Start transitions the engine from idle to running and begins the
// periodic tick. Starting a running engine is a no-op. The tick loop
// stops when Stop or Reset is called or ctx is cancelled.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return
	}

	tickCtx, cancel := context.WithCancel(ctx)
	e.running = true
	e.cancelTicks = cancel

	e.logger.Info("engine started",
		"tick_interval", e.config.TickInterval,
		"flush_threshold", e.config.FlushThreshold,
		"rate", e.rate)

	go func() {
		ticker := time.NewTicker(e.config.TickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				e.tick()
			case <-tickCtx.Done():
				e.logger.Info("engine tick loop stopped")
				return
			}
		}
	}()
}

// Stop transitions the engine to idle. Future ticks are prevented; an
// in-flight pass is allowed to finish.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if !e.running {
		return
	}
	e.running = false
	e.cancelTicks()
	e.cancelTicks = nil
	e.logger.Info("engine stopped")
}

// Reset forces the engine to idle, discards any buffered transactions and
// zeroes all statistics and history. Valid in either state.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.stopLocked()
	e.buffer = nil
	e.mu.Unlock()

	e.stats.Reset()
	e.logger.Info("engine reset")
}

// tick runs one scheduler step: generate this tick's share of the
// configured per-second rate, and flush through both sorters once the
// buffer reaches the threshold. Called only from the tick loop goroutine,
// so ticks are serialized by construction.
func (e *Engine) tick() {
	e.mu.Lock()

	batchSize := e.rate / 10 // rate is per second, tick is 1/10 second
	e.buffer = append(e.buffer, e.gen.GenerateBatch(batchSize)...)
	e.stats.AddGenerated(batchSize)

	if len(e.buffer) < e.config.FlushThreshold {
		e.mu.Unlock()
		return
	}

	// Take the whole buffer as an immutable pass snapshot; both sorters
	// only read it.
	snapshot := e.buffer
	e.buffer = nil
	field := e.field
	display := e.display
	e.mu.Unlock()

	e.runPass(snapshot, field, display)
}

func (e *Engine) runPass(batch []model.Transaction, field model.SortField, display model.Algorithm) {
	radixSorted, encoded, radixElapsed, err := sorter.RadixSort(batch, field)
	if err != nil {
		// Only reachable with a misconfigured symbol alphabet; the batch
		// is dropped rather than recorded with partial timings.
		e.logger.Error("radix sort pass failed",
			"field", field,
			"batch_size", len(batch),
			"error", err)
		return
	}

	mergeSorted, mergeElapsed := sorter.MergeSort(batch, field)

	sorted := radixSorted
	if display == model.AlgorithmMerge {
		sorted = mergeSorted
	}

	e.stats.RecordPass(radixElapsed, mergeElapsed, len(batch))
	e.stats.SetLatestPass(sorted, encoded)

	e.logger.Debug("sort pass complete",
		"field", field,
		"batch_size", len(batch),
		"radix", radixElapsed,
		"merge", mergeElapsed)
}

// SetSortField selects the field both sorters order by, effective from
// the next pass.
func (e *Engine) SetSortField(field string) error {
	parsed, err := model.ParseSortField(field)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.field = parsed
	e.mu.Unlock()

	e.logger.Info("sort field changed", "field", parsed)
	return nil
}

// SetAlgorithm selects which algorithm's output is surfaced as the sorted
// display; both algorithms keep running for comparison.
func (e *Engine) SetAlgorithm(algorithm string) error {
	parsed, err := model.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.display = parsed
	e.mu.Unlock()

	e.logger.Info("display algorithm changed", "algorithm", parsed)
	return nil
}

// SetRate sets the generation rate in transactions per second, clamped to
// the configured range, and returns the applied value.
func (e *Engine) SetRate(perSecond int) int {
	if perSecond < e.config.RateMin {
		perSecond = e.config.RateMin
	}
	if perSecond > e.config.RateMax {
		perSecond = e.config.RateMax
	}

	e.mu.Lock()
	e.rate = perSecond
	e.mu.Unlock()

	e.logger.Info("rate changed", "per_second", perSecond)
	return perSecond
}

// Running reports whether the periodic tick is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Rate returns the configured generation rate in transactions per second.
func (e *Engine) Rate() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rate
}

// SortField returns the currently configured sort field.
func (e *Engine) SortField() model.SortField {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.field
}

// Algorithm returns the currently surfaced display algorithm.
func (e *Engine) Algorithm() model.Algorithm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.display
}

// BufferedCount returns the number of transactions waiting for the next
// flush.
func (e *Engine) BufferedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.buffer)
}
