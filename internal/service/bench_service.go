package service

import (
	"context"
	"fmt"

	"github.com/dhanush-r-m/TradeWiz/internal/model"
)

// Configuration constants
const (
	DefaultSortedLimit = 50
)

// Engine is the command surface of the batch scheduler.
type Engine interface {
	Start(ctx context.Context)
	Stop()
	Reset()
	SetSortField(field string) error
	SetAlgorithm(algorithm string) error
	SetRate(perSecond int) int
	Running() bool
	Rate() int
	SortField() model.SortField
	Algorithm() model.Algorithm
}

// StatsReader is the query surface of the engine's observable state.
type StatsReader interface {
	Snapshot() model.RunStatistics
	History() []model.PerformanceSample
	LatestSorted(limit int) []model.Transaction
	EncodedSample() []model.EncodedTransaction
}

// EngineStatus describes the engine's current configuration for the API.
type EngineStatus struct {
	Running   bool            `json:"running"`
	Rate      int             `json:"rate"`
	SortField model.SortField `json:"sort_field"`
	Algorithm model.Algorithm `json:"algorithm"`
}

// ConfigUpdate is a partial reconfiguration command; nil fields are left
// unchanged.
type ConfigUpdate struct {
	SortField *string `json:"sort_field,omitempty"`
	Algorithm *string `json:"algorithm,omitempty"`
	Rate      *int    `json:"rate,omitempty"`
}

// BenchService mediates between the HTTP API and the sorting engine.
// runCtx bounds the engine's tick loop to the process lifetime rather
// than to the request that happened to issue the start command.
type BenchService struct {
	engine Engine
	stats  StatsReader
	runCtx context.Context
}

// NewBenchService creates a new benchmark service
func NewBenchService(runCtx context.Context, engine Engine, stats StatsReader) *BenchService {
	if runCtx == nil {
		runCtx = context.Background()
	}
	return &BenchService{
		engine: engine,
		stats:  stats,
		runCtx: runCtx,
	}
}

// Stats returns the engine's running statistics.
func (bs *BenchService) Stats(ctx context.Context) model.RunStatistics {
	return bs.stats.Snapshot()
}

// History returns the bounded trailing performance sample history.
func (bs *BenchService) History(ctx context.Context) []model.PerformanceSample {
	return bs.stats.History()
}

// SortedOutput returns up to limit transactions from the most recent
// sorted pass output; limit <= 0 applies the default.
func (bs *BenchService) SortedOutput(ctx context.Context, limit int) []model.Transaction {
	if limit <= 0 {
		limit = DefaultSortedLimit
	}
	return bs.stats.LatestSorted(limit)
}

// EncodedSample returns the diagnostic encoded-key sample of the last pass.
func (bs *BenchService) EncodedSample(ctx context.Context) []model.EncodedTransaction {
	return bs.stats.EncodedSample()
}

// Status returns the engine's current state and configuration.
func (bs *BenchService) Status(ctx context.Context) EngineStatus {
	return EngineStatus{
		Running:   bs.engine.Running(),
		Rate:      bs.engine.Rate(),
		SortField: bs.engine.SortField(),
		Algorithm: bs.engine.Algorithm(),
	}
}

// Start begins the engine's periodic tick. The tick loop runs on the
// service's process-lifetime context, not the caller's.
func (bs *BenchService) Start(ctx context.Context) EngineStatus {
	bs.engine.Start(bs.runCtx)
	return bs.Status(ctx)
}

// Stop halts the engine's periodic tick.
func (bs *BenchService) Stop(ctx context.Context) EngineStatus {
	bs.engine.Stop()
	return bs.Status(ctx)
}

// Reset forces the engine to idle and clears all state.
func (bs *BenchService) Reset(ctx context.Context) EngineStatus {
	bs.engine.Reset()
	return bs.Status(ctx)
}

// Configure applies a partial reconfiguration. Field and algorithm are
// rejected if unknown; the rate is clamped by the engine.
func (bs *BenchService) Configure(ctx context.Context, update ConfigUpdate) (EngineStatus, error) {
	if update.SortField != nil {
		if err := bs.engine.SetSortField(*update.SortField); err != nil {
			return bs.Status(ctx), fmt.Errorf("configure sort field: %w", err)
		}
	}
	if update.Algorithm != nil {
		if err := bs.engine.SetAlgorithm(*update.Algorithm); err != nil {
			return bs.Status(ctx), fmt.Errorf("configure algorithm: %w", err)
		}
	}
	if update.Rate != nil {
		bs.engine.SetRate(*update.Rate)
	}
	return bs.Status(ctx), nil
}
