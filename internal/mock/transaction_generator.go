package mock

import (
	"math"
	"math/rand"
	"time"

	"github.com/dhanush-r-m/TradeWiz/internal/model"
	"github.com/google/uuid"
)

// GeneratorConfig holds configuration for the transaction generator
type GeneratorConfig struct {
	Symbols        []string
	PriceMin       float64
	PriceMax       float64
	JitterMaxNanos int64
}

// DefaultGeneratorConfig returns a sensible default configuration
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Symbols: []string{
			"AAPL", "MSFT", "GOOG", "AMZN", "TSLA",
			"NVDA", "META", "NFLX", "INTC", "AMD",
		},
		PriceMin:       50.0,
		PriceMax:       1050.0,
		JitterMaxNanos: 1_000_000, // models out-of-order arrival within a tick
	}
}

// TransactionGenerator produces synthetic trade transactions with a
// randomized symbol, price and nanosecond-scale timestamp. It never fails.
type TransactionGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewTransactionGenerator creates a new transaction generator with default config
func NewTransactionGenerator() *TransactionGenerator {
	return NewTransactionGeneratorWithConfig(DefaultGeneratorConfig())
}

// NewTransactionGeneratorWithConfig creates a new transaction generator with custom config
func NewTransactionGeneratorWithConfig(config GeneratorConfig) *TransactionGenerator {
	return &TransactionGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate returns one new transaction. The symbol is drawn uniformly from
// the configured list, the price uniformly from [PriceMin, PriceMax)
// rounded half-away-from-zero to two decimals, and the timestamp is the
// current wall clock in nanoseconds plus sub-tick jitter.
func (tg *TransactionGenerator) Generate() model.Transaction {
	now := time.Now()

	price := tg.config.PriceMin + tg.rng.Float64()*(tg.config.PriceMax-tg.config.PriceMin)
	price = math.Round(price*100) / 100

	return model.Transaction{
		ID:          uuid.New().String(),
		Symbol:      tg.config.Symbols[tg.rng.Intn(len(tg.config.Symbols))],
		Price:       price,
		Timestamp:   now.UnixNano() + tg.rng.Int63n(tg.config.JitterMaxNanos),
		DisplayTime: now.Format("15:04:05.000"),
	}
}

// GenerateBatch returns n freshly generated transactions.
func (tg *TransactionGenerator) GenerateBatch(n int) []model.Transaction {
	batch := make([]model.Transaction, n)
	for i := range batch {
		batch[i] = tg.Generate()
	}
	return batch
}
