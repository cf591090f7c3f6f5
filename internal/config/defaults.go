package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultPort              = 8080
	DefaultTickInterval      = 100 * time.Millisecond
	DefaultFlushThreshold    = 500
	DefaultRateMin           = 100
	DefaultRateMax           = 10000
	DefaultRate              = 1000
	DefaultHistoryCapacity   = 20
	DefaultSortedWindowSize  = 500
	DefaultEncodedSampleSize = 20
	DefaultPriceMin          = 50.0
	DefaultPriceMax          = 1050.0
)

// DefaultSymbols is the fixed ticker alphabet used when none is configured.
var DefaultSymbols = []string{
	"AAPL", "MSFT", "GOOG", "AMZN", "TSLA",
	"NVDA", "META", "NFLX", "INTC", "AMD",
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}

	if c.Engine.TickInterval == 0 {
		c.Engine.TickInterval = Duration(DefaultTickInterval)
	}
	if c.Engine.FlushThreshold == 0 {
		c.Engine.FlushThreshold = DefaultFlushThreshold
	}
	if c.Engine.RateMin == 0 {
		c.Engine.RateMin = DefaultRateMin
	}
	if c.Engine.RateMax == 0 {
		c.Engine.RateMax = DefaultRateMax
	}
	if c.Engine.DefaultRate == 0 {
		c.Engine.DefaultRate = DefaultRate
	}
	if c.Engine.HistoryCapacity == 0 {
		c.Engine.HistoryCapacity = DefaultHistoryCapacity
	}
	if c.Engine.SortedWindowSize == 0 {
		c.Engine.SortedWindowSize = DefaultSortedWindowSize
	}
	if c.Engine.EncodedSampleSize == 0 {
		c.Engine.EncodedSampleSize = DefaultEncodedSampleSize
	}

	if len(c.Generator.Symbols) == 0 {
		c.Generator.Symbols = append([]string{}, DefaultSymbols...)
	}
	if c.Generator.PriceMin == 0 {
		c.Generator.PriceMin = DefaultPriceMin
	}
	if c.Generator.PriceMax == 0 {
		c.Generator.PriceMax = DefaultPriceMax
	}
}
