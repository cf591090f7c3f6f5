package config

import (
	"errors"
	"fmt"
)

// maxSymbolBytes mirrors the encoder's 64-bit key width: a base-256 fold
// of more than 8 bytes would overflow, so oversized symbols are rejected
// here, at the configuration boundary.
const maxSymbolBytes = 8

// Validate checks that all values are usable by the engine.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Engine.TickInterval <= 0 {
		return errors.New("engine.tick_interval must be positive")
	}
	if c.Engine.FlushThreshold < 1 {
		return errors.New("engine.flush_threshold must be >= 1")
	}
	if c.Engine.RateMin < 1 {
		return errors.New("engine.rate_min must be >= 1")
	}
	if c.Engine.RateMax < c.Engine.RateMin {
		return fmt.Errorf("engine.rate_max (%d) cannot be below rate_min (%d)", c.Engine.RateMax, c.Engine.RateMin)
	}
	if c.Engine.DefaultRate < c.Engine.RateMin || c.Engine.DefaultRate > c.Engine.RateMax {
		return fmt.Errorf("engine.default_rate (%d) must be within [%d, %d]", c.Engine.DefaultRate, c.Engine.RateMin, c.Engine.RateMax)
	}
	if c.Engine.HistoryCapacity < 1 {
		return errors.New("engine.history_capacity must be >= 1")
	}
	if c.Engine.SortedWindowSize < 1 {
		return errors.New("engine.sorted_window_size must be >= 1")
	}
	if c.Engine.EncodedSampleSize < 1 {
		return errors.New("engine.encoded_sample_size must be >= 1")
	}

	if len(c.Generator.Symbols) == 0 {
		return errors.New("generator.symbols must not be empty")
	}
	for _, s := range c.Generator.Symbols {
		if s == "" {
			return errors.New("generator.symbols must not contain empty strings")
		}
		if len(s) > maxSymbolBytes {
			return fmt.Errorf("generator symbol %q exceeds %d bytes and cannot be radix-encoded", s, maxSymbolBytes)
		}
	}
	if c.Generator.PriceMin <= 0 {
		return errors.New("generator.price_min must be positive")
	}
	if c.Generator.PriceMax <= c.Generator.PriceMin {
		return fmt.Errorf("generator.price_max (%v) must exceed price_min (%v)", c.Generator.PriceMax, c.Generator.PriceMin)
	}

	return nil
}
