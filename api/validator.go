package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dhanush-r-m/TradeWiz/internal/service"
)

// Validator handles validation logic separate from HTTP concerns
type Validator struct {
	supportedFields     map[string]bool
	supportedAlgorithms map[string]bool
}

var (
	validatorInstance *Validator
	validatorOnce     sync.Once
)

// Rate and limit bounds enforced at the HTTP boundary. The engine clamps
// rates itself; rejecting out-of-range values here gives callers an
// explicit error instead of a silent clamp.
const (
	MinRatePerSecond = 100
	MaxRatePerSecond = 10000
	MaxSortedLimit   = 500
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		validatorInstance = &Validator{
			supportedFields: map[string]bool{
				"price":     true,
				"symbol":    true,
				"timestamp": true,
			},
			supportedAlgorithms: map[string]bool{
				"radix": true,
				"merge": true,
			},
		}
	})
	return validatorInstance
}

// ValidateSortedLimit validates the limit parameter for sorted output requests
func (v *Validator) ValidateSortedLimit(limitStr string) (int, error) {
	// If limit is not provided, return 0 (service default applies)
	if limitStr == "" {
		return 0, nil
	}

	limitStr = v.sanitizeInput(limitStr)

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, errors.New("limit must be a valid number")
	}

	if limit < 0 || limit > MaxSortedLimit {
		return 0, fmt.Errorf("limit must be between 0 and %d (0 means service default)", MaxSortedLimit)
	}

	return limit, nil
}

// ValidateConfigUpdate validates a partial engine reconfiguration
func (v *Validator) ValidateConfigUpdate(update service.ConfigUpdate) error {
	if update.SortField == nil && update.Algorithm == nil && update.Rate == nil {
		return errors.New("config update must set at least one of sort_field, algorithm, rate")
	}

	if update.SortField != nil {
		field := v.sanitizeInput(*update.SortField)
		if !v.supportedFields[field] {
			return fmt.Errorf("invalid sort_field '%s'. Supported values: price, symbol, timestamp", field)
		}
	}

	if update.Algorithm != nil {
		algorithm := v.sanitizeInput(*update.Algorithm)
		if !v.supportedAlgorithms[algorithm] {
			return fmt.Errorf("invalid algorithm '%s'. Supported values: radix, merge", algorithm)
		}
	}

	if update.Rate != nil {
		if *update.Rate < MinRatePerSecond || *update.Rate > MaxRatePerSecond {
			return fmt.Errorf("rate must be between %d and %d", MinRatePerSecond, MaxRatePerSecond)
		}
	}

	return nil
}

// sanitizeInput removes potentially dangerous characters and trims whitespace
func (v *Validator) sanitizeInput(input string) string {
	// Trim whitespace
	input = strings.TrimSpace(input)

	// Remove null bytes and control characters
	input = strings.ReplaceAll(input, "\x00", "")
	input = strings.Map(func(r rune) rune {
		// Keep printable ASCII and common symbols, remove control chars
		if r < 32 && r != 9 && r != 10 && r != 13 { // Keep tab, LF, CR
			return -1 // Remove character
		}
		return r
	}, input)

	// Limit length to prevent DoS
	if len(input) > 100 {
		input = input[:100]
	}

	return input
}
