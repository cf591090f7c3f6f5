package sorter

import (
	"fmt"
	"math"

	"github.com/dhanush-r-m/TradeWiz/internal/model"
)

// maxSymbolBytes is the longest symbol the base-256 fold can hold in a
// uint64 key (8 bytes). Longer symbols are a configuration error, never a
// silent truncation.
const maxSymbolBytes = 8

// ErrSymbolTooLong reports a symbol that exceeds the uint64 key width.
var ErrSymbolTooLong = fmt.Errorf("symbol exceeds %d bytes, cannot encode into a 64-bit sort key", maxSymbolBytes)

// Encode maps the chosen sort field of a transaction to its non-negative
// integer sort key. The radix sort depends on keys never being negative,
// which the uint64 return type guarantees.
//
//   - price: floor(price * 100), i.e. whole cents, so digit extraction is
//     exact despite the float representation
//   - symbol: left-to-right base-256 fold of the byte values; ordering
//     matches lexicographic order only for equal-length symbols
//   - timestamp: identity
func Encode(t model.Transaction, field model.SortField) (uint64, error) {
	switch field {
	case model.FieldPrice:
		return uint64(math.Floor(t.Price * 100)), nil
	case model.FieldSymbol:
		if len(t.Symbol) > maxSymbolBytes {
			return 0, fmt.Errorf("encode symbol %q: %w", t.Symbol, ErrSymbolTooLong)
		}
		var key uint64
		for i := 0; i < len(t.Symbol); i++ {
			key = key*256 + uint64(t.Symbol[i])
		}
		return key, nil
	case model.FieldTimestamp:
		return uint64(t.Timestamp), nil
	default:
		return 0, fmt.Errorf("unknown sort field %q", field)
	}
}

// encodeAll computes the per-pass encoded view of a batch.
func encodeAll(items []model.Transaction, field model.SortField) ([]model.EncodedTransaction, error) {
	encoded := make([]model.EncodedTransaction, len(items))
	for i, t := range items {
		key, err := Encode(t, field)
		if err != nil {
			return nil, err
		}
		encoded[i] = model.EncodedTransaction{Transaction: t, SortKey: key}
	}
	return encoded, nil
}
