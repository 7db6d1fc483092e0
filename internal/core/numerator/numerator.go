// Package numerator provides domain contracts for document auto-numbering.
// Implementations live in the infrastructure layer.
package numerator

import (
	"context"
	"time"
)

// Generator generates sequential document numbers.
type Generator interface {
	// GetNextNumber generates the next document number.
	// Pattern: PREFIX-YEAR-XXXXX (e.g., PO-2026-00001)
	GetNextNumber(ctx context.Context, cfg Config, period time.Time) (string, error)
}

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "PO", "SO")
	Prefix string

	// IncludeYear adds year to the number
	IncludeYear bool

	// PadWidth is the minimum number width (default 5)
	PadWidth int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
	}
}
