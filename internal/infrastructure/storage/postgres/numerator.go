package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"officex/internal/core/numerator"
)

// NumeratorService generates gap-free sequential document numbers backed
// by the sys_sequences table. UPDATE ... RETURNING keeps numbering
// correct under concurrent requests.
type NumeratorService struct {
	txManager *TxManager
}

// NewNumeratorService creates a postgres-backed number generator.
func NewNumeratorService(txManager *TxManager) *NumeratorService {
	return &NumeratorService{txManager: txManager}
}

// GetNextNumber implements numerator.Generator.
func (s *NumeratorService) GetNextNumber(ctx context.Context, cfg numerator.Config, period time.Time) (string, error) {
	key := cfg.Prefix
	if cfg.IncludeYear {
		key = fmt.Sprintf("%s_%d", cfg.Prefix, period.Year())
	}

	sql := `
		INSERT INTO sys_sequences (key, current_val)
		VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE SET current_val = sys_sequences.current_val + 1
		RETURNING current_val
	`

	var value int64
	querier := s.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, key).Scan(&value); err != nil {
		return "", fmt.Errorf("next sequence value for %s: %w", key, err)
	}

	return formatNumber(cfg, period, value), nil
}

func formatNumber(cfg numerator.Config, period time.Time, value int64) string {
	padWidth := cfg.PadWidth
	if padWidth <= 0 {
		padWidth = 5
	}

	var b strings.Builder
	b.WriteString(cfg.Prefix)
	if cfg.IncludeYear {
		fmt.Fprintf(&b, "-%d", period.Year())
	}
	fmt.Fprintf(&b, "-%0*d", padWidth, value)
	return b.String()
}

var _ numerator.Generator = (*NumeratorService)(nil)
