package postgres

import (
	"testing"
	"time"

	"officex/internal/core/numerator"
)

func TestFormatNumber(t *testing.T) {
	period := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		cfg   numerator.Config
		value int64
		want  string
	}{
		{"default config", numerator.DefaultConfig("PO"), 1, "PO-2026-00001"},
		{"larger value", numerator.DefaultConfig("PO"), 12345, "PO-2026-12345"},
		{"overflow keeps digits", numerator.DefaultConfig("PO"), 123456, "PO-2026-123456"},
		{"no year", numerator.Config{Prefix: "SO", PadWidth: 3}, 7, "SO-007"},
		{"zero pad width falls back", numerator.Config{Prefix: "T", IncludeYear: true}, 9, "T-2026-00009"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatNumber(tt.cfg, period, tt.value)
			if got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}
