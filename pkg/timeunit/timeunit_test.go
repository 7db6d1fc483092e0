package timeunit

import "testing"

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"one minute", MinutesToMilliseconds(1), 60_000},
		{"one hour", HoursToMilliseconds(1), 3_600_000},
		{"one day", DaysToMilliseconds(1), 86_400_000},
		{"zero", HoursToMilliseconds(0), 0},
		{"two days", DaysToMilliseconds(2), 172_800_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("want %d, got %d", tt.want, tt.got)
			}
		})
	}
}

func TestDurationHelpers(t *testing.T) {
	if Hours(3).Milliseconds() != HoursToMilliseconds(3) {
		t.Errorf("Hours duration disagrees with millisecond conversion")
	}
	if Days(1).Milliseconds() != DaysToMilliseconds(1) {
		t.Errorf("Days duration disagrees with millisecond conversion")
	}
}
