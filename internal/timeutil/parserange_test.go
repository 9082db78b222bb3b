package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestParseDateRangeFlags_LastDays(t *testing.T) {
	now := makeTime(2024, time.January, 10, 14, 0, 0)

	tests := []struct {
		name      string
		lastDays  int
		wantStart string
	}{
		{"last 1 day", 1, "2024-01-10"},
		{"last 7 days", 7, "2024-01-04"},
		{"last 30 days", 30, "2023-12-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseDateRangeFlags("", "", tt.lastDays, now)
			if err != nil {
				t.Fatalf("ParseDateRangeFlags() error = %v", err)
			}
			if DateKey(start) != tt.wantStart {
				t.Errorf("start = %s, want %s", DateKey(start), tt.wantStart)
			}
			if !end.Equal(EndOfDay(now)) {
				t.Errorf("end = %v, want %v", end, EndOfDay(now))
			}
		})
	}
}

func TestParseDateRangeFlags_FromTo(t *testing.T) {
	now := makeTime(2024, time.February, 10, 14, 0, 0)

	tests := []struct {
		name      string
		from      string
		to        string
		wantStart string
		wantEnd   string
		wantErr   string
	}{
		{"from only", "2024-01-01", "", "2024-01-01", "2024-02-10", ""},
		{"to only", "", "2024-01-31", "0001-01-01", "2024-01-31", ""},
		{"from and to", "2024-01-01", "2024-01-31", "2024-01-01", "2024-01-31", ""},
		{"invalid from", "invalid", "", "", "", "invalid --from date"},
		{"invalid to", "", "invalid", "", "", "invalid --to date"},
		{"reversed", "2024-02-01", "2024-01-01", "", "", "is after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseDateRangeFlags(tt.from, tt.to, 0, now)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if DateKey(start) != tt.wantStart {
				t.Errorf("start = %s, want %s", DateKey(start), tt.wantStart)
			}
			if DateKey(end) != tt.wantEnd {
				t.Errorf("end = %s, want %s", DateKey(end), tt.wantEnd)
			}
		})
	}
}

func TestParseDateRangeFlags_Conflicts(t *testing.T) {
	now := makeTime(2024, time.January, 10, 14, 0, 0)

	if _, _, err := ParseDateRangeFlags("2024-01-01", "", 7, now); err == nil {
		t.Error("expected error combining --last and --from")
	}
	if _, _, err := ParseDateRangeFlags("", "", -3, now); err == nil {
		t.Error("expected error for negative --last")
	}
}
