package entry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseClock_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ClockTime
	}{
		{"midnight", "00:00", ClockTime{0, 0}},
		{"late evening", "23:30", ClockTime{23, 30}},
		{"single digit hour", "7:05", ClockTime{7, 5}},
		{"last minute", "23:59", ClockTime{23, 59}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseClock(tt.input)
			if err != nil {
				t.Fatalf("ParseClock(%q) returned unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseClock(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	inputs := []string{"", "7", "24:00", "12:60", "12:5", "noon", "12:30pm", "-1:00"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseClock(input); err == nil {
				t.Errorf("ParseClock(%q) expected error, got nil", input)
			}
		})
	}
}

func TestClockTime_TextRoundTrip(t *testing.T) {
	e := Entry{Date: "2024-01-01", BedTime: MustClock("23:05"), WakeTime: MustClock("6:40")}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.BedTime.String() != "23:05" || decoded.WakeTime.String() != "06:40" {
		t.Errorf("round trip gave bed=%s wake=%s", decoded.BedTime, decoded.WakeTime)
	}
}

func TestClockTime_UnmarshalRejectsGarbage(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"date":"2024-01-01","bed_time":"late"}`), &e); err == nil {
		t.Error("expected error for malformed bed_time")
	}
}

func TestSleepDuration(t *testing.T) {
	tests := []struct {
		name     string
		bed      string
		wake     string
		rule     RolloverRule
		expected time.Duration
	}{
		{"crosses midnight", "23:30", "06:00", RolloverStrict, 6*time.Hour + 30*time.Minute},
		{"same day nap", "13:00", "14:30", RolloverStrict, 90 * time.Minute},
		{"after midnight bedtime", "00:30", "08:00", RolloverStrict, 7*time.Hour + 30*time.Minute},
		{"equal times strict", "07:00", "07:00", RolloverStrict, 0},
		{"equal times inclusive", "07:00", "07:00", RolloverInclusive, 24 * time.Hour},
		{"crosses midnight inclusive", "23:00", "07:00", RolloverInclusive, 8 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SleepDuration(*MustClock(tt.bed), *MustClock(tt.wake), tt.rule)
			if got != tt.expected {
				t.Errorf("SleepDuration(%s, %s, %s) = %v, expected %v", tt.bed, tt.wake, tt.rule, got, tt.expected)
			}
			if got < 0 {
				t.Errorf("SleepDuration returned negative duration %v", got)
			}
		})
	}
}

func TestParseRolloverRule(t *testing.T) {
	tests := []struct {
		input    string
		expected RolloverRule
		wantErr  bool
	}{
		{"", RolloverStrict, false},
		{"strict", RolloverStrict, false},
		{"inclusive", RolloverInclusive, false},
		{"lenient", RolloverStrict, true},
	}

	for _, tt := range tests {
		got, err := ParseRolloverRule(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRolloverRule(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseRolloverRule(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
