package entry

import (
	"sort"
	"time"
)

// DateLayout is the key format of the habit log (ISO calendar date)
const DateLayout = "2006-01-02"

// Entry represents one calendar date's logged state.
// Optional fields are pointers; nil means the value was not logged.
type Entry struct {
	Date       string     `json:"date"`
	BedTime    *ClockTime `json:"bed_time,omitempty"`
	WakeTime   *ClockTime `json:"wake_time,omitempty"`
	Mood       *int       `json:"mood,omitempty"`
	Energy     *int       `json:"energy,omitempty"`
	Activities []string   `json:"activities,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
	Note       string     `json:"note,omitempty"`
}

// Completed reports whether the entry has mood, energy, bed time and wake time set.
func (e Entry) Completed() bool {
	return e.Mood != nil && e.Energy != nil && e.BedTime != nil && e.WakeTime != nil
}

// HasSleep reports whether both sleep times are present
func (e Entry) HasSleep() bool {
	return e.BedTime != nil && e.WakeTime != nil
}

// HasActivity reports whether the entry contains the given activity tag
func (e Entry) HasActivity(activity string) bool {
	for _, a := range e.Activities {
		if a == activity {
			return true
		}
	}
	return false
}

// Sleep returns the sleep duration of the entry under the given rollover rule.
// ok is false when either time is missing.
func (e Entry) Sleep(rule RolloverRule) (d time.Duration, ok bool) {
	if !e.HasSleep() {
		return 0, false
	}
	return SleepDuration(*e.BedTime, *e.WakeTime, rule), true
}

// Day parses the entry date. ok is false for malformed keys.
func (e Entry) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Log is the habit log: one entry per calendar date, keyed by Date.
type Log map[string]Entry

// Dates returns the log keys in ascending order
func (l Log) Dates() []string {
	dates := make([]string, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Get looks up the entry for the calendar date of t
func (l Log) Get(t time.Time) (Entry, bool) {
	e, ok := l[t.Format(DateLayout)]
	return e, ok
}

// Put stores e under its date, replacing any previous entry
func (l Log) Put(e Entry) {
	l[e.Date] = e
}

// Clone returns a shallow copy of the log map
func (l Log) Clone() Log {
	c := make(Log, len(l))
	for k, v := range l {
		c[k] = v
	}
	return c
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
