package stats

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// Helper function to create test days with specific dates
func makeDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// Helper function to create a completed entry
func makeEntry(date string, mood, energy int, bed, wake string, activities ...string) entry.Entry {
	return entry.Entry{
		Date:       date,
		Mood:       entry.IntPtr(mood),
		Energy:     entry.IntPtr(energy),
		BedTime:    entry.MustClock(bed),
		WakeTime:   entry.MustClock(wake),
		Activities: activities,
	}
}

// Helper function to build a log from entries
func makeLog(entries ...entry.Entry) entry.Log {
	l := entry.Log{}
	for _, e := range entries {
		l.Put(e)
	}
	return l
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s = %.4f, expected %.4f", name, got, want)
	}
}

// scenarioLog is the two-day reference log used across tests
func scenarioLog() entry.Log {
	return makeLog(
		makeEntry("2024-01-01", 4, 8, "23:00", "07:00", "exercise"),
		makeEntry("2024-01-02", 3, 6, "23:30", "06:30"),
	)
}

var randomActivities = []string{"exercise", "reading", "coffee", "meditation", "late-screen"}

// randomLog fills up to days dates from start with gaps, partial entries
// and varied sleep so aggregates see every branch
func randomLog(r *rand.Rand, start time.Time, days int) entry.Log {
	log := entry.Log{}
	for d := 0; d < days; d++ {
		if r.Intn(3) == 0 {
			continue
		}
		key := timeutil.DateKey(timeutil.AddDays(start, d))
		bed := fmt.Sprintf("%02d:%02d", (21+r.Intn(5))%24, 15*r.Intn(4))
		wake := fmt.Sprintf("%02d:%02d", 5+r.Intn(4), 15*r.Intn(4))

		var acts []string
		for _, a := range randomActivities {
			if r.Intn(3) == 0 {
				acts = append(acts, a)
			}
		}
		e := makeEntry(key, 1+r.Intn(5), 1+r.Intn(10), bed, wake, acts...)
		switch r.Intn(6) {
		case 0:
			e.WakeTime = nil
		case 1:
			e.Energy = nil
		case 2:
			e.Mood = nil
		}
		log.Put(e)
	}
	return log
}

// randomOptions varies the window, energy mode and rollover rule
func randomOptions(r *rand.Rand) Options {
	opts := Options{WindowDays: 1 + r.Intn(30), EnergyMode: EnergyThreshold, Rollover: entry.RolloverStrict}
	if r.Intn(2) == 0 {
		opts.EnergyMode = EnergyAverage
	}
	if r.Intn(2) == 0 {
		opts.Rollover = entry.RolloverInclusive
	}
	return opts
}
