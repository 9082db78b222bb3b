package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
)

// entryRow is the column form of an entry shared by the SQL backends
type entryRow struct {
	Date       string
	BedTime    *string
	WakeTime   *string
	Mood       *int64
	Energy     *int64
	Activities string
	CapturedAt *string
	Note       string
}

func (r *entryRow) dest() []any {
	return []any{&r.Date, &r.BedTime, &r.WakeTime, &r.Mood, &r.Energy, &r.Activities, &r.CapturedAt, &r.Note}
}

func (r entryRow) args() []any {
	return []any{r.Date, r.BedTime, r.WakeTime, r.Mood, r.Energy, r.Activities, r.CapturedAt, r.Note}
}

func toRow(e entry.Entry) entryRow {
	r := entryRow{
		Date:       e.Date,
		Activities: strings.Join(entry.NormalizeActivities(e.Activities), ","),
		Note:       e.Note,
	}
	if e.BedTime != nil {
		s := e.BedTime.String()
		r.BedTime = &s
	}
	if e.WakeTime != nil {
		s := e.WakeTime.String()
		r.WakeTime = &s
	}
	if e.Mood != nil {
		v := int64(*e.Mood)
		r.Mood = &v
	}
	if e.Energy != nil {
		v := int64(*e.Energy)
		r.Energy = &v
	}
	if e.Timestamp != nil {
		s := e.Timestamp.Format(time.RFC3339Nano)
		r.CapturedAt = &s
	}
	return r
}

func (r entryRow) toEntry() (entry.Entry, error) {
	e := entry.Entry{Date: r.Date, Note: r.Note}
	if r.BedTime != nil {
		c, err := entry.ParseClock(*r.BedTime)
		if err != nil {
			return e, fmt.Errorf("entry %s: bed_time: %w", r.Date, err)
		}
		e.BedTime = &c
	}
	if r.WakeTime != nil {
		c, err := entry.ParseClock(*r.WakeTime)
		if err != nil {
			return e, fmt.Errorf("entry %s: wake_time: %w", r.Date, err)
		}
		e.WakeTime = &c
	}
	if r.Mood != nil {
		e.Mood = entry.IntPtr(int(*r.Mood))
	}
	if r.Energy != nil {
		e.Energy = entry.IntPtr(int(*r.Energy))
	}
	if r.Activities != "" {
		e.Activities = entry.NormalizeActivities(strings.Split(r.Activities, ","))
	}
	if r.CapturedAt != nil {
		ts, err := time.Parse(time.RFC3339Nano, *r.CapturedAt)
		if err != nil {
			return e, fmt.Errorf("entry %s: captured_at: %w", r.Date, err)
		}
		e.Timestamp = &ts
	}
	return e, nil
}

// goalsRow is the column form of the goal set
type goalsRow struct {
	SleepHours        float64
	MinEnergy         int64
	ExerciseFrequency int64
	MoodTarget        int64
	UpdatedAt         *string
}

func (r *goalsRow) dest() []any {
	return []any{&r.SleepHours, &r.MinEnergy, &r.ExerciseFrequency, &r.MoodTarget, &r.UpdatedAt}
}

func (r goalsRow) args() []any {
	return []any{r.SleepHours, r.MinEnergy, r.ExerciseFrequency, r.MoodTarget, r.UpdatedAt}
}

func toGoalsRow(g goal.Goals) goalsRow {
	r := goalsRow{
		SleepHours:        g.SleepHours,
		MinEnergy:         int64(g.MinEnergy),
		ExerciseFrequency: int64(g.ExerciseFrequency),
		MoodTarget:        int64(g.MoodTarget),
	}
	if g.UpdatedAt != nil {
		s := g.UpdatedAt.Format(time.RFC3339Nano)
		r.UpdatedAt = &s
	}
	return r
}

func (r goalsRow) toGoals() goal.Goals {
	g := goal.Goals{
		SleepHours:        r.SleepHours,
		MinEnergy:         int(r.MinEnergy),
		ExerciseFrequency: int(r.ExerciseFrequency),
		MoodTarget:        int(r.MoodTarget),
	}
	if r.UpdatedAt != nil {
		if ts, err := time.Parse(time.RFC3339Nano, *r.UpdatedAt); err == nil {
			g.UpdatedAt = &ts
		}
	}
	return g.WithDefaults()
}
