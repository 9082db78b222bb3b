package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xolan/lifetuner/internal/entry"
)

// Export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// CSVHeader is the header row of CSV exports
var CSVHeader = []string{"date", "bed_time", "wake_time", "sleep_duration", "mood", "energy", "activities"}

// Export writes log to w in the given format
func Export(w io.Writer, log entry.Log, format string, rule entry.RolloverRule) error {
	switch format {
	case "", FormatJSON:
		return ExportJSON(w, log)
	case FormatCSV:
		return ExportCSV(w, log, rule)
	default:
		return fmt.Errorf("unsupported export format %q: must be 'json' or 'csv'", format)
	}
}

// ExportJSON writes the log as an indented date-keyed JSON object
func ExportJSON(w io.Writer, log entry.Log) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

// ExportCSV writes one row per date in ascending order.
// Missing values are empty cells; sleep_duration is in hours with two decimals.
func ExportCSV(w io.Writer, log entry.Log, rule entry.RolloverRule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, date := range log.Dates() {
		e := log[date]
		row := []string{date, "", "", "", "", "", strings.Join(e.Activities, ";")}
		if e.BedTime != nil {
			row[1] = e.BedTime.String()
		}
		if e.WakeTime != nil {
			row[2] = e.WakeTime.String()
		}
		if d, ok := e.Sleep(rule); ok {
			row[3] = strconv.FormatFloat(d.Hours(), 'f', 2, 64)
		}
		if e.Mood != nil {
			row[4] = strconv.Itoa(*e.Mood)
		}
		if e.Energy != nil {
			row[5] = strconv.Itoa(*e.Energy)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ImportJSON reads a date-keyed JSON export.
// Keys win over any date inside the record; activities are normalized.
func ImportJSON(r io.Reader) (entry.Log, error) {
	var raw map[string]entry.Entry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid export file: %w", err)
	}

	log := make(entry.Log, len(raw))
	for date, e := range raw {
		e.Date = date
		if _, ok := e.Day(); !ok {
			return nil, fmt.Errorf("invalid export file: bad date key %q", date)
		}
		e.Activities = entry.NormalizeActivities(e.Activities)
		log.Put(e)
	}
	return log, nil
}
