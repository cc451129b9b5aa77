// Package views derives the filtered and aggregated projection shown
// to the user. A view is a pure function of the record collection and
// the options: recomputed fresh on every call, never persisted, and
// without side effects on the store.
package views

import (
	"sort"
	"strings"

	"alzes/internal/core"
)

// Mode selects the grain of the view.
type Mode string

const (
	Daily   Mode = "daily"
	Monthly Mode = "monthly"
)

// IsValid returns true if the mode is one of the supported grains.
func (m Mode) IsValid() bool {
	switch m {
	case Daily, Monthly:
		return true
	default:
		return false
	}
}

// Options narrow and shape the view. Start and End are raw DD-MM-YYYY
// texts forming an inclusive range; a non-empty bound that does not
// parse excludes every record (fail closed, not fail open). Query is a
// plain substring matched against the raw date text after trimming.
type Options struct {
	Start string
	End   string
	Query string
	Mode  Mode
}

// MonthSummary is one aggregated row of a monthly view: the counters
// of every record sharing a calendar month, summed. Notes do not
// aggregate.
type MonthSummary struct {
	Month string
	BR    int
	NA    int
}

// Total is the derived sum of both aggregated counters.
func (m MonthSummary) Total() int {
	return m.BR + m.NA
}

// View is the derived projection. Days carries the daily rows and
// Months the monthly summaries; only the slice matching Mode is
// populated.
type View struct {
	Mode   Mode
	Days   []core.Record
	Months []MonthSummary
}

// Len returns the number of rows in the populated slice.
func (v View) Len() int {
	if v.Mode == Monthly {
		return len(v.Months)
	}
	return len(v.Days)
}

// Build computes the view for the given records and options. An empty
// mode means daily.
func Build(records []core.Record, opts Options) View {
	mode := opts.Mode
	if mode == "" {
		mode = Daily
	}

	selected := filter(records, opts)

	if mode == Monthly {
		return View{Mode: mode, Months: aggregate(selected)}
	}
	core.SortRecordsDesc(selected)
	return View{Mode: mode, Days: selected}
}

func filter(records []core.Record, opts Options) []core.Record {
	out := make([]core.Record, 0, len(records))

	var start, end core.Date
	hasStart := opts.Start != ""
	hasEnd := opts.End != ""
	if hasStart {
		d, err := core.ParseDate(opts.Start)
		if err != nil {
			return out
		}
		start = d
	}
	if hasEnd {
		d, err := core.ParseDate(opts.End)
		if err != nil {
			return out
		}
		end = d
	}

	query := strings.TrimSpace(opts.Query)

	for _, r := range records {
		if hasStart && r.Date.Before(start) {
			continue
		}
		if hasEnd && r.Date.After(end) {
			continue
		}
		if query != "" && !strings.Contains(r.Date.String(), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func aggregate(records []core.Record) []MonthSummary {
	sums := map[string]*MonthSummary{}
	for _, r := range records {
		key := r.Date.MonthKey()
		row, ok := sums[key]
		if !ok {
			row = &MonthSummary{Month: key}
			sums[key] = row
		}
		row.BR += r.BR
		row.NA += r.NA
	}

	out := make([]MonthSummary, 0, len(sums))
	for _, row := range sums {
		out = append(out, *row)
	}
	// zero-padded keys make string order chronological
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month > out[j].Month
	})
	return out
}
