// Package exchange moves records in and out of the tool: the CSV codec
// matching the historical spreadsheet layout, plus file import/export
// services built on top of it.
package exchange

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"alzes/internal/core"
	"alzes/internal/views"
)

// CSVHeader is the exact first line of every export. Import matches the
// columns case-insensitively and accepts them in any order.
const CSVHeader = "data,alzes_BR,alzes_NA,total,notas"

// Import column names, lowercase. The total column is derived on export
// and ignored on import.
const (
	colDate  = "data"
	colBR    = "alzes_br"
	colNA    = "alzes_na"
	colNotes = "notas"
)

var (
	// ErrNoUsableRows reports a document whose data rows were all rejected.
	ErrNoUsableRows = errors.New("no usable rows")

	// ErrMissingColumn reports a header without one of the required columns.
	ErrMissingColumn = errors.New("missing required column")
)

// Line is one CSV data row before encoding.
type Line struct {
	Date  string
	BR    int
	NA    int
	Notes string
}

// LinesFromRecords builds export rows from daily records, keeping the
// caller's order.
func LinesFromRecords(records []core.Record) []Line {
	lines := make([]Line, 0, len(records))
	for _, r := range records {
		lines = append(lines, Line{
			Date:  r.Date.String(),
			BR:    r.BR,
			NA:    r.NA,
			Notes: r.Notes,
		})
	}
	return lines
}

// LinesFromMonths builds export rows from month summaries. The month key
// takes the date column and the notes column stays empty.
func LinesFromMonths(months []views.MonthSummary) []Line {
	lines := make([]Line, 0, len(months))
	for _, m := range months {
		lines = append(lines, Line{
			Date: m.Month,
			BR:   m.BR,
			NA:   m.NA,
		})
	}
	return lines
}

// notesEscaper keeps a note inside its row: commas become semicolons
// and line breaks become spaces.
var notesEscaper = strings.NewReplacer(",", ";", "\r\n", " ", "\r", " ", "\n", " ")

// ExportCSV renders lines under the fixed header, rows joined by a
// single newline with no trailing newline. Commas inside notes become
// semicolons and line breaks become spaces so the naive row format
// stays parseable; both substitutions are lossy and are not undone on
// import.
func ExportCSV(lines []Line) string {
	rows := make([]string, 0, len(lines)+1)
	rows = append(rows, CSVHeader)
	for _, l := range lines {
		rows = append(rows, fmt.Sprintf("%s,%d,%d,%d,%s", l.Date, l.BR, l.NA, l.BR+l.NA, notesEscaper.Replace(l.Notes)))
	}
	return strings.Join(rows, "\n")
}

// Import is the outcome of parsing one CSV document: the accepted
// records in row order plus how many data rows were rejected.
type Import struct {
	Records []core.Record
	Skipped int
}

// ParseCSV decodes a CSV document in the export layout. The first
// non-empty line must carry the required columns; data rows are naive
// comma splits, so quoted fields are not supported. A row is accepted
// only when its date parses and both counters are non-negative
// integers; everything else is skipped and counted. A document that
// yields no accepted rows at all is an error rather than an empty
// success.
func ParseCSV(text string) (Import, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Import{}, fmt.Errorf("%w: empty document", ErrNoUsableRows)
	}

	header := strings.Split(lines[0], ",")
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colDate, colBR, colNA} {
		if _, ok := cols[required]; !ok {
			return Import{}, missingColumnError(required, header)
		}
	}
	notesIdx, hasNotes := cols[colNotes]

	out := Import{}
	for _, raw := range lines[1:] {
		cells := strings.Split(raw, ",")

		br, err := core.ParseCounter(cell(cells, cols[colBR]))
		if err != nil {
			out.Skipped++
			continue
		}
		na, err := core.ParseCounter(cell(cells, cols[colNA]))
		if err != nil {
			out.Skipped++
			continue
		}
		notes := ""
		if hasNotes {
			notes = cell(cells, notesIdx)
		}

		rec, err := core.NewRecord(strings.TrimSpace(cell(cells, cols[colDate])), br, na, notes)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Records = append(out.Records, rec)
	}

	if len(out.Records) == 0 {
		return Import{}, fmt.Errorf("%w: every data row was rejected (%d skipped)", ErrNoUsableRows, out.Skipped)
	}
	return out, nil
}

// splitLines breaks the document into non-empty lines, tolerating CRLF
// endings.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// cell returns the column at idx or an empty string when the row is too
// short.
func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func missingColumnError(want string, header []string) error {
	if near := nearestHeader(want, header); near != "" {
		return fmt.Errorf("%w %q: nearest header is %q", ErrMissingColumn, want, near)
	}
	return fmt.Errorf("%w %q", ErrMissingColumn, want)
}

// nearestHeader suggests a close-but-wrong header for error messages.
// Headers that already name a known column are not typo candidates, and
// anything more than three edits away is not a plausible typo.
func nearestHeader(want string, header []string) string {
	known := map[string]bool{colDate: true, colBR: true, colNA: true, colNotes: true, "total": true}
	best := ""
	bestDist := 4
	for _, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" || known[h] {
			continue
		}
		if d := levenshtein.ComputeDistance(h, want); d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}
