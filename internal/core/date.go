package core

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the canonical textual form of a calendar date: two-digit
// day, two-digit month, four-digit year, dash separated.
const DateLayout = "02-01-2006"

// Date is a calendar date at UTC midnight. The zero value is unset and
// fails Validate; usable values come from NewDate, ParseDate or JSON
// decoding. The set flag, not the instant, marks presence, so the
// earliest parseable day 01-01-0001 is as usable a key as any other.
type Date struct {
	time.Time
	set bool
}

// NewDate creates a Date from year, month, day without validation.
// Out-of-range components roll over the way time.Date does; use ParseDate
// when the input needs calendar checking.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), set: true}
}

// ParseDate parses the exact DD-MM-YYYY form. Each segment must have its
// full width and be all digits, and the components must name a real
// calendar day: "31-02-2024" is rejected instead of rolling into March,
// "29-02-2024" is accepted, "29-02-2023" is not.
func ParseDate(text string) (Date, error) {
	if len(text) != 10 || text[2] != '-' || text[5] != '-' {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	day, err := parseSegment(text[0:2])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	month, err := parseSegment(text[3:5])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	year, err := parseSegment(text[6:10])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	d := NewDate(year, month, day)
	if d.Time.Day() != day || int(d.Time.Month()) != month || d.Time.Year() != year {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return d, nil
}

func parseSegment(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// String returns the canonical zero-padded DD-MM-YYYY text.
// ParseDate(d.String()) round-trips for any valid d.
func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

// MonthKey returns the zero-padded YYYY-MM grouping key. Lexicographic
// order of month keys equals chronological order.
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Time.Year(), int(d.Time.Month()))
}

// MonthKey derives the YYYY-MM key from raw date text.
func MonthKey(text string) (string, error) {
	d, err := ParseDate(text)
	if err != nil {
		return "", err
	}
	return d.MonthKey(), nil
}

// MarshalJSON encodes the date as its canonical text.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a canonical DD-MM-YYYY string, rejecting
// anything ParseDate would reject.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Validate reports whether the date is usable as a record key; only
// the unset zero value is rejected.
func (d Date) Validate() error {
	if !d.set {
		return ErrInvalidDate
	}
	return nil
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Equal reports whether both dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}
