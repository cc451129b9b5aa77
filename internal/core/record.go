// Package core defines the alzes record model: a calendar-date-keyed
// entry carrying the two daily counters and optional notes, plus the
// date and counter parsing used at every input boundary.
package core

import (
	"errors"
	"sort"
)

type Record struct {
	Date  Date   `json:"date"`
	BR    int    `json:"br"`
	NA    int    `json:"na"`
	Notes string `json:"notes"`
}

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidCounter  = errors.New("invalid counter")
	ErrNegativeCounter = errors.New("negative counter")
	ErrInvalidTheme    = errors.New("invalid theme")
)

// NewRecord builds a Record from raw field values, rejecting bad dates
// and negative counters. This is the entry-form boundary: values are
// validated here, never coerced.
func NewRecord(dateText string, br, na int, notes string) (Record, error) {
	d, err := ParseDate(dateText)
	if err != nil {
		return Record{}, err
	}
	if br < 0 || na < 0 {
		return Record{}, ErrNegativeCounter
	}
	return Record{Date: d, BR: br, NA: na, Notes: notes}, nil
}

func (r Record) Validate() error {
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if r.BR < 0 || r.NA < 0 {
		return ErrNegativeCounter
	}
	return nil
}

// Total is the derived sum of both counters.
func (r Record) Total() int {
	return r.BR + r.NA
}

// SortRecordsDesc orders records in place, most recent date first. This
// is the canonical store ordering after every mutation.
func SortRecordsDesc(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}
