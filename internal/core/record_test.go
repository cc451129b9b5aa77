package core

import (
	"testing"
)

func TestNewRecord(t *testing.T) {
	cases := []struct {
		date  string
		br    int
		na    int
		notes string
		ok    bool
	}{
		{"01-01-2024", 5, 2, "fine", true},
		{"29-02-2024", 0, 0, "", true},
		{"31-02-2024", 1, 1, "", false}, // impossible date
		{"not-a-date", 1, 1, "", false},
		{"01-01-2024", -1, 1, "", false},
		{"01-01-2024", 1, -3, "", false},
	}
	for i, tc := range cases {
		r, err := NewRecord(tc.date, tc.br, tc.na, tc.notes)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if tc.ok && r.Date.String() != tc.date {
			t.Fatalf("case %d got date %q want %q", i, r.Date.String(), tc.date)
		}
	}
}

func TestRecordValidate(t *testing.T) {
	good := Record{Date: NewDate(2024, 1, 1), BR: 3, NA: 0, Notes: "x"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bads := []Record{
		{BR: 1, NA: 1},                         // zero date
		{Date: NewDate(2024, 1, 1), BR: -1},    // negative counter
		{Date: NewDate(2024, 1, 1), NA: -5},    // negative counter
	}
	for i, r := range bads {
		if err := r.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestRecordTotal(t *testing.T) {
	r := Record{Date: NewDate(2024, 1, 1), BR: 7, NA: 4}
	if r.Total() != 11 {
		t.Fatalf("got %d want 11", r.Total())
	}
}

func TestSortRecordsDesc(t *testing.T) {
	records := []Record{
		{Date: NewDate(2024, 1, 5)},
		{Date: NewDate(2024, 3, 1)},
		{Date: NewDate(2023, 12, 31)},
		{Date: NewDate(2024, 1, 20)},
	}
	SortRecordsDesc(records)
	want := []string{"01-03-2024", "20-01-2024", "05-01-2024", "31-12-2023"}
	for i, w := range want {
		if got := records[i].Date.String(); got != w {
			t.Fatalf("position %d got %q want %q", i, got, w)
		}
	}
}
