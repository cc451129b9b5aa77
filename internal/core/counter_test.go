package core

import (
	"errors"
	"testing"
)

func TestParseCounter(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{" 9 ", 9, true},
		{"007", 7, true},
		{"", 0, false},
		{"abc", 0, false},
		{"3.5", 0, false},
		{"-1", 0, false},
	}
	for i, tc := range cases {
		got, err := ParseCounter(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("case %d got %d want %d", i, got, tc.want)
		}
	}
}

func TestParseCounterNegativeSentinel(t *testing.T) {
	_, err := ParseCounter("-7")
	if !errors.Is(err, ErrNegativeCounter) {
		t.Fatalf("expected ErrNegativeCounter, got %v", err)
	}
	_, err = ParseCounter("x")
	if !errors.Is(err, ErrInvalidCounter) {
		t.Fatalf("expected ErrInvalidCounter, got %v", err)
	}
}
