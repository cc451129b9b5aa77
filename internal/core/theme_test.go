package core

import (
	"errors"
	"testing"
)

func TestParseTheme(t *testing.T) {
	cases := []struct {
		input string
		want  Theme
		ok    bool
	}{
		{"light", ThemeLight, true},
		{"dark", ThemeDark, true},
		{"blue", "", false},
		{"Dark", "", false},
		{"", "", false},
	}
	for i, tt := range cases {
		got, err := ParseTheme(tt.input)
		if tt.ok && (err != nil || got != tt.want) {
			t.Fatalf("case %d expected %q, got %q err %v", i, tt.want, got, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidTheme) {
			t.Fatalf("case %d expected ErrInvalidTheme, got %v", i, err)
		}
	}
}

func TestDefaultThemeIsValid(t *testing.T) {
	if !DefaultTheme.IsValid() {
		t.Fatalf("default theme %q must be valid", DefaultTheme)
	}
}
