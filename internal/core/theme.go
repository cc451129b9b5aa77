package core

// Theme is the persisted UI color scheme value.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeLight
)

func (t Theme) String() string {
	return string(t)
}

// IsValid returns true for the two supported theme values.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// ParseTheme validates raw theme input.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.IsValid() {
		return "", ErrInvalidTheme
	}
	return t, nil
}
