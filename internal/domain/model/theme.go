package model

// Theme is the display theme applied to the document root.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts exactly "light" or "dark". Anything else, including
// differently cased variants, is reported as not ok.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	default:
		return "", false
	}
}

// Toggle returns the opposite theme. The zero value toggles to dark, the
// same as light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Label is the human-readable name of the theme, shown on the toggle control.
func (t Theme) Label() string {
	if t == ThemeDark {
		return "Tema escuro"
	}
	return "Tema claro"
}

// BodyClass is the presentational class carried by the document body while
// this theme is applied.
func (t Theme) BodyClass() string {
	return "theme-" + string(t)
}
