package services

// Theme is the site colour scheme stored in the visitor's preference cookie.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultThemeCookie names the cookie holding the theme preference.
const DefaultThemeCookie = "ilc-theme"

// ParseTheme reads a stored preference. Only "dark" selects the dark theme.
func ParseTheme(s string) Theme {
	if s == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// BodyClass is the class added to <body>, empty for the light theme.
func (t Theme) BodyClass() string {
	if t == ThemeDark {
		return "theme-dark"
	}
	return ""
}

// Icon is the glyph shown on the theme toggle.
func (t Theme) Icon() string {
	if t == ThemeDark {
		return "🌙"
	}
	return "☀"
}

// Label is the text shown on the theme toggle.
func (t Theme) Label() string {
	if t == ThemeDark {
		return "Dark"
	}
	return "Light"
}
