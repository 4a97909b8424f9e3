package models

import "fmt"

// Theme is the user's colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// DefaultTheme applies when no valid preference is stored.
	DefaultTheme = ThemeDark
)

// ParseTheme converts a stored or externally supplied value into a Theme.
func ParseTheme(value string) (Theme, error) {
	switch Theme(value) {
	case ThemeLight, ThemeDark:
		return Theme(value), nil
	}
	return "", fmt.Errorf("unknown theme %q", value)
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
