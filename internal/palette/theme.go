package palette

import (
	"fmt"
	"strings"
)

// ThemeMode selects the background the palette is displayed against.
type ThemeMode int

const (
	// ThemeDark shows swatches on a near-black background.
	ThemeDark ThemeMode = iota
	// ThemeLight shows swatches on a white background.
	ThemeLight
)

// String returns the string representation of a ThemeMode.
func (t ThemeMode) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t ThemeMode) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseThemeMode parses "dark" or "light" (case-insensitive).
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeDark, fmt.Errorf("invalid theme %q (must be dark or light)", s)
	}
}

// Toggle returns the opposite mode.
func (t ThemeMode) Toggle() ThemeMode {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Background is the hex colour swatches are scored against.
func (t ThemeMode) Background() string {
	if t == ThemeLight {
		return "#ffffff"
	}
	return "#121212"
}

// Text is the hex colour for labels drawn on the background.
func (t ThemeMode) Text() string {
	if t == ThemeLight {
		return "#111111"
	}
	return "#f1f1f1"
}
