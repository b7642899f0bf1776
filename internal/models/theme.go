package models

// Theme identifies a visual theme.
type Theme string

const (
	ThemeCalmForest  Theme = "calm-forest"
	ThemeFloralBliss Theme = "floral-bliss"
	ThemeSunriseGlow Theme = "sunrise-glow"
)

// Themes lists the selectable themes.
var Themes = []Theme{ThemeCalmForest, ThemeFloralBliss, ThemeSunriseGlow}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if string(t) == name {
			return true
		}
	}
	return false
}
