package models

// Theme is the dashboard colour scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme. Anything but dark becomes dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Settings are the global dashboard preferences
type Settings struct {
	Theme              Theme `json:"theme"`
	SaveHistory        bool  `json:"saveHistory"`
	AutomationsEnabled bool  `json:"automationsEnabled"`
}

// DefaultSettings returns the settings used when none are stored
func DefaultSettings() Settings {
	return Settings{
		Theme:              ThemeLight,
		SaveHistory:        false,
		AutomationsEnabled: true,
	}
}
