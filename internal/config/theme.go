package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ColorScheme defines the colors used by the terminal board and task cards
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (titles, borders, field labels)
	Accent string `yaml:"accent"`

	// One border color per board column
	TodoBorder       string `yaml:"todo_border"`
	InProgressBorder string `yaml:"in_progress_border"`
	DoneBorder       string `yaml:"done_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:           "default",
		Accent:           "#874BFD",
		TodoBorder:       "#5F87D7",
		InProgressBorder: "#FFD700",
		DoneBorder:       "#5FD75F",
		Title:            "#D75FD7",
		Subtle:           "#585858",
		Normal:           "#D0D0D0",
		InfoFg:           "#00AFFF",
		InfoBg:           "#00005F",
		ErrorFg:          "#FF0000",
		ErrorBg:          "#5F0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:           "monochrome",
		Accent:           "#FFFFFF",
		TodoBorder:       "#BCBCBC",
		InProgressBorder: "#BCBCBC",
		DoneBorder:       "#BCBCBC",
		Title:            "#FFFFFF",
		Subtle:           "#808080",
		Normal:           "#D0D0D0",
		InfoFg:           "#FFFFFF",
		InfoBg:           "#303030",
		ErrorFg:          "#FFFFFF",
		ErrorBg:          "#000000",
	}
}

// getPreset returns a preset color scheme by name
func getPreset(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := getPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.TodoBorder, preset.TodoBorder)
	fill(&c.InProgressBorder, preset.InProgressBorder)
	fill(&c.DoneBorder, preset.DoneBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom copies every non-empty field of other into c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.TodoBorder, other.TodoBorder)
	merge(&c.InProgressBorder, other.InProgressBorder)
	merge(&c.DoneBorder, other.DoneBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}

// loadThemeFile loads and merges theme from KANBANX_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}
