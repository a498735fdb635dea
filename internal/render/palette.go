package render

import "github.com/charmbracelet/lipgloss"

// Palette is the color scheme of the terminal screen.
type Palette struct {
	Name        string
	Description string

	Border lipgloss.Color

	// Bubble accents
	User   lipgloss.Color
	System lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// DefaultPalette is used when the configured name is unknown.
const DefaultPalette = "tokyonight"

var palettes = []Palette{
	{
		Name:        "tokyonight",
		Description: "Tokyo Night, blue accents",
		Border:      lipgloss.Color("#414868"),
		User:        lipgloss.Color("#9ece6a"),
		System:      lipgloss.Color("#7aa2f7"),
		Accent:      lipgloss.Color("#bb9af7"),
		Error:       lipgloss.Color("#f7768e"),
		Text:        lipgloss.Color("#c0caf5"),
		TextDim:     lipgloss.Color("#565f89"),
		TextMute:    lipgloss.Color("#3b4261"),
	},
	{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha, pastel",
		Border:      lipgloss.Color("#45475a"),
		User:        lipgloss.Color("#a6e3a1"),
		System:      lipgloss.Color("#89b4fa"),
		Accent:      lipgloss.Color("#cba6f7"),
		Error:       lipgloss.Color("#f38ba8"),
		Text:        lipgloss.Color("#cdd6f4"),
		TextDim:     lipgloss.Color("#6c7086"),
		TextMute:    lipgloss.Color("#45475a"),
	},
	{
		Name:        "light",
		Description: "For bright terminals",
		Border:      lipgloss.Color("#d0d7de"),
		User:        lipgloss.Color("#1a7f37"),
		System:      lipgloss.Color("#0969da"),
		Accent:      lipgloss.Color("#8250df"),
		Error:       lipgloss.Color("#cf222e"),
		Text:        lipgloss.Color("#1f2328"),
		TextDim:     lipgloss.Color("#57606a"),
		TextMute:    lipgloss.Color("#8c959f"),
	},
}

// PaletteByName looks up a palette. The second result is false for unknown names.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// PaletteOrDefault returns the named palette, or the default one.
func PaletteOrDefault(name string) Palette {
	if p, ok := PaletteByName(name); ok {
		return p
	}
	p, _ := PaletteByName(DefaultPalette)
	return p
}

// PaletteNames lists the available palettes.
func PaletteNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}
