package viz

import "github.com/charmbracelet/lipgloss"

// ColorScheme holds the chrome colors drawn around the bar. The bar itself
// always shows the temperature gradient.
type ColorScheme struct {
	Primary    lipgloss.Color // title
	Secondary  lipgloss.Color // picker factor bars
	Accent     lipgloss.Color // pointer backdrop while dragging
	Background lipgloss.Color // pointer backdrop at rest
	Text       lipgloss.Color // labels
	Highlight  lipgloss.Color // readouts and the pointer marker
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultColorScheme returns the scheme used when none is configured.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Primary:    lipgloss.Color("#ffc18d"),
		Secondary:  lipgloss.Color("#87afff"),
		Accent:     lipgloss.Color("#ff8700"),
		Background: lipgloss.Color("#505050"),
		Text:       lipgloss.Color("#ffffff"),
		Highlight:  lipgloss.Color("#ffff00"),
		Warning:    lipgloss.Color("#ffa500"),
		Error:      lipgloss.Color("#ff5f5f"),
	}
}

// ColorSchemes are the themes selectable with the theme config option.
var ColorSchemes = map[string]ColorScheme{
	"default": DefaultColorScheme(),
	"monokai": {
		Primary:    lipgloss.Color("#a6e22e"),
		Secondary:  lipgloss.Color("#66d9ef"),
		Accent:     lipgloss.Color("#f92672"),
		Background: lipgloss.Color("#49483e"),
		Text:       lipgloss.Color("#f8f8f2"),
		Highlight:  lipgloss.Color("#e6db74"),
		Warning:    lipgloss.Color("#fd971f"),
		Error:      lipgloss.Color("#f92672"),
	},
	"solarized": {
		Primary:    lipgloss.Color("#b58900"),
		Secondary:  lipgloss.Color("#268bd2"),
		Accent:     lipgloss.Color("#d33682"),
		Background: lipgloss.Color("#073642"),
		Text:       lipgloss.Color("#839496"),
		Highlight:  lipgloss.Color("#2aa198"),
		Warning:    lipgloss.Color("#cb4b16"),
		Error:      lipgloss.Color("#dc322f"),
	},
	"nord": {
		Primary:    lipgloss.Color("#88c0d0"),
		Secondary:  lipgloss.Color("#81a1c1"),
		Accent:     lipgloss.Color("#b48ead"),
		Background: lipgloss.Color("#3b4252"),
		Text:       lipgloss.Color("#d8dee9"),
		Highlight:  lipgloss.Color("#ebcb8b"),
		Warning:    lipgloss.Color("#d08770"),
		Error:      lipgloss.Color("#bf616a"),
	},
}

// Scheme looks up a scheme by name, falling back to the default.
func Scheme(name string) ColorScheme {
	if s, ok := ColorSchemes[name]; ok {
		return s
	}
	return DefaultColorScheme()
}
