package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Caught   lipgloss.Color
	Missing  lipgloss.Color
	BarFill  lipgloss.Color
	BarEmpty lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:     lipgloss.Color("#cdd6f4"),
		Muted:    lipgloss.Color("#a6adc8"),
		Accent:   lipgloss.Color("#cba6f7"),
		Border:   lipgloss.Color("#585b70"),
		Caught:   lipgloss.Color("#94e2d5"),
		Missing:  lipgloss.Color("#f38ba8"),
		BarFill:  lipgloss.Color("#94e2d5"),
		BarEmpty: lipgloss.Color("#313244"),
	},
	"dracula": {
		Text:     lipgloss.Color("#f8f8f2"),
		Muted:    lipgloss.Color("#6272a4"),
		Accent:   lipgloss.Color("#ff79c6"),
		Border:   lipgloss.Color("#44475a"),
		Caught:   lipgloss.Color("#50fa7b"),
		Missing:  lipgloss.Color("#ff5555"),
		BarFill:  lipgloss.Color("#50fa7b"),
		BarEmpty: lipgloss.Color("#343746"),
	},
	"gruvbox": {
		Text:     lipgloss.Color("#ebdbb2"),
		Muted:    lipgloss.Color("#a89984"),
		Accent:   lipgloss.Color("#fabd2f"),
		Border:   lipgloss.Color("#665c54"),
		Caught:   lipgloss.Color("#b8bb26"),
		Missing:  lipgloss.Color("#fb4934"),
		BarFill:  lipgloss.Color("#b8bb26"),
		BarEmpty: lipgloss.Color("#3c3836"),
	},
	"solarized_dark": {
		Text:     lipgloss.Color("#fdf6e3"),
		Muted:    lipgloss.Color("#93a1a1"),
		Accent:   lipgloss.Color("#b58900"),
		Border:   lipgloss.Color("#586e75"),
		Caught:   lipgloss.Color("#859900"),
		Missing:  lipgloss.Color("#cb4b16"),
		BarFill:  lipgloss.Color("#859900"),
		BarEmpty: lipgloss.Color("#073642"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["catppuccin"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}

// typeColors follows the usual dex color conventions; unmapped types render
// with the accent color.
var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#a8a77a"),
	"fire":     lipgloss.Color("#ee8130"),
	"water":    lipgloss.Color("#6390f0"),
	"electric": lipgloss.Color("#f7d02c"),
	"grass":    lipgloss.Color("#7ac74c"),
	"ice":      lipgloss.Color("#96d9d6"),
	"fighting": lipgloss.Color("#c22e28"),
	"poison":   lipgloss.Color("#a33ea1"),
	"ground":   lipgloss.Color("#e2bf65"),
	"flying":   lipgloss.Color("#a98ff3"),
	"psychic":  lipgloss.Color("#f95587"),
	"bug":      lipgloss.Color("#a6b91a"),
	"rock":     lipgloss.Color("#b6a136"),
	"ghost":    lipgloss.Color("#735797"),
	"dragon":   lipgloss.Color("#6f35fc"),
	"dark":     lipgloss.Color("#705746"),
	"steel":    lipgloss.Color("#b7b7ce"),
	"fairy":    lipgloss.Color("#d685ad"),
}

type styleSet struct {
	title   lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	caught  lipgloss.Style
	missing lipgloss.Style
	panel   lipgloss.Style
	cursor  lipgloss.Style
}

func makeStyles(p palette) styleSet {
	return styleSet{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		header:  lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		caught:  lipgloss.NewStyle().Foreground(p.Caught),
		missing: lipgloss.NewStyle().Foreground(p.Missing),
		panel:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Border).Padding(0, 1),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
	}
}

func typeBadge(name string, p palette) string {
	c, ok := typeColors[name]
	if !ok {
		c = p.Accent
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(name)
}
