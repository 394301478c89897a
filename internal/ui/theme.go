package ui

import "github.com/charmbracelet/lipgloss"

// Checkbox glyphs shared by the todo card and the completed table.
const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// Theme defines the colors and pre-built styles for one palette.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	TextDim lipgloss.Color
	Border  lipgloss.Color

	TitleStyle    lipgloss.Style
	CardStyle     lipgloss.Style
	ValueStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	DoneStyle     lipgloss.Style
	SuccessStyle  lipgloss.Style
	PendingStyle  lipgloss.Style
	MutedStyle    lipgloss.Style
	ErrorStyle    lipgloss.Style
	BannerStyle   lipgloss.Style
	TableHeader   lipgloss.Style
	HelpStyle     lipgloss.Style
	FooterStyle   lipgloss.Style
}

// LightTheme is the default palette.
func LightTheme() Theme {
	t := Theme{
		Primary: lipgloss.Color("#5A31D6"),
		Accent:  lipgloss.Color("#0E7490"),
		Success: lipgloss.Color("#047857"),
		Danger:  lipgloss.Color("#B91C1C"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Text:    lipgloss.Color("#1F2937"),
		TextDim: lipgloss.Color("#6B7280"),
		Border:  lipgloss.Color("#D1D5DB"),
	}
	return t.build()
}

// DarkTheme is the alternate palette selected by the dark-mode flag.
func DarkTheme() Theme {
	t := Theme{
		Primary: lipgloss.Color("#A78BFA"),
		Accent:  lipgloss.Color("#22D3EE"),
		Success: lipgloss.Color("#34D399"),
		Danger:  lipgloss.Color("#F87171"),
		Muted:   lipgloss.Color("#6B7280"),
		Text:    lipgloss.Color("#E5E7EB"),
		TextDim: lipgloss.Color("#9CA3AF"),
		Border:  lipgloss.Color("#374151"),
	}
	return t.build()
}

// ThemeFor selects the palette for the dark-mode flag.
func ThemeFor(darkMode bool) Theme {
	if darkMode {
		return DarkTheme()
	}
	return LightTheme()
}

func (t Theme) build() Theme {
	t.TitleStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.ValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.SelectedStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.DoneStyle = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Strikethrough(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.PendingStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.MutedStyle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Danger).
		Bold(true)

	t.BannerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.TableHeader = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Bold(true)

	t.HelpStyle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.FooterStyle = lipgloss.NewStyle().
		Foreground(t.TextDim)

	return t
}
