package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Foreground = lipgloss.Color("#EEFFFF")

	RoundedBorder = lipgloss.RoundedBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Cursor row
	CursorStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Rows picked for the chart
	CheckedStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusOK = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	BarStyle = lipgloss.NewStyle().
			Foreground(Info)

	BarEmptyStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#37474F")).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)
)

// SwatchStyle renders a block in a series color given as "#rrggbb".
func SwatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
