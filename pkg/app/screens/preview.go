package screens

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/gapcharts/pkg/app/components"
	"github.com/kerbaras/gapcharts/pkg/app/styles"
	"github.com/kerbaras/gapcharts/pkg/charts"
)

type PreviewScreen struct {
	builder ChartBuilder
	output  string
	fig     *charts.Figure
	status  string
	err     error
	width   int
	height  int
}

func NewPreviewScreen(builder ChartBuilder, output string) *PreviewScreen {
	return &PreviewScreen{
		builder: builder,
		output:  output,
	}
}

func (s *PreviewScreen) Init() tea.Cmd {
	return nil
}

// SetFigure replaces the previewed figure and clears the last status.
func (s *PreviewScreen) SetFigure(fig *charts.Figure) {
	s.fig = fig
	s.status = ""
	s.err = nil
}

func (s *PreviewScreen) Figure() *charts.Figure {
	return s.fig
}

func (s *PreviewScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "w", "enter":
			if s.fig == nil {
				return s, nil
			}
			return s, s.writeFigure()
		case "esc", "backspace":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "picker"}
			}
		}

	case renderedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.status = fmt.Sprintf("✅ Wrote %s", msg.path)
		} else {
			s.status = ""
		}
	}

	return s, nil
}

func (s *PreviewScreen) View() string {
	if s.fig == nil {
		return styles.MutedStyle.Render("No chart yet. Select rows and press enter.") +
			"\n" + styles.HelpStyle.Render("tab: switch view • q: quit")
	}

	var b strings.Builder
	title := s.fig.Layout.Title
	if title == "" {
		title = "Untitled chart"
	}
	b.WriteString(styles.TitleStyle.Render("📊 " + title))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%s chart • x: %s • y: %s",
		s.fig.Kind(), s.fig.Layout.XAxis.Title, s.fig.Layout.YAxis.Title)))
	b.WriteString("\n\n")
	b.WriteString(s.seriesTable())
	b.WriteString("\n\n")

	if s.err != nil {
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
		b.WriteString("\n")
	} else if s.status != "" {
		b.WriteString(styles.StatusOK.Render(s.status))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render(fmt.Sprintf("w/enter: write %s • esc: back • tab: switch view • q: quit", s.output)))
	return b.String()
}

func (s *PreviewScreen) seriesTable() string {
	var peak float64
	for _, ser := range s.fig.Series {
		if v, ok := lastFinite(ser.Y); ok && v > peak {
			peak = v
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("", "Series", "Mode", "Color", "Points", "Last", "")

	for _, ser := range s.fig.Series {
		hex := fmt.Sprintf("#%02x%02x%02x", ser.Color.R, ser.Color.G, ser.Color.B)
		last, ok := lastFinite(ser.Y)
		lastText := "-"
		if ok {
			lastText = fmt.Sprintf("%.2f", last)
		}
		mode := string(ser.Mode)
		if ser.Kind == charts.KindBar {
			mode = "-"
		}
		t.Row(
			styles.SwatchStyle(hex).Render("██"),
			ser.Name,
			mode,
			ser.Color.String(),
			fmt.Sprintf("%d", len(ser.Y)),
			lastText,
			components.ValueBar(last, peak, 20),
		)
	}

	return t.String()
}

func lastFinite(ys []float64) (float64, bool) {
	for i := len(ys) - 1; i >= 0; i-- {
		if !math.IsNaN(ys[i]) && !math.IsInf(ys[i], 0) {
			return ys[i], true
		}
	}
	return 0, false
}

type renderedMsg struct {
	path string
	err  error
}

func (s *PreviewScreen) writeFigure() tea.Cmd {
	fig := s.fig
	path := s.output
	return func() tea.Msg {
		err := s.builder.RenderFile(fig, path, "", true, "")
		return renderedMsg{path: path, err: err}
	}
}
