package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gapcharts/pkg/app/components"
	"github.com/kerbaras/gapcharts/pkg/app/styles"
	"github.com/kerbaras/gapcharts/pkg/charts"
	"github.com/kerbaras/gapcharts/pkg/data"
)

type PickerScreen struct {
	builder ChartBuilder
	table   *data.Table
	rows    *components.RowList
	filter  textinput.Model
	kind    charts.Kind
	width   int
	height  int
	err     error
}

func NewPickerScreen(builder ChartBuilder, table *data.Table) *PickerScreen {
	ti := textinput.New()
	ti.Placeholder = "Filter rows..."
	ti.CharLimit = 64
	ti.Width = 40

	rows := components.NewRowList()
	rows.SetItems(components.ItemsFromTable(table))

	return &PickerScreen{
		builder: builder,
		table:   table,
		rows:    rows,
		filter:  ti,
		kind:    charts.KindScatter,
	}
}

func (s *PickerScreen) Init() tea.Cmd {
	return nil
}

// Filtering reports whether the filter input has focus.
func (s *PickerScreen) Filtering() bool {
	return s.filter.Focused()
}

func (s *PickerScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.rows.Width = msg.Width - 4
		s.rows.Height = msg.Height - 14

	case tea.KeyMsg:
		if s.filter.Focused() {
			switch msg.String() {
			case "esc", "enter":
				s.filter.Blur()
				return s, nil
			}
			s.filter, cmd = s.filter.Update(msg)
			s.rows.SetFilter(s.filter.Value())
			return s, cmd
		}

		switch msg.String() {
		case "up", "k":
			s.rows.Prev()
		case "down", "j":
			s.rows.Next()
		case " ", "x":
			s.rows.Toggle()
		case "c":
			s.rows.ClearChecked()
		case "b":
			if s.kind == charts.KindBar {
				s.kind = charts.KindScatter
			} else {
				s.kind = charts.KindBar
			}
		case "/":
			s.filter.Focus()
			return s, textinput.Blink
		case "enter":
			return s, s.buildFigure()
		}

	case figureBuiltMsg:
		s.err = msg.err
		if msg.err == nil {
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "preview", Data: msg.fig}
			}
		}
	}

	return s, nil
}

// Spec describes the chart for the currently checked rows.
func (s *PickerScreen) Spec() charts.Spec {
	names := s.rows.Checked()
	reqs := make([]charts.Request, len(names))
	for i, name := range names {
		reqs[i] = charts.Request{Name: name}
	}
	return charts.Spec{
		Kind:   s.kind,
		Title:  "GDP per-capita",
		XTitle: "Year",
		YTitle: "GDP per-capita",
		Series: reqs,
	}
}

func (s *PickerScreen) View() string {
	header := styles.TitleStyle.Render(fmt.Sprintf("📈 %s (%d rows)", s.table.IndexName, s.table.Len()))

	inputStyle := styles.InputStyle
	if s.filter.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.filter.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	checked := s.rows.Checked()
	summary := styles.SubtitleStyle.Render(fmt.Sprintf("%s chart • %d selected", s.kind, len(checked)))
	if len(checked) > 0 {
		summary += styles.MutedStyle.Render(": " + strings.Join(checked, ", "))
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: move • space: select • /: filter • b: bar/scatter • c: clear • enter: build chart • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, inputView, errorMsg, s.rows.View(), summary, help)
}

type figureBuiltMsg struct {
	fig *charts.Figure
	err error
}

func (s *PickerScreen) buildFigure() tea.Cmd {
	spec := s.Spec()
	return func() tea.Msg {
		if len(spec.Series) == 0 {
			return figureBuiltMsg{err: fmt.Errorf("select at least one row")}
		}
		fig, err := s.builder.BuildFromTable(s.table, spec)
		return figureBuiltMsg{fig: fig, err: err}
	}
}
