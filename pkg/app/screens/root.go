package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gapcharts/pkg/app/styles"
	"github.com/kerbaras/gapcharts/pkg/charts"
	"github.com/kerbaras/gapcharts/pkg/data"
	"github.com/kerbaras/gapcharts/pkg/render"
)

// ChartBuilder is the part of the chart service the screens need.
type ChartBuilder interface {
	BuildFromTable(table *data.Table, spec charts.Spec) (*charts.Figure, error)
	RenderFile(fig *charts.Figure, path string, format render.Format, pretty bool, caption string) error
}

type screenType int

const (
	pickerView screenType = iota
	previewView
)

type RootScreen struct {
	currentView screenType
	picker      *PickerScreen
	preview     *PreviewScreen

	width  int
	height int
}

func NewRootScreen(builder ChartBuilder, table *data.Table, output string) *RootScreen {
	return &RootScreen{
		currentView: pickerView,
		picker:      NewPickerScreen(builder, table),
		preview:     NewPreviewScreen(builder, output),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.picker.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.preview.Update(msg)

	case tea.KeyMsg:
		// Typing into the filter must not quit or switch tabs
		if r.currentView == pickerView && r.picker.Filtering() && msg.String() != "ctrl+c" {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		case "tab":
			r.currentView = (r.currentView + 1) % 2
			return r, nil
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "picker":
			r.currentView = pickerView
		case "preview":
			if fig, ok := msg.Data.(*charts.Figure); ok {
				r.preview.SetFigure(fig)
			}
			r.currentView = previewView
		}
		return r, nil
	}

	switch r.currentView {
	case pickerView:
		newModel, newCmd := r.picker.Update(msg)
		r.picker = newModel.(*PickerScreen)
		cmd = newCmd
	case previewView:
		newModel, newCmd := r.preview.Update(msg)
		r.preview = newModel.(*PreviewScreen)
		cmd = newCmd
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	var content string
	switch r.currentView {
	case pickerView:
		content = r.picker.View()
	case previewView:
		content = r.preview.View()
	}

	return fmt.Sprintf("%s\n\n%s", r.renderTabs(), content)
}

func (r *RootScreen) renderTabs() string {
	rowsTab := "Rows"
	chartTab := "Chart"

	if r.currentView == pickerView {
		rowsTab = styles.ActiveTabStyle.Render(rowsTab)
		chartTab = styles.InactiveTabStyle.Render(chartTab)
	} else {
		rowsTab = styles.InactiveTabStyle.Render(rowsTab)
		chartTab = styles.ActiveTabStyle.Render(chartTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rowsTab, chartTab)
}

// SwitchScreenMsg asks the root screen to change tabs.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}
