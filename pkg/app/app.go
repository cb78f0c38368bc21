package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gapcharts/pkg/app/screens"
	"github.com/kerbaras/gapcharts/pkg/data"
)

type App struct {
	builder screens.ChartBuilder
	table   *data.Table
	output  string
}

// NewApp creates the row picker over table. Charts are written to output.
func NewApp(builder screens.ChartBuilder, table *data.Table, output string) *App {
	return &App{
		builder: builder,
		table:   table,
		output:  output,
	}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.builder, a.table, a.output)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
