package screens

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gapcharts/pkg/charts"
	"github.com/kerbaras/gapcharts/pkg/data"
	"github.com/kerbaras/gapcharts/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBuilder struct {
	BuildFunc  func(table *data.Table, spec charts.Spec) (*charts.Figure, error)
	RenderFunc func(fig *charts.Figure, path string, format render.Format, pretty bool, caption string) error
}

func (m *mockBuilder) BuildFromTable(table *data.Table, spec charts.Spec) (*charts.Figure, error) {
	if m.BuildFunc != nil {
		return m.BuildFunc(table, spec)
	}
	return charts.Build(table, "gdpPercap_", spec)
}

func (m *mockBuilder) RenderFile(fig *charts.Figure, path string, format render.Format, pretty bool, caption string) error {
	if m.RenderFunc != nil {
		return m.RenderFunc(fig, path, format, pretty, caption)
	}
	return nil
}

func testTable(t *testing.T) *data.Table {
	t.Helper()
	table, err := data.NewTable("country",
		[]string{"Canada", "Mexico", "United States"},
		[]string{"gdpPercap_1952", "gdpPercap_1957"},
		[][]float64{
			{11367.16112, 12489.95006},
			{3478.125529, 4131.546641},
			{13990.48208, 14847.12712},
		})
	require.NoError(t, err)
	return table
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPickerSpecFollowsCheckOrder(t *testing.T) {
	p := NewPickerScreen(&mockBuilder{}, testTable(t))

	p.Update(key("j")) // Mexico
	p.Update(key(" "))
	p.Update(key("k")) // Canada
	p.Update(key(" "))
	p.Update(key("b"))

	spec := p.Spec()
	assert.Equal(t, charts.KindBar, spec.Kind)
	require.Len(t, spec.Series, 2)
	assert.Equal(t, "Mexico", spec.Series[0].Name)
	assert.Equal(t, "Canada", spec.Series[1].Name)
}

func TestPickerFilterCapturesKeys(t *testing.T) {
	p := NewPickerScreen(&mockBuilder{}, testTable(t))

	p.Update(key("/"))
	assert.True(t, p.Filtering())

	// "b" is typed into the filter instead of switching kind
	p.Update(key("b"))
	assert.Equal(t, charts.KindScatter, p.Spec().Kind)
	assert.Equal(t, "b", p.filter.Value())

	p.Update(key("esc"))
	assert.False(t, p.Filtering())
}

func TestPickerBuildWithoutSelection(t *testing.T) {
	p := NewPickerScreen(&mockBuilder{}, testTable(t))

	_, cmd := p.Update(key("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(figureBuiltMsg)
	require.True(t, ok)
	assert.Error(t, msg.err)
	assert.Nil(t, msg.fig)
}

func TestPickerBuildSwitchesToPreview(t *testing.T) {
	p := NewPickerScreen(&mockBuilder{}, testTable(t))
	p.Update(key(" "))

	_, cmd := p.Update(key("enter"))
	require.NotNil(t, cmd)
	built := cmd().(figureBuiltMsg)
	require.NoError(t, built.err)

	_, cmd = p.Update(built)
	require.NotNil(t, cmd)
	sw, ok := cmd().(SwitchScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "preview", sw.Screen)

	fig := sw.Data.(*charts.Figure)
	require.Len(t, fig.Series, 1)
	assert.Equal(t, "Canada", fig.Series[0].Name)
	assert.Equal(t, []float64{1952, 1957}, fig.Series[0].X)
}

func TestPickerBuildError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPickerScreen(&mockBuilder{
		BuildFunc: func(*data.Table, charts.Spec) (*charts.Figure, error) { return nil, boom },
	}, testTable(t))
	p.Update(key(" "))

	_, cmd := p.Update(key("enter"))
	p.Update(cmd())

	assert.ErrorIs(t, p.err, boom)
	assert.Contains(t, p.View(), "boom")
}

func TestPreviewWritesFigure(t *testing.T) {
	var gotPath string
	builder := &mockBuilder{
		RenderFunc: func(fig *charts.Figure, path string, format render.Format, pretty bool, caption string) error {
			gotPath = path
			return nil
		},
	}

	s := NewPreviewScreen(builder, "out/chart.png")
	_, cmd := s.Update(key("w"))
	assert.Nil(t, cmd, "nothing to write without a figure")

	fig, err := charts.Build(testTable(t), "gdpPercap_", charts.Spec{
		Title:  "GDP",
		Series: []charts.Request{{Name: "Canada"}},
	})
	require.NoError(t, err)
	s.SetFigure(fig)

	_, cmd = s.Update(key("w"))
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.Equal(t, "out/chart.png", gotPath)
	assert.Contains(t, s.View(), "Wrote out/chart.png")
	assert.Contains(t, s.View(), "Canada")
}

func TestRootQuitIgnoredWhileFiltering(t *testing.T) {
	r := NewRootScreen(&mockBuilder{}, testTable(t), "chart.json")

	r.Update(key("/"))
	r.Update(key("q"))
	assert.Equal(t, "q", r.picker.filter.Value())

	r.Update(key("esc"))
	_, cmd := r.Update(key("q"))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestRootTabs(t *testing.T) {
	r := NewRootScreen(&mockBuilder{}, testTable(t), "chart.json")
	assert.True(t, strings.Contains(r.View(), "Rows"))

	r.Update(key("tab"))
	assert.Equal(t, previewView, r.currentView)
	assert.Contains(t, r.View(), "No chart yet")

	r.Update(SwitchScreenMsg{Screen: "picker"})
	assert.Equal(t, pickerView, r.currentView)
}
