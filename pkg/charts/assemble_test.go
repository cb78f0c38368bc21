package charts

import (
	"errors"
	"testing"

	"github.com/kerbaras/gapcharts/pkg/axis"
	"github.com/kerbaras/gapcharts/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *data.Table {
	t.Helper()

	table, err := data.NewTable("country",
		[]string{"Canada", "Mexico"},
		[]string{"gdpPercap_1982", "gdpPercap_1987", "gdpPercap_1992"},
		[][]float64{{1, 2, 3}, {4, 5, 6}},
	)
	require.NoError(t, err)
	return table
}

func TestFromTable(t *testing.T) {
	table := newTestTable(t)
	x := []float64{1982, 1987, 1992}

	series, err := FromTable(table, x, []Request{{Name: "Canada"}, {Name: "Mexico"}}, KindBar)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "Canada", series[0].Name)
	assert.Equal(t, []float64{1, 2, 3}, series[0].Y)
	assert.Equal(t, "Mexico", series[1].Name)
	assert.Equal(t, []float64{4, 5, 6}, series[1].Y)
	for _, s := range series {
		assert.Equal(t, KindBar, s.Kind)
		assert.Equal(t, x, s.X)
	}
}

func TestFromTableFollowsRequestOrder(t *testing.T) {
	table := newTestTable(t)

	series, err := FromTable(table, []float64{1, 2, 3}, []Request{{Name: "Mexico"}, {Name: "Canada"}}, KindScatter)
	require.NoError(t, err)
	assert.Equal(t, "Mexico", series[0].Name)
	assert.Equal(t, "Canada", series[1].Name)
}

func TestFromTableRowNotFound(t *testing.T) {
	table := newTestTable(t)

	_, err := FromTable(table, []float64{1, 2, 3}, []Request{{Name: "Canada"}, {Name: "Atlantis"}}, KindBar)
	require.Error(t, err)
	assert.True(t, errors.Is(err, data.ErrRowNotFound))
}

func TestFromTableLengthMismatch(t *testing.T) {
	table := newTestTable(t)

	_, err := FromTable(table, []float64{1, 2}, []Request{{Name: "Canada"}}, KindBar)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFromTableStyling(t *testing.T) {
	table := newTestTable(t)
	reqs := []Request{
		{Name: "Canada", Color: RGB(200, 0, 0), Mode: ModeLinesMarkers},
		{Name: "Mexico"},
	}

	series, err := FromTable(table, []float64{1, 2, 3}, reqs, KindScatter)
	require.NoError(t, err)

	assert.Equal(t, RGB(200, 0, 0), series[0].Color)
	assert.Equal(t, ModeLinesMarkers, series[0].Mode)
	assert.Equal(t, PaletteColor(1), series[1].Color)
	assert.Equal(t, ModeLines, series[1].Mode)
}

func TestFromTableKeepsTransparentColor(t *testing.T) {
	req, err := ParseRequest("Canada=rgba(0, 0, 0, 0)")
	require.NoError(t, err)

	series, err := FromTable(newTestTable(t), []float64{1, 2, 3}, []Request{req}, KindScatter)
	require.NoError(t, err)

	assert.Equal(t, RGBA(0, 0, 0, 0), series[0].Color)
	assert.Equal(t, "rgba(0, 0, 0, 0)", series[0].Color.String())
}

func TestBuildPreservesColumnOrder(t *testing.T) {
	table := newTestTable(t)
	spec := Spec{
		Kind:   KindBar,
		Title:  "Per-capita GDP Growth in North America",
		XTitle: "Year",
		YTitle: "GDP per-capita",
		Series: []Request{{Name: "Canada"}, {Name: "Mexico"}},
	}

	fig, err := Build(table, axis.DefaultPrefix, spec)
	require.NoError(t, err)

	for _, s := range fig.Series {
		assert.Equal(t, []float64{1982, 1987, 1992}, s.X)
	}
	assert.Equal(t, KindBar, fig.Kind())
	assert.Equal(t, "Year", fig.Layout.XAxis.Title)
	assert.Equal(t, "GDP per-capita", fig.Layout.YAxis.Title)
}

func TestBuildMalformedLabel(t *testing.T) {
	table, err := data.NewTable("country", []string{"Canada"}, []string{"gdpPercap_1982", "pop_1987"}, [][]float64{{1, 2}})
	require.NoError(t, err)

	_, err = Build(table, axis.DefaultPrefix, Spec{Series: []Request{{Name: "Canada"}}})
	assert.ErrorIs(t, err, axis.ErrMalformedLabel)
}

func TestBuildDefaultsToScatter(t *testing.T) {
	fig, err := Build(newTestTable(t), axis.DefaultPrefix, Spec{Series: []Request{{Name: "Canada"}}})
	require.NoError(t, err)
	assert.Equal(t, KindScatter, fig.Series[0].Kind)
}

func TestFromXY(t *testing.T) {
	x := []float64{0, 0.5, 1}
	ys := [][]float64{{1, 2, 3}, {4, 5, 6}}
	reqs := []Request{{Name: "a", Mode: ModeMarkers}, {Name: "b"}}

	series, err := FromXY(x, ys, reqs)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, x, series[1].X)
	assert.Equal(t, []float64{4, 5, 6}, series[1].Y)
	assert.Equal(t, ModeMarkers, series[0].Mode)

	_, err = FromXY(x, [][]float64{{1}}, reqs[:1])
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = FromXY(x, ys, reqs[:1])
	assert.Error(t, err)
}

func TestEmptyFigureKind(t *testing.T) {
	assert.Equal(t, KindScatter, (&Figure{}).Kind())
}
