package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbaras/gapcharts/pkg/charts"
	"github.com/kerbaras/gapcharts/pkg/config"
	"github.com/kerbaras/gapcharts/pkg/render"
	"github.com/kerbaras/gapcharts/pkg/services"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const americasCSV = "../../pkg/data/testdata/gapminder_gdp_americas.csv"

func testService(t *testing.T) *services.ChartService {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	return services.NewChartServiceWithLoader(cfg, services.GotaLoader{})
}

func TestChartSpec(t *testing.T) {
	svc := testService(t)

	t.Run("preset", func(t *testing.T) {
		spec, err := chartSpec(svc, chartOptions{Preset: "north-america"})
		require.NoError(t, err)
		assert.Equal(t, charts.KindBar, spec.Kind)
		assert.Equal(t, "Per-capita GDP Growth in North America", spec.Title)
		require.Len(t, spec.Series, 3)
		assert.Equal(t, "Canada", spec.Series[0].Name)
	})

	t.Run("flags override preset", func(t *testing.T) {
		spec, err := chartSpec(svc, chartOptions{
			Preset: "north-america",
			Series: []string{"Mexico@markers"},
			Kind:   "scatter",
			Title:  "Mexico",
		})
		require.NoError(t, err)
		assert.Equal(t, charts.KindScatter, spec.Kind)
		assert.Equal(t, "Mexico", spec.Title)
		assert.Equal(t, "Year", spec.XTitle)
		require.Len(t, spec.Series, 1)
		assert.Equal(t, charts.ModeMarkers, spec.Series[0].Mode)
	})

	t.Run("series only", func(t *testing.T) {
		spec, err := chartSpec(svc, chartOptions{Series: []string{"Canada", "Mexico"}})
		require.NoError(t, err)
		assert.Equal(t, charts.KindScatter, spec.Kind)
		assert.Len(t, spec.Series, 2)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := chartSpec(svc, chartOptions{})
		assert.Error(t, err)

		_, err = chartSpec(svc, chartOptions{Preset: "atlantis"})
		assert.Error(t, err)

		_, err = chartSpec(svc, chartOptions{Series: []string{"Canada"}, Kind: "pie"})
		assert.Error(t, err)

		_, err = chartSpec(svc, chartOptions{Series: []string{"Canada=octarine"}})
		assert.Error(t, err)
	})
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		flag, output string
		want         render.Format
		wantErr      bool
	}{
		{"", "", render.FormatJSON, false},
		{"", "chart.png", render.FormatPNG, false},
		{"", "out/chart.svg", render.FormatSVG, false},
		{"svg", "", render.FormatSVG, false},
		{"json", "chart.png", render.FormatJSON, false},
		{"", "chart", "", true},
		{"gif", "", "", true},
	}

	for _, tt := range tests {
		got, err := outputFormat(tt.flag, tt.output)
		if tt.wantErr {
			assert.Error(t, err, "flag=%q output=%q", tt.flag, tt.output)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "flag=%q output=%q", tt.flag, tt.output)
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Canada", truncateString("Canada", 10))
	assert.Equal(t, "United ...", truncateString("United States", 10))
	assert.Equal(t, "Uni", truncateString("United States", 3))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Country", titleCase("country"))
	assert.Equal(t, "", titleCase(""))
}

func TestFormatGrowth(t *testing.T) {
	assert.Equal(t, "+100.0%", formatGrowth(10, 20))
	assert.Equal(t, "-50.0%", formatGrowth(10, 5))
	assert.Equal(t, "-", formatGrowth(0, 5))
	assert.Equal(t, "-", formatValue(math.NaN()))
	assert.Equal(t, "3.14", formatValue(3.14159))
}

func TestChartCommandWritesFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping command test in short mode")
	}

	csv := mustAbs(t, americasCSV)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	out := filepath.Join(t.TempDir(), "north-america.json")
	rootCmd.SetArgs([]string{"chart", csv, "--preset", "north-america", "-o", out})
	require.NoError(t, rootCmd.Execute())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name":"Canada"`)
	assert.Contains(t, string(b), `"color":"rgb(200, 0, 0)"`)
	assert.Contains(t, string(b), `"barmode":"group"`)
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return abs
}
