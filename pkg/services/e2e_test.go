package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/kerbaras/gapcharts/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// E2E tests for the full load -> build -> render pipeline

const americasCSV = "../data/testdata/gapminder_gdp_americas.csv"

func TestE2E_PresetPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	for _, engine := range []config.Engine{config.EngineGota, config.EngineDuckDB} {
		t.Run(string(engine), func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Engine = engine
			svc := NewChartService(cfg)

			spec, err := svc.Preset("north-america")
			require.NoError(t, err)

			fig, err := svc.Build(context.Background(), americasCSV, spec)
			require.NoError(t, err)

			outDir := t.TempDir()
			jsonPath := filepath.Join(outDir, "north-america.json")
			require.NoError(t, svc.RenderFile(fig, jsonPath, "", true, ""))

			b, err := os.ReadFile(jsonPath)
			require.NoError(t, err)

			var out struct {
				Data []struct {
					Type string    `json:"type"`
					Name string    `json:"name"`
					X    []float64 `json:"x"`
					Y    []float64 `json:"y"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(b, &out))

			require.Len(t, out.Data, 3)
			assert.Equal(t, "Canada", out.Data[0].Name)
			assert.Equal(t, "United States", out.Data[1].Name)
			assert.Equal(t, "Mexico", out.Data[2].Name)
			assert.Equal(t, []float64{1952, 1957, 1962}, out.Data[2].X)
			assert.InDelta(t, 3478.125529, out.Data[2].Y[0], 1e-6)

			require.NoError(t, svc.RenderFile(fig, filepath.Join(outDir, "north-america.png"), "", false, "Source: gapminder"))
			require.NoError(t, svc.RenderFile(fig, filepath.Join(outDir, "north-america.svg"), "", false, ""))
		})
	}
}

func TestE2E_MissingCountry(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	svc := NewChartService(testConfig(t))

	// The fixture only covers the Americas
	spec, err := svc.Preset("netherlands-france")
	require.NoError(t, err)

	_, err = svc.Build(context.Background(), americasCSV, spec)
	assert.ErrorContains(t, err, `row not found: "Netherlands"`)
}
