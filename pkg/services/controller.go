package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kerbaras/gapcharts/pkg/axis"
	"github.com/kerbaras/gapcharts/pkg/charts"
	"github.com/kerbaras/gapcharts/pkg/config"
	"github.com/kerbaras/gapcharts/pkg/data"
	"github.com/kerbaras/gapcharts/pkg/render"
	"github.com/kerbaras/gapcharts/pkg/utils"
)

// TableLoader loads a CSV file into a Table.
type TableLoader interface {
	LoadCSVFile(ctx context.Context, path string, opts data.LoadOptions) (*data.Table, error)
}

// GotaLoader loads tables in memory with a gota dataframe.
type GotaLoader struct{}

func (GotaLoader) LoadCSVFile(_ context.Context, path string, opts data.LoadOptions) (*data.Table, error) {
	return data.LoadCSVFile(path, opts)
}

// ChartService runs load -> normalize -> assemble -> render.
type ChartService struct {
	loader  TableLoader
	fetcher *utils.Fetcher
	cfg     *config.Config
}

// NewChartService picks the loader named by cfg.Engine.
func NewChartService(cfg *config.Config) *ChartService {
	var loader TableLoader = GotaLoader{}
	if cfg.Engine == config.EngineDuckDB {
		loader = data.NewDuckDBRepository()
	}
	return NewChartServiceWithLoader(cfg, loader)
}

// NewChartServiceWithLoader uses the given loader.
func NewChartServiceWithLoader(cfg *config.Config, loader TableLoader) *ChartService {
	return &ChartService{loader: loader, fetcher: utils.NewFetcher(nil), cfg: cfg}
}

// Config returns the service configuration.
func (s *ChartService) Config() *config.Config {
	return s.cfg
}

// SetFetcher replaces the HTTP client used for URL sources.
func (s *ChartService) SetFetcher(f *utils.Fetcher) {
	s.fetcher = f
}

// Load reads the CSV at path. An http(s) URL is downloaded first.
func (s *ChartService) Load(ctx context.Context, path string) (*data.Table, error) {
	source := path
	if utils.IsURL(path) {
		tmp, err := s.fetcher.Download(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
		}
		defer os.Remove(tmp)
		source = tmp
	}

	table, err := s.loader.LoadCSVFile(ctx, source, s.cfg.Load)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return table, nil
}

// Years normalizes the table's column labels.
func (s *ChartService) Years(table *data.Table) ([]int, error) {
	return axis.Years(table.Columns(), s.cfg.Prefix)
}

// Build loads path and assembles spec from it.
func (s *ChartService) Build(ctx context.Context, path string, spec charts.Spec) (*charts.Figure, error) {
	if len(spec.Series) == 0 {
		return nil, fmt.Errorf("at least one series is required")
	}

	table, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.BuildFromTable(table, spec)
}

// BuildFromTable assembles spec from an already loaded table.
func (s *ChartService) BuildFromTable(table *data.Table, spec charts.Spec) (*charts.Figure, error) {
	fig, err := charts.Build(table, s.cfg.Prefix, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to build chart: %w", err)
	}
	return fig, nil
}

// Preset resolves a named preset.
func (s *ChartService) Preset(name string) (charts.Spec, error) {
	p, ok := s.cfg.Presets[name]
	if !ok {
		return charts.Spec{}, fmt.Errorf("unknown preset: %s", name)
	}
	spec, err := p.Spec()
	if err != nil {
		return charts.Spec{}, fmt.Errorf("preset %s: %w", name, err)
	}
	return spec, nil
}

// PresetNames lists presets alphabetically.
func (s *ChartService) PresetNames() []string {
	names := make([]string, 0, len(s.cfg.Presets))
	for name := range s.cfg.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderFile writes fig to path. An empty format is inferred from the
// extension.
func (s *ChartService) RenderFile(fig *charts.Figure, path string, format render.Format, pretty bool, caption string) error {
	if format == "" {
		f, err := render.FormatFromPath(path)
		if err != nil {
			return err
		}
		format = f
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	opts := s.cfg.Image
	opts.Caption = caption
	if err := render.Write(fig, format, f, opts, pretty); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
