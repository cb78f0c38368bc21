// Package config resolves gapcharts settings from flags, GAPCHARTS_*
// environment variables and an optional .gapcharts.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kerbaras/gapcharts/pkg/axis"
	"github.com/kerbaras/gapcharts/pkg/charts"
	"github.com/kerbaras/gapcharts/pkg/data"
	"github.com/kerbaras/gapcharts/pkg/render"
	"github.com/spf13/viper"
)

// Engine selects how CSV files are loaded.
type Engine string

const (
	EngineGota   Engine = "gota"
	EngineDuckDB Engine = "duckdb"
)

// Keys shared by flags, env and file.
const (
	KeyPrefix    = "prefix"
	KeyIndex     = "index"
	KeyDrop      = "drop"
	KeyDelimiter = "delimiter"
	KeyEngine    = "engine"
	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyGrayscale = "grayscale"
	KeyContrast  = "contrast"
	KeyPresets   = "presets"
)

// Preset is a stored chart request. Series use the charts.ParseRequest
// syntax.
type Preset struct {
	Kind   string   `mapstructure:"kind"`
	Title  string   `mapstructure:"title"`
	XTitle string   `mapstructure:"xtitle"`
	YTitle string   `mapstructure:"ytitle"`
	Series []string `mapstructure:"series"`
}

// Spec converts the preset into a chart spec.
func (p Preset) Spec() (charts.Spec, error) {
	kind := charts.KindScatter
	if p.Kind != "" {
		k, err := charts.ParseKind(p.Kind)
		if err != nil {
			return charts.Spec{}, err
		}
		kind = k
	}

	reqs, err := charts.ParseRequests(p.Series)
	if err != nil {
		return charts.Spec{}, err
	}

	return charts.Spec{
		Kind:   kind,
		Title:  p.Title,
		XTitle: p.XTitle,
		YTitle: p.YTitle,
		Series: reqs,
	}, nil
}

// Config is the resolved configuration.
type Config struct {
	Prefix  string
	Load    data.LoadOptions
	Engine  Engine
	Image   render.ImageOptions
	Presets map[string]Preset
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	load := data.DefaultLoadOptions()
	img := render.DefaultImageOptions()

	v.SetDefault(KeyPrefix, axis.DefaultPrefix)
	v.SetDefault(KeyIndex, load.Index)
	v.SetDefault(KeyDrop, load.Drop)
	v.SetDefault(KeyDelimiter, string(load.Delimiter))
	v.SetDefault(KeyEngine, string(EngineGota))
	v.SetDefault(KeyWidth, img.Width)
	v.SetDefault(KeyHeight, img.Height)
	v.SetDefault(KeyGrayscale, false)
	v.SetDefault(KeyContrast, 1.0)
}

// Init wires environment lookup and reads the config file. A missing file is
// not an error; path overrides the search locations.
func Init(v *viper.Viper, path string) error {
	SetDefaults(v)

	v.SetEnvPrefix("gapcharts")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".gapcharts")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load resolves a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	engine := Engine(v.GetString(KeyEngine))
	if engine != EngineGota && engine != EngineDuckDB {
		return nil, fmt.Errorf("invalid engine: %s (must be gota or duckdb)", engine)
	}

	if c := v.GetFloat64(KeyContrast); c <= 0 {
		return nil, fmt.Errorf("contrast must be positive, got %v", c)
	}

	delim := []rune(v.GetString(KeyDelimiter))
	if len(delim) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", v.GetString(KeyDelimiter))
	}

	cfg := &Config{
		Prefix: v.GetString(KeyPrefix),
		Load: data.LoadOptions{
			Index:     v.GetString(KeyIndex),
			Drop:      v.GetStringSlice(KeyDrop),
			Delimiter: delim[0],
		},
		Engine: engine,
		Image: render.ImageOptions{
			Width:     v.GetInt(KeyWidth),
			Height:    v.GetInt(KeyHeight),
			Grayscale: v.GetBool(KeyGrayscale),
			Contrast:  v.GetFloat64(KeyContrast),
		},
		Presets: BuiltinPresets(),
	}

	var custom map[string]Preset
	if err := v.UnmarshalKey(KeyPresets, &custom); err != nil {
		return nil, fmt.Errorf("invalid presets: %w", err)
	}
	for name, p := range custom {
		cfg.Presets[name] = p
	}

	return cfg, nil
}

// BuiltinPresets reproduces the GDP notebooks.
func BuiltinPresets() map[string]Preset {
	return map[string]Preset{
		"north-america": {
			Kind:   string(charts.KindBar),
			Title:  "Per-capita GDP Growth in North America",
			XTitle: "Year",
			YTitle: "GDP per-capita",
			Series: []string{
				"Canada=rgb(200, 0, 0)",
				"United States=rgb(0, 0, 200)",
				"Mexico=rgb(0, 200, 0)",
			},
		},
		"netherlands-france": {
			Kind:   string(charts.KindScatter),
			Title:  "GDP per-capita for the Netherlands and France",
			XTitle: "Year",
			YTitle: "GDP per-capita",
			Series: []string{
				"Netherlands=rgb(255, 127, 0)@lines",
				"France=rgb(0, 0, 255)@lines+markers",
			},
		},
	}
}
