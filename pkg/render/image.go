package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kerbaras/gapcharts/pkg/charts"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON, FormatPNG, FormatSVG:
		return Format(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, png or svg)", s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer format from %q", path)
	}
	return ParseFormat(ext)
}

// ImageOptions configures static rendering.
type ImageOptions struct {
	Width  int
	Height int
	// Caption is drawn at the bottom of PNG output.
	Caption string
	// Grayscale and Contrast only apply to PNG output. Zero Contrast
	// leaves the image unchanged.
	Grayscale bool
	Contrast  float64
}

func (o ImageOptions) rasterEffects() bool {
	return o.Caption != "" || o.Grayscale || (o.Contrast > 0 && o.Contrast != 1)
}

// DefaultImageOptions returns a 1024x512 canvas.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Width: 1024, Height: 512}
}

// Write renders fig in the given format.
func Write(fig *charts.Figure, format Format, w io.Writer, opts ImageOptions, pretty bool) error {
	switch format {
	case FormatJSON:
		return Plotly(fig, w, pretty)
	case FormatPNG, FormatSVG:
		return Image(fig, format, w, opts)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}

// ErrNoData is returned when no series of a figure has a finite point.
var ErrNoData = errors.New("no finite values to plot")

// Image renders fig as PNG or SVG with go-chart.
func Image(fig *charts.Figure, format Format, w io.Writer, opts ImageOptions) error {
	if len(fig.Series) == 0 {
		return fmt.Errorf("figure has no series")
	}
	if _, ok := bounds(fig); !ok {
		return ErrNoData
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultImageOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}

	provider := chart.PNG
	if format == FormatSVG {
		provider = chart.SVG
	}

	var buf bytes.Buffer
	var err error
	if fig.Kind() == charts.KindBar {
		err = barChart(fig, opts).Render(provider, &buf)
	} else {
		ch := lineChart(fig, opts)
		err = ch.Render(provider, &buf)
	}
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	if format == FormatPNG && opts.rasterEffects() {
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("failed to decode chart: %w", err)
		}
		return png.Encode(w, postProcess(img, opts))
	}

	_, err = io.Copy(w, &buf)
	return err
}

func toDrawing(c charts.Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func yearFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		if f == math.Trunc(f) {
			return strconv.Itoa(int(f))
		}
		return strconv.FormatFloat(f, 'f', 2, 64)
	}
	return ""
}

// lineStyle mirrors plotly modes: lines connect points, markers draw dots.
func lineStyle(s charts.Series) chart.Style {
	col := toDrawing(s.Color)
	st := chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
	if !s.Mode.HasLines() {
		st.StrokeColor = drawing.ColorTransparent
		st.StrokeWidth = 0
	}
	if s.Mode.HasMarkers() {
		st.DotColor = col
		st.DotWidth = 4
	}
	return st
}

// finite drops points where x or y is NaN.
func finite(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// extent is the finite data box of a figure.
type extent struct {
	xmin, xmax, ymin, ymax float64
}

func bounds(fig *charts.Figure) (extent, bool) {
	e := extent{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	found := false
	for _, s := range fig.Series {
		xs, ys := finite(s.X, s.Y)
		for i := range xs {
			e.xmin, e.xmax = math.Min(e.xmin, xs[i]), math.Max(e.xmax, xs[i])
			e.ymin, e.ymax = math.Min(e.ymin, ys[i]), math.Max(e.ymax, ys[i])
			found = true
		}
	}
	return e, found
}

// padRange widens a degenerate [min, max] so go-chart gets a non-zero delta.
func padRange(min, max float64) *chart.ContinuousRange {
	if min != max {
		return nil
	}
	pad := math.Abs(min) * 0.1
	if pad == 0 {
		pad = 1
	}
	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}

func lineChart(fig *charts.Figure, opts ImageOptions) *chart.Chart {
	series := make([]chart.Series, 0, len(fig.Series))
	for _, s := range fig.Series {
		xs, ys := finite(s.X, s.Y)
		if len(xs) == 0 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(s),
		})
	}

	ch := &chart.Chart{
		Title:      fig.Layout.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		XAxis:      chart.XAxis{Name: fig.Layout.XAxis.Title, ValueFormatter: yearFormatter},
		YAxis:      chart.YAxis{Name: fig.Layout.YAxis.Title},
		Series:     series,
	}
	e, _ := bounds(fig)
	if r := padRange(e.xmin, e.xmax); r != nil {
		ch.XAxis.Range = r
	}
	if r := padRange(e.ymin, e.ymax); r != nil {
		ch.YAxis.Range = r
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}

// barChart lays series out as groups: one group per x value, one bar per
// series inside each group. Only the first bar of a group carries the label.
func barChart(fig *charts.Figure, opts ImageOptions) *chart.BarChart {
	n := len(fig.Series[0].X)
	bars := make([]chart.Value, 0, n*len(fig.Series))
	// Bars grow from zero; missing values draw as empty bars
	lo, hi := 0.0, 0.0
	for j := 0; j < n; j++ {
		for i, s := range fig.Series {
			v := 0.0
			if j < len(s.Y) && !math.IsNaN(s.Y[j]) {
				v = s.Y[j]
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
			label := ""
			if i == 0 {
				label = yearFormatter(s.X[j])
			}
			col := toDrawing(s.Color)
			bars = append(bars, chart.Value{
				Value: v,
				Label: label,
				Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
			})
		}
	}

	if lo == hi {
		hi = lo + 1
	}

	const spacing = 2
	width := (opts.Width-120)/len(bars) - spacing
	if width < 2 {
		width = 2
	}

	return &chart.BarChart{
		Title:      fig.Layout.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		BarWidth:   width,
		BarSpacing: spacing,
		YAxis:      chart.YAxis{Name: fig.Layout.YAxis.Title, Range: &chart.ContinuousRange{Min: lo, Max: hi}},
		Bars:       bars,
	}
}
