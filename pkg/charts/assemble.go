package charts

import (
	"errors"
	"fmt"

	"github.com/kerbaras/gapcharts/pkg/axis"
	"github.com/kerbaras/gapcharts/pkg/data"
)

// ErrLengthMismatch indicates x and y sequences of different lengths.
var ErrLengthMismatch = errors.New("x and y lengths differ")

// FromTable builds one series per request, in request order, using x as the
// shared x sequence and each named row as y.
func FromTable(t *data.Table, x []float64, reqs []Request, kind Kind) ([]Series, error) {
	if n := len(t.Columns()); len(x) != n {
		return nil, fmt.Errorf("%w: %d x values for %d columns", ErrLengthMismatch, len(x), n)
	}

	names := make([]string, len(reqs))
	for i, req := range reqs {
		names[i] = req.Name
	}
	ys, err := t.Rows(names)
	if err != nil {
		return nil, err
	}

	series := make([]Series, 0, len(reqs))
	for i, req := range reqs {
		series = append(series, newSeries(i, req, kind, x, ys[i]))
	}
	return series, nil
}

// FromXY builds scatter series from caller-supplied values; ys[i] pairs with
// reqs[i].
func FromXY(x []float64, ys [][]float64, reqs []Request) ([]Series, error) {
	if len(ys) != len(reqs) {
		return nil, fmt.Errorf("%d y sequences for %d series", len(ys), len(reqs))
	}

	series := make([]Series, 0, len(reqs))
	for i, req := range reqs {
		if len(ys[i]) != len(x) {
			return nil, fmt.Errorf("%w: series %q has %d y values for %d x values", ErrLengthMismatch, req.Name, len(ys[i]), len(x))
		}
		series = append(series, newSeries(i, req, KindScatter, x, ys[i]))
	}
	return series, nil
}

// Build normalizes the table's column labels into years and assembles the
// figure described by spec.
func Build(t *data.Table, prefix string, spec Spec) (*Figure, error) {
	years, err := axis.Years(t.Columns(), prefix)
	if err != nil {
		return nil, err
	}

	kind := spec.Kind
	if kind == "" {
		kind = KindScatter
	}

	series, err := FromTable(t, axis.Float(years), spec.Series, kind)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Series: series,
		Layout: Layout{
			Title: spec.Title,
			XAxis: Axis{Title: spec.XTitle},
			YAxis: Axis{Title: spec.YTitle},
		},
	}, nil
}

func newSeries(i int, req Request, kind Kind, x, y []float64) Series {
	color := req.Color
	if color.IsZero() {
		color = PaletteColor(i)
	}
	mode := req.Mode
	if mode == "" {
		mode = ModeLines
	}

	return Series{
		Name:  req.Name,
		Kind:  kind,
		Mode:  mode,
		Color: color,
		X:     append([]float64(nil), x...),
		Y:     append([]float64(nil), y...),
	}
}
