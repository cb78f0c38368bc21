// Package render hands figures to output formats: plotly figure JSON and
// static PNG/SVG images.
package render

import (
	"io"
	"math"

	"github.com/goccy/go-json"
	"github.com/kerbaras/gapcharts/pkg/charts"
)

type plotlyFigure struct {
	Data   []plotlyTrace `json:"data"`
	Layout plotlyLayout  `json:"layout"`
}

type plotlyTrace struct {
	Type   string        `json:"type"`
	Name   string        `json:"name,omitempty"`
	Mode   string        `json:"mode,omitempty"`
	X      []any         `json:"x"`
	Y      []any         `json:"y"`
	Marker *plotlyMarker `json:"marker,omitempty"`
	Line   *plotlyLine   `json:"line,omitempty"`
}

type plotlyMarker struct {
	Color string `json:"color"`
}

type plotlyLine struct {
	Color string `json:"color"`
}

type plotlyText struct {
	Text string `json:"text"`
}

type plotlyAxis struct {
	Title *plotlyText `json:"title,omitempty"`
}

type plotlyLayout struct {
	Title   *plotlyText `json:"title,omitempty"`
	XAxis   plotlyAxis  `json:"xaxis"`
	YAxis   plotlyAxis  `json:"yaxis"`
	BarMode string      `json:"barmode,omitempty"`
}

// PlotlyJSON encodes fig as a plotly figure ({"data": [...], "layout": {...}}).
func PlotlyJSON(fig *charts.Figure, pretty bool) ([]byte, error) {
	out := plotlyFigure{
		Data: make([]plotlyTrace, 0, len(fig.Series)),
		Layout: plotlyLayout{
			Title: text(fig.Layout.Title),
			XAxis: plotlyAxis{Title: text(fig.Layout.XAxis.Title)},
			YAxis: plotlyAxis{Title: text(fig.Layout.YAxis.Title)},
		},
	}
	if fig.Kind() == charts.KindBar {
		out.Layout.BarMode = "group"
	}

	for _, s := range fig.Series {
		trace := plotlyTrace{
			Type: string(s.Kind),
			Name: s.Name,
			X:    values(s.X),
			Y:    values(s.Y),
		}
		if s.Kind == charts.KindBar {
			trace.Marker = &plotlyMarker{Color: s.Color.String()}
		} else {
			trace.Mode = string(s.Mode)
			trace.Line = &plotlyLine{Color: s.Color.String()}
		}
		out.Data = append(out.Data, trace)
	}

	if pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// Plotly writes the plotly JSON for fig to w.
func Plotly(fig *charts.Figure, w io.Writer, pretty bool) error {
	b, err := PlotlyJSON(fig, pretty)
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

func text(s string) *plotlyText {
	if s == "" {
		return nil
	}
	return &plotlyText{Text: s}
}

// values maps NaN to null, which plotly draws as a gap.
func values(xs []float64) []any {
	out := make([]any, len(xs))
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = v
	}
	return out
}
