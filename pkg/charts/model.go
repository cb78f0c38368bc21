// Package charts assembles chart definitions (figures) from table rows or raw
// x/y values. Figures are plain data; rendering lives in package render.
package charts

import "fmt"

// Kind is the trace type of a series.
type Kind string

const (
	KindBar     Kind = "bar"
	KindScatter Kind = "scatter"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBar, KindScatter:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("invalid chart kind: %s (must be bar or scatter)", s)
	}
}

// Mode controls how scatter series are drawn.
type Mode string

const (
	ModeLines        Mode = "lines"
	ModeMarkers      Mode = "markers"
	ModeLinesMarkers Mode = "lines+markers"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLines, ModeMarkers, ModeLinesMarkers:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be lines, markers or lines+markers)", s)
	}
}

// HasLines reports whether points are connected.
func (m Mode) HasLines() bool {
	return m == ModeLines || m == ModeLinesMarkers
}

// HasMarkers reports whether points are drawn.
func (m Mode) HasMarkers() bool {
	return m == ModeMarkers || m == ModeLinesMarkers
}

// Series is one plotted dataset.
type Series struct {
	Name  string
	Kind  Kind
	Mode  Mode
	Color Color
	X     []float64
	Y     []float64
}

// Axis holds axis metadata.
type Axis struct {
	Title string
}

// Layout holds figure-level metadata.
type Layout struct {
	Title string
	XAxis Axis
	YAxis Axis
}

// Figure is an ordered set of series plus layout, handed to a renderer.
type Figure struct {
	Series []Series
	Layout Layout
}

// Kind returns the kind of the first series, or scatter for an empty figure.
func (f *Figure) Kind() Kind {
	if len(f.Series) == 0 {
		return KindScatter
	}
	return f.Series[0].Kind
}
