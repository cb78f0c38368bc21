// Package axis turns prefixed column labels such as "gdpPercap_1987" into a
// numeric year axis.
package axis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrefix is the label prefix used by the gapminder GDP files.
const DefaultPrefix = "gdpPercap_"

// ErrMalformedLabel indicates a column label is not prefix + 4-digit year.
var ErrMalformedLabel = errors.New("malformed column label")

// LabelError reports the offending label and its position.
type LabelError struct {
	Index  int
	Label  string
	Prefix string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("%s at column %d: %q (want %q followed by a 4-digit year)", ErrMalformedLabel, e.Index, e.Label, e.Prefix)
}

func (e *LabelError) Unwrap() error {
	return ErrMalformedLabel
}

// Strip removes the exact prefix from label.
func Strip(label, prefix string) (string, bool) {
	return strings.CutPrefix(label, prefix)
}

// Year parses a single label.
func Year(label, prefix string) (int, bool) {
	rest, ok := Strip(label, prefix)
	if !ok || len(rest) != 4 {
		return 0, false
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return year, true
}

// Years converts labels to years in column order. It stops at the first
// label that does not parse and returns a *LabelError.
func Years(labels []string, prefix string) ([]int, error) {
	years := make([]int, 0, len(labels))
	for i, label := range labels {
		year, ok := Year(label, prefix)
		if !ok {
			return nil, &LabelError{Index: i, Label: label, Prefix: prefix}
		}
		years = append(years, year)
	}
	return years, nil
}

// Float converts years to x values for plotting.
func Float(years []int) []float64 {
	xs := make([]float64, len(years))
	for i, y := range years {
		xs[i] = float64(y)
	}
	return xs
}
