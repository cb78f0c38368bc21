package services

import (
	"fmt"
	"math/rand/v2"

	"github.com/kerbaras/gapcharts/pkg/charts"
)

// RandomFigure builds the three-trace scatter demo: x evenly spaced over
// [0, 1] and y drawn from normal distributions with means 5, 0 and -2, drawn
// as lines, lines+markers and markers. The same seed gives the same figure.
func RandomFigure(n int, seed uint64) (*charts.Figure, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 points, got %d", n)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n-1)
	}

	means := []float64{5, 0, -2}
	ys := make([][]float64, len(means))
	for i, mean := range means {
		ys[i] = make([]float64, n)
		for j := range ys[i] {
			ys[i][j] = rng.NormFloat64() + mean
		}
	}

	reqs := []charts.Request{
		{Name: "trace 0", Mode: charts.ModeLines},
		{Name: "trace 1", Mode: charts.ModeLinesMarkers},
		{Name: "trace 2", Mode: charts.ModeMarkers},
	}

	series, err := charts.FromXY(x, ys, reqs)
	if err != nil {
		return nil, err
	}
	return &charts.Figure{Series: series}, nil
}
