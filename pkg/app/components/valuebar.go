package components

import (
	"math"
	"strings"

	"github.com/kerbaras/gapcharts/pkg/app/styles"
)

// ValueBar draws value relative to max as a bar of width cells.
func ValueBar(value, max float64, width int) string {
	if max <= 0 || width <= 0 || math.IsNaN(value) {
		return ""
	}

	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return styles.BarStyle.Render(strings.Repeat("█", filled)) +
		styles.BarEmptyStyle.Render(strings.Repeat("░", width-filled))
}

