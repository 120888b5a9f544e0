package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/fluxline/fluxline/internal/bfield"
)

var componentNames = [3]string{"x", "y", "z"}

// Profile plots one field component sampled along a probe line. coords
// holds the scan coordinate of each sample, values the component in the
// sample order.
func Profile(coords, values []float64, field string, component int, width, height int) string {
	caption := fmt.Sprintf("%s%s along scan (%.2f to %.2f)",
		field, componentNames[component], coords[0], coords[len(coords)-1])
	return asciigraph.Plot(values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

// ProfileAll stacks the three component profiles of a scan result. The
// tensor must have shape (n, 3) with one row per scan point.
func ProfileAll(coords []float64, t *bfield.Tensor, field string, width, height int) (string, error) {
	if len(t.Shape) != 2 || t.Shape[1] != 3 || t.Shape[0] != len(coords) {
		return "", fmt.Errorf("viz: want a (%d, 3) scan tensor, got shape %v", len(coords), t.Shape)
	}
	var b strings.Builder
	for c := 0; c < 3; c++ {
		values := make([]float64, t.Shape[0])
		for i := range values {
			values[i] = t.At(i, c)
		}
		b.WriteString(Profile(coords, values, field, c, width, height))
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// Component extracts one component column from a (n, 3) scan tensor.
func Component(t *bfield.Tensor, c int) []float64 {
	values := make([]float64, t.Shape[0])
	for i := range values {
		values[i] = t.At(i, c)
	}
	return values
}
