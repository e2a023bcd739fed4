package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// HistogramPlot plots how many pixels fall in each gray level, grouped into
// buckets of equal width. Level 0 (points of the set) is usually dominant, so
// skipZero leaves it out of the plot.
func HistogramPlot(h [256]int, buckets, width, height int, skipZero bool) string {
	if buckets < 1 || buckets > 256 {
		buckets = 256
	}
	data := make([]float64, buckets)
	for level, n := range h {
		if skipZero && level == 0 {
			continue
		}
		data[level*buckets/256] += float64(n)
	}

	caption := fmt.Sprintf("pixels per gray level (%d buckets)", buckets)
	if skipZero {
		caption += ", bounded points excluded"
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
