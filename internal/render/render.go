package render

import "github.com/san-kum/mandel/internal/fractal"

// Render computes every pixel of job into pixels on the calling goroutine.
// It panics if len(pixels) != job.Bounds.Len().
func Render(pixels []byte, job Job) {
	checkLen(pixels, job.Bounds)
	renderBand(pixels, job, Band{Start: 0, End: job.Bounds.Height})
}

// renderBand fills dst, which holds exactly the rows of band.
func renderBand(dst []byte, job Job, band Band) {
	w := job.Bounds.Width
	for row := band.Start; row < band.End; row++ {
		renderRow(dst[(row-band.Start)*w:(row-band.Start+1)*w], job, row)
	}
}

func renderRow(dst []byte, job Job, row int) {
	for col := range dst {
		c := fractal.PixelToPoint(job.Bounds, fractal.Pixel{Column: col, Row: row}, job.Viewport)
		dst[col] = fractal.Point(c, job.Limit)
	}
}

// Histogram counts how many pixels have each gray level.
func Histogram(pixels []byte) [256]int {
	var h [256]int
	for _, p := range pixels {
		h[p]++
	}
	return h
}
