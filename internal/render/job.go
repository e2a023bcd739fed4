package render

import (
	"fmt"

	"github.com/san-kum/mandel/internal/fractal"
)

// Job is everything needed to compute one image.
type Job struct {
	Bounds   fractal.Bounds
	Viewport fractal.Viewport
	Limit    int
}

func (j Job) Validate() error {
	if err := j.Bounds.Validate(); err != nil {
		return err
	}
	if err := j.Viewport.Validate(); err != nil {
		return err
	}
	if j.Limit <= 0 {
		return fmt.Errorf("%w: %d", fractal.ErrLimit, j.Limit)
	}
	return nil
}

// Band is a half-open range of rows [Start, End).
type Band struct {
	Start, End int
}

func (b Band) Rows() int { return b.End - b.Start }

// Bands splits height rows into consecutive bands of at most rows rows.
func Bands(height, rows int) []Band {
	if rows < 1 {
		rows = 1
	}
	bands := make([]Band, 0, (height+rows-1)/rows)
	for start := 0; start < height; start += rows {
		end := start + rows
		if end > height {
			end = height
		}
		bands = append(bands, Band{Start: start, End: end})
	}
	return bands
}

func checkLen(pixels []byte, b fractal.Bounds) {
	if b.Width <= 0 || b.Height <= 0 {
		panic(fmt.Sprintf("render: non-positive bounds %s", b))
	}
	if len(pixels) != b.Len() {
		panic(fmt.Sprintf("render: buffer length %d does not match bounds %s", len(pixels), b))
	}
}
