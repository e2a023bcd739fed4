package viz

import (
	"strings"

	"github.com/san-kum/mandel/internal/fractal"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a grid of braille characters, each holding 2x4 dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set sets the dot at (x, y) in dot coordinates. The canvas is
// (Width*2) x (Height*4) dots; points outside are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Braille draws a dot for every sampled pixel darker than threshold, so
// points of the set show as ink. cols is the width of the preview in
// characters; the height keeps the aspect ratio of b.
func Braille(pixels []byte, b fractal.Bounds, cols int, threshold uint8) *Canvas {
	dotsW := cols * 2
	dotsH := dotsW * b.Height / b.Width
	rows := (dotsH + 3) / 4
	if rows < 1 {
		rows = 1
	}

	c := NewCanvas(cols, rows)
	for y := 0; y < rows*4; y++ {
		for x := 0; x < dotsW; x++ {
			if sample(pixels, b, x, y, dotsW, rows*4) < threshold {
				c.Set(x, y)
			}
		}
	}
	return c
}

// shadeRamp runs from dark to bright.
const shadeRamp = " .:-=+*#%@"

// Shade renders the buffer with one character per sample, brighter pixels
// using denser glyphs. Terminal cells are about twice as tall as wide, so
// half as many rows as columns are sampled.
func Shade(pixels []byte, b fractal.Bounds, cols int) string {
	rows := cols * b.Height / b.Width / 2
	if rows < 1 {
		rows = 1
	}

	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := int(sample(pixels, b, x, y, cols, rows))
			sb.WriteByte(shadeRamp[v*(len(shadeRamp)-1)/255])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// sample returns the pixel nearest to cell (x, y) of a w x h grid laid over
// the raster.
func sample(pixels []byte, b fractal.Bounds, x, y, w, h int) uint8 {
	col := x * b.Width / w
	row := y * b.Height / h
	if col >= b.Width {
		col = b.Width - 1
	}
	if row >= b.Height {
		row = b.Height - 1
	}
	return pixels[row*b.Width+col]
}
