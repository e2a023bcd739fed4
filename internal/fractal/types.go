package fractal

import "fmt"

// DefaultLimit is the iteration budget used when none is configured.
const DefaultLimit = 200

// Bounds is the pixel size of a raster.
type Bounds struct {
	Width  int
	Height int
}

func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyBounds, b.Width, b.Height)
	}
	return nil
}

// Len is the number of pixels, and so the length of a matching buffer.
func (b Bounds) Len() int { return b.Width * b.Height }

func (b Bounds) String() string { return fmt.Sprintf("%dx%d", b.Width, b.Height) }

// Pixel addresses a raster cell. Row grows downward.
type Pixel struct {
	Column int
	Row    int
}

// Viewport is the rectangle of the complex plane shown by a raster.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

func (v Viewport) Validate() error {
	if !(real(v.UpperLeft) < real(v.LowerRight)) || !(imag(v.UpperLeft) > imag(v.LowerRight)) {
		return fmt.Errorf("%w: upper left %s, lower right %s",
			ErrDegenerateViewport, FormatComplex(v.UpperLeft), FormatComplex(v.LowerRight))
	}
	return nil
}

// Width and Height of the viewport in plane units.
func (v Viewport) Width() float64  { return real(v.LowerRight) - real(v.UpperLeft) }
func (v Viewport) Height() float64 { return imag(v.UpperLeft) - imag(v.LowerRight) }

func (v Viewport) String() string {
	return FormatComplex(v.UpperLeft) + " " + FormatComplex(v.LowerRight)
}
