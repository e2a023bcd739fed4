package fractal

// PixelToPoint maps pixel p of a raster of size b to the matching point of
// viewport v. Columns run from the real part of UpperLeft toward LowerRight;
// rows run downward from the imaginary part of UpperLeft.
//
// b must have non-zero dimensions.
func PixelToPoint(b Bounds, p Pixel, v Viewport) complex128 {
	w, h := v.Width(), v.Height()
	return complex(
		real(v.UpperLeft)+float64(p.Column)*w/float64(b.Width),
		imag(v.UpperLeft)-float64(p.Row)*h/float64(b.Height),
	)
}
