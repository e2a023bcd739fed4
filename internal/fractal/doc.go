// Package fractal provides the numeric core of the escape-time renderer.
//
// The package is made of small pure functions:
//
//   - [ParsePair] and [ParseComplex]: textual "a<sep>b" pairs
//   - [PixelToPoint]: raster pixel to complex-plane point
//   - [EscapeTime]: iteration count of z = z*z + c before |z| > 2
//   - [Intensity]: escape result to an 8-bit gray level
//
// # Example
//
//	b, _ := fractal.ParseBounds("1000x750")
//	ul, _ := fractal.ParseComplex("-1.20,0.35")
//	lr, _ := fractal.ParseComplex("-1.0,0.20")
//	v := fractal.Viewport{UpperLeft: ul, LowerRight: lr}
//	c := fractal.PixelToPoint(b, fractal.Pixel{Column: 10, Row: 20}, v)
//	n, escaped := fractal.EscapeTime(c, fractal.DefaultLimit)
//
// # Thread Safety
//
// Every function here is free of shared state and may be called from any
// number of goroutines.
package fractal
