package fractal

// EscapeRadiusSq is the squared escape radius. Once |z| > 2 the orbit of
// z = z*z + c diverges.
const EscapeRadiusSq = 4.0

// EscapeTime iterates z = z*z + c from z = 0 for at most limit steps. It
// returns the index of the step whose result first has |z|^2 strictly above
// EscapeRadiusSq, and false if c stays bounded for the whole budget.
func EscapeTime(c complex128, limit int) (int, bool) {
	cr, ci := real(c), imag(c)
	var zr, zi float64
	for i := 0; i < limit; i++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > EscapeRadiusSq {
			return i, true
		}
	}
	return 0, false
}

// Intensity maps an escape result to a gray level. Bounded points are black;
// points that escape early are bright.
func Intensity(n int, escaped bool) uint8 {
	if !escaped {
		return 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(255 - n)
}

// Point evaluates c and returns its gray level in one call.
func Point(c complex128, limit int) uint8 {
	return Intensity(EscapeTime(c, limit))
}
