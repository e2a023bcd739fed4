package fractal

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Number is the set of types ParsePair can read from text.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ParsePair splits s at the first sep and parses both halves as T.
// It reports false if sep is missing or either half is not a valid T.
func ParsePair[T Number](s string, sep rune) (T, T, bool) {
	var zero T
	i := strings.IndexRune(s, sep)
	if i < 0 {
		return zero, zero, false
	}
	l, ok := parseNumber[T](s[:i])
	if !ok {
		return zero, zero, false
	}
	r, ok := parseNumber[T](s[i+utf8.RuneLen(sep):])
	if !ok {
		return zero, zero, false
	}
	return l, r, true
}

func parseNumber[T Number](s string) (T, bool) {
	t := reflect.TypeOf(T(0))
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		return T(f), err == nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, t.Bits())
		return T(u), err == nil
	default:
		n, err := strconv.ParseInt(s, 10, t.Bits())
		return T(n), err == nil
	}
}

// ParseComplex parses "re,im" into a complex number.
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair[float64](s, ',')
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}

// ParseBounds parses a "<width>x<height>" resolution. Both sides must be
// positive.
func ParseBounds(s string) (Bounds, bool) {
	w, h, ok := ParsePair[int](s, 'x')
	if !ok || w <= 0 || h <= 0 {
		return Bounds{}, false
	}
	return Bounds{Width: w, Height: h}, true
}

// FormatComplex renders c in the grammar accepted by ParseComplex.
func FormatComplex(c complex128) string {
	return strconv.FormatFloat(real(c), 'g', -1, 64) + "," + strconv.FormatFloat(imag(c), 'g', -1, 64)
}
