package fractal

import (
	"errors"
	"testing"
)

func TestPixelToPoint(t *testing.T) {
	got := PixelToPoint(
		Bounds{Width: 100, Height: 100},
		Pixel{Column: 25, Row: 75},
		Viewport{UpperLeft: complex(-1.0, 1.0), LowerRight: complex(1.0, -1.0)},
	)
	if got != complex(-0.5, -0.5) {
		t.Errorf("expected (-0.5-0.5i), got %v", got)
	}
}

func TestPixelToPointCorners(t *testing.T) {
	v := Viewport{UpperLeft: complex(-2, 1), LowerRight: complex(1, -1)}
	b := Bounds{Width: 300, Height: 200}

	if got := PixelToPoint(b, Pixel{}, v); got != v.UpperLeft {
		t.Errorf("origin: expected %v, got %v", v.UpperLeft, got)
	}
	if got := PixelToPoint(b, Pixel{Column: 300, Row: 200}, v); got != v.LowerRight {
		t.Errorf("far corner: expected %v, got %v", v.LowerRight, got)
	}
	// rows move down the imaginary axis
	top := PixelToPoint(b, Pixel{Row: 10}, v)
	bottom := PixelToPoint(b, Pixel{Row: 190}, v)
	if imag(top) <= imag(bottom) {
		t.Errorf("expected imaginary part to decrease with row: %v, %v", top, bottom)
	}
}

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name        string
		c           complex128
		limit       int
		wantN       int
		wantEscaped bool
	}{
		{"origin", 0, 1000, 0, false},
		{"origin limit 1", 0, 1, 0, false},
		{"minus one cycles", -1, 500, 0, false},
		{"two on the radius", 2, 200, 1, true},
		{"two with limit 1", 2, 1, 0, false},
		{"three", 3, 200, 0, true},
		{"far away", complex(10, 10), 200, 0, true},
		{"i is bounded", complex(0, 1), 200, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, escaped := EscapeTime(tt.c, tt.limit)
			if escaped != tt.wantEscaped || n != tt.wantN {
				t.Errorf("EscapeTime(%v, %d) = (%d, %v), want (%d, %v)",
					tt.c, tt.limit, n, escaped, tt.wantN, tt.wantEscaped)
			}
		})
	}
}

func TestEscapeTimeBoundaryIsStrict(t *testing.T) {
	// c = -2 stays at |z|^2 == 4 forever: 4, 4, 4, ...
	if n, escaped := EscapeTime(-2, 100); escaped {
		t.Errorf("expected -2 to stay bounded, escaped at %d", n)
	}
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		n       int
		escaped bool
		want    uint8
	}{
		{0, false, 0},
		{500, false, 0},
		{0, true, 255},
		{1, true, 254},
		{199, true, 56},
		{255, true, 0},
		{1000, true, 0},
	}

	for _, tt := range tests {
		if got := Intensity(tt.n, tt.escaped); got != tt.want {
			t.Errorf("Intensity(%d, %v) = %d, want %d", tt.n, tt.escaped, got, tt.want)
		}
	}
}

func TestPoint(t *testing.T) {
	if got := Point(0, DefaultLimit); got != 0 {
		t.Errorf("expected 0 for bounded point, got %d", got)
	}
	if got := Point(3, DefaultLimit); got != 255 {
		t.Errorf("expected 255 for immediate escape, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	if err := (Bounds{Width: 1, Height: 1}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Bounds{Width: 0, Height: 1}).Validate(); !errors.Is(err, ErrEmptyBounds) {
		t.Errorf("expected ErrEmptyBounds, got %v", err)
	}

	good := Viewport{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}
	if err := good.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := []Viewport{
		{UpperLeft: complex(1, 1), LowerRight: complex(-1, -1)},
		{UpperLeft: complex(-1, -1), LowerRight: complex(1, 1)},
		{UpperLeft: complex(0, 0), LowerRight: complex(0, 0)},
	}
	for _, v := range bad {
		if err := v.Validate(); !errors.Is(err, ErrDegenerateViewport) {
			t.Errorf("%v: expected ErrDegenerateViewport, got %v", v, err)
		}
	}
}

func BenchmarkEscapeTimeBounded(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EscapeTime(complex(-0.1, 0.1), DefaultLimit)
	}
}

func BenchmarkEscapeTimeEscaping(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EscapeTime(complex(-0.75, 0.1), DefaultLimit)
	}
}
