package fractal

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestParsePairInt(t *testing.T) {
	tests := []struct {
		in     string
		sep    rune
		l, r   int32
		wantOK bool
	}{
		{"", ',', 0, 0, false},
		{"10,", ',', 0, 0, false},
		{",10", ',', 0, 0, false},
		{"10", ',', 0, 0, false},
		{"10,10", ',', 10, 10, true},
		{"10x10", 'x', 10, 10, true},
		{"-3x7", 'x', -3, 7, true},
		{"1.5x2", 'x', 0, 0, false},
		{"10x10x10", 'x', 0, 0, false},
		{"abc,1", ',', 0, 0, false},
		{"3000000000,1", ',', 0, 0, false},
	}

	for _, tt := range tests {
		l, r, ok := ParsePair[int32](tt.in, tt.sep)
		if ok != tt.wantOK {
			t.Errorf("ParsePair(%q, %q): ok=%v, want %v", tt.in, tt.sep, ok, tt.wantOK)
			continue
		}
		if l != tt.l || r != tt.r {
			t.Errorf("ParsePair(%q, %q) = (%d, %d), want (%d, %d)", tt.in, tt.sep, l, r, tt.l, tt.r)
		}
	}
}

func TestParsePairFloat32(t *testing.T) {
	g := NewWithT(t)

	l, r, ok := ParsePair[float32]("10x10", 'x')
	g.Expect(ok).To(BeTrue())
	g.Expect(l).To(Equal(float32(10)))
	g.Expect(r).To(Equal(float32(10)))

	l, r, ok = ParsePair[float32]("1.05x1.05", 'x')
	g.Expect(ok).To(BeTrue())
	g.Expect(l).To(Equal(float32(1.05)))
	g.Expect(r).To(Equal(float32(1.05)))
}

func TestParsePairUnsigned(t *testing.T) {
	g := NewWithT(t)

	l, r, ok := ParsePair[uint8]("255:0", ':')
	g.Expect(ok).To(BeTrue())
	g.Expect([]uint8{l, r}).To(Equal([]uint8{255, 0}))

	_, _, ok = ParsePair[uint8]("256:0", ':')
	g.Expect(ok).To(BeFalse())

	_, _, ok = ParsePair[uint]("-1:0", ':')
	g.Expect(ok).To(BeFalse())
}

type meters float64

func TestParsePairNamedType(t *testing.T) {
	l, r, ok := ParsePair[meters]("1.5;2.25", ';')
	if !ok || l != 1.5 || r != 2.25 {
		t.Errorf("got (%v, %v, %v), want (1.5, 2.25, true)", l, r, ok)
	}
}

type (
	tiles  int8
	octets uint16
	ratio  float32
)

func TestParsePairNamedKinds(t *testing.T) {
	g := NewWithT(t)

	l8, r8, ok := ParsePair[tiles]("-128:127", ':')
	g.Expect(ok).To(BeTrue())
	g.Expect(l8).To(Equal(tiles(-128)))
	g.Expect(r8).To(Equal(tiles(127)))

	_, _, ok = ParsePair[tiles]("1:128", ':')
	g.Expect(ok).To(BeFalse(), "128 overflows int8")

	lu, ru, ok := ParsePair[octets]("0:65535", ':')
	g.Expect(ok).To(BeTrue())
	g.Expect(lu).To(Equal(octets(0)))
	g.Expect(ru).To(Equal(octets(65535)))

	_, _, ok = ParsePair[octets]("-1:2", ':')
	g.Expect(ok).To(BeFalse(), "negative value for unsigned kind")

	lf, rf, ok := ParsePair[ratio]("0.5:0.25", ':')
	g.Expect(ok).To(BeTrue())
	g.Expect(lf).To(Equal(ratio(0.5)))
	g.Expect(rf).To(Equal(ratio(0.25)))

	_, _, ok = ParsePair[ratio]("1e39:1", ':')
	g.Expect(ok).To(BeFalse(), "1e39 overflows float32")
}

func TestParsePairMultibyteSeparator(t *testing.T) {
	l, r, ok := ParsePair[int]("640×480", '×')
	if !ok || l != 640 || r != 480 {
		t.Errorf("got (%d, %d, %v), want (640, 480, true)", l, r, ok)
	}
}

func TestParsePairRoundTrip(t *testing.T) {
	g := NewWithT(t)

	for _, pair := range [][2]float64{{0, 0}, {-1.25, 3e-9}, {123456.789, -0.1}, {1e300, -1e-300}} {
		s := FormatComplex(complex(pair[0], pair[1]))
		l, r, ok := ParsePair[float64](s, ',')
		g.Expect(ok).To(BeTrue(), s)
		g.Expect([2]float64{l, r}).To(Equal(pair))
	}
}

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in     string
		want   complex128
		wantOK bool
	}{
		{"", 0, false},
		{"10,10", complex(10, 10), true},
		{"21.1,-35.2", complex(21.1, -35.2), true},
		{"-1.20,0.35", complex(-1.20, 0.35), true},
		{"1.0", 0, false},
		{"1.0,", 0, false},
		{"x,1", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseComplex(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseComplex(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseBounds(t *testing.T) {
	g := NewWithT(t)

	b, ok := ParseBounds("1000x750")
	g.Expect(ok).To(BeTrue())
	g.Expect(b).To(Equal(Bounds{Width: 1000, Height: 750}))
	g.Expect(b.String()).To(Equal("1000x750"))

	for _, bad := range []string{"", "1000", "1000x", "0x10", "10x0", "-5x5", "10,10"} {
		_, ok := ParseBounds(bad)
		g.Expect(ok).To(BeFalse(), bad)
	}
}
