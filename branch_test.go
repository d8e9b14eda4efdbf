package unfold

import (
	"math"
	"reflect"
	"testing"
)

func TestIntersectionUnwrapConcrete(t *testing.T) {
	// Branch diameter 61 on a shell of diameter 790, axis offset -175.
	const (
		R      = 395.0
		r      = 30.5
		offset = -175.0
	)
	c := IntersectionUnwrap(R, r, offset, 180, 0)
	if c == nil {
		t.Fatal("expected a contour, got nil")
	}
	if !c.IsClosed(DedupTolerance) {
		t.Error("contour is not closed")
	}
	if len(c) < 5 {
		t.Errorf("contour too coarse: %d vertices", len(c))
	}
	for i, v := range c {
		if math.Abs(v.P.Y) > r+1e-9 {
			t.Errorf("vertex %d: |y| = %g exceeds branch radius %g", i, math.Abs(v.P.Y), r)
		}
	}
	b := c.Bounds()
	if math.Abs(b.Max.Y+b.Min.Y) > 1e-6 {
		t.Errorf("contour not symmetric about the developed axis: y in [%g, %g]", b.Min.Y, b.Max.Y)
	}
	if c[0].Bulge != c[len(c)-2].Bulge {
		t.Error("closing bulge was not mirrored onto the first vertex")
	}
}

func TestIntersectionUnwrapCenteredSymmetry(t *testing.T) {
	c := IntersectionUnwrap(100, 20, 0, 180, 0)
	if c == nil {
		t.Fatal("expected a contour, got nil")
	}
	b := c.Bounds()
	if math.Abs(b.Max.X+b.Min.X) > 1e-9 {
		t.Errorf("centered branch should develop symmetric in x, got [%g, %g]", b.Min.X, b.Max.X)
	}
	if b.Max.Y > 20 || b.Max.Y < 18 {
		t.Errorf("peak height %g outside expected range just below r", b.Max.Y)
	}
}

func TestIntersectionUnwrapEmpty(t *testing.T) {
	for _, tc := range []struct {
		name        string
		R, r, off   float64
	}{
		{"zero branch", 100, 0, 0},
		{"negative branch", 100, -1, 0},
		{"zero main", 0, 10, 0},
		{"axis beyond surface", 150, 30.5, -175},
		{"far offset", 100, 20, 500},
	} {
		if c := IntersectionUnwrap(tc.R, tc.r, tc.off, 180, 0); c != nil {
			t.Errorf("%s: expected nil contour, got %d vertices", tc.name, len(c))
		}
	}
}

func TestIntersectionUnwrapPointCountScales(t *testing.T) {
	const (
		R      = 395.0
		r      = 30.5
		offset = -175.0
	)
	span := math.Asin((offset+r)/R) - math.Asin((offset-r)/R)
	want := int(math.Ceil(180 * span / (2 * math.Pi)))
	c := IntersectionUnwrap(R, r, offset, 180, 0)
	// Upper branch carries want samples, the mirror all but the shared
	// endpoints, plus the closing vertex.
	got := len(c)
	if got < want || got > 2*want {
		t.Errorf("vertex count %d not in scaled range [%d, %d]", got, want, 2*want)
	}
}

func TestIntersectionUnwrapDeterministic(t *testing.T) {
	a := IntersectionUnwrap(395, 30.5, -175, 180, 0)
	b := IntersectionUnwrap(395, 30.5, -175, 180, 0)
	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs produced different contours")
	}
}

func TestAngleWithin(t *testing.T) {
	for _, tc := range []struct {
		s, e, v float64
		want    bool
	}{
		{0, 1, 0.5, true},
		{0, 1, 1.5, false},
		{3, 1, 0.5, true},  // wrapping interval
		{3, 1, 3.5, true},  // wrapping interval
		{3, 1, 2, false},
	} {
		if got := angleWithin(tc.s, tc.e, tc.v); got != tc.want {
			t.Errorf("angleWithin(%g, %g, %g) = %v, want %v", tc.s, tc.e, tc.v, got, tc.want)
		}
	}
}
