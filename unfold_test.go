package unfold

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestContourDedupClose(t *testing.T) {
	c := FromPoints([]r2.Vec{
		{X: 0, Y: 0},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1e-9},
		{X: 0, Y: 1},
	})
	c = c.Dedup(1e-6)
	if len(c) != 3 {
		t.Fatalf("dedup kept %d vertices, want 3", len(c))
	}
	if c.IsClosed(1e-6) {
		t.Error("open contour reported closed")
	}
	c = c.Close(1e-6)
	if !c.IsClosed(1e-6) || len(c) != 4 {
		t.Errorf("close: %d vertices, closed=%v", len(c), c.IsClosed(1e-6))
	}
	if got := c.Close(1e-6); len(got) != len(c) {
		t.Error("closing a closed contour added a vertex")
	}
}

func TestContourReverse(t *testing.T) {
	c := Contour{
		{P: r2.Vec{X: 0}, Bulge: 0.5},
		{P: r2.Vec{X: 1}, Bulge: -0.25},
		{P: r2.Vec{X: 2}},
	}
	r := c.Reverse()
	if r[0].P.X != 2 || r[2].P.X != 0 {
		t.Errorf("reverse order wrong: %v", r)
	}
	if r[0].Bulge != 0.25 || r[1].Bulge != -0.5 {
		t.Errorf("reversed bulges wrong: %v", r)
	}
	rr := r.Reverse()
	for i := range c {
		if rr[i] != c[i] {
			t.Fatalf("double reverse changed vertex %d: %v != %v", i, rr[i], c[i])
		}
	}
}

func TestContourTranslateBounds(t *testing.T) {
	c := FromPoints([]r2.Vec{{X: -1, Y: 2}, {X: 3, Y: -4}})
	moved := c.Translate(r2.Vec{X: 10, Y: 10})
	b := moved.Bounds()
	if b.Min.X != 9 || b.Min.Y != 6 || b.Max.X != 13 || b.Max.Y != 12 {
		t.Errorf("bounds after translate: %+v", b)
	}
	// The original stays put.
	if c[0].P.X != -1 {
		t.Error("translate mutated the receiver")
	}
}

func TestChordLength(t *testing.T) {
	c := FromPoints([]r2.Vec{{X: 0}, {X: 3}, {X: 3, Y: 4}})
	if got := c.ChordLength(); math.Abs(got-7) > 1e-12 {
		t.Errorf("chord length = %g, want 7", got)
	}
}

func TestPolar(t *testing.T) {
	p := Polar(r2.Vec{X: 1, Y: 1}, 2, DtoR(90))
	if math.Abs(p.X-1) > 1e-12 || math.Abs(p.Y-3) > 1e-12 {
		t.Errorf("polar point = %v, want (1, 3)", p)
	}
}

func TestNormAngle(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, -math.Pi},
		{-math.Pi, -math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{2 * math.Pi, 0},
	} {
		if got := normAngle(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("normAngle(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}
