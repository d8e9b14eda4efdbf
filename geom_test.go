package unfold

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestCircleCircleIntersection(t *testing.T) {
	pts, ok := CircleCircleIntersection(r2.Vec{}, 1, r2.Vec{X: 1}, 1)
	if !ok || len(pts) != 2 {
		t.Fatalf("unit circles at distance 1: ok=%v, %d points", ok, len(pts))
	}
	h := math.Sqrt(3) / 2
	for _, p := range pts {
		if math.Abs(p.X-0.5) > 1e-12 || math.Abs(math.Abs(p.Y)-h) > 1e-12 {
			t.Errorf("intersection %v, want (0.5, ±%g)", p, h)
		}
	}
	if pts[0].Y == pts[1].Y {
		t.Error("expected the two branches, got twice the same point")
	}
}

func TestCircleCircleTangent(t *testing.T) {
	pts, ok := CircleCircleIntersection(r2.Vec{}, 1, r2.Vec{X: 2}, 1)
	if !ok || len(pts) != 1 {
		t.Fatalf("tangent circles: ok=%v, %d points", ok, len(pts))
	}
	if math.Abs(pts[0].X-1) > 1e-9 || math.Abs(pts[0].Y) > 1e-9 {
		t.Errorf("tangent point %v, want (1, 0)", pts[0])
	}
}

func TestCircleCircleNoIntersection(t *testing.T) {
	for _, tc := range []struct {
		name   string
		c0     r2.Vec
		r0     float64
		c1     r2.Vec
		r1     float64
	}{
		{"separate", r2.Vec{}, 1, r2.Vec{X: 5}, 1},
		{"contained", r2.Vec{}, 5, r2.Vec{X: 1}, 1},
		{"coincident", r2.Vec{}, 2, r2.Vec{}, 2},
	} {
		if _, ok := CircleCircleIntersection(tc.c0, tc.r0, tc.c1, tc.r1); ok {
			t.Errorf("%s: expected no intersection", tc.name)
		}
	}
}
