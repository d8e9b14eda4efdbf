package unfold

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CircleCircleIntersection returns the intersection points of the
// circle of radius r0 around c0 with the circle of radius r1 around c1.
// ok is false when the circles do not intersect, when one contains the
// other, or when they are coincident. Tangent circles yield one point.
func CircleCircleIntersection(c0 r2.Vec, r0 float64, c1 r2.Vec, r1 float64) (pts []r2.Vec, ok bool) {
	d := r2.Norm(r2.Sub(c1, c0))
	if d > r0+r1 || d < math.Abs(r0-r1) || (d < epsilon && math.Abs(r0-r1) < epsilon) {
		return nil, false
	}
	// distance from c0 to the chord along the center line
	x := safeDiv(d*d+r0*r0-r1*r1, 2*d, 0)
	disc := r0*r0 - x*x
	if disc < 0 {
		return nil, false
	}
	y := math.Sqrt(disc)
	cos := safeDiv(c1.X-c0.X, d, 1)
	sin := safeDiv(c1.Y-c0.Y, d, 0)
	if disc < 1e-10 {
		return []r2.Vec{{X: c0.X + x*cos, Y: c0.Y + x*sin}}, true
	}
	return []r2.Vec{
		{X: c0.X + x*cos - y*sin, Y: c0.Y + x*sin + y*cos},
		{X: c0.X + x*cos + y*sin, Y: c0.Y + x*sin - y*cos},
	}, true
}
