package unfold

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Arc encoding helpers. The bulge convention stores tan(sweep/4) per
// polyline segment; sweep is signed, counterclockwise positive.

// Circumcenter returns the center of the circle through a, b and c.
// ok is false when the points are collinear.
func Circumcenter(a, b, c r2.Vec) (center r2.Vec, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < epsilon {
		return r2.Vec{}, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return r2.Vec{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}, true
}

// BulgeFromCenter returns the bulge of the minor arc from start to end
// on the circle around center. The sign follows the direction of
// travel: counterclockwise arcs are positive.
func BulgeFromCenter(start, end, center r2.Vec) float64 {
	a1 := math.Atan2(start.Y-center.Y, start.X-center.X)
	a2 := math.Atan2(end.Y-center.Y, end.X-center.X)
	sweep := normAngle(a2 - a1)
	if math.Abs(sweep) < epsilon {
		return 0
	}
	return math.Tan(sweep / 4)
}

// BulgeFromPoints returns the bulge of the arc from start to end
// passing through mid. mid must lie on the arc, not on the chord.
// Collinear points yield zero.
func BulgeFromPoints(start, mid, end r2.Vec) float64 {
	center, ok := Circumcenter(start, mid, end)
	if !ok {
		return 0
	}
	as := math.Atan2(start.Y-center.Y, start.X-center.X)
	am := math.Atan2(mid.Y-center.Y, mid.X-center.X)
	ae := math.Atan2(end.Y-center.Y, end.X-center.X)

	// Does walking counterclockwise from start to end pass through mid?
	ccwSweep := math.Mod(ae-as, tau)
	if ccwSweep <= 0 {
		ccwSweep += tau
	}
	midSweep := math.Mod(am-as, tau)
	if midSweep < 0 {
		midSweep += tau
	}
	sweep := ccwSweep
	if midSweep > ccwSweep {
		sweep = ccwSweep - tau // minor direction is clockwise
	}
	if math.Abs(sweep) < epsilon {
		return 0
	}
	return math.Tan(sweep / 4)
}

// ArcCenter recovers the arc geometry encoded by a bulge factor.
// It returns the center and radius of the arc from start to end and
// the signed sweep angle 4*atan(bulge). A zero bulge has no arc;
// radius is returned as +Inf with sweep 0.
func ArcCenter(start, end r2.Vec, bulge float64) (center r2.Vec, radius, sweep float64) {
	if bulge == 0 {
		return r2.Scale(0.5, r2.Add(start, end)), math.Inf(1), 0
	}
	sweep = 4 * math.Atan(bulge)
	chord := r2.Sub(end, start)
	clen := r2.Norm(chord)
	if clen < epsilon {
		return start, math.Inf(1), 0
	}
	radius = safeDiv(clen, 2*math.Sin(math.Abs(sweep)/2), math.Inf(1))
	mid := r2.Scale(0.5, r2.Add(start, end))
	u := r2.Scale(1/clen, chord)
	// left normal of the chord; the center sits on it for positive
	// sweep, on the other side for negative. cos flips the side again
	// for arcs larger than a half circle.
	n := r2.Vec{X: -u.Y, Y: u.X}
	h := Sign(bulge) * radius * math.Cos(sweep/2)
	center = r2.Add(mid, r2.Scale(h, n))
	return center, radius, sweep
}
