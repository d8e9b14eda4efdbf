package unfold

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// IntersectionUnwrap develops the hole that a perpendicular branch
// cylinder of radius r cuts into a main cylinder of radius R, as seen
// on the unrolled surface of the main cylinder. offset is the distance
// between the two axes projected onto the main cross-section.
//
// The returned contour is closed. X is the developed arc-length
// coordinate R*phi, Y the axial coordinate, and each vertex carries the
// bulge of the arc to the next vertex. A nil contour means the
// cylinders do not intersect or the configuration is degenerate; the
// function never panics on out-of-range geometric input.
//
// steps is the sample count a full revolution of the main cylinder
// would receive; the actual point count scales with the angular span
// of the intersection. steps <= 0 selects DefaultSteps. eps <= 0
// selects a machine-level tolerance.
func IntersectionUnwrap(R, r, offset float64, steps int, eps float64) Contour {
	if R <= 0 || r <= 0 {
		return nil
	}
	// A branch axis beyond the cylinder surface cannot pierce it.
	if math.Abs(offset) > R {
		return nil
	}
	if steps <= 0 {
		steps = DefaultSteps
	}
	if eps <= 0 {
		eps = epsilon
	}

	// Angular bounds where |R*sin(phi) - offset| = r.
	sLow := (offset - r) / R
	sHigh := (offset + r) / R
	if sLow > 1 || sHigh < -1 {
		return nil
	}
	phiA := math.Asin(Clamp(sLow, -1, 1))
	phiB := math.Asin(Clamp(sHigh, -1, 1))
	if phiA > phiB {
		phiA, phiB = phiB, phiA
	}

	// asin leaves a mirrored second interval; take the one containing
	// the angle of deepest branch penetration.
	phiMax := math.Asin(offset / R)
	start, end := phiA, phiB
	if !angleWithin(start, end, phiMax) {
		start, end = pi-phiB, pi-phiA
	}
	if end <= start {
		end += tau
	}
	span := end - start
	if span <= 0 {
		return nil
	}

	n := int(math.Ceil(float64(steps) * span / tau))
	if n < 3 {
		n = 3
	}
	upper := make([]r2.Vec, 0, n)
	for i := 0; i < n; i++ {
		phi := start + span*float64(i)/float64(n-1)
		dy := R*math.Sin(phi) - offset
		v := r*r - dy*dy
		if v < -eps {
			continue
		}
		z := math.Sqrt(math.Max(0, v))
		if z <= epsilon {
			z = 0
		}
		upper = append(upper, r2.Vec{X: R * phi, Y: z})
	}
	if len(upper) == 0 {
		return nil
	}

	// Upper branch forward, mirrored lower branch backwards, skipping
	// the shared end point.
	xy := append([]r2.Vec{}, upper...)
	for i := len(upper) - 2; i >= 0; i-- {
		xy = append(xy, r2.Vec{X: upper[i].X, Y: -upper[i].Y})
	}

	c := FromPoints(xy).Dedup(DedupTolerance).Close(DedupTolerance)
	if len(c) < 3 {
		return nil
	}
	return c.withNeighborBulges()
}

// withNeighborBulges fits a circle through every vertex and its two
// neighbors (wrapping around the contour ends) and stores the bulge of
// the arc towards the next vertex.
func (c Contour) withNeighborBulges() Contour {
	n := len(c)
	for i := 0; i < n; i++ {
		p0 := c[(i-1+n)%n].P
		p1 := c[i].P
		p2 := c[(i+1)%n].P
		center, ok := Circumcenter(p0, p1, p2)
		if !ok {
			c[i].Bulge = 0
			continue
		}
		c[i].Bulge = BulgeFromCenter(p1, p2, center)
	}
	// The first vertex has no usable predecessor on a contour whose
	// endpoints coincide; mirror the bulge of the matching segment.
	if n >= 2 {
		c[0].Bulge = c[n-2].Bulge
	}
	return c
}

// angleWithin reports whether t lies in the angular interval [s, e],
// where an interval with e < s wraps around.
func angleWithin(s, e, t float64) bool {
	if s <= e {
		return s <= t && t <= e
	}
	return t >= s || t <= e
}
