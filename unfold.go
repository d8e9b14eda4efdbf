// Package unfold computes 2D flat-pattern (developed) outlines of
// sheet-metal parts of revolution: cylindrical shells, truncated and
// oblique cones, branch cutouts, nozzle stubs and torispherical heads.
//
// Outlines are ordered vertex sequences where each vertex may carry a
// bulge factor describing the circular arc to the following vertex,
// the arc encoding used by CAD lightweight polylines:
//
//	bulge = tan(sweep/4)
//
// with sweep the signed included angle of the arc (positive is
// counterclockwise). A bulge of zero is a straight segment.
package unfold

import (
	"math"

	"github.com/barmakon4ik1/unfold/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pi  = math.Pi
	tau = 2 * pi

	tolerance = 1e-9
	epsilon   = 1e-12
)

// DedupTolerance is the coordinate tolerance used to drop repeated
// contour vertices and to decide whether a contour is closed.
const DedupTolerance = 1e-6

// DefaultSteps is the default sample count over a full revolution used
// by the development routines.
const DefaultSteps = 180

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Sign returns the sign of x
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Polar returns the point at distance d and angle theta (radians) from p.
func Polar(p r2.Vec, d, theta float64) r2.Vec {
	return r2.Add(p, d2.Pol{R: d, Theta: theta}.PolarToCartesian())
}

// safeDiv avoids division blowup near zero denominators.
func safeDiv(a, b, fallback float64) float64 {
	if math.Abs(b) < epsilon {
		return fallback
	}
	return a / b
}

// normAngle maps an angle to [-pi, pi).
func normAngle(a float64) float64 {
	m := math.Mod(a+pi, tau)
	if m < 0 {
		m += tau
	}
	return m - pi
}

// Vertex is a single point of a contour. Bulge describes the arc from
// this vertex to the next one; it is ignored on the last vertex of an
// open contour.
type Vertex struct {
	P     r2.Vec
	Bulge float64
}

// Contour is an ordered sequence of vertices with arc bulges.
type Contour []Vertex

// FromPoints returns a contour of straight segments through pts.
func FromPoints(pts []r2.Vec) Contour {
	c := make(Contour, len(pts))
	for i, p := range pts {
		c[i] = Vertex{P: p}
	}
	return c
}

// Vertices returns the contour coordinates without bulge data.
func (c Contour) Vertices() d2.Set {
	s := make(d2.Set, len(c))
	for i, v := range c {
		s[i] = v.P
	}
	return s
}

// Translate returns a copy of the contour moved by v.
func (c Contour) Translate(v r2.Vec) Contour {
	out := make(Contour, len(c))
	for i, vt := range c {
		out[i] = Vertex{P: r2.Add(vt.P, v), Bulge: vt.Bulge}
	}
	return out
}

// Bounds returns the bounding box of the contour vertices. Arc midpoint
// overshoot past the vertices is not accounted for.
func (c Contour) Bounds() r2.Box {
	if len(c) == 0 {
		return r2.Box{}
	}
	vmin := c[0].P
	vmax := c[0].P
	for _, v := range c[1:] {
		vmin = d2.MinElem(vmin, v.P)
		vmax = d2.MaxElem(vmax, v.P)
	}
	return r2.Box{Min: vmin, Max: vmax}
}

// Dedup removes consecutive vertices closer than tol in both axes.
func (c Contour) Dedup(tol float64) Contour {
	if len(c) == 0 {
		return c
	}
	out := Contour{c[0]}
	for _, v := range c[1:] {
		if !d2.EqualWithin(v.P, out[len(out)-1].P, tol) {
			out = append(out, v)
		}
	}
	return out
}

// Close appends the first vertex when the endpoints are further apart
// than tol.
func (c Contour) Close(tol float64) Contour {
	if len(c) < 2 || c.IsClosed(tol) {
		return c
	}
	return append(c, Vertex{P: c[0].P})
}

// IsClosed reports whether first and last vertex coincide within tol.
func (c Contour) IsClosed(tol float64) bool {
	if len(c) < 2 {
		return false
	}
	return d2.EqualWithin(c[0].P, c[len(c)-1].P, tol)
}

// Reverse returns the contour walked in the opposite direction. Bulges
// move to the segment's new start vertex and change sign.
func (c Contour) Reverse() Contour {
	n := len(c)
	out := make(Contour, n)
	for i := 0; i < n; i++ {
		out[i].P = c[n-1-i].P
	}
	for i := 0; i < n-1; i++ {
		out[i].Bulge = -c[n-2-i].Bulge
	}
	return out
}

// ChordLength returns the summed straight-line segment lengths,
// ignoring arc bowing.
func (c Contour) ChordLength() float64 {
	var l float64
	for i := 1; i < len(c); i++ {
		l += r2.Norm(r2.Sub(c[i].P, c[i-1].P))
	}
	return l
}
