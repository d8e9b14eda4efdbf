package must

import (
	"math"

	"github.com/barmakon4ik1/unfold"
	"gonum.org/v1/gonum/spatial/r2"
)

// ConeParams describe a right truncated cone. A zero TopDiameter is a
// full cone.
type ConeParams struct {
	BaseDiameter float64
	TopDiameter  float64
	Height       float64
}

// ConeSheet is the annular sector development of a right cone. The
// sector is symmetric about the vertical through the insert point at
// the origin; Center is the apex of the generating circles.
type ConeSheet struct {
	Params      ConeParams
	Outline     unfold.Contour
	OuterRadius float64 // slant radius of the base arc
	InnerRadius float64 // slant radius of the top arc
	Theta       float64 // included sector angle, radians
	Center      r2.Vec
}

// ConeSector develops a right truncated cone into an annular sector.
// The outline runs inner-right, outer-right, over the outer arc to
// outer-left, inner-left and back over the inner arc.
func ConeSector(p ConeParams) ConeSheet {
	if p.BaseDiameter <= 0 {
		panic("base diameter <= 0")
	}
	if p.TopDiameter < 0 {
		panic("top diameter < 0")
	}
	if p.Height <= 0 {
		panic("height <= 0")
	}
	if p.TopDiameter > p.BaseDiameter {
		p.TopDiameter, p.BaseDiameter = p.BaseDiameter, p.TopDiameter
	}

	dd := p.BaseDiameter - p.TopDiameter
	k := 0.5 * math.Sqrt(1+4*p.Height*p.Height/(dd*dd))
	r1 := p.BaseDiameter * k
	r2o := p.TopDiameter * k
	theta := math.Pi * p.BaseDiameter / r1
	if math.IsInf(theta, 0) || math.IsNaN(theta) {
		panic("degenerate cone geometry")
	}

	sin, cos := math.Sincos(theta / 2)
	center := r2.Vec{Y: -(r1 - (r1-r2o)*0.5)}
	bulge := math.Tan(theta / 4)

	outline := unfold.Contour{
		{P: r2.Add(center, r2.Vec{X: r2o * sin, Y: r2o * cos})},
		{P: r2.Add(center, r2.Vec{X: r1 * sin, Y: r1 * cos}), Bulge: bulge},
		{P: r2.Add(center, r2.Vec{X: -r1 * sin, Y: r1 * cos})},
		{P: r2.Add(center, r2.Vec{X: -r2o * sin, Y: r2o * cos}), Bulge: -bulge},
	}
	outline = append(outline, unfold.Vertex{P: outline[0].P})

	return ConeSheet{
		Params:      p,
		Outline:     outline,
		OuterRadius: r1,
		InnerRadius: r2o,
		Theta:       theta,
		Center:      center,
	}
}

// HalfCone builds the right half of the development of a cone whose
// one generator is vertical. D is the base diameter of the half, H the
// cone height and n the facet count over the half circumference. The
// apex sits at the origin; points run from the vertical generator
// towards increasing X by chaining equal base chords.
func HalfCone(D, H float64, n int) []r2.Vec {
	if D <= 0 {
		panic("diameter <= 0")
	}
	if H <= 0 {
		panic("height <= 0")
	}
	if n < 4 {
		panic("facet count < 4")
	}

	apex := r2.Vec{}
	first := math.Hypot(D, H)
	pts := []r2.Vec{{Y: -first}}
	chord := math.Pi * D / float64(n)

	prev := pts[0]
	for i := 1; i <= n/2; i++ {
		a := unfold.DtoR(float64(i) * 180 / float64(n))
		l := math.Hypot(D*math.Cos(a), H)
		xs, ok := unfold.CircleCircleIntersection(apex, l, prev, chord)
		if !ok {
			break
		}
		next := xs[0]
		if len(xs) > 1 && xs[1].X > next.X {
			next = xs[1]
		}
		pts = append(pts, next)
		prev = next
	}
	return pts
}

// ReducerSheet is the development of a truncated cone with one
// vertical generator, built from two mirrored half-cone curves around
// a shared apex at the origin.
type ReducerSheet struct {
	Outline unfold.Contour // closed, base arc and top arc joined by the side generators
	Lower   unfold.Contour // base curve, left to right, open
	Upper   unfold.Contour // top curve, left to right, open
}

// TruncatedConeFromHalves develops a reducer of base diameter d2,
// top diameter d1 and height h with one vertical generator. n is the
// facet count per half circumference.
func TruncatedConeFromHalves(d1, d2, h float64, n int) ReducerSheet {
	if d1 < 0 {
		panic("top diameter < 0")
	}
	if d2 <= d1 {
		panic("base diameter <= top diameter")
	}
	if h <= 0 {
		panic("height <= 0")
	}

	hFull := h * d2 / (d2 - d1)
	lower := mirrorCurve(HalfCone(d2, hFull, n))
	upper := mirrorCurve(HalfCone(d1, hFull-h, n))

	apex := r2.Vec{}
	lo := curveWithApexBulges(lower, apex)
	up := curveWithApexBulges(upper, apex)

	// Base curve left to right, straight generator up, top curve back
	// right to left, straight generator down to close.
	outline := make(unfold.Contour, 0, len(lo)+len(up)+1)
	outline = append(outline, lo...)
	outline = append(outline, up.Reverse()...)
	outline = append(outline, unfold.Vertex{P: lo[0].P})

	return ReducerSheet{Outline: outline, Lower: lo, Upper: up}
}

// mirrorCurve completes a right half curve to a full left-to-right one.
func mirrorCurve(half []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, 0, 2*len(half)-1)
	for i := len(half) - 1; i > 0; i-- {
		out = append(out, r2.Vec{X: -half[i].X, Y: half[i].Y})
	}
	return append(out, half...)
}

// curveWithApexBulges arcs every chord of the curve about the apex.
func curveWithApexBulges(pts []r2.Vec, apex r2.Vec) unfold.Contour {
	c := unfold.FromPoints(pts)
	for i := 0; i+1 < len(c); i++ {
		c[i].Bulge = unfold.BulgeFromCenter(c[i].P, c[i+1].P, apex)
	}
	return c
}

// ObliqueSheet is the faceted development of an oblique (tilted axis)
// cone. Outline is the closed fan polygon through the apex; Fan holds
// the base points for drawing the generator lines; Generatrix the true
// generator lengths per facet corner.
type ObliqueSheet struct {
	Outline    unfold.Contour
	Fan        []r2.Vec
	Generatrix []float64
	LMin, LMax float64
	Scale      float64
}

// ObliqueCone develops a cone of base diameter D and height H whose
// axis leans alphaDeg degrees off the vertical, approximated as a
// pyramid with n facets. Facet corner distances are the true generator
// lengths; the fan is then scaled so the developed base polygon length
// matches the base circumference.
func ObliqueCone(D, H, alphaDeg float64, n int) ObliqueSheet {
	if D <= 0 {
		panic("diameter <= 0")
	}
	if H <= 0 {
		panic("height <= 0")
	}
	if alphaDeg < 0 || alphaDeg >= 90 {
		panic("tilt angle outside [0, 90)")
	}
	if n < 4 || n%2 != 0 {
		panic("facet count must be even and >= 4")
	}

	R := D / 2
	sa := math.Sin(unfold.DtoR(alphaDeg))
	gen := make([]float64, n)
	lmin, lmax := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		phi := unfold.DtoR(360 * float64(i) / float64(n))
		l := math.Sqrt(R*R*(1+sa*sa-2*math.Cos(phi)*sa) + H*H)
		gen[i] = l
		lmin = math.Min(lmin, l)
		lmax = math.Max(lmax, l)
	}

	fan := make([]r2.Vec, n)
	var arc float64
	for i := 0; i < n; i++ {
		theta := unfold.DtoR(360 * float64(i) / float64(n))
		fan[i] = r2.Vec{X: gen[i] * math.Cos(theta), Y: gen[i] * math.Sin(theta)}
		if i > 0 {
			arc += r2.Norm(r2.Sub(fan[i], fan[i-1]))
		}
	}
	arc += r2.Norm(r2.Sub(fan[0], fan[n-1]))
	scale := 1.0
	if arc > 0 {
		scale = 2 * math.Pi * R / arc
	}
	for i := range fan {
		fan[i] = r2.Scale(scale, fan[i])
	}

	outline := make(unfold.Contour, 0, n+3)
	outline = append(outline, unfold.Vertex{})
	for _, p := range fan {
		outline = append(outline, unfold.Vertex{P: p})
	}
	outline = append(outline, unfold.Vertex{P: fan[0]}, unfold.Vertex{})

	return ObliqueSheet{
		Outline:    outline,
		Fan:        fan,
		Generatrix: gen,
		LMin:       lmin,
		LMax:       lmax,
		Scale:      scale,
	}
}
