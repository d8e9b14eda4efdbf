package must

import (
	"math"

	"github.com/barmakon4ik1/unfold"
	"gonum.org/v1/gonum/spatial/r2"
)

// HeadParams describe a torispherical (dished) head profile: crown
// radius R, knuckle radius r, outside diameter and wall thickness,
// with a straight flange of the given height.
type HeadParams struct {
	Diameter      float64 // outside diameter
	Thickness     float64
	CrownRadius   float64
	KnuckleRadius float64
	FlangeHeight  float64
}

// HeadSheet is the head cross-section profile. Inner and Outer are the
// closed wall contours; Apex is the crown top point on the inside.
type HeadSheet struct {
	Params HeadParams
	Inner  unfold.Contour
	Outer  unfold.Contour
	Apex   r2.Vec
}

// Head builds the section profile of a torispherical head standing on
// its flange, axis vertical through the origin.
func Head(p HeadParams) HeadSheet {
	if p.Diameter <= 0 {
		panic("diameter <= 0")
	}
	if p.Thickness <= 0 {
		panic("thickness <= 0")
	}
	if p.CrownRadius <= 0 {
		panic("crown radius <= 0")
	}
	if p.KnuckleRadius <= 0 {
		panic("knuckle radius <= 0")
	}
	if p.FlangeHeight <= 0 {
		panic("flange height <= 0")
	}

	b := 0.5*p.Diameter - p.Thickness
	bs := 0.5 * p.Diameter
	r1 := p.CrownRadius - p.KnuckleRadius
	rs := p.CrownRadius + p.Thickness
	h := p.FlangeHeight

	reach := b - p.KnuckleRadius
	if r1*r1 < reach*reach {
		panic("knuckle radius incompatible with diameter")
	}

	// Knuckle centers on the flange top, crown center below it on the
	// axis so both arcs join tangentially.
	knuckleR := r2.Vec{X: b - p.KnuckleRadius, Y: h}
	knuckleL := r2.Vec{X: -(b - p.KnuckleRadius), Y: h}
	crown := r2.Vec{Y: h - math.Sqrt(r1*r1-reach*reach)}

	a := knuckleR.X
	hc := h - crown.Y
	dR := p.CrownRadius / r1
	dRs := rs / r1

	tanR := r2.Vec{X: a * dR, Y: crown.Y + hc*dR} // knuckle-crown joint, inside
	tanL := r2.Vec{X: -tanR.X, Y: tanR.Y}
	tanRO := r2.Vec{X: a * dRs, Y: crown.Y + hc*dRs} // same joint on the outside
	tanLO := r2.Vec{X: -tanRO.X, Y: tanRO.Y}

	inner := headContour(
		[]r2.Vec{{X: b}, {X: b, Y: h}, tanR, tanL, {X: -b, Y: h}, {X: -b}},
		knuckleR, crown, knuckleL,
	)
	outer := headContour(
		[]r2.Vec{{X: bs}, {X: bs, Y: h}, tanRO, tanLO, {X: -bs, Y: h}, {X: -bs}},
		knuckleR, crown, knuckleL,
	)

	return HeadSheet{
		Params: p,
		Inner:  inner,
		Outer:  outer,
		Apex:   r2.Vec{Y: crown.Y + p.CrownRadius},
	}
}

// headContour closes the six profile points and arcs the knuckle and
// crown segments about their centers.
func headContour(pts []r2.Vec, knuckleR, crown, knuckleL r2.Vec) unfold.Contour {
	c := unfold.FromPoints(pts)
	c = append(c, unfold.Vertex{P: pts[0]})
	c[1].Bulge = unfold.BulgeFromCenter(c[1].P, c[2].P, knuckleR)
	c[2].Bulge = unfold.BulgeFromCenter(c[2].P, c[3].P, crown)
	c[3].Bulge = unfold.BulgeFromCenter(c[3].P, c[4].P, knuckleL)
	return c
}
