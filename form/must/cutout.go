package must

import (
	"math"

	"github.com/barmakon4ik1/unfold"
)

// CutoutParams describe a perpendicular branch cylinder piercing a main
// cylinder, both measured on the outside.
type CutoutParams struct {
	MainDiameter   float64 // D of the pierced cylinder
	BranchDiameter float64 // d of the branch
	Offset         float64 // distance between the axes across the main section
	Steps          int     // samples per revolution, 0 selects the default
}

// CutoutSheet is the developed branch hole on the unrolled main
// cylinder. Contour is nil when the cylinders do not intersect.
type CutoutSheet struct {
	Contour unfold.Contour
	CenterX float64 // developed X of the branch axis
	Radius  float64 // branch radius
}

// Cutout develops the hole a branch cylinder cuts into the main
// cylinder surface.
func Cutout(p CutoutParams) CutoutSheet {
	if p.MainDiameter <= 0 {
		panic("main diameter <= 0")
	}
	if p.BranchDiameter <= 0 {
		panic("branch diameter <= 0")
	}
	R := p.MainDiameter / 2
	r := p.BranchDiameter / 2
	s := CutoutSheet{
		Contour: unfold.IntersectionUnwrap(R, r, p.Offset, p.Steps, 0),
		Radius:  r,
	}
	s.CenterX = R * math.Asin(unfold.Clamp(p.Offset/R, -1, 1))
	return s
}
