package must

import (
	"math"

	"github.com/barmakon4ik1/unfold"
	"gonum.org/v1/gonum/spatial/r2"
)

// NozzleParams describe a branch stub welded onto a main pipe. The
// development is the unrolled branch with its saddle-shaped top edge.
type NozzleParams struct {
	BranchDiameter float64 // outer diameter of the stub
	MainDiameter   float64 // outer diameter of the pipe it sits on
	Length         float64 // stub length from the main pipe axis plane
	Weld           float64 // weld allowance added to the length
	Offset         float64 // branch axis offset across the main section
	Thickness      float64 // wall thickness, used by the mid-wall correction
	MidWall        bool    // unroll at mid-wall diameter instead of outside
	Accuracy       int     // facet count across the width, 0 selects the default
}

// NozzleSheet is the developed stub. Width is the unrolled
// circumference; Top the saddle curve left to right with arc bulges;
// Outline the closed sheet contour. Generatrix holds the stub height
// per facet station.
type NozzleSheet struct {
	Params     NozzleParams
	Width      float64
	Top        unfold.Contour
	Outline    unfold.Contour
	Generatrix []float64
}

// Nozzle develops a branch stub. The saddle height at unrolled station
// w is the stub length minus the main pipe rise sqrt((D/2)^2 - (r
// sin(w) + offset)^2); the branch must fit inside the pipe silhouette.
func Nozzle(p NozzleParams) NozzleSheet {
	if p.BranchDiameter <= 0 {
		panic("branch diameter <= 0")
	}
	if p.MainDiameter <= 0 {
		panic("main diameter <= 0")
	}
	if p.Length <= 0 {
		panic("length <= 0")
	}
	if p.Accuracy == 0 {
		p.Accuracy = unfold.DefaultSteps
	}
	if p.Accuracy < 4 {
		panic("accuracy < 4")
	}

	radius := p.BranchDiameter / 2
	if p.MidWall {
		radius = (p.BranchDiameter - p.Thickness) / 2
	}
	if radius+math.Abs(p.Offset) > p.MainDiameter/2 {
		panic("branch does not fit inside the main pipe")
	}

	lengthFull := p.Length + p.Weld
	width := 2 * math.Pi * radius
	n := p.Accuracy

	gen := make([]float64, n+1)
	pts := make([]r2.Vec, n+1)
	for i := 0; i <= n; i++ {
		w := 2*math.Pi - float64(i)*math.Pi/(0.5*float64(n))
		dy := math.Sin(w)*radius + p.Offset
		gen[i] = lengthFull - math.Sqrt(p.MainDiameter*p.MainDiameter/4-dy*dy)
		pts[i] = r2.Vec{X: float64(i) * width / float64(n), Y: gen[i]}
	}

	top := unfold.FromPoints(pts).Dedup(unfold.DedupTolerance)
	top = topCurveBulges(top)

	outline := append(unfold.Contour{}, top...)
	outline = append(outline,
		unfold.Vertex{P: r2.Vec{X: width, Y: 0}},
		unfold.Vertex{P: r2.Vec{}},
	)
	outline = outline.Close(unfold.DedupTolerance)

	return NozzleSheet{
		Params:     p,
		Width:      width,
		Top:        top,
		Outline:    outline,
		Generatrix: gen,
	}
}

// topCurveBulges fits the saddle arcs through neighbor triples. The
// curve is open but periodic, so the end vertices borrow the opposite
// neighbors; the very first bulge mirrors its symmetric counterpart.
func topCurveBulges(c unfold.Contour) unfold.Contour {
	n := len(c)
	if n < 3 {
		return c
	}
	for i := 0; i < n-1; i++ {
		p0 := c[(i-1+n)%n].P
		p2 := c[(i+1)%n].P
		center, ok := unfold.Circumcenter(p0, c[i].P, p2)
		if !ok {
			c[i].Bulge = 0
			continue
		}
		c[i].Bulge = unfold.BulgeFromCenter(c[i].P, p2, center)
	}
	c[0].Bulge = c[n-2].Bulge
	return c
}

// ProfilePoint returns the bottom and top point of the generator line
// at fraction frac of the sheet width.
func (s NozzleSheet) ProfilePoint(frac float64) (bottom, top r2.Vec) {
	n := len(s.Generatrix) - 1
	idx := int(frac * float64(n))
	if idx > n {
		idx = n
	}
	x := float64(idx) * s.Width / float64(n)
	return r2.Vec{X: x}, r2.Vec{X: x, Y: s.Generatrix[idx]}
}
