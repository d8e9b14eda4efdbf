package must

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// RingsParams holds the diameters of a set of concentric flat rings.
type RingsParams struct {
	Diameters []float64
}

// RingSet is a concentric ring nest around the origin. The label
// anchors sit centered in the outermost annulus, above and below.
type RingSet struct {
	Radii       []float64 // descending
	LabelTop    r2.Vec
	LabelBottom r2.Vec
}

// Rings lays out concentric rings for circle blanks and ring flanges.
func Rings(p RingsParams) RingSet {
	if len(p.Diameters) == 0 {
		panic("no diameters")
	}
	radii := make([]float64, len(p.Diameters))
	for i, d := range p.Diameters {
		if d <= 0 {
			panic("diameter <= 0")
		}
		radii[i] = d / 2
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(radii)))

	second := 0.0
	if len(radii) > 1 {
		second = radii[1]
	}
	y := radii[0] - (radii[0]-second)*0.5
	return RingSet{
		Radii:       radii,
		LabelTop:    r2.Vec{Y: y},
		LabelBottom: r2.Vec{Y: -y},
	}
}
