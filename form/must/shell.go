package must

import (
	"math"
	"sort"

	"github.com/barmakon4ik1/unfold"
	"gonum.org/v1/gonum/spatial/r2"
)

// ShellParams describe a cylindrical shell to unroll into a rectangle.
// SeamAngle is the circumferential angle (degrees) of the longitudinal
// seam; the seam maps to both vertical edges of the development.
type ShellParams struct {
	Diameter   float64
	Length     float64
	SeamAngle  float64
	Clockwise  bool // unroll direction around the cylinder
	WeldTop    float64
	WeldBottom float64
}

// AxisStation is a reference generator line of the unrolled shell.
type AxisStation struct {
	Angle float64 // circumferential angle, degrees
	X     float64 // developed coordinate from the seam edge
	Seam  bool    // station coincides with a development edge
}

// ShellSheet is the developed cylinder rectangle. Width is the outer
// circumference, Height the cylinder length plus weld allowances.
type ShellSheet struct {
	Params   ShellParams
	Outline  unfold.Contour
	Width    float64
	Height   float64
	Stations []AxisStation
}

// UnrollX maps a circumferential angle (degrees) onto the developed X
// coordinate of a cylinder unrolled at seam angle seamDeg. The seam
// itself maps to zero; clockwise selects the walking direction around
// the cylinder.
func UnrollX(angleDeg, diameter, seamDeg float64, clockwise bool) float64 {
	width := math.Pi * diameter
	var rel float64
	if clockwise {
		rel = math.Mod(seamDeg-angleDeg, 360)
	} else {
		rel = math.Mod(angleDeg-seamDeg, 360)
	}
	if rel < 0 {
		rel += 360
	}
	return rel / 360 * width
}

// Shell unrolls a cylindrical shell. Stations cover the quadrant angles
// and the seam, ordered by developed X; the seam appears at both edges.
func Shell(p ShellParams) ShellSheet {
	if p.Diameter <= 0 {
		panic("diameter <= 0")
	}
	if p.Length <= 0 {
		panic("length <= 0")
	}
	if p.WeldTop < 0 || p.WeldBottom < 0 {
		panic("weld allowance < 0")
	}

	width := math.Pi * p.Diameter
	height := p.Length + p.WeldTop + p.WeldBottom

	outline := unfold.FromPoints([]r2.Vec{
		{X: 0, Y: 0},
		{X: width, Y: 0},
		{X: width, Y: height},
		{X: 0, Y: height},
		{X: 0, Y: 0},
	})

	seam := math.Mod(p.SeamAngle, 360)
	if seam < 0 {
		seam += 360
	}
	angles := map[float64]bool{seam: true}
	for _, a := range []float64{0, 90, 180, 270} {
		if _, ok := angles[a]; !ok {
			angles[a] = false
		}
	}
	stations := make([]AxisStation, 0, len(angles)+1)
	for a, isSeam := range angles {
		stations = append(stations, AxisStation{
			Angle: a,
			X:     UnrollX(a, p.Diameter, seam, p.Clockwise),
			Seam:  isSeam,
		})
	}
	// The seam shows up once more at the far edge.
	stations = append(stations, AxisStation{Angle: seam, X: width, Seam: true})
	sort.Slice(stations, func(i, j int) bool { return stations[i].X < stations[j].X })

	return ShellSheet{
		Params:   p,
		Outline:  outline,
		Width:    width,
		Height:   height,
		Stations: stations,
	}
}
