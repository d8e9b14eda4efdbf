package must

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ShellCutout places one branch cutout on a shell development.
// AngleDeg is the circumferential angle of the branch axis, AxialOffset
// its height over the lower shell edge. RadialShift moves the branch
// axis off the main axis plane and feeds the development as the axis
// offset of the piercing.
type ShellCutout struct {
	AngleDeg    float64
	AxialOffset float64
	RadialShift float64
	Branch      CutoutParams
}

// ShellLayout is a shell development together with its branch holes.
type ShellLayout struct {
	Shell   ShellParams
	Cutouts []ShellCutout
}

// PlacedCutout is a developed hole positioned on the shell sheet.
type PlacedCutout struct {
	Sheet CutoutSheet
	At    r2.Vec
}

// LayoutResult holds the unrolled shell and all placed cutouts.
// Cutouts whose branch misses the shell carry a nil contour.
type LayoutResult struct {
	Shell   ShellSheet
	Cutouts []PlacedCutout
}

// Build unrolls the shell and develops every cutout at its developed
// position. The branch main diameter defaults to the shell diameter.
func (l ShellLayout) Build() LayoutResult {
	res := LayoutResult{Shell: Shell(l.Shell)}
	seam := l.Shell.SeamAngle
	for _, c := range l.Cutouts {
		b := c.Branch
		if b.MainDiameter == 0 {
			b.MainDiameter = l.Shell.Diameter
		}
		b.Offset = c.RadialShift
		x := UnrollX(c.AngleDeg, l.Shell.Diameter, seam, l.Shell.Clockwise)
		x = math.Mod(x, res.Shell.Width)
		res.Cutouts = append(res.Cutouts, PlacedCutout{
			Sheet: Cutout(b),
			At:    r2.Vec{X: x, Y: l.Shell.WeldBottom + c.AxialOffset},
		})
	}
	return res
}
