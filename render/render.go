// Package render writes drawings out as DXF, SVG or PNG files.
package render

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/barmakon4ik1/unfold"
	"github.com/barmakon4ik1/unfold/drawing"
	"gonum.org/v1/gonum/spatial/r2"
)

// WriteFile renders d into path, picking the backend from the file
// extension (.dxf, .svg or .png).
func WriteFile(path string, d *drawing.Drawing) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dxf":
		return WriteDXF(path, d)
	case ".svg":
		return WriteSVG(path, d)
	case ".png":
		return WritePNG(path, d)
	default:
		return fmt.Errorf("render %s: unknown output format", path)
	}
}

// Flatten tessellates the arcs of a contour into straight segments no
// wider than maxDeg degrees of sweep, for backends without arc
// primitives. The returned points include both endpoints.
func Flatten(c unfold.Contour, maxDeg float64) []r2.Vec {
	if len(c) == 0 {
		return nil
	}
	if maxDeg <= 0 {
		maxDeg = 5
	}
	maxSweep := unfold.DtoR(maxDeg)
	pts := []r2.Vec{c[0].P}
	for i := 0; i+1 < len(c); i++ {
		start, end := c[i].P, c[i+1].P
		b := c[i].Bulge
		if b == 0 {
			pts = append(pts, end)
			continue
		}
		center, radius, sweep := unfold.ArcCenter(start, end, b)
		if math.IsInf(radius, 0) {
			pts = append(pts, end)
			continue
		}
		n := int(math.Ceil(math.Abs(sweep) / maxSweep))
		a0 := math.Atan2(start.Y-center.Y, start.X-center.X)
		for k := 1; k < n; k++ {
			a := a0 + sweep*float64(k)/float64(n)
			pts = append(pts, unfold.Polar(center, radius, a))
		}
		pts = append(pts, end)
	}
	return pts
}

// dimensionLines expands a linear dimension into its extension lines,
// dimension line and measurement text.
func dimensionLines(e drawing.Dimension) (lines [3][2]r2.Vec, textAt r2.Vec, value float64) {
	if e.Vertical {
		x := math.Max(e.A.X, e.B.X) + e.Offset
		lines = [3][2]r2.Vec{
			{e.A, {X: x, Y: e.A.Y}},
			{e.B, {X: x, Y: e.B.Y}},
			{{X: x, Y: e.A.Y}, {X: x, Y: e.B.Y}},
		}
		textAt = r2.Vec{X: x + 10, Y: (e.A.Y + e.B.Y) / 2}
		value = math.Abs(e.B.Y - e.A.Y)
		return lines, textAt, value
	}
	y := math.Max(e.A.Y, e.B.Y) + e.Offset
	lines = [3][2]r2.Vec{
		{e.A, {X: e.A.X, Y: y}},
		{e.B, {X: e.B.X, Y: y}},
		{{X: e.A.X, Y: y}, {X: e.B.X, Y: y}},
	}
	textAt = r2.Vec{X: (e.A.X + e.B.X) / 2, Y: y + 10}
	value = math.Abs(e.B.X - e.A.X)
	return lines, textAt, value
}
