package render

import (
	"fmt"
	"math"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/barmakon4ik1/unfold"
	"github.com/barmakon4ik1/unfold/drawing"
	"gonum.org/v1/gonum/spatial/r2"
)

const svgMargin = 20

// layerStroke colors the common layer roles; unknown layers render
// black like the contour.
func layerStroke(st drawing.Style, layer string) string {
	switch layer {
	case st.AxisLayer, st.CenterLayer:
		return "crimson"
	case st.DimLayer:
		return "steelblue"
	case st.EngraveLayer:
		return "darkorange"
	case st.MarkLayer, st.NoteLayer:
		return "gray"
	default:
		return "black"
	}
}

// WriteSVG writes the drawing as an SVG file. Arcs are preserved as
// elliptical arc path commands.
func WriteSVG(path string, d *drawing.Drawing) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg create: %w", err)
	}
	defer f.Close()

	st := drawing.DefaultStyle()
	box := d.Bounds()
	w := int(math.Ceil(box.Max.X-box.Min.X)) + 2*svgMargin
	h := int(math.Ceil(box.Max.Y-box.Min.Y)) + 2*svgMargin

	// SVG y grows downwards; flip about the drawing top.
	view := func(p r2.Vec) (float64, float64) {
		return p.X - box.Min.X + svgMargin, box.Max.Y - p.Y + svgMargin
	}

	canvas := svg.New(f)
	canvas.Start(w, h)
	for _, e := range d.Entities {
		writeSVGEntity(canvas, st, view, e)
	}
	canvas.End()
	return nil
}

func writeSVGEntity(canvas *svg.SVG, st drawing.Style, view func(r2.Vec) (float64, float64), e drawing.Entity) {
	stroke := func(layer string) string {
		return fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", layerStroke(st, layer))
	}
	switch t := e.(type) {
	case drawing.Line:
		x1, y1 := view(t.A)
		x2, y2 := view(t.B)
		canvas.Path(fmt.Sprintf("M%.3f,%.3f L%.3f,%.3f", x1, y1, x2, y2), stroke(t.Layer))
	case drawing.Circle:
		x, y := view(t.Center)
		canvas.Circle(round(x), round(y), round(t.Radius), stroke(t.Layer))
	case drawing.Text:
		x, y := view(t.At)
		canvas.Text(round(x), round(y), t.Value,
			fmt.Sprintf("font-size:%.0fpx;fill:%s", math.Max(t.Height, 1), layerStroke(st, t.Layer)))
	case drawing.Dimension:
		lines, at, value := dimensionLines(t)
		for _, l := range lines {
			x1, y1 := view(l[0])
			x2, y2 := view(l[1])
			canvas.Path(fmt.Sprintf("M%.3f,%.3f L%.3f,%.3f", x1, y1, x2, y2), stroke(t.Layer))
		}
		x, y := view(at)
		canvas.Text(round(x), round(y), fmt.Sprintf("%.0f", value),
			fmt.Sprintf("font-size:20px;fill:%s", layerStroke(st, t.Layer)))
	case drawing.Polyline:
		canvas.Path(contourPath(t.Contour, view), stroke(t.Layer))
	}
}

// contourPath encodes a bulged contour as SVG path data. Under the
// y-flip a counterclockwise world arc runs clockwise on screen, so
// positive bulges get sweep flag 0.
func contourPath(c unfold.Contour, view func(r2.Vec) (float64, float64)) string {
	if len(c) == 0 {
		return ""
	}
	var b strings.Builder
	x, y := view(c[0].P)
	fmt.Fprintf(&b, "M%.3f,%.3f", x, y)
	for i := 0; i+1 < len(c); i++ {
		ex, ey := view(c[i+1].P)
		bulge := c[i].Bulge
		if bulge == 0 {
			fmt.Fprintf(&b, " L%.3f,%.3f", ex, ey)
			continue
		}
		_, radius, _ := unfold.ArcCenter(c[i].P, c[i+1].P, bulge)
		if math.IsInf(radius, 0) {
			fmt.Fprintf(&b, " L%.3f,%.3f", ex, ey)
			continue
		}
		large := 0
		if math.Abs(bulge) > 1 {
			large = 1
		}
		sweep := 1
		if bulge > 0 {
			sweep = 0
		}
		fmt.Fprintf(&b, " A%.3f,%.3f 0 %d %d %.3f,%.3f", radius, radius, large, sweep, ex, ey)
	}
	return b.String()
}

func round(x float64) int {
	return int(math.Round(x))
}
