package render

import (
	"fmt"

	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/yofu/dxf"
	dxfdrawing "github.com/yofu/dxf/drawing"
)

// WriteDXF writes the drawing as a DXF file. Arcs are tessellated;
// lightweight polylines in the output carry plain vertices.
func WriteDXF(path string, d *drawing.Drawing) error {
	out := dxf.NewDrawing()
	for _, name := range d.Layers() {
		if name == "0" {
			continue // present in every new drawing
		}
		if _, err := out.AddLayer(name, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("dxf layer %s: %w", name, err)
		}
	}

	for _, e := range d.Entities {
		if err := writeDXFEntity(out, e); err != nil {
			return err
		}
	}
	if err := out.SaveAs(path); err != nil {
		return fmt.Errorf("dxf save %s: %w", path, err)
	}
	return nil
}

func writeDXFEntity(out *dxfdrawing.Drawing, e drawing.Entity) error {
	var err error
	switch t := e.(type) {
	case drawing.Line:
		if err = out.ChangeLayer(t.Layer); err != nil {
			break
		}
		_, err = out.Line(t.A.X, t.A.Y, 0, t.B.X, t.B.Y, 0)
	case drawing.Circle:
		if err = out.ChangeLayer(t.Layer); err != nil {
			break
		}
		_, err = out.Circle(t.Center.X, t.Center.Y, 0, t.Radius)
	case drawing.Text:
		if err = out.ChangeLayer(t.Layer); err != nil {
			break
		}
		_, err = out.Text(t.Value, t.At.X, t.At.Y, 0, t.Height)
	case drawing.Dimension:
		if err = out.ChangeLayer(t.Layer); err != nil {
			break
		}
		lines, at, value := dimensionLines(t)
		for _, l := range lines {
			if _, err = out.Line(l[0].X, l[0].Y, 0, l[1].X, l[1].Y, 0); err != nil {
				return fmt.Errorf("dxf dimension: %w", err)
			}
		}
		_, err = out.Text(fmt.Sprintf("%.0f", value), at.X, at.Y, 0, 20)
	case drawing.Polyline:
		if err = out.ChangeLayer(t.Layer); err != nil {
			break
		}
		pts := Flatten(t.Contour, 0)
		if len(pts) < 2 {
			return nil
		}
		vs := make([][]float64, len(pts))
		for i, p := range pts {
			vs[i] = []float64{p.X, p.Y}
		}
		_, err = out.LwPolyline(t.Closed, vs...)
	}
	if err != nil {
		return fmt.Errorf("dxf entity: %w", err)
	}
	return nil
}
