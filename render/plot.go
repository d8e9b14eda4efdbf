package render

import (
	"fmt"
	"math"

	"github.com/barmakon4ik1/unfold/drawing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePNG writes a quick preview plot of the drawing. Dimensions are
// reduced to their measured span lines; text renders as point labels.
func WritePNG(path string, d *drawing.Drawing) error {
	p := plot.New()
	p.X.Label.Text = "mm"
	p.Y.Label.Text = "mm"

	var (
		labelXYs plotter.XYs
		labels   []string
	)
	for _, e := range d.Entities {
		switch t := e.(type) {
		case drawing.Line:
			if err := addLine(p, plotter.XYs{{X: t.A.X, Y: t.A.Y}, {X: t.B.X, Y: t.B.Y}}); err != nil {
				return err
			}
		case drawing.Circle:
			xys := make(plotter.XYs, 0, 65)
			for k := 0; k <= 64; k++ {
				s, c := math.Sincos(float64(k) / 64 * 2 * math.Pi)
				xys = append(xys, plotter.XY{
					X: t.Center.X + t.Radius*c,
					Y: t.Center.Y + t.Radius*s,
				})
			}
			if err := addLine(p, xys); err != nil {
				return err
			}
		case drawing.Text:
			labelXYs = append(labelXYs, plotter.XY{X: t.At.X, Y: t.At.Y})
			labels = append(labels, t.Value)
		case drawing.Dimension:
			lines, at, value := dimensionLines(t)
			if err := addLine(p, plotter.XYs{
				{X: lines[2][0].X, Y: lines[2][0].Y},
				{X: lines[2][1].X, Y: lines[2][1].Y},
			}); err != nil {
				return err
			}
			labelXYs = append(labelXYs, plotter.XY{X: at.X, Y: at.Y})
			labels = append(labels, fmt.Sprintf("%.0f", value))
		case drawing.Polyline:
			pts := Flatten(t.Contour, 0)
			xys := make(plotter.XYs, len(pts))
			for i, pt := range pts {
				xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
			}
			if err := addLine(p, xys); err != nil {
				return err
			}
		}
	}

	if len(labels) > 0 {
		lb, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
		if err != nil {
			return fmt.Errorf("png labels: %w", err)
		}
		p.Add(lb)
	}

	if err := p.Save(25*vg.Centimeter, 25*vg.Centimeter, path); err != nil {
		return fmt.Errorf("png save %s: %w", path, err)
	}
	return nil
}

func addLine(p *plot.Plot, xys plotter.XYs) error {
	if len(xys) < 2 {
		return nil
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("png line: %w", err)
	}
	p.Add(l)
	return nil
}
