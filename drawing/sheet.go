package drawing

import (
	"fmt"
	"math"

	"github.com/barmakon4ik1/unfold"
	"github.com/barmakon4ik1/unfold/form/must"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sheet composers turn developed parts into annotated drawings. The
// insert point at is the lower left corner of the part (the apex for
// fan developments, the nest center for rings).

// ShellDrawing draws an unrolled shell: rectangle, generator axes with
// angle labels, overall and between-axis dimensions, engraving and
// marking near the insert point.
func ShellDrawing(s must.ShellSheet, at r2.Vec, info PartInfo, st Style) *Drawing {
	d := &Drawing{}
	d.Add(Polyline{Contour: s.Outline.Translate(at), Closed: true, Layer: st.ContourLayer})

	// Overall dimensions.
	topLeft := r2.Add(at, r2.Vec{Y: s.Height})
	topRight := r2.Add(at, r2.Vec{X: s.Width, Y: s.Height})
	d.Add(
		Dimension{A: topLeft, B: topRight, Offset: 2*st.DimOffset + 20, Layer: st.DimLayer},
		Dimension{A: at, B: topLeft, Offset: st.DimOffset, Vertical: true, Layer: st.DimLayer},
	)

	// Generator axes and their angle labels. The seam shows as labels
	// on both edges, interior angles as full axis lines.
	var axisTops []r2.Vec
	drawn := map[float64]bool{}
	for _, stn := range s.Stations {
		x := round6(stn.X)
		if drawn[x] {
			continue
		}
		drawn[x] = true
		base := r2.Add(at, r2.Vec{X: stn.X})
		label := fmt.Sprintf("%g°", stn.Angle)
		labelAt := r2.Add(base, r2.Vec{Y: -60})
		edge := stn.X < unfold.DedupTolerance || stn.X > s.Width-unfold.DedupTolerance
		if edge {
			d.Add(Text{At: labelAt, Value: label, Height: st.MarkHeight, Layer: st.AxisLayer})
			continue
		}
		top := r2.Add(base, r2.Vec{Y: s.Height})
		d.Add(
			Line{A: base, B: top, Layer: st.AxisLayer},
			Text{At: labelAt, Value: label, Height: st.MarkHeight, Layer: st.AxisLayer},
		)
		if st.AxisMark > 0 {
			d.Add(
				Line{A: base, B: r2.Add(base, r2.Vec{Y: st.AxisMark}), Layer: st.EngraveLayer},
				Line{A: top, B: r2.Add(top, r2.Vec{Y: -st.AxisMark}), Layer: st.EngraveLayer},
			)
		}
		axisTops = append(axisTops, top)
	}

	// Chained dimensions across the axes.
	prev := topLeft
	for _, p := range axisTops {
		d.Add(Dimension{A: prev, B: p, Offset: st.DimOffset, Layer: st.DimLayer})
		prev = p
	}
	if len(axisTops) > 0 {
		d.Add(Dimension{A: prev, B: topRight, Offset: st.DimOffset, Layer: st.DimLayer})
	}

	addPartTexts(d, at, info, st)
	return d
}

// CutoutDrawing draws a developed branch hole: contour, center cross
// and the branch designation.
func CutoutDrawing(c must.CutoutSheet, at r2.Vec, label string, st Style) *Drawing {
	d := &Drawing{}
	if c.Contour == nil {
		return d
	}
	d.Add(Polyline{Contour: c.Contour.Translate(at), Closed: true, Layer: st.ContourLayer})

	reach := st.AxisOvershoot * c.Radius
	d.Add(
		Line{A: r2.Add(at, r2.Vec{Y: -reach}), B: r2.Add(at, r2.Vec{Y: reach}), Layer: st.CenterLayer},
		Line{A: r2.Add(at, r2.Vec{X: -reach}), B: r2.Add(at, r2.Vec{X: reach}), Layer: st.CenterLayer},
	)
	if label != "" {
		d.Add(Text{
			At:     r2.Add(at, r2.Vec{X: 20, Y: 20}),
			Value:  label,
			Height: st.MarkHeight,
			Layer:  st.NoteLayer,
		})
	}
	return d
}

// LayoutDrawing draws a shell development with all its placed holes.
func LayoutDrawing(res must.LayoutResult, at r2.Vec, info PartInfo, st Style) *Drawing {
	d := ShellDrawing(res.Shell, at, info, st)
	for i, pc := range res.Cutouts {
		label := fmt.Sprintf("N%d", i+1)
		d.Merge(CutoutDrawing(pc.Sheet, r2.Add(at, pc.At), label, st))
	}
	return d
}

// ConeDrawing draws an annular sector development with the cone note
// block to its right.
func ConeDrawing(s must.ConeSheet, at r2.Vec, info PartInfo, st Style) *Drawing {
	d := &Drawing{}
	d.Add(Polyline{Contour: s.Outline.Translate(at), Closed: true, Layer: st.ContourLayer})

	notes := []string{
		fmt.Sprintf("Komm.Nr. %s", info.Label()),
		fmt.Sprintf("D = %.0f mm", s.Params.BaseDiameter),
		fmt.Sprintf("d = %.0f mm", s.Params.TopDiameter),
		fmt.Sprintf("H = %.0f mm", s.Params.Height),
		fmt.Sprintf("Dicke = %g mm", info.Thickness),
		fmt.Sprintf("Wst: %s", info.Material),
	}
	anchor := r2.Add(at, r2.Vec{X: s.OuterRadius * math.Sin(s.Theta/2), Y: 0})
	for i, n := range notes {
		d.Add(Text{
			At:     r2.Add(anchor, r2.Vec{X: st.TextGap, Y: -float64(i) * st.TextGap}),
			Value:  n,
			Height: st.MarkHeight,
			Layer:  st.NoteLayer,
		})
	}
	addPartTexts(d, r2.Add(at, r2.Vec{Y: -s.OuterRadius / 2}), info, st)
	return d
}

// ReducerDrawing draws a vertical-generator reducer development with
// its facet generators.
func ReducerDrawing(s must.ReducerSheet, at r2.Vec, info PartInfo, st Style) *Drawing {
	d := &Drawing{}
	d.Add(Polyline{Contour: s.Outline.Translate(at), Closed: true, Layer: st.ContourLayer})
	lower := s.Lower.Translate(at)
	upper := s.Upper.Translate(at)
	for i := 0; i < len(lower) && i < len(upper); i++ {
		d.Add(Line{A: upper[i].P, B: lower[i].P, Layer: st.AxisLayer})
	}
	addPartTexts(d, r2.Add(at, r2.Vec{Y: lower[len(lower)/2].P.Y}), info, st)
	return d
}

// ObliqueConeDrawing draws a faceted oblique cone fan with its
// generator lines from the apex.
func ObliqueConeDrawing(s must.ObliqueSheet, at r2.Vec, info PartInfo, st Style) *Drawing {
	d := &Drawing{}
	d.Add(Polyline{Contour: s.Outline.Translate(at), Closed: true, Layer: st.ContourLayer})
	for _, p := range s.Fan {
		d.Add(Line{A: at, B: r2.Add(at, p), Layer: st.AxisLayer})
	}
	addPartTexts(d, at, info, st)
	return d
}

// NozzleDrawing draws a developed stub: outline, quarter axes with
// dimensions and the shop texts.
func NozzleDrawing(s must.NozzleSheet, at r2.Vec, info PartInfo, st Style) *Drawing {
	d := &Drawing{}
	d.Add(Polyline{Contour: s.Outline.Translate(at), Closed: true, Layer: st.ContourLayer})

	for _, frac := range []float64{0.25, 0.5, 0.75} {
		bottom, top := s.ProfilePoint(frac)
		b := r2.Add(at, bottom)
		t := r2.Add(at, top)
		d.Add(Line{A: b, B: t, Layer: st.AxisLayer})
		if st.AxisMark > 0 {
			d.Add(
				Line{A: b, B: r2.Add(b, r2.Vec{Y: st.AxisMark}), Layer: st.EngraveLayer},
				Line{A: t, B: r2.Add(t, r2.Vec{Y: -st.AxisMark}), Layer: st.EngraveLayer},
			)
		}
	}

	d.Add(
		Dimension{
			A:      at,
			B:      r2.Add(at, r2.Vec{X: s.Width}),
			Offset: st.DimOffset,
			Layer:  st.DimLayer,
		},
		Dimension{
			A:        at,
			B:        r2.Add(at, r2.Vec{Y: s.Generatrix[0]}),
			Offset:   st.DimOffset,
			Vertical: true,
			Layer:    st.DimLayer,
		},
	)

	note := r2.Add(at, r2.Vec{X: s.Width + st.TextGap, Y: s.Generatrix[0] / 2})
	d.Add(Text{At: note, Value: info.MaterialNote(), Height: st.MarkHeight, Layer: st.NoteLayer})
	addPartTexts(d, at, info, st)
	return d
}

// HeadDrawing draws the head section profile with its designation
// between the walls.
func HeadDrawing(s must.HeadSheet, at r2.Vec, info PartInfo, st Style) *Drawing {
	d := &Drawing{}
	d.Add(
		Polyline{Contour: s.Inner.Translate(at), Closed: true, Layer: st.ContourLayer},
		Polyline{Contour: s.Outer.Translate(at), Closed: true, Layer: st.ContourLayer},
	)
	d.Add(Text{
		At:     r2.Add(at, r2.Vec{Y: s.Params.FlangeHeight / 2}),
		Value:  info.Label(),
		Height: st.MarkHeight,
		Layer:  st.NoteLayer,
	})
	return d
}

// RingsDrawing draws a concentric ring nest with engraving and
// marking inside the outer annulus.
func RingsDrawing(s must.RingSet, at r2.Vec, info PartInfo, st Style) *Drawing {
	d := &Drawing{}
	for _, r := range s.Radii {
		d.Add(Circle{Center: at, Radius: r, Layer: st.ContourLayer})
	}
	d.Add(
		Text{At: r2.Add(at, s.LabelTop), Value: info.Order, Height: st.EngraveHeight, Layer: st.EngraveLayer},
		Text{At: r2.Add(at, s.LabelBottom), Value: info.Order, Height: st.MarkHeight, Layer: st.MarkLayer},
	)
	return d
}

// addPartTexts puts the engraving and marking texts diagonally off the
// insert point, the way parts are tagged for cutting.
func addPartTexts(d *Drawing, at r2.Vec, info PartInfo, st Style) {
	if info.Order == "" {
		return
	}
	p := unfold.Polar(at, 20, unfold.DtoR(45))
	d.Add(
		Text{At: p, Value: info.Order, Height: st.EngraveHeight, Layer: st.EngraveLayer},
		Text{At: unfold.Polar(p, 30, unfold.DtoR(90)), Value: info.Label(), Height: st.MarkHeight, Layer: st.MarkLayer},
	)
}

func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
