// Package drawing assembles flat-pattern sheets into layered 2D
// drawings: part outlines, reference axes, dimensions and shop texts.
// A Drawing is backend-neutral; the render package writes it out.
package drawing

import (
	"math"

	"github.com/barmakon4ik1/unfold"
	"gonum.org/v1/gonum/spatial/r2"
)

// Entity is a drawable primitive on a named layer.
type Entity interface {
	entityLayer() string
}

// Line is a straight segment.
type Line struct {
	A, B  r2.Vec
	Layer string
}

// Circle is a full circle.
type Circle struct {
	Center r2.Vec
	Radius float64
	Layer  string
}

// Text is a single-line text anchored at At.
type Text struct {
	At     r2.Vec
	Value  string
	Height float64
	Layer  string
}

// Dimension is a linear dimension between A and B. Vertical selects
// the measured direction; Offset the distance of the dimension line
// from the measured points.
type Dimension struct {
	A, B     r2.Vec
	Offset   float64
	Vertical bool
	Layer    string
}

// Polyline is a contour with arc bulges. Closed contours may carry
// the coincident end vertex or rely on the flag alone.
type Polyline struct {
	Contour unfold.Contour
	Closed  bool
	Layer   string
}

func (e Line) entityLayer() string      { return e.Layer }
func (e Circle) entityLayer() string    { return e.Layer }
func (e Text) entityLayer() string      { return e.Layer }
func (e Dimension) entityLayer() string { return e.Layer }
func (e Polyline) entityLayer() string  { return e.Layer }

// Drawing is an ordered list of entities.
type Drawing struct {
	Entities []Entity
}

// Add appends entities to the drawing.
func (d *Drawing) Add(es ...Entity) {
	d.Entities = append(d.Entities, es...)
}

// Merge appends all entities of o.
func (d *Drawing) Merge(o *Drawing) {
	d.Entities = append(d.Entities, o.Entities...)
}

// Layers returns the distinct layer names in order of first use.
func (d *Drawing) Layers() []string {
	seen := map[string]bool{}
	var names []string
	for _, e := range d.Entities {
		l := e.entityLayer()
		if !seen[l] {
			seen[l] = true
			names = append(names, l)
		}
	}
	return names
}

// Bounds returns the bounding box over all entities. Text extents are
// approximated by their anchor points.
func (d *Drawing) Bounds() r2.Box {
	var (
		box  r2.Box
		some bool
	)
	grow := func(p r2.Vec) {
		if !some {
			box = r2.Box{Min: p, Max: p}
			some = true
			return
		}
		box.Min = minElem(box.Min, p)
		box.Max = maxElem(box.Max, p)
	}
	for _, e := range d.Entities {
		switch t := e.(type) {
		case Line:
			grow(t.A)
			grow(t.B)
		case Circle:
			grow(r2.Sub(t.Center, r2.Vec{X: t.Radius, Y: t.Radius}))
			grow(r2.Add(t.Center, r2.Vec{X: t.Radius, Y: t.Radius}))
		case Text:
			grow(t.At)
		case Dimension:
			grow(t.A)
			grow(t.B)
		case Polyline:
			b := t.Contour.Bounds()
			grow(b.Min)
			grow(b.Max)
		}
	}
	return box
}

func minElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

func maxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}
