// Package form wraps the panicking part builders of form/must into
// error-returning constructors for callers that prefer not to recover
// themselves.
package form

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/barmakon4ik1/unfold/form/must"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrNoIntersection is returned when a branch cutout misses the main
// cylinder entirely.
var ErrNoIntersection = errors.New("cylinders do not intersect")

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Cutout develops a branch hole on an unrolled main cylinder. Unlike
// the must variant, a missing intersection is reported as
// ErrNoIntersection.
func Cutout(p must.CutoutParams) (s must.CutoutSheet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	s = must.Cutout(p)
	if s.Contour == nil {
		return s, ErrNoIntersection
	}
	return s, err
}

// Shell unrolls a cylindrical shell into its rectangle.
func Shell(p must.ShellParams) (s must.ShellSheet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Shell(p), err
}

// ShellLayout unrolls a shell together with its placed cutouts.
func ShellLayout(l must.ShellLayout) (res must.LayoutResult, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return l.Build(), err
}

// ConeSector develops a right truncated cone into an annular sector.
func ConeSector(p must.ConeParams) (s must.ConeSheet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.ConeSector(p), err
}

// HalfCone builds the right half development of a cone with one
// vertical generator.
func HalfCone(d, h float64, n int) (pts []r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.HalfCone(d, h, n), err
}

// TruncatedConeFromHalves develops a reducer with one vertical
// generator.
func TruncatedConeFromHalves(d1, d2, h float64, n int) (s must.ReducerSheet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.TruncatedConeFromHalves(d1, d2, h, n), err
}

// ObliqueCone develops a tilted-axis cone as a faceted fan.
func ObliqueCone(d, h, alphaDeg float64, n int) (s must.ObliqueSheet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.ObliqueCone(d, h, alphaDeg, n), err
}

// Nozzle develops a branch stub with its saddle top edge.
func Nozzle(p must.NozzleParams) (s must.NozzleSheet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Nozzle(p), err
}

// Head builds a torispherical head section profile.
func Head(p must.HeadParams) (s must.HeadSheet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Head(p), err
}

// Rings lays out a concentric ring nest.
func Rings(p must.RingsParams) (s must.RingSet, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Rings(p), err
}
