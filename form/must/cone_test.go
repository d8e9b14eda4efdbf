package must

import (
	"math"
	"testing"

	"github.com/barmakon4ik1/unfold"
	"gonum.org/v1/gonum/spatial/r2"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestConeSector(t *testing.T) {
	s := ConeSector(ConeParams{BaseDiameter: 200, TopDiameter: 100, Height: 100})

	wantOuter := 100 * math.Sqrt(5)
	if math.Abs(s.OuterRadius-wantOuter) > 1e-9 {
		t.Errorf("outer radius = %g, want %g", s.OuterRadius, wantOuter)
	}
	if math.Abs(s.InnerRadius-wantOuter/2) > 1e-9 {
		t.Errorf("inner radius = %g, want %g", s.InnerRadius, wantOuter/2)
	}
	wantTheta := math.Pi * 200 / wantOuter
	if math.Abs(s.Theta-wantTheta) > 1e-9 {
		t.Errorf("sector angle = %g, want %g", s.Theta, wantTheta)
	}

	if len(s.Outline) != 5 || !s.Outline.IsClosed(1e-9) {
		t.Fatalf("outline: %d vertices, closed=%v", len(s.Outline), s.Outline.IsClosed(1e-9))
	}
	wantBulge := math.Tan(wantTheta / 4)
	if math.Abs(s.Outline[1].Bulge-wantBulge) > 1e-12 {
		t.Errorf("outer arc bulge = %g, want %g", s.Outline[1].Bulge, wantBulge)
	}
	if math.Abs(s.Outline[3].Bulge+wantBulge) > 1e-12 {
		t.Errorf("inner arc bulge = %g, want %g", s.Outline[3].Bulge, -wantBulge)
	}

	// Every outline vertex sits on one of the two slant circles.
	for i, v := range s.Outline {
		d := r2.Norm(r2.Sub(v.P, s.Center))
		if math.Abs(d-s.OuterRadius) > 1e-9 && math.Abs(d-s.InnerRadius) > 1e-9 {
			t.Errorf("vertex %d at radius %g, want %g or %g", i, d, s.InnerRadius, s.OuterRadius)
		}
	}
}

func TestConeSectorSwapsDiameters(t *testing.T) {
	s := ConeSector(ConeParams{BaseDiameter: 100, TopDiameter: 200, Height: 100})
	if s.Params.BaseDiameter != 200 || s.Params.TopDiameter != 100 {
		t.Errorf("diameters not swapped: %+v", s.Params)
	}
}

func TestConeSectorPanics(t *testing.T) {
	mustPanic(t, "base", func() { ConeSector(ConeParams{BaseDiameter: 0, Height: 1}) })
	mustPanic(t, "top", func() { ConeSector(ConeParams{BaseDiameter: 1, TopDiameter: -1, Height: 1}) })
	mustPanic(t, "height", func() { ConeSector(ConeParams{BaseDiameter: 1, Height: 0}) })
}

func TestHalfCone(t *testing.T) {
	const (
		D = 794.0
		H = 1378.58
		n = 72
	)
	pts := HalfCone(D, H, n)
	if len(pts) != n/2+1 {
		t.Fatalf("%d points, want %d", len(pts), n/2+1)
	}
	first := pts[0]
	if first.X != 0 || math.Abs(first.Y+math.Hypot(D, H)) > 1e-9 {
		t.Errorf("first generator end = %v", first)
	}
	chord := math.Pi * D / n
	for i := 1; i < len(pts); i++ {
		got := r2.Norm(r2.Sub(pts[i], pts[i-1]))
		if math.Abs(got-chord) > 1e-6 {
			t.Errorf("chord %d length %g, want %g", i, got, chord)
		}
		if pts[i].X < pts[i-1].X {
			t.Errorf("point %d walks back in x: %v after %v", i, pts[i], pts[i-1])
		}
	}
}

func TestTruncatedConeFromHalves(t *testing.T) {
	s := TruncatedConeFromHalves(267, 794, 918, 36)
	if !s.Outline.IsClosed(1e-9) {
		t.Fatal("outline not closed")
	}
	if len(s.Lower) != len(s.Upper) {
		t.Errorf("curve lengths differ: %d vs %d", len(s.Lower), len(s.Upper))
	}
	// Mirrored halves end symmetric about the vertical through the apex.
	for _, c := range []struct {
		name  string
		curve unfold.Contour
	}{
		{"lower", s.Lower},
		{"upper", s.Upper},
	} {
		first, last := c.curve[0].P, c.curve[len(c.curve)-1].P
		if math.Abs(first.X+last.X) > 1e-9 || math.Abs(first.Y-last.Y) > 1e-9 {
			t.Errorf("%s curve ends not mirrored: %v vs %v", c.name, first, last)
		}
	}
	// Base curve sits further from the apex than the top curve.
	if math.Abs(s.Lower[len(s.Lower)/2].P.Y) <= math.Abs(s.Upper[len(s.Upper)/2].P.Y) {
		t.Error("base curve closer to the apex than the top curve")
	}
}

func TestTruncatedConePanics(t *testing.T) {
	mustPanic(t, "order", func() { TruncatedConeFromHalves(794, 267, 918, 36) })
	mustPanic(t, "height", func() { TruncatedConeFromHalves(267, 794, 0, 36) })
}

func TestObliqueCone(t *testing.T) {
	const (
		D = 520.0
		H = 1000.0
		n = 12
	)
	s := ObliqueCone(D, H, 16.123, n)
	if len(s.Generatrix) != n || len(s.Fan) != n {
		t.Fatalf("fan size %d/%d, want %d", len(s.Fan), len(s.Generatrix), n)
	}
	if !s.Outline.IsClosed(1e-9) {
		t.Error("fan outline not closed")
	}
	if s.LMin > s.LMax {
		t.Errorf("generator range inverted: [%g, %g]", s.LMin, s.LMax)
	}

	// After normalization the developed base polygon matches the base
	// circumference.
	var arc float64
	for i := 1; i < n; i++ {
		arc += r2.Norm(r2.Sub(s.Fan[i], s.Fan[i-1]))
	}
	arc += r2.Norm(r2.Sub(s.Fan[0], s.Fan[n-1]))
	if want := math.Pi * D; math.Abs(arc-want) > 1e-6 {
		t.Errorf("developed base length %g, want %g", arc, want)
	}
}

func TestObliqueConePanics(t *testing.T) {
	mustPanic(t, "tilt", func() { ObliqueCone(100, 100, 90, 12) })
	mustPanic(t, "facets", func() { ObliqueCone(100, 100, 10, 7) })
}
