package must

import (
	"math"
	"testing"
)

func TestUnrollX(t *testing.T) {
	const D = 100.0
	width := math.Pi * D
	for _, tc := range []struct {
		name      string
		angle     float64
		seam      float64
		clockwise bool
		want      float64
	}{
		{"seam maps to zero", 0, 0, false, 0},
		{"quarter ccw", 90, 0, false, width / 4},
		{"quarter cw", 90, 0, true, 3 * width / 4},
		{"opposite", 180, 0, false, width / 2},
		{"shifted seam", 180, 90, false, width / 4},
		{"negative wraps", -90, 0, false, 3 * width / 4},
	} {
		if got := UnrollX(tc.angle, D, tc.seam, tc.clockwise); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: x = %g, want %g", tc.name, got, tc.want)
		}
	}
}

func TestShell(t *testing.T) {
	s := Shell(ShellParams{Diameter: 100, Length: 500, SeamAngle: 0, WeldTop: 3, WeldBottom: 2})
	if math.Abs(s.Width-math.Pi*100) > 1e-9 {
		t.Errorf("width = %g, want %g", s.Width, math.Pi*100)
	}
	if s.Height != 505 {
		t.Errorf("height = %g, want 505", s.Height)
	}
	if !s.Outline.IsClosed(1e-9) || len(s.Outline) != 5 {
		t.Errorf("outline: %d vertices, closed=%v", len(s.Outline), s.Outline.IsClosed(1e-9))
	}

	if len(s.Stations) != 5 {
		t.Fatalf("%d stations, want 5", len(s.Stations))
	}
	first, last := s.Stations[0], s.Stations[len(s.Stations)-1]
	if !first.Seam || first.X != 0 {
		t.Errorf("first station %+v, want the seam at x=0", first)
	}
	if !last.Seam || math.Abs(last.X-s.Width) > 1e-9 {
		t.Errorf("last station %+v, want the seam at x=width", last)
	}
	for i := 1; i < len(s.Stations); i++ {
		if s.Stations[i].X < s.Stations[i-1].X {
			t.Errorf("stations not sorted at %d: %+v", i, s.Stations)
		}
	}
}

func TestShellPanics(t *testing.T) {
	mustPanic(t, "diameter", func() { Shell(ShellParams{Diameter: 0, Length: 1}) })
	mustPanic(t, "length", func() { Shell(ShellParams{Diameter: 1, Length: 0}) })
	mustPanic(t, "weld", func() { Shell(ShellParams{Diameter: 1, Length: 1, WeldTop: -1}) })
}

func TestShellLayout(t *testing.T) {
	l := ShellLayout{
		Shell: ShellParams{Diameter: 790, Length: 2000, WeldBottom: 3},
		Cutouts: []ShellCutout{
			{AngleDeg: 90, AxialOffset: 200, Branch: CutoutParams{BranchDiameter: 61}},
			{AngleDeg: 180, AxialOffset: 500, RadialShift: -175, Branch: CutoutParams{BranchDiameter: 61}},
		},
	}
	res := l.Build()
	if len(res.Cutouts) != 2 {
		t.Fatalf("%d cutouts, want 2", len(res.Cutouts))
	}
	for i, pc := range res.Cutouts {
		if pc.Sheet.Contour == nil {
			t.Errorf("cutout %d: no contour", i)
		}
	}
	wantX := UnrollX(90, 790, 0, false)
	if math.Abs(res.Cutouts[0].At.X-wantX) > 1e-9 {
		t.Errorf("cutout 0 at x=%g, want %g", res.Cutouts[0].At.X, wantX)
	}
	if res.Cutouts[0].At.Y != 203 {
		t.Errorf("cutout 0 at y=%g, want weld allowance plus axial offset 203", res.Cutouts[0].At.Y)
	}
}

func TestCutout(t *testing.T) {
	s := Cutout(CutoutParams{MainDiameter: 790, BranchDiameter: 61, Offset: -175})
	if s.Contour == nil {
		t.Fatal("expected a contour")
	}
	if s.Radius != 30.5 {
		t.Errorf("radius = %g, want 30.5", s.Radius)
	}
	wantX := 395 * math.Asin(-175.0/395)
	if math.Abs(s.CenterX-wantX) > 1e-9 {
		t.Errorf("center x = %g, want %g", s.CenterX, wantX)
	}

	if miss := Cutout(CutoutParams{MainDiameter: 300, BranchDiameter: 61, Offset: -175}); miss.Contour != nil {
		t.Error("branch axis beyond the shell should develop no contour")
	}
	mustPanic(t, "main", func() { Cutout(CutoutParams{MainDiameter: 0, BranchDiameter: 1}) })
	mustPanic(t, "branch", func() { Cutout(CutoutParams{MainDiameter: 1, BranchDiameter: 0}) })
}
