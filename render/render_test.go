package render_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/barmakon4ik1/unfold"
	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/barmakon4ik1/unfold/form/must"
	"github.com/barmakon4ik1/unfold/render"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestFlattenQuarterArc(t *testing.T) {
	c := unfold.Contour{
		{P: r2.Vec{X: 1}, Bulge: math.Tan(math.Pi / 8)},
		{P: r2.Vec{Y: 1}},
	}
	pts := render.Flatten(c, 5)
	if len(pts) < 18 {
		t.Fatalf("%d points for a 90 degree arc at 5 degree steps", len(pts))
	}
	if pts[0] != c[0].P || pts[len(pts)-1] != c[1].P {
		t.Error("flatten must keep the exact endpoints")
	}
	for i, p := range pts {
		if math.Abs(r2.Norm(p)-1) > 1e-9 {
			t.Errorf("point %d at radius %g, want 1", i, r2.Norm(p))
		}
	}
}

func TestFlattenStraight(t *testing.T) {
	c := unfold.FromPoints([]r2.Vec{{X: 0}, {X: 1}, {X: 1, Y: 1}})
	pts := render.Flatten(c, 5)
	if len(pts) != 3 {
		t.Errorf("straight contour grew to %d points", len(pts))
	}
}

func testDrawing() *drawing.Drawing {
	sheet := must.Shell(must.ShellParams{Diameter: 100, Length: 500})
	info := drawing.PartInfo{Order: "24-1000", Detail: "1", Material: "1.4301", Thickness: 4}
	d := drawing.ShellDrawing(sheet, r2.Vec{}, info, drawing.DefaultStyle())
	d.Add(drawing.Circle{Center: r2.Vec{X: 50, Y: 50}, Radius: 20, Layer: "AM_7"})
	return d
}

func TestWriteDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.dxf")
	if err := render.WriteDXF(path, testDrawing()); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{"LWPOLYLINE", "AM_5", "LASER-TEXT"} {
		if !strings.Contains(s, want) {
			t.Errorf("dxf output missing %q", want)
		}
	}
}

func TestWriteSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.svg")
	if err := render.WriteSVG(path, testDrawing()); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "<path") {
		t.Error("svg output missing expected elements")
	}
	if !strings.Contains(s, "24-1000") {
		t.Error("svg output missing the part label")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.png")
	if err := render.WritePNG(path, testDrawing()); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("png output is empty")
	}
}

func TestWriteFileDispatch(t *testing.T) {
	dir := t.TempDir()
	d := testDrawing()
	for _, name := range []string{"a.dxf", "a.svg", "a.png"} {
		if err := render.WriteFile(filepath.Join(dir, name), d); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if err := render.WriteFile(filepath.Join(dir, "a.step"), d); err == nil {
		t.Error("unknown extension should fail")
	}
}
