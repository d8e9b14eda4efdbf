package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/barmakon4ik1/unfold/form"
	"github.com/barmakon4ik1/unfold/form/must"
	"github.com/barmakon4ik1/unfold/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [job.toml]",
	Short: "Unroll a shell with its branch cutouts from a TOML job file",
	Long: `layout reads a TOML description of a shell and its branch openings and
renders the complete development. Example job file:

  [shell]
  diameter = 790
  length = 2000
  seam = 0
  weld_top = 3

  [[cutout]]
  angle = 90
  axial_offset = 200
  branch_diameter = 61

  [[cutout]]
  angle = 180
  axial_offset = 500
  branch_diameter = 210
  radial_shift = 50`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

type layoutJob struct {
	Shell struct {
		Diameter   float64 `toml:"diameter"`
		Length     float64 `toml:"length"`
		Seam       float64 `toml:"seam"`
		Clockwise  bool    `toml:"clockwise"`
		WeldTop    float64 `toml:"weld_top"`
		WeldBottom float64 `toml:"weld_bottom"`
	} `toml:"shell"`
	Cutout []struct {
		Angle          float64 `toml:"angle"`
		AxialOffset    float64 `toml:"axial_offset"`
		RadialShift    float64 `toml:"radial_shift"`
		BranchDiameter float64 `toml:"branch_diameter"`
		Steps          int     `toml:"steps"`
	} `toml:"cutout"`
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	var job layoutJob
	if _, err := toml.DecodeFile(args[0], &job); err != nil {
		return fmt.Errorf("job %s: %w", args[0], err)
	}
	st, err := loadStyle()
	if err != nil {
		return err
	}

	l := must.ShellLayout{
		Shell: must.ShellParams{
			Diameter:   job.Shell.Diameter,
			Length:     job.Shell.Length,
			SeamAngle:  job.Shell.Seam,
			Clockwise:  job.Shell.Clockwise,
			WeldTop:    job.Shell.WeldTop,
			WeldBottom: job.Shell.WeldBottom,
		},
	}
	for _, c := range job.Cutout {
		l.Cutouts = append(l.Cutouts, must.ShellCutout{
			AngleDeg:    c.Angle,
			AxialOffset: c.AxialOffset,
			RadialShift: c.RadialShift,
			Branch: must.CutoutParams{
				BranchDiameter: c.BranchDiameter,
				Steps:          c.Steps,
			},
		})
	}

	res, err := form.ShellLayout(l)
	if err != nil {
		return err
	}
	for i, pc := range res.Cutouts {
		if pc.Sheet.Contour == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: cutout %d does not intersect the shell\n", i+1)
		}
	}
	d := drawing.LayoutDrawing(res, r2.Vec{}, partInfo(), st)
	return render.WriteFile(flagOutput, d)
}
