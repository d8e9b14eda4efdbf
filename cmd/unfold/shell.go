package main

import (
	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/barmakon4ik1/unfold/form"
	"github.com/barmakon4ik1/unfold/form/must"
	"github.com/barmakon4ik1/unfold/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Unroll a cylindrical shell into its rectangle",
	RunE:  runShell,
}

var (
	shellDiameter  float64
	shellLength    float64
	shellSeam      float64
	shellClockwise bool
	shellWeldTop   float64
	shellWeldBot   float64
	shellAxisMarks float64
)

func init() {
	f := shellCmd.Flags()
	f.Float64Var(&shellDiameter, "diameter", 0, "shell diameter in mm")
	f.Float64Var(&shellLength, "length", 0, "shell length in mm")
	f.Float64Var(&shellSeam, "seam", 0, "seam angle in degrees")
	f.BoolVar(&shellClockwise, "clockwise", false, "unroll clockwise")
	f.Float64Var(&shellWeldTop, "weld-top", 0, "weld allowance at the top edge")
	f.Float64Var(&shellWeldBot, "weld-bottom", 0, "weld allowance at the bottom edge")
	f.Float64Var(&shellAxisMarks, "axis-marks", 0, "engraved axis tick length, 0 disables")
	shellCmd.MarkFlagRequired("diameter")
	shellCmd.MarkFlagRequired("length")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	st, err := loadStyle()
	if err != nil {
		return err
	}
	st.AxisMark = shellAxisMarks

	sheet, err := form.Shell(must.ShellParams{
		Diameter:   shellDiameter,
		Length:     shellLength,
		SeamAngle:  shellSeam,
		Clockwise:  shellClockwise,
		WeldTop:    shellWeldTop,
		WeldBottom: shellWeldBot,
	})
	if err != nil {
		return err
	}
	d := drawing.ShellDrawing(sheet, r2.Vec{}, partInfo(), st)
	return render.WriteFile(flagOutput, d)
}
