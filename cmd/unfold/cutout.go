package main

import (
	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/barmakon4ik1/unfold/form"
	"github.com/barmakon4ik1/unfold/form/must"
	"github.com/barmakon4ik1/unfold/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

var cutoutCmd = &cobra.Command{
	Use:   "cutout",
	Short: "Develop the hole a branch pipe cuts into an unrolled shell",
	RunE:  runCutout,
}

var (
	cutoutMain   float64
	cutoutBranch float64
	cutoutOffset float64
	cutoutSteps  int
)

func init() {
	f := cutoutCmd.Flags()
	f.Float64Var(&cutoutMain, "main-diameter", 0, "main cylinder diameter in mm")
	f.Float64Var(&cutoutBranch, "branch-diameter", 0, "branch diameter in mm")
	f.Float64Var(&cutoutOffset, "offset", 0, "axis offset across the main section")
	f.IntVar(&cutoutSteps, "steps", 0, "samples per revolution, 0 selects the default")
	cutoutCmd.MarkFlagRequired("main-diameter")
	cutoutCmd.MarkFlagRequired("branch-diameter")
	rootCmd.AddCommand(cutoutCmd)
}

func runCutout(cmd *cobra.Command, args []string) error {
	st, err := loadStyle()
	if err != nil {
		return err
	}
	sheet, err := form.Cutout(must.CutoutParams{
		MainDiameter:   cutoutMain,
		BranchDiameter: cutoutBranch,
		Offset:         cutoutOffset,
		Steps:          cutoutSteps,
	})
	if err != nil {
		return err
	}
	d := drawing.CutoutDrawing(sheet, r2.Vec{}, partInfo().Label(), st)
	return render.WriteFile(flagOutput, d)
}
