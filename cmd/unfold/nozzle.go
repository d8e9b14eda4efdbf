package main

import (
	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/barmakon4ik1/unfold/form"
	"github.com/barmakon4ik1/unfold/form/must"
	"github.com/barmakon4ik1/unfold/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

var nozzleCmd = &cobra.Command{
	Use:   "nozzle",
	Short: "Develop a branch stub with its saddle top edge",
	RunE:  runNozzle,
}

var (
	nozzleBranch   float64
	nozzleMain     float64
	nozzleLength   float64
	nozzleWeld     float64
	nozzleOffset   float64
	nozzleMidWall  bool
	nozzleAccuracy int
)

func init() {
	f := nozzleCmd.Flags()
	f.Float64Var(&nozzleBranch, "branch-diameter", 0, "stub outer diameter in mm")
	f.Float64Var(&nozzleMain, "main-diameter", 0, "main pipe outer diameter in mm")
	f.Float64Var(&nozzleLength, "length", 0, "stub length from the pipe axis plane")
	f.Float64Var(&nozzleWeld, "weld", 0, "weld allowance added to the length")
	f.Float64Var(&nozzleOffset, "offset", 0, "branch axis offset across the main section")
	f.BoolVar(&nozzleMidWall, "mid-wall", false, "unroll at mid-wall diameter (needs --thickness)")
	f.IntVar(&nozzleAccuracy, "accuracy", 0, "facet count across the width, 0 selects the default")
	nozzleCmd.MarkFlagRequired("branch-diameter")
	nozzleCmd.MarkFlagRequired("main-diameter")
	nozzleCmd.MarkFlagRequired("length")
	rootCmd.AddCommand(nozzleCmd)
}

func runNozzle(cmd *cobra.Command, args []string) error {
	st, err := loadStyle()
	if err != nil {
		return err
	}
	sheet, err := form.Nozzle(must.NozzleParams{
		BranchDiameter: nozzleBranch,
		MainDiameter:   nozzleMain,
		Length:         nozzleLength,
		Weld:           nozzleWeld,
		Offset:         nozzleOffset,
		Thickness:      flagThickness,
		MidWall:        nozzleMidWall,
		Accuracy:       nozzleAccuracy,
	})
	if err != nil {
		return err
	}
	d := drawing.NozzleDrawing(sheet, r2.Vec{}, partInfo(), st)
	return render.WriteFile(flagOutput, d)
}
