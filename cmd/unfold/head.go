package main

import (
	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/barmakon4ik1/unfold/form"
	"github.com/barmakon4ik1/unfold/form/must"
	"github.com/barmakon4ik1/unfold/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

var headCmd = &cobra.Command{
	Use:   "head",
	Short: "Draw a torispherical head section profile",
	RunE:  runHead,
}

var (
	headDiameter float64
	headCrown    float64
	headKnuckle  float64
	headFlange   float64
)

func init() {
	f := headCmd.Flags()
	f.Float64Var(&headDiameter, "diameter", 0, "outside diameter in mm")
	f.Float64Var(&headCrown, "crown-radius", 0, "crown radius in mm")
	f.Float64Var(&headKnuckle, "knuckle-radius", 0, "knuckle radius in mm")
	f.Float64Var(&headFlange, "flange", 0, "straight flange height in mm")
	headCmd.MarkFlagRequired("diameter")
	headCmd.MarkFlagRequired("crown-radius")
	headCmd.MarkFlagRequired("knuckle-radius")
	headCmd.MarkFlagRequired("flange")
	rootCmd.AddCommand(headCmd)
}

func runHead(cmd *cobra.Command, args []string) error {
	st, err := loadStyle()
	if err != nil {
		return err
	}
	sheet, err := form.Head(must.HeadParams{
		Diameter:      headDiameter,
		Thickness:     flagThickness,
		CrownRadius:   headCrown,
		KnuckleRadius: headKnuckle,
		FlangeHeight:  headFlange,
	})
	if err != nil {
		return err
	}
	d := drawing.HeadDrawing(sheet, r2.Vec{}, partInfo(), st)
	return render.WriteFile(flagOutput, d)
}
