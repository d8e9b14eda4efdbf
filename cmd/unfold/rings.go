package main

import (
	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/barmakon4ik1/unfold/form"
	"github.com/barmakon4ik1/unfold/form/must"
	"github.com/barmakon4ik1/unfold/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

var ringsCmd = &cobra.Command{
	Use:   "rings",
	Short: "Lay out concentric rings for circle blanks and ring flanges",
	RunE:  runRings,
}

var ringsDiameters []float64

func init() {
	ringsCmd.Flags().Float64SliceVar(&ringsDiameters, "diameters", nil, "ring diameters in mm")
	ringsCmd.MarkFlagRequired("diameters")
	rootCmd.AddCommand(ringsCmd)
}

func runRings(cmd *cobra.Command, args []string) error {
	st, err := loadStyle()
	if err != nil {
		return err
	}
	set, err := form.Rings(must.RingsParams{Diameters: ringsDiameters})
	if err != nil {
		return err
	}
	d := drawing.RingsDrawing(set, r2.Vec{}, partInfo(), st)
	return render.WriteFile(flagOutput, d)
}
