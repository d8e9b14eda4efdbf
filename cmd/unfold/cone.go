package main

import (
	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/barmakon4ik1/unfold/form"
	"github.com/barmakon4ik1/unfold/form/must"
	"github.com/barmakon4ik1/unfold/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

var coneCmd = &cobra.Command{
	Use:   "cone",
	Short: "Develop a truncated cone into an annular sector",
	RunE:  runCone,
}

var (
	coneBase   float64
	coneTop    float64
	coneHeight float64
)

func init() {
	f := coneCmd.Flags()
	f.Float64Var(&coneBase, "base-diameter", 0, "base diameter in mm")
	f.Float64Var(&coneTop, "top-diameter", 0, "top diameter in mm, 0 for a full cone")
	f.Float64Var(&coneHeight, "height", 0, "cone height in mm")
	coneCmd.MarkFlagRequired("base-diameter")
	coneCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(coneCmd)
}

func runCone(cmd *cobra.Command, args []string) error {
	st, err := loadStyle()
	if err != nil {
		return err
	}
	sheet, err := form.ConeSector(must.ConeParams{
		BaseDiameter: coneBase,
		TopDiameter:  coneTop,
		Height:       coneHeight,
	})
	if err != nil {
		return err
	}
	d := drawing.ConeDrawing(sheet, r2.Vec{}, partInfo(), st)
	return render.WriteFile(flagOutput, d)
}

var reducerCmd = &cobra.Command{
	Use:   "reducer",
	Short: "Develop a reducer with one vertical generator",
	RunE:  runReducer,
}

var (
	reducerBase   float64
	reducerTop    float64
	reducerHeight float64
	reducerFacets int
)

func init() {
	f := reducerCmd.Flags()
	f.Float64Var(&reducerBase, "base-diameter", 0, "base diameter in mm")
	f.Float64Var(&reducerTop, "top-diameter", 0, "top diameter in mm")
	f.Float64Var(&reducerHeight, "height", 0, "reducer height in mm")
	f.IntVar(&reducerFacets, "facets", 36, "facet count per half circumference")
	reducerCmd.MarkFlagRequired("base-diameter")
	reducerCmd.MarkFlagRequired("top-diameter")
	reducerCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(reducerCmd)
}

func runReducer(cmd *cobra.Command, args []string) error {
	st, err := loadStyle()
	if err != nil {
		return err
	}
	sheet, err := form.TruncatedConeFromHalves(reducerTop, reducerBase, reducerHeight, reducerFacets)
	if err != nil {
		return err
	}
	d := drawing.ReducerDrawing(sheet, r2.Vec{}, partInfo(), st)
	return render.WriteFile(flagOutput, d)
}

var obliqueCmd = &cobra.Command{
	Use:   "oblique",
	Short: "Develop a tilted-axis cone as a faceted fan",
	RunE:  runOblique,
}

var (
	obliqueDiameter float64
	obliqueHeight   float64
	obliqueTilt     float64
	obliqueFacets   int
)

func init() {
	f := obliqueCmd.Flags()
	f.Float64Var(&obliqueDiameter, "diameter", 0, "base diameter in mm")
	f.Float64Var(&obliqueHeight, "height", 0, "cone height in mm")
	f.Float64Var(&obliqueTilt, "tilt", 0, "axis tilt off the vertical in degrees")
	f.IntVar(&obliqueFacets, "facets", 12, "facet count, even")
	obliqueCmd.MarkFlagRequired("diameter")
	obliqueCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(obliqueCmd)
}

func runOblique(cmd *cobra.Command, args []string) error {
	st, err := loadStyle()
	if err != nil {
		return err
	}
	sheet, err := form.ObliqueCone(obliqueDiameter, obliqueHeight, obliqueTilt, obliqueFacets)
	if err != nil {
		return err
	}
	d := drawing.ObliqueConeDrawing(sheet, r2.Vec{}, partInfo(), st)
	return render.WriteFile(flagOutput, d)
}
