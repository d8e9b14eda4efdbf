// Command unfold generates flat-pattern development drawings of
// sheet-metal parts: shells, cones, branch cutouts, nozzle stubs,
// head profiles and ring nests. Output format follows the file
// extension (.dxf, .svg, .png).
package main

import (
	"fmt"
	"os"

	"github.com/barmakon4ik1/unfold/drawing"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unfold",
	Short: "Flat-pattern developments for sheet-metal fabrication",
	Long: `unfold computes developed (unrolled) outlines of sheet-metal parts of
revolution and writes them as DXF, SVG or PNG drawings: cylinder
shells with branch cutouts, cone sectors, eccentric reducers, nozzle
stubs, torispherical head profiles and ring nests.`,
	SilenceUsage: true,
}

var (
	flagOutput    string
	flagOrder     string
	flagDetail    string
	flagMaterial  string
	flagThickness float64
	flagStyle     string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagOutput, "output", "o", "out.dxf", "output file (.dxf, .svg or .png)")
	pf.StringVar(&flagOrder, "order", "", "order number for engraving and marking")
	pf.StringVar(&flagDetail, "detail", "", "detail number suffix")
	pf.StringVar(&flagMaterial, "material", "", "material grade for the sheet note")
	pf.Float64Var(&flagThickness, "thickness", 0, "wall thickness in mm")
	pf.StringVar(&flagStyle, "style", "", "TOML style file overriding the layer scheme")
}

func partInfo() drawing.PartInfo {
	return drawing.PartInfo{
		Order:     flagOrder,
		Detail:    flagDetail,
		Material:  flagMaterial,
		Thickness: flagThickness,
	}
}

func loadStyle() (drawing.Style, error) {
	if flagStyle == "" {
		return drawing.DefaultStyle(), nil
	}
	return drawing.LoadStyle(flagStyle)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
