package drawing

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Style maps the drawing roles onto CAD layer names and text sizes.
// The defaults follow the layer scheme of the fabrication templates
// the sheets are imported into.
type Style struct {
	ContourLayer string `toml:"contour_layer"` // part outlines
	AxisLayer    string `toml:"axis_layer"`    // reference generator axes
	CenterLayer  string `toml:"center_layer"`  // hole center marks
	DimLayer     string `toml:"dim_layer"`     // linear dimensions
	EngraveLayer string `toml:"engrave_layer"` // laser engraving
	MarkLayer    string `toml:"mark_layer"`    // paint marking
	NoteLayer    string `toml:"note_layer"`    // free drawing notes

	TextHeight    float64 `toml:"text_height"`     // note text
	MarkHeight    float64 `toml:"mark_height"`     // paint marking text
	EngraveHeight float64 `toml:"engrave_height"`  // engraving text
	TextGap       float64 `toml:"text_gap"`        // vertical distance between note lines
	DimOffset     float64 `toml:"dim_offset"`      // dimension line standoff
	AxisMark      float64 `toml:"axis_mark"`       // engraved axis tick length, 0 disables
	AxisOvershoot float64 `toml:"axis_overshoot"`  // center line overshoot past the hole
}

// DefaultStyle returns the stock layer scheme.
func DefaultStyle() Style {
	return Style{
		ContourLayer:  "0",
		AxisLayer:     "AM_5",
		CenterLayer:   "AM_7",
		DimLayer:      "AM_3",
		EngraveLayer:  "LASER-TEXT",
		MarkLayer:     "schrift",
		NoteLayer:     "TEXT",
		TextHeight:    60,
		MarkHeight:    30,
		EngraveHeight: 7,
		TextGap:       80,
		DimOffset:     100,
		AxisMark:      0,
		AxisOvershoot: 1.3,
	}
}

// LoadStyle reads a TOML style file over the defaults; absent keys
// keep their stock values.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Style{}, fmt.Errorf("style %s: %w", path, err)
	}
	return s, nil
}

// PartInfo identifies a part for engraving and marking.
type PartInfo struct {
	Order     string
	Detail    string
	Material  string
	Thickness float64
}

// Label is the full part designation, order number plus detail suffix.
func (p PartInfo) Label() string {
	if p.Detail == "" {
		return p.Order
	}
	return p.Order + "-" + p.Detail
}

// MaterialNote is the sheet note line, thickness and grade.
func (p PartInfo) MaterialNote() string {
	return fmt.Sprintf("%g mm %s", p.Thickness, p.Material)
}
