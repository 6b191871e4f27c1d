package layout

import "github.com/matzehuels/sprintdeck/pkg/sprint"

// Page dimensions of a standard 4:3 slide (10 × 7.5 inches), in centimetres.
const (
	PageWidth  = 25.4
	PageHeight = 19.05
)

// Decorative dot grid defaults.
const (
	DotSpacing  = 0.5
	DotDiameter = 0.05
)

// Box dimensions shared by both presets, in centimetres.
const (
	boxHeight    = 1.03
	boxSpacing   = 0.5
	rowSpacing   = 0.5
	marginTop    = 1.0
	marginRight  = 24.0
	widthIndex   = 1.02
	widthMission = 7.04
	widthTime    = 1.94
	widthName    = 2.55
)

// Preset bundles a geometry with whether the page carries the dot grid.
type Preset struct {
	Name       string
	Spec       GeometrySpec
	Decorative bool
}

// RightToLeftPreset is the bordered right-to-left sheet with the dotted
// background, sized for Hebrew sprint boards: index, mission, time and name
// flowing leftwards from 24 cm.
func RightToLeftPreset() Preset {
	return Preset{
		Name:       "rtl",
		Decorative: true,
		Spec: GeometrySpec{
			BoxWidths: map[sprint.Field]float64{
				sprint.FieldIndex:   widthIndex,
				sprint.FieldMission: widthMission,
				sprint.FieldTime:    widthTime,
				sprint.FieldName:    widthName,
			},
			BoxHeight:         boxHeight,
			HorizontalSpacing: boxSpacing,
			VerticalSpacing:   rowSpacing,
			Origin:            Point{X: marginRight, Y: marginTop},
			Direction:         RightToLeft,
		},
	}
}

// LeftToRightPreset is the plain left-to-right sheet: mission, name and time
// flowing rightwards from the left margin that mirrors the right-to-left
// preset.
func LeftToRightPreset() Preset {
	return Preset{
		Name: "ltr",
		Spec: GeometrySpec{
			BoxWidths: map[sprint.Field]float64{
				sprint.FieldMission: widthMission,
				sprint.FieldName:    widthName,
				sprint.FieldTime:    widthTime,
			},
			BoxHeight:         boxHeight,
			HorizontalSpacing: boxSpacing,
			VerticalSpacing:   rowSpacing,
			Origin:            Point{X: PageWidth - marginRight, Y: marginTop},
			Direction:         LeftToRight,
		},
	}
}

// PresetFor returns the preset matching d.
func PresetFor(d Direction) Preset {
	if d == RightToLeft {
		return RightToLeftPreset()
	}
	return LeftToRightPreset()
}
