// Package layout computes box positions for sprint sheets.
//
// # Overview
//
// A sprint sheet is a single page holding one row of bordered text boxes per
// sprint record. Given the records and a [GeometrySpec], [Compute] returns
// one [PlacedBox] per field per row. Nothing about the boxes depends on the
// text they carry: widths are fixed per field and long text overflows its
// box.
//
// # Directions
//
// Right-to-left sheets start at the right edge and emit
// index, mission, time and name, each box right-aligned:
//
//	| name | time |      mission      | # |
//
// Left-to-right sheets start at the left edge and emit mission, name and
// time, each box left-aligned:
//
//	|      mission      | name | time |
//
// [DetectDirection] picks a direction from the text itself using the
// Unicode bidirectional classes of its first strong character.
//
// # Presets
//
// [RightToLeftPreset] and [LeftToRightPreset] carry the stock geometry and
// whether the page gets the decorative background from [DotGrid]. All units
// are centimetres on a 25.4 × 19.05 cm page, origin top-left.
package layout
