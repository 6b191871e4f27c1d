// Package render provides slide rendering for sprint sheets.
//
// # Overview
//
// This package holds what every output format shares. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Box layout (in the [deck/layout] subpackage)
//   - The drawable page model (in the [deck] subpackage)
//   - Output formats (in the [deck/sink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). [Available] reports whether
// the tool is installed; without it both return an UNSUPPORTED error.
//
//	svg := sink.RenderSVG(page)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [deck]: github.com/matzehuels/sprintdeck/pkg/render/deck
// [deck/layout]: github.com/matzehuels/sprintdeck/pkg/render/deck/layout
// [deck/sink]: github.com/matzehuels/sprintdeck/pkg/render/deck/sink
package render
