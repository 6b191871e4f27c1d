// Package sink writes a [deck.Page] in concrete output formats.
//
// # Formats
//
//   - [RenderPPTX]: a single-slide PowerPoint presentation. This is the
//     primary output and opens in PowerPoint, Keynote and LibreOffice.
//   - [RenderSVG]: a vector image in centimetre units.
//   - [RenderPDF] and [RenderPNG]: the SVG converted with rsvg-convert.
//   - [RenderJSON]: the page geometry, for inspection and tooling.
//
// Every sink draws the decorative dots first so boxes stay on top.
//
// # Reproducible Output
//
// A PPTX file records a creation time and a document identifier. Pass
// [WithCreated] and [WithIdentifier] to get identical bytes for identical
// input:
//
//	data, err := sink.RenderPPTX(page,
//	    sink.WithCreated(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
//	    sink.WithIdentifier("sprint-42"),
//	)
//
// [deck.Page]: github.com/matzehuels/sprintdeck/pkg/render/deck.Page
package sink
