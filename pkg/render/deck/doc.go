// Package deck turns placed boxes into a drawable slide.
//
// # Overview
//
// [Render] takes the output of [layout.Compute] and, optionally, a
// decorative dot grid, and builds a fresh [Page]: the dots as small filled
// circles on the background layer, then one bordered [TextBox] per placed
// box. A page is a format-neutral description; the [sink] subpackage writes
// it as PPTX, SVG, PDF, PNG or JSON.
//
//	boxes, err := layout.Compute(rows, layout.RightToLeftPreset().Spec)
//	page, err := deck.Render(boxes, layout.DefaultDotGrid(), deck.WithRTL(true))
//	pptx, err := sink.RenderPPTX(page)
//
// # Styling
//
// Pages default to a white 25.4 × 19.05 cm slide, black 0.05 cm borders,
// 18 pt text and pink (#ff33cc) dots. Each default has a matching
// [Option].
//
// [layout.Compute]: github.com/matzehuels/sprintdeck/pkg/render/deck/layout.Compute
// [sink]: github.com/matzehuels/sprintdeck/pkg/render/deck/sink
package deck
