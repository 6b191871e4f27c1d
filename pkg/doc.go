// Package pkg provides the core libraries for sprintdeck.
//
// # Overview
//
// Sprintdeck turns a sprint table (one row per task with a mission, the
// person assigned and a time estimate) into a single presentation slide on
// which every row becomes a line of bordered text boxes. The pkg directory
// is organized into these areas:
//
//  1. [sprint] - Reading CSV/TSV tables into records
//  2. [render/deck/layout] - Pure geometry: placing boxes and the dot grid
//  3. [render/deck] - The page model: styled boxes and dots
//  4. [render/deck/sink] - Writers for pptx, svg, pdf, png and json
//  5. [pipeline] - Orchestration (read → layout → render → write)
//  6. [config] - Defaults, TOML/YAML files and environment overrides
//
// # Architecture
//
// The typical data flow through sprintdeck:
//
//	csv files/jobs.csv
//	         ↓
//	    [sprint] package (records in input order)
//	         ↓
//	    [render/deck/layout] package (placed boxes + dots)
//	         ↓
//	    [render/deck] package (page)
//	         ↓
//	    [render/deck/sink] package (pptx/svg/pdf/png/json)
//	         ↓
//	sprints/presentation_<YYYYMMDD>_<HHMMSS>.pptx
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/sprintdeck/pkg/render/deck"
//	    "github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
//	    "github.com/matzehuels/sprintdeck/pkg/render/deck/sink"
//	    "github.com/matzehuels/sprintdeck/pkg/sprint"
//	)
//
//	table, _ := sprint.ReadFile("jobs.csv", sprint.ReadOptions{})
//	preset := layout.RightToLeftPreset()
//	boxes, _ := layout.Compute(table.Records, preset.Spec)
//	page, _ := deck.Render(boxes, layout.DefaultDotGrid(), deck.WithRTL(true))
//	pptx, _ := sink.RenderPPTX(page, sink.WithTitle("Sprint 12"))
//
// Or run everything from a configuration:
//
//	result, err := pipeline.NewRunner(logger).Execute(ctx, config.Default())
//
// # Supporting Packages
//
//   - [errors] - Coded errors and exit-code mapping
//   - [observability] - Optional stage hooks
//   - [render] - SVG to PDF/PNG conversion through rsvg-convert
//   - [buildinfo] - Version information set at build time
//
// [sprint]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/sprint
// [render/deck/layout]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/render/deck/layout
// [render/deck]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/render/deck
// [render/deck/sink]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/render/deck/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/render
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/sprintdeck/pkg/buildinfo
package pkg
