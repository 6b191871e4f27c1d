// Package pipeline provides the core generation pipeline for sprintdeck.
//
// This package implements the complete read → layout → render → write
// pipeline used by every CLI command. By centralizing this logic, the
// generate, layout and preview commands see exactly the same boxes.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Read: Parse the sprint table from the configured CSV or TSV file
//  2. Layout: Resolve the direction and geometry, then place every box
//  3. Render: Build the page and run one sink per requested format
//  4. Write: Store each artifact as presentation_<YYYYMMDD>_<HHMMSS>.<ext>
//
// [Runner.Plan] stops after the layout stage; [Runner.Execute] runs all four.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range result.Files {
//	    fmt.Println(f)
//	}
package pipeline

import (
	"fmt"
	"time"

	"github.com/matzehuels/sprintdeck/pkg/render/deck"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
	"github.com/matzehuels/sprintdeck/pkg/sprint"
)

// TimestampLayout formats the run time embedded in output file names.
const TimestampLayout = "20060102_150405"

// Plan is the outcome of the read and layout stages.
type Plan struct {
	// Input is the resolved path of the table that was read.
	Input string

	// Table holds the records in input order.
	Table *sprint.Table

	// Direction is the resolved reading direction.
	Direction layout.Direction

	// Geometry is the preset with every configured override applied.
	Geometry layout.GeometrySpec

	// Decorative reports whether the dot grid is drawn.
	Decorative bool

	Boxes []layout.PlacedBox
	Dots  []layout.Dot
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Plan

	// Page is the rendered page shared by every sink.
	Page *deck.Page

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Files lists the written paths in format order.
	Files []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowCount   int
	BoxCount   int
	DotCount   int
	ReadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// FileName returns the output file name for one format of a run started at t.
func FileName(prefix, format string, t time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, t.Format(TimestampLayout), format)
}
