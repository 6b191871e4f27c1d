package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sprintdeck/pkg/config"
	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/observability"
	"github.com/matzehuels/sprintdeck/pkg/render/deck"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
	"github.com/matzehuels/sprintdeck/pkg/sprint"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger and clock - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different configurations.
type Runner struct {
	Logger *log.Logger

	// Clock stamps output file names and document metadata.
	Clock func() time.Time
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger: logger,
		Clock:  time.Now,
	}
}

// Execute runs the complete read → layout → render → write pipeline.
//
// Input and output directories are created first, even when reading then
// fails. Every error is terminal; nothing is written unless every format
// rendered.
func (r *Runner) Execute(ctx context.Context, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	started := r.now()

	if err := ensureDirs(cfg.Dirs()); err != nil {
		return nil, err
	}

	plan, stats, err := r.plan(ctx, cfg)
	if err != nil {
		return nil, err
	}
	result := &Result{Plan: *plan, Stats: stats}

	// Stage 3: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, cfg.Output.Formats)
	renderStart := time.Now()

	page, err := deck.Render(plan.Boxes, plan.Dots, cfg.PageOptions(plan.Direction)...)
	if err == nil {
		result.Page = page
		result.Artifacts, err = Render(page, cfg.Output.Formats, RenderOptions{
			Title:     cfg.Output.Title,
			Created:   started,
			Direction: string(plan.Direction),
		})
	}
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, cfg.Output.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered outputs",
		"formats", cfg.Output.Formats,
		"duration", result.Stats.RenderTime)

	// Stage 4: Write
	writeStart := time.Now()
	outDir := cfg.OutputDir()
	for _, format := range cfg.Output.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(outDir, FileName(cfg.Output.Prefix, format, started))
		if slices.Contains(result.Files, path) {
			continue
		}
		err := os.WriteFile(path, data, 0o644)
		hooks.OnWrite(ctx, path, len(data), err)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeWrite, err, "write %s", path)
		}
		result.Files = append(result.Files, path)
		r.Logger.Debug("wrote file", "path", path, "bytes", len(data))
	}
	result.Stats.WriteTime = time.Since(writeStart)

	r.Logger.Info("wrote presentation",
		"files", len(result.Files),
		"dir", outDir,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Plan runs the read and layout stages without rendering or touching the
// output directory.
func (r *Runner) Plan(ctx context.Context, cfg config.Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	plan, _, err := r.plan(ctx, cfg)
	return plan, err
}

func (r *Runner) plan(ctx context.Context, cfg config.Config) (*Plan, Stats, error) {
	var stats Stats
	hooks := observability.Pipeline()

	// Stage 1: Read
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	input := cfg.InputPath()
	hooks.OnReadStart(ctx, input)
	readStart := time.Now()
	table, err := sprint.ReadFile(input, cfg.ReadOptions())
	stats.ReadTime = time.Since(readStart)
	rows := 0
	if table != nil {
		rows = table.Len()
	}
	hooks.OnReadComplete(ctx, input, rows, stats.ReadTime, err)
	if err != nil {
		return nil, stats, err
	}
	stats.RowCount = rows

	r.Logger.Info("read sprint table",
		"path", input,
		"rows", rows,
		"duration", stats.ReadTime)

	// Stage 2: Layout
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	dir, err := layout.ResolveDirection(cfg.Layout.Direction, table.Texts()...)
	if err != nil {
		return nil, stats, errs.Wrap(errs.ErrCodeInvalidConfig, err, "layout direction")
	}
	if cfg.Layout.Direction == "" || cfg.Layout.Direction == layout.DirectionAuto {
		r.Logger.Debug("detected direction", "direction", dir)
	}

	hooks.OnLayoutStart(ctx, string(dir), rows)
	layoutStart := time.Now()
	spec, decorative := cfg.Geometry(dir)
	boxes, err := layout.Compute(table.Records, spec)
	stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, string(dir), len(boxes), stats.LayoutTime, err)
	if err != nil {
		return nil, stats, err
	}

	plan := &Plan{
		Input:      input,
		Table:      table,
		Direction:  dir,
		Geometry:   spec,
		Decorative: decorative,
		Boxes:      boxes,
	}
	if decorative {
		plan.Dots = cfg.Dots()
	}
	stats.BoxCount = len(plan.Boxes)
	stats.DotCount = len(plan.Dots)

	r.Logger.Info("computed layout",
		"direction", dir,
		"boxes", stats.BoxCount,
		"dots", stats.DotCount,
		"duration", stats.LayoutTime)

	return plan, stats, nil
}

func (r *Runner) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock()
}

// ensureDirs creates every directory in dirs. Existing directories are fine.
func ensureDirs(dirs []string) error {
	for _, d := range dirs {
		if d == "" {
			continue
		}
		if err := os.MkdirAll(d, 0o755); err != nil {
			return errs.Wrap(errs.ErrCodeWrite, err, "create directory %s", d)
		}
	}
	return nil
}
