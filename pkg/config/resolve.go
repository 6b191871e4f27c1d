package config

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/sprintdeck/pkg/render/deck"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
	"github.com/matzehuels/sprintdeck/pkg/sprint"
)

// Resolve anchors a relative path at WorkDir.
func (c Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.WorkDir == "" {
		return path
	}
	return filepath.Join(c.WorkDir, path)
}

// InputDir is the resolved input directory.
func (c Config) InputDir() string { return c.Resolve(c.Input.Dir) }

// OutputDir is the resolved output directory.
func (c Config) OutputDir() string { return c.Resolve(c.Output.Dir) }

// InputPath is the resolved input file: Input.Path if set, otherwise
// File inside Dir.
func (c Config) InputPath() string {
	if c.Input.Path != "" {
		return c.Resolve(c.Input.Path)
	}
	return filepath.Join(c.InputDir(), c.Input.File)
}

// Dirs lists the directories a run creates up front.
func (c Config) Dirs() []string {
	return []string{c.InputDir(), c.OutputDir()}
}

// ReadOptions converts the input section for [sprint.ReadFile].
func (c Config) ReadOptions() sprint.ReadOptions {
	opts := sprint.ReadOptions{}
	for _, r := range c.Input.Delimiter {
		opts.Delimiter = r
		break
	}
	if len(c.Input.Columns) > 0 {
		opts.Columns = make(map[sprint.Field][]string, len(c.Input.Columns))
		for name, aliases := range c.Input.Columns {
			opts.Columns[sprint.Field(name)] = aliases
		}
	}
	return opts
}

// Geometry returns the preset for dir with every non-zero layout setting
// applied on top, and whether the page is decorative.
func (c Config) Geometry(dir layout.Direction) (layout.GeometrySpec, bool) {
	preset := layout.PresetFor(dir)
	spec := preset.Spec.Clone()

	for name, w := range c.Layout.BoxWidths {
		spec.BoxWidths[sprint.Field(name)] = w
	}
	if c.Layout.BoxHeight > 0 {
		spec.BoxHeight = c.Layout.BoxHeight
	}
	if c.Layout.HorizontalSpacing > 0 {
		spec.HorizontalSpacing = c.Layout.HorizontalSpacing
	}
	if c.Layout.VerticalSpacing > 0 {
		spec.VerticalSpacing = c.Layout.VerticalSpacing
	}
	if c.Layout.OriginX != nil {
		spec.Origin.X = *c.Layout.OriginX
	}
	if c.Layout.OriginY != nil {
		spec.Origin.Y = *c.Layout.OriginY
	}

	decorative := preset.Decorative
	if c.Layout.Decorative != nil {
		decorative = *c.Layout.Decorative
	}
	return spec, decorative
}

// Dots returns the decorative grid for the configured page.
func (c Config) Dots() []layout.Dot {
	return layout.DotGrid(c.Style.PageWidth, c.Style.PageHeight, c.Style.DotSpacing, c.Style.DotDiameter)
}

// PageOptions converts the style section for [deck.Render]. Colours are
// assumed valid; call Validate first.
func (c Config) PageOptions(dir layout.Direction) []deck.Option {
	opts := []deck.Option{
		deck.WithPageSize(c.Style.PageWidth, c.Style.PageHeight),
		deck.WithFontSize(c.Style.FontSize),
		deck.WithRTL(dir == layout.RightToLeft),
	}
	if bg, err := deck.ParseColor(c.Style.Background); err == nil {
		opts = append(opts, deck.WithBackground(bg))
	}
	if border, err := deck.ParseColor(c.Style.BorderColor); err == nil {
		opts = append(opts, deck.WithBorder(c.Style.BorderWidth, border))
	}
	if dot, err := deck.ParseColor(c.Style.DotColor); err == nil {
		opts = append(opts, deck.WithDotColor(dot))
	}
	return opts
}

// WithWorkDir returns a copy of c anchored at the current working
// directory when none is set yet.
func (c Config) WithWorkDir() (Config, error) {
	if c.WorkDir != "" {
		return c, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return c, err
	}
	c.WorkDir = wd
	return c, nil
}
