package pipeline

import (
	"fmt"
	"time"

	"github.com/matzehuels/sprintdeck/pkg/config"
	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/render/deck"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/sink"
)

// DefaultPNGScale is the rasterisation scale for PNG output.
const DefaultPNGScale = 2.0

// RenderOptions carries the per-run metadata some sinks embed.
type RenderOptions struct {
	Title     string
	Created   time.Time
	Direction string
	PNGScale  float64
}

// Render generates output artifacts in the requested formats.
// Duplicate formats are rendered once.
func Render(p *deck.Page, formats []string, opts RenderOptions) (map[string][]byte, error) {
	if opts.PNGScale <= 0 {
		opts.PNGScale = DefaultPNGScale
	}

	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		if _, done := artifacts[format]; done {
			continue
		}
		data, err := renderFormat(p, format, opts)
		if err != nil {
			if errs.GetCode(err) == "" {
				return nil, errs.Wrap(errs.ErrCodeRender, err, "render %s", format)
			}
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(p *deck.Page, format string, opts RenderOptions) ([]byte, error) {
	switch format {
	case config.FormatPPTX:
		pptxOpts := []sink.PPTXOption{sink.WithTitle(opts.Title)}
		if !opts.Created.IsZero() {
			pptxOpts = append(pptxOpts, sink.WithCreated(opts.Created))
		}
		return sink.RenderPPTX(p, pptxOpts...)
	case config.FormatSVG:
		return sink.RenderSVG(p), nil
	case config.FormatPDF:
		return sink.RenderPDF(p)
	case config.FormatPNG:
		return sink.RenderPNG(p, sink.WithScale(opts.PNGScale))
	case config.FormatJSON:
		return sink.RenderJSON(p, sink.WithJSONDirection(opts.Direction))
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}
