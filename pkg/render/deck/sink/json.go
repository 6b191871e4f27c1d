package sink

import (
	"encoding/json"

	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/render/deck"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	withDots  bool
	direction string
}

// WithJSONDots includes every decorative dot. By default only the count is
// written.
func WithJSONDots() JSONOption { return func(r *jsonRenderer) { r.withDots = true } }

// WithJSONDirection records the layout direction ("ltr" or "rtl").
func WithJSONDirection(d string) JSONOption { return func(r *jsonRenderer) { r.direction = d } }

type jsonOutput struct {
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Units      string         `json:"units"`
	Direction  string         `json:"direction,omitempty"`
	Background deck.Color     `json:"background"`
	DotCount   int            `json:"dot_count"`
	Dots       []deck.Ellipse `json:"dots,omitempty"`
	Boxes      []deck.TextBox `json:"boxes"`
}

// RenderJSON exports the page geometry as a pretty-printed JSON document,
// for inspection or for driving another renderer.
func RenderJSON(p *deck.Page, opts ...JSONOption) ([]byte, error) {
	if p == nil {
		return nil, errs.New(errs.ErrCodeRender, "nil page")
	}
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      p.Width,
		Height:     p.Height,
		Units:      "cm",
		Direction:  r.direction,
		Background: p.Background,
		DotCount:   len(p.Dots),
		Boxes:      p.Boxes,
	}
	if r.withDots {
		out.Dots = p.Dots
	}
	if out.Boxes == nil {
		out.Boxes = []deck.TextBox{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeRender, err, "encode json")
	}
	return append(data, '\n'), nil
}
