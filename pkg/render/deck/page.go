package deck

import (
	"fmt"
	"math"

	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
	"github.com/matzehuels/sprintdeck/pkg/sprint"
)

// Stroke is a solid outline.
type Stroke struct {
	Width float64 `json:"width"`
	Color Color   `json:"color"`
}

// Ellipse is a filled dot of the decorative background.
type Ellipse struct {
	Rect layout.Rect `json:"rect"`
	Fill Color       `json:"fill"`
	Line Color       `json:"line"`
}

// TextBox is a bordered box holding one field of one row.
type TextBox struct {
	Field    sprint.Field     `json:"field"`
	Row      int              `json:"row"`
	Rect     layout.Rect      `json:"rect"`
	Text     string           `json:"text"`
	Align    layout.Alignment `json:"align"`
	Border   Stroke           `json:"border"`
	FontSize float64          `json:"font_size"`
	RTL      bool             `json:"rtl,omitempty"`
}

// Page is a single slide under construction. Dots are the background
// layer and are always drawn before boxes.
//
// The Add methods return the page so calls can be chained. The first
// drawing failure is recorded and every later Add is a no-op; check
// [Page.Err] when done.
type Page struct {
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Background Color     `json:"background"`
	Dots       []Ellipse `json:"dots,omitempty"`
	Boxes      []TextBox `json:"boxes"`

	opts options
	err  error
}

// NewPage returns a blank page.
func NewPage(opts ...Option) *Page {
	o := newOptions(opts...)
	return &Page{
		Width:      o.width,
		Height:     o.height,
		Background: o.background,
		Boxes:      []TextBox{},
		opts:       o,
	}
}

// Err returns the first drawing failure, if any.
func (p *Page) Err() error { return p.err }

// RTL reports whether paragraphs on this page are right-to-left.
func (p *Page) RTL() bool { return p.opts.rtl }

// AddDots paints each dot as a small filled circle in the dot colour.
func (p *Page) AddDots(dots []layout.Dot) *Page {
	for i, d := range dots {
		if p.err != nil {
			return p
		}
		r := layout.Rect{X: d.Position.X, Y: d.Position.Y, W: d.Diameter, H: d.Diameter}
		if err := checkRect(r); err != nil {
			p.err = errs.Wrap(errs.ErrCodeRender, err, "dot %d", i)
			return p
		}
		p.Dots = append(p.Dots, Ellipse{Rect: r, Fill: p.opts.dotColor, Line: p.opts.dotColor})
	}
	return p
}

// AddBox draws a bordered text box for b.
func (p *Page) AddBox(b layout.PlacedBox) *Page {
	if p.err != nil {
		return p
	}
	if err := checkRect(b.Rect); err != nil {
		p.err = errs.Wrap(errs.ErrCodeRender, err, "box %s of row %d", b.Field, b.Row)
		return p
	}
	p.Boxes = append(p.Boxes, TextBox{
		Field:    b.Field,
		Row:      b.Row,
		Rect:     b.Rect,
		Text:     b.Text,
		Align:    b.Align,
		Border:   Stroke{Width: p.opts.borderWidth, Color: p.opts.borderColor},
		FontSize: p.opts.fontSize,
		RTL:      p.opts.rtl,
	})
	return p
}

// Render builds a fresh page holding dots (background, may be nil) and one
// text box per placed box. Any drawing failure aborts the render: no page
// is returned alongside an error.
func Render(boxes []layout.PlacedBox, dots []layout.Dot, opts ...Option) (*Page, error) {
	p := NewPage(opts...)
	if err := p.opts.validate(); err != nil {
		return nil, err
	}

	p.AddDots(dots)
	for _, b := range boxes {
		p.AddBox(b)
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func checkRect(r layout.Rect) error {
	for _, v := range []float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite geometry %+v", r)
		}
	}
	if r.W < 0 || r.H < 0 {
		return fmt.Errorf("negative size %+v", r)
	}
	return nil
}
