package deck

import (
	"math"

	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
)

// Defaults applied by [NewPage].
const (
	DefaultBorderWidth = 0.05 // cm
	DefaultFontSize    = 18.0 // pt
)

// Option configures a page.
type Option func(*options)

type options struct {
	width, height float64
	background    Color
	borderWidth   float64
	borderColor   Color
	dotColor      Color
	fontSize      float64
	rtl           bool
}

func newOptions(opts ...Option) options {
	o := options{
		width:       layout.PageWidth,
		height:      layout.PageHeight,
		background:  White,
		borderWidth: DefaultBorderWidth,
		borderColor: Black,
		dotColor:    Pink,
		fontSize:    DefaultFontSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) validate() error {
	for _, v := range []float64{o.width, o.height, o.fontSize} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return errs.New(errs.ErrCodeRender, "page size and font size must be positive, got %vx%v cm at %v pt", o.width, o.height, o.fontSize)
		}
	}
	if math.IsNaN(o.borderWidth) || o.borderWidth < 0 {
		return errs.New(errs.ErrCodeRender, "border width must not be negative, got %v", o.borderWidth)
	}
	return nil
}

// WithPageSize sets the page size in centimetres.
func WithPageSize(w, h float64) Option {
	return func(o *options) { o.width, o.height = w, h }
}

// WithBackground sets the solid page background.
func WithBackground(c Color) Option { return func(o *options) { o.background = c } }

// WithBorder sets the box outline width (cm) and colour.
func WithBorder(width float64, c Color) Option {
	return func(o *options) { o.borderWidth, o.borderColor = width, c }
}

// WithDotColor sets the fill and outline of decorative dots.
func WithDotColor(c Color) Option { return func(o *options) { o.dotColor = c } }

// WithFontSize sets the text size in points.
func WithFontSize(pt float64) Option { return func(o *options) { o.fontSize = pt } }

// WithRTL marks paragraphs as right-to-left so Hebrew and Arabic text is
// shaped and ordered correctly.
func WithRTL(rtl bool) Option { return func(o *options) { o.rtl = rtl } }
