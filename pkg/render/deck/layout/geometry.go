package layout

import (
	"fmt"
	"math"

	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/sprint"
)

// Direction is the horizontal flow of fields within a row.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
)

// ParseDirection accepts "ltr" or "rtl" (case-sensitive).
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case LeftToRight, RightToLeft:
		return d, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidGeometry, "invalid direction: %q (must be 'ltr' or 'rtl')", s)
	}
}

// Alignment is the horizontal text alignment inside a box.
type Alignment string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// Point is a position in page coordinates. Units are centimetres with the
// origin at the top-left corner of the page and Y growing downwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share interior area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// GeometrySpec holds every parameter of a render. It is constant for the
// whole page.
type GeometrySpec struct {
	BoxWidths         map[sprint.Field]float64 `json:"box_widths" toml:"box_widths" yaml:"box_widths"`
	BoxHeight         float64                  `json:"box_height" toml:"box_height" yaml:"box_height"`
	HorizontalSpacing float64                  `json:"horizontal_spacing" toml:"horizontal_spacing" yaml:"horizontal_spacing"`
	VerticalSpacing   float64                  `json:"vertical_spacing" toml:"vertical_spacing" yaml:"vertical_spacing"`
	Origin            Point                    `json:"origin" toml:"origin" yaml:"origin"`
	Direction         Direction                `json:"direction" toml:"direction" yaml:"direction"`
}

// FieldOrder returns the fields emitted for each row, in placement order.
// Right-to-left rows lead with the 1-based row index.
func (s GeometrySpec) FieldOrder() []sprint.Field {
	if s.Direction == RightToLeft {
		return []sprint.Field{sprint.FieldIndex, sprint.FieldMission, sprint.FieldTime, sprint.FieldName}
	}
	return []sprint.Field{sprint.FieldMission, sprint.FieldName, sprint.FieldTime}
}

// Alignment returns the text alignment used for every box.
func (s GeometrySpec) Alignment() Alignment {
	if s.Direction == RightToLeft {
		return AlignRight
	}
	return AlignLeft
}

// RowStep is the vertical distance between the tops of consecutive rows.
func (s GeometrySpec) RowStep() float64 {
	return s.BoxHeight + s.VerticalSpacing
}

// RowWidth is the horizontal extent of one row, spacing included.
func (s GeometrySpec) RowWidth() float64 {
	order := s.FieldOrder()
	w := s.HorizontalSpacing * float64(len(order)-1)
	for _, f := range order {
		w += s.BoxWidths[f]
	}
	return w
}

// Validate checks that the spec can produce non-overlapping boxes.
func (s GeometrySpec) Validate() error {
	if s.Direction != LeftToRight && s.Direction != RightToLeft {
		return errs.New(errs.ErrCodeInvalidGeometry, "invalid direction: %q (must be 'ltr' or 'rtl')", s.Direction)
	}
	for _, f := range s.FieldOrder() {
		w, ok := s.BoxWidths[f]
		if !ok {
			return errs.New(errs.ErrCodeInvalidGeometry, "no box width for field %q", f)
		}
		if err := positive(fmt.Sprintf("width of %q", f), w); err != nil {
			return err
		}
	}
	if err := positive("box height", s.BoxHeight); err != nil {
		return err
	}
	if err := nonNegative("horizontal spacing", s.HorizontalSpacing); err != nil {
		return err
	}
	if err := nonNegative("vertical spacing", s.VerticalSpacing); err != nil {
		return err
	}
	if !finite(s.Origin.X) || !finite(s.Origin.Y) {
		return errs.New(errs.ErrCodeInvalidGeometry, "origin must be finite, got (%v, %v)", s.Origin.X, s.Origin.Y)
	}
	return nil
}

// Clone returns a deep copy so callers can override widths safely.
func (s GeometrySpec) Clone() GeometrySpec {
	widths := make(map[sprint.Field]float64, len(s.BoxWidths))
	for f, w := range s.BoxWidths {
		widths[f] = w
	}
	s.BoxWidths = widths
	return s
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func positive(what string, v float64) error {
	if !finite(v) || v <= 0 {
		return errs.New(errs.ErrCodeInvalidGeometry, "%s must be positive, got %v", what, v)
	}
	return nil
}

func nonNegative(what string, v float64) error {
	if !finite(v) || v < 0 {
		return errs.New(errs.ErrCodeInvalidGeometry, "%s must not be negative, got %v", what, v)
	}
	return nil
}
