package layout

import (
	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/sprint"
)

// PlacedBox is a single positioned text box: one per field per row.
type PlacedBox struct {
	Field sprint.Field `json:"field"`
	Row   int          `json:"row"`
	Rect  Rect         `json:"rect"`
	Text  string       `json:"text"`
	Align Alignment    `json:"align"`
}

// Compute places every field of every row according to spec.
//
// Rows are stacked top to bottom starting at spec.Origin.Y. Within a row a
// cursor starts at spec.Origin.X and walks away from it: rightwards for
// left-to-right specs, leftwards (origin is the right edge) for
// right-to-left specs. Box widths depend only on the field, never on the
// text, so long text may overflow its box.
//
// Compute is pure: the same inputs always give the same boxes. It returns
// an empty slice for zero rows and a *errors.MissingFieldError for the
// first absent field it meets.
func Compute(rows []sprint.Record, spec GeometrySpec) ([]PlacedBox, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	order := spec.FieldOrder()
	align := spec.Alignment()
	step := spec.RowStep()

	boxes := make([]PlacedBox, 0, len(rows)*len(order))
	for i, row := range rows {
		y := spec.Origin.Y + float64(i)*step
		cursor := spec.Origin.X

		for _, f := range order {
			text, err := fieldText(row, f, i)
			if err != nil {
				return nil, err
			}

			w := spec.BoxWidths[f]
			var x float64
			if spec.Direction == RightToLeft {
				x = cursor - w
				cursor = x - spec.HorizontalSpacing
			} else {
				x = cursor
				cursor = x + w + spec.HorizontalSpacing
			}

			boxes = append(boxes, PlacedBox{
				Field: f,
				Row:   i,
				Rect:  Rect{X: x, Y: y, W: w, H: spec.BoxHeight},
				Text:  text,
				Align: align,
			})
		}
	}
	return boxes, nil
}

func fieldText(row sprint.Record, f sprint.Field, i int) (string, error) {
	if f == sprint.FieldIndex {
		return sprint.IndexLabel(i), nil
	}
	v, ok := row.Get(f)
	if !ok {
		return "", &errs.MissingFieldError{Field: string(f), Row: i}
	}
	return v, nil
}

// Rows groups boxes by row index, preserving order. It is the inverse of
// the flattening done by Compute and is used by sinks that emit one group
// per row.
func Rows(boxes []PlacedBox) [][]PlacedBox {
	var rows [][]PlacedBox
	for _, b := range boxes {
		for len(rows) <= b.Row {
			rows = append(rows, nil)
		}
		rows[b.Row] = append(rows[b.Row], b)
	}
	return rows
}
