// Package sprint reads job-assignment tables into typed records.
//
// A sprint table has one row per job with three required columns: the
// mission, the assignee name and the time estimate. Column names in the
// source file may be English or Hebrew (see [DefaultColumns]) and may carry
// surrounding whitespace; every value is normalized to text at this
// boundary so that later stages never see numeric cells.
//
// Reading is strict: a required column missing from the header fails the
// whole read with a [errors.MissingFieldError]. A data row that is shorter
// than the header simply lacks the trailing fields; the layout stage reports
// those with the offending row index.
//
// [errors.MissingFieldError]: github.com/matzehuels/sprintdeck/pkg/errors.MissingFieldError
package sprint

import "strconv"

// Field names a column of a sprint table, or the synthetic row index.
type Field string

// Fields known to the layout. FieldIndex is never read from input; it is
// derived from the row position.
const (
	FieldIndex   Field = "index"
	FieldMission Field = "mission"
	FieldName    Field = "name"
	FieldTime    Field = "time"
)

// Required lists the columns every input table must provide, in the order
// they are looked up.
var Required = []Field{FieldMission, FieldName, FieldTime}

// Record is one logical input row: field → text. A field that is not in
// the map is absent (as opposed to present but empty).
//
// Records are treated as immutable once read.
type Record map[Field]string

// NewRecord returns a record with all three required fields set.
func NewRecord(mission, name, time string) Record {
	return Record{
		FieldMission: mission,
		FieldName:    name,
		FieldTime:    time,
	}
}

// Get returns the value of f and whether it is present.
func (r Record) Get(f Field) (string, bool) {
	v, ok := r[f]
	return v, ok
}

// IndexLabel returns the 1-based row number label for the row at i.
func IndexLabel(i int) string {
	return strconv.Itoa(i + 1)
}

// Table is the result of reading a sprint file: the trimmed header as it
// appeared in the source plus the records in input order.
type Table struct {
	Header  []string
	Records []Record
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Records) }

// Texts returns every header name and cell value in reading order.
// It is used for script-direction detection.
func (t *Table) Texts() []string {
	texts := make([]string, 0, len(t.Header)+len(t.Records)*len(Required))
	texts = append(texts, t.Header...)
	for _, r := range t.Records {
		for _, f := range Required {
			if v, ok := r[f]; ok {
				texts = append(texts, v)
			}
		}
	}
	return texts
}
