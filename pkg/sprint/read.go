package sprint

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	errs "github.com/matzehuels/sprintdeck/pkg/errors"
)

// DefaultColumns returns the header aliases accepted for each required
// field, in English and Hebrew.
func DefaultColumns() map[Field][]string {
	return map[Field][]string{
		FieldMission: {"mission", "משימה"},
		FieldName:    {"name", "שם"},
		FieldTime:    {"time", "זמן"},
	}
}

// ReadOptions configures how a table is parsed.
type ReadOptions struct {
	// Delimiter separates cells. Zero means ',' (or '\t' for .tsv files
	// when reading through ReadFile).
	Delimiter rune

	// Columns maps each required field to the header names it accepts.
	// Missing entries fall back to DefaultColumns.
	Columns map[Field][]string
}

func (o ReadOptions) columns() map[Field][]string {
	cols := DefaultColumns()
	for f, aliases := range o.Columns {
		if len(aliases) > 0 {
			cols[f] = aliases
		}
	}
	return cols
}

// ReadFile opens path and reads it as a sprint table.
// A missing file yields an INPUT_NOT_FOUND error.
func ReadFile(path string, opts ReadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeInputNotFound, err, "input file %s not found", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	if opts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		opts.Delimiter = '\t'
	}
	return Read(f, opts)
}

// Read parses a delimited table with a header row from r.
//
// Header names are trimmed before matching and a leading UTF-8 byte order
// mark is dropped. Cell values are kept verbatim except for the time
// estimate, which is trimmed.
func Read(r io.Reader, opts ReadOptions) (*Table, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errs.New(errs.ErrCodeInvalidInput, "input is empty: a header row is required")
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	index, err := resolveColumns(header, opts.columns())
	if err != nil {
		return nil, err
	}

	t := &Table{Header: header}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read row %d", len(t.Records))
		}
		t.Records = append(t.Records, toRecord(row, index))
	}
	return t, nil
}

// resolveColumns maps each required field to its position in header.
func resolveColumns(header []string, cols map[Field][]string) (map[Field]int, error) {
	index := make(map[Field]int, len(Required))
	for _, f := range Required {
		pos := findColumn(header, cols[f])
		if pos < 0 {
			return nil, &errs.MissingFieldError{Field: string(f), Row: -1}
		}
		index[f] = pos
	}
	return index, nil
}

func findColumn(header, aliases []string) int {
	for i, h := range header {
		for _, a := range aliases {
			if strings.EqualFold(h, strings.TrimSpace(a)) {
				return i
			}
		}
	}
	return -1
}

func toRecord(row []string, index map[Field]int) Record {
	rec := make(Record, len(index))
	for f, pos := range index {
		if pos >= len(row) {
			continue
		}
		v := row[pos]
		if f == FieldTime {
			v = strings.TrimSpace(v)
		}
		rec[f] = v
	}
	return rec
}
