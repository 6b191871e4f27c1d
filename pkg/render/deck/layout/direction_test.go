package layout

import (
	"testing"

	errs "github.com/matzehuels/sprintdeck/pkg/errors"
)

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  Direction
	}{
		{"hebrew header", []string{"משימה", "שם", "זמן"}, RightToLeft},
		{"arabic", []string{"مهمة"}, RightToLeft},
		{"english", []string{"mission", "name", "time"}, LeftToRight},
		{"digits then hebrew", []string{"12", " 3.5", "דנה"}, RightToLeft},
		{"first strong wins", []string{"Sprint 4", "משימה"}, LeftToRight},
		{"neutral only", []string{"1", "2", "-"}, LeftToRight},
		{"nothing", nil, LeftToRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.texts...); got != tt.want {
				t.Errorf("DetectDirection(%q) = %q, want %q", tt.texts, got, tt.want)
			}
		})
	}
}

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		in      string
		texts   []string
		want    Direction
		wantErr bool
	}{
		{"", []string{"שם"}, RightToLeft, false},
		{"auto", []string{"name"}, LeftToRight, false},
		{"rtl", []string{"name"}, RightToLeft, false},
		{"ltr", []string{"שם"}, LeftToRight, false},
		{"sideways", nil, "", true},
	}

	for _, tt := range tests {
		got, err := ResolveDirection(tt.in, tt.texts...)
		if tt.wantErr {
			if !errs.Is(err, errs.ErrCodeInvalidGeometry) {
				t.Errorf("ResolveDirection(%q) error = %v, want INVALID_GEOMETRY", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveDirection(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveDirection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
