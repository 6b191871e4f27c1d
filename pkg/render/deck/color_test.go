package deck

import (
	"encoding/json"
	"testing"

	errs "github.com/matzehuels/sprintdeck/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF33CC", Pink, false},
		{"ff33cc", Pink, false},
		{" #000000 ", Black, false},
		{"#fff", Color{}, true},
		{"#GG0000", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("ParseColor(%q) error = %v, want INVALID_CONFIG", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorFormats(t *testing.T) {
	if got := Pink.Hex(); got != "FF33CC" {
		t.Errorf("Hex() = %q", got)
	}
	if got := Pink.CSS(); got != "#ff33cc" {
		t.Errorf("CSS() = %q", got)
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(struct{ C Color }{Pink})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"C":"#ff33cc"}` {
		t.Errorf("Marshal = %s", data)
	}

	var out struct{ C Color }
	if err := json.Unmarshal([]byte(`{"C":"#00FF00"}`), &out); err != nil {
		t.Fatal(err)
	}
	if out.C != (Color{0, 0xFF, 0}) {
		t.Errorf("Unmarshal = %v", out.C)
	}
}
