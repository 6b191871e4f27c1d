package deck

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/matzehuels/sprintdeck/pkg/errors"
)

// Color is an opaque sRGB colour.
type Color struct {
	R, G, B uint8
}

// Stock colours.
var (
	White = Color{0xFF, 0xFF, 0xFF}
	Black = Color{0x00, 0x00, 0x00}
	Pink  = Color{0xFF, 0x33, 0xCC}
)

// Hex returns the colour as six upper-case hex digits without a leading #,
// the form used by DrawingML.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// CSS returns the colour as #rrggbb.
func (c Color) CSS() string {
	return "#" + strings.ToLower(c.Hex())
}

func (c Color) String() string { return c.CSS() }

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.CSS()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses "#RRGGBB" or "RRGGBB" (case-insensitive).
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, errs.New(errs.ErrCodeInvalidConfig, "invalid colour %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid colour %q", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
