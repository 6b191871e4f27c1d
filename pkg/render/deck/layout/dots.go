package layout

import "math"

// Dot is one cell of the decorative background grid. Position is the
// top-left corner of the dot's bounding square.
type Dot struct {
	Position Point   `json:"position"`
	Diameter float64 `json:"diameter"`
}

// Center returns the centre of the dot.
func (d Dot) Center() Point {
	r := d.Diameter / 2
	return Point{X: d.Position.X + r, Y: d.Position.Y + r}
}

// DotGrid covers a pageW × pageH page with dots every spacing units,
// column-major, starting at the top-left corner. The grid has
// floor(pageW/spacing) columns and floor(pageH/spacing) rows.
// A non-positive spacing or diameter yields no dots.
func DotGrid(pageW, pageH, spacing, diameter float64) []Dot {
	if spacing <= 0 || diameter <= 0 || pageW <= 0 || pageH <= 0 {
		return nil
	}
	cols := gridCount(pageW, spacing)
	rows := gridCount(pageH, spacing)

	dots := make([]Dot, 0, cols*rows)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			dots = append(dots, Dot{
				Position: Point{X: float64(x) * spacing, Y: float64(y) * spacing},
				Diameter: diameter,
			})
		}
	}
	return dots
}

// gridCount is floor(extent/spacing) with a small tolerance so that exact
// multiples are not lost to floating point error (19.0/0.5 must give 38).
func gridCount(extent, spacing float64) int {
	return int(math.Floor(extent/spacing + 1e-9))
}

// DefaultDotGrid is the grid used by decorative presets.
func DefaultDotGrid() []Dot {
	return DotGrid(PageWidth, PageHeight, DotSpacing, DotDiameter)
}
