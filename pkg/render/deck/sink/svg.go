package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/sprintdeck/pkg/render/deck"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
)

// textInset matches the default left/right text inset of a PPTX text box.
const textInset = 0.254

// cmPerPoint converts font sizes to page units.
const cmPerPoint = 2.54 / 72

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
	noDots     bool
}

// WithFontFamily sets the CSS font-family of box text.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.fontFamily = f } }

// WithoutDots omits the decorative background, which keeps the SVG small.
func WithoutDots() SVGOption { return func(r *svgRenderer) { r.noDots = true } }

// RenderSVG draws the page as SVG in centimetre units.
func RenderSVG(p *deck.Page, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: "Arial, sans-serif"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%scm" height="%scm">`+"\n",
		num(p.Width), num(p.Height), num(p.Width), num(p.Height))
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", p.Background.CSS())

	if !r.noDots && len(p.Dots) > 0 {
		buf.WriteString(`  <g class="dots">` + "\n")
		for _, d := range p.Dots {
			rx, ry := d.Rect.W/2, d.Rect.H/2
			fmt.Fprintf(&buf, `    <ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s"/>`+"\n",
				num(d.Rect.X+rx), num(d.Rect.Y+ry), num(rx), num(ry), d.Fill.CSS())
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString(`  <g class="boxes">` + "\n")
	for _, b := range p.Boxes {
		renderBox(&buf, r, b)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBox(buf *bytes.Buffer, r svgRenderer, b deck.TextBox) {
	fmt.Fprintf(buf, `    <rect id="%s-%d" x="%s" y="%s" width="%s" height="%s" fill="none"`,
		b.Field, b.Row, num(b.Rect.X), num(b.Rect.Y), num(b.Rect.W), num(b.Rect.H))
	if b.Border.Width > 0 {
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%s"`, b.Border.Color.CSS(), num(b.Border.Width))
	}
	buf.WriteString("/>\n")

	if b.Text == "" {
		return
	}
	x, anchor := b.Rect.X+textInset, "start"
	if b.Align == layout.AlignRight {
		x, anchor = b.Rect.Right()-textInset, "end"
	}
	fmt.Fprintf(buf, `    <text x="%s" y="%s" font-family="%s" font-size="%s" text-anchor="%s" dominant-baseline="central"`,
		num(x), num(b.Rect.Y+b.Rect.H/2), escapeXML(r.fontFamily), num(b.FontSize*cmPerPoint), anchor)
	if b.RTL {
		buf.WriteString(` unicode-bidi="plaintext"`)
	}
	fmt.Fprintf(buf, ">%s</text>\n", escapeXML(b.Text))
}
