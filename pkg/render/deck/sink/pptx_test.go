package sink

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"

	"github.com/matzehuels/sprintdeck/pkg/render/deck"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
	"github.com/matzehuels/sprintdeck/pkg/sprint"
)

var fixedTime = time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)

func rtlPage(t *testing.T, rows ...sprint.Record) *deck.Page {
	t.Helper()
	preset := layout.RightToLeftPreset()
	boxes, err := layout.Compute(rows, preset.Spec)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	p, err := deck.Render(boxes, layout.DefaultDotGrid(), deck.WithRTL(true))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return p
}

func ltrPage(t *testing.T, rows ...sprint.Record) *deck.Page {
	t.Helper()
	boxes, err := layout.Compute(rows, layout.LeftToRightPreset().Spec)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	p, err := deck.Render(boxes, nil)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return p
}

func unzip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a zip archive: %v", err)
	}
	files := make(map[string]string, len(zr.File))
	for i, f := range zr.File {
		if i == 0 && f.Name != PartContentTypes {
			t.Errorf("first entry = %s, want %s", f.Name, PartContentTypes)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		files[f.Name] = string(b)
	}
	return files
}

func wellFormed(t *testing.T, name, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Errorf("%s is not well-formed XML: %v", name, err)
			return
		}
	}
}

func TestRenderPPTXParts(t *testing.T) {
	data, err := RenderPPTX(rtlPage(t, sprint.NewRecord("לתקן באג", "דנה", "2")), WithCreated(fixedTime))
	if err != nil {
		t.Fatalf("RenderPPTX() error: %v", err)
	}
	files := unzip(t, data)

	want := []string{
		PartContentTypes,
		"_rels/.rels",
		PartCoreProps,
		"docProps/app.xml",
		PartPresentation,
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		PartSlide,
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/presProps.xml",
		"ppt/viewProps.xml",
		"ppt/tableStyles.xml",
	}
	for _, name := range want {
		doc, ok := files[name]
		if !ok {
			t.Errorf("missing part %s", name)
			continue
		}
		wellFormed(t, name, doc)
	}
	if len(files) != len(want) {
		t.Errorf("archive has %d parts, want %d", len(files), len(want))
	}

	ct := files[PartContentTypes]
	for _, name := range want {
		if strings.HasSuffix(name, ".rels") || name == PartContentTypes {
			continue
		}
		if !strings.Contains(ct, `PartName="/`+name+`"`) {
			t.Errorf("[Content_Types].xml has no override for %s", name)
		}
	}
}

func TestRenderPPTXSlide(t *testing.T) {
	p := rtlPage(t,
		sprint.NewRecord("לתקן באג", "דנה", "2"),
		sprint.NewRecord("R&D <review>", "יוסי", "3"),
	)
	data, err := RenderPPTX(p, WithCreated(fixedTime))
	if err != nil {
		t.Fatalf("RenderPPTX() error: %v", err)
	}
	s := unzip(t, data)[PartSlide]

	if got := strings.Count(s, `prst="ellipse"`); got != 1900 {
		t.Errorf("ellipses = %d, want 1900", got)
	}
	if got := strings.Count(s, `txBox="1"`); got != 8 {
		t.Errorf("text boxes = %d, want 8", got)
	}
	if got := strings.Count(s, `<a:pPr algn="r" rtl="1"/>`); got != 8 {
		t.Errorf("right-to-left paragraphs = %d, want 8", got)
	}
	for _, text := range []string{"<a:t>לתקן באג</a:t>", "<a:t>דנה</a:t>", "<a:t>R&amp;D &lt;review&gt;</a:t>", "<a:t>1</a:t>", "<a:t>2</a:t>"} {
		if !strings.Contains(s, text) {
			t.Errorf("slide is missing %s", text)
		}
	}
	if !strings.Contains(s, `<a:srgbClr val="FF33CC"/>`) {
		t.Error("dots are not pink")
	}
	if !strings.Contains(s, `<a:ln w="18000">`) {
		t.Error("boxes should have a 0.05 cm (18000 EMU) border")
	}
	if !strings.Contains(s, `sz="1800"`) {
		t.Error("text should be 18 pt")
	}
	if !strings.Contains(s, `<p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/>`) {
		t.Error("background should be white")
	}

	// Index box of row 0: x = 22.98 cm, y = 1 cm, 1.02 × 1.03 cm.
	if !strings.Contains(s, `<a:off x="8272800" y="360000"/><a:ext cx="367200" cy="370800"/>`) {
		t.Error("index box of row 0 has unexpected geometry")
	}

	// Dots come before every text box.
	if strings.LastIndex(s, `prst="ellipse"`) > strings.Index(s, `txBox="1"`) {
		t.Error("dots must be drawn before boxes")
	}

	// Shape ids are unique.
	ids := regexp.MustCompile(`<p:cNvPr id="(\d+)"`).FindAllStringSubmatch(s, -1)
	seen := make(map[string]bool, len(ids))
	for _, m := range ids {
		if seen[m[1]] {
			t.Fatalf("duplicate shape id %s", m[1])
		}
		seen[m[1]] = true
	}
}

func TestRenderPPTXLeftToRight(t *testing.T) {
	data, err := RenderPPTX(ltrPage(t, sprint.NewRecord("Fix bug", "Alice", "2")))
	if err != nil {
		t.Fatalf("RenderPPTX() error: %v", err)
	}
	s := unzip(t, data)[PartSlide]

	if strings.Contains(s, `prst="ellipse"`) {
		t.Error("left-to-right page should have no dots")
	}
	if got := strings.Count(s, `<a:pPr algn="l"/>`); got != 3 {
		t.Errorf("left-aligned paragraphs = %d, want 3", got)
	}
	if strings.Contains(s, `rtl="1"`) {
		t.Error("left-to-right page should have no rtl paragraphs")
	}
}

func TestRenderPPTXZeroRows(t *testing.T) {
	data, err := RenderPPTX(rtlPage(t))
	if err != nil {
		t.Fatalf("RenderPPTX() error: %v", err)
	}
	s := unzip(t, data)[PartSlide]
	if strings.Contains(s, `txBox="1"`) {
		t.Error("zero rows should produce no text boxes")
	}
	if got := strings.Count(s, `prst="ellipse"`); got != 1900 {
		t.Errorf("ellipses = %d, want 1900", got)
	}
}

func TestRenderPPTXPresentation(t *testing.T) {
	data, err := RenderPPTX(ltrPage(t))
	if err != nil {
		t.Fatalf("RenderPPTX() error: %v", err)
	}
	pres := unzip(t, data)[PartPresentation]
	if !strings.Contains(pres, `<p:sldSz cx="9144000" cy="6858000" type="screen4x3"/>`) {
		t.Errorf("unexpected slide size in %s", pres)
	}

	p, err := deck.Render(nil, nil, deck.WithPageSize(33.867, 19.05))
	if err != nil {
		t.Fatal(err)
	}
	data, err = RenderPPTX(p)
	if err != nil {
		t.Fatalf("RenderPPTX() error: %v", err)
	}
	pres = unzip(t, data)[PartPresentation]
	if !strings.Contains(pres, `<p:sldSz cx="12192120" cy="6858000"/>`) {
		t.Errorf("custom page size not written: %s", pres)
	}
}

func TestRenderPPTXCoreProps(t *testing.T) {
	data, err := RenderPPTX(ltrPage(t),
		WithCreated(fixedTime),
		WithIdentifier("sprint-42"),
		WithTitle("Sprint <9>"),
		WithApplication("sprintdeck test"),
	)
	if err != nil {
		t.Fatalf("RenderPPTX() error: %v", err)
	}
	files := unzip(t, data)
	core := files[PartCoreProps]

	for _, want := range []string{
		"<dc:identifier>sprint-42</dc:identifier>",
		"<dc:title>Sprint &lt;9&gt;</dc:title>",
		`<dcterms:created xsi:type="dcterms:W3CDTF">2025-03-09T14:30:00Z</dcterms:created>`,
	} {
		if !strings.Contains(core, want) {
			t.Errorf("core.xml missing %s", want)
		}
	}
	if !strings.Contains(files["docProps/app.xml"], "<Application>sprintdeck test</Application>") {
		t.Error("app.xml missing application name")
	}
}

func TestRenderPPTXDefaultIdentifier(t *testing.T) {
	data, err := RenderPPTX(ltrPage(t))
	if err != nil {
		t.Fatalf("RenderPPTX() error: %v", err)
	}
	core := unzip(t, data)[PartCoreProps]
	m := regexp.MustCompile(`<dc:identifier>([^<]+)</dc:identifier>`).FindStringSubmatch(core)
	if m == nil {
		t.Fatal("no identifier")
	}
	if _, err := uuid.Parse(m[1]); err != nil {
		t.Errorf("identifier %q is not a UUID: %v", m[1], err)
	}
}

func TestRenderPPTXReproducible(t *testing.T) {
	p := rtlPage(t, sprint.NewRecord("לתקן באג", "דנה", "2"))
	opts := []PPTXOption{WithCreated(fixedTime), WithIdentifier("fixed")}

	a, err := RenderPPTX(p, opts...)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderPPTX(p, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical input and options should give identical bytes")
	}
}

func TestRenderPPTXNilPage(t *testing.T) {
	if _, err := RenderPPTX(nil); err == nil {
		t.Error("RenderPPTX(nil) should fail")
	}
}
