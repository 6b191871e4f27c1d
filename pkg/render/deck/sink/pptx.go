package sink

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"

	"github.com/matzehuels/sprintdeck/pkg/buildinfo"
	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/render/deck"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
)

const (
	nsA  = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsPR = "http://schemas.openxmlformats.org/package/2006/relationships"

	relOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps   = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtProps    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relPresProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relViewProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTableStyles = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Part names inside the package.
const (
	PartContentTypes = "[Content_Types].xml"
	PartSlide        = "ppt/slides/slide1.xml"
	PartPresentation = "ppt/presentation.xml"
	PartCoreProps    = "docProps/core.xml"
)

// PPTXOption configures PPTX rendering via [RenderPPTX].
type PPTXOption func(*pptxRenderer)

type pptxRenderer struct {
	title   string
	id      string
	app     string
	created time.Time
}

// WithTitle sets the document title shown by presentation software.
func WithTitle(s string) PPTXOption { return func(r *pptxRenderer) { r.title = s } }

// WithIdentifier sets the document identifier. A random UUID is used otherwise.
func WithIdentifier(id string) PPTXOption { return func(r *pptxRenderer) { r.id = id } }

// WithCreated sets the creation time recorded in the document properties
// and zip entries. Fixing it makes the output byte-for-byte reproducible.
func WithCreated(t time.Time) PPTXOption { return func(r *pptxRenderer) { r.created = t } }

// WithApplication overrides the producing application name.
func WithApplication(s string) PPTXOption { return func(r *pptxRenderer) { r.app = s } }

type part struct {
	name        string
	contentType string
	body        []byte
}

// RenderPPTX writes the page as a single-slide Office Open XML
// presentation. Decorative dots become ellipses, boxes become bordered
// text boxes, in that order.
func RenderPPTX(p *deck.Page, opts ...PPTXOption) ([]byte, error) {
	if p == nil {
		return nil, errs.New(errs.ErrCodeRender, "nil page")
	}
	r := pptxRenderer{title: "Sprint", app: buildinfo.Application()}
	for _, opt := range opts {
		opt(&r)
	}
	if r.id == "" {
		r.id = uuid.NewString()
	}
	if r.created.IsZero() {
		r.created = time.Now()
	}
	r.created = r.created.UTC().Truncate(time.Second)

	parts := r.parts(p)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if err := writePart(zw, PartContentTypes, contentTypes(parts), r.created); err != nil {
		return nil, err
	}
	for _, pt := range parts {
		if err := writePart(zw, pt.name, pt.body, r.created); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeRender, err, "finish pptx archive")
	}
	return buf.Bytes(), nil
}

func writePart(zw *zip.Writer, name string, body []byte, modified time.Time) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified})
	if err != nil {
		return errs.Wrap(errs.ErrCodeRender, err, "create %s", name)
	}
	if _, err := w.Write(body); err != nil {
		return errs.Wrap(errs.ErrCodeRender, err, "write %s", name)
	}
	return nil
}

func (r pptxRenderer) parts(p *deck.Page) []part {
	return []part{
		{"_rels/.rels", "", rels(
			rel{"rId1", relOfficeDoc, "ppt/presentation.xml"},
			rel{"rId2", relCoreProps, "docProps/core.xml"},
			rel{"rId3", relExtProps, "docProps/app.xml"},
		)},
		{PartCoreProps, ctCoreProps, r.coreProps()},
		{"docProps/app.xml", ctExtProps, r.appProps()},
		{PartPresentation, ctPresentation, presentation(p)},
		{"ppt/_rels/presentation.xml.rels", "", rels(
			rel{"rId1", relSlideMaster, "slideMasters/slideMaster1.xml"},
			rel{"rId2", relSlide, "slides/slide1.xml"},
			rel{"rId3", relPresProps, "presProps.xml"},
			rel{"rId4", relViewProps, "viewProps.xml"},
			rel{"rId5", relTheme, "theme/theme1.xml"},
			rel{"rId6", relTableStyles, "tableStyles.xml"},
		)},
		{"ppt/slideMasters/slideMaster1.xml", ctSlideMaster, []byte(slideMasterXML)},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", "", rels(
			rel{"rId1", relSlideLayout, "../slideLayouts/slideLayout1.xml"},
			rel{"rId2", relTheme, "../theme/theme1.xml"},
		)},
		{"ppt/slideLayouts/slideLayout1.xml", ctSlideLayout, []byte(slideLayoutXML)},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", "", rels(
			rel{"rId1", relSlideMaster, "../slideMasters/slideMaster1.xml"},
		)},
		{PartSlide, ctSlide, slide(p)},
		{"ppt/slides/_rels/slide1.xml.rels", "", rels(
			rel{"rId1", relSlideLayout, "../slideLayouts/slideLayout1.xml"},
		)},
		{"ppt/theme/theme1.xml", ctTheme, []byte(themeXML)},
		{"ppt/presProps.xml", ctPresProps, []byte(xmlHeader + `<p:presentationPr xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `"/>`)},
		{"ppt/viewProps.xml", ctViewProps, []byte(xmlHeader + `<p:viewPr xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `"/>`)},
		{"ppt/tableStyles.xml", ctTableStyles, []byte(xmlHeader + `<a:tblStyleLst xmlns:a="` + nsA + `" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`)},
	}
}

func contentTypes(parts []part) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	buf.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	buf.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	for _, pt := range parts {
		if pt.contentType == "" {
			continue
		}
		fmt.Fprintf(&buf, `<Override PartName="/%s" ContentType="%s"/>`, pt.name, pt.contentType)
	}
	buf.WriteString(`</Types>`)
	return buf.Bytes()
}

type rel struct{ id, typ, target string }

func rels(rs ...rel) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<Relationships xmlns="%s">`, nsPR)
	for _, r := range rs {
		fmt.Fprintf(&buf, `<Relationship Id="%s" Type="%s" Target="%s"/>`, r.id, r.typ, r.target)
	}
	buf.WriteString(`</Relationships>`)
	return buf.Bytes()
}

func (r pptxRenderer) coreProps() []byte {
	ts := r.created.Format(time.RFC3339)
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	fmt.Fprintf(&buf, `<dc:title>%s</dc:title>`, escapeXML(r.title))
	fmt.Fprintf(&buf, `<dc:creator>%s</dc:creator>`, escapeXML(r.app))
	fmt.Fprintf(&buf, `<dc:identifier>%s</dc:identifier>`, escapeXML(r.id))
	fmt.Fprintf(&buf, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, ts)
	fmt.Fprintf(&buf, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, ts)
	buf.WriteString(`</cp:coreProperties>`)
	return buf.Bytes()
}

func (r pptxRenderer) appProps() []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"` +
		` xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">`)
	fmt.Fprintf(&buf, `<Application>%s</Application>`, escapeXML(r.app))
	buf.WriteString(`<Slides>1</Slides>`)
	buf.WriteString(`</Properties>`)
	return buf.Bytes()
}

func presentation(p *deck.Page) []byte {
	cx, cy := emu(p.Width), emu(p.Height)
	sizeType := ""
	if cx == emu(layout.PageWidth) && cy == emu(layout.PageHeight) {
		sizeType = ` type="screen4x3"`
	}

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" saveSubsetFonts="1">`, nsA, nsR, nsP)
	buf.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	buf.WriteString(`<p:sldIdLst><p:sldId id="256" r:id="rId2"/></p:sldIdLst>`)
	fmt.Fprintf(&buf, `<p:sldSz cx="%d" cy="%d"%s/>`, cx, cy, sizeType)
	fmt.Fprintf(&buf, `<p:notesSz cx="%d" cy="%d"/>`, cy, cx)
	buf.WriteString(`</p:presentation>`)
	return buf.Bytes()
}

func slide(p *deck.Page) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	buf.WriteString(`<p:cSld>`)
	fmt.Fprintf(&buf, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, p.Background.Hex())
	buf.WriteString(`<p:spTree>`)
	buf.WriteString(groupProps)

	id := 2
	for _, d := range p.Dots {
		writeDot(&buf, id, d)
		id++
	}
	for _, b := range p.Boxes {
		writeTextBox(&buf, id, b)
		id++
	}

	buf.WriteString(`</p:spTree></p:cSld>`)
	buf.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	buf.WriteString(`</p:sld>`)
	return buf.Bytes()
}

func writeXfrm(buf *bytes.Buffer, r layout.Rect) {
	fmt.Fprintf(buf, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		emu(r.X), emu(r.Y), emu(r.W), emu(r.H))
}

func writeDot(buf *bytes.Buffer, id int, d deck.Ellipse) {
	fmt.Fprintf(buf, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Dot %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`, id, id-1)
	buf.WriteString(`<p:spPr>`)
	writeXfrm(buf, d.Rect)
	buf.WriteString(`<a:prstGeom prst="ellipse"><a:avLst/></a:prstGeom>`)
	fmt.Fprintf(buf, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, d.Fill.Hex())
	fmt.Fprintf(buf, `<a:ln><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`, d.Line.Hex())
	buf.WriteString(`</p:spPr></p:sp>`)
}

func writeTextBox(buf *bytes.Buffer, id int, b deck.TextBox) {
	fmt.Fprintf(buf, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, id-1)
	buf.WriteString(`<p:spPr>`)
	writeXfrm(buf, b.Rect)
	buf.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/>`)
	if b.Border.Width > 0 {
		fmt.Fprintf(buf, `<a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`,
			emu(b.Border.Width), b.Border.Color.Hex())
	} else {
		buf.WriteString(`<a:ln><a:noFill/></a:ln>`)
	}
	buf.WriteString(`</p:spPr>`)

	buf.WriteString(`<p:txBody><a:bodyPr wrap="square" rtlCol="0"><a:noAutofit/></a:bodyPr><a:lstStyle/><a:p>`)
	algn := "l"
	if b.Align == layout.AlignRight {
		algn = "r"
	}
	lang := "en-US"
	if b.RTL {
		lang = "he-IL"
		fmt.Fprintf(buf, `<a:pPr algn="%s" rtl="1"/>`, algn)
	} else {
		fmt.Fprintf(buf, `<a:pPr algn="%s"/>`, algn)
	}
	sz := int(b.FontSize*100 + 0.5)
	if b.Text != "" {
		fmt.Fprintf(buf, `<a:r><a:rPr lang="%s" sz="%d" dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r>`,
			lang, sz, deck.Black.Hex(), escapeXML(b.Text))
	}
	fmt.Fprintf(buf, `<a:endParaRPr lang="%s" sz="%d" dirty="0"/>`, lang, sz)
	buf.WriteString(`</a:p></p:txBody></p:sp>`)
}

const groupProps = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

const slideMasterXML = xmlHeader +
	`<p:sldMaster xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `">` +
	`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>` + groupProps + `</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3"` +
	` accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`<p:txStyles><p:titleStyle/><p:bodyStyle/><p:otherStyle/></p:txStyles>` +
	`</p:sldMaster>`

const slideLayoutXML = xmlHeader +
	`<p:sldLayout xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `" type="blank" preserve="1">` +
	`<p:cSld name="Blank"><p:spTree>` + groupProps + `</p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const themeXML = xmlHeader +
	`<a:theme xmlns:a="` + nsA + `" name="Office Theme"><a:themeElements>` +
	`<a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Office">` +
	`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface="Arial"/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface="Arial"/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Office">` +
	`<a:fillStyleLst>` + phFill + phFill + phFill + `</a:fillStyleLst>` +
	`<a:lnStyleLst>` +
	`<a:ln w="6350">` + phFill + `</a:ln>` +
	`<a:ln w="12700">` + phFill + `</a:ln>` +
	`<a:ln w="19050">` + phFill + `</a:ln>` +
	`</a:lnStyleLst>` +
	`<a:effectStyleLst>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`</a:effectStyleLst>` +
	`<a:bgFillStyleLst>` + phFill + phFill + phFill + `</a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>`

const phFill = `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
