package pdfwriter

import (
	"fmt"
	"math"

	"github.com/sap-lang/sap/contentstream"
	"github.com/sap-lang/sap/coords"
	"github.com/sap-lang/sap/fonts"
	"github.com/sap-lang/sap/layout"
	"github.com/sap-lang/sap/microtype"
	"github.com/sap-lang/sap/observability"
	"github.com/sap-lang/sap/pdfdoc"
	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

// Renderer walks a laid-out object forest and turns it into pdfdoc
// content streams, resources and annotations (spec §4.7's "render
// phase": the layout core never touches PDF operators directly,
// matching the teacher's separation between its layout and writer
// packages). One Renderer is shared across a whole document so fonts
// and images are deduped by identity across pages, the same way
// pdfwriter's builder dedupes indirect objects.
type Renderer struct {
	Fonts     layout.FontResolver
	Usage     *fonts.UsageTracker
	Log       observability.Logger
	Microtype microtype.Table // optional; nil disables character protrusion

	fontResNames map[fonts.FontSource]string
	fontObjs     map[fonts.FontSource]*pdfdoc.Font
	runeByGlyph  map[fonts.FontSource]map[fonts.GlyphID]rune
	nextFontNum  int

	imageCache map[string]*pdfdoc.XObject
	loadImage  func(sourceRef string) (*pdfdoc.XObject, error)
	nextImgNum int

	nodeIndex map[tree.NodeID]nodeTarget
}

// log returns r.Log, or a NopLogger if the caller never set one.
func (r *Renderer) log() observability.Logger {
	if r.Log == nil {
		return observability.NopLogger{}
	}
	return r.Log
}

type nodeTarget struct {
	pageIndex int
	x, y      float64 // PDF points, bottom-left origin
}

// NewRenderer builds a Renderer. resolver resolves a Word's effective
// style to the FontSource it was measured against (spec §4.2).
// loadImage resolves a tree.Image's SourceRef to decoded pixel data; it
// may be nil if the document never contains images.
func NewRenderer(resolver layout.FontResolver, loadImage func(sourceRef string) (*pdfdoc.XObject, error)) *Renderer {
	return &Renderer{
		Fonts:        resolver,
		Usage:        fonts.NewUsageTracker(),
		Log:          observability.NopLogger{},
		fontResNames: make(map[fonts.FontSource]string),
		fontObjs:     make(map[fonts.FontSource]*pdfdoc.Font),
		runeByGlyph:  make(map[fonts.FontSource]map[fonts.GlyphID]rune),
		imageCache:   make(map[string]*pdfdoc.XObject),
		loadImage:    loadImage,
		nodeIndex:    make(map[tree.NodeID]nodeTarget),
	}
}

// IndexPages records, for every object reachable from objs (the whole
// document's top-level layout objects; a single object's own children
// may straddle several pages after a page break), the page/position its
// originating tree node ended up at. Internal link destinations and
// outline bookmarks name a tree.NodeID (spec §9's redesign: the tree
// never points at the layout objects it produced), so this index must
// be built once, across the whole document, before any link annotation
// can be resolved. mediaBoxes is indexed by page number.
func (r *Renderer) IndexPages(mediaBoxes []pdfdoc.Rectangle, objs []layout.Object) {
	for _, o := range objs {
		r.indexObject(o, mediaBoxes)
	}
}

func (r *Renderer) indexObject(o layout.Object, mediaBoxes []pdfdoc.Rectangle) {
	pos := o.Position()
	if o.NodeID() != 0 && pos.PageIndex < len(mediaBoxes) {
		pageHeightPt := mediaBoxes[pos.PageIndex].URY - mediaBoxes[pos.PageIndex].LLY
		r.nodeIndex[o.NodeID()] = nodeTarget{
			pageIndex: pos.PageIndex,
			x:         pos.Position.X.Pt(),
			y:         pageHeightPt - pos.Position.Y.Pt(),
		}
	}
	switch v := o.(type) {
	case *layout.Container:
		for _, c := range v.Children {
			r.indexObject(c, mediaBoxes)
		}
	case *layout.Line:
		for _, c := range v.Children {
			r.indexObject(c, mediaBoxes)
		}
	case *layout.LayoutSpan:
		for _, c := range v.Children {
			r.indexObject(c, mediaBoxes)
		}
	}
}

// RenderPage renders every object positioned on pageIndex into one
// pdfdoc.Page. IndexPages must have been called first if the document
// contains any internal links or outline bookmarks.
func (r *Renderer) RenderPage(index int, mediaBox pdfdoc.Rectangle, objs []layout.Object) (*pdfdoc.Page, error) {
	cs := contentstream.NewBuilder()
	res := &pdfdoc.Resources{Fonts: map[string]*pdfdoc.Font{}, XObjects: map[string]*pdfdoc.XObject{}}
	var annots []pdfdoc.Annotation

	pageHeightPt := mediaBox.URY - mediaBox.LLY
	for _, o := range objs {
		if err := r.renderObject(cs, res, &annots, o, index, pageHeightPt); err != nil {
			return nil, err
		}
	}

	return &pdfdoc.Page{
		Index:       index,
		MediaBox:    mediaBox,
		Resources:   res,
		Contents:    []pdfdoc.ContentStream{{RawBytes: cs.Bytes()}},
		Annotations: annots,
	}, nil
}

// Finalize fills in every tracked font's glyph-id-keyed widths and
// ToUnicode table and embeds its font program, once glyph usage from
// every page is known. It must run after every RenderPage call and
// before the document is handed to Writer.Write. Embedding is
// deliberately unsubsetted (full font program, CID==GID, identity
// CIDToGIDMap): renumbering glyph ids would invalidate the Tj strings
// already written into each page's content stream, and a second
// encoding pass would need the usage tracker's output before the first
// page is rendered, which isn't available yet at that point.
func (r *Renderer) Finalize() {
	for src, font := range r.fontObjs {
		usage := r.runeByGlyph[src]
		if src.IsBuiltin() {
			for g, ru := range usage {
				font.Widths[int(g)] = int(math.Round(src.Metrics(g).HorzAdvance))
				if font.ToUnicode == nil {
					font.ToUnicode = map[int][]rune{}
				}
				font.ToUnicode[int(g)] = []rune{ru}
			}
			continue
		}
		m := src.FontMetrics()
		scale := 1000.0 / m.UnitsPerEm
		for g, ru := range usage {
			font.DescendantFont.W[int(g)] = int(math.Round(src.Metrics(g).HorzAdvance * scale))
			font.ToUnicode[int(g)] = []rune{ru}
		}
		font.DescendantFont.Descriptor.FontFile = src.FontFile()
	}
}

// renderObject emits o's content onto pageIndex if o itself lands there,
// and always recurses into container-like children regardless of the
// container's own page, since a Container/Line that started on one page
// may carry children the position pass pushed onto a later page after a
// page break (spec §4.6's "a cursor past the content area moves to a
// new page").
func (r *Renderer) renderObject(cs *contentstream.Builder, res *pdfdoc.Resources, annots *[]pdfdoc.Annotation, o layout.Object, pageIndex int, pageHeightPt float64) error {
	onThisPage := o.Position().PageIndex == pageIndex

	switch v := o.(type) {
	case *layout.Line:
		if onThisPage {
			if err := r.renderLine(cs, res, v, pageHeightPt); err != nil {
				return err
			}
		}
	case *layout.Container:
		if v.RawBytes != nil {
			if onThisPage {
				r.renderRawBlock(cs, v, pageHeightPt)
			}
			break
		}
		if onThisPage {
			for _, c := range v.BorderObjects {
				if err := r.renderObject(cs, res, annots, c, pageIndex, pageHeightPt); err != nil {
					return err
				}
			}
		}
		for _, c := range v.Children {
			if err := r.renderObject(cs, res, annots, c, pageIndex, pageHeightPt); err != nil {
				return err
			}
		}
	case *layout.LayoutSpan:
		for _, c := range v.Children {
			if err := r.renderObject(cs, res, annots, c, pageIndex, pageHeightPt); err != nil {
				return err
			}
		}
	case *layout.Image:
		if onThisPage {
			if err := r.renderImage(cs, res, v, pageHeightPt); err != nil {
				return err
			}
		}
	case *layout.Path:
		if onThisPage {
			r.renderPath(cs, v, pageHeightPt)
		}
	case *layout.Spacer:
		// no visible content
	}

	if onThisPage {
		if dest := o.LinkDest(); dest != nil {
			if annot, ok := r.buildLinkAnnotation(o, dest, pageHeightPt); ok {
				*annots = append(*annots, annot)
			}
		}
	}
	return nil
}

func (r *Renderer) buildLinkAnnotation(o layout.Object, dest *tree.LinkDestination, pageHeightPt float64) (pdfdoc.Annotation, bool) {
	pos := o.Position()
	sz := o.Size()
	rect := pdfdoc.Rectangle{
		LLX: pos.Position.X.Pt(), LLY: pageHeightPt - pos.Position.Y.Pt() - sz.TotalHeight().Pt(),
		URX: pos.Position.X.Pt() + sz.Width.Pt(), URY: pageHeightPt - pos.Position.Y.Pt(),
	}
	link := &pdfdoc.LinkAnnotation{RectVal: rect}
	if dest.IsExternal {
		link.URI = dest.URL
		return link, true
	}
	target, ok := r.nodeIndex[dest.DestNodeID]
	if !ok {
		return nil, false
	}
	link.PageRef = target.pageIndex
	link.Dest = &pdfdoc.OutlineDestination{X: &target.x, Y: &target.y}
	return link, true
}

// renderLine emits one BT/ET text object for a line's Words, applying
// each Word's own resolved font/size/colour and the relative offset
// the line breaker baked in (spec §4.4.3).
func (r *Renderer) renderLine(cs *contentstream.Builder, res *pdfdoc.Resources, l *layout.Line, pageHeightPt float64) error {
	pos := l.Position()
	baselineY := pageHeightPt - pos.Position.Y.Pt() - l.LineAscent.Pt()

	var words []*layout.Word
	for _, child := range l.Children {
		if w, ok := child.(*layout.Word); ok {
			words = append(words, w)
		}
	}

	cs.BeginText()
	cs.SetTextMatrix(coords.Translate(pos.Position.X.Pt(), baselineY))
	var curFont fonts.FontSource
	var prevOffset units.Offset2d
	for i, w := range words {
		src, size, err := layout.ResolveWordFont(r.Fonts, w.Style)
		if err != nil {
			return fmt.Errorf("pdfwriter: resolve word font: %w", err)
		}
		resName := r.ensureFontResource(res, src)
		if src != curFont {
			cs.SetFont(resName, size.Pt())
			curFont = src
		}
		if w.Style.HasColour() {
			col := w.Style.Colour()
			cs.SetFillColorRGB(col.R, col.G, col.B)
		}
		// w.RelativeOffset is an absolute line-local offset (the running
		// sum RenderLine accumulates across pieces), but Td is a delta on
		// the current text-line matrix: translate by the difference from
		// the previously emitted word, not the absolute offset itself.
		cs.MoveText(w.RelativeOffset.DX.Pt()-prevOffset.DX.Pt(), -(w.RelativeOffset.DY.Pt() - prevOffset.DY.Pt()))
		prevOffset = w.RelativeOffset

		profile := r.microtypeProfile(w.Style)
		r.drawWordWithProtrusion(cs, src, size, profile, w.Text, i == 0, i == len(words)-1)
	}
	cs.EndText()
	return nil
}

// microtypeProfile returns st's family's protrusion profile, or the zero
// Profile (no protrusion) if no table is configured or the family has no
// entry.
func (r *Renderer) microtypeProfile(st style.Style) microtype.Profile {
	if r.Microtype == nil || !st.HasFontFamily() {
		return microtype.Profile{}
	}
	return r.Microtype.Lookup(st.FontFamily())
}

// drawWordWithProtrusion emits text's glyphs via ShowText, hanging its
// first rune past the line's left edge (if isFirstWord and the family's
// profile configures left protrusion for that rune) and its last rune
// past the right edge (if isLastWord, symmetrically). The hung glyph is
// drawn at a transiently shifted text position that is restored
// immediately after, so protrusion never perturbs the positions of
// surrounding glyphs.
func (r *Renderer) drawWordWithProtrusion(cs *contentstream.Builder, src fonts.FontSource, size units.Length, profile microtype.Profile, text string, isFirstWord, isLastWord bool) {
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}

	head := 0
	if isFirstWord {
		if ratio, ok := profile.LeftProtrusion(runes[0]); ok {
			shift := ratio * glyphAdvancePt(src, size, runes[0])
			cs.MoveText(-shift, 0)
			r.showRunes(cs, src, runes[0:1])
			cs.MoveText(shift, 0)
			head = 1
		}
	}

	tail := len(runes)
	tailShift := 0.0
	hasTail := false
	if isLastWord && tail > head {
		if ratio, ok := profile.RightProtrusion(runes[tail-1]); ok {
			tailShift = ratio * glyphAdvancePt(src, size, runes[tail-1])
			tail--
			hasTail = true
		}
	}

	if tail > head {
		r.showRunes(cs, src, runes[head:tail])
	}
	if hasTail {
		cs.MoveText(tailShift, 0)
		r.showRunes(cs, src, runes[tail:tail+1])
	}
}

func (r *Renderer) showRunes(cs *contentstream.Builder, src fonts.FontSource, runes []rune) {
	encoded, glyphs := r.encodeAndTrack(src, string(runes))
	r.Usage.RecordAll(src, glyphs)
	cs.ShowText(encoded)
}

// glyphAdvancePt returns ru's horizontal advance under src at fontSize,
// in PDF points, or 0 if ru has no glyph in src.
func glyphAdvancePt(src fonts.FontSource, size units.Length, ru rune) float64 {
	g, ok := src.CharToGlyph(ru)
	if !ok {
		return 0
	}
	m := src.FontMetrics()
	scale := float64(size.Pt()) / m.UnitsPerEm
	return src.Metrics(g).HorzAdvance * scale
}

// encodeAndTrack maps text to this font's glyph codes the same way
// metrics.measureRun measured it (CharToGlyph + ligature Substitute),
// and records the rune each glyph id stands for so Finalize can emit a
// ToUnicode CMap. A codepoint src can't map to a glyph becomes glyph 0
// (.notdef) rather than being dropped, with one warning logged per
// occurrence (spec §7), so the emitted glyph count matches what
// measureRun already measured for the same text.
func (r *Renderer) encodeAndTrack(src fonts.FontSource, text string) ([]byte, []fonts.GlyphID) {
	runes := []rune(text)
	glyphs := make([]fonts.GlyphID, 0, len(runes))
	runeOf := make([]rune, 0, len(runes))
	for _, ru := range runes {
		g, ok := src.CharToGlyph(ru)
		if !ok {
			r.log().Warn("pdfwriter: unmapped codepoint, substituting glyph 0",
				observability.String("rune", string(ru)))
			g = 0
		}
		glyphs = append(glyphs, g)
		runeOf = append(runeOf, ru)
	}
	if res, ok := src.Substitute(glyphs, fonts.FeatureSet{"liga": true, "kern": true}); ok {
		// a ligature collapses several runes into one glyph; keep the
		// first consumed rune as the ToUnicode mapping for it.
		var collapsedRunes []rune
		ri := 0
		for _, n := range res.Consumed {
			if ri < len(runeOf) {
				collapsedRunes = append(collapsedRunes, runeOf[ri])
			}
			ri += n
		}
		glyphs = res.NewGlyphs
		runeOf = collapsedRunes
	}

	byFont := r.runeByGlyph[src]
	if byFont == nil {
		byFont = make(map[fonts.GlyphID]rune)
		r.runeByGlyph[src] = byFont
	}
	encoded := make([]byte, 0, len(glyphs)*2)
	for i, g := range glyphs {
		if i < len(runeOf) {
			byFont[g] = runeOf[i]
		}
		if src.IsBuiltin() {
			encoded = append(encoded, byte(g))
		} else {
			encoded = append(encoded, byte(g>>8), byte(g))
		}
	}
	return encoded, glyphs
}

func (r *Renderer) renderImage(cs *contentstream.Builder, res *pdfdoc.Resources, img *layout.Image, pageHeightPt float64) error {
	xo, ok := r.imageCache[img.SourceRef]
	if !ok {
		if r.loadImage == nil {
			return fmt.Errorf("pdfwriter: image %q referenced but no image loader configured", img.SourceRef)
		}
		var err error
		xo, err = r.loadImage(img.SourceRef)
		if err != nil {
			return fmt.Errorf("pdfwriter: load image %q: %w", img.SourceRef, err)
		}
		r.imageCache[img.SourceRef] = xo
	}
	r.nextImgNum++
	name := fmt.Sprintf("Im%d", r.nextImgNum)
	res.XObjects[name] = xo

	pos := img.Position()
	sz := img.Size()
	cs.Save()
	cs.Concat(coords.Matrix{
		sz.Width.Pt(), 0, 0, sz.TotalHeight().Pt(),
		pos.Position.X.Pt(), pageHeightPt - pos.Position.Y.Pt() - sz.TotalHeight().Pt(),
	})
	cs.InvokeXObject(name)
	cs.Restore()
	return nil
}

func (r *Renderer) renderPath(cs *contentstream.Builder, p *layout.Path, pageHeightPt float64) {
	pos := p.Position()
	cs.Save()
	if p.Style.StrokeColour != nil {
		cs.SetStrokeColorRGB(p.Style.StrokeColour.R, p.Style.StrokeColour.G, p.Style.StrokeColour.B)
	}
	if p.Style.FillColour != nil {
		cs.SetFillColorRGB(p.Style.FillColour.R, p.Style.FillColour.G, p.Style.FillColour.B)
	}
	cs.SetLineWidth(p.Style.LineWidth)
	ox, oy := pos.Position.X.Pt(), pageHeightPt-pos.Position.Y.Pt()
	for _, seg := range p.Segments {
		switch seg.Kind {
		case layout.SegMoveTo:
			cs.MoveTo(ox+seg.X, oy-seg.Y)
		case layout.SegLineTo:
			cs.LineTo(ox+seg.X, oy-seg.Y)
		case layout.SegCubicBezier:
			cs.CurveTo(ox+seg.X1, oy-seg.Y1, ox+seg.X2, oy-seg.Y2, ox+seg.X, oy-seg.Y)
		case layout.SegRectangle:
			cs.Rect(ox, oy-seg.H, seg.W, seg.H)
		case layout.SegClosePath:
			cs.ClosePath()
		}
	}
	switch {
	case p.Style.StrokeColour != nil && p.Style.FillColour != nil:
		cs.FillStroke()
	case p.Style.FillColour != nil:
		cs.Fill()
	case p.Style.StrokeColour != nil:
		cs.Stroke()
	default:
		cs.NoOp()
	}
	cs.Restore()
}

// renderRawBlock splices a tree.RawBlock's opaque content-stream bytes
// into the page, translated to the block's own position.
func (r *Renderer) renderRawBlock(cs *contentstream.Builder, c *layout.Container, pageHeightPt float64) {
	pos := c.Position()
	sz := c.Size()
	cs.Save()
	cs.Concat(coords.Translate(pos.Position.X.Pt(), pageHeightPt-pos.Position.Y.Pt()-sz.TotalHeight().Pt()))
	cs.Raw(c.RawBytes)
	cs.Restore()
}

func (r *Renderer) ensureFontResource(res *pdfdoc.Resources, src fonts.FontSource) string {
	name, ok := r.fontResNames[src]
	if !ok {
		r.nextFontNum++
		name = fmt.Sprintf("F%d", r.nextFontNum)
		r.fontResNames[src] = name
		r.fontObjs[src] = newPDFFont(src)
	}
	res.Fonts[name] = r.fontObjs[src]
	return name
}

// newPDFFont builds the shell of a font resource for src; Widths/W and
// ToUnicode are left empty and filled in by Finalize once every page's
// glyph usage is known.
func newPDFFont(src fonts.FontSource) *pdfdoc.Font {
	if src.IsBuiltin() {
		return &pdfdoc.Font{
			Subtype:   "Type1",
			BaseFont:  src.Name(),
			Encoding:  "WinAnsiEncoding",
			Widths:    map[int]int{},
			ToUnicode: map[int][]rune{},
		}
	}
	m := src.FontMetrics()
	return &pdfdoc.Font{
		Subtype:       "Type0",
		BaseFont:      src.Name(),
		Encoding:      "Identity-H",
		ToUnicode:     map[int][]rune{},
		CIDSystemInfo: &pdfdoc.CIDSystemInfo{Registry: "Adobe", Ordering: "Identity", Supplement: 0},
		DescendantFont: &pdfdoc.CIDFont{
			Subtype:       "CIDFontType2",
			BaseFont:      src.Name(),
			CIDSystemInfo: pdfdoc.CIDSystemInfo{Registry: "Adobe", Ordering: "Identity", Supplement: 0},
			DW:            int(math.Round(m.UnitsPerEm)),
			W:             map[int]int{},
			Descriptor: &pdfdoc.FontDescriptor{
				FontName:     src.Name(),
				ItalicAngle:  m.ItalicAngle,
				Ascent:       m.TypoAscent,
				Descent:      m.TypoDescent,
				CapHeight:    m.CapHeight,
				FontBBox:     [4]float64{m.XMin, m.YMin, m.XMax, m.YMax},
				FontFileType: "FontFile2",
			},
		},
	}
}
