package pdfwriter

import (
	"fmt"
	"io"
	"sort"

	"github.com/sap-lang/sap/pdf"
	"github.com/sap-lang/sap/pdfdoc"
)

// builder accumulates the indirect object graph for one Document. Object
// identity dedup (the same *pdfdoc.Font or *pdfdoc.XObject pointer
// reused across pages serialises to one indirect object, referenced
// from every page's /Resources) replaces the teacher's separate
// optimize-package dedup pass: because the pipeline only ever builds
// fresh documents (never reads one back to dedup after the fact), the
// natural place for this is here, at graph-construction time, keyed on
// Go pointer identity rather than a post-hoc content hash.
type builder struct {
	cfg     Config
	objects map[pdf.ObjectRef]pdf.Object
	order   []pdf.ObjectRef
	nextNum int

	fontRefs    map[*pdfdoc.Font]pdf.ObjectRef
	xobjectRefs map[*pdfdoc.XObject]pdf.ObjectRef

	doc     *pdfdoc.Document
	infoRef *pdf.ObjectRef

	// namedDests collects outline destinations under a slugified name
	// (ASCII-safe regardless of the bookmark title's script), emitted as
	// the catalog's /Names /Dests tree.
	namedDests []namedDest
}

type namedDest struct {
	name string
	dest *pdf.ArrayObj
}

func newBuilder(cfg Config) *builder {
	return &builder{
		cfg:         cfg,
		objects:     make(map[pdf.ObjectRef]pdf.Object),
		nextNum:     1,
		fontRefs:    make(map[*pdfdoc.Font]pdf.ObjectRef),
		xobjectRefs: make(map[*pdfdoc.XObject]pdf.ObjectRef),
	}
}

func (b *builder) nextRef() pdf.ObjectRef {
	r := pdf.ObjectRef{Num: b.nextNum, Gen: 0}
	b.nextNum++
	return r
}

func (b *builder) put(obj pdf.Object) pdf.ObjectRef {
	ref := b.nextRef()
	b.objects[ref] = obj
	b.order = append(b.order, ref)
	return ref
}

// build constructs the whole object graph and returns the catalog's ref.
func (b *builder) build(doc *pdfdoc.Document) (pdf.ObjectRef, error) {
	b.doc = doc
	pagesRef := b.nextRef()

	// Reserve every page's object ref up front, since a link/outline
	// destination may point to a page built later (or earlier) than the
	// one it's attached to.
	pageRefs := make([]pdf.ObjectRef, len(doc.Pages))
	for i := range doc.Pages {
		pageRefs[i] = b.nextRef()
	}
	for i, page := range doc.Pages {
		if err := b.buildPage(page, pagesRef, pageRefs[i], pageRefs); err != nil {
			return pdf.ObjectRef{}, fmt.Errorf("page %d: %w", page.Index, err)
		}
	}

	pagesDict := pdf.Dict()
	pagesDict.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("Pages"))
	kids := pdf.NewArray()
	for _, r := range pageRefs {
		kids.Append(pdf.RefObj{R: r})
	}
	pagesDict.Set(pdf.NameLiteral("Kids"), kids)
	pagesDict.Set(pdf.NameLiteral("Count"), pdf.NumberInt(int64(len(pageRefs))))
	b.objects[pagesRef] = pagesDict
	b.order = append(b.order, pagesRef)

	catalog := pdf.Dict()
	catalog.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("Catalog"))
	catalog.Set(pdf.NameLiteral("Pages"), pdf.RefObj{R: pagesRef})
	if doc.Lang != "" {
		catalog.Set(pdf.NameLiteral("Lang"), pdf.Str([]byte(doc.Lang)))
	}
	if len(doc.PageLabels) > 0 {
		catalog.Set(pdf.NameLiteral("PageLabels"), b.buildPageLabels(doc.PageLabels))
	}
	if doc.Marked {
		mi := pdf.Dict()
		mi.Set(pdf.NameLiteral("Marked"), pdf.Bool(true))
		catalog.Set(pdf.NameLiteral("MarkInfo"), mi)
	}
	if len(doc.Outlines) > 0 {
		outlinesRef, err := b.buildOutlines(doc.Outlines, pageRefs)
		if err != nil {
			return pdf.ObjectRef{}, fmt.Errorf("outlines: %w", err)
		}
		catalog.Set(pdf.NameLiteral("Outlines"), pdf.RefObj{R: outlinesRef})
		catalog.Set(pdf.NameLiteral("PageMode"), pdf.NameLiteral("UseOutlines"))
	}
	if len(b.namedDests) > 0 {
		catalog.Set(pdf.NameLiteral("Names"), b.buildNameTree())
	}
	if doc.Metadata != nil && len(doc.Metadata.Raw) > 0 {
		metaDict := pdf.Dict()
		metaDict.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("Metadata"))
		metaDict.Set(pdf.NameLiteral("Subtype"), pdf.NameLiteral("XML"))
		metaDict.Set(pdf.NameLiteral("Length"), pdf.NumberInt(int64(len(doc.Metadata.Raw))))
		metaRef := b.put(pdf.NewStream(metaDict, doc.Metadata.Raw))
		catalog.Set(pdf.NameLiteral("Metadata"), pdf.RefObj{R: metaRef})
	}
	catalogRef := b.put(catalog)

	if doc.Info != nil {
		infoRef := b.buildInfo(doc.Info)
		b.infoRef = &infoRef
	}

	return catalogRef, nil
}

func (b *builder) buildInfo(info *pdfdoc.DocumentInfo) pdf.ObjectRef {
	d := pdf.Dict()
	setIf := func(key, v string) {
		if v != "" {
			d.Set(pdf.NameLiteral(key), pdf.Str([]byte(v)))
		}
	}
	setIf("Title", info.Title)
	setIf("Author", info.Author)
	setIf("Subject", info.Subject)
	setIf("Creator", info.Creator)
	setIf("Producer", info.Producer)
	return b.put(d)
}

func (b *builder) buildPage(page *pdfdoc.Page, parent, self pdf.ObjectRef, pageRefs []pdf.ObjectRef) error {
	dict := pdf.Dict()
	dict.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("Page"))
	dict.Set(pdf.NameLiteral("Parent"), pdf.RefObj{R: parent})
	dict.Set(pdf.NameLiteral("MediaBox"), rectArray(page.MediaBox))

	if page.Resources != nil {
		resRef, err := b.buildResources(page.Resources)
		if err != nil {
			return err
		}
		dict.Set(pdf.NameLiteral("Resources"), pdf.RefObj{R: resRef})
	}

	if len(page.Contents) > 0 {
		contentRef, err := b.buildContents(page.Contents)
		if err != nil {
			return err
		}
		dict.Set(pdf.NameLiteral("Contents"), pdf.RefObj{R: contentRef})
	}

	if len(page.Annotations) > 0 {
		annots := pdf.NewArray()
		for _, a := range page.Annotations {
			link, ok := a.(*pdfdoc.LinkAnnotation)
			if !ok {
				continue // only link annotations are modelled (spec's supplemented feature)
			}
			ref := b.buildLinkAnnotation(link, pageRefs)
			annots.Append(pdf.RefObj{R: ref})
		}
		dict.Set(pdf.NameLiteral("Annots"), annots)
	}

	b.objects[self] = dict
	b.order = append(b.order, self)
	return nil
}

func (b *builder) buildContents(streams []pdfdoc.ContentStream) (pdf.ObjectRef, error) {
	var all []byte
	if !b.cfg.Draft {
		for i, cs := range streams {
			if i > 0 {
				all = append(all, '\n')
			}
			all = append(all, cs.RawBytes...)
		}
	}
	dict := pdf.Dict()
	data := all
	if b.cfg.Compress {
		enc, err := flateEncode(all)
		if err != nil {
			return pdf.ObjectRef{}, fmt.Errorf("compress content stream: %w", err)
		}
		data = enc
		dict.Set(pdf.NameLiteral("Filter"), pdf.NameLiteral("FlateDecode"))
	}
	dict.Set(pdf.NameLiteral("Length"), pdf.NumberInt(int64(len(data))))
	return b.put(pdf.NewStream(dict, data)), nil
}

func (b *builder) buildResources(res *pdfdoc.Resources) (pdf.ObjectRef, error) {
	dict := pdf.Dict()

	if len(res.Fonts) > 0 {
		fontDict := pdf.Dict()
		for _, name := range sortedKeys(res.Fonts) {
			ref, err := b.ensureFont(res.Fonts[name])
			if err != nil {
				return pdf.ObjectRef{}, err
			}
			fontDict.Set(pdf.NameLiteral(name), pdf.RefObj{R: ref})
		}
		dict.Set(pdf.NameLiteral("Font"), fontDict)
	}
	if len(res.XObjects) > 0 {
		xDict := pdf.Dict()
		for _, name := range sortedKeys(res.XObjects) {
			ref, err := b.ensureXObject(res.XObjects[name])
			if err != nil {
				return pdf.ObjectRef{}, err
			}
			xDict.Set(pdf.NameLiteral(name), pdf.RefObj{R: ref})
		}
		dict.Set(pdf.NameLiteral("XObject"), xDict)
	}
	dict.Set(pdf.NameLiteral("ProcSet"), pdf.NewArray(pdf.NameLiteral("PDF"), pdf.NameLiteral("Text"), pdf.NameLiteral("ImageC")))
	return b.put(dict), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b *builder) ensureFont(font *pdfdoc.Font) (pdf.ObjectRef, error) {
	if ref, ok := b.fontRefs[font]; ok {
		return ref, nil
	}
	dict := pdf.Dict()
	dict.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("Font"))
	subtype := font.Subtype
	if subtype == "" {
		subtype = "Type1"
	}
	dict.Set(pdf.NameLiteral("Subtype"), pdf.NameLiteral(subtype))
	base := font.BaseFont
	if base == "" {
		base = "Helvetica"
	}
	dict.Set(pdf.NameLiteral("BaseFont"), pdf.NameLiteral(base))

	if subtype == "Type0" {
		encoding := font.Encoding
		if encoding == "" {
			encoding = "Identity-H"
		}
		dict.Set(pdf.NameLiteral("Encoding"), pdf.NameLiteral(encoding))
		if font.DescendantFont != nil {
			descRef, err := b.buildCIDFont(font.DescendantFont)
			if err != nil {
				return pdf.ObjectRef{}, err
			}
			dict.Set(pdf.NameLiteral("DescendantFonts"), pdf.NewArray(pdf.RefObj{R: descRef}))
		}
		if len(font.ToUnicode) > 0 {
			tuRef := b.buildToUnicode(font.ToUnicode)
			dict.Set(pdf.NameLiteral("ToUnicode"), pdf.RefObj{R: tuRef})
		}
	} else {
		if font.Encoding != "" {
			dict.Set(pdf.NameLiteral("Encoding"), pdf.NameLiteral(font.Encoding))
		}
		if len(font.Widths) > 0 {
			first, last, arr := encodeWidths(font.Widths)
			dict.Set(pdf.NameLiteral("FirstChar"), pdf.NumberInt(int64(first)))
			dict.Set(pdf.NameLiteral("LastChar"), pdf.NumberInt(int64(last)))
			dict.Set(pdf.NameLiteral("Widths"), arr)
		}
		if font.Descriptor != nil {
			descRef, err := b.buildFontDescriptor(font.Descriptor)
			if err != nil {
				return pdf.ObjectRef{}, err
			}
			dict.Set(pdf.NameLiteral("FontDescriptor"), pdf.RefObj{R: descRef})
		}
	}

	ref := b.put(dict)
	b.fontRefs[font] = ref
	return ref, nil
}

func (b *builder) buildCIDFont(cf *pdfdoc.CIDFont) (pdf.ObjectRef, error) {
	dict := pdf.Dict()
	dict.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("Font"))
	subtype := cf.Subtype
	if subtype == "" {
		subtype = "CIDFontType2"
	}
	dict.Set(pdf.NameLiteral("Subtype"), pdf.NameLiteral(subtype))
	base := cf.BaseFont
	if base == "" {
		base = "Helvetica"
	}
	dict.Set(pdf.NameLiteral("BaseFont"), pdf.NameLiteral(base))

	reg, ord := cf.CIDSystemInfo.Registry, cf.CIDSystemInfo.Ordering
	if reg == "" {
		reg = "Adobe"
	}
	if ord == "" {
		ord = "Identity"
	}
	csi := pdf.Dict()
	csi.Set(pdf.NameLiteral("Registry"), pdf.Str([]byte(reg)))
	csi.Set(pdf.NameLiteral("Ordering"), pdf.Str([]byte(ord)))
	csi.Set(pdf.NameLiteral("Supplement"), pdf.NumberInt(int64(cf.CIDSystemInfo.Supplement)))
	dict.Set(pdf.NameLiteral("CIDSystemInfo"), csi)

	dw := cf.DW
	if dw == 0 {
		dw = 1000
	}
	dict.Set(pdf.NameLiteral("DW"), pdf.NumberInt(int64(dw)))
	if len(cf.W) > 0 {
		dict.Set(pdf.NameLiteral("W"), encodeCIDWidths(cf.W))
	}
	if cf.CIDToGIDMap != nil {
		dict.Set(pdf.NameLiteral("CIDToGIDMap"), pdf.NameLiteral("Identity"))
	}
	if cf.Descriptor != nil {
		descRef, err := b.buildFontDescriptor(cf.Descriptor)
		if err != nil {
			return pdf.ObjectRef{}, err
		}
		dict.Set(pdf.NameLiteral("FontDescriptor"), pdf.RefObj{R: descRef})
	}
	return b.put(dict), nil
}

func (b *builder) buildFontDescriptor(fd *pdfdoc.FontDescriptor) (pdf.ObjectRef, error) {
	dict := pdf.Dict()
	dict.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("FontDescriptor"))
	dict.Set(pdf.NameLiteral("FontName"), pdf.NameLiteral(fd.FontName))
	dict.Set(pdf.NameLiteral("Flags"), pdf.NumberInt(int64(fd.Flags)))
	dict.Set(pdf.NameLiteral("ItalicAngle"), pdf.NumberFloat(fd.ItalicAngle))
	dict.Set(pdf.NameLiteral("Ascent"), pdf.NumberFloat(fd.Ascent))
	dict.Set(pdf.NameLiteral("Descent"), pdf.NumberFloat(fd.Descent))
	dict.Set(pdf.NameLiteral("CapHeight"), pdf.NumberFloat(fd.CapHeight))
	dict.Set(pdf.NameLiteral("StemV"), pdf.NumberInt(int64(fd.StemV)))
	dict.Set(pdf.NameLiteral("FontBBox"), pdf.NewArray(
		pdf.NumberFloat(fd.FontBBox[0]), pdf.NumberFloat(fd.FontBBox[1]),
		pdf.NumberFloat(fd.FontBBox[2]), pdf.NumberFloat(fd.FontBBox[3]),
	))
	if len(fd.FontFile) > 0 {
		key := "FontFile2"
		if fd.FontFileType != "" {
			key = fd.FontFileType
		}
		data := fd.FontFile
		streamDict := pdf.Dict()
		if b.cfg.Compress {
			enc, err := flateEncode(data)
			if err != nil {
				return pdf.ObjectRef{}, fmt.Errorf("compress font program: %w", err)
			}
			data = enc
			streamDict.Set(pdf.NameLiteral("Filter"), pdf.NameLiteral("FlateDecode"))
		}
		streamDict.Set(pdf.NameLiteral("Length"), pdf.NumberInt(int64(len(data))))
		streamDict.Set(pdf.NameLiteral("Length1"), pdf.NumberInt(int64(len(fd.FontFile))))
		ffRef := b.put(pdf.NewStream(streamDict, data))
		dict.Set(pdf.NameLiteral(key), pdf.RefObj{R: ffRef})
	}
	return b.put(dict), nil
}

func (b *builder) buildToUnicode(toUnicode map[int][]rune) pdf.ObjectRef {
	cmap := encodeToUnicodeCMap(toUnicode)
	dict := pdf.Dict()
	data := []byte(cmap)
	dict.Set(pdf.NameLiteral("Length"), pdf.NumberInt(int64(len(data))))
	return b.put(pdf.NewStream(dict, data))
}

func (b *builder) ensureXObject(xo *pdfdoc.XObject) (pdf.ObjectRef, error) {
	if ref, ok := b.xobjectRefs[xo]; ok {
		return ref, nil
	}
	dict := pdf.Dict()
	dict.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("XObject"))
	dict.Set(pdf.NameLiteral("Subtype"), pdf.NameLiteral("Image"))
	dict.Set(pdf.NameLiteral("Width"), pdf.NumberInt(int64(xo.Width)))
	dict.Set(pdf.NameLiteral("Height"), pdf.NumberInt(int64(xo.Height)))
	dict.Set(pdf.NameLiteral("ColorSpace"), pdf.NameLiteral(xo.ColorSpace))
	bpc := xo.BitsPerComponent
	if bpc == 0 {
		bpc = 8
	}
	dict.Set(pdf.NameLiteral("BitsPerComponent"), pdf.NumberInt(int64(bpc)))

	data := xo.Data
	if xo.Filter != "" {
		dict.Set(pdf.NameLiteral("Filter"), pdf.NameLiteral(xo.Filter))
	} else if b.cfg.Compress {
		enc, err := flateEncode(data)
		if err != nil {
			return pdf.ObjectRef{}, fmt.Errorf("compress image xobject: %w", err)
		}
		data = enc
		dict.Set(pdf.NameLiteral("Filter"), pdf.NameLiteral("FlateDecode"))
	}
	dict.Set(pdf.NameLiteral("Length"), pdf.NumberInt(int64(len(data))))

	if xo.SMask != nil {
		smaskRef, err := b.ensureXObject(xo.SMask)
		if err != nil {
			return pdf.ObjectRef{}, err
		}
		dict.Set(pdf.NameLiteral("SMask"), pdf.RefObj{R: smaskRef})
	}

	ref := b.put(pdf.NewStream(dict, data))
	b.xobjectRefs[xo] = ref
	return ref, nil
}

func (b *builder) buildLinkAnnotation(link *pdfdoc.LinkAnnotation, pageRefs []pdf.ObjectRef) pdf.ObjectRef {
	dict := pdf.Dict()
	dict.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("Annot"))
	dict.Set(pdf.NameLiteral("Subtype"), pdf.NameLiteral("Link"))
	dict.Set(pdf.NameLiteral("Rect"), rectArray(link.RectVal))
	dict.Set(pdf.NameLiteral("Border"), pdf.NewArray(pdf.NumberInt(0), pdf.NumberInt(0), pdf.NumberInt(0)))
	if link.URI != "" {
		action := pdf.Dict()
		action.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("Action"))
		action.Set(pdf.NameLiteral("S"), pdf.NameLiteral("URI"))
		action.Set(pdf.NameLiteral("URI"), pdf.Str([]byte(link.URI)))
		dict.Set(pdf.NameLiteral("A"), action)
	} else if link.Dest != nil && link.PageRef >= 0 && link.PageRef < len(pageRefs) {
		dict.Set(pdf.NameLiteral("Dest"), destArray(pageRefs[link.PageRef], link.Dest))
	}
	return b.put(dict)
}

// destArray renders an OutlineDestination as "[page /XYZ x y zoom]",
// using /Null in place of any nil coordinate per the PDF spec (spec's
// supplemented link/outline destination feature).
func destArray(pageRef pdf.ObjectRef, dest *pdfdoc.OutlineDestination) *pdf.ArrayObj {
	coord := func(v *float64) pdf.Object {
		if v == nil {
			return pdf.NullObj{}
		}
		return pdf.NumberFloat(*v)
	}
	return pdf.NewArray(pdf.RefObj{R: pageRef}, pdf.NameLiteral("XYZ"),
		coord(dest.X), coord(dest.Y), coord(dest.Zoom))
}

// buildPageLabels renders the sparse page-index->label-prefix map as a
// PDF page-label number tree (spec's page numbering feature): each
// entry starts a new labelling range at the given page index using a
// literal /P prefix and decimal-style numbering restarting at 1.
func (b *builder) buildPageLabels(labels map[int]string) *pdf.DictObj {
	indices := make([]int, 0, len(labels))
	for i := range labels {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	nums := pdf.NewArray()
	for _, idx := range indices {
		rangeDict := pdf.Dict()
		rangeDict.Set(pdf.NameLiteral("S"), pdf.NameLiteral("D"))
		if labels[idx] != "" {
			rangeDict.Set(pdf.NameLiteral("P"), pdf.Str([]byte(labels[idx])))
		}
		nums.Append(pdf.NumberInt(int64(idx)))
		nums.Append(rangeDict)
	}
	dict := pdf.Dict()
	dict.Set(pdf.NameLiteral("Nums"), nums)
	return dict
}

// buildNameTree renders the accumulated named destinations as a flat
// /Dests name tree (valid per the PDF spec for small trees that fit in
// one /Names array; a /Kids split is unneeded at the scale this
// pipeline targets). Names must appear in sorted order.
func (b *builder) buildNameTree() *pdf.DictObj {
	sort.Slice(b.namedDests, func(i, j int) bool { return b.namedDests[i].name < b.namedDests[j].name })
	seen := make(map[string]int)
	names := pdf.NewArray()
	for _, nd := range b.namedDests {
		name := nd.name
		if n := seen[name]; n > 0 {
			name = fmt.Sprintf("%s-%d", name, n)
		}
		seen[nd.name]++
		names.Append(pdf.Str([]byte(name)))
		names.Append(nd.dest)
	}
	destsDict := pdf.Dict()
	destsDict.Set(pdf.NameLiteral("Names"), names)
	namesDict := pdf.Dict()
	namesDict.Set(pdf.NameLiteral("Dests"), destsDict)
	return namesDict
}

func (b *builder) buildOutlines(items []pdfdoc.OutlineItem, pageRefs []pdf.ObjectRef) (pdf.ObjectRef, error) {
	outlinesRef := b.nextRef()
	firstRef, lastRef, count, err := b.buildOutlineSiblings(items, outlinesRef, pageRefs)
	if err != nil {
		return pdf.ObjectRef{}, err
	}
	dict := pdf.Dict()
	dict.Set(pdf.NameLiteral("Type"), pdf.NameLiteral("Outlines"))
	if firstRef != nil {
		dict.Set(pdf.NameLiteral("First"), pdf.RefObj{R: *firstRef})
		dict.Set(pdf.NameLiteral("Last"), pdf.RefObj{R: *lastRef})
	}
	dict.Set(pdf.NameLiteral("Count"), pdf.NumberInt(int64(count)))
	b.objects[outlinesRef] = dict
	b.order = append(b.order, outlinesRef)
	return outlinesRef, nil
}

// buildOutlineSiblings builds one level of the bookmark tree, wiring
// Parent/Prev/Next/First/Last and the /Count sign convention (negative
// when a node with children is recorded collapsed — this pipeline
// always emits outlines expanded, so Count is the positive descendant
// count) per spec's supplemented outline feature, grounded on
// zhiayang/sap's source/pdf/annotation.cpp via original_source/.
func (b *builder) buildOutlineSiblings(items []pdfdoc.OutlineItem, parent pdf.ObjectRef, pageRefs []pdf.ObjectRef) (first, last *pdf.ObjectRef, totalCount int, err error) {
	refs := make([]pdf.ObjectRef, len(items))
	for i := range items {
		refs[i] = b.nextRef()
	}
	for i, item := range items {
		dict := pdf.Dict()
		dict.Set(pdf.NameLiteral("Title"), pdf.Str([]byte(item.Title)))
		dict.Set(pdf.NameLiteral("Parent"), pdf.RefObj{R: parent})
		if i > 0 {
			dict.Set(pdf.NameLiteral("Prev"), pdf.RefObj{R: refs[i-1]})
		}
		if i < len(items)-1 {
			dict.Set(pdf.NameLiteral("Next"), pdf.RefObj{R: refs[i+1]})
		}
		if item.PageIndex >= 0 && item.PageIndex < len(pageRefs) {
			dest := item.Dest
			if dest == nil {
				dest = &pdfdoc.OutlineDestination{}
			}
			arr := destArray(pageRefs[item.PageIndex], dest)
			dict.Set(pdf.NameLiteral("Dest"), arr)
			b.namedDests = append(b.namedDests, namedDest{name: outlineInternalName(item.Title, i), dest: arr})
		}
		childCount := 0
		if len(item.Children) > 0 {
			cFirst, cLast, cCount, err := b.buildOutlineSiblings(item.Children, refs[i], pageRefs)
			if err != nil {
				return nil, nil, 0, err
			}
			dict.Set(pdf.NameLiteral("First"), pdf.RefObj{R: *cFirst})
			dict.Set(pdf.NameLiteral("Last"), pdf.RefObj{R: *cLast})
			dict.Set(pdf.NameLiteral("Count"), pdf.NumberInt(int64(cCount)))
			childCount = cCount
		}
		b.objects[refs[i]] = dict
		b.order = append(b.order, refs[i])
		totalCount += 1 + childCount
	}
	if len(refs) == 0 {
		return nil, nil, 0, nil
	}
	return &refs[0], &refs[len(refs)-1], totalCount, nil
}

// serialiseTo writes the PDF header, every indirect object in b.order,
// the classic cross-reference table, and the trailer.
func (b *builder) serialiseTo(w io.Writer, catalogRef pdf.ObjectRef) error {
	cw := &countingWriter{w: w}
	fmt.Fprintf(cw, "%%PDF-%s\n%%\xe2\xe3\xcf\xd3\n", string(b.cfg.Version))

	offsets := make(map[int]int64, len(b.order))
	maxNum := 0
	for _, ref := range b.order {
		offsets[ref.Num] = cw.n
		if _, err := cw.Write(serializeObject(ref, b.objects[ref])); err != nil {
			return err
		}
		if ref.Num > maxNum {
			maxNum = ref.Num
		}
	}

	xrefOffset := cw.n
	size := maxNum + 1
	fmt.Fprintf(cw, "xref\n0 %d\n", size)
	// Each entry is exactly 20 bytes ending in the literal two-byte CRLF
	// sequence, not the single-space-then-LF variant some writers use.
	fmt.Fprintf(cw, "0000000000 65535 f\r\n")
	for num := 1; num < size; num++ {
		off, ok := offsets[num]
		if !ok {
			fmt.Fprintf(cw, "0000000000 00000 f\r\n")
			continue
		}
		fmt.Fprintf(cw, "%010d 00000 n\r\n", off)
	}

	trailer := pdf.Dict()
	trailer.Set(pdf.NameLiteral("Size"), pdf.NumberInt(int64(size)))
	trailer.Set(pdf.NameLiteral("Root"), pdf.RefObj{R: catalogRef})
	if b.infoRef != nil {
		trailer.Set(pdf.NameLiteral("Info"), pdf.RefObj{R: *b.infoRef})
	}
	id1, id2 := fileID(b.doc, b.cfg.Deterministic)
	trailer.Set(pdf.NameLiteral("ID"), pdf.NewArray(pdf.Str(id1), pdf.Str(id2)))

	fmt.Fprintf(cw, "trailer\n")
	if _, err := cw.Write(serializePrimitive(trailer)); err != nil {
		return err
	}
	fmt.Fprintf(cw, "\nstartxref\n%d\n%%%%EOF\n", xrefOffset)
	return cw.err
}

// countingWriter tracks the byte offset of each object for the
// cross-reference table, matching the teacher's incremental-offset
// bookkeeping in writer_impl.go.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
