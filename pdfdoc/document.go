// Package pdfdoc is the semantic, write-only document model the layout
// engine populates and the writer package serialises (spec §4.7, §4.8):
// pages, resources, fonts, content streams, outlines and link
// annotations. It is adapted from a PDF toolkit's combined
// read/write model, trimmed to the subset a generator needs — no
// parsing, no encryption, no digital signatures, no forms.
package pdfdoc

// Document is the whole output PDF: pages plus document-level metadata.
type Document struct {
	Pages      []*Page
	Info       *DocumentInfo
	Metadata   *XMPMetadata
	Lang       string
	Marked     bool
	PageLabels map[int]string // page index -> label prefix
	Outlines   []OutlineItem
}

// Page is a single page: its boxes, resources, content and annotations.
type Page struct {
	Index       int
	MediaBox    Rectangle
	Resources   *Resources
	Contents    []ContentStream
	Annotations []Annotation
}

// ContentStream is one content-stream segment of a page; pages may have
// several (e.g. one per Container/Paragraph for editing convenience),
// concatenated by the writer at serialisation time.
type ContentStream struct {
	RawBytes []byte
}

// Operand is kept for content-stream introspection/testing utilities;
// the writer itself emits raw bytes via contentstream.Builder rather
// than building Operand trees.
type Operand interface {
	operand()
	Type() string
}

type NumberOperand struct{ Value float64 }

func (NumberOperand) operand()     {}
func (NumberOperand) Type() string { return "number" }

type NameOperand struct{ Value string }

func (NameOperand) operand()     {}
func (NameOperand) Type() string { return "name" }

type StringOperand struct{ Value []byte }

func (StringOperand) operand()     {}
func (StringOperand) Type() string { return "string" }

type ArrayOperand struct{ Values []Operand }

func (ArrayOperand) operand()     {}
func (ArrayOperand) Type() string { return "array" }

// Resources holds the resource dictionary for a page (spec §4.8:
// "pages collect the set of resources their content streams
// reference... emit a single /Resources dictionary").
type Resources struct {
	Fonts    map[string]*Font
	XObjects map[string]*XObject
}

// Font represents a font resource in the output PDF's /Font dictionary.
type Font struct {
	Subtype        string // Type1, TrueType, Type0
	BaseFont       string
	Encoding       string
	EncodingDict   *EncodingDict
	Widths         map[int]int // character code -> width (simple fonts)
	FirstChar      int
	ToUnicode      map[int][]rune
	CIDSystemInfo  *CIDSystemInfo
	DescendantFont *CIDFont
	Descriptor     *FontDescriptor
}

// EncodingDict represents a simple font's custom /Differences encoding.
type EncodingDict struct {
	BaseEncoding string
	Differences  []EncodingDifference
}

type EncodingDifference struct {
	Code int
	Name string
}

// CIDSystemInfo describes the registry/ordering of a CID font.
type CIDSystemInfo struct {
	Registry   string
	Ordering   string
	Supplement int
}

// CIDFont describes a descendant font for Type0 (CID-keyed) fonts.
type CIDFont struct {
	Subtype       string // CIDFontType2 (TrueType-based)
	BaseFont      string
	CIDSystemInfo CIDSystemInfo
	DW            int
	W             map[int]int // CID -> width
	CIDToGIDMap   []byte      // nil => /Identity
	Descriptor    *FontDescriptor
}

// FontDescriptor carries metrics and the embedded font program.
type FontDescriptor struct {
	FontName     string
	Flags        int
	ItalicAngle  float64
	Ascent       float64
	Descent      float64
	CapHeight    float64
	StemV        int
	FontBBox     [4]float64
	FontFile     []byte
	FontFileType string // FontFile2 (TrueType)
}

// XObject describes an image XObject (no Form XObjects: the pipeline
// never needs nested content streams).
type XObject struct {
	Subtype          string // "Image"
	Width            int
	Height           int
	ColorSpace       string // DeviceRGB, DeviceGray
	BitsPerComponent int
	Data             []byte
	Filter           string // e.g. DCTDecode, or "" for raw (Flate-wrapped by the writer)
	SMask            *XObject
}

// Rectangle is a PDF rectangle (LLX, LLY, URX, URY).
type Rectangle struct {
	LLX, LLY, URX, URY float64
}

// DocumentInfo models the /Info dictionary.
type DocumentInfo struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
	Keywords []string
}

// XMPMetadata is an optional raw XMP packet for the document /Metadata.
type XMPMetadata struct {
	Raw []byte
}

// Annotation is a page annotation. Only link annotations are modelled
// (spec's supplemented "link annotations / destination arrays"
// feature); comment/markup/form/multimedia annotation types are out of
// scope for a generator that never reads existing PDFs.
type Annotation interface {
	Type() string
	Rect() Rectangle
}

// LinkAnnotation represents a clickable link, either to an external URI
// or to a destination within the document.
type LinkAnnotation struct {
	RectVal Rectangle
	URI     string              // set for external links
	Dest    *OutlineDestination // set for internal links
	PageRef int                 // page index the Dest refers to, when Dest != nil
}

func (a *LinkAnnotation) Type() string        { return "Link" }
func (a *LinkAnnotation) Rect() Rectangle      { return a.RectVal }

// OutlineItem describes one bookmark entry, possibly nested.
type OutlineItem struct {
	Title     string
	PageIndex int
	Dest      *OutlineDestination
	Children  []OutlineItem
}

// OutlineDestination describes a destination using XYZ coordinates; nil
// fields mean "leave unchanged" per the PDF spec.
type OutlineDestination struct {
	X    *float64
	Y    *float64
	Zoom *float64
}
