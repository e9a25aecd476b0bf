package layout

import (
	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

// Pos is a layout object's recorded position, set during the position
// computation pass (spec §4.6): either relative-to-parent-cursor
// (Absolute holds the cursor's page position at the moment the object
// was placed) or absolute-page-position (the object's AbsolutePos
// override, carried from the tree node, takes precedence over the
// cursor entirely). Kept as a plain struct, not a tagged union, since
// both modes ultimately resolve to "a position on a page" once
// computed; IsOverride distinguishes which one drove the placement.
type Pos struct {
	AbsolutePagePos
	IsOverride bool // true if this came from the tree node's explicit AbsolutePos
}

// Object is the common interface every positioned layout object
// implements (spec §3.4: "every layout object carries its LayoutSize,
// its position, optional explicit width/height override, optional
// position offset, and its link destination").
type Object interface {
	Size() units.LayoutSize
	SetPosition(p Pos)
	Position() Pos
	LinkDest() *tree.LinkDestination
	RaiseHeight() units.Length
	// NodeID is the originating tree node's identity, zero if this
	// object was synthesised rather than built directly from one node
	// (spec §9's redesign note: the tree never points at its layout
	// objects, so link/outline destinations resolve the other way,
	// from NodeID back to whichever Object ended up carrying it).
	NodeID() tree.NodeID
}

// base is embedded by every concrete layout object kind to provide the
// common bookkeeping fields.
type base struct {
	size   units.LayoutSize
	pos    Pos
	link   *tree.LinkDestination
	raise  units.Length
	nodeID tree.NodeID
}

func (b *base) Size() units.LayoutSize          { return b.size }
func (b *base) SetPosition(p Pos)               { b.pos = p }
func (b *base) Position() Pos                   { return b.pos }
func (b *base) LinkDest() *tree.LinkDestination { return b.link }
func (b *base) RaiseHeight() units.Length       { return b.raise }
func (b *base) NodeID() tree.NodeID             { return b.nodeID }

// setFromNode copies the Node-side-band fields onto this base, called by
// every CreateLayoutObject branch that wraps exactly one tree node.
func (b *base) setFromNode(n tree.Node) {
	b.nodeID = n.NodeID()
	b.link = n.LinkDest()
	b.raise = n.Raise()
}

// Word is a run of glyphs in a single style (spec §3.4), produced by the
// line breaker from the consecutive pieces of a line that share an
// effective style and have no space between them: one or more Text tree
// nodes, together with any hard-break character joined to them.
type Word struct {
	base
	Text           string
	Style          style.Style
	RelativeOffset units.Offset2d
}

// LayoutSpan is a preserved-identity span over words: the layout
// projection of a tree.InlineSpan, carrying its link destination and
// raise height, covering a contiguous run of children on one line.
type LayoutSpan struct {
	base
	Children []Object
}

// Line is a single positioned line produced by the line breaker (spec
// §3.4): Words and LayoutSpans in left-to-right order, plus the line's
// ascent/descent/default-spacing maxima used by the enclosing
// Container{Vertical} to stack lines.
type Line struct {
	base
	ParentStyle    style.Style
	LineAscent     units.Length
	LineDescent    units.Length
	DefaultSpacing units.Length
	Children       []Object
}

// Container is a positioned group of block-level layout objects,
// carrying pre-built border path objects.
type Container struct {
	base
	Direction     tree.Direction
	Children      []Object
	BorderObjects []*Path
	Border        tree.BorderStyle
	// AbsoluteOverride, copied from the originating tree.Container's
	// AbsolutePosition, tells compute_position to place this object at
	// a fixed page position instead of advancing the parent cursor.
	AbsoluteOverride *tree.AbsolutePos
	// Spacing is the effective paragraph_spacing inserted between
	// non-phantom siblings in a Vertical container (0 for Horizontal/None).
	Spacing units.Length
	// RawBytes holds a tree.RawBlock's opaque pre-rendered content-stream
	// bytes, nil for every other Container. The renderer emits these
	// verbatim (after translating to the object's own position) instead
	// of recursing into Children, which is always empty in this case.
	RawBytes []byte
}

// Image is an atomic positioned image reference.
type Image struct {
	base
	SourceRef string
}

// Spacer is an atomic positioned reserved-space object.
type Spacer struct {
	base
}

// PathSegmentKind discriminates Path's drawing instructions.
type PathSegmentKind int

const (
	SegMoveTo PathSegmentKind = iota
	SegLineTo
	SegCubicBezier
	SegRectangle
	SegClosePath
)

// PathSegment is one instruction of a Path (spec §4.8).
type PathSegment struct {
	Kind           PathSegmentKind
	X, Y           float64
	X1, Y1, X2, Y2 float64 // control points, for SegCubicBezier
	W, H           float64 // for SegRectangle
}

// Path is a positioned sequence of path segments plus paint style (spec
// §3.4, §4.8); used for container borders and any Path tree content.
type Path struct {
	base
	Segments []PathSegment
	Style    tree.PathStyle
}

var (
	_ Object = (*Word)(nil)
	_ Object = (*LayoutSpan)(nil)
	_ Object = (*Line)(nil)
	_ Object = (*Container)(nil)
	_ Object = (*Image)(nil)
	_ Object = (*Spacer)(nil)
	_ Object = (*Path)(nil)
)
