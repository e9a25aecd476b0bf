package tree

import "github.com/sap-lang/sap/style"

// Direction controls how a Container stacks its children.
type Direction int

const (
	None Direction = iota // z-stack: children overlap, pointwise max size
	Vertical
	Horizontal
)

// LineCap and LineJoin mirror the PDF graphics state stroke parameters.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapProjecting
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// PathStyle describes a stroked/filled path's appearance.
type PathStyle struct {
	LineWidth   float64
	Cap         LineCap
	Join        LineJoin
	MiterLimit  float64
	StrokeColour *style.Colour
	FillColour   *style.Colour
}

// DefaultPathStyle matches the teacher/original's border defaults: butt
// caps, miter joins.
func DefaultPathStyle() PathStyle {
	return PathStyle{LineWidth: 0.2, Cap: CapButt, Join: JoinMiter, MiterLimit: 10}
}

// Padding is inset space on all four sides of a container, in mm.
type Padding struct {
	Top, Left, Right, Bottom float64
}

// BorderStyle carries an optional PathStyle per edge plus padding.
type BorderStyle struct {
	Top, Left, Right, Bottom *PathStyle
	Padding                  Padding
}

// HasAnyBorder reports whether at least one edge has a stroke configured.
func (b BorderStyle) HasAnyBorder() bool {
	return b.Top != nil || b.Left != nil || b.Right != nil || b.Bottom != nil
}

// BlockObject is the discriminated union of block tree nodes.
type BlockObject interface {
	Node
	blockObject()
	// Phantom reports whether this object should be excluded from its
	// parent container's size accumulation (e.g. absolutely positioned
	// children). It's read by Container layout (spec §4.5/§4.6).
	Phantom() bool
}

type phantomFlag struct{ phantom bool }

func (p phantomFlag) Phantom() bool { return p.phantom }

// Paragraph is flow content: line-broken inline children.
type Paragraph struct {
	Attrs
	phantomFlag
	Children []InlineObject
}

func NewParagraph(children ...InlineObject) *Paragraph {
	return &Paragraph{Attrs: newAttrs(), Children: children}
}
func (*Paragraph) blockObject() {}

// WrappedLine is a single non-breaking line (no line-breaking pass).
type WrappedLine struct {
	Attrs
	phantomFlag
	Children []InlineObject
}

func NewWrappedLine(children ...InlineObject) *WrappedLine {
	return &WrappedLine{Attrs: newAttrs(), Children: children}
}
func (*WrappedLine) blockObject() {}

// Container stacks block children horizontally, vertically, or as a
// z-stack, with optional borders/padding.
type Container struct {
	Attrs
	phantomFlag
	ContainerDirection Direction
	Glued              bool
	Border             BorderStyle
	Children           []BlockObject
	AbsolutePosition   *AbsolutePos // set for absolutely-positioned containers
}

func NewContainer(dir Direction, children ...BlockObject) *Container {
	return &Container{Attrs: newAttrs(), ContainerDirection: dir, Children: children}
}
func (*Container) blockObject() {}

// Phantom reports whether c is marked phantom or has an AbsolutePosition.
func (c *Container) Phantom() bool { return c.phantom || c.AbsolutePosition != nil }

// AbsolutePos pins a block object to an absolute page position rather
// than letting it flow from the parent cursor (spec §4.6). Nodes with a
// non-nil AbsolutePosition are phantom by construction.
type AbsolutePos struct {
	PageIndex int
	X, Y      float64 // mm, relative to the page's top-left content origin
}

// Image is an atomic block object referencing image content by name; the
// actual decode is delegated to an external collaborator (out of scope).
type Image struct {
	Attrs
	phantomFlag
	SourceRef string
	Width     *float64 // mm, nil means natural size
	Height    *float64
}

func NewImage(sourceRef string) *Image { return &Image{Attrs: newAttrs(), SourceRef: sourceRef} }
func (*Image) blockObject()            {}

// Spacer reserves vertical (or horizontal, in a Horizontal container)
// space without content.
type Spacer struct {
	Attrs
	phantomFlag
	Size float64 // mm
}

func NewSpacer(size float64) *Spacer { return &Spacer{Attrs: newAttrs(), Size: size} }
func (*Spacer) blockObject()         {}

// RawBlock carries pre-rendered PDF content-stream bytes, positioned
// like any other block but opaque to the layout engine.
type RawBlock struct {
	Attrs
	phantomFlag
	Width, Height float64 // mm
	ContentStream []byte
}

func (*RawBlock) blockObject() {}

// ScriptBlock carries an unevaluated interpreter expression that
// produces a block subtree once evaluated.
type ScriptBlock struct {
	Attrs
	phantomFlag
	Call ScriptExpr
}

func (*ScriptBlock) blockObject() {}

// DeferredCallback produces a fresh BlockObject subtree at layout time;
// it may depend on interpreter state only available after earlier
// blocks have been laid out (spec §4.5).
type DeferredCallback func() (BlockObject, error)

// DeferredBlock carries a callback invoked once per layout pass to
// produce a fresh subtree. The interpreter retains the produced subtree
// in its block arena so back-pointers into it stay valid across passes.
type DeferredBlock struct {
	Attrs
	phantomFlag
	Generate DeferredCallback
}

func NewDeferredBlock(fn DeferredCallback) *DeferredBlock {
	return &DeferredBlock{Attrs: newAttrs(), Generate: fn}
}
func (*DeferredBlock) blockObject() {}

// MarkPhantom marks any block object (by embedding phantomFlag) as
// phantom — used for absolutely-positioned nodes added imperatively via
// Interpreter.AddAbsolutelyPositionedBlockObject.
func MarkPhantom(p *phantomFlag) { p.phantom = true }
