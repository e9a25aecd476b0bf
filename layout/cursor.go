// Package layout implements the tree-to-layout conversion, line
// breaking, and position computation passes described in spec.md §3.4
// through §4.6: the page cursor abstraction, LineMetrics measurement,
// shortest-path line breaking, Container/Paragraph layout, and the
// depth-first position-computation walk. Grounded on the teacher's
// Config/Builder idiom for the page geometry types and on hyph/fonts for
// the actual text measurement this package drives.
package layout

import "github.com/sap-lang/sap/units"

// PaperSize is a page's physical dimensions.
type PaperSize struct {
	Width, Height units.Length
}

// A4 and Letter are the two paper sizes spec.md's scenarios exercise.
func A4() PaperSize     { return PaperSize{Width: 210, Height: 297} }
func Letter() PaperSize { return PaperSize{Width: units.FromPt(612), Height: units.FromPt(792)} }

// Margins is the inset of the content area from the page edges.
type Margins struct {
	Top, Left, Right, Bottom units.Length
}

// UniformMargins returns a Margins with the same inset on all sides.
func UniformMargins(v units.Length) Margins {
	return Margins{Top: v, Left: v, Right: v, Bottom: v}
}

// Page is one page of the append-only PageLayout.
type Page struct {
	Size PaperSize
}

// PageLayout is the append-only list of pages described in spec §3.5;
// pages are created on demand as a cursor advances past the last one.
type PageLayout struct {
	Paper   PaperSize
	Margins Margins
	Pages   []Page

	// MaxContentExtent tracks the largest (width, height) of content
	// actually placed on any page, for diagnostics/draft-mode reporting;
	// spec.md's "content_size" field.
	MaxContentExtent units.Size2d
}

// NewPageLayout constructs an empty PageLayout (zero pages; the first
// page is created lazily by NewCursor).
func NewPageLayout(paper PaperSize, margins Margins) *PageLayout {
	return &PageLayout{Paper: paper, Margins: margins}
}

func (pl *PageLayout) ensurePage(idx int) {
	for len(pl.Pages) <= idx {
		pl.Pages = append(pl.Pages, Page{Size: pl.Paper})
	}
}

func (pl *PageLayout) contentWidth() units.Length  { return pl.Paper.Width - pl.Margins.Left - pl.Margins.Right }
func (pl *PageLayout) contentHeight() units.Length { return pl.Paper.Height - pl.Margins.Top - pl.Margins.Bottom }

func (pl *PageLayout) recordExtent(x, y units.Length) {
	if x > pl.MaxContentExtent.W {
		pl.MaxContentExtent.W = x
	}
	if y > pl.MaxContentExtent.H {
		pl.MaxContentExtent.H = y
	}
}

// AbsolutePagePos addresses a point on a specific page, relative to the
// content area's top-left corner.
type AbsolutePagePos struct {
	PageIndex int
	Position  units.Position
}

// RelativePos addresses a point that was recorded while a cursor was
// positioned on a given page; interconvertible with AbsolutePagePos
// (they carry the same fields) but kept as a distinct type so callers
// are explicit about which addressing mode they hold (spec §3.5).
type RelativePos struct {
	PageIndex int
	Position  units.Position
}

// ToAbsolute converts a RelativePos to an AbsolutePagePos; trivial,
// since both addressing modes share the same underlying representation
// once a cursor has recorded a position.
func (r RelativePos) ToAbsolute() AbsolutePagePos {
	return AbsolutePagePos{PageIndex: r.PageIndex, Position: r.Position}
}

// ToRelative converts an AbsolutePagePos to a RelativePos.
func (a AbsolutePagePos) ToRelative() RelativePos {
	return RelativePos{PageIndex: a.PageIndex, Position: a.Position}
}

// PageCursor is a value-type opaque position (spec §4.3): all mutators
// return a new cursor rather than mutating in place. Per the redesign
// note in spec §9, its payload is an ordinary Go struct rather than a
// fixed-size opaque byte buffer; the "opaque, fixed-size buffer so
// multiple concrete layouts can be hosted" rationale from the original
// C++ engine doesn't apply to a GC'd language with real sum types.
type PageCursor struct {
	layout     *PageLayout
	PageIndex  int
	X, Y       units.Length
	widthLimit *units.Length
}

// NewCursor returns the top-left of the content area on page 0.
func (pl *PageLayout) NewCursor() PageCursor {
	pl.ensurePage(0)
	return PageCursor{layout: pl}
}

// NewCursorAtPosition returns a cursor at a specific absolute position.
func (pl *PageLayout) NewCursorAtPosition(abs AbsolutePagePos) PageCursor {
	pl.ensurePage(abs.PageIndex)
	return PageCursor{layout: pl, PageIndex: abs.PageIndex, X: abs.Position.X, Y: abs.Position.Y}
}

// WidthAtCursor is the remaining horizontal space to the right margin
// (or to a LimitWidth cap, whichever is smaller).
func (c PageCursor) WidthAtCursor() units.Length {
	w := c.layout.contentWidth() - c.X
	if c.widthLimit != nil && *c.widthLimit < w {
		return *c.widthLimit
	}
	return w
}

// VerticalSpaceAtCursor is the remaining vertical space to the bottom
// margin.
func (c PageCursor) VerticalSpaceAtCursor() units.Length {
	return c.layout.contentHeight() - c.Y
}

// MoveRight advances the cursor horizontally by d.
func (c PageCursor) MoveRight(d units.Length) PageCursor {
	c.X += d
	c.layout.recordExtent(c.X, c.Y)
	return c
}

// CarriageReturn resets the cursor's horizontal position to the left
// margin.
func (c PageCursor) CarriageReturn() PageCursor {
	c.X = 0
	return c
}

// MoveDown advances the cursor vertically by d, creating a new page and
// resetting y to 0 if that overflows the bottom margin.
func (c PageCursor) MoveDown(d units.Length) PageCursor {
	c.Y += d
	if c.Y > c.layout.contentHeight() {
		c.PageIndex++
		c.layout.ensurePage(c.PageIndex)
		c.Y = 0
		return c
	}
	c.layout.recordExtent(c.X, c.Y)
	return c
}

// NewLine emits a carriage return then moves down by lineHeight,
// reporting whether overflow caused a page break.
func (c PageCursor) NewLine(lineHeight units.Length) (PageCursor, bool) {
	before := c.PageIndex
	next := c.CarriageReturn().MoveDown(lineHeight)
	return next, next.PageIndex != before
}

// EnsureVerticalSpace advances to the next page if less than h remains
// on the current one.
func (c PageCursor) EnsureVerticalSpace(h units.Length) PageCursor {
	if c.VerticalSpaceAtCursor() < h {
		c.PageIndex++
		c.layout.ensurePage(c.PageIndex)
		c.Y = 0
	}
	return c
}

// LimitWidth returns a sibling cursor whose WidthAtCursor is capped to
// w; used for temporarily nested layout regions (e.g. a Container with
// fixed width inside a wider parent).
func (c PageCursor) LimitWidth(w units.Length) PageCursor {
	c.widthLimit = &w
	return c
}

// Absolute records the cursor's current page position as an
// AbsolutePagePos, for use by position computation (spec §4.6).
func (c PageCursor) Absolute() AbsolutePagePos {
	return AbsolutePagePos{PageIndex: c.PageIndex, Position: units.Position{X: c.X, Y: c.Y}}
}
