// Package units provides dimensioned scalars and 2-D vectors used
// throughout the layout core. Length is always expressed in millimetres;
// DynLength carries a unit tag and must be resolved against a style
// before it can be used in arithmetic with Length.
package units

import "fmt"

// Length is a scalar distance in millimetres. Arithmetic is restricted to
// Length-to-Length operations so that a count (glyph index, line number)
// can never silently be added to a dimension.
type Length float64

const mmPerInch = 25.4

func (l Length) Add(o Length) Length      { return l + o }
func (l Length) Sub(o Length) Length      { return l - o }
func (l Length) Scale(factor float64) Length { return Length(float64(l) * factor) }
func (l Length) Negate() Length           { return -l }

// Pt returns l expressed in PDF points (1/72 inch).
func (l Length) Pt() float64 { return float64(l) / mmPerInch * 72.0 }

// FromPt builds a Length from a count of PDF points.
func FromPt(pt float64) Length { return Length(pt / 72.0 * mmPerInch) }

func (l Length) String() string { return fmt.Sprintf("%gmm", float64(l)) }

// Max returns the greater of a and b.
func Max(a, b Length) Length {
	if a > b {
		return a
	}
	return b
}

// Min returns the lesser of a and b.
func Min(a, b Length) Length {
	if a < b {
		return a
	}
	return b
}

// Unit identifies the unit a DynLength is expressed in.
type Unit int

const (
	MM Unit = iota
	CM
	IN
	PT
	PC
	EM
	EX
	REM
)

func (u Unit) String() string {
	switch u {
	case MM:
		return "mm"
	case CM:
		return "cm"
	case IN:
		return "in"
	case PT:
		return "pt"
	case PC:
		return "pc"
	case EM:
		return "em"
	case EX:
		return "ex"
	case REM:
		return "rem"
	default:
		return "?"
	}
}

// DynLength is a (value, unit) pair. Absolute units (mm/cm/in/pt/pc) are
// resolved without any style context; font-relative units (em/ex/rem)
// require the style's font size, x-height and root font size.
type DynLength struct {
	Value float64
	Unit  Unit
}

func Mm(v float64) DynLength  { return DynLength{v, MM} }
func Cm(v float64) DynLength  { return DynLength{v, CM} }
func In(v float64) DynLength  { return DynLength{v, IN} }
func Pt(v float64) DynLength  { return DynLength{v, PT} }
func Pc(v float64) DynLength  { return DynLength{v, PC} }
func Em(v float64) DynLength  { return DynLength{v, EM} }
func Ex(v float64) DynLength  { return DynLength{v, EX} }
func Rem(v float64) DynLength { return DynLength{v, REM} }

// FontMetricsProvider exposes the style attributes a DynLength needs to
// resolve font-relative units. Implemented by style.Style.
type FontMetricsProvider interface {
	ResolvedFontSize() Length
	ResolvedXHeight() Length
	ResolvedRootFontSize() Length
}

// Resolve converts d to an absolute Length using style for font-relative
// units. Resolving Mm(v) returns Length(v) unchanged (see units_test.go).
func (d DynLength) Resolve(style FontMetricsProvider) Length {
	switch d.Unit {
	case MM:
		return Length(d.Value)
	case CM:
		return Length(d.Value * 10)
	case IN:
		return Length(d.Value * mmPerInch)
	case PT:
		return FromPt(d.Value)
	case PC:
		return FromPt(d.Value * 12)
	case EM:
		return style.ResolvedFontSize().Scale(d.Value)
	case EX:
		return style.ResolvedXHeight().Scale(d.Value)
	case REM:
		return style.ResolvedRootFontSize().Scale(d.Value)
	default:
		return 0
	}
}

// Size2d is a 2-component vector of Length, (width, height).
type Size2d struct {
	W, H Length
}

func (s Size2d) Add(o Size2d) Size2d { return Size2d{s.W + o.W, s.H + o.H} }

// Position is a 2-component vector locating a point on a page, origin at
// the top-left of the content area, y increasing downward.
type Position struct {
	X, Y Length
}

func (p Position) Add(o Offset2d) Position { return Position{p.X + o.DX, p.Y + o.DY} }

// Offset2d is a relative displacement.
type Offset2d struct {
	DX, DY Length
}

// LayoutSize is the bounding box of a laid-out object: its horizontal
// extent plus vertical extent split into ascent (above baseline) and
// descent (below baseline).
type LayoutSize struct {
	Width   Length
	Ascent  Length
	Descent Length
}

// TotalHeight is ascent + descent.
func (s LayoutSize) TotalHeight() Length { return s.Ascent + s.Descent }
