// Package style implements the cascading style attribute map described
// in the layout spec: a sparse struct of optional fields with
// inherit/override/merge algebra. Unlike the original C++ engine, Style
// here is a plain value type — no parent pointers, no process-wide
// singleton. "Current effective style" is recomputed by extending
// style.Empty() along whatever context path the caller holds (see
// interp.Interpreter's style stack), which keeps equality structural
// and sharing by value.
package style

import (
	"fmt"

	"github.com/sap-lang/sap/units"
)

// FontStyle selects one of the four standard style variants of a font
// family.
type FontStyle int

const (
	Regular FontStyle = iota
	Italic
	Bold
	BoldItalic
)

func (f FontStyle) String() string {
	switch f {
	case Regular:
		return "regular"
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	case BoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// HorzAlignment selects how a line's glue is distributed.
type HorzAlignment int

const (
	Left HorzAlignment = iota
	Centre
	Right
	Justified
)

// Colour is an RGB colour in [0,1].
type Colour struct {
	R, G, B float64
}

// Style is a sparse map of cascading attributes. The zero value is the
// all-unset style (equivalent to the original's Style::empty()).
type Style struct {
	fontFamily           *string
	fontStyle            *FontStyle
	fontSize             *units.Length
	rootFontSize         *units.Length
	lineSpacing          *float64
	sentenceSpaceStretch *float64
	paragraphSpacing     *units.Length
	horzAlignment        *HorzAlignment
	colour               *Colour
	enableSmartQuotes    *bool
}

// Empty is the canonical all-unset style. It is a value, so every call
// site gets its own copy; there is no shared-identity concern.
func Empty() Style { return Style{} }

func ptr[T any](v T) *T { return &v }

// --- builder-style setters, mirroring the teacher's Config/Builder idiom ---

func (s Style) WithFontFamily(v string) Style            { s.fontFamily = ptr(v); return s }
func (s Style) WithFontStyle(v FontStyle) Style          { s.fontStyle = ptr(v); return s }
func (s Style) WithFontSize(v units.Length) Style        { s.fontSize = ptr(v); return s }
func (s Style) WithRootFontSize(v units.Length) Style    { s.rootFontSize = ptr(v); return s }
func (s Style) WithLineSpacing(v float64) Style          { s.lineSpacing = ptr(v); return s }
func (s Style) WithSentenceSpaceStretch(v float64) Style { s.sentenceSpaceStretch = ptr(v); return s }
func (s Style) WithParagraphSpacing(v units.Length) Style {
	s.paragraphSpacing = ptr(v)
	return s
}
func (s Style) WithHorzAlignment(v HorzAlignment) Style { s.horzAlignment = ptr(v); return s }
func (s Style) WithColour(v Colour) Style                { s.colour = ptr(v); return s }
func (s Style) WithSmartQuotes(v bool) Style             { s.enableSmartQuotes = ptr(v); return s }

// errUnsetAttribute reports an access to an attribute that is unset along
// the whole extension chain. Per spec §3.2, accessors fail loudly.
type errUnsetAttribute struct{ attr string }

func (e errUnsetAttribute) Error() string {
	return fmt.Sprintf("style: attribute %q is unset", e.attr)
}

func mustGet[T any](v *T, attr string) T {
	if v == nil {
		panic(errUnsetAttribute{attr})
	}
	return *v
}

func (s Style) FontFamily() string       { return mustGet(s.fontFamily, "font_family") }
func (s Style) FontStyleAttr() FontStyle { return mustGet(s.fontStyle, "font_style") }
func (s Style) FontSize() units.Length   { return mustGet(s.fontSize, "font_size") }
func (s Style) RootFontSize() units.Length {
	return mustGet(s.rootFontSize, "root_font_size")
}
func (s Style) LineSpacing() float64 { return mustGet(s.lineSpacing, "line_spacing") }
func (s Style) SentenceSpaceStretch() float64 {
	return mustGet(s.sentenceSpaceStretch, "sentence_space_stretch")
}
func (s Style) ParagraphSpacing() units.Length {
	return mustGet(s.paragraphSpacing, "paragraph_spacing")
}
func (s Style) HorzAlignment() HorzAlignment { return mustGet(s.horzAlignment, "horz_alignment") }
func (s Style) Colour() Colour               { return mustGet(s.colour, "colour") }
func (s Style) EnableSmartQuotes() bool {
	return mustGet(s.enableSmartQuotes, "enable_smart_quotes")
}

// Has* probe accessors, used by callers that want to branch on presence
// rather than catch a panic (the hot path through the line breaker always
// operates on a fully-resolved effective style, so panicking accessors are
// appropriate there; tree construction code uses these probes instead).
func (s Style) HasFontFamily() bool { return s.fontFamily != nil }
func (s Style) HasFontSize() bool   { return s.fontSize != nil }
func (s Style) HasColour() bool     { return s.colour != nil }

func firstNonNil[T any](a, b *T) *T {
	if a != nil {
		return a
	}
	return b
}

// ExtendWith returns a new style where each attribute prefers main's
// value, falling back to s's value if main leaves it unset.
func (s Style) ExtendWith(main Style) Style {
	return Style{
		fontFamily:           firstNonNil(main.fontFamily, s.fontFamily),
		fontStyle:            firstNonNil(main.fontStyle, s.fontStyle),
		fontSize:             firstNonNil(main.fontSize, s.fontSize),
		rootFontSize:         firstNonNil(main.rootFontSize, s.rootFontSize),
		lineSpacing:          firstNonNil(main.lineSpacing, s.lineSpacing),
		sentenceSpaceStretch: firstNonNil(main.sentenceSpaceStretch, s.sentenceSpaceStretch),
		paragraphSpacing:     firstNonNil(main.paragraphSpacing, s.paragraphSpacing),
		horzAlignment:        firstNonNil(main.horzAlignment, s.horzAlignment),
		colour:               firstNonNil(main.colour, s.colour),
		enableSmartQuotes:    firstNonNil(main.enableSmartQuotes, s.enableSmartQuotes),
	}
}

// UseDefaultsFrom is the converse of ExtendWith: prefer s's own value,
// falling back to fallback's value.
func (s Style) UseDefaultsFrom(fallback Style) Style {
	return fallback.ExtendWith(s)
}

// ResolvedFontSize/ResolvedXHeight/ResolvedRootFontSize implement
// units.FontMetricsProvider so a Style can resolve a DynLength directly.
// X-height isn't a style attribute; it comes from the font metrics, so
// callers that need ex-unit resolution should use FontMetrics (below)
// rather than Style directly when a FontSource is available.
func (s Style) ResolvedFontSize() units.Length     { return s.FontSize() }
func (s Style) ResolvedRootFontSize() units.Length { return s.RootFontSize() }
func (s Style) ResolvedXHeight() units.Length {
	// Fallback approximation (roughly 0.5em) used only when no FontSource
	// metrics are available; FontMetrics.ResolvedXHeight supersedes this.
	return s.FontSize().Scale(0.5)
}

// FontMetrics wraps a Style together with the font's actual x-height so
// `ex` units resolve against real font metrics rather than the 0.5em
// approximation.
type FontMetrics struct {
	Style   Style
	XHeight units.Length
}

func (f FontMetrics) ResolvedFontSize() units.Length     { return f.Style.FontSize() }
func (f FontMetrics) ResolvedRootFontSize() units.Length { return f.Style.RootFontSize() }
func (f FontMetrics) ResolvedXHeight() units.Length      { return f.XHeight }
