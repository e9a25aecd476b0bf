// Package fonts implements the FontSource trait described in spec §4.2:
// glyph id mapping, per-glyph metrics, ligature substitution and pair
// kerning, plus the subsetting pipeline used when a font's embedded
// program is written into the output PDF. Font FILE parsing itself is
// out of scope beyond what FontSource needs (spec Non-goals); non-builtin
// fonts are parsed by github.com/go-text/typesetting, not by hand-rolled
// CFF/Type1 program readers.
package fonts

import "github.com/bits-and-blooms/bitset"

// GlyphID is a font-local glyph identifier. 0 always denotes .notdef.
type GlyphID uint16

// GlyphBBox is a glyph's bounding box in font units.
type GlyphBBox struct {
	XMin, YMin, XMax, YMax float64
}

// GlyphMetrics are a single glyph's advances and bounding box, in font
// units (see FontMetrics.UnitsPerEm for the scale).
type GlyphMetrics struct {
	HorzAdvance float64
	VertAdvance float64
	BBox        GlyphBBox
}

// FontMetrics is the font-wide metrics block described in spec §4.2.
type FontMetrics struct {
	UnitsPerEm  float64
	HHEAAscent  float64
	HHEADescent float64
	TypoAscent  float64
	TypoDescent float64
	CapHeight   float64
	XHeight     float64
	ItalicAngle float64
	XMin, YMin  float64
	XMax, YMax  float64
	StemV       float64
}

// DefaultLineSpacing implements the GLOSSARY formula:
// max(UnitsPerEm*1.2, TypoAscent-TypoDescent).
func (m FontMetrics) DefaultLineSpacing() float64 {
	a := m.UnitsPerEm * 1.2
	b := m.TypoAscent - m.TypoDescent
	if b > a {
		return b
	}
	return a
}

// FeatureSet names the shaping features requested for a run (e.g.
// "liga", "kern"); a plain set rather than a bitmask so new features
// don't need a central registry.
type FeatureSet map[string]bool

// SubstitutionResult is returned by FontSource.Substitute when a run of
// glyphs triggers a ligature (or other GSUB-style) substitution.
type SubstitutionResult struct {
	NewGlyphs []GlyphID
	// Consumed[i] is the number of input glyphs NewGlyphs[i] replaces;
	// len(Consumed) == len(NewGlyphs).
	Consumed []int
}

// FontSource is the trait the layout engine programs against (spec
// §4.2). AFMSource (the 14 PDF built-ins) and ShapedSource (go-text
// typesetting-backed, for embedded font files) both implement it.
type FontSource interface {
	Name() string

	// CharToGlyph maps a Unicode codepoint to a glyph id. Returns
	// (0, false) for an unmapped codepoint; callers emit one warning per
	// unmapped glyph and substitute glyph 0 (spec §7).
	CharToGlyph(r rune) (GlyphID, bool)

	Metrics(g GlyphID) GlyphMetrics
	FontMetrics() FontMetrics

	// Substitute attempts ligature substitution over glyphs (e.g. f+i ->
	// fi). ok is false if no substitution applies anywhere in the run.
	Substitute(glyphs []GlyphID, features FeatureSet) (res SubstitutionResult, ok bool)

	// Kerning returns, for each index i where a pair-kern adjustment
	// applies between glyphs[i] and glyphs[i+1], the horizontal advance
	// adjustment in font units.
	Kerning(glyphs []GlyphID, features FeatureSet) map[int]float64

	// IsBuiltin reports whether this source needs no embedded font
	// program in the output PDF (true for the 14 AFM standard fonts).
	IsBuiltin() bool

	// FontFile returns the raw embeddable font program, or nil for a
	// builtin source.
	FontFile() []byte
}

// --- subsetting pipeline (spec §4.2, "glyph usage & subsetting") ---

// GlyphUsage records which glyph ids of a given font were actually used
// across a document, gathered while rendering Word layout objects. A
// GlyphID is a dense uint16, so a bitset is a tighter fit than a map
// both for the Record() hot path (set on every glyph of every word) and
// for the renumbering walk in NewSubsetPlan.
type GlyphUsage struct {
	Source   FontSource
	GlyphIDs *bitset.BitSet
}

// SubsetPlan is the renumbering plan produced for one font: original
// glyph ids are renumbered 0..N (0 always .notdef) to shrink the
// embedded program and the resulting Widths array.
type SubsetPlan struct {
	Source        FontSource
	OldToNew      map[GlyphID]GlyphID
	NewToOld      map[GlyphID]GlyphID
	OrderedNewIDs []GlyphID
	SubsetTag     string
}

// NewSubsetPlan builds a deterministic renumbering for usage: glyph 0
// (.notdef) always maps to 0; the remaining used glyphs are sorted and
// assigned consecutive new ids starting at 1.
func NewSubsetPlan(usage GlyphUsage, tag string) *SubsetPlan {
	plan := &SubsetPlan{
		Source:    usage.Source,
		OldToNew:  map[GlyphID]GlyphID{0: 0},
		NewToOld:  map[GlyphID]GlyphID{0: 0},
		SubsetTag: tag,
	}
	plan.OrderedNewIDs = append(plan.OrderedNewIDs, 0)

	var ordered []GlyphID
	if usage.GlyphIDs != nil {
		ordered = make([]GlyphID, 0, usage.GlyphIDs.Count())
		for gid, ok := usage.GlyphIDs.NextSet(1); ok; gid, ok = usage.GlyphIDs.NextSet(gid + 1) {
			ordered = append(ordered, GlyphID(gid))
		}
	}

	next := GlyphID(1)
	for _, old := range ordered {
		plan.OldToNew[old] = next
		plan.NewToOld[next] = old
		plan.OrderedNewIDs = append(plan.OrderedNewIDs, next)
		next++
	}
	return plan
}

// GenerateSubsetFontFile produces the embeddable subset font program for
// plan, given the font's full original file. For a builtin (AFM) source
// this returns nil, nil — there is nothing to embed.
func GenerateSubsetFontFile(plan *SubsetPlan) ([]byte, error) {
	if plan.Source.IsBuiltin() {
		return nil, nil
	}
	full := plan.Source.FontFile()
	if len(full) == 0 {
		return nil, nil
	}
	used := make(map[int]bool, len(plan.OldToNew))
	for old := range plan.OldToNew {
		used[int(old)] = true
	}
	return SubsetTrueType(full, used)
}
