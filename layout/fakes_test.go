package layout

import (
	"github.com/sap-lang/sap/fonts"
	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/units"
)

// fakeMonoFont is a deterministic monospace FontSource: every rune below
// 0x250 maps to a glyph, each glyph advances 500 units on a 1000
// unit-per-em grid (half an em), so word widths are exactly
// len(text)*0.5*fontSize. No ligatures, no kerning.
type fakeMonoFont struct{ name string }

func (f *fakeMonoFont) Name() string { return f.name }

func (f *fakeMonoFont) CharToGlyph(r rune) (fonts.GlyphID, bool) {
	if r <= 0 || r >= 0x250 {
		return 0, false
	}
	return fonts.GlyphID(r), true
}

func (f *fakeMonoFont) Metrics(g fonts.GlyphID) fonts.GlyphMetrics {
	if g == 0 {
		return fonts.GlyphMetrics{}
	}
	return fonts.GlyphMetrics{HorzAdvance: 500}
}

func (f *fakeMonoFont) FontMetrics() fonts.FontMetrics {
	return fonts.FontMetrics{
		UnitsPerEm:  1000,
		TypoAscent:  800,
		TypoDescent: -200,
		CapHeight:   700,
	}
}

func (f *fakeMonoFont) Substitute(glyphs []fonts.GlyphID, features fonts.FeatureSet) (fonts.SubstitutionResult, bool) {
	return fonts.SubstitutionResult{}, false
}

func (f *fakeMonoFont) Kerning(glyphs []fonts.GlyphID, features fonts.FeatureSet) map[int]float64 {
	return nil
}

func (f *fakeMonoFont) IsBuiltin() bool   { return true }
func (f *fakeMonoFont) FontFile() []byte { return nil }

// fakeResolver always hands back the same fakeMonoFont, regardless of
// family or style; good enough for tests that only care about layout
// geometry, not font selection.
type fakeResolver struct{ src *fakeMonoFont }

func newFakeResolver() *fakeResolver { return &fakeResolver{src: &fakeMonoFont{name: "Mono"}} }

func (r *fakeResolver) Resolve(family string, fontStyle style.FontStyle) (fonts.FontSource, error) {
	return r.src, nil
}

// fullTestStyle returns a Style with every attribute the layout/metrics
// code paths dereference via mustGet already set, so tests never hit the
// unset-attribute panic.
func fullTestStyle(fontSizePt float64) style.Style {
	return style.Empty().
		WithFontFamily("Mono").
		WithFontStyle(style.Regular).
		WithFontSize(units.FromPt(fontSizePt)).
		WithRootFontSize(units.FromPt(fontSizePt)).
		WithLineSpacing(1.0).
		WithSentenceSpaceStretch(1.0).
		WithParagraphSpacing(units.FromPt(12)).
		WithHorzAlignment(style.Left).
		WithSmartQuotes(false)
}
