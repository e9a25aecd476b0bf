package layout

import (
	"github.com/sap-lang/sap/fonts"
	"github.com/sap-lang/sap/observability"
	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

// FontResolver maps an effective style's font-family/font-style pair to
// a concrete FontSource (spec §4.2); the layout core never constructs a
// FontSource itself.
type FontResolver interface {
	Resolve(family string, fontStyle style.FontStyle) (fonts.FontSource, error)
}

// measuredWord is one entry of LineMetrics.Pieces: either a word (a run
// of Text sharing one effective style) or a separator's preferred width.
type measuredWord struct {
	obj   tree.InlineObject // *tree.Text or *tree.Separator (nil for synthetic chunks)
	text  string            // rendered form actually measured
	style style.Style
	width units.Length
	kind  measuredKind
}

type measuredKind int

const (
	kindWord measuredKind = iota
	kindSpace
	kindSentenceEnd
	kindOtherSeparator
)

// LineMetrics is the per-paragraph measurement pass described in spec
// §4.4.1: a flattened sequence of measured pieces plus the running
// totals the break search and line renderer consume.
type LineMetrics struct {
	Pieces         []measuredWord
	TotalWordWidth units.Length
	TotalSpaceWidth units.Length
	Ascent         units.Length
	Descent        units.Length
	CapHeight      units.Length
	DefaultSpacing units.Length
}

// measureRun computes the advance width of text (in mm) under src at
// fontSize, applying ligature substitution and pair kerning exactly as
// FontSource.Substitute/Kerning describe (spec §4.2). A codepoint src
// can't map to a glyph is measured as glyph 0 (.notdef) rather than
// dropped, with one warning logged per occurrence (spec §7: "missing
// glyph for a codepoint: emit one warning per glyph, substitute glyph
// 0"), so the measured piece's glyph count still matches what
// encodeAndTrack later writes into the content stream for the same text.
func measureRun(src fonts.FontSource, log observability.Logger, text string, fontSize units.Length) units.Length {
	runes := []rune(text)
	glyphs := make([]fonts.GlyphID, 0, len(runes))
	for _, r := range runes {
		g, ok := src.CharToGlyph(r)
		if !ok {
			log.Warn("layout: unmapped codepoint, substituting glyph 0",
				observability.String("rune", string(r)))
			g = 0
		}
		glyphs = append(glyphs, g)
	}
	if len(glyphs) == 0 {
		return 0
	}

	features := fonts.FeatureSet{"liga": true, "kern": true}
	if res, ok := src.Substitute(glyphs, features); ok {
		glyphs = res.NewGlyphs
	}
	kerns := src.Kerning(glyphs, features)

	metrics := src.FontMetrics()
	var totalUnits float64
	for i, g := range glyphs {
		totalUnits += src.Metrics(g).HorzAdvance
		if adj, ok := kerns[i]; ok {
			totalUnits += adj
		}
	}
	scale := float64(fontSize.Pt()) / metrics.UnitsPerEm
	return units.FromPt(totalUnits * scale)
}

// fontFor resolves the FontSource + size for a style, applying the
// Regular fallback when font_style is unset (tree construction may not
// have set one).
func fontFor(resolver FontResolver, s style.Style) (fonts.FontSource, units.Length, error) {
	fs := style.Regular
	if s.HasFontFamily() {
		// font_style defaults to Regular if unset; guard the mustGet panic.
		fs = safeFontStyle(s)
	}
	src, err := resolver.Resolve(s.FontFamily(), fs)
	if err != nil {
		return nil, 0, err
	}
	return src, s.FontSize(), nil
}

// ResolveWordFont re-derives the FontSource and size a Word was
// measured against, for callers outside this package (the renderer)
// that need the concrete font resource a Word's style resolves to.
// Font resolution is a pure function of family+style, so calling it
// again after layout is cheap and avoids threading a FontSource
// pointer through every layout object.
func ResolveWordFont(resolver FontResolver, s style.Style) (fonts.FontSource, units.Length, error) {
	return fontFor(resolver, s)
}

func safeFontStyle(s style.Style) (fs style.FontStyle) {
	defer func() {
		if recover() != nil {
			fs = style.Regular
		}
	}()
	return s.FontStyleAttr()
}

// ComputeLineMetrics walks leaves (already-flattened via
// tree.FlattenInline), grouping consecutive Text nodes that share one
// effective style into word chunks, and accumulates the totals the
// break search needs (spec §4.4.1).
func ComputeLineMetrics(resolver FontResolver, log observability.Logger, leaves []tree.InlineObject, effectiveStyle func(tree.InlineObject) style.Style) (LineMetrics, error) {
	if log == nil {
		log = observability.NopLogger{}
	}
	var lm LineMetrics

	flushChunk := func(text string, st style.Style) error {
		if text == "" {
			return nil
		}
		src, size, err := fontFor(resolver, st)
		if err != nil {
			return err
		}
		w := measureRun(src, log, text, size)
		lm.Pieces = append(lm.Pieces, measuredWord{text: text, style: st, width: w, kind: kindWord})
		lm.TotalWordWidth = lm.TotalWordWidth.Add(w)
		accumulateFontExtents(&lm, src, size)
		return nil
	}

	var chunkText string
	var chunkStyle style.Style
	haveChunk := false

	for i, leaf := range leaves {
		st := effectiveStyle(leaf)
		switch o := leaf.(type) {
		case *tree.Text:
			if haveChunk && chunkStyle == st {
				chunkText += o.Contents
				continue
			}
			if err := flushChunk(chunkText, chunkStyle); err != nil {
				return lm, err
			}
			chunkText, chunkStyle, haveChunk = o.Contents, st, true
		case *tree.Separator:
			if err := flushChunk(chunkText, chunkStyle); err != nil {
				return lm, err
			}
			chunkText, haveChunk = "", false

			leftStyle := chunkStyle
			rightStyle := st
			if i+1 < len(leaves) {
				rightStyle = effectiveStyle(leaves[i+1])
			}
			form := o.MidLineForm
			if i == len(leaves)-1 {
				form = o.EndOfLineForm
			}
			w, err := averageSeparatorWidth(resolver, log, form, leftStyle, rightStyle)
			if err != nil {
				return lm, err
			}
			if o.Kind == tree.SentenceEnd {
				w = w.Scale(st.SentenceSpaceStretch())
			}

			kind := kindOtherSeparator
			switch o.Kind {
			case tree.Space:
				kind = kindSpace
				lm.TotalSpaceWidth = lm.TotalSpaceWidth.Add(w)
			case tree.SentenceEnd:
				kind = kindSentenceEnd
				lm.TotalSpaceWidth = lm.TotalSpaceWidth.Add(w)
			default:
				lm.TotalWordWidth = lm.TotalWordWidth.Add(w)
			}
			lm.Pieces = append(lm.Pieces, measuredWord{obj: o, text: form, style: st, width: w, kind: kind})
		default:
			// InlineSpan boundaries are already removed by FlattenInline;
			// ScriptCall must have been evaluated to Text/Separator by
			// this point (spec §4.9's Evaluate runs before layout).
			if err := flushChunk(chunkText, chunkStyle); err != nil {
				return lm, err
			}
			chunkText, haveChunk = "", false
		}
	}
	if err := flushChunk(chunkText, chunkStyle); err != nil {
		return lm, err
	}
	return lm, nil
}

func accumulateFontExtents(lm *LineMetrics, src fonts.FontSource, size units.Length) {
	m := src.FontMetrics()
	scale := float64(size.Pt()) / m.UnitsPerEm
	ascent := units.FromPt(m.TypoAscent * scale)
	descent := units.FromPt(-m.TypoDescent * scale)
	capHeight := units.FromPt(m.CapHeight * scale)
	spacing := units.FromPt(m.DefaultLineSpacing() * scale)
	lm.Ascent = units.Max(lm.Ascent, ascent)
	lm.Descent = units.Max(lm.Descent, descent)
	lm.CapHeight = units.Max(lm.CapHeight, capHeight)
	lm.DefaultSpacing = units.Max(lm.DefaultSpacing, spacing)
}

// averageSeparatorWidth measures form once under each neighbour's style
// and averages, per spec §4.4.1.
func averageSeparatorWidth(resolver FontResolver, log observability.Logger, form string, left, right style.Style) (units.Length, error) {
	if form == "" {
		return 0, nil
	}
	lSrc, lSize, err := fontFor(resolver, left)
	if err != nil {
		return 0, err
	}
	rSrc, rSize, err := fontFor(resolver, right)
	if err != nil {
		return 0, err
	}
	lw := measureRun(lSrc, log, form, lSize)
	rw := measureRun(rSrc, log, form, rSize)
	return lw.Add(rw).Scale(0.5), nil
}
