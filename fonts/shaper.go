package fonts

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapingSize is the size (in 26.6 fixed-point) at which runs are
// shaped: 1000 per em, so a shaped advance divided by 64 is in
// thousandths of an em whatever the face's own unitsPerEm.
// ShapedSource.FontMetrics reports the face's unitsPerEm unchanged.
const shapingSize = fixed.Int26_6(1000 * 64)

// ShapedSource implements FontSource over an OpenType/TrueType font
// program, using github.com/go-text/typesetting for cmap lookups and
// harfbuzz-style shaping (ligatures, kerning). It backs every font in a
// document other than the 14 builtins (spec §4.2, §6.1).
type ShapedSource struct {
	name    string
	data    []byte
	face    gofont.Face
	metrics FontMetrics
	shaper  shaping.HarfbuzzShaper
}

// NewShapedSource parses an OpenType/TrueType font program and derives
// its FontMetrics from the face's OS/2, hhea and head tables.
func NewShapedSource(name string, data []byte) (*ShapedSource, error) {
	face, err := gofont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: parse %q: %w", name, err)
	}
	upm := face.Upem()
	metrics := FontMetrics{UnitsPerEm: float64(upm)}
	if md, ok := face.FontHExtents(); ok && (md.Ascent != 0 || md.Descent != 0) {
		metrics.HHEAAscent = float64(md.Ascent)
		metrics.HHEADescent = float64(md.Descent)
		metrics.TypoAscent = float64(md.Ascent)
		metrics.TypoDescent = float64(md.Descent)
		metrics.CapHeight = float64(md.CapHeight)
	}
	metrics.XHeight = metrics.UnitsPerEm * 0.5
	return &ShapedSource{name: name, data: data, face: face, metrics: metrics}, nil
}

func (s *ShapedSource) Name() string            { return s.name }
func (s *ShapedSource) FontMetrics() FontMetrics { return s.metrics }
func (s *ShapedSource) IsBuiltin() bool          { return false }
func (s *ShapedSource) FontFile() []byte         { return s.data }

func (s *ShapedSource) CharToGlyph(r rune) (GlyphID, bool) {
	gid, ok := s.face.NominalGlyph(r)
	return GlyphID(gid), ok
}

func (s *ShapedSource) Metrics(g GlyphID) GlyphMetrics {
	adv := s.face.HorizontalAdvance(gofont.GID(g))
	ext, _ := s.face.GlyphExtents(gofont.GID(g))
	return GlyphMetrics{
		HorzAdvance: float64(adv),
		BBox: GlyphBBox{
			XMin: float64(ext.XBearing),
			YMin: float64(ext.YBearing) - float64(ext.Height),
			XMax: float64(ext.XBearing) + float64(ext.Width),
			YMax: float64(ext.YBearing),
		},
	}
}

// Substitute performs no substitution on glyph ids and always reports
// false; ligatures for this source are applied by ShapeRun, which
// shapes the text itself.
func (s *ShapedSource) Substitute(glyphs []GlyphID, features FeatureSet) (SubstitutionResult, bool) {
	return SubstitutionResult{}, false
}

// Kerning shapes glyphs[i:i+2] runs pairwise is not meaningful post-hoc
// on glyph ids (shaping operates on runes); pair kerning for this
// source is instead applied during ShapeRun, which works on text
// directly. Kerning here is a no-op pass, present to satisfy
// FontSource for callers that query it generically.
func (s *ShapedSource) Kerning(glyphs []GlyphID, features FeatureSet) map[int]float64 {
	return nil
}

// ShapedGlyph is one shaped-and-positioned glyph. Advances and offsets
// are in thousandths of an em (the run is shaped at shapingSize), not in
// the face's own font units; callers scale by the rendered font size.
type ShapedGlyph struct {
	ID       GlyphID
	Cluster  int
	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64
}

// ShapeRun runs text (assumed to be a single script/direction run, as
// produced by the line breaker splitting on SeparatorKind boundaries)
// through harfbuzz, applying ligatures and kerning in one pass. It is
// the only place this source applies ligatures and kerning;
// Substitute/Kerning above exist only to satisfy FontSource generically.
func (s *ShapedSource) ShapeRun(text []rune, vertical bool) []ShapedGlyph {
	if len(text) == 0 {
		return nil
	}
	script := DetectScript(text)
	dir := scriptDirection(script)
	if vertical {
		dir = di.DirectionTTB
	}
	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: dir,
		Face:      s.face,
		Size:      shapingSize,
		Script:    script,
		Language:  language.DefaultLanguage(),
	}
	output := s.shaper.Shape(input)

	out := make([]ShapedGlyph, 0, len(output.Glyphs))
	for _, g := range output.Glyphs {
		out = append(out, ShapedGlyph{
			ID:       GlyphID(g.GlyphID),
			Cluster:  g.ClusterIndex,
			XAdvance: float64(g.XAdvance) / 64.0,
			YAdvance: float64(g.YAdvance) / 64.0,
			XOffset:  float64(g.XOffset) / 64.0,
			YOffset:  float64(g.YOffset) / 64.0,
		})
	}
	return out
}

func scriptDirection(script language.Script) di.Direction {
	switch script {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana, language.Nko:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

func DetectScript(runes []rune) language.Script {
	counts := make(map[language.Script]int)
	maxCount := 0
	bestScript := language.Latin

	for _, r := range runes {
		script := scriptFromRune(r)
		if script == language.Unknown {
			continue
		}
		counts[script]++
		if counts[script] > maxCount {
			maxCount = counts[script]
			bestScript = script
		}
	}
	return bestScript
}

func scriptFromRune(r rune) language.Script {
	switch {
	case unicode.Is(unicode.Arabic, r):
		return language.Arabic
	case unicode.Is(unicode.Hebrew, r):
		return language.Hebrew
	case unicode.Is(unicode.Latin, r):
		return language.Latin
	case unicode.Is(unicode.Cyrillic, r):
		return language.Cyrillic
	case unicode.Is(unicode.Greek, r):
		return language.Greek
	case unicode.Is(unicode.Thai, r):
		return language.Thai
	case unicode.Is(unicode.Devanagari, r):
		return language.Devanagari
	case unicode.Is(unicode.Han, r):
		return language.Han
	case unicode.Is(unicode.Hiragana, r):
		return language.Hiragana
	case unicode.Is(unicode.Katakana, r):
		return language.Katakana
	case unicode.Is(unicode.Hangul, r):
		return language.Hangul
	}
	return language.Unknown
}

var _ FontSource = (*ShapedSource)(nil)
