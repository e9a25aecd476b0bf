package fonts

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Core14 names the 14 PDF standard fonts (original_source/pdf/builtin_font.h).
type Core14 int

const (
	TimesRoman Core14 = iota
	TimesBold
	TimesItalic
	TimesBoldItalic
	Courier
	CourierBold
	CourierOblique
	CourierBoldOblique
	Helvetica
	HelveticaBold
	HelveticaOblique
	HelveticaBoldOblique
	Symbol
	ZapfDingbats
)

func (c Core14) afmName() string {
	switch c {
	case TimesRoman:
		return "Times-Roman"
	case TimesBold:
		return "Times-Bold"
	case TimesItalic:
		return "Times-Italic"
	case TimesBoldItalic:
		return "Times-BoldItalic"
	case Courier:
		return "Courier"
	case CourierBold:
		return "Courier-Bold"
	case CourierOblique:
		return "Courier-Oblique"
	case CourierBoldOblique:
		return "Courier-BoldOblique"
	case Helvetica:
		return "Helvetica"
	case HelveticaBold:
		return "Helvetica-Bold"
	case HelveticaOblique:
		return "Helvetica-Oblique"
	case HelveticaBoldOblique:
		return "Helvetica-BoldOblique"
	case Symbol:
		return "Symbol"
	case ZapfDingbats:
		return "ZapfDingbats"
	default:
		return "Helvetica"
	}
}

// standardEncodingNames maps the printable-ASCII codepoints (32..126)
// onto their StandardEncoding glyph names. AFMSource gives each glyph the
// id of its AFM char code, so for these characters glyph id == codepoint.
var standardEncodingNames = buildStandardEncodingNames()

func buildStandardEncodingNames() map[int]string {
	names := map[int]string{
		32: "space", 33: "exclam", 34: "quotedbl", 35: "numbersign",
		36: "dollar", 37: "percent", 38: "ampersand", 39: "quoteright",
		40: "parenleft", 41: "parenright", 42: "asterisk", 43: "plus",
		44: "comma", 45: "hyphen", 46: "period", 47: "slash",
		48: "zero", 49: "one", 50: "two", 51: "three", 52: "four",
		53: "five", 54: "six", 55: "seven", 56: "eight", 57: "nine",
		58: "colon", 59: "semicolon", 60: "less", 61: "equal",
		62: "greater", 63: "question", 64: "at",
		91: "bracketleft", 92: "backslash", 93: "bracketright",
		94: "asciicircum", 95: "underscore", 96: "quoteleft",
		123: "braceleft", 124: "bar", 125: "braceright", 126: "asciitilde",
	}
	for i, c := 0, byte('A'); c <= 'Z'; i, c = i+1, c+1 {
		names[65+i] = string(rune(c))
	}
	for i, c := 0, byte('a'); c <= 'z'; i, c = i+1, c+1 {
		names[97+i] = string(rune(c))
	}
	return names
}

// AFMSource implements FontSource for one of the 14 PDF standard fonts,
// parsed from a zlib-compressed embedded AFM blob (spec §4.2, §6.1).
// units_per_em is fixed at 1000, matching PDF's AFM convention.
type AFMSource struct {
	kind       Core14
	name       string
	fontMetric FontMetrics

	glyphs     map[rune]GlyphID  // codepoint -> glyph id (== AFM char code)
	glyphName  map[GlyphID]string
	widths     map[GlyphID]float64
	kerning    map[[2]GlyphID]float64
	ligatures  map[[2]GlyphID]GlyphID // (f, i)->fi ; (f, l)->fl
}

// LoadCore14 decompresses and parses the embedded AFM data for kind.
func LoadCore14(kind Core14) (*AFMSource, error) {
	name := kind.afmName()
	blob, ok := afmBlobs[name]
	if !ok {
		return nil, fmt.Errorf("fonts: no embedded AFM data for %q", name)
	}
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("fonts: decode AFM blob %q: %w", name, err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("fonts: inflate AFM blob %q: %w", name, err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("fonts: inflate AFM blob %q: %w", name, err)
	}
	return parseAFM(kind, name, buf.String())
}

func parseAFM(kind Core14, name, text string) (*AFMSource, error) {
	src := &AFMSource{
		kind:      kind,
		name:      name,
		glyphs:    map[rune]GlyphID{},
		glyphName: map[GlyphID]string{},
		widths:    map[GlyphID]float64{},
		kerning:   map[[2]GlyphID]float64{},
		ligatures: map[[2]GlyphID]GlyphID{},
	}
	src.fontMetric.UnitsPerEm = 1000

	nameToGID := map[string]GlyphID{}

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "CapHeight "):
			src.fontMetric.CapHeight = parseAFMFloat(line, "CapHeight")
		case strings.HasPrefix(line, "XHeight "):
			src.fontMetric.XHeight = parseAFMFloat(line, "XHeight")
		case strings.HasPrefix(line, "Ascender "):
			src.fontMetric.TypoAscent = parseAFMFloat(line, "Ascender")
			src.fontMetric.HHEAAscent = src.fontMetric.TypoAscent
		case strings.HasPrefix(line, "Descender "):
			src.fontMetric.TypoDescent = parseAFMFloat(line, "Descender")
			src.fontMetric.HHEADescent = src.fontMetric.TypoDescent
		case strings.HasPrefix(line, "ItalicAngle "):
			src.fontMetric.ItalicAngle = parseAFMFloat(line, "ItalicAngle")
		case strings.HasPrefix(line, "FontBBox "):
			fields := strings.Fields(line)
			if len(fields) >= 5 {
				src.fontMetric.XMin, _ = strconv.ParseFloat(fields[1], 64)
				src.fontMetric.YMin, _ = strconv.ParseFloat(fields[2], 64)
				src.fontMetric.XMax, _ = strconv.ParseFloat(fields[3], 64)
				src.fontMetric.YMax, _ = strconv.ParseFloat(fields[4], 64)
			}
		case strings.HasPrefix(line, "C "):
			code, gname, width, ok := parseCharMetricLine(line)
			if !ok {
				continue
			}
			var gid GlyphID
			if code >= 0 {
				gid = GlyphID(code)
			} else {
				gid = GlyphID(1000 + len(nameToGID))
			}
			nameToGID[gname] = gid
			src.glyphName[gid] = gname
			src.widths[gid] = width
			if code >= 0 {
				src.glyphs[rune(code)] = gid
			}
		case strings.HasPrefix(line, "KPX "):
			fields := strings.Fields(line)
			if len(fields) != 4 {
				continue
			}
			a, aok := nameToGID[fields[1]]
			b, bok := nameToGID[fields[2]]
			v, verr := strconv.ParseFloat(fields[3], 64)
			if aok && bok && verr == nil {
				src.kerning[[2]GlyphID{a, b}] = v
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fonts: scan AFM %q: %w", name, err)
	}

	if fi, ok := nameToGID["f"]; ok {
		if _, ok2 := nameToGID["i"]; ok2 {
			ii := nameToGID["i"]
			src.ligatures[[2]GlyphID{fi, ii}] = GlyphID(2000)
			src.widths[GlyphID(2000)] = src.widths[fi]
			src.glyphName[GlyphID(2000)] = "fi"
		}
		if ll, ok2 := nameToGID["l"]; ok2 {
			src.ligatures[[2]GlyphID{fi, ll}] = GlyphID(2001)
			src.widths[GlyphID(2001)] = src.widths[fi]
			src.glyphName[GlyphID(2001)] = "fl"
		}
	}
	return src, nil
}

func parseAFMFloat(line, key string) float64 {
	f := strings.Fields(line)
	if len(f) < 2 {
		return 0
	}
	v, _ := strconv.ParseFloat(f[1], 64)
	return v
}

// parseCharMetricLine parses "C 65 ; WX 667 ; N A ;" style lines.
func parseCharMetricLine(line string) (code int, name string, width float64, ok bool) {
	code = -1
	for _, field := range strings.Split(line, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parts := strings.Fields(field)
		if len(parts) < 2 {
			continue
		}
		switch parts[0] {
		case "C":
			code, _ = strconv.Atoi(parts[1])
		case "WX":
			width, _ = strconv.ParseFloat(parts[1], 64)
		case "N":
			name = parts[1]
		}
	}
	if name == "" {
		return 0, "", 0, false
	}
	return code, name, width, true
}

func (a *AFMSource) Name() string            { return a.name }
func (a *AFMSource) FontMetrics() FontMetrics { return a.fontMetric }
func (a *AFMSource) IsBuiltin() bool          { return true }
func (a *AFMSource) FontFile() []byte         { return nil }

func (a *AFMSource) CharToGlyph(r rune) (GlyphID, bool) {
	gid, ok := a.glyphs[r]
	return gid, ok
}

func (a *AFMSource) Metrics(g GlyphID) GlyphMetrics {
	return GlyphMetrics{HorzAdvance: a.widths[g]}
}

func (a *AFMSource) Substitute(glyphs []GlyphID, features FeatureSet) (SubstitutionResult, bool) {
	if len(glyphs) < 2 {
		return SubstitutionResult{}, false
	}
	var out SubstitutionResult
	changed := false
	i := 0
	for i < len(glyphs) {
		if i+1 < len(glyphs) {
			if lig, ok := a.ligatures[[2]GlyphID{glyphs[i], glyphs[i+1]}]; ok {
				out.NewGlyphs = append(out.NewGlyphs, lig)
				out.Consumed = append(out.Consumed, 2)
				i += 2
				changed = true
				continue
			}
		}
		out.NewGlyphs = append(out.NewGlyphs, glyphs[i])
		out.Consumed = append(out.Consumed, 1)
		i++
	}
	return out, changed
}

func (a *AFMSource) Kerning(glyphs []GlyphID, features FeatureSet) map[int]float64 {
	if len(glyphs) < 2 {
		return nil
	}
	adj := map[int]float64{}
	for i := 0; i+1 < len(glyphs); i++ {
		if v, ok := a.kerning[[2]GlyphID{glyphs[i], glyphs[i+1]}]; ok {
			adj[i] = v
		}
	}
	if len(adj) == 0 {
		return nil
	}
	return adj
}

// GlyphName returns the AFM glyph name for g (used by the writer to
// build a non-subsetted /Differences encoding array for builtin fonts).
func (a *AFMSource) GlyphName(g GlyphID) (string, bool) {
	n, ok := a.glyphName[g]
	return n, ok
}

var _ FontSource = (*AFMSource)(nil)
