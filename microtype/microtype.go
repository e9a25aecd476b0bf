// Package microtype implements optical margin alignment: letting a
// narrow set of punctuation glyphs (hyphens, quotes, periods, commas)
// hang slightly past a line's nominal left or right edge, so the visual
// margin looks straight even though those glyphs' own ink is lighter
// than a full letter's. Protrusion amounts are expressed as a fraction
// of the glyph's own advance width, per font family, the same shape as
// the original's per-family `.cfg` protrusion tables.
package microtype

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Profile is one font family's left/right protrusion ratios, keyed by
// rune. A rune absent from a side simply never protrudes on that side.
type Profile struct {
	Left  map[rune]float64
	Right map[rune]float64
}

// LeftProtrusion returns the fraction of the glyph's advance width that
// should hang past the line's left edge, if r is configured to protrude
// there.
func (p Profile) LeftProtrusion(r rune) (float64, bool) {
	v, ok := p.Left[r]
	return v, ok
}

// RightProtrusion is LeftProtrusion's mirror for the line's right edge.
func (p Profile) RightProtrusion(r rune) (float64, bool) {
	v, ok := p.Right[r]
	return v, ok
}

// Table maps a font family name to its Profile.
type Table map[string]Profile

// Lookup returns family's Profile, or the zero Profile (no protrusion)
// if family has no entry.
func (t Table) Lookup(family string) Profile {
	return t[family]
}

// DefaultLatinProfile is a reasonable starting point for Latin text
// families with no explicit config entry: periods and commas hang fully
// into the right margin, hyphens and closing quotes by half their width,
// semicolons and colons by 0.3; opening quotes hang by half their width
// into the left margin.
func DefaultLatinProfile() Profile {
	return Profile{
		Left: map[rune]float64{
			'"':      0.5,
			'‘': 0.5,
			'“': 0.5,
		},
		Right: map[rune]float64{
			'.':      1.0,
			',':      1.0,
			'-':      0.5,
			';':      0.3,
			':':      0.3,
			'’': 0.5,
			'”': 0.5,
		},
	}
}

// Load parses a protrusion table out of r. Each non-blank, non-comment
// line has the form:
//
//	family-name left=r1:v1,r2:v2 right=r3:v3,r4:v4
//
// where rN is a single rune and vN its protrusion ratio. Either side may
// be omitted.
func Load(r io.Reader) (Table, error) {
	table := make(Table)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("microtype: line %d: expected \"family side=...\", got %q", lineNo, line)
		}
		family := fields[0]
		profile := Profile{Left: map[rune]float64{}, Right: map[rune]float64{}}
		for _, side := range fields[1:] {
			name, list, ok := strings.Cut(side, "=")
			if !ok {
				return nil, fmt.Errorf("microtype: line %d: malformed side clause %q", lineNo, side)
			}
			var dst map[rune]float64
			switch name {
			case "left":
				dst = profile.Left
			case "right":
				dst = profile.Right
			default:
				return nil, fmt.Errorf("microtype: line %d: unknown side %q", lineNo, name)
			}
			for _, entry := range strings.Split(list, ",") {
				if entry == "" {
					continue
				}
				runeStr, ratioStr, ok := strings.Cut(entry, ":")
				if !ok {
					return nil, fmt.Errorf("microtype: line %d: malformed entry %q", lineNo, entry)
				}
				runes := []rune(runeStr)
				if len(runes) != 1 {
					return nil, fmt.Errorf("microtype: line %d: entry key %q is not a single rune", lineNo, runeStr)
				}
				ratio, err := strconv.ParseFloat(ratioStr, 64)
				if err != nil {
					return nil, fmt.Errorf("microtype: line %d: bad ratio %q: %w", lineNo, ratioStr, err)
				}
				dst[runes[0]] = ratio
			}
		}
		table[family] = profile
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("microtype: %w", err)
	}
	return table, nil
}
