package fonts

import (
	"fmt"
	"strings"

	"github.com/sap-lang/sap/style"
)

// BuiltinResolver resolves a family name + style to one of the 14 PDF
// standard fonts (spec §4.2's minimum viable FontResolver): "Times",
// "Courier" and "Helvetica"/"sans-serif" map to their four style
// variants; anything else is an error, since embedding an arbitrary
// font file needs a font path this resolver was never given. Callers
// that need embedded fonts wrap or replace this with their own
// layout.FontResolver backed by ShapedSource.
type BuiltinResolver struct {
	cache map[Core14]*AFMSource
}

// NewBuiltinResolver returns a resolver that lazily loads and caches
// Core14 AFM metrics on first use.
func NewBuiltinResolver() *BuiltinResolver {
	return &BuiltinResolver{cache: make(map[Core14]*AFMSource)}
}

func (r *BuiltinResolver) Resolve(family string, fontStyle style.FontStyle) (FontSource, error) {
	kind, err := core14For(family, fontStyle)
	if err != nil {
		return nil, err
	}
	if src, ok := r.cache[kind]; ok {
		return src, nil
	}
	src, err := LoadCore14(kind)
	if err != nil {
		return nil, fmt.Errorf("fonts: load builtin %v: %w", kind, err)
	}
	r.cache[kind] = src
	return src, nil
}

func core14For(family string, s style.FontStyle) (Core14, error) {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "times", "times new roman", "serif", "":
		switch s {
		case style.Bold:
			return TimesBold, nil
		case style.Italic:
			return TimesItalic, nil
		case style.BoldItalic:
			return TimesBoldItalic, nil
		default:
			return TimesRoman, nil
		}
	case "courier", "monospace":
		switch s {
		case style.Bold:
			return CourierBold, nil
		case style.Italic:
			return CourierOblique, nil
		case style.BoldItalic:
			return CourierBoldOblique, nil
		default:
			return Courier, nil
		}
	case "helvetica", "arial", "sans-serif", "sans":
		switch s {
		case style.Bold:
			return HelveticaBold, nil
		case style.Italic:
			return HelveticaOblique, nil
		case style.BoldItalic:
			return HelveticaBoldOblique, nil
		default:
			return Helvetica, nil
		}
	default:
		return 0, fmt.Errorf("fonts: unknown builtin family %q (embed a font file via a ShapedSource-backed resolver instead)", family)
	}
}
