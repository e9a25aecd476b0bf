package hyph

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadFile parses a TeX-hyph pattern file (spec §6.3): a `\patterns{...}`
// block and an optional `\hyphenation{...}` exception block. It tolerates
// a leading UTF-8 byte-order mark.
func LoadFile(path string) (*Hyphenator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hyph: read %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("hyph: %s is not valid UTF-8", path)
	}
	return Parse(string(data))
}

// Parse parses the full contents of a TeX-hyph file from an in-memory
// string (used by LoadFile and directly by tests/embedders).
func Parse(contents string) (*Hyphenator, error) {
	patsBody, err := extractBlock(contents, `\patterns{`)
	if err != nil {
		return nil, fmt.Errorf("hyph: %w", err)
	}
	pats, err := ParsePatterns(patsBody)
	if err != nil {
		return nil, err
	}
	h := New(pats)

	if excBody, err := extractBlock(contents, `\hyphenation{`); err == nil {
		if err := h.AddExceptions(excBody); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// extractBlock finds `marker` and returns the text up to (but not
// including) the matching closing '}'. It assumes patterns/exceptions
// never themselves contain a literal '}', matching the original format.
func extractBlock(contents, marker string) (string, error) {
	start := strings.Index(contents, marker)
	if start < 0 {
		return "", fmt.Errorf("block %q not found", marker)
	}
	bodyStart := start + len(marker)
	end := strings.IndexByte(contents[bodyStart:], '}')
	if end < 0 {
		return "", fmt.Errorf("block %q is unterminated", marker)
	}
	return contents[bodyStart : bodyStart+end], nil
}

// FindPatternFile searches libPaths (library search path entries, in
// order) for a hyphenation file named "<lang>.tex" under a
// "data/hyphenation/" subdirectory; first match wins (spec §6.3).
func FindPatternFile(libPaths []string, lang string) (string, bool) {
	for _, base := range libPaths {
		candidate := filepath.Join(base, "data", "hyphenation", lang+".tex")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
