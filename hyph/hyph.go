// Package hyph implements the Knuth/Liang (TeX-hyph) pattern-file
// hyphenator described in spec §4.1, grounded on the original engine's
// misc/hyph.cpp. A pattern file has a `\patterns{...}` block of entries
// like `hy3ph` (digits are priorities interleaved between the pattern's
// characters; a leading/trailing '.' anchors the pattern to a word
// boundary) and an optional `\hyphenation{...}` block of exact-word
// overrides spelled with explicit hyphens, e.g. "hy-phen-ation".
package hyph

import (
	"bufio"
	"fmt"
	"strings"
	"sync"
	"unicode"
)

const maxPatternLen = 16

// pattern is a parsed pattern entry: the character string with '.'
// boundary markers stripped, and the priority digit following each
// character position (length len(chars)+1).
type pattern struct {
	chars      string
	priorities []uint8
}

// Pats holds the three pattern tables: front-anchored (only matched
// starting at index 0 of the word), back-anchored (only matched at the
// word's suffix), and mid-word (slides across every position).
type Pats struct {
	front map[string]pattern
	mid   map[string]pattern
	back  map[string]pattern
}

// ParsePatterns parses the body of a `\patterns{...}` block (without the
// surrounding braces), one pattern per line.
func ParsePatterns(body string) (Pats, error) {
	p := Pats{front: map[string]pattern{}, mid: map[string]pattern{}, back: map[string]pattern{}}

	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		pat, leadingDot, trailingDot, err := parsePatternLine(line)
		if err != nil {
			return Pats{}, err
		}
		switch {
		case leadingDot:
			p.front[pat.chars] = pat
		case trailingDot:
			p.back[pat.chars] = pat
		default:
			p.mid[pat.chars] = pat
		}
	}
	return p, sc.Err()
}

func parsePatternLine(line string) (pat pattern, leadingDot, trailingDot bool, err error) {
	runes := []rune(line)
	leadingDot = len(runes) > 0 && runes[0] == '.'
	trailingDot = len(runes) > 0 && runes[len(runes)-1] == '.'

	var chars strings.Builder
	priorities := []uint8{0}
	for _, c := range runes {
		if c == '.' {
			continue
		}
		if c >= '0' && c <= '9' {
			priorities[len(priorities)-1] = uint8(c - '0')
			continue
		}
		chars.WriteRune(c)
		priorities = append(priorities, 0)
	}
	if chars.Len() > maxPatternLen {
		return pattern{}, false, false, fmt.Errorf("hyph: pattern %q exceeds %d characters", line, maxPatternLen)
	}
	return pattern{chars: chars.String(), priorities: priorities}, leadingDot, trailingDot, nil
}

// Hyphenator answers per-character hyphenation priorities for words,
// using patterns loaded from ParsePatterns and an optional exception
// list. Results are memoised; a Hyphenator is safe for concurrent use
// even though the layout pipeline itself is single-threaded.
type Hyphenator struct {
	pats       Pats
	exceptions map[string][]uint8

	mu    sync.Mutex
	cache map[string][]uint8
}

// New constructs a Hyphenator from already-parsed patterns.
func New(pats Pats) *Hyphenator {
	return &Hyphenator{pats: pats, exceptions: map[string][]uint8{}, cache: map[string][]uint8{}}
}

// AddExceptions parses the body of a `\hyphenation{...}` block (one
// hyphenated word per line, e.g. "as-so-ciate") and installs each as an
// exact-match override.
func (h *Hyphenator) AddExceptions(body string) error {
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var word strings.Builder
		points := []uint8{0}
		for _, c := range line {
			if c == '-' {
				points[len(points)-1] = 5
				continue
			}
			word.WriteRune(c)
			points = append(points, 0)
		}
		h.exceptions[strings.ToLower(word.String())] = points
	}
	return sc.Err()
}

// ComputeHyphenationPoints returns an array of length len(word)+1 (in
// runes) giving the priority (0-9) of a hyphenation candidate before
// each rune; odd priorities are valid break points. Deterministic,
// idempotent, and memoised per lowercased word.
func (h *Hyphenator) ComputeHyphenationPoints(word string) []uint8 {
	lower := strings.ToLower(word)
	runes := []rune(lower)

	h.mu.Lock()
	if cached, ok := h.cache[lower]; ok {
		h.mu.Unlock()
		return cached
	}
	h.mu.Unlock()

	if exc, ok := h.exceptions[lower]; ok {
		result := append([]uint8(nil), exc...)
		h.store(lower, result)
		return result
	}

	ret := make([]uint8, len(runes)+1)

	applyMatch := func(offset int, pat pattern) {
		for k, pr := range pat.priorities {
			if pr == 0 {
				continue
			}
			if ret[offset+k] < pr {
				ret[offset+k] = pr
			}
		}
	}

	for j := 1; j <= maxPatternLen && j < len(runes); j++ {
		snip := string(runes[:j])
		if pat, ok := h.pats.front[snip]; ok {
			applyMatch(0, pat)
		}
	}

	for i := 0; i < len(runes); i++ {
		for j := 1; j <= maxPatternLen && i+j <= len(runes); j++ {
			snip := string(runes[i : i+j])
			if pat, ok := h.pats.mid[snip]; ok {
				applyMatch(i, pat)
			}
		}
	}

	for j := 1; j <= maxPatternLen && j < len(runes); j++ {
		start := len(runes) - j
		snip := string(runes[start:])
		if pat, ok := h.pats.back[snip]; ok {
			applyMatch(start, pat)
		}
	}

	h.store(lower, ret)
	return ret
}

func (h *Hyphenator) store(word string, points []uint8) {
	h.mu.Lock()
	h.cache[word] = points
	h.mu.Unlock()
}

// BreakCost converts a hyphenation priority (as produced by
// ComputeHyphenationPoints) into a line-breaker penalty: priorities
// 1/3/5 are the only odd values a well-formed pattern file produces, and
// they map to costs 5/3/1 — a higher pattern priority is a more
// desirable break, hence a lower cost (spec §4.1).
func BreakCost(priority uint8) (cost int, isCandidate bool) {
	if priority%2 == 0 {
		return 0, false
	}
	switch priority {
	case 1:
		return 5, true
	case 3:
		return 3, true
	case 5:
		return 1, true
	default:
		// Any other odd digit (7, 9) is a valid but unusual priority;
		// extrapolate linearly rather than special-casing them away.
		return 6 - int(priority), true
	}
}

// IsUpper reports whether r is an uppercase letter, used by callers that
// want to avoid hyphenating acronyms/proper nouns before lowering.
func IsUpper(r rune) bool { return unicode.IsUpper(r) }
