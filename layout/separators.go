package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sap-lang/sap/hyph"
	"github.com/sap-lang/sap/tree"
)

// hardBreakChars are the characters spec §4.4.5 splits words around into
// a Text + Separator(BreakPoint) pair.
const hardBreakChars = "-/."

// NormaliseSeparators rewrites a paragraph's flat inline sequence (spec
// §4.4.5): runs of ASCII whitespace inside Text nodes become a single
// Space (or SentenceEnd, if the preceding visible character is one of
// '.', '!', '?') Separator; remaining words are split around hard-break
// characters into Text/Separator(BreakPoint) pairs; and, absent hard
// break characters, interior hyphenation candidates (from hyphenator,
// which may be nil to skip hyphenation entirely) become
// Separator(HyphenationPoint).
func NormaliseSeparators(objs []tree.InlineObject, hyphenator *hyph.Hyphenator) []tree.InlineObject {
	var out []tree.InlineObject
	lastVisible := rune(0)

	for _, o := range objs {
		t, ok := o.(*tree.Text)
		if !ok {
			out = append(out, o)
			continue
		}
		out = append(out, splitText(t.Contents, hyphenator, &lastVisible)...)
	}
	return out
}

func splitText(text string, hyphenator *hyph.Hyphenator, lastVisible *rune) []tree.InlineObject {
	var out []tree.InlineObject
	var word strings.Builder

	flushWord := func() {
		if word.Len() == 0 {
			return
		}
		out = append(out, splitHardBreaks(word.String(), hyphenator)...)
		word.Reset()
	}

	isSpace := func(r rune) bool { return r < utf8.RuneSelf && unicode.IsSpace(r) }
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if isSpace(r) {
			flushWord()
			kind := tree.Space
			if *lastVisible == '.' || *lastVisible == '!' || *lastVisible == '?' {
				kind = tree.SentenceEnd
			}
			// collapse consecutive whitespace into one separator
			for i+1 < len(runes) && isSpace(runes[i+1]) {
				i++
			}
			out = append(out, tree.NewSeparator(kind))
			continue
		}
		word.WriteRune(r)
		*lastVisible = r
	}
	flushWord()
	return out
}

// splitHardBreaks splits a single whitespace-free word around
// hardBreakChars; if none are present and the word is long enough, it
// consults hyphenator for interior candidate positions.
func splitHardBreaks(word string, hyphenator *hyph.Hyphenator) []tree.InlineObject {
	if !strings.ContainsAny(word, hardBreakChars) {
		return hyphenateWord(word, hyphenator)
	}

	var out []tree.InlineObject
	var piece strings.Builder
	for _, r := range word {
		if strings.ContainsRune(hardBreakChars, r) {
			if piece.Len() > 0 {
				out = append(out, tree.NewText(piece.String()))
				piece.Reset()
			}
			sep := tree.NewSeparator(tree.BreakPoint)
			sep.MidLineForm = string(r)
			sep.EndOfLineForm = string(r)
			out = append(out, sep)
			continue
		}
		piece.WriteRune(r)
	}
	if piece.Len() > 0 {
		out = append(out, tree.NewText(piece.String()))
	}
	return out
}

// hyphenateWord returns [Text(word)] unchanged, or splits it with
// interleaved HyphenationPoint separators at odd-priority interior
// positions when hyphenator is non-nil and the word is long enough to
// be worth considering (spec §4.4.5: "at least 2 code points long").
func hyphenateWord(word string, hyphenator *hyph.Hyphenator) []tree.InlineObject {
	if hyphenator == nil || utf8.RuneCountInString(word) < 2 {
		return []tree.InlineObject{tree.NewText(word)}
	}

	points := hyphenator.ComputeHyphenationPoints(word)
	runes := []rune(word)

	var out []tree.InlineObject
	var piece strings.Builder
	for i, r := range runes {
		piece.WriteRune(r)
		if i+1 >= len(runes) {
			continue
		}
		if i+1 < len(points) {
			cost, isCandidate := hyph.BreakCost(points[i+1])
			if isCandidate {
				out = append(out, tree.NewText(piece.String()))
				piece.Reset()
				sep := tree.NewSeparator(tree.HyphenationPoint)
				sep.HyphenationCost = cost
				out = append(out, sep)
			}
		}
	}
	if piece.Len() > 0 || len(out) == 0 {
		out = append(out, tree.NewText(piece.String()))
	}
	return out
}
