package layout

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/sap-lang/sap/tree"
)

const (
	leftSingleQuote  = '‘'
	rightSingleQuote = '’'
	leftDoubleQuote  = '“'
	rightDoubleQuote = '”'
)

// ApplySmartQuotes walks objs in place, replacing ASCII quote characters
// inside Text nodes per spec §4.4.4: an apostrophe adjacent to a letter
// becomes U+2019 (a typographic apostrophe, not an opening quote); a
// standalone "'" alternates between U+2018/U+2019 by nesting depth, as
// does '"' between U+201C/U+201D. Source text is NFC-normalised first so
// a combining sequence straddling a replaced quote isn't split.
func ApplySmartQuotes(objs []tree.InlineObject) {
	singleDepth, doubleDepth := 0, 0
	for _, o := range objs {
		t, ok := o.(*tree.Text)
		if !ok {
			continue
		}
		t.Contents = norm.NFC.String(t.Contents)
		t.Contents = replaceQuotesInString(t.Contents, &singleDepth, &doubleDepth)
	}
}

func replaceQuotesInString(s string, singleDepth, doubleDepth *int) string {
	runes := []rune(s)
	var out strings.Builder
	for i, r := range runes {
		switch r {
		case '\'':
			prevLetter := i > 0 && unicode.IsLetter(runes[i-1])
			nextLetter := i+1 < len(runes) && unicode.IsLetter(runes[i+1])
			switch {
			case prevLetter && nextLetter:
				out.WriteRune(rightSingleQuote) // apostrophe, e.g. "don't"
			case prevLetter && !nextLetter:
				out.WriteRune(rightSingleQuote) // trailing possessive/elision
			default:
				if *singleDepth%2 == 0 {
					out.WriteRune(leftSingleQuote)
				} else {
					out.WriteRune(rightSingleQuote)
				}
				*singleDepth++
			}
		case '"':
			if *doubleDepth%2 == 0 {
				out.WriteRune(leftDoubleQuote)
			} else {
				out.WriteRune(rightDoubleQuote)
			}
			*doubleDepth++
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
