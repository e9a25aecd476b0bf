package pdfwriter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sap-lang/sap/pdf"
)

// encodeWidths renders a simple font's sparse code->width map as the
// contiguous FirstChar..LastChar /Widths array the PDF spec requires,
// matching the teacher's encodeWidths in writer_impl.go.
func encodeWidths(widths map[int]int) (first, last int, arr *pdf.ArrayObj) {
	codes := make([]int, 0, len(widths))
	for c := range widths {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	first, last = codes[0], codes[len(codes)-1]
	arr = pdf.NewArray()
	for c := first; c <= last; c++ {
		w, ok := widths[c]
		if !ok {
			w = 0
		}
		arr.Append(pdf.NumberInt(int64(w)))
	}
	return first, last, arr
}

// encodeCIDWidths renders a CID->width map as the PDF /W array's
// compact run-length form: "[ cFirst [w0 w1 ...] cFirst cLast w ... ]",
// grouping consecutive CIDs sharing identical widths is skipped for
// simplicity (every run is emitted as an explicit array), matching the
// teacher's simpler (non-range-collapsing) encodeCIDWidths.
func encodeCIDWidths(widths map[int]int) *pdf.ArrayObj {
	cids := make([]int, 0, len(widths))
	for c := range widths {
		cids = append(cids, c)
	}
	sort.Ints(cids)
	arr := pdf.NewArray()
	i := 0
	for i < len(cids) {
		start := cids[i]
		run := pdf.NewArray()
		for i < len(cids) && cids[i] == start+len(run.Items) {
			run.Append(pdf.NumberInt(int64(widths[cids[i]])))
			i++
		}
		arr.Append(pdf.NumberInt(int64(start)))
		arr.Append(run)
	}
	return arr
}

// encodeToUnicodeCMap renders a code->rune(s) map as a minimal
// bfchar-only ToUnicode CMap stream, matching the teacher's
// writer_impl.go ToUnicode emission (used for copy/paste and screen
// readers, not for glyph selection).
func encodeToUnicodeCMap(toUnicode map[int][]rune) string {
	codes := make([]int, 0, len(toUnicode))
	for c := range toUnicode {
		codes = append(codes, c)
	}
	sort.Ints(codes)

	var sb strings.Builder
	sb.WriteString("/CIDInit /ProcSet findresource begin\n")
	sb.WriteString("12 dict begin\nbegincmap\n")
	sb.WriteString("/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def\n")
	sb.WriteString("/CMapName /Adobe-Identity-UCS def\n/CMapType 2 def\n")
	sb.WriteString("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n")
	fmt.Fprintf(&sb, "%d beginbfchar\n", len(codes))
	for _, c := range codes {
		sb.WriteString(fmt.Sprintf("<%04X> <%s>\n", c, runesToHex(toUnicode[c])))
	}
	sb.WriteString("endbfchar\nendcmap\nCMapName currentdict /CMap defineresource pop\nend\nend\n")
	return sb.String()
}

func runesToHex(rs []rune) string {
	var sb strings.Builder
	for _, r := range rs {
		if r > 0xFFFF {
			// encode as a UTF-16 surrogate pair
			r -= 0x10000
			hi := 0xD800 + (r >> 10)
			lo := 0xDC00 + (r & 0x3FF)
			fmt.Fprintf(&sb, "%04X%04X", hi, lo)
			continue
		}
		fmt.Fprintf(&sb, "%04X", r)
	}
	return sb.String()
}
