package pdfwriter

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sap-lang/sap/pdfdoc"
)

func testDocument() *pdfdoc.Document {
	return &pdfdoc.Document{
		Pages: []*pdfdoc.Page{
			{
				Index:    0,
				MediaBox: pdfdoc.Rectangle{LLX: 0, LLY: 0, URX: 612, URY: 792},
				Contents: []pdfdoc.ContentStream{{RawBytes: []byte("BT /F1 12 Tf (Hello) Tj ET")}},
			},
			{
				Index:    1,
				MediaBox: pdfdoc.Rectangle{LLX: 0, LLY: 0, URX: 612, URY: 792},
			},
		},
	}
}

func writeDoc(t *testing.T, wr *Writer, doc *pdfdoc.Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, wr.Write(context.Background(), doc, &buf))
	return buf.Bytes()
}

func TestDeterministicWriteIsByteIdenticalAcrossRuns(t *testing.T) {
	wr := NewWriterBuilder().WithDeterministicIDs(true).WithCompression(false).Build()
	doc := testDocument()

	out1 := writeDoc(t, wr, doc)
	out2 := writeDoc(t, wr, testDocument())
	assert.Equal(t, out1, out2)
}

func TestNonDeterministicIDsStillProduceValidOutput(t *testing.T) {
	wr := NewWriterBuilder().WithDeterministicIDs(false).Build()
	out := writeDoc(t, wr, testDocument())
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-1.7\n")))
	assert.Contains(t, string(out), "startxref")
}

// TestXrefEntriesAreTwentyBytesWithCRLF locks in the literal-\r\n,
// exactly-20-byte xref entry format.
func TestXrefEntriesAreTwentyBytesWithCRLF(t *testing.T) {
	wr := NewWriterBuilder().WithDeterministicIDs(true).Build()
	out := writeDoc(t, wr, testDocument())

	xrefIdx := bytes.Index(out, []byte("\nxref\n"))
	require.True(t, xrefIdx >= 0)
	rest := out[xrefIdx+len("\nxref\n"):]

	nlIdx := bytes.IndexByte(rest, '\n')
	require.True(t, nlIdx >= 0)
	rest = rest[nlIdx+1:]

	trailerIdx := bytes.Index(rest, []byte("trailer"))
	require.True(t, trailerIdx >= 0)
	entriesBlock := rest[:trailerIdx]

	require.Equal(t, 0, len(entriesBlock)%20, "every xref entry must be exactly 20 bytes")
	for i := 0; i < len(entriesBlock); i += 20 {
		entry := entriesBlock[i : i+20]
		assert.True(t, strings.HasSuffix(string(entry), "\r\n"), "entry %d must end in literal CRLF, got %q", i/20, entry)
	}
}

// TestXrefOffsetsPointAtTheirObjects is the xref-offset-matches-output
// invariant: each entry n's recorded byte offset, read back out of the
// serialised bytes, is where "n 0 obj" actually starts.
func TestXrefOffsetsPointAtTheirObjects(t *testing.T) {
	wr := NewWriterBuilder().WithDeterministicIDs(true).Build()
	out := writeDoc(t, wr, testDocument())

	xrefIdx := bytes.Index(out, []byte("\nxref\n"))
	require.True(t, xrefIdx >= 0)
	rest := out[xrefIdx+len("\nxref\n"):]

	nlIdx := bytes.IndexByte(rest, '\n')
	require.True(t, nlIdx >= 0)
	header := string(rest[:nlIdx])
	var start, size int
	_, err := fmt.Sscanf(header, "%d %d", &start, &size)
	require.NoError(t, err)

	entriesBlock := rest[nlIdx+1:]
	checked := 0
	for num := start + 1; num < size; num++ {
		entry := entriesBlock[num*20 : num*20+20]
		fields := strings.Fields(string(entry))
		require.Len(t, fields, 3)
		if fields[2] == "f" {
			continue
		}
		off, err := strconv.ParseInt(fields[0], 10, 64)
		require.NoError(t, err)
		want := fmt.Sprintf("%d 0 obj", num)
		got := string(out[off : int(off)+len(want)])
		assert.Equal(t, want, got, "xref entry for object %d must point at its own obj header", num)
		checked++
	}
	assert.True(t, checked > 0)
}

func TestOutlinesSetPageModeUseOutlines(t *testing.T) {
	wr := NewWriterBuilder().WithDeterministicIDs(true).Build()
	doc := testDocument()
	doc.Outlines = []pdfdoc.OutlineItem{{Title: "Chapter 1", PageIndex: 0}}

	out := writeDoc(t, wr, doc)
	assert.Contains(t, string(out), "/PageMode /UseOutlines")
}

func TestNoOutlinesMeansNoPageMode(t *testing.T) {
	wr := NewWriterBuilder().WithDeterministicIDs(true).Build()
	out := writeDoc(t, wr, testDocument())
	assert.NotContains(t, string(out), "/PageMode")
}

func TestDraftModeEmitsEmptyContentStreams(t *testing.T) {
	wr := NewWriterBuilder().WithDraft(true).WithCompression(false).WithDeterministicIDs(true).Build()
	out := writeDoc(t, wr, testDocument())
	assert.NotContains(t, string(out), "Hello")
}

func TestNonDraftModeEmitsContentStreamBytes(t *testing.T) {
	wr := NewWriterBuilder().WithDraft(false).WithCompression(false).WithDeterministicIDs(true).Build()
	out := writeDoc(t, wr, testDocument())
	assert.Contains(t, string(out), "Hello")
}
