package pdfwriter

import (
	"bytes"
	"compress/flate"
	"crypto/sha256"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sap-lang/sap/pdf"
	"github.com/sap-lang/sap/pdfdoc"
)

// flateEncode deflates data at best-compression level, matching the
// teacher's writer_impl.go stream-compression path.
func flateEncode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rectArray renders a pdfdoc.Rectangle as a PDF array object.
func rectArray(r pdfdoc.Rectangle) *pdf.ArrayObj {
	return pdf.NewArray(
		pdf.NumberFloat(r.LLX), pdf.NumberFloat(r.LLY),
		pdf.NumberFloat(r.URX), pdf.NumberFloat(r.URY),
	)
}

// fileID derives the /ID trailer pair: a content hash of the document's
// title/page count in deterministic mode (so repeated builds of the
// same input byte-for-byte match, matching the teacher's
// cfg.Deterministic path), or a fresh UUIDv4 pair otherwise (replacing
// the teacher's crypto/rand-seeded ID with the standard library
// recommended by the pack, per DESIGN.md).
func fileID(doc *pdfdoc.Document, deterministic bool) (id1, id2 []byte) {
	if deterministic {
		h := sha256.New()
		if doc.Info != nil {
			fmt.Fprintf(h, "%s|%s", doc.Info.Title, doc.Info.Author)
		}
		fmt.Fprintf(h, "|%d", len(doc.Pages))
		sum := h.Sum(nil)
		return sum[:16], sum[:16]
	}
	a, b := uuid.New(), uuid.New()
	ab, bb := [16]byte(a), [16]byte(b)
	return ab[:], bb[:]
}

// outlineInternalName slugifies a bookmark title into an ASCII-safe
// internal identifier (spec's supplemented outline feature; wired via
// rupor-github-fb2cng's slug library per SPEC_FULL.md's domain stack).
func outlineInternalName(title string, index int) string {
	s := slug.Make(title)
	if s == "" {
		s = fmt.Sprintf("outline-%d", index)
	}
	return s
}
