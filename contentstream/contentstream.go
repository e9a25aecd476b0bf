// Package contentstream builds PDF content-stream bytes (spec §4.8):
// text operator groups for laid-out Words/Lines and path operator
// segments for borders, rules and backgrounds. The pipeline here only
// ever writes content streams (it never reads an existing PDF back), so
// this is a builder, not a parser/tokenizer.
package contentstream

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sap-lang/sap/coords"
)

// GraphicsState tracks the subset of the PDF graphics state the writer
// needs while emitting operators: the CTM and an explicit q/Q stack.
type GraphicsState struct {
	CTM       coords.Matrix
	LineWidth float64
	stack     []GraphicsState
}

// Builder accumulates content-stream bytes for a single page (or Form
// XObject) and tracks graphics/text state so callers can emit
// higher-level operations (ShowText, Rect) without re-deriving the
// current transform and font every call.
type Builder struct {
	buf            bytes.Buffer
	gs             GraphicsState
	inText         bool
	curFont        string
	curFontSize    float64
	textMatrixSet  bool
}

// NewBuilder starts an empty content stream with an identity CTM.
func NewBuilder() *Builder {
	return &Builder{gs: GraphicsState{CTM: coords.Identity()}}
}

// Bytes returns the accumulated content-stream bytes.
func (b *Builder) Bytes() []byte { return b.buf.Bytes() }

func (b *Builder) writef(format string, args ...any) {
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteByte('\n')
}

// Save emits "q" and pushes the graphics state.
func (b *Builder) Save() {
	b.gs.stack = append(b.gs.stack, GraphicsState{CTM: b.gs.CTM, LineWidth: b.gs.LineWidth})
	b.writef("q")
}

// Restore emits "Q" and pops the graphics state.
func (b *Builder) Restore() error {
	n := len(b.gs.stack)
	if n == 0 {
		return fmt.Errorf("contentstream: Restore with empty state stack")
	}
	b.gs.CTM = b.gs.stack[n-1].CTM
	b.gs.LineWidth = b.gs.stack[n-1].LineWidth
	b.gs.stack = b.gs.stack[:n-1]
	b.writef("Q")
	return nil
}

// Concat emits "cm" and updates the tracked CTM.
func (b *Builder) Concat(m coords.Matrix) {
	b.gs.CTM = m.Multiply(b.gs.CTM)
	b.writef("%s cm", fmtMatrix(m))
}

// BeginText emits "BT".
func (b *Builder) BeginText() {
	b.inText = true
	b.textMatrixSet = false
	b.writef("BT")
}

// EndText emits "ET".
func (b *Builder) EndText() {
	b.inText = false
	b.writef("ET")
}

// SetFont emits "Tf" for the named font resource at size (PDF points).
func (b *Builder) SetFont(resourceName string, size float64) {
	b.curFont, b.curFontSize = resourceName, size
	b.writef("/%s %s Tf", resourceName, fmtNum(size))
}

// MoveText emits "Td", translating the text line matrix.
func (b *Builder) MoveText(tx, ty float64) {
	b.textMatrixSet = true
	b.writef("%s %s Td", fmtNum(tx), fmtNum(ty))
}

// SetTextMatrix emits "Tm", setting the text matrix directly (used for
// absolutely positioned text, e.g. after a page break).
func (b *Builder) SetTextMatrix(m coords.Matrix) {
	b.textMatrixSet = true
	b.writef("%s Tm", fmtMatrix(m))
}

// SetCharSpacing emits "Tc" (used for justification via per-glyph spread).
func (b *Builder) SetCharSpacing(tc float64) { b.writef("%s Tc", fmtNum(tc)) }

// SetWordSpacing emits "Tw" (used for justification via space-stretch).
func (b *Builder) SetWordSpacing(tw float64) { b.writef("%s Tw", fmtNum(tw)) }

// ShowText emits "Tj" for a simple (single-byte or 2-byte CID) encoded
// string, already produced by the writer's font encoder.
func (b *Builder) ShowText(encoded []byte) {
	b.writef("%s Tj", pdfStringLiteral(encoded))
}

// TJItem is one element of a "TJ" array: either raw encoded glyph bytes
// or an inter-glyph adjustment in thousandths of an em (positive moves
// left/up, matching the PDF convention).
type TJItem struct {
	Bytes      []byte
	Adjustment float64
	IsAdjust   bool
}

// ShowTextAdjusted emits "TJ" for a run mixing encoded text with
// per-position kerning/justification adjustments.
func (b *Builder) ShowTextAdjusted(items []TJItem) {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, it := range items {
		if it.IsAdjust {
			sb.WriteString(fmtNum(it.Adjustment))
			sb.WriteByte(' ')
		} else {
			sb.WriteString(pdfStringLiteral(it.Bytes))
			sb.WriteByte(' ')
		}
	}
	sb.WriteString("] TJ")
	b.writef("%s", sb.String())
}

// SetFillColorGray/RGB set the nonstroking colour.
func (b *Builder) SetFillColorGray(gray float64) { b.writef("%s g", fmtNum(gray)) }
func (b *Builder) SetFillColorRGB(r, g, bl float64) {
	b.writef("%s %s %s rg", fmtNum(r), fmtNum(g), fmtNum(bl))
}
func (b *Builder) SetStrokeColorRGB(r, g, bl float64) {
	b.writef("%s %s %s RG", fmtNum(r), fmtNum(g), fmtNum(bl))
}

// SetLineWidth emits "w".
func (b *Builder) SetLineWidth(w float64) {
	b.gs.LineWidth = w
	b.writef("%s w", fmtNum(w))
}

// MoveTo/LineTo/CurveTo/ClosePath build a path ("m"/"l"/"c"/"h").
func (b *Builder) MoveTo(x, y float64)  { b.writef("%s %s m", fmtNum(x), fmtNum(y)) }
func (b *Builder) LineTo(x, y float64)  { b.writef("%s %s l", fmtNum(x), fmtNum(y)) }
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	b.writef("%s %s %s %s %s %s c", fmtNum(x1), fmtNum(y1), fmtNum(x2), fmtNum(y2), fmtNum(x3), fmtNum(y3))
}
func (b *Builder) ClosePath() { b.writef("h") }

// Rect emits "re", a rectangle path segment.
func (b *Builder) Rect(x, y, w, h float64) {
	b.writef("%s %s %s %s re", fmtNum(x), fmtNum(y), fmtNum(w), fmtNum(h))
}

// Stroke/Fill/FillStroke paint the current path ("S"/"f"/"B").
func (b *Builder) Stroke()     { b.writef("S") }
func (b *Builder) Fill()       { b.writef("f") }
func (b *Builder) FillStroke() { b.writef("B") }
func (b *Builder) NoOp()       { b.writef("n") }

// InvokeXObject emits "Do" to draw an image or form XObject already
// placed in the page's /XObject resource dictionary.
func (b *Builder) InvokeXObject(resourceName string) {
	b.writef("/%s Do", resourceName)
}

// Raw appends already-built content-stream bytes verbatim, for a
// tree.RawBlock's opaque pre-rendered content.
func (b *Builder) Raw(data []byte) {
	b.buf.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		b.buf.WriteByte('\n')
	}
}

func fmtNum(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.4f", v), "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

func fmtMatrix(m coords.Matrix) string {
	return fmt.Sprintf("%s %s %s %s %s %s", fmtNum(m[0]), fmtNum(m[1]), fmtNum(m[2]), fmtNum(m[3]), fmtNum(m[4]), fmtNum(m[5]))
}

// pdfStringLiteral escapes bytes into a PDF literal string "(...)",
// escaping '(', ')' and '\' per the PDF spec.
func pdfStringLiteral(data []byte) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, c := range data {
		switch c {
		case '(', ')', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
