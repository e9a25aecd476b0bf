package tree

import "github.com/sap-lang/sap/units"

// SeparatorKind classifies a potential line-break point.
type SeparatorKind int

const (
	Space SeparatorKind = iota
	SentenceEnd
	BreakPoint
	HyphenationPoint
)

// InlineObject is the discriminated union of inline tree nodes: Text,
// Separator, InlineSpan, ScriptCall. Implementations are pointer types so
// identity is preserved (e.g. for later reference from a back-pointer
// map).
type InlineObject interface {
	Node
	inlineObject()
}

// Text is a run of literal characters.
type Text struct {
	Attrs
	Contents string
}

func NewText(contents string) *Text { return &Text{Attrs: newAttrs(), Contents: contents} }

func (*Text) inlineObject() {}

// Separator is a potential line-break point with two rendered faces: one
// for a mid-line occurrence (may be empty, e.g. a space) and one for an
// end-of-line occurrence (may be non-empty, e.g. a hyphen).
//
// Space/SentenceEnd separators contribute to elastic glue;
// HyphenationPoint separators contribute nothing mid-line and produce a
// hyphen only if selected as the line's break; BreakPoint separators
// (around hard break characters like '-', '/') render as themselves on
// both faces and carry no cost.
type Separator struct {
	Attrs
	Kind             SeparatorKind
	HyphenationCost  int
	MidLineForm      string
	EndOfLineForm    string
}

func NewSeparator(kind SeparatorKind) *Separator {
	s := &Separator{Attrs: newAttrs(), Kind: kind}
	switch kind {
	case Space:
		s.MidLineForm = " "
	case SentenceEnd:
		s.MidLineForm = " "
	case HyphenationPoint:
		s.EndOfLineForm = "-"
	}
	return s
}

func (*Separator) inlineObject() {}

// InlineSpan groups children while preserving identity for styling and
// later reference. Glued spans must not be broken across lines.
type InlineSpan struct {
	Attrs
	Children        []InlineObject
	Glued           bool
	OverriddenWidth *units.Length
}

func NewInlineSpan(children ...InlineObject) *InlineSpan {
	return &InlineSpan{Attrs: newAttrs(), Children: children}
}

func (*InlineSpan) inlineObject() {}

// ScriptExpr is the opaque interpreter-expression type a ScriptCall
// wraps; the interpreter collaborator is the only thing that knows how
// to evaluate it (spec §4.9).
type ScriptExpr interface {
	ScriptExprKind() string
}

// ScriptCall is an unevaluated interpreter expression embedded inline;
// it's replaced by whatever Value the interpreter's evaluate() produces
// during a layout pass.
type ScriptCall struct {
	Attrs
	Call ScriptExpr
}

func NewScriptCall(call ScriptExpr) *ScriptCall {
	return &ScriptCall{Attrs: newAttrs(), Call: call}
}

func (*ScriptCall) inlineObject() {}

// FlattenInline walks a (possibly nested) sequence of inline objects,
// flattening InlineSpan boundaries in place while recording each span's
// [start, end) run of leaf positions in the flattened output. This is the
// representation the line breaker's metric computation (spec §4.4.1)
// consumes.
type SpanBoundary struct {
	Span       *InlineSpan
	Start, End int // half-open range into the flattened leaf slice
}

func FlattenInline(objs []InlineObject) (leaves []InlineObject, spans []SpanBoundary) {
	var walk func([]InlineObject)
	walk = func(objs []InlineObject) {
		for _, o := range objs {
			if span, ok := o.(*InlineSpan); ok {
				start := len(leaves)
				walk(span.Children)
				spans = append(spans, SpanBoundary{Span: span, Start: start, End: len(leaves)})
				continue
			}
			leaves = append(leaves, o)
		}
	}
	walk(objs)
	return leaves, spans
}
