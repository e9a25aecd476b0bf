// Package interp defines the interpreter collaborator interface the
// layout core programs against (spec §4.9). The scripting language's
// parser, type checker, and AST/CST evaluator are explicitly out of
// scope (spec §1) — this package only describes the boundary and ships
// one concrete implementation, GojaInterpreter, that evaluates
// ScriptCall expressions as goja (JavaScript) ASTs. A production "sap"
// frontend would swap in its own bespoke-language evaluator behind the
// same interface without the layout core noticing.
package interp

import (
	"fmt"

	"github.com/sap-lang/sap/arena"
	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

// Phase identifies one of the five layout-pipeline hook phases (spec §2,
// §4.9). Callbacks registered for a phase run in registration order; all
// callbacks of phase p complete before phase p+1 begins (spec §5).
type Phase int

const (
	Preamble Phase = iota
	Layout
	Position
	PostLayout
	Finalise
)

func (p Phase) String() string {
	switch p {
	case Preamble:
		return "preamble"
	case Layout:
		return "layout"
	case Position:
		return "position"
	case PostLayout:
		return "post_layout"
	case Finalise:
		return "finalise"
	default:
		return "unknown"
	}
}

// ValueKind tags the Value union (spec §4.9).
type ValueKind int

const (
	VVoid ValueKind = iota
	VBool
	VInt
	VFloat
	VChar
	VString
	VLength
	VArray
	VStruct
	VEnum
	VUnionCase
	VPointer
	VOptional
	VFunction
	VTreeInline
	VTreeBlock
	VLayoutObject
	VInlineRef
	VBlockRef
	VLayoutRef
)

// Value is the tagged union the interpreter's evaluate() returns. Only
// one of the typed fields is meaningful, selected by Kind; this mirrors
// a sum type using Go's usual "tag plus payload fields" idiom rather than
// an interface{}, so callers can switch on Kind without type assertions
// on every payload.
type Value struct {
	Kind ValueKind

	Bool    bool
	Int     int64
	Float   float64
	Char    rune
	Str     string
	Length  units.Length
	Array   []Value
	Struct  map[string]Value
	Enum    string
	UnionTag string
	UnionVal *Value
	Pointer interface{}

	OptionalSet bool
	OptionalVal *Value

	Function func(args []Value) (Value, error)

	TreeInline tree.InlineObject
	TreeBlock  tree.BlockObject

	LayoutObjectRef arena.ID
	InlineRef       tree.NodeID
	BlockRef        tree.NodeID
	LayoutRef       arena.ID
}

func Void() Value                 { return Value{Kind: VVoid} }
func FromBool(b bool) Value       { return Value{Kind: VBool, Bool: b} }
func FromInt(i int64) Value       { return Value{Kind: VInt, Int: i} }
func FromFloat(f float64) Value   { return Value{Kind: VFloat, Float: f} }
func FromString(s string) Value   { return Value{Kind: VString, Str: s} }

// GlobalState is the observable global state exposed via State() (spec
// §4.9).
type GlobalState struct {
	LayoutPass int
	PageCount  int
	PageWidth  float64 // mm
	PageHeight float64 // mm
}

// AbsoluteRequest is the payload of AddAbsolutelyPositionedBlockObject:
// a block and the page position it should be pinned to.
type AbsoluteRequest struct {
	Block     tree.BlockObject
	PageIndex int
	X, Y      float64 // mm
}

// Interpreter is the opaque collaborator the layout core invokes
// through exactly the operations below (spec §4.9). The layout core
// never reaches past this interface into parser/typechecker internals.
type Interpreter interface {
	// RunHooks runs every callback registered for phase, in registration
	// order, and returns the first error encountered (if any).
	RunHooks(phase Phase) error

	// Evaluate runs an unevaluated ScriptCall expression and returns its
	// resulting Value.
	Evaluate(call tree.ScriptExpr) (Value, error)

	// CurrentStyle returns the effective style at the top of the style
	// stack.
	CurrentStyle() style.Style
	PushStyle(s style.Style)
	PopStyle() style.Style

	// PushBlockContext/PopBlockContext/GetBlockContext manage the
	// parent-block stack consulted by builtins that need to know their
	// enclosing block (e.g. positioning relative to "the current
	// paragraph").
	PushBlockContext(b tree.BlockObject)
	PopBlockContext()
	GetBlockContext() tree.BlockObject

	// RequestLayout marks the current pass dirty so the driver performs
	// another pass after this one completes (spec §2, §5).
	RequestLayout()
	// LayoutRequested reports (and does not clear) whether RequestLayout
	// was called during the current pass.
	LayoutRequested() bool
	// ClearLayoutRequest resets the dirty flag; called by the driver at
	// the start of each pass.
	ClearLayoutRequest()

	State() GlobalState
	SetState(GlobalState)

	// AddAbsolutelyPositionedBlockObject imperatively inserts a block
	// object at an absolute page position; used by user scripts during
	// the Layout phase (spec §4.9).
	AddAbsolutelyPositionedBlockObject(block tree.BlockObject, pageIndex int, x, y float64)
	// DrainAbsoluteRequests returns and clears all pending absolute
	// insertions queued since the last drain.
	DrainAbsoluteRequests() []AbsoluteRequest

	// RegisterHook adds a callback for phase, to be run by RunHooks.
	RegisterHook(phase Phase, fn func(Interpreter) error)
}

// HookError wraps an error raised by a hook callback with the phase it
// ran in, matching spec §7's "source/interpretation errors propagated
// with a source location" policy — here the "location" is the phase,
// since true source locations belong to the out-of-scope frontend.
type HookError struct {
	Phase Phase
	Err   error
}

func (e *HookError) Error() string { return fmt.Sprintf("hook error in phase %s: %v", e.Phase, e.Err) }
func (e *HookError) Unwrap() error { return e.Err }
