// Package tree models the immutable-after-construction document tree:
// inline objects (Text, Separator, Span, ScriptCall) and block objects
// (Paragraph, WrappedLine, Container, Image, Spacer, RawBlock,
// ScriptBlock, DeferredBlock). Nodes are shared via ordinary Go pointers
// (the runtime GC plays the role of the teacher's reference counting) and
// carry a small number of mutable side-band fields, matching spec §3.3.
//
// Per the redesign note in spec §9, the generated-layout-object
// back-pointer is NOT stored on the node itself: that would reintroduce
// mutable aliasing between the tree and layout object graphs. Instead
// every node has a stable NodeID, and the interpreter owns an explicit
// map from NodeID to the layout object(s) it produced.
package tree

import (
	"sync/atomic"

	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/units"
)

// NodeID uniquely identifies a tree node for the lifetime of a run.
type NodeID uint64

var nextNodeID uint64

func newNodeID() NodeID {
	return NodeID(atomic.AddUint64(&nextNodeID, 1))
}

// LinkDestination names an internal or external link target attached to
// an inline or block node.
type LinkDestination struct {
	IsExternal bool
	URL        string  // set when IsExternal
	DestNodeID NodeID  // set when !IsExternal: the node being linked to
}

// Attrs are the side-band fields every inline and block object carries:
// a style override (set during evaluation, extends the active cascade),
// a raise height (baseline offset), and an optional link destination.
type Attrs struct {
	id          NodeID
	StyleOver   style.Style
	RaiseHeight units.Length
	Link        *LinkDestination
}

func newAttrs() Attrs { return Attrs{id: newNodeID()} }

// ID returns the node's stable identity.
func (a Attrs) ID() NodeID { return a.id }

// Node is implemented by both InlineObject and BlockObject so shared
// bookkeeping (identity, style override, raise height, link) can be
// accessed uniformly.
type Node interface {
	NodeID() NodeID
	Style() style.Style
	Raise() units.Length
	LinkDest() *LinkDestination
}

func (a *Attrs) NodeID() NodeID               { return a.id }
func (a *Attrs) Style() style.Style            { return a.StyleOver }
func (a *Attrs) Raise() units.Length           { return a.RaiseHeight }
func (a *Attrs) LinkDest() *LinkDestination    { return a.Link }

// ExtendStyle extends the node's current style override with extra,
// per the "mutating an existing tree object's style extends the current
// override" hook-callback rule in spec §4.9.
func (a *Attrs) ExtendStyle(extra style.Style) { a.StyleOver = a.StyleOver.ExtendWith(extra) }
