package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeIDsAreUniqueAndStable(t *testing.T) {
	a := NewText("a")
	b := NewText("b")
	assert.NotEqual(t, a.NodeID(), b.NodeID())
	assert.Equal(t, a.NodeID(), a.NodeID())
}

func TestExtendStyleAccumulates(t *testing.T) {
	txt := NewText("x")
	before := txt.Style()
	txt.ExtendStyle(before) // extending with itself must not panic or change identity semantics
	assert.Equal(t, before, txt.Style())
}

func TestNewSeparatorFormsByKind(t *testing.T) {
	space := NewSeparator(Space)
	assert.Equal(t, " ", space.MidLineForm)
	assert.Equal(t, "", space.EndOfLineForm)

	hyph := NewSeparator(HyphenationPoint)
	assert.Equal(t, "", hyph.MidLineForm)
	assert.Equal(t, "-", hyph.EndOfLineForm)

	brk := NewSeparator(BreakPoint)
	assert.Equal(t, "", brk.MidLineForm)
	assert.Equal(t, "", brk.EndOfLineForm)
}

func TestMarkPhantomFlipsPhantom(t *testing.T) {
	img := NewImage("fig1.png")
	assert.False(t, img.Phantom())
	MarkPhantom(&img.phantomFlag)
	assert.True(t, img.Phantom())
}

func TestFlattenInlinePreservesLeafOrderAndCount(t *testing.T) {
	a, b, c := NewText("a"), NewText("b"), NewText("c")
	span := NewInlineSpan(b, c)
	leaves, spans := FlattenInline([]InlineObject{a, span})

	assert.Equal(t, []InlineObject{a, b, c}, leaves)
	if assert.Len(t, spans, 1) {
		assert.Equal(t, 1, spans[0].Start)
		assert.Equal(t, 3, spans[0].End)
		assert.Same(t, span, spans[0].Span)
	}
}

func TestFlattenInlineHandlesNestedSpans(t *testing.T) {
	a, b, c := NewText("a"), NewText("b"), NewText("c")
	inner := NewInlineSpan(b)
	outer := NewInlineSpan(a, inner, c)
	leaves, spans := FlattenInline([]InlineObject{outer})

	assert.Equal(t, []InlineObject{a, b, c}, leaves)
	assert.Len(t, spans, 2)
	// inner span is recorded before outer, since it closes first during
	// the depth-first walk.
	assert.Equal(t, 1, spans[0].Start)
	assert.Equal(t, 2, spans[0].End)
	assert.Equal(t, 0, spans[1].Start)
	assert.Equal(t, 3, spans[1].End)
}

func TestContainerChildrenPreserveOrder(t *testing.T) {
	img1 := NewImage("a.png")
	img2 := NewImage("b.png")
	c := NewContainer(Vertical, img1, img2)
	assert.Equal(t, []BlockObject{img1, img2}, c.Children)
}
