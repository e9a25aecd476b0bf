package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sap-lang/sap/observability"
	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

func computeTestMetrics(t *testing.T) LineMetrics {
	t.Helper()
	objs := []tree.InlineObject{
		tree.NewText("Hello"),
		tree.NewSeparator(tree.Space),
		tree.NewText("world"),
		tree.NewSeparator(tree.Space),
		tree.NewText("this"),
		tree.NewSeparator(tree.Space),
		tree.NewText("is"),
		tree.NewSeparator(tree.Space),
		tree.NewText("a"),
		tree.NewSeparator(tree.Space),
		tree.NewText("paragraph"),
	}
	eff := fullTestStyle(12)
	lm, err := ComputeLineMetrics(newFakeResolver(), observability.NopLogger{}, objs, func(tree.InlineObject) style.Style {
		return eff
	})
	require.NoError(t, err)
	return lm
}

func TestBreakLinesPreservesAllPieces(t *testing.T) {
	lm := computeTestMetrics(t)
	breaks := BreakLines(lm, units.FromPt(100))
	require.NotEmpty(t, breaks)

	next := 0
	for i, lb := range breaks {
		assert.Equal(t, next, lb.StartPiece, "line %d must start just after the separator the previous line broke at", i)
		next = lb.EndPiece + 1
	}
	assert.Equal(t, len(lm.Pieces), breaks[len(breaks)-1].EndPiece, "the last line must cover every measured piece")
}

func TestBreakLinesMarksFirstAndLast(t *testing.T) {
	lm := computeTestMetrics(t)
	breaks := BreakLines(lm, units.FromPt(60))
	require.True(t, len(breaks) > 1, "narrow width should force multiple lines for this test fixture")

	assert.True(t, breaks[0].IsFirst)
	assert.True(t, breaks[len(breaks)-1].IsLast)
	for _, lb := range breaks[1:] {
		assert.False(t, lb.IsFirst)
	}
	for _, lb := range breaks[:len(breaks)-1] {
		assert.False(t, lb.IsLast)
	}
}

func TestBreakLinesSingleLineWhenWidthIsAmple(t *testing.T) {
	lm := computeTestMetrics(t)
	breaks := BreakLines(lm, units.FromPt(2000))
	require.Len(t, breaks, 1)
	assert.Equal(t, 0, breaks[0].StartPiece)
	assert.Equal(t, len(lm.Pieces), breaks[0].EndPiece)
	assert.True(t, breaks[0].IsFirst)
	assert.True(t, breaks[0].IsLast)
}

func TestRenderLineProducesOneWordPerTextPiece(t *testing.T) {
	lm := computeTestMetrics(t)
	eff := fullTestStyle(12)
	lb := LineBreak{StartPiece: 0, EndPiece: len(lm.Pieces), IsFirst: true, IsLast: true}
	line := RenderLine(lm, lb, eff, units.FromPt(2000))

	var words int
	for _, c := range line.Children {
		if _, ok := c.(*Word); ok {
			words++
		}
	}
	assert.Equal(t, 6, words) // Hello world this is a paragraph
}

func TestRenderLineOffsetsAreMonotonicAndAccumulate(t *testing.T) {
	lm := computeTestMetrics(t)
	eff := fullTestStyle(12)
	lb := LineBreak{StartPiece: 0, EndPiece: len(lm.Pieces), IsFirst: true, IsLast: true}
	line := RenderLine(lm, lb, eff, units.FromPt(2000))

	var lastDX units.Length = -1
	for _, c := range line.Children {
		w, ok := c.(*Word)
		if !ok {
			continue
		}
		assert.True(t, w.RelativeOffset.DX >= lastDX, "successive words must not move left of a prior word's offset")
		lastDX = w.RelativeOffset.DX
	}
	assert.True(t, lastDX > 0, "the last word must be offset past the line start")
}
