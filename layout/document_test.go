package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sap-lang/sap/interp"
	"github.com/sap-lang/sap/observability"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	base := fullTestStyle(12)
	ip := interp.NewGojaInterpreter(base, nil)
	engine := &Engine{Fonts: newFakeResolver(), Interp: ip, Log: observability.NopLogger{}}
	pages := NewPageLayout(PaperSize{Width: 210, Height: 297}, UniformMargins(20))
	return NewDocument(engine, pages, observability.NopLogger{})
}

// TestRunSingleParagraphHelloWorld is spec.md §8 scenario 2: a single
// paragraph containing one line of text lays out as one Container
// holding one Line at the top of the content area.
func TestRunSingleParagraphHelloWorld(t *testing.T) {
	doc := newTestDocument(t)
	p := tree.NewParagraph(
		tree.NewText("Hello,"),
		tree.NewSeparator(tree.Space),
		tree.NewText("world."),
	)

	objs, err := doc.Run([]tree.BlockObject{p})
	require.NoError(t, err)
	require.Len(t, objs, 1)

	container, ok := objs[0].(*Container)
	require.True(t, ok)
	require.Len(t, container.Children, 1)

	line, ok := container.Children[0].(*Line)
	require.True(t, ok)

	pos := container.Position()
	assert.Equal(t, 0, pos.PageIndex)
	assert.Equal(t, units.Length(0), pos.Position.Y)

	var words []string
	for _, c := range line.Children {
		if w, ok := c.(*Word); ok {
			words = append(words, w.Text)
		}
	}
	assert.Equal(t, []string{"Hello,", "world."}, words)
}

// TestRunTwoParagraphsAreSeparatedByParagraphSpacing is spec.md §8
// scenario 3: two sibling root paragraphs must be separated by exactly
// one paragraph_spacing gap, the bug a minimal test here would have
// caught directly (root-level siblings were not getting the gap before
// effectiveStyle was applied uniformly in layoutPass/positionPass).
func TestRunTwoParagraphsAreSeparatedByParagraphSpacing(t *testing.T) {
	doc := newTestDocument(t)
	p1 := tree.NewParagraph(tree.NewText("First"))
	p2 := tree.NewParagraph(tree.NewText("Second"))

	objs, err := doc.Run([]tree.BlockObject{p1, p2})
	require.NoError(t, err)
	require.Len(t, objs, 2)

	first, second := objs[0], objs[1]
	firstBottom := first.Position().Position.Y.Add(first.Size().TotalHeight())
	spacing := second.Position().Position.Y.Sub(firstBottom)

	expected := fullTestStyle(12).ParagraphSpacing()
	assert.InDelta(t, float64(expected), float64(spacing), 1e-9)
}

// TestRunSingleRootStartsAtTopWithoutSpacing checks that a lone root
// paragraph is placed at the top of the content area, with no
// paragraph_spacing gap before it.
func TestRunSingleRootStartsAtTopWithoutSpacing(t *testing.T) {
	doc := newTestDocument(t)
	p1 := tree.NewParagraph(tree.NewText("Only"))

	objs, err := doc.Run([]tree.BlockObject{p1})
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, units.Length(0), objs[0].Position().Position.Y)
}
