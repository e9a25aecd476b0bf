package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sap-lang/sap/units"
)

func testPageLayout() *PageLayout {
	return NewPageLayout(PaperSize{Width: 210, Height: 297}, UniformMargins(20))
}

func TestNewCursorStartsAtPageZeroTopLeft(t *testing.T) {
	pl := testPageLayout()
	c := pl.NewCursor()
	assert.Equal(t, 0, c.PageIndex)
	assert.Equal(t, units.Length(0), c.Y)
	assert.Len(t, pl.Pages, 1)
}

func TestMoveDownWithinPageDoesNotAdvancePage(t *testing.T) {
	pl := testPageLayout()
	c := pl.NewCursor()
	c = c.MoveDown(50)
	assert.Equal(t, 0, c.PageIndex)
	assert.Equal(t, units.Length(50), c.Y)
}

// TestMoveDownOverflowBumpsPageAndResetsY is the cursor page-index-bound
// invariant: advancing past the content area's bottom margin creates a
// new page and resets Y to 0, rather than letting Y grow unbounded.
func TestMoveDownOverflowBumpsPageAndResetsY(t *testing.T) {
	pl := testPageLayout()
	c := pl.NewCursor()
	contentHeight := pl.contentHeight()

	c = c.MoveDown(contentHeight + 1)
	assert.Equal(t, 1, c.PageIndex)
	assert.Equal(t, units.Length(0), c.Y)
	assert.Len(t, pl.Pages, 2)
}

func TestMoveDownCanAdvanceMultiplePagesAcrossCalls(t *testing.T) {
	pl := testPageLayout()
	c := pl.NewCursor()
	contentHeight := pl.contentHeight()

	c = c.MoveDown(contentHeight + 1)
	c = c.MoveDown(contentHeight + 1)
	assert.Equal(t, 2, c.PageIndex)
	assert.Equal(t, units.Length(0), c.Y)
}

func TestWidthAtCursorShrinksAsXAdvances(t *testing.T) {
	pl := testPageLayout()
	c := pl.NewCursor()
	full := c.WidthAtCursor()
	c = c.MoveRight(10)
	assert.Equal(t, full-10, c.WidthAtCursor())
}

func TestLimitWidthCapsWidthAtCursor(t *testing.T) {
	pl := testPageLayout()
	c := pl.NewCursor().LimitWidth(5)
	assert.Equal(t, units.Length(5), c.WidthAtCursor())
}

func TestCarriageReturnResetsX(t *testing.T) {
	pl := testPageLayout()
	c := pl.NewCursor().MoveRight(30).CarriageReturn()
	assert.Equal(t, units.Length(0), c.X)
}

func TestNewLineReportsPageBreakOnOverflow(t *testing.T) {
	pl := testPageLayout()
	c := pl.NewCursor()
	contentHeight := pl.contentHeight()

	_, broke := c.NewLine(10)
	assert.False(t, broke)

	c = c.MoveDown(contentHeight - 1)
	_, broke = c.NewLine(10)
	assert.True(t, broke)
}

func TestNewCursorAtPositionEnsuresThatPageExists(t *testing.T) {
	pl := testPageLayout()
	abs := AbsolutePagePos{PageIndex: 3, Position: units.Position{X: 5, Y: 5}}
	c := pl.NewCursorAtPosition(abs)
	assert.Equal(t, 3, c.PageIndex)
	assert.Len(t, pl.Pages, 4)
	assert.Equal(t, abs, c.Absolute())
}
