package contentstream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sap-lang/sap/coords"
)

func TestBasicTextRunEmitsExpectedOperators(t *testing.T) {
	b := NewBuilder()
	b.BeginText()
	b.SetFont("F1", 12)
	b.MoveText(10, 700)
	b.ShowText([]byte("Hi"))
	b.EndText()

	got := string(b.Bytes())
	assert.Contains(t, got, "BT\n")
	assert.Contains(t, got, "/F1 12 Tf\n")
	assert.Contains(t, got, "10 700 Td\n")
	assert.Contains(t, got, "(Hi) Tj\n")
	assert.Contains(t, got, "ET\n")
}

func TestSaveRestoreBalances(t *testing.T) {
	b := NewBuilder()
	b.Save()
	b.Concat(coords.Translate(5, 5))
	require.NoError(t, b.Restore())

	got := string(b.Bytes())
	assert.True(t, strings.HasPrefix(got, "q\n"))
	assert.True(t, strings.HasSuffix(got, "Q\n"))
}

func TestRestoreWithoutSaveErrors(t *testing.T) {
	b := NewBuilder()
	err := b.Restore()
	assert.Error(t, err)
}

func TestRestoreRestoresTrackedCTM(t *testing.T) {
	b := NewBuilder()
	before := b.gs.CTM
	b.Save()
	b.Concat(coords.Scale(2, 2))
	assert.NotEqual(t, before, b.gs.CTM)
	require.NoError(t, b.Restore())
	assert.Equal(t, before, b.gs.CTM)
}

func TestPdfStringLiteralEscapesSpecialBytes(t *testing.T) {
	got := pdfStringLiteral([]byte(`a(b)c\d`))
	assert.Equal(t, `(a\(b\)c\\d)`, got)
}

func TestFmtNumTrimsTrailingZerosButKeepsInteger(t *testing.T) {
	assert.Equal(t, "1", fmtNum(1.0))
	assert.Equal(t, "1.5", fmtNum(1.5))
	assert.Equal(t, "0", fmtNum(0.0))
	assert.Equal(t, "-2.25", fmtNum(-2.25))
}

func TestShowTextAdjustedMixesTextAndAdjustments(t *testing.T) {
	b := NewBuilder()
	b.ShowTextAdjusted([]TJItem{
		{Bytes: []byte("V")},
		{IsAdjust: true, Adjustment: -120},
		{Bytes: []byte("A")},
	})
	got := string(b.Bytes())
	assert.Contains(t, got, "(V)")
	assert.Contains(t, got, "-120")
	assert.Contains(t, got, "(A)")
	assert.True(t, strings.HasSuffix(strings.TrimRight(got, "\n"), "] TJ"))
}

func TestRawAppendsVerbatimAndEnsuresTrailingNewline(t *testing.T) {
	b := NewBuilder()
	b.Raw([]byte("10 10 20 20 re f"))
	got := b.Bytes()
	assert.Equal(t, byte('\n'), got[len(got)-1])
	assert.Contains(t, string(got), "10 10 20 20 re f")
}

func TestRectEmitsReOperator(t *testing.T) {
	b := NewBuilder()
	b.Rect(1, 2, 3, 4)
	assert.Equal(t, "1 2 3 4 re\n", string(b.Bytes()))
}
