package hyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePatternsFrontMidBack(t *testing.T) {
	pats, err := ParsePatterns(".hy3\nhy3ph\nph3en2\n1tion.\n")
	require.NoError(t, err)
	assert.Contains(t, pats.front, "hy")
	assert.Contains(t, pats.mid, "hyph")
	assert.Contains(t, pats.mid, "phen")
	assert.Contains(t, pats.back, "tion")
}

func TestComputeHyphenationPointsShapeAndRange(t *testing.T) {
	h := New(Pats{front: map[string]pattern{}, mid: map[string]pattern{}, back: map[string]pattern{}})
	pats, err := ParsePatterns("hy3ph\n")
	require.NoError(t, err)
	h = New(pats)

	points := h.ComputeHyphenationPoints("hyphenation")
	require.Len(t, points, len("hyphenation")+1)
	for _, p := range points {
		assert.LessOrEqual(t, p, uint8(9))
	}
	// "hy3ph" places priority 3 after index 2 (between 'y' and 'p').
	assert.Equal(t, uint8(3), points[2])
	cost, isCandidate := BreakCost(points[2])
	assert.True(t, isCandidate)
	assert.Equal(t, 3, cost)
}

func TestComputeHyphenationPointsIsDeterministicAndMemoised(t *testing.T) {
	pats, err := ParsePatterns("hy3ph\n")
	require.NoError(t, err)
	h := New(pats)

	a := h.ComputeHyphenationPoints("Hyphenation")
	b := h.ComputeHyphenationPoints("hyphenation")
	assert.Equal(t, a, b, "hyphenation must lowercase before matching")

	c := h.ComputeHyphenationPoints("hyphenation")
	assert.Equal(t, a, c)
}

func TestExceptionOverridesPatterns(t *testing.T) {
	pats, err := ParsePatterns("hy3ph\n")
	require.NoError(t, err)
	h := New(pats)
	require.NoError(t, h.AddExceptions("as-so-ciate\n"))

	points := h.ComputeHyphenationPoints("associate")
	require.Len(t, points, len("associate")+1)
	// "as-so-ciate" marks breaks after "as" (idx2) and "asso" (idx4).
	assert.Equal(t, uint8(5), points[2])
	assert.Equal(t, uint8(5), points[4])
}

func TestBreakCostEvenIsNotACandidate(t *testing.T) {
	_, ok := BreakCost(4)
	assert.False(t, ok)
}

func TestLoadFileParsesEmbeddedSample(t *testing.T) {
	h, err := LoadFile("data/en-us.tex")
	require.NoError(t, err)
	points := h.ComputeHyphenationPoints("hyphenation")
	assert.Len(t, points, len("hyphenation")+1)

	excPoints := h.ComputeHyphenationPoints("associate")
	assert.Equal(t, uint8(5), excPoints[2])
}
