package microtype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLatinProfileHangsPunctuation(t *testing.T) {
	p := DefaultLatinProfile()

	v, ok := p.RightProtrusion('.')
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = p.LeftProtrusion('"')
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, ok = p.RightProtrusion('x')
	assert.False(t, ok)
}

func TestTableLookupMissingFamilyIsZeroProfile(t *testing.T) {
	table := Table{"Georgia": DefaultLatinProfile()}
	p := table.Lookup("Helvetica")
	_, ok := p.RightProtrusion('.')
	assert.False(t, ok)
}

func TestLoadParsesFamilyAndBothSides(t *testing.T) {
	src := `# comment line
Georgia left=":0.5 right=.:1.0,;:0.3
`
	table, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	p := table.Lookup("Georgia")
	v, ok := p.LeftProtrusion('"')
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	v, ok = p.RightProtrusion('.')
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = p.RightProtrusion(';')
	require.True(t, ok)
	assert.Equal(t, 0.3, v)
}

func TestLoadSkipsBlankAndCommentLines(t *testing.T) {
	src := "\n# nothing here\n\nGeorgia left=-:1.0\n"
	table, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, table, 1)
}

func TestLoadRejectsMalformedSideClause(t *testing.T) {
	_, err := Load(strings.NewReader("Georgia bogus\n"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownSideName(t *testing.T) {
	_, err := Load(strings.NewReader("Georgia up=-:1.0\n"))
	assert.Error(t, err)
}

func TestLoadRejectsMultiRuneKey(t *testing.T) {
	_, err := Load(strings.NewReader("Georgia left=ab:1.0\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadRatio(t *testing.T) {
	_, err := Load(strings.NewReader("Georgia left=-:notanumber\n"))
	assert.Error(t, err)
}
