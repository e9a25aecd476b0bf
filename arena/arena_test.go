package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaNewAndAt(t *testing.T) {
	var a Arena[int]
	p1, id1 := a.New(10)
	p2, id2 := a.New(20)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 10, *p1)
	assert.Equal(t, 20, *p2)
	assert.Equal(t, p1, a.At(id1))
	assert.Equal(t, 2, a.Len())
}

func TestArenaAtOutOfRange(t *testing.T) {
	var a Arena[string]
	assert.Nil(t, a.At(0))
	a.New("x")
	assert.Nil(t, a.At(5))
	assert.Nil(t, a.At(-1))
}
