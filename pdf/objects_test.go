package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectRefString(t *testing.T) {
	assert.Equal(t, "3 0 R", ObjectRef{Num: 3, Gen: 0}.String())
}

func TestDictSetGetRoundTrip(t *testing.T) {
	d := Dict()
	d.Set(NameLiteral("Type"), NameLiteral("Catalog"))
	got, ok := d.Get(NameLiteral("Type"))
	if assert.True(t, ok) {
		assert.Equal(t, "Catalog", got.(NameObj).Value())
	}
	_, ok = d.Get(NameLiteral("Missing"))
	assert.False(t, ok)
	assert.Equal(t, 1, d.Len())
}

func TestDictOverwritesExistingKey(t *testing.T) {
	d := Dict()
	d.Set(NameLiteral("N"), NumberInt(1))
	d.Set(NameLiteral("N"), NumberInt(2))
	got, _ := d.Get(NameLiteral("N"))
	assert.Equal(t, int64(2), got.(NumberObj).Int())
	assert.Equal(t, 1, d.Len())
}

func TestArrayAppendAndGet(t *testing.T) {
	a := NewArray(NumberInt(1), NumberInt(2))
	a.Append(NumberInt(3))
	assert.Equal(t, 3, a.Len())
	got, ok := a.Get(2)
	if assert.True(t, ok) {
		assert.Equal(t, int64(3), got.(NumberObj).Int())
	}
	_, ok = a.Get(99)
	assert.False(t, ok)
}

func TestNumberFloatVsInt(t *testing.T) {
	i := NumberInt(5)
	assert.True(t, i.IsInteger())
	assert.Equal(t, float64(5), i.Float())

	f := NumberFloat(2.5)
	assert.False(t, f.IsInteger())
	assert.Equal(t, 2.5, f.Float())
}

func TestStreamLengthMatchesData(t *testing.T) {
	d := Dict()
	s := NewStream(d, []byte("hello"))
	assert.Equal(t, int64(5), s.Length())
	assert.Equal(t, "hello", string(s.RawData()))
	assert.Same(t, d, s.Dictionary().(*DictObj))
}

func TestRefConstructorAndIsIndirect(t *testing.T) {
	r := Ref(4, 0)
	assert.True(t, r.IsIndirect())
	assert.Equal(t, ObjectRef{Num: 4, Gen: 0}, r.Ref())

	name := NameLiteral("X")
	assert.False(t, name.IsIndirect())
}
