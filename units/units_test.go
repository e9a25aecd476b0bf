package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedMetrics struct {
	fontSize, xHeight, rootFontSize Length
}

func (f fixedMetrics) ResolvedFontSize() Length     { return f.fontSize }
func (f fixedMetrics) ResolvedXHeight() Length      { return f.xHeight }
func (f fixedMetrics) ResolvedRootFontSize() Length { return f.rootFontSize }

func TestResolveIdentityOnMM(t *testing.T) {
	m := fixedMetrics{fontSize: 11 * 25.4 / 72, xHeight: 3, rootFontSize: 10}
	for _, v := range []float64{0, 1, 12.5, -3} {
		got := Mm(v).Resolve(m)
		assert.InDelta(t, v, float64(got), 1e-9)
	}
}

func TestResolvePoints(t *testing.T) {
	m := fixedMetrics{}
	got := Pt(72).Resolve(m)
	assert.InDelta(t, 25.4, float64(got), 1e-9)
}

func TestResolveFontRelative(t *testing.T) {
	m := fixedMetrics{fontSize: 4, xHeight: 2, rootFontSize: 8}
	assert.Equal(t, Length(8), Em(2).Resolve(m))
	assert.Equal(t, Length(6), Ex(3).Resolve(m))
	assert.Equal(t, Length(16), Rem(2).Resolve(m))
}

func TestLayoutSizeTotalHeight(t *testing.T) {
	s := LayoutSize{Width: 10, Ascent: 7, Descent: 3}
	assert.Equal(t, Length(10), s.TotalHeight())
}

func TestLengthPtRoundTrip(t *testing.T) {
	l := FromPt(36)
	assert.InDelta(t, 36.0, l.Pt(), 1e-9)
}
