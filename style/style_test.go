package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sap-lang/sap/units"
)

func TestExtendWithAssociativity(t *testing.T) {
	s := Empty().WithFontSize(10).WithHorzAlignment(Left)
	tt := Empty().WithFontSize(12)

	lhs := Empty().ExtendWith(s).ExtendWith(tt)
	rhs := Empty().ExtendWith(s.ExtendWith(tt))

	assert.Equal(t, lhs.FontSize(), rhs.FontSize())
	assert.Equal(t, lhs.HorzAlignment(), rhs.HorzAlignment())
}

func TestExtendWithPrefersMain(t *testing.T) {
	base := Empty().WithFontSize(10).WithFontFamily("Base")
	main := Empty().WithFontSize(14)

	got := base.ExtendWith(main)
	assert.Equal(t, units.Length(14), got.FontSize())
	assert.Equal(t, "Base", got.FontFamily())
}

func TestUseDefaultsFromIsConverseOfExtendWith(t *testing.T) {
	a := Empty().WithFontSize(10)
	b := Empty().WithFontSize(20).WithFontFamily("Fallback")

	assert.Equal(t, a.ExtendWith(b), b.UseDefaultsFrom(a))
}

func TestUnsetAccessorPanics(t *testing.T) {
	assert.Panics(t, func() { Empty().FontSize() })
}

func TestResolveDynLengthThroughStyle(t *testing.T) {
	s := Empty().WithFontSize(units.Length(4)).WithRootFontSize(units.Length(4))
	got := units.Em(2).Resolve(s)
	assert.Equal(t, units.Length(8), got)
}
