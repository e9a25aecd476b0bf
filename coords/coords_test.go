package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityTransformIsNoOp(t *testing.T) {
	p := Point{X: 3, Y: -4}
	assert.Equal(t, p, Identity().Transform(p))
}

func TestTranslateTransform(t *testing.T) {
	m := Translate(10, 5)
	got := m.Transform(Point{X: 1, Y: 2})
	assert.Equal(t, Point{X: 11, Y: 7}, got)
}

func TestScaleTransform(t *testing.T) {
	m := Scale(2, 3)
	got := m.Transform(Point{X: 4, Y: 5})
	assert.Equal(t, Point{X: 8, Y: 15}, got)
}

func TestMultiplyComposesTransforms(t *testing.T) {
	// Translate then scale should match applying translate's transform
	// first and scale's second, via Multiply's matrix composition.
	translate := Translate(1, 1)
	scale := Scale(2, 2)
	composed := translate.Multiply(scale)

	p := Point{X: 3, Y: 4}
	want := scale.Transform(translate.Transform(p))
	got := composed.Transform(p)
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestMultiplyWithIdentityIsNoOp(t *testing.T) {
	m := Translate(5, 7).Multiply(Scale(2, 3))
	assert.Equal(t, m, m.Multiply(Identity()))
	assert.Equal(t, m, Identity().Multiply(m))
}

func TestInverseRoundTrips(t *testing.T) {
	m := Translate(3, -2).Multiply(Scale(2, 4))
	inv, err := m.Inverse()
	require.NoError(t, err)

	p := Point{X: 11, Y: -6}
	transformed := m.Transform(p)
	back := inv.Transform(transformed)
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestInverseOfSingularMatrixErrors(t *testing.T) {
	singular := Scale(0, 1)
	_, err := singular.Inverse()
	assert.Error(t, err)
}

func TestRotateByFullCircleIsIdentity(t *testing.T) {
	m := Rotate(2 * math.Pi)
	p := Point{X: 1, Y: 0}
	got := m.Transform(p)
	assert.InDelta(t, p.X, got.X, 1e-9)
	assert.InDelta(t, p.Y, got.Y, 1e-9)
}

func TestRotateQuarterTurn(t *testing.T) {
	m := Rotate(math.Pi / 2)
	got := m.Transform(Point{X: 1, Y: 0})
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, 1, got.Y, 1e-9)
}
