package builder

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImageOpaqueHasNoSMask(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, red)
		}
	}

	xo := FromImage(src)
	assert.Equal(t, 2, xo.Width)
	assert.Equal(t, 2, xo.Height)
	assert.Equal(t, "DeviceRGB", xo.ColorSpace)
	assert.Equal(t, 8, xo.BitsPerComponent)
	require.Len(t, xo.Data, 2*2*3)
	assert.Equal(t, []byte{255, 0, 0}, xo.Data[:3])
	assert.Nil(t, xo.SMask)
}

func TestFromImageWithAlphaProducesSMask(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(0, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	xo := FromImage(src)
	require.NotNil(t, xo.SMask)
	assert.Equal(t, "DeviceGray", xo.SMask.ColorSpace)
	assert.Equal(t, 1, xo.SMask.Width)
	assert.Equal(t, 2, xo.SMask.Height)
	require.Len(t, xo.SMask.Data, 2)
	assert.Equal(t, byte(255), xo.SMask.Data[0])
	assert.Equal(t, byte(128), xo.SMask.Data[1])
}

func TestImageFromFileReturnsErrorForMissingPath(t *testing.T) {
	_, err := ImageFromFile("does-not-exist.png")
	assert.Error(t, err)
}
