// Package builder loads raster images from the host filesystem into the
// pdfdoc XObject model the layout engine embeds for Image block objects
// (spec's supplemented "image blocks" feature).
package builder

import (
	"image"
	"image/draw"
	_ "image/jpeg" // register decoders
	_ "image/png"
	"os"

	"github.com/sap-lang/sap/pdfdoc"
)

// ImageFromFile loads an image from path and converts it to a pdfdoc
// XObject, ready for placement by the writer's resource builder.
func ImageFromFile(path string) (*pdfdoc.XObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage converts a standard Go image.Image into a pdfdoc XObject,
// splitting out an SMask XObject when the source has partial alpha.
func FromImage(src image.Image) *pdfdoc.XObject {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	pixels := make([]byte, 0, w*h*3)
	alpha := make([]byte, 0, w*h)
	hasAlpha := false

	for i := 0; i < w*h; i++ {
		offset := i * 4
		pixels = append(pixels, nrgba.Pix[offset], nrgba.Pix[offset+1], nrgba.Pix[offset+2])

		a := nrgba.Pix[offset+3]
		alpha = append(alpha, a)
		if a < 255 {
			hasAlpha = true
		}
	}

	xo := &pdfdoc.XObject{
		Subtype:          "Image",
		Width:            w,
		Height:           h,
		ColorSpace:       "DeviceRGB",
		BitsPerComponent: 8,
		Data:             pixels,
	}

	if hasAlpha {
		xo.SMask = &pdfdoc.XObject{
			Subtype:          "Image",
			Width:            w,
			Height:           h,
			ColorSpace:       "DeviceGray",
			BitsPerComponent: 8,
			Data:             alpha,
		}
	}

	return xo
}
