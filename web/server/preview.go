package server

import (
	"image"

	"golang.org/x/image/draw"
)

// previewWidth caps the size of the thumbnail sent alongside the final frame
const previewWidth = 160

// previewImage returns a CatmullRom-downscaled copy of src no wider than
// maxWidth, preserving aspect ratio. Images at or below the limit are
// returned unchanged.
func previewImage(src *image.RGBA, maxWidth int) *image.RGBA {
	bounds := src.Bounds()
	if bounds.Dx() <= maxWidth {
		return src
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
