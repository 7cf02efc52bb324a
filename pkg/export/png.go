package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/rvhart/go-ray-tracer/pkg/renderer"
)

// ToImage converts the framebuffer to an RGBA image with clamping and
// gamma 2 correction applied per channel
func ToImage(fb *renderer.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			r, g, b := encodeChannels(fb.At(i, j))
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(r),
				G: uint8(g),
				B: uint8(b),
				A: 255,
			})
		}
	}

	return img
}

// WritePNG writes the framebuffer as a PNG stream
func WritePNG(w io.Writer, fb *renderer.Framebuffer) error {
	if err := png.Encode(w, ToImage(fb)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
