package renderer

import "github.com/rvhart/go-ray-tracer/pkg/core"

// Framebuffer is a flat row-major grid of linear, un-clamped colors.
// During a render each pixel holds the sum of its samples; Render converts
// the sums into averages before handing the buffer to an image sink.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a zeroed framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Index returns the flat index of pixel (i, j)
func (fb *Framebuffer) Index(i, j int) int {
	return j*fb.Width + i
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[fb.Index(i, j)]
}
