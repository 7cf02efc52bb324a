// Package export converts a rendered framebuffer into image streams.
// The renderer hands over averaged linear colors; clamping and gamma
// encoding happen here, at the emission boundary.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rvhart/go-ray-tracer/pkg/core"
	"github.com/rvhart/go-ray-tracer/pkg/renderer"
)

// WritePPM writes the framebuffer as a plain-text PPM (P3) stream
func WritePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for _, pixel := range fb.Pixels {
		r, g, b := encodeChannels(pixel)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}

	return bw.Flush()
}

// encodeChannels maps a linear color to 8-bit channels with gamma 2 encoding
func encodeChannels(c core.Vec3) (r, g, b int) {
	encoded := c.GammaCorrect(2.0).Clamp(0.0, 0.999)
	return int(256 * encoded.X), int(256 * encoded.Y), int(256 * encoded.Z)
}
