package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // Samples taken per pixel
	TotalSamples    int           // Total number of samples taken
	Workers         int           // Number of parallel workers used
	Elapsed         time.Duration // Wall-clock render time
}
