package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rvhart/go-ray-tracer/pkg/core"
)

// rowRange is a half-open interval [Start, End) of image rows owned by one worker
type rowRange struct {
	Start, End int
}

// partitionRows splits [0, height) into workers contiguous non-overlapping
// ranges. All ranges have height/workers rows except the last, which absorbs
// the remainder so every row is covered exactly once.
func partitionRows(height, workers int) []rowRange {
	rowsPerWorker := height / workers
	ranges := make([]rowRange, workers)
	for t := range ranges {
		start := t * rowsPerWorker
		end := start + rowsPerWorker
		if t == workers-1 {
			end = height
		}
		ranges[t] = rowRange{Start: start, End: end}
	}
	return ranges
}

// workerCount resolves the configured worker count, falling back to the
// platform's reported concurrency and never returning less than 1
func (rt *Raytracer) workerCount() int {
	workers := rt.config.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// Render renders the scene into a freshly allocated framebuffer.
// Camera geometry is derived from the config at the start of every call.
// Rows are statically partitioned across workers, so no locking guards the
// framebuffer itself; each pixel has exactly one writer.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	startTime := time.Now()

	camera := NewCamera(rt.cameraConfig)
	width := rt.cameraConfig.Width
	height := camera.ImageHeight()
	fb := NewFramebuffer(width, height)

	workers := rt.workerCount()
	remaining := int32(workers)

	var wg sync.WaitGroup
	for workerID, rows := range partitionRows(height, workers) {
		random := rand.New(rand.NewSource(rt.config.Seed + int64(workerID)))

		wg.Add(1)
		go func(rows rowRange, random *rand.Rand) {
			defer wg.Done()

			rt.renderRows(camera, fb, rows, random)

			left := int(atomic.AddInt32(&remaining, -1))
			rt.logger.Printf("\rSections remaining: %d ", left)
			if rt.progress != nil {
				rt.progress(left)
			}
		}(rows, random)
	}

	// Emission must never observe a partially filled framebuffer
	wg.Wait()

	// Convert per-pixel sample sums into averages
	scale := rt.config.SampleScale()
	for i := range fb.Pixels {
		fb.Pixels[i] = fb.Pixels[i].Multiply(scale)
	}

	rt.logger.Printf("\rDone.                             \n")

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		Workers:         workers,
		Elapsed:         time.Since(startTime),
	}
	return fb, stats
}

// renderRows fills the framebuffer rows [rows.Start, rows.End), which belong
// exclusively to the calling worker. Pixels accumulate sample sums, not averages.
func (rt *Raytracer) renderRows(camera *Camera, fb *Framebuffer, rows rowRange, random *rand.Rand) {
	for j := rows.Start; j < rows.End; j++ {
		for i := 0; i < fb.Width; i++ {
			pixelColor := core.Vec3{}
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				ray := camera.GetRay(i, j, random)
				pixelColor = pixelColor.Add(rt.rayColor(ray, rt.config.MaxDepth, random))
			}
			fb.Pixels[fb.Index(i, j)] = pixelColor
		}
	}
}
