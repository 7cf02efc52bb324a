package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/rvhart/go-ray-tracer/pkg/export"
	"github.com/rvhart/go-ray-tracer/pkg/renderer"
	"github.com/rvhart/go-ray-tracer/pkg/scene"
)

// Parameter limits for render requests
const (
	minWidth   = 16
	maxWidth   = 2000
	maxSamples = 2000
	maxDepth   = 500
	maxWorkers = 256
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "cover")
	Width   int    `json:"width"`   // Image width
	Samples int    `json:"samples"` // Samples per pixel
	Depth   int    `json:"depth"`   // Maximum ray bounce depth
	Workers int    `json:"workers"` // Worker count, 0 for auto-detect
	Seed    int64  `json:"seed"`    // Base seed for sampling
}

// ProgressUpdate represents a single render update sent via SSE
type ProgressUpdate struct {
	WorkersRemaining int    `json:"workersRemaining"`
	ImageData        string `json:"imageData,omitempty"`   // Base64 encoded PNG
	PreviewData      string `json:"previewData,omitempty"` // Base64 encoded thumbnail PNG
	Stats            *Stats `json:"stats,omitempty"`
	IsComplete       bool   `json:"isComplete"`
	ElapsedMs        int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	Width           int `json:"width"`
	Height          int `json:"height"`
	TotalPixels     int `json:"totalPixels"`
	SamplesPerPixel int `json:"samplesPerPixel"`
	TotalSamples    int `json:"totalSamples"`
	Workers         int `json:"workers"`
}

// renderLogger drops per-row console output; progress reaches the client via SSE
type renderLogger struct{}

func (renderLogger) Printf(format string, args ...interface{}) {}

// handleRender renders a scene and streams progress to the client with SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj := s.createScene(req.Scene, req.Seed)
	if sceneObj == nil {
		s.sendSSEError(w, "Unknown scene: "+req.Scene)
		return
	}

	// Apply request overrides to the scene's defaults
	sceneObj.CameraConfig.Width = req.Width
	sceneObj.SamplingConfig.SamplesPerPixel = req.Samples
	sceneObj.SamplingConfig.MaxDepth = req.Depth
	sceneObj.SamplingConfig.NumWorkers = req.Workers
	sceneObj.SamplingConfig.Seed = req.Seed
	sceneObj.Preprocess()

	raytracer := renderer.NewRaytracer(sceneObj, sceneObj.CameraConfig, sceneObj.SamplingConfig, renderLogger{})

	// Worker completions arrive on a channel so only this goroutine writes SSE
	progressCh := make(chan int, 64)
	raytracer.SetProgressFunc(func(remaining int) {
		select {
		case progressCh <- remaining:
		default: // Drop updates rather than stall a worker
		}
	})

	type renderResult struct {
		fb    *renderer.Framebuffer
		stats renderer.RenderStats
	}
	done := make(chan renderResult, 1)

	startTime := time.Now()
	go func() {
		fb, stats := raytracer.Render()
		done <- renderResult{fb: fb, stats: stats}
	}()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			// Client went away; the render goroutine finishes on its own
			return
		case remaining := <-progressCh:
			update := ProgressUpdate{
				WorkersRemaining: remaining,
				ElapsedMs:        time.Since(startTime).Milliseconds(),
			}
			if err := s.sendSSEUpdate(w, update); err != nil {
				return
			}
		case result := <-done:
			if err := s.sendFinalUpdate(w, result.fb, result.stats, startTime); err != nil {
				// The frame rendered fine; encoding or the stream failed,
				// and a broken stream cannot carry an error event either
				log.Printf("Failed to deliver final frame: %v", err)
				return
			}
			s.sendSSEEvent(w, "complete", "Rendering completed")
			return
		}
	}
}

// sendFinalUpdate encodes the finished framebuffer and sends the last SSE update
func (s *Server) sendFinalUpdate(w http.ResponseWriter, fb *renderer.Framebuffer, stats renderer.RenderStats, startTime time.Time) error {
	img := export.ToImage(fb)

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	previewData, err := imageToBase64PNG(previewImage(img, previewWidth))
	if err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}

	update := ProgressUpdate{
		WorkersRemaining: 0,
		ImageData:        imageData,
		PreviewData:      previewData,
		Stats: &Stats{
			Width:           stats.Width,
			Height:          stats.Height,
			TotalPixels:     stats.TotalPixels,
			SamplesPerPixel: stats.SamplesPerPixel,
			TotalSamples:    stats.TotalSamples,
			Workers:         stats.Workers,
		},
		IsComplete: true,
		ElapsedMs:  time.Since(startTime).Milliseconds(),
	}
	return s.sendSSEUpdate(w, update)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 320, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(r.URL.Query(), "samples", 25, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(r.URL.Query(), "depth", 20, 1, maxDepth); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(r.URL.Query(), "seed", 42); err != nil {
		return nil, err
	}

	return req, nil
}

// createScene creates a scene based on the scene name
func (s *Server) createScene(sceneName string, seed int64) *scene.Scene {
	switch sceneName {
	case "default":
		return scene.NewDefaultScene()
	case "cover":
		return scene.NewCoverScene(seed)
	default:
		return nil
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
