package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rvhart/go-ray-tracer/pkg/export"
	"github.com/rvhart/go-ray-tracer/pkg/renderer"
	"github.com/rvhart/go-ray-tracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cover'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base seed for the per-worker random streams")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	output := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray Tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three spheres (diffuse, glass, metal) over a ground sphere")
		fmt.Println("  cover   - Random sphere field with depth-of-field blur")
		return
	}

	if err := run(*sceneType, *width, *samples, *depth, *workers, *seed, *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, width, samples, depth, workers int, seed int64, format, output string) error {
	selectedScene, err := buildScene(sceneType, seed)
	if err != nil {
		return err
	}

	cameraConfig := selectedScene.CameraConfig
	if width > 0 {
		cameraConfig.Width = width
	}

	samplingConfig := selectedScene.SamplingConfig
	if samples > 0 {
		samplingConfig.SamplesPerPixel = samples
	}
	if depth > 0 {
		samplingConfig.MaxDepth = depth
	}
	samplingConfig.NumWorkers = workers
	samplingConfig.Seed = seed

	if format != "png" && format != "ppm" {
		return fmt.Errorf("unknown format %q (want png or ppm)", format)
	}

	if output == "" {
		outputDir := filepath.Join("output", sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}

	logger := renderer.NewDefaultLogger()
	logger.Printf("Rendering %q scene, width %d, %d samples/pixel...\n",
		sceneType, cameraConfig.Width, samplingConfig.SamplesPerPixel)

	selectedScene.Preprocess()
	raytracer := renderer.NewRaytracer(selectedScene, cameraConfig, samplingConfig, logger)

	fb, stats := raytracer.Render()
	logger.Printf("Rendered %dx%d (%d samples/pixel, %d workers) in %v\n",
		stats.Width, stats.Height, stats.SamplesPerPixel, stats.Workers, stats.Elapsed)

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "ppm":
		err = export.WritePPM(file, fb)
	default:
		err = export.WritePNG(file, fb)
	}
	if err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", output)
	return nil
}

func buildScene(sceneType string, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cover":
		return scene.NewCoverScene(seed), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}
