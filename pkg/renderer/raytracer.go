package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rvhart/go-ray-tracer/pkg/core"
)

// Lower bound on hit distances; suppresses self-intersection acne at ray origins
const hitEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel; must be >= 1
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for the per-worker random streams
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// SampleScale returns the factor that converts per-pixel sample sums into averages
func (c SamplingConfig) SampleScale() float64 {
	return 1.0 / float64(c.SamplesPerPixel)
}

// Scene interface to avoid circular imports. Hit must return the nearest
// intersection within (tMin, tMax), or false if there is none.
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
	BackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer renders a scene through a camera into a framebuffer
type Raytracer struct {
	scene        Scene
	cameraConfig CameraConfig
	config       SamplingConfig
	logger       core.Logger
	progress     func(remaining int)
}

// NewRaytracer creates a new raytracer. A nil logger falls back to stdout.
func NewRaytracer(scene Scene, cameraConfig CameraConfig, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:        scene,
		cameraConfig: cameraConfig,
		config:       config,
		logger:       logger,
	}
}

// SetProgressFunc installs a callback invoked with the remaining worker count
// each time a worker finishes its row range. Best-effort feedback only; it is
// called concurrently from worker goroutines and must not gate correctness.
func (rt *Raytracer) SetProgressFunc(fn func(remaining int)) {
	rt.progress = fn
}

// rayColor resolves a ray into a color by recursive path tracing.
// Intersection-miss and scatter-absorption are terminal outcomes, not errors.
func (rt *Raytracer) rayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// Exceeding the bounce limit gathers no more light
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.Hit(r, hitEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1, random))
}

// backgroundGradient returns a vertical gradient based on the ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.BackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - a).Add(topColor.Multiply(a))
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
