package renderer

import (
	"math"
	"math/rand"

	"github.com/rvhart/go-ray-tracer/pkg/core"
)

// CameraConfig contains the user-facing camera parameters.
// It is read-only for the duration of a render.
type CameraConfig struct {
	AspectRatio   float64   // Ratio of image width over height
	Width         int       // Rendered image width in pixels
	VFov          float64   // Vertical field of view in degrees
	Center        core.Vec3 // Point the camera is looking from
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Camera-relative "up" direction
	DefocusAngle  float64   // Variation angle of rays through each pixel, degrees; <= 0 disables defocus
	FocusDistance float64   // Distance from camera center to plane of perfect focus
}

// DefaultCameraConfig returns sensible default camera values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:   16.0 / 9.0,
		Width:         400,
		VFov:          90.0,
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0,
		FocusDistance: 10.0,
	}
}

// Camera holds the viewport and lens geometry derived from a CameraConfig.
// The derived values are computed once per render and never updated incrementally.
type Camera struct {
	config      CameraConfig
	imageHeight int

	center       core.Vec3
	pixel00Loc   core.Vec3 // World-space center of pixel (0, 0)
	pixelDeltaU  core.Vec3 // World-space step to the pixel to the right
	pixelDeltaV  core.Vec3 // World-space step to the pixel below
	u, v, w      core.Vec3 // Orthonormal camera basis
	defocusDiskU core.Vec3 // Lens basis vector, horizontal
	defocusDiskV core.Vec3 // Lens basis vector, vertical
}

// NewCamera derives the full viewport geometry from the given config.
// Callers must supply samples/depth limits separately via SamplingConfig;
// the camera is geometry only.
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}
	c.initialize()
	return c
}

func (c *Camera) initialize() {
	cfg := c.config

	c.imageHeight = int(float64(cfg.Width) / cfg.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	c.center = cfg.Center

	// Viewport dimensions from the vertical field of view at the focus distance
	theta := degreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	viewportWidth := viewportHeight * (float64(cfg.Width) / float64(c.imageHeight))

	// Orthonormal basis: w points away from the view direction.
	// A collinear Up/view pair is a documented caller precondition, not checked here.
	c.w = cfg.Center.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// viewportV runs down -v so that row indices increase downward in image space
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Multiply(1.0 / float64(cfg.Width))
	c.pixelDeltaV = viewportV.Multiply(1.0 / float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(cfg.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDistance * math.Tan(degreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// ImageHeight returns the derived image height in pixels (always >= 1)
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// GetRay generates a randomly jittered ray through pixel (i, j).
// The sample point is jittered within the pixel square, and when defocus is
// enabled the origin is sampled from the lens disk instead of the camera center.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random origin on the camera lens disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
