package scene

import (
	"sync"

	"github.com/rvhart/go-ray-tracer/pkg/core"
	"github.com/rvhart/go-ray-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes         []core.Shape
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	TopColor       core.Vec3 // Background gradient color straight up
	BottomColor    core.Vec3 // Background gradient color straight down

	buildOnce sync.Once
	bvh       *core.BVH // Acceleration structure, built by Preprocess
}

// NewScene creates an empty scene with default camera, sampling and sky settings
func NewScene() *Scene {
	return &Scene{
		Shapes:         make([]core.Shape, 0),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Sky blue
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White
	}
}

// Add appends shapes to the scene and invalidates any built acceleration
// structure. Must not be called once rendering has started.
func (s *Scene) Add(shapes ...core.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
	s.bvh = nil
	s.buildOnce = sync.Once{}
}

// Preprocess builds the BVH over the scene's shapes. Safe to call from
// multiple goroutines; the build happens once per shape set.
func (s *Scene) Preprocess() {
	s.buildOnce.Do(func() {
		s.bvh = core.NewBVH(s.Shapes)
	})
}

// Hit implements renderer.Scene, returning the nearest intersection in
// (tMin, tMax). The BVH is built on first use, so concurrent render workers
// may call Hit without an explicit Preprocess.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	s.Preprocess()
	return s.bvh.Hit(ray, tMin, tMax)
}

// BackgroundColors implements renderer.Scene
func (s *Scene) BackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
