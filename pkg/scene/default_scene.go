package scene

import (
	"github.com/rvhart/go-ray-tracer/pkg/core"
	"github.com/rvhart/go-ray-tracer/pkg/geometry"
	"github.com/rvhart/go-ray-tracer/pkg/material"
)

// NewDefaultScene creates a small scene with three spheres over a diffuse ground
func NewDefaultScene() *Scene {
	s := NewScene()

	s.CameraConfig.Center = core.NewVec3(-2, 2, 1)
	s.CameraConfig.LookAt = core.NewVec3(0, 0, -1)
	s.CameraConfig.VFov = 30.0
	s.CameraConfig.DefocusAngle = 0
	s.CameraConfig.FocusDistance = 3.4

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		// Hollow glass: outer surface plus inverted inner shell
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, left),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
	)

	return s
}
