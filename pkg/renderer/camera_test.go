package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rvhart/go-ray-tracer/pkg/core"
)

func TestCameraImageHeight(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		aspectRatio float64
		expected    int
	}{
		{name: "400 wide 16:9", width: 400, aspectRatio: 16.0 / 9.0, expected: 225},
		{name: "square", width: 100, aspectRatio: 1.0, expected: 100},
		{name: "floor rounding", width: 100, aspectRatio: 3.0, expected: 33},
		{name: "clamped to one row", width: 10, aspectRatio: 100.0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.Width = tt.width
			config.AspectRatio = tt.aspectRatio

			camera := NewCamera(config)
			if camera.ImageHeight() != tt.expected {
				t.Errorf("ImageHeight() = %d, want %d", camera.ImageHeight(), tt.expected)
			}
		})
	}
}

func TestSamplingConfig_SampleScale(t *testing.T) {
	for _, spp := range []int{1, 10, 100, 77} {
		config := SamplingConfig{SamplesPerPixel: spp}
		product := config.SampleScale() * float64(spp)
		if math.Abs(product-1.0) > 1e-15 {
			t.Errorf("SampleScale()*%d = %g, want 1", spp, product)
		}
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	tests := []struct {
		name   string
		center core.Vec3
		lookAt core.Vec3
		up     core.Vec3
	}{
		{
			name:   "axis aligned",
			center: core.NewVec3(0, 0, 0),
			lookAt: core.NewVec3(0, 0, -1),
			up:     core.NewVec3(0, 1, 0),
		},
		{
			name:   "offset view",
			center: core.NewVec3(13, 2, 3),
			lookAt: core.NewVec3(0, 0, 0),
			up:     core.NewVec3(0, 1, 0),
		},
		{
			name:   "tilted up vector",
			center: core.NewVec3(-2, 2, 1),
			lookAt: core.NewVec3(0, 0, -1),
			up:     core.NewVec3(0.3, 1, 0.1),
		},
	}

	const tolerance = 1e-12
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.Center = tt.center
			config.LookAt = tt.lookAt
			config.Up = tt.up
			camera := NewCamera(config)

			for _, basis := range []struct {
				name string
				vec  core.Vec3
			}{{"u", camera.u}, {"v", camera.v}, {"w", camera.w}} {
				if math.Abs(basis.vec.Length()-1.0) > tolerance {
					t.Errorf("|%s| = %f, want 1", basis.name, basis.vec.Length())
				}
			}

			if dot := camera.u.Dot(camera.v); math.Abs(dot) > tolerance {
				t.Errorf("u·v = %g, want 0", dot)
			}
			if dot := camera.v.Dot(camera.w); math.Abs(dot) > tolerance {
				t.Errorf("v·w = %g, want 0", dot)
			}
			if dot := camera.u.Dot(camera.w); math.Abs(dot) > tolerance {
				t.Errorf("u·w = %g, want 0", dot)
			}

			// w points from lookAt toward the camera
			forward := tt.lookAt.Subtract(tt.center).Normalize()
			if camera.w.Add(forward).Length() > 1e-9 {
				t.Errorf("w = %v, want %v", camera.w, forward.Negate())
			}
		})
	}
}

func TestCameraViewportGeometry(t *testing.T) {
	// 2x2 image, vfov 90, focus distance 1, looking down -Z:
	// the viewport is the 2x2 square at z=-1 and pixel centers sit at (±0.5, ±0.5)
	config := CameraConfig{
		AspectRatio:   1.0,
		Width:         2,
		VFov:          90.0,
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 1.0,
	}
	camera := NewCamera(config)

	expected00 := core.NewVec3(-0.5, 0.5, -1)
	if camera.pixel00Loc.Subtract(expected00).Length() > 1e-12 {
		t.Errorf("pixel00Loc = %v, want %v", camera.pixel00Loc, expected00)
	}

	expectedDeltaU := core.NewVec3(1, 0, 0)
	expectedDeltaV := core.NewVec3(0, -1, 0)
	if camera.pixelDeltaU.Subtract(expectedDeltaU).Length() > 1e-12 {
		t.Errorf("pixelDeltaU = %v, want %v", camera.pixelDeltaU, expectedDeltaU)
	}
	if camera.pixelDeltaV.Subtract(expectedDeltaV).Length() > 1e-12 {
		t.Errorf("pixelDeltaV = %v, want %v", camera.pixelDeltaV, expectedDeltaV)
	}
}

func TestCameraGetRay_NoDefocusOriginIsCenter(t *testing.T) {
	config := DefaultCameraConfig()
	config.Center = core.NewVec3(1, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.DefocusAngle = 0
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	var firstDirection core.Vec3
	directionsVary := false
	for sample := 0; sample < 50; sample++ {
		ray := camera.GetRay(10, 10, random)
		if ray.Origin != config.Center {
			t.Fatalf("With defocus disabled every origin must equal the camera center, got %v", ray.Origin)
		}
		if sample == 0 {
			firstDirection = ray.Direction
		} else if ray.Direction != firstDirection {
			directionsVary = true
		}
	}
	if !directionsVary {
		t.Error("Pixel jitter should vary the ray direction across samples")
	}
}

func TestCameraGetRay_DefocusSamplesLensDisk(t *testing.T) {
	config := DefaultCameraConfig()
	config.DefocusAngle = 10.0
	config.FocusDistance = 3.4
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	lensRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	offCenter := 0
	for sample := 0; sample < 200; sample++ {
		ray := camera.GetRay(0, 0, random)
		offset := ray.Origin.Subtract(config.Center)
		if offset.Length() > lensRadius+1e-9 {
			t.Fatalf("Origin offset %f exceeds lens radius %f", offset.Length(), lensRadius)
		}
		if offset.Length() > 1e-12 {
			offCenter++
		}
	}
	if offCenter == 0 {
		t.Error("Defocus sampling should move ray origins off the camera center")
	}
}

func TestCameraGetRay_JitterBounds(t *testing.T) {
	// For the 2x2 vfov-90 camera, pixel (0,0) samples must stay inside
	// the unit pixel square centered on (-0.5, 0.5, -1)
	config := CameraConfig{
		AspectRatio:   1.0,
		Width:         2,
		VFov:          90.0,
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 1.0,
	}
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	for sample := 0; sample < 500; sample++ {
		ray := camera.GetRay(0, 0, random)
		// Origin is (0,0,0), so the direction is the sampled viewport point
		if ray.Direction.X < -1 || ray.Direction.X > 0 {
			t.Fatalf("Sample X %f outside pixel column [-1, 0]", ray.Direction.X)
		}
		if ray.Direction.Y < 0 || ray.Direction.Y > 1 {
			t.Fatalf("Sample Y %f outside pixel row [0, 1]", ray.Direction.Y)
		}
		if math.Abs(ray.Direction.Z+1) > 1e-12 {
			t.Fatalf("Sample Z = %f, want -1", ray.Direction.Z)
		}
	}
}
