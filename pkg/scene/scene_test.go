package scene

import (
	"sync"
	"testing"

	"github.com/rvhart/go-ray-tracer/pkg/core"
	"github.com/rvhart/go-ray-tracer/pkg/geometry"
	"github.com/rvhart/go-ray-tracer/pkg/material"
)

func TestScene_HitReturnsNearest(t *testing.T) {
	s := NewScene()
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -10), 1, mat),
		geometry.NewSphere(core.NewVec3(0, 0, -4), 1, mat),
	)

	hit, isHit := s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 1000)
	if !isHit {
		t.Fatal("Expected a hit along -Z")
	}
	if hit.T != 3 {
		t.Errorf("T = %f, want 3 (near surface of closer sphere)", hit.T)
	}
	if hit.Material != mat {
		t.Error("Hit record should carry the sphere's material")
	}
}

func TestScene_EmptyHitsNothing(t *testing.T) {
	s := NewScene()
	if _, isHit := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, 1000); isHit {
		t.Error("Empty scene must miss every ray")
	}
}

func TestScene_AddInvalidatesBVH(t *testing.T) {
	s := NewScene()
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -4), 1, mat))
	s.Preprocess()

	// Adding after preprocessing must rebuild before the next query
	s.Add(geometry.NewSphere(core.NewVec3(0, 5, -4), 1, mat))

	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -1))
	if _, isHit := s.Hit(ray, 0.001, 1000); !isHit {
		t.Error("Shape added after Preprocess was not visible to Hit")
	}
}

func TestScene_ConcurrentHitWithoutPreprocess(t *testing.T) {
	// Render workers call Hit directly without an explicit Preprocess; the
	// first call must build the BVH exactly once, with no goroutine racing
	// the write. Run under the race detector.
	s := NewScene()
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	for i := 0; i < 32; i++ {
		s.Add(geometry.NewSphere(core.NewVec3(float64(i), 0, -5), 0.4, mat))
	}

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 32; i++ {
				origin := core.NewVec3(float64(i), 0, 0)
				ray := core.NewRay(origin, core.NewVec3(0, 0, -1))
				if _, isHit := s.Hit(ray, 0.001, 1000); !isHit {
					t.Errorf("Ray toward sphere %d missed", i)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	if len(s.Shapes) != 5 {
		t.Errorf("Default scene has %d shapes, want 5", len(s.Shapes))
	}

	// The center sphere should be visible from the camera
	origin := s.CameraConfig.Center
	toCenter := core.NewVec3(0, 0, -1).Subtract(origin)
	if _, isHit := s.Hit(core.NewRay(origin, toCenter), 0.001, 1000); !isHit {
		t.Error("Camera ray toward the center sphere should hit")
	}
}

func TestNewCoverScene(t *testing.T) {
	s := NewCoverScene(42)

	// Ground, three feature spheres, plus a large random field
	if len(s.Shapes) < 100 {
		t.Errorf("Cover scene has only %d shapes", len(s.Shapes))
	}
	if s.CameraConfig.DefocusAngle <= 0 {
		t.Error("Cover scene should enable defocus blur")
	}

	// Same seed builds the same scene
	again := NewCoverScene(42)
	if len(again.Shapes) != len(s.Shapes) {
		t.Errorf("Seeded scene generation not reproducible: %d vs %d shapes",
			len(again.Shapes), len(s.Shapes))
	}
}
