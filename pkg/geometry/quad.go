package geometry

import (
	"math"

	"github.com/rvhart/go-ray-tracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Material core.Material

	normal core.Vec3 // Unit normal, U × V
	d      float64   // Plane constant: normal · corner
	w      core.Vec3 // Cached term for planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: material,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        n.Multiply(1.0 / n.Dot(n)),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	// Planar coordinates of the hit point relative to the corner
	hitPoint := ray.At(t)
	p := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(p.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(p))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this quad,
// padded slightly so axis-aligned quads still have volume
func (q *Quad) BoundingBox() core.AABB {
	const pad = 1e-4

	corners := []core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}

	box := core.NewAABB(corners[0], corners[0])
	for _, c := range corners[1:] {
		box = box.Union(core.NewAABB(c, c))
	}

	padVec := core.NewVec3(pad, pad, pad)
	return core.NewAABB(box.Min.Subtract(padVec), box.Max.Add(padVec))
}
