package scene

import (
	"github.com/arendv/go-interactive-raytracer/pkg/core"
	"github.com/arendv/go-interactive-raytracer/pkg/geometry"
	"github.com/arendv/go-interactive-raytracer/pkg/material"
)

// Scene holds typed containers of primitives, lights and materials plus the
// camera. Material index 0 is always present (solid red) so geometry added
// without an explicit material stays visible.
//
// During a frame the scene is read-only; Update runs single-threaded before
// pixel dispatch and is the only place meshes re-transform and rebuild
// their BVHs.
type Scene struct {
	Name string

	Spheres   []geometry.Sphere
	Planes    []geometry.Plane
	Meshes    []*geometry.TriangleMesh
	Lights    []Light
	Materials []material.Material

	Camera Camera

	// update advances per-frame animation; may be nil for static scenes
	update func(s *Scene, totalTime float32)
}

// NewScene creates an empty scene with the default material
func NewScene(name string) *Scene {
	return &Scene{
		Name:      name,
		Materials: []material.Material{material.NewSolidColor(core.Red)},
		Camera:    NewCamera(core.Vector3{}, 90),
	}
}

// Update advances camera-independent animation state. totalTime is the time
// since the scene was loaded.
func (s *Scene) Update(totalTime float32) {
	if s.update != nil {
		s.update(s, totalTime)
	}
}

// GetClosestHit returns the nearest intersection along the ray across all
// primitive containers, spheres first, then planes, then meshes.
func (s *Scene) GetClosestHit(ray core.Ray) core.HitRecord {
	closest := core.NewHitRecord()
	temp := core.NewHitRecord()

	for i := range s.Spheres {
		if s.Spheres[i].Hit(ray, &temp) && temp.T < closest.T {
			closest = temp
		}
	}
	for i := range s.Planes {
		if s.Planes[i].Hit(ray, &temp) && temp.T < closest.T {
			closest = temp
		}
	}
	for i := range s.Meshes {
		temp.T = closest.T // meshes tighten against the best hit so far
		if s.Meshes[i].Hit(ray, &temp) && temp.T < closest.T {
			closest = temp
		}
	}

	return closest
}

// DoesHit reports whether anything blocks the ray, short-circuiting on the
// first occluder
func (s *Scene) DoesHit(ray core.Ray) bool {
	for i := range s.Spheres {
		if s.Spheres[i].HitAny(ray) {
			return true
		}
	}
	for i := range s.Planes {
		if s.Planes[i].HitAny(ray) {
			return true
		}
	}
	for i := range s.Meshes {
		if s.Meshes[i].HitAny(ray) {
			return true
		}
	}
	return false
}

// AddSphere appends a sphere and returns its index
func (s *Scene) AddSphere(origin core.Vector3, radius float32, materialIndex int) int {
	s.Spheres = append(s.Spheres, geometry.NewSphere(origin, radius, materialIndex))
	return len(s.Spheres) - 1
}

// AddPlane appends a plane and returns its index
func (s *Scene) AddPlane(origin, normal core.Vector3, materialIndex int) int {
	s.Planes = append(s.Planes, geometry.NewPlane(origin, normal, materialIndex))
	return len(s.Planes) - 1
}

// AddMesh appends an empty mesh and returns it for population
func (s *Scene) AddMesh(cullMode geometry.CullMode, materialIndex int) *geometry.TriangleMesh {
	mesh := geometry.NewTriangleMesh(cullMode, materialIndex)
	s.Meshes = append(s.Meshes, mesh)
	return mesh
}

// AddPointLight appends a point light
func (s *Scene) AddPointLight(origin core.Vector3, intensity float32, color core.ColorRGB) {
	s.Lights = append(s.Lights, Light{
		Type:      PointLight,
		Origin:    origin,
		Intensity: intensity,
		Color:     color,
	})
}

// AddDirectionalLight appends a directional light
func (s *Scene) AddDirectionalLight(direction core.Vector3, intensity float32, color core.ColorRGB) {
	s.Lights = append(s.Lights, Light{
		Type:      DirectionalLight,
		Direction: direction,
		Intensity: intensity,
		Color:     color,
	})
}

// AddMaterial registers a material and returns its index
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// ChangeCameraFov updates the camera field of view
func (s *Scene) ChangeCameraFov(fov float32) {
	s.Camera.SetFov(fov)
}
