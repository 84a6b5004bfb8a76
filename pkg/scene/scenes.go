package scene

import (
	"path/filepath"

	"github.com/arendv/go-interactive-raytracer/pkg/core"
	"github.com/arendv/go-interactive-raytracer/pkg/geometry"
	"github.com/arendv/go-interactive-raytracer/pkg/loaders"
	"github.com/arendv/go-interactive-raytracer/pkg/material"
)

// Factory builds a scene on demand, so cycling scenes always starts from a
// freshly initialized state.
type Factory struct {
	Name   string
	Create func() (*Scene, error)
}

// Factories returns the built-in scene list. assetDir is the directory the
// OBJ meshes are loaded from.
func Factories(assetDir string) []Factory {
	return []Factory{
		{Name: "reference", Create: NewReferenceScene},
		{Name: "bunny", Create: func() (*Scene, error) {
			return NewBunnyScene(filepath.Join(assetDir, "lowpoly_bunny.obj"))
		}},
		{Name: "cube", Create: func() (*Scene, error) {
			return NewCubeScene(filepath.Join(assetDir, "simple_cube.obj"))
		}},
		{Name: "test", Create: NewTestScene},
	}
}

// addRoomPlanes boxes the scene in with five gray-blue walls
func addRoomPlanes(s *Scene, materialIndex int) {
	s.AddPlane(core.NewVector3(0, 0, 10), core.NewVector3(0, 0, -1), materialIndex)  // back
	s.AddPlane(core.NewVector3(0, 0, 0), core.NewVector3(0, 1, 0), materialIndex)    // bottom
	s.AddPlane(core.NewVector3(0, 10, 0), core.NewVector3(0, -1, 0), materialIndex)  // top
	s.AddPlane(core.NewVector3(5, 0, 0), core.NewVector3(-1, 0, 0), materialIndex)   // right
	s.AddPlane(core.NewVector3(-5, 0, 0), core.NewVector3(1, 0, 0), materialIndex)   // left
}

// addDefaultLights places the warm back light and the two front lights used
// by the showcase scenes
func addDefaultLights(s *Scene) {
	s.AddPointLight(core.NewVector3(0, 5, 5), 50, core.NewColorRGB(1, 0.61, 0.45))
	s.AddPointLight(core.NewVector3(-2.5, 5, -5), 70, core.NewColorRGB(1, 0.8, 0.45))
	s.AddPointLight(core.NewVector3(2.5, 2.5, -5), 50, core.NewColorRGB(0.34, 0.47, 0.68))
}

// NewReferenceScene builds the material showcase: two rows of Cook-Torrance
// spheres (metals below, dielectrics above) and three single-triangle meshes
// demonstrating the cull modes, all rotating about the world Y axis.
func NewReferenceScene() (*Scene, error) {
	s := NewScene("Reference Scene")
	s.Camera = NewCamera(core.NewVector3(0, 3, -9), 45)

	matRoughMetal := s.AddMaterial(material.NewCookTorrance(core.NewColorRGB(0.972, 0.960, 0.915), 1, 1))
	matMediumMetal := s.AddMaterial(material.NewCookTorrance(core.NewColorRGB(0.972, 0.960, 0.915), 1, 0.6))
	matSmoothMetal := s.AddMaterial(material.NewCookTorrance(core.NewColorRGB(0.972, 0.960, 0.915), 1, 0.1))
	matRoughPlastic := s.AddMaterial(material.NewCookTorrance(core.NewColorRGB(0.75, 0.75, 0.75), 0, 1))
	matMediumPlastic := s.AddMaterial(material.NewCookTorrance(core.NewColorRGB(0.75, 0.75, 0.75), 0, 0.6))
	matSmoothPlastic := s.AddMaterial(material.NewCookTorrance(core.NewColorRGB(0.75, 0.75, 0.75), 0, 0.1))
	matGrayBlue := s.AddMaterial(material.NewLambertian(core.NewColorRGB(0.49, 0.57, 0.57), 1))
	matWhite := s.AddMaterial(material.NewLambertian(core.White, 1))

	addRoomPlanes(s, matGrayBlue)

	s.AddSphere(core.NewVector3(-1.75, 1, 0), 0.75, matRoughMetal)
	s.AddSphere(core.NewVector3(0, 1, 0), 0.75, matMediumMetal)
	s.AddSphere(core.NewVector3(1.75, 1, 0), 0.75, matSmoothMetal)
	s.AddSphere(core.NewVector3(-1.75, 3, 0), 0.75, matRoughPlastic)
	s.AddSphere(core.NewVector3(0, 3, 0), 0.75, matMediumPlastic)
	s.AddSphere(core.NewVector3(1.75, 3, 0), 0.75, matSmoothPlastic)

	baseTriangle := geometry.NewTriangle(
		core.NewVector3(-0.75, 1.5, 0),
		core.NewVector3(0.75, 0, 0),
		core.NewVector3(-0.75, 0, 0),
	)

	cullModes := []geometry.CullMode{
		geometry.BackFaceCulling,
		geometry.FrontFaceCulling,
		geometry.NoCulling,
	}
	offsets := []core.Vector3{
		core.NewVector3(-1.75, 4.5, 0),
		core.NewVector3(0, 4.5, 0),
		core.NewVector3(1.75, 4.5, 0),
	}
	for i := range cullModes {
		mesh := s.AddMesh(cullModes[i], matWhite)
		mesh.AppendTriangle(baseTriangle, true)
		mesh.Translate(offsets[i])
		mesh.UpdateTransforms()
	}

	addDefaultLights(s)

	s.update = func(s *Scene, totalTime float32) {
		yaw := (core.Cosf(totalTime) + 1) / 2 * 2 * core.Pi
		for _, mesh := range s.Meshes {
			mesh.RotateY(yaw)
			mesh.UpdateTransforms()
		}
	}
	return s, nil
}

// NewBunnyScene builds the room around a low-poly bunny mesh loaded from
// disk. A missing or malformed OBJ aborts the scene load; there are no
// partial meshes.
func NewBunnyScene(objPath string) (*Scene, error) {
	s := NewScene("Bunny Scene")
	s.Camera = NewCamera(core.NewVector3(0, 3, -9), 45)

	matGrayBlue := s.AddMaterial(material.NewLambertian(core.NewColorRGB(0.49, 0.57, 0.57), 1))
	matWhite := s.AddMaterial(material.NewLambertian(core.White, 1))

	addRoomPlanes(s, matGrayBlue)

	positions, normals, indices, err := loaders.ParseOBJ(objPath)
	if err != nil {
		return nil, err
	}
	mesh, err := geometry.NewTriangleMeshFromGeometry(positions, indices, normals, geometry.BackFaceCulling, matWhite)
	if err != nil {
		return nil, err
	}
	mesh.Scale(core.NewVector3(2, 2, 2))
	mesh.UpdateTransforms()
	s.Meshes = append(s.Meshes, mesh)

	addDefaultLights(s)

	s.update = func(s *Scene, totalTime float32) {
		yaw := (core.Cosf(totalTime) + 1) / 2 * 2 * core.Pi
		s.Meshes[0].RotateY(yaw)
		s.Meshes[0].UpdateTransforms()
	}
	return s, nil
}

// NewCubeScene builds a small room with a spinning OBJ cube.
func NewCubeScene(objPath string) (*Scene, error) {
	s := NewScene("Cube Scene")
	s.Camera = NewCamera(core.NewVector3(0, 1, -5), 45)

	matGrayBlue := s.AddMaterial(material.NewLambertian(core.NewColorRGB(0.49, 0.57, 0.57), 1))
	matWhite := s.AddMaterial(material.NewLambertian(core.White, 1))

	addRoomPlanes(s, matGrayBlue)

	positions, normals, indices, err := loaders.ParseOBJ(objPath)
	if err != nil {
		return nil, err
	}
	mesh, err := geometry.NewTriangleMeshFromGeometry(positions, indices, normals, geometry.BackFaceCulling, matWhite)
	if err != nil {
		return nil, err
	}
	mesh.Translate(core.NewVector3(0, 1, 0))
	mesh.Scale(core.NewVector3(0.7, 0.7, 0.7))
	mesh.UpdateTransforms()
	s.Meshes = append(s.Meshes, mesh)

	addDefaultLights(s)

	s.update = func(s *Scene, totalTime float32) {
		s.Meshes[0].RotateY(core.Pi / 4 * totalTime)
		s.Meshes[0].UpdateTransforms()
	}
	return s, nil
}

// NewTestScene builds the minimal two-sphere scene used for material and
// shadow experiments.
func NewTestScene() (*Scene, error) {
	s := NewScene("Test Scene")
	s.Camera = NewCamera(core.NewVector3(0, 1, -5), 45)

	matRed := s.AddMaterial(material.NewLambertian(core.Red, 1))
	matBlue := s.AddMaterial(material.NewLambertianPhong(core.Blue, 0.2, 0.8, 60))
	matYellow := s.AddMaterial(material.NewLambertian(core.Yellow, 1))

	s.AddSphere(core.NewVector3(-0.75, 1, 0), 1, matRed)
	s.AddSphere(core.NewVector3(0.75, 1, 0), 1, matBlue)
	s.AddPlane(core.NewVector3(0, 0, 0), core.NewVector3(0, 1, 0), matYellow)

	s.AddPointLight(core.NewVector3(0, 5, 5), 25, core.White)
	s.AddPointLight(core.NewVector3(0, 2.5, -5), 25, core.White)

	return s, nil
}
