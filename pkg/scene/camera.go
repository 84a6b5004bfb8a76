package scene

import (
	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// Camera movement tuning.
const (
	CameraMovementSpeed float32 = 3.0
	CameraRotationSpeed float32 = 0.35
)

// Camera is a pinhole camera posed by origin, yaw and pitch. The basis and
// the camera-to-world matrix are recomputed from the angles; the renderer
// snapshots the matrix once per frame before dispatching pixels.
type Camera struct {
	Origin core.Vector3

	FovAngle       float32 // degrees
	FovCoefficient float32 // tan(fov/2), cached

	Forward core.Vector3
	Up      core.Vector3
	Right   core.Vector3

	TotalPitch float32
	TotalYaw   float32

	CameraToWorld core.Matrix4
}

// NewCamera creates a camera at origin with the given vertical FOV in
// degrees, looking down +Z
func NewCamera(origin core.Vector3, fovAngle float32) Camera {
	c := Camera{
		Origin:  origin,
		Forward: core.UnitZ,
		Up:      core.UnitY,
		Right:   core.UnitX,
	}
	c.SetFov(fovAngle)
	return c
}

// SetFov updates the field of view and the cached tan(fov/2)
func (c *Camera) SetFov(fovAngle float32) {
	c.FovAngle = fovAngle
	c.FovCoefficient = core.Tanf(fovAngle * 0.5 * core.Pi / 180)
}

// CalculateCameraToWorld assembles the camera-to-world matrix from the
// current basis and origin
func (c *Camera) CalculateCameraToWorld() core.Matrix4 {
	c.CameraToWorld = core.NewMatrix4(c.Right, c.Up, c.Forward, c.Origin)
	return c.CameraToWorld
}

// ApplyRotations rebuilds the basis from the accumulated yaw and pitch:
// forward is +Z pitched then yawed, right and up follow from the world up.
func (c *Camera) ApplyRotations() {
	rotation := core.CreateRotationY(c.TotalYaw).Multiply(core.CreateRotationX(c.TotalPitch))

	c.Forward = rotation.TransformVector(core.UnitZ).Normalized()
	c.Right = core.UnitY.Cross(c.Forward).Normalized()
	c.Up = c.Forward.Cross(c.Right).Normalized()
}

// Rotate adds yaw/pitch deltas, wraps the totals into (-2pi, 2pi) and
// rebuilds the basis
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	c.TotalYaw = normalizeRotationAngle(c.TotalYaw + deltaYaw)
	c.TotalPitch = normalizeRotationAngle(c.TotalPitch + deltaPitch)
	c.ApplyRotations()
}

// Move translates the origin along the camera basis: x right, y up,
// z forward
func (c *Camera) Move(x, y, z float32) {
	c.Origin = c.Origin.
		Add(c.Right.Multiply(x)).
		Add(c.Up.Multiply(y)).
		Add(c.Forward.Multiply(z))
}

func normalizeRotationAngle(angle float32) float32 {
	if angle == 0 {
		return 0
	}
	direction := core.Absf(angle) / angle
	for angle*direction >= 2*core.Pi {
		angle -= 2 * core.Pi * direction
	}
	return angle
}
