package scene

import (
	"fmt"

	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// LightType discriminates the Light union.
type LightType int

const (
	PointLight LightType = iota
	DirectionalLight
)

// Light is a point or directional emitter. Point lights use Origin.
// Directional lights use Direction, which GetDirectionToLight scales by the
// infinite-distance sentinel; shading therefore reads it as the
// surface-to-light orientation.
type Light struct {
	Type      LightType
	Origin    core.Vector3
	Direction core.Vector3
	Color     core.ColorRGB
	Intensity float32
}

// GetDirectionToLight returns the non-normalized vector from origin to the
// light. For directional lights the direction is scaled by FloatMax, so the
// caller's Normalize recovers the direction with an effectively infinite
// distance. An unknown light type is a logic bug, not a runtime condition.
func GetDirectionToLight(light Light, origin core.Vector3) core.Vector3 {
	switch light.Type {
	case DirectionalLight:
		return light.Direction.Multiply(core.FloatMax)
	case PointLight:
		return light.Origin.Subtract(origin)
	default:
		panic(fmt.Sprintf("light type %d not implemented", light.Type))
	}
}

// GetRadiance returns the irradiance arriving from the light. Point lights
// fall off with the squared distance; directional lights do not attenuate.
func GetRadiance(light Light, sqrDistance float32) core.ColorRGB {
	switch light.Type {
	case DirectionalLight:
		return light.Color.Multiply(light.Intensity)
	case PointLight:
		return light.Color.Multiply(light.Intensity / sqrDistance)
	default:
		panic(fmt.Sprintf("light type %d not implemented", light.Type))
	}
}

// GetRandomPointInRadius draws a point on the sphere of the given radius
// around origin, uniform over directions, consuming two values from the
// noise sequence.
func GetRandomPointInRadius(origin core.Vector3, radius float32, noise *core.NoiseSequence) core.Vector3 {
	u := noise.Next()
	theta := 2 * core.Pi * noise.Next()
	phi := core.Acosf(1 - 2*u)

	sinPhi := core.Sinf(phi)
	randomPoint := core.Vector3{
		X: sinPhi * core.Cosf(theta),
		Y: sinPhi * core.Sinf(theta),
		Z: core.Cosf(phi),
	}

	return origin.Add(randomPoint.Multiply(radius))
}
