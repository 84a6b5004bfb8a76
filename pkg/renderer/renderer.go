// Package renderer implements the per-pixel shading integrator and the
// parallel frame scheduler.
package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arendv/go-interactive-raytracer/pkg/core"
	"github.com/arendv/go-interactive-raytracer/pkg/display"
	"github.com/arendv/go-interactive-raytracer/pkg/material"
	"github.com/arendv/go-interactive-raytracer/pkg/scene"
)

// Integrator constants. The values matter less than their consistency with
// the ray epsilon conventions in core.
const (
	MaxRayBounces = 1

	IndirectSamples              = 3
	IndirectLightingFactor       = 0.1
	IndirectMaxDeviation float32 = 0.3

	ShadowSamples         = 4
	ShadowRadius  float32 = 0.05
)

// LightingMode selects which factors of the rendering equation the
// integrator evaluates.
type LightingMode int

const (
	ObservedArea LightingMode = iota // Lambert cosine law only
	Radiance                         // incident radiance only
	BRDF                             // material scattering only
	Combined                         // radiance * BRDF * cosine
)

func (m LightingMode) String() string {
	switch m {
	case ObservedArea:
		return "Observed Area"
	case Radiance:
		return "Radiance"
	case BRDF:
		return "BRDF"
	default:
		return "Combined"
	}
}

// ShadowMode selects how occlusion toward lights is resolved.
type ShadowMode int

const (
	HardShadows ShadowMode = iota
	SoftShadows
	NoShadows
)

func (m ShadowMode) String() string {
	switch m {
	case HardShadows:
		return "Hard"
	case SoftShadows:
		return "Soft"
	default:
		return "None"
	}
}

// Renderer casts one primary ray per pixel of its framebuffer and shades it
// against a scene. All toggles are frame-granular: they are read by the
// workers but only mutated between frames.
type Renderer struct {
	width  int
	height int
	aspect float32

	framebuffer *display.Framebuffer
	workers     int
	noiseSeed   uint32
	logger      core.Logger

	lightingMode       LightingMode
	shadowMode         ShadowMode
	globalIllumination bool
}

// New creates a renderer writing into the given framebuffer. workers <= 0
// selects one worker per CPU.
func New(fb *display.Framebuffer, workers int, logger core.Logger) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{
		width:        fb.Width,
		height:       fb.Height,
		aspect:       float32(fb.Width) / float32(fb.Height),
		framebuffer:  fb,
		workers:      workers,
		noiseSeed:    0x5eed,
		logger:       logger,
		lightingMode: Combined,
		shadowMode:   HardShadows,
	}
}

// Render draws one frame. The scene must not be mutated while a frame is in
// flight; the camera matrix is snapshotted here, then the pixel rows are
// fanned out over the worker pool and joined before returning.
func (r *Renderer) Render(s *scene.Scene) {
	camera := &s.Camera
	camera.CalculateCameraToWorld()

	rowsPerWorker := (r.height + r.workers - 1) / r.workers

	var g errgroup.Group
	for startRow := 0; startRow < r.height; startRow += rowsPerWorker {
		endRow := min(startRow+rowsPerWorker, r.height)
		g.Go(func() error {
			for py := startRow; py < endRow; py++ {
				for px := 0; px < r.width; px++ {
					r.RenderPixel(s, py*r.width+px, camera)
				}
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; the group is used for the join
}

// RenderPixel shades a single pixel index and writes it to the framebuffer
func (r *Renderer) RenderPixel(s *scene.Scene, pixelIdx int, camera *scene.Camera) {
	x, y := r.screenToNDC(pixelIdx%r.width, pixelIdx/r.width, camera.FovCoefficient)

	// The primary ray direction is intentionally left non-normalized: every
	// t comparison happens within this one ray, so the scale cancels out.
	ray := core.NewRay(
		camera.Origin,
		camera.CameraToWorld.TransformVector(core.Vector3{X: x, Y: y, Z: 1}),
	)

	finalColor := r.ProcessRay(s, ray, pixelIdx, 0).MaxToOne()
	r.framebuffer.SetPixel(pixelIdx, display.PackRGB(
		quantize(finalColor.R),
		quantize(finalColor.G),
		quantize(finalColor.B),
	))
}

// screenToNDC maps a pixel to the [-1,1] image plane, scaled by aspect and
// the fov coefficient
func (r *Renderer) screenToNDC(px, py int, fov float32) (x, y float32) {
	x = (2*(float32(px)+0.5)/float32(r.width) - 1) * r.aspect * fov
	y = (1 - 2*(float32(py)+0.5)/float32(r.height)) * fov
	return x, y
}

func quantize(c float32) uint8 {
	return uint8(core.Clampf(c*255+0.5, 0, 255))
}

// ProcessRay traces a ray through the scene and evaluates the configured
// lighting mode at the closest hit, recursing for mirror bounces and
// one-bounce indirect light. A missed ray is black.
func (r *Renderer) ProcessRay(s *scene.Scene, ray core.Ray, pixelIdx, bounce int) core.ColorRGB {
	closest := s.GetClosestHit(ray)
	if !closest.DidHit {
		return core.Black
	}

	var finalColor core.ColorRGB
	viewDirection := ray.Direction.Negate().Normalized()

	for lightIdx := range s.Lights {
		light := s.Lights[lightIdx]

		hitToLight := scene.GetDirectionToLight(light, closest.Origin)
		distanceToLight := hitToLight.Normalize()

		shadowFactor := float32(1)
		switch {
		case r.shadowMode == NoShadows:
			// no occlusion test
		case r.shadowMode == SoftShadows && light.Type == scene.PointLight:
			// the accumulated factor attenuates the light instead of
			// skipping it outright
			shadowFactor = r.softShadowFactor(s, &closest, light, pixelIdx, bounce, lightIdx)
		default:
			// hard shadows; directional lights have no origin to sample
			// around, so soft mode degrades to hard for them
			shadowRay := core.NewRayInterval(
				closest.Origin.Add(closest.Normal.Multiply(core.ShadowNormalOffset)),
				hitToLight, core.RayTMin, distanceToLight,
			)
			if s.DoesHit(shadowRay) {
				continue
			}
		}

		observedArea := closest.Normal.Dot(hitToLight)
		if observedArea < 0 {
			continue
		}

		var shadeInfo material.ShadeInfo
		mat := s.Materials[closest.MaterialIndex]

		switch r.lightingMode {
		case ObservedArea:
			finalColor = finalColor.Add(core.White.Multiply(observedArea * shadowFactor))
		case Radiance:
			radiance := scene.GetRadiance(light, distanceToLight*distanceToLight)
			finalColor = finalColor.Add(radiance.Multiply(shadowFactor))
		case BRDF:
			brdf := mat.Shade(&shadeInfo, &closest, hitToLight, viewDirection)
			finalColor = finalColor.Add(brdf.Multiply(shadowFactor))
		case Combined:
			radiance := scene.GetRadiance(light, distanceToLight*distanceToLight)
			brdf := mat.Shade(&shadeInfo, &closest, hitToLight, viewDirection)
			finalColor = finalColor.Add(radiance.MultiplyRGB(brdf).Multiply(observedArea * shadowFactor))
		}

		if bounce < MaxRayBounces {
			if shadeInfo.NeedsBounce {
				reflectionColor := r.ProcessRay(s, shadeInfo.ReflectionRay, pixelIdx, bounce+1)
				finalColor = finalColor.Multiply(1 - shadeInfo.Reflectance).
					Add(reflectionColor.Multiply(shadeInfo.Reflectance))
			}
			if r.globalIllumination && light.Type == scene.PointLight {
				finalColor = finalColor.Add(r.indirectLight(s, &closest, light, pixelIdx, bounce, lightIdx))
			}
		}
	}

	return finalColor
}

// softShadowFactor samples points within ShadowRadius of the light origin
// and accumulates the cosine-weighted visibility over ShadowSamples+1.
func (r *Renderer) softShadowFactor(s *scene.Scene, hit *core.HitRecord, light scene.Light, pixelIdx, bounce, lightIdx int) float32 {
	noise := core.NewNoiseSequence(pixelIdx, bounce, lightIdx*ShadowSamples, r.noiseSeed)

	var factor float32
	for i := 0; i < ShadowSamples; i++ {
		samplePoint := scene.GetRandomPointInRadius(light.Origin, ShadowRadius, &noise)

		toLight := samplePoint.Subtract(hit.Origin)
		distance := toLight.Normalize()

		shadowRay := core.NewRayInterval(
			hit.Origin.Add(hit.Normal.Multiply(core.ShadowNormalOffset)),
			toLight, core.RayTMin, distance,
		)
		if !s.DoesHit(shadowRay) {
			factor += max(0, hit.Normal.Dot(toLight))
		}
	}
	return factor / (ShadowSamples + 1)
}

// indirectLight takes a few jittered samples toward the light's surroundings
// and recurses, approximating one bounce of diffuse interreflection.
func (r *Renderer) indirectLight(s *scene.Scene, hit *core.HitRecord, light scene.Light, pixelIdx, bounce, lightIdx int) core.ColorRGB {
	// a distinct sample window keeps these draws decorrelated from the
	// soft-shadow stream for the same pixel
	noise := core.NewNoiseSequence(pixelIdx, bounce, 0x1000+lightIdx*IndirectSamples, r.noiseSeed)

	var indirect core.ColorRGB
	for i := 0; i < IndirectSamples; i++ {
		target := scene.GetRandomPointInRadius(light.Origin, IndirectMaxDeviation, &noise)

		direction := target.Subtract(hit.Origin)
		direction.Normalize()

		sampleRay := core.NewRay(
			hit.Origin.Add(direction.Multiply(IndirectMaxDeviation)),
			direction,
		)
		sampleColor := r.ProcessRay(s, sampleRay, pixelIdx, bounce+1)

		weight := max(0, hit.Normal.Dot(direction)) * IndirectLightingFactor
		indirect = indirect.Add(sampleColor.Multiply(weight))
	}
	return indirect
}

// ToggleShadows cycles Hard -> Soft -> None -> Hard
func (r *Renderer) ToggleShadows() {
	r.shadowMode = (r.shadowMode + 1) % 3
	r.logger.Printf("shadow mode: %s", r.shadowMode)
}

// ToggleSoftShadows flips between soft and hard shadows
func (r *Renderer) ToggleSoftShadows() {
	if r.shadowMode == SoftShadows {
		r.shadowMode = HardShadows
	} else {
		r.shadowMode = SoftShadows
	}
	r.logger.Printf("shadow mode: %s", r.shadowMode)
}

// ToggleLightingMode cycles through the four lighting modes
func (r *Renderer) ToggleLightingMode() {
	r.lightingMode = (r.lightingMode + 1) % 4
	r.logger.Printf("lighting mode: %s", r.lightingMode)
}

// ToggleGlobalIllumination flips the indirect lighting pass
func (r *Renderer) ToggleGlobalIllumination() {
	r.globalIllumination = !r.globalIllumination
	r.logger.Printf("global illumination: %v", r.globalIllumination)
}

// SetLightingMode sets the lighting mode directly
func (r *Renderer) SetLightingMode(mode LightingMode) { r.lightingMode = mode }

// SetShadowMode sets the shadow mode directly
func (r *Renderer) SetShadowMode(mode ShadowMode) { r.shadowMode = mode }

// SetGlobalIllumination sets the indirect lighting pass directly
func (r *Renderer) SetGlobalIllumination(enabled bool) { r.globalIllumination = enabled }

// GetLightingMode returns the active lighting mode
func (r *Renderer) GetLightingMode() LightingMode { return r.lightingMode }

// GetShadowMode returns the active shadow mode
func (r *Renderer) GetShadowMode() ShadowMode { return r.shadowMode }

// GlobalIllumination reports whether indirect lighting is enabled
func (r *Renderer) GlobalIllumination() bool { return r.globalIllumination }
