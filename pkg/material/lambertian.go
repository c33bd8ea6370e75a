package material

import (
	"github.com/fluxt/star-wars/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering.
// The outgoing direction is normal + a random unit vector, which is cosine distributed.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *ShadingHit, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.SampleOnUnitSphere(sampler.Get2D()))

	// Random vector opposite the normal would leave a zero direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	// Albedo above 1 would add energy on every bounce
	albedo := l.Albedo.Evaluate(hit.UV, hit.Point).Clamp(0, 1)

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: albedo,
	}, true
}

// Emitted returns black; lambertian surfaces do not emit
func (l *Lambertian) Emitted(hit *ShadingHit) core.Vec3 {
	return black
}

func (l *Lambertian) isMaterial() {}
