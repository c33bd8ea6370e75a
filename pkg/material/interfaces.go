package material

import (
	"github.com/fluxt/star-wars/pkg/core"
)

// Material describes how light interacts with a surface.
// The set of materials is closed: Lambertian, Metal, Dielectric and DiffuseLight.
type Material interface {
	// Scatter returns the outgoing ray and its attenuation, or false when the path ends here
	Scatter(rayIn core.Ray, hit *ShadingHit, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the hit point (zero for non-emitters)
	Emitted(hit *ShadingHit) core.Vec3

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// ShadingHit is the full intersection record, built only for the closest hit along a ray
type ShadingHit struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	UV        core.Vec2 // Surface parameterization in [0,1]²
	Material  Material  // Material of the hit object
	Direction core.Vec3 // Suggested outgoing direction (cosine-weighted about Normal)
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *ShadingHit) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

var black = core.Vec3{}
