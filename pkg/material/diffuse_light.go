package material

import (
	"github.com/fluxt/star-wars/pkg/core"
)

// DiffuseLight is a light-emitting material with constant emission
type DiffuseLight struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter never scatters; the path ends at the light
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *ShadingHit, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emission regardless of direction or hit parameters
func (e *DiffuseLight) Emitted(hit *ShadingHit) core.Vec3 {
	return e.Emission
}

func (e *DiffuseLight) isMaterial() {}
