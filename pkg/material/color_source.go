package material

import (
	"math"

	"github.com/fluxt/star-wars/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two colors on a UV grid
type CheckerTexture struct {
	Even, Odd core.Vec3
	Scale     float64 // Number of checks along each UV axis
}

// NewCheckerTexture creates a UV checkerboard with scale×scale checks
func NewCheckerTexture(even, odd core.Vec3, scale float64) *CheckerTexture {
	if scale <= 0 {
		scale = 1
	}
	return &CheckerTexture{Even: even, Odd: odd, Scale: scale}
}

// Evaluate picks the check containing uv
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	i := int(math.Floor(uv.X * c.Scale))
	j := int(math.Floor(uv.Y * c.Scale))
	if (i+j)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
