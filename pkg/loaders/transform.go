package loaders

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/fluxt/star-wars/pkg/core"
)

// Transform places mesh vertices in the scene. It is applied as
// translate, then rotate (X, then Y, then Z, in degrees), then scale.
type Transform struct {
	Translate core.Vec3
	RotateDeg core.Vec3
	Scale     core.Vec3
}

// IdentityTransform leaves vertices where they are
func IdentityTransform() Transform {
	return Transform{Scale: core.NewVec3(1, 1, 1)}
}

// Matrix returns S·Rz·Ry·Rx·T
func (t Transform) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Translate.X, t.Translate.Y, t.Translate.Z)
	rotate := mgl64.HomogRotate3DZ(mgl64.DegToRad(t.RotateDeg.Z)).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(t.RotateDeg.Y))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(t.RotateDeg.X)))
	scale := mgl64.Scale3D(t.Scale.X, t.Scale.Y, t.Scale.Z)

	return scale.Mul4(rotate).Mul4(translate)
}

// Apply transforms a single point
func (t Transform) Apply(p core.Vec3) core.Vec3 {
	return applyMatrix(t.Matrix(), p)
}

// ApplyAll returns transformed copies of the vertices
func (t Transform) ApplyAll(vertices []core.Vec3) []core.Vec3 {
	m := t.Matrix()
	out := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = applyMatrix(m, v)
	}
	return out
}

func applyMatrix(m mgl64.Mat4, p core.Vec3) core.Vec3 {
	r := m.Mul4x1(mgl64.Vec3{p.X, p.Y, p.Z}.Vec4(1)).Vec3()
	return core.NewVec3(r[0], r[1], r[2])
}
