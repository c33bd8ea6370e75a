package loaders

import (
	"math"
	"testing"

	"github.com/fluxt/star-wars/pkg/core"
)

func vecNear(a, b core.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestTransform_Apply(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		point     core.Vec3
		expected  core.Vec3
	}{
		{
			name:      "identity",
			transform: IdentityTransform(),
			point:     core.NewVec3(1, 2, 3),
			expected:  core.NewVec3(1, 2, 3),
		},
		{
			name: "translate then scale",
			transform: Transform{
				Translate: core.NewVec3(1, 0, 0),
				Scale:     core.NewVec3(2, 2, 2),
			},
			point:    core.NewVec3(1, 0, 0),
			expected: core.NewVec3(4, 0, 0),
		},
		{
			name: "rotate about Z",
			transform: Transform{
				RotateDeg: core.NewVec3(0, 0, 90),
				Scale:     core.NewVec3(1, 1, 1),
			},
			point:    core.NewVec3(1, 0, 0),
			expected: core.NewVec3(0, 1, 0),
		},
		{
			name: "translate then rotate",
			transform: Transform{
				Translate: core.NewVec3(1, 0, 0),
				RotateDeg: core.NewVec3(0, 0, 90),
				Scale:     core.NewVec3(1, 1, 1),
			},
			point:    core.NewVec3(0, 0, 0),
			expected: core.NewVec3(0, 1, 0),
		},
		{
			name: "rotate X before Y",
			transform: Transform{
				RotateDeg: core.NewVec3(90, 90, 0),
				Scale:     core.NewVec3(1, 1, 1),
			},
			// X: (0,1,0) -> (0,0,1); Y: (0,0,1) -> (1,0,0)
			point:    core.NewVec3(0, 1, 0),
			expected: core.NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transform.Apply(tt.point)
			if !vecNear(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_ApplyAll(t *testing.T) {
	transform := Transform{Translate: core.NewVec3(0, 0, -2), Scale: core.NewVec3(1, 1, 1)}
	vertices := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)}

	out := transform.ApplyAll(vertices)
	if len(out) != 2 {
		t.Fatalf("Expected 2 vertices, got %d", len(out))
	}
	if !vecNear(out[1], core.NewVec3(1, 1, -1)) {
		t.Errorf("Expected (1,1,-1), got %v", out[1])
	}
	if vertices[1] != core.NewVec3(1, 1, 1) {
		t.Error("ApplyAll modified its input")
	}
}
