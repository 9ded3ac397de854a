// Package frustum implements the pure chunk-visibility predicate spec.md
// §4.4 specifies, grounded on original_source/camera/frustum/frustum.py
// (factor/tan precomputation, near/far-then-x-then-y short-circuit order).
package frustum

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/basis"
	"voxelcore/internal/voxelcfg"
)

// Tester holds the precomputed frustum geometry for a given configuration:
// factor_y = 1/cos(VFOV/2), tan_y = tan(VFOV/2), and the X equivalents.
type Tester struct {
	near, far float32
	factorX   float32
	tanX      float32
	factorY   float32
	tanY      float32
}

// New precomputes a Tester from a Config's FOV/aspect/near/far.
func New(cfg voxelcfg.Config) Tester {
	halfY := float64(cfg.VFOVRadians()) / 2.0
	halfX := float64(cfg.HFOVRadians()) / 2.0
	return Tester{
		near:    cfg.Near,
		far:     cfg.Far,
		factorX: float32(1.0 / math.Cos(halfX)),
		tanX:    float32(math.Tan(halfX)),
		factorY: float32(1.0 / math.Cos(halfY)),
		tanY:    float32(math.Tan(halfY)),
	}
}

// IsVisible reports whether a bounding sphere of radius r centered at
// center is inside the frustum defined by b, per spec.md §4.4: the near/far
// test, then the X planes, then the Y planes, each short-circuiting.
func (t Tester) IsVisible(center mgl32.Vec3, radius float32, b basis.Basis) bool {
	sphereVec := center.Sub(b.Eye)

	sz := sphereVec.Dot(b.Forward)
	if !(t.near-radius < sz && sz < t.far+radius) {
		return false
	}

	sx := sphereVec.Dot(b.Right)
	distX := t.factorX*radius + sz*t.tanX
	if !(-distX <= sx && sx <= distX) {
		return false
	}

	sy := sphereVec.Dot(b.Up)
	distY := t.factorY*radius + sz*t.tanY
	if !(-distY <= sy && sy <= distY) {
		return false
	}

	return true
}
