// Package terrain supplies the pluggable (wx, wz) -> column height rule the
// world grid calls into at build time. The default rule is 2D simplex noise,
// grounded on the teacher's multi-octave heightmap
// (internal/world/world.go, generateChunk) but reduced to the single-octave
// rule spec.md §4.1 specifies.
package terrain

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// HeightFunc maps a world column (wx, wz) to the height (in voxels) at which
// terrain stops: a voxel at world y is solid iff y < HeightFunc(wx, wz).
type HeightFunc func(wx, wz int) int

// Generator produces column heights from 2D simplex noise, matching
// spec.md §4.1: column_height = floor(simplex2D(wx*0.01, wz*0.01)*32 + 32).
type Generator struct {
	noise opensimplex.Noise
}

// NewGenerator builds a deterministic terrain generator from a seed. The
// same seed always produces the same world.
func NewGenerator(seed int64) *Generator {
	return &Generator{noise: opensimplex.New(seed)}
}

// HeightAt implements HeightFunc.
func (g *Generator) HeightAt(wx, wz int) int {
	n := g.noise.Eval2(float64(wx)*0.01, float64(wz)*0.01)
	return int(math.Floor(n*32 + 32))
}

// BlockID returns the non-zero block id to write at world height wy, per
// spec.md §4.1: id = wy + 2, monotonic with altitude. The only requirement
// the rest of the core makes of this value is "non-zero = solid". Results
// outside [1,255] are clamped to that range.
func BlockID(wy int) uint8 {
	id := wy + 2
	if id < 1 {
		id = 1
	}
	if id > 255 {
		id = 255
	}
	return uint8(id)
}
