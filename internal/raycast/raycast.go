// Package raycast implements the Amanatides-Woo voxel-stepping raycast and
// the block handler that owns the targeted-block state, add/remove edits and
// the resulting mesh-rebuild fan-out, per spec.md §4.3. Grounded on
// original_source/utils/block_handler/block_handler.py, which this package
// follows field-for-field (including its axis choice: X is compared with Y
// first, then the winner with Z, and a tie goes to the second axis of each
// comparison — only observable through which axis's normal gets set).
package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/basis"
	"voxelcore/internal/voxel"
	"voxelcore/internal/voxelcfg"
)

// Normal is an integer unit vector in {+-X, +-Y, +-Z}.
type Normal struct{ X, Y, Z int }

// Hit describes a single raycast result.
type Hit struct {
	BlockID    voxel.Block
	BlockIndex int
	LocalPos   [3]int
	WorldPos   [3]int
	Normal     Normal
	Chunk      *voxel.Chunk
}

const largeInverse = 1e7

// Cast runs the Amanatides-Woo voxel traversal from b.Eye along b.Forward for
// up to cfg.MaxRayDistance voxel units. It returns (hit, true) on the first
// solid voxel encountered, or (Hit{}, false) on a miss.
func Cast(cfg voxelcfg.Config, g *voxel.Grid, b basis.Basis) (Hit, bool) {
	x1, y1, z1 := b.Eye.X(), b.Eye.Y(), b.Eye.Z()
	end := b.Eye.Add(b.Forward.Mul(cfg.MaxRayDistance))
	x2, y2, z2 := end.X(), end.Y(), end.Z()

	cur := [3]int{int(math.Floor(float64(x1))), int(math.Floor(float64(y1))), int(math.Floor(float64(z1)))}

	dx, deltaX, maxX := axisStep(x1, x2)
	dy, deltaY, maxY := axisStep(y1, y2)
	dz, deltaZ, maxZ := axisStep(z1, z2)

	// -1 = none yet, 0 = X, 1 = Y, 2 = Z — axis of the most recent step.
	stepAxis := -1

	for !(maxX > 1.0 && maxY > 1.0 && maxZ > 1.0) {
		id := g.BlockAt(cur[0], cur[1], cur[2])
		if id != 0 {
			cx, cy, cz, lx, ly, lz := voxel.WorldToChunkLocal(cfg, cur[0], cur[1], cur[2])
			chunk := g.Chunk(cx, cy, cz)

			var n Normal
			switch stepAxis {
			case 0:
				n.X = -dx
			case 1:
				n.Y = -dy
			default:
				n.Z = -dz
			}

			return Hit{
				BlockID:    id,
				BlockIndex: voxel.LocalIndex(cfg, lx, ly, lz),
				LocalPos:   [3]int{lx, ly, lz},
				WorldPos:   cur,
				Normal:     n,
				Chunk:      chunk,
			}, true
		}

		if maxX < maxY {
			if maxX < maxZ {
				cur[0] += dx
				maxX += deltaX
				stepAxis = 0
			} else {
				cur[2] += dz
				maxZ += deltaZ
				stepAxis = 2
			}
		} else {
			if maxY < maxZ {
				cur[1] += dy
				maxY += deltaY
				stepAxis = 1
			} else {
				cur[2] += dz
				maxZ += deltaZ
				stepAxis = 2
			}
		}
	}

	return Hit{}, false
}

// axisStep computes one axis's step direction, delta and initial tMax, per
// spec.md §4.3: step = sign(dir), delta = min(step/dir, 1e7) or 1e7 when
// dir==0, tMax = delta*(1-frac(origin)) when step>0 else delta*frac(origin).
func axisStep(p1, p2 float32) (step int, delta, tMax float32) {
	dir := p2 - p1
	sign := 0
	switch {
	case dir > 0:
		sign = 1
	case dir < 0:
		sign = -1
	}

	if sign != 0 {
		delta = float32(sign) / dir
		if delta > largeInverse {
			delta = largeInverse
		}
	} else {
		delta = largeInverse
	}

	frac := p1 - float32(math.Floor(float64(p1)))
	if sign > 0 {
		tMax = delta * (1.0 - frac)
	} else {
		tMax = delta * frac
	}

	return sign, delta, tMax
}
