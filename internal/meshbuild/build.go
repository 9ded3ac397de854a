// Package meshbuild implements the greedy-per-face chunk mesh builder: face
// culling, ambient occlusion sampling and quad-flip selection, emitting a
// packed 32-bit vertex stream per spec.md §4.2. Build is a pure function over
// its inputs — no allocation happens anywhere but the single output slice,
// and it never mutates chunkBlocks or worldBlocks.
package meshbuild

import (
	"voxelcore/internal/voxel"
	"voxelcore/internal/voxelcfg"
)

// Face ids, fixed per spec.md: the shader keys off these exact values.
const (
	FaceTop    = 0 // +Y
	FaceBottom = 1 // -Y
	FaceRight  = 2 // +X
	FaceLeft   = 3 // -X
	FaceBack   = 4 // -Z
	FaceFront  = 5 // +Z
)

type plane int

const (
	planeY plane = iota
	planeX
	planeZ
)

// Build produces the packed vertex stream for one chunk. chunkBlocks is that
// chunk's own block slice, chunkCoord is its (cx,cy,cz), and worldBlocks is
// the world's flat per-chunk block storage (as returned by
// voxel.Grid.BlocksView) used to resolve neighbors across chunk boundaries.
func Build(cfg voxelcfg.Config, chunkBlocks []voxel.Block, chunkCoord [3]int, worldBlocks [][]voxel.Block) []Vertex {
	size := cfg.ChunkSize
	cx, cy, cz := chunkCoord[0], chunkCoord[1], chunkCoord[2]

	// True worst case is 6 faces * 6 vertices per voxel (an isolated voxel
	// surrounded by void shows all 6 faces). Preallocating this avoids
	// reallocation inside the hot loop without relying on the source's
	// narrower (and, for an isolated voxel, incorrect) 18-vertex budget.
	out := make([]Vertex, 0, cfg.ChunkVolume()*36)

	isVoid := func(wx, wy, wz int) bool {
		ccx, ccy, ccz, lx, ly, lz := voxel.WorldToChunkLocal(cfg, wx, wy, wz)
		if !voxel.InWorldBounds(cfg, ccx, ccy, ccz) {
			return true
		}
		idx := voxel.ChunkIndex(cfg, ccx, ccy, ccz)
		return worldBlocks[idx][voxel.LocalIndex(cfg, lx, ly, lz)] == 0
	}
	voidBit := func(wx, wy, wz int) int {
		if isVoid(wx, wy, wz) {
			return 1
		}
		return 0
	}

	getAO := func(wx, wy, wz int, pl plane) (ao0, ao1, ao2, ao3 int) {
		var a, b, c, d, e, f, g, h int
		switch pl {
		case planeY:
			a = voidBit(wx, wy, wz-1)
			b = voidBit(wx-1, wy, wz-1)
			c = voidBit(wx-1, wy, wz)
			d = voidBit(wx-1, wy, wz+1)
			e = voidBit(wx, wy, wz+1)
			f = voidBit(wx+1, wy, wz+1)
			g = voidBit(wx+1, wy, wz)
			h = voidBit(wx+1, wy, wz-1)
		case planeX:
			a = voidBit(wx, wy, wz-1)
			b = voidBit(wx, wy-1, wz-1)
			c = voidBit(wx, wy-1, wz)
			d = voidBit(wx, wy-1, wz+1)
			e = voidBit(wx, wy, wz+1)
			f = voidBit(wx, wy+1, wz+1)
			g = voidBit(wx, wy+1, wz)
			h = voidBit(wx, wy+1, wz-1)
		default: // planeZ
			a = voidBit(wx-1, wy, wz)
			b = voidBit(wx-1, wy-1, wz)
			c = voidBit(wx, wy-1, wz)
			d = voidBit(wx+1, wy-1, wz)
			e = voidBit(wx+1, wy, wz)
			f = voidBit(wx+1, wy+1, wz)
			g = voidBit(wx, wy+1, wz)
			h = voidBit(wx-1, wy+1, wz)
		}
		return a + b + c, g + h + a, e + f + g, c + d + e
	}

	flipOf := func(ao0, ao1, ao2, ao3 int) int {
		if ao1+ao3 > ao0+ao2 {
			return 1
		}
		return 0
	}

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				id := chunkBlocks[voxel.LocalIndex(cfg, x, y, z)]
				if id == 0 {
					continue
				}

				wx, wy, wz := x+cx*size, y+cy*size, z+cz*size

				// Top (+Y)
				if isVoid(wx, wy+1, wz) {
					ao0, ao1, ao2, ao3 := getAO(wx, wy+1, wz, planeY)
					flip := flipOf(ao0, ao1, ao2, ao3)
					v0 := Pack(x, y+1, z, id, FaceTop, ao0, flip)
					v1 := Pack(x+1, y+1, z, id, FaceTop, ao1, flip)
					v2 := Pack(x+1, y+1, z+1, id, FaceTop, ao2, flip)
					v3 := Pack(x, y+1, z+1, id, FaceTop, ao3, flip)
					if flip == 1 {
						out = append(out, v1, v0, v3, v1, v3, v2)
					} else {
						out = append(out, v0, v3, v2, v0, v2, v1)
					}
				}

				// Bottom (-Y)
				if isVoid(wx, wy-1, wz) {
					ao0, ao1, ao2, ao3 := getAO(wx, wy-1, wz, planeY)
					flip := flipOf(ao0, ao1, ao2, ao3)
					v0 := Pack(x, y, z, id, FaceBottom, ao0, flip)
					v1 := Pack(x+1, y, z, id, FaceBottom, ao1, flip)
					v2 := Pack(x+1, y, z+1, id, FaceBottom, ao2, flip)
					v3 := Pack(x, y, z+1, id, FaceBottom, ao3, flip)
					if flip == 1 {
						out = append(out, v1, v3, v0, v1, v2, v3)
					} else {
						out = append(out, v0, v2, v3, v0, v1, v2)
					}
				}

				// Right (+X)
				if isVoid(wx+1, wy, wz) {
					ao0, ao1, ao2, ao3 := getAO(wx+1, wy, wz, planeX)
					flip := flipOf(ao0, ao1, ao2, ao3)
					v0 := Pack(x+1, y, z, id, FaceRight, ao0, flip)
					v1 := Pack(x+1, y+1, z, id, FaceRight, ao1, flip)
					v2 := Pack(x+1, y+1, z+1, id, FaceRight, ao2, flip)
					v3 := Pack(x+1, y, z+1, id, FaceRight, ao3, flip)
					if flip == 1 {
						out = append(out, v3, v0, v1, v3, v1, v2)
					} else {
						out = append(out, v0, v1, v2, v0, v2, v3)
					}
				}

				// Left (-X)
				if isVoid(wx-1, wy, wz) {
					ao0, ao1, ao2, ao3 := getAO(wx-1, wy, wz, planeX)
					flip := flipOf(ao0, ao1, ao2, ao3)
					v0 := Pack(x, y, z, id, FaceLeft, ao0, flip)
					v1 := Pack(x, y+1, z, id, FaceLeft, ao1, flip)
					v2 := Pack(x, y+1, z+1, id, FaceLeft, ao2, flip)
					v3 := Pack(x, y, z+1, id, FaceLeft, ao3, flip)
					if flip == 1 {
						out = append(out, v3, v1, v0, v3, v2, v1)
					} else {
						out = append(out, v0, v2, v1, v0, v3, v2)
					}
				}

				// Front (+Z)
				if isVoid(wx, wy, wz+1) {
					ao0, ao1, ao2, ao3 := getAO(wx, wy, wz+1, planeZ)
					flip := flipOf(ao0, ao1, ao2, ao3)
					v0 := Pack(x, y, z+1, id, FaceFront, ao0, flip)
					v1 := Pack(x, y+1, z+1, id, FaceFront, ao1, flip)
					v2 := Pack(x+1, y+1, z+1, id, FaceFront, ao2, flip)
					v3 := Pack(x+1, y, z+1, id, FaceFront, ao3, flip)
					if flip == 1 {
						out = append(out, v3, v1, v0, v3, v2, v1)
					} else {
						out = append(out, v0, v2, v1, v0, v3, v2)
					}
				}

				// Back (-Z)
				if isVoid(wx, wy, wz-1) {
					ao0, ao1, ao2, ao3 := getAO(wx, wy, wz-1, planeZ)
					flip := flipOf(ao0, ao1, ao2, ao3)
					v0 := Pack(x, y, z, id, FaceBack, ao0, flip)
					v1 := Pack(x, y+1, z, id, FaceBack, ao1, flip)
					v2 := Pack(x+1, y+1, z, id, FaceBack, ao2, flip)
					v3 := Pack(x+1, y, z, id, FaceBack, ao3, flip)
					if flip == 1 {
						out = append(out, v3, v0, v1, v3, v1, v2)
					} else {
						out = append(out, v0, v1, v2, v0, v2, v3)
					}
				}
			}
		}
	}

	return out
}
