package terrain

import "voxelcore/internal/voxel"

// Populate fills every chunk in g with solid voxels up to HeightAt(wx,wz) for
// each column, then recomputes each chunk's IsEmpty flag. This is the
// world's build phase: every chunk's blocks must be written before any
// chunk's mesh is built, since the mesh builder reads across chunk
// boundaries (package meshbuild).
func Populate(g *voxel.Grid, hf HeightFunc) {
	cfg := g.Config()

	for _, chunk := range g.Chunks() {
		baseX := chunk.CX * cfg.ChunkSize
		baseY := chunk.CY * cfg.ChunkSize
		baseZ := chunk.CZ * cfg.ChunkSize

		for lx := 0; lx < cfg.ChunkSize; lx++ {
			for lz := 0; lz < cfg.ChunkSize; lz++ {
				wx := baseX + lx
				wz := baseZ + lz
				height := hf(wx, wz)

				for ly := 0; ly < cfg.ChunkSize; ly++ {
					wy := baseY + ly
					if wy >= height {
						continue
					}
					chunk.Blocks[voxel.LocalIndex(cfg, lx, ly, lz)] = BlockID(wy)
				}
			}
		}

		chunk.RecomputeEmpty()
	}
}
