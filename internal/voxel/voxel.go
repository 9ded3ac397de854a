// Package voxel owns the world's block storage: a flat, world-wide array of
// voxel ids sliced per chunk, plus the chunk and grid types built on top of
// it. The flat layout is deliberate — it lets the mesh builder (package
// meshbuild) resolve any neighboring voxel, across a chunk boundary, with two
// integer divisions instead of a neighbor-chunk lookup table.
package voxel

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/voxelcfg"
)

// Block is an opaque voxel id. Zero means empty (void); any non-zero value is
// solid. The engine core never interprets a non-zero value beyond "solid".
type Block = uint8

// ChunkIndex returns the index of the chunk at (cx,cy,cz) into a
// world-volume-sized slice, per spec: cx + WORLD_WIDTH*cz + WORLD_AREA*cy.
func ChunkIndex(cfg voxelcfg.Config, cx, cy, cz int) int {
	return cx + cfg.WorldWidth*cz + cfg.WorldArea()*cy
}

// InWorldBounds reports whether a chunk coordinate lies inside the world box.
func InWorldBounds(cfg voxelcfg.Config, cx, cy, cz int) bool {
	return cx >= 0 && cx < cfg.WorldWidth &&
		cy >= 0 && cy < cfg.WorldHeight &&
		cz >= 0 && cz < cfg.WorldDepth
}

// LocalIndex returns the index of the voxel at local coordinate (lx,ly,lz)
// inside a chunk's block slice, per spec: lx + CHUNK_SIZE*lz + CHUNK_AREA*ly.
// Y varies slowest, then Z, then X fastest.
func LocalIndex(cfg voxelcfg.Config, lx, ly, lz int) int {
	return lx + cfg.ChunkSize*lz + cfg.ChunkArea()*ly
}

// LocalCoord decodes a local block index back into (lx,ly,lz). It is the
// exact inverse of LocalIndex and exists so index round-trips are testable.
func LocalCoord(cfg voxelcfg.Config, index int) (lx, ly, lz int) {
	ly = index / cfg.ChunkArea()
	rem := index % cfg.ChunkArea()
	lz = rem / cfg.ChunkSize
	lx = rem % cfg.ChunkSize
	return
}

// InChunkBounds reports whether a local coordinate lies inside one chunk.
func InChunkBounds(cfg voxelcfg.Config, lx, ly, lz int) bool {
	return lx >= 0 && lx < cfg.ChunkSize &&
		ly >= 0 && ly < cfg.ChunkSize &&
		lz >= 0 && lz < cfg.ChunkSize
}

// WorldToChunkLocal splits a world voxel coordinate into its owning chunk
// coordinate and the local coordinate within that chunk. Division floors
// towards negative infinity so coordinates outside [0, world) still decompose
// consistently (needed by the raycast, which can probe just past the world
// edge before the loop terminates).
func WorldToChunkLocal(cfg voxelcfg.Config, wx, wy, wz int) (cx, cy, cz, lx, ly, lz int) {
	size := cfg.ChunkSize
	cx, lx = floorDivMod(wx, size)
	cy, ly = floorDivMod(wy, size)
	cz, lz = floorDivMod(wz, size)
	return
}

func floorDivMod(a, b int) (q, r int) {
	q = a / b
	r = a % b
	if r < 0 {
		q--
		r += b
	}
	return
}

// Grid is the fixed-size world of chunks and its backing block storage.
type Grid struct {
	cfg    voxelcfg.Config
	blocks [][]Block // world_blocks[chunk_index][local_index]
	chunks []*Chunk
}

// NewGrid allocates a zero-initialized world: WorldVolume chunks of
// ChunkVolume voxels each, and a Chunk wrapper over every chunk's slice.
func NewGrid(cfg voxelcfg.Config) *Grid {
	volume := cfg.WorldVolume()
	chunkVol := cfg.ChunkVolume()

	g := &Grid{
		cfg:    cfg,
		blocks: make([][]Block, volume),
		chunks: make([]*Chunk, volume),
	}

	for cy := 0; cy < cfg.WorldHeight; cy++ {
		for cz := 0; cz < cfg.WorldDepth; cz++ {
			for cx := 0; cx < cfg.WorldWidth; cx++ {
				idx := ChunkIndex(cfg, cx, cy, cz)
				g.blocks[idx] = make([]Block, chunkVol)
				g.chunks[idx] = newChunk(cfg, cx, cy, cz, g.blocks[idx])
			}
		}
	}

	return g
}

// Config returns the grid's configuration.
func (g *Grid) Config() voxelcfg.Config { return g.cfg }

// Chunk returns the chunk at (cx,cy,cz), or nil if out of world bounds.
func (g *Grid) Chunk(cx, cy, cz int) *Chunk {
	if !InWorldBounds(g.cfg, cx, cy, cz) {
		return nil
	}
	return g.chunks[ChunkIndex(g.cfg, cx, cy, cz)]
}

// ChunkByIndex returns the chunk at a precomputed chunk index.
func (g *Grid) ChunkByIndex(index int) *Chunk { return g.chunks[index] }

// Chunks returns every chunk in the grid, in storage order (Y-major).
func (g *Grid) Chunks() []*Chunk { return g.chunks }

// BlocksView returns the raw world block storage, for read-only use by the
// mesh builder's cross-chunk neighbor lookups.
func (g *Grid) BlocksView() [][]Block { return g.blocks }

// BlockAt reads the voxel at a world coordinate. Out-of-world coordinates
// read as void (0), never as an error — spec.md §7 requires this.
func (g *Grid) BlockAt(wx, wy, wz int) Block {
	cx, cy, cz, lx, ly, lz := WorldToChunkLocal(g.cfg, wx, wy, wz)
	if !InWorldBounds(g.cfg, cx, cy, cz) {
		return 0
	}
	idx := ChunkIndex(g.cfg, cx, cy, cz)
	return g.blocks[idx][LocalIndex(g.cfg, lx, ly, lz)]
}

// SetBlockAt writes a voxel at a world coordinate and refreshes the owning
// chunk's IsEmpty flag. It is a no-op for out-of-world coordinates. It does
// not rebuild any mesh — that is the block handler's job.
func (g *Grid) SetBlockAt(wx, wy, wz int, id Block) {
	cx, cy, cz, lx, ly, lz := WorldToChunkLocal(g.cfg, wx, wy, wz)
	if !InWorldBounds(g.cfg, cx, cy, cz) {
		return
	}
	ch := g.Chunk(cx, cy, cz)
	ch.SetLocal(lx, ly, lz, id)
}

// Chunk is a fixed CHUNK_SIZE^3 cube of voxels: a slice into the grid's flat
// storage, a translation to world space, and a mesh handle populated by
// whoever builds its mesh (package meshbuild / raycast never does this
// itself — the driver does, per spec.md's frame order).
type Chunk struct {
	cfg voxelcfg.Config

	CX, CY, CZ int // chunk coordinate
	Index      int // this chunk's index into the grid's storage

	Blocks []Block // == grid.blocks[Index], never reassigned or relocated

	isEmpty bool

	// Mesh is the opaque handle of the chunk's currently uploaded vertex
	// stream. nil until the first mesh build.
	Mesh any
}

func newChunk(cfg voxelcfg.Config, cx, cy, cz int, blocks []Block) *Chunk {
	return &Chunk{
		cfg:     cfg,
		CX:      cx,
		CY:      cy,
		CZ:      cz,
		Index:   ChunkIndex(cfg, cx, cy, cz),
		Blocks:  blocks,
		isEmpty: true,
	}
}

// Translation returns the chunk's model-to-world translation, chunk_coord *
// CHUNK_SIZE, in world voxel units.
func (c *Chunk) Translation() mgl32.Vec3 {
	size := float32(c.cfg.ChunkSize)
	return mgl32.Vec3{float32(c.CX) * size, float32(c.CY) * size, float32(c.CZ) * size}
}

// Center returns (chunk_coord + 0.5) * CHUNK_SIZE, used by the frustum
// tester as the chunk's bounding-sphere center.
func (c *Chunk) Center() mgl32.Vec3 {
	size := float32(c.cfg.ChunkSize)
	return mgl32.Vec3{
		(float32(c.CX) + 0.5) * size,
		(float32(c.CY) + 0.5) * size,
		(float32(c.CZ) + 0.5) * size,
	}
}

// IsEmpty reports whether every voxel in the chunk is zero, as of the last
// RecomputeEmpty call (done at generation time, and after every edit).
func (c *Chunk) IsEmpty() bool { return c.isEmpty }

// RecomputeEmpty scans the chunk's blocks and refreshes IsEmpty. Called once
// after terrain generation and again after any edit that might change it.
func (c *Chunk) RecomputeEmpty() {
	for _, b := range c.Blocks {
		if b != 0 {
			c.isEmpty = false
			return
		}
	}
	c.isEmpty = true
}

// LocalBlock reads a voxel at a local coordinate inside this chunk.
func (c *Chunk) LocalBlock(lx, ly, lz int) Block {
	return c.Blocks[LocalIndex(c.cfg, lx, ly, lz)]
}

// SetLocal writes a voxel at a local coordinate inside this chunk and
// refreshes IsEmpty.
func (c *Chunk) SetLocal(lx, ly, lz int, id Block) {
	c.Blocks[LocalIndex(c.cfg, lx, ly, lz)] = id
	c.RecomputeEmpty()
}
