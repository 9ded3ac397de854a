// Command voxeldemo drives the voxel core headlessly: it builds a world,
// meshes every chunk, then runs a handful of simulated frames of raycast,
// edit and rebuild, logging what happened at each step. It never opens a
// window or issues a GPU call — that boundary belongs to a real renderer
// implementing meshio.Uploader.
package main

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/basis"
	"voxelcore/internal/frustum"
	"voxelcore/internal/meshbuild"
	"voxelcore/internal/raycast"
	"voxelcore/internal/terrain"
	"voxelcore/internal/voxel"
	"voxelcore/internal/voxelcfg"
)

func main() {
	cfg := voxelcfg.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	grid := voxel.NewGrid(cfg)

	gen := terrain.NewGenerator(1)
	terrain.Populate(grid, gen.HeightAt)

	rebuildChunk := func(index int) {
		chunk := grid.ChunkByIndex(index)
		verts := meshbuild.Build(cfg, chunk.Blocks, [3]int{chunk.CX, chunk.CY, chunk.CZ}, grid.BlocksView())
		chunk.Mesh = verts
	}

	solid := 0
	totalVerts := 0
	for _, chunk := range grid.Chunks() {
		rebuildChunk(chunk.Index)
		if !chunk.IsEmpty() {
			solid++
		}
		totalVerts += len(chunk.Mesh.([]meshbuild.Vertex))
	}
	log.Printf("world built: %d chunks, %d non-empty, %d total vertices", cfg.WorldVolume(), solid, totalVerts)

	ft := frustum.New(cfg)
	handler := raycast.NewBlockHandler(cfg, grid)

	eye := mgl32.Vec3{
		float32(cfg.WorldWidth*cfg.ChunkSize) / 2,
		float32(cfg.ChunkSize) * 1.5,
		float32(cfg.WorldDepth*cfg.ChunkSize) / 2,
	}
	forward := mgl32.Vec3{0, -0.3, 1}.Normalize()

	eyeBasis := basis.New(eye, forward)
	visible := 0
	for _, chunk := range grid.Chunks() {
		if ft.IsVisible(chunk.Center(), cfg.ChunkSphereRadius(), eyeBasis) {
			visible++
		}
	}
	log.Printf("frustum pass: %d/%d chunks visible from eye=%v forward=%v", visible, cfg.WorldVolume(), eye, forward)

	for frame := 0; frame < 4; frame++ {
		handler.Update(eye, forward)
		hit, ok := handler.Hit()
		if !ok {
			log.Printf("frame %d: raycast miss", frame)
			continue
		}
		log.Printf("frame %d: hit block=%d at world=%v normal=%+v", frame, hit.BlockID, hit.WorldPos, hit.Normal)

		if frame%2 == 0 {
			handler.SwitchMode()
		}
		rebuilds := handler.SetBlock()
		for _, idx := range rebuilds.Indices() {
			rebuildChunk(idx)
		}
		log.Printf("frame %d: mode=%v edit triggered %d chunk rebuild(s)", frame, handler.Mode, len(rebuilds.Indices()))
	}
}
