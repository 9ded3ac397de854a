package meshbuild

import (
	"testing"

	"voxelcore/internal/voxel"
	"voxelcore/internal/voxelcfg"
)

func smallConfig() voxelcfg.Config {
	cfg := voxelcfg.Default()
	cfg.ChunkSize = 4
	cfg.WorldWidth = 3
	cfg.WorldHeight = 3
	cfg.WorldDepth = 3
	return cfg
}

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		x, y, z          int
		blockID          uint8
		faceID, ao, flip int
	}{
		{0, 0, 0, 0, 0, 0, 0},
		{63, 63, 63, 255, 5, 3, 1},
		{1, 2, 3, 7, FaceRight, 2, 0},
		{32, 16, 8, 200, FaceBack, 1, 1},
	}

	for _, c := range cases {
		packed := Pack(c.x, c.y, c.z, c.blockID, c.faceID, c.ao, c.flip)
		x, y, z, id, face, ao, flip := Unpack(packed)
		if x != c.x || y != c.y || z != c.z || id != c.blockID || face != c.faceID || ao != c.ao || flip != c.flip {
			t.Fatalf("round trip mismatch for %+v: got x=%d y=%d z=%d id=%d face=%d ao=%d flip=%d",
				c, x, y, z, id, face, ao, flip)
		}
	}
}

func TestBuildEmptyChunkProducesEmptyMesh(t *testing.T) {
	cfg := smallConfig()
	g := voxel.NewGrid(cfg)
	ch := g.Chunk(1, 1, 1)

	verts := Build(cfg, ch.Blocks, [3]int{1, 1, 1}, g.BlocksView())
	if len(verts) != 0 {
		t.Fatalf("expected no vertices for an empty chunk, got %d", len(verts))
	}
}

func TestBuildFullyEnclosedChunkProducesEmptyMesh(t *testing.T) {
	cfg := smallConfig()
	g := voxel.NewGrid(cfg)

	// Fill the entire world solid: every chunk, including its neighbors, is
	// solid, so the center chunk has no visible faces anywhere.
	for wx := 0; wx < cfg.WorldWidth*cfg.ChunkSize; wx++ {
		for wy := 0; wy < cfg.WorldHeight*cfg.ChunkSize; wy++ {
			for wz := 0; wz < cfg.WorldDepth*cfg.ChunkSize; wz++ {
				g.SetBlockAt(wx, wy, wz, 1)
			}
		}
	}

	ch := g.Chunk(1, 1, 1)
	verts := Build(cfg, ch.Blocks, [3]int{1, 1, 1}, g.BlocksView())
	if len(verts) != 0 {
		t.Fatalf("expected no vertices for a fully enclosed chunk, got %d", len(verts))
	}
}

func TestBuildSingleVoxelProducesSixFaces(t *testing.T) {
	cfg := smallConfig()
	g := voxel.NewGrid(cfg)
	ch := g.Chunk(1, 1, 1)
	ch.SetLocal(2, 2, 2, 9)

	verts := Build(cfg, ch.Blocks, [3]int{1, 1, 1}, g.BlocksView())
	// 6 faces * 6 vertices (2 triangles) per face.
	if len(verts) != 36 {
		t.Fatalf("expected 36 vertices for an isolated voxel, got %d", len(verts))
	}

	seenFaces := map[int]bool{}
	for _, v := range verts {
		_, _, _, _, face, _, _ := Unpack(v)
		seenFaces[face] = true
	}
	for _, f := range []int{FaceTop, FaceBottom, FaceRight, FaceLeft, FaceBack, FaceFront} {
		if !seenFaces[f] {
			t.Errorf("expected face id %d among the isolated voxel's vertices", f)
		}
	}
}

func TestBuildOutOfWorldEdgeIsVisible(t *testing.T) {
	cfg := smallConfig()
	g := voxel.NewGrid(cfg)
	ch := g.Chunk(0, 0, 0)
	ch.SetLocal(0, 0, 0, 1) // sits at the world's negative corner

	verts := Build(cfg, ch.Blocks, [3]int{0, 0, 0}, g.BlocksView())
	// Its -X, -Y and -Z faces face out of the world and count as visible, so
	// all 6 faces (36 vertices) are emitted.
	if len(verts) != 36 {
		t.Fatalf("a voxel at the world edge should emit all 6 faces (36 vertices), including its outward sides, got %d", len(verts))
	}
}

func TestAOAllVoidNeighborsGivesMaxAO(t *testing.T) {
	cfg := smallConfig()
	g := voxel.NewGrid(cfg)
	ch := g.Chunk(1, 1, 1)
	ch.SetLocal(2, 2, 2, 1)

	verts := Build(cfg, ch.Blocks, [3]int{1, 1, 1}, g.BlocksView())
	for _, v := range verts {
		_, _, _, _, _, ao, _ := Unpack(v)
		if ao != 3 {
			t.Fatalf("an isolated voxel's corners should all read ao=3 (fully unoccluded), got %d", ao)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := smallConfig()
	g := voxel.NewGrid(cfg)
	ch := g.Chunk(1, 1, 1)
	ch.SetLocal(1, 1, 1, 1)
	ch.SetLocal(2, 1, 1, 1)
	ch.SetLocal(1, 2, 1, 1)

	v1 := Build(cfg, ch.Blocks, [3]int{1, 1, 1}, g.BlocksView())
	v2 := Build(cfg, ch.Blocks, [3]int{1, 1, 1}, g.BlocksView())

	if len(v1) != len(v2) {
		t.Fatalf("Build should be deterministic, got different vertex counts %d vs %d", len(v1), len(v2))
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatalf("Build should be deterministic, vertex %d differs: %d vs %d", i, v1[i], v2[i])
		}
	}
}

func BenchmarkBuildSolidChunk(b *testing.B) {
	cfg := voxelcfg.Default()
	cfg.ChunkSize = 16
	cfg.WorldWidth, cfg.WorldHeight, cfg.WorldDepth = 3, 3, 3
	g := voxel.NewGrid(cfg)

	ch := g.Chunk(1, 1, 1)
	for i := range ch.Blocks {
		if i%3 != 0 {
			ch.Blocks[i] = 1
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(cfg, ch.Blocks, [3]int{1, 1, 1}, g.BlocksView())
	}
}
