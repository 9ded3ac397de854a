package voxel

import (
	"testing"

	"voxelcore/internal/voxelcfg"
)

func TestLocalIndexRoundTrip(t *testing.T) {
	cfg := voxelcfg.Default()
	for lx := 0; lx < cfg.ChunkSize; lx += 7 {
		for ly := 0; ly < cfg.ChunkSize; ly += 11 {
			for lz := 0; lz < cfg.ChunkSize; lz += 13 {
				idx := LocalIndex(cfg, lx, ly, lz)
				gx, gy, gz := LocalCoord(cfg, idx)
				if gx != lx || gy != ly || gz != lz {
					t.Fatalf("round trip mismatch: in=(%d,%d,%d) idx=%d out=(%d,%d,%d)", lx, ly, lz, idx, gx, gy, gz)
				}
			}
		}
	}
}

func TestWorldToChunkLocalRecombines(t *testing.T) {
	cfg := voxelcfg.Default()
	coords := [][3]int{{0, 0, 0}, {-1, -1, -1}, {cfg.ChunkSize, cfg.ChunkSize, cfg.ChunkSize}, {-cfg.ChunkSize - 1, 5, 100}}
	for _, c := range coords {
		cx, cy, cz, lx, ly, lz := WorldToChunkLocal(cfg, c[0], c[1], c[2])
		if lx < 0 || lx >= cfg.ChunkSize || ly < 0 || ly >= cfg.ChunkSize || lz < 0 || lz >= cfg.ChunkSize {
			t.Fatalf("local coord out of range for world %v: local=(%d,%d,%d)", c, lx, ly, lz)
		}
		wx := cx*cfg.ChunkSize + lx
		wy := cy*cfg.ChunkSize + ly
		wz := cz*cfg.ChunkSize + lz
		if wx != c[0] || wy != c[1] || wz != c[2] {
			t.Fatalf("recombination mismatch for %v: got (%d,%d,%d)", c, wx, wy, wz)
		}
	}
}

func TestGridBlockAtOutOfWorldIsVoid(t *testing.T) {
	cfg := voxelcfg.Default()
	g := NewGrid(cfg)
	if b := g.BlockAt(-1, 0, 0); b != 0 {
		t.Fatalf("expected void at negative coordinate, got %d", b)
	}
	if b := g.BlockAt(cfg.WorldWidth*cfg.ChunkSize+10, 0, 0); b != 0 {
		t.Fatalf("expected void past world edge, got %d", b)
	}
}

func TestGridSetAndReadBackBlock(t *testing.T) {
	cfg := voxelcfg.Default()
	g := NewGrid(cfg)
	g.SetBlockAt(5, 5, 5, 42)
	if b := g.BlockAt(5, 5, 5); b != 42 {
		t.Fatalf("expected 42, got %d", b)
	}
	ch := g.Chunk(0, 0, 0)
	if ch.IsEmpty() {
		t.Fatalf("chunk should no longer be empty after a write")
	}
}

func TestGridSetOutOfWorldIsNoop(t *testing.T) {
	cfg := voxelcfg.Default()
	g := NewGrid(cfg)
	g.SetBlockAt(-5, 0, 0, 9)
	if b := g.BlockAt(-5, 0, 0); b != 0 {
		t.Fatalf("out-of-world write should be a no-op, read back %d", b)
	}
}

func TestRecomputeEmptyGoesBackToTrueAfterRemoval(t *testing.T) {
	cfg := voxelcfg.Default()
	g := NewGrid(cfg)
	ch := g.Chunk(0, 0, 0)
	ch.SetLocal(0, 0, 0, 1)
	if ch.IsEmpty() {
		t.Fatalf("chunk should be non-empty after setting a voxel")
	}
	ch.SetLocal(0, 0, 0, 0)
	if !ch.IsEmpty() {
		t.Fatalf("chunk should be empty again after clearing its only voxel")
	}
}

func TestChunkIndexMatchesGridStorageOrder(t *testing.T) {
	cfg := voxelcfg.Default()
	g := NewGrid(cfg)
	for _, ch := range g.Chunks() {
		if got := ChunkIndex(cfg, ch.CX, ch.CY, ch.CZ); got != ch.Index {
			t.Fatalf("chunk at (%d,%d,%d) has Index=%d, ChunkIndex computed %d", ch.CX, ch.CY, ch.CZ, ch.Index, got)
		}
		if g.ChunkByIndex(ch.Index) != ch {
			t.Fatalf("ChunkByIndex(%d) did not return the same chunk", ch.Index)
		}
	}
}
