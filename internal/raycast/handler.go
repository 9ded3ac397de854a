package raycast

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/basis"
	"voxelcore/internal/voxel"
	"voxelcore/internal/voxelcfg"
)

// InteractionMode selects what set_block does: Remove clears the targeted
// voxel, Add writes NewBlockID into the cell across the targeted face.
type InteractionMode int

const (
	ModeRemove InteractionMode = 0
	ModeAdd    InteractionMode = 1
)

// BlockHandler owns the currently targeted block (refreshed by Update every
// frame) and the add/remove/switch-mode verbs spec.md §4.3 requires. It
// triggers mesh rebuilds of the owning chunk plus any cross-boundary
// neighbor whose face depends on the edited voxel, but it does not build
// meshes itself — AddBlock, RemoveBlock and SetBlock return the set of
// chunks the caller must rebuild.
type BlockHandler struct {
	cfg voxelcfg.Config
	g   *voxel.Grid

	hit    Hit
	hasHit bool

	Mode       InteractionMode
	NewBlockID voxel.Block
}

// NewBlockHandler builds a handler bound to a grid. NewBlockID defaults to 1,
// matching spec.md's default.
func NewBlockHandler(cfg voxelcfg.Config, g *voxel.Grid) *BlockHandler {
	return &BlockHandler{cfg: cfg, g: g, Mode: ModeRemove, NewBlockID: 1}
}

// Update runs the raycast from the given eye/forward and refreshes the
// targeted-block state. Call this once per frame before any edit.
func (h *BlockHandler) Update(eye, forward mgl32.Vec3) {
	hit, ok := Cast(h.cfg, h.g, basis.New(eye, forward))
	h.hit = hit
	h.hasHit = ok
}

// Hit reports the current targeted block, if any.
func (h *BlockHandler) Hit() (Hit, bool) { return h.hit, h.hasHit }

// SwitchMode toggles the interaction mode between remove and add.
func (h *BlockHandler) SwitchMode() {
	if h.Mode == ModeRemove {
		h.Mode = ModeAdd
	} else {
		h.Mode = ModeRemove
	}
}

// RebuildSet collects chunk indices that need a mesh rebuild, in the order
// they were added, without duplicates.
type RebuildSet struct {
	seen  map[int]bool
	order []int
}

func newRebuildSet() *RebuildSet { return &RebuildSet{seen: map[int]bool{}} }

func (r *RebuildSet) add(index int) {
	if !r.seen[index] {
		r.seen[index] = true
		r.order = append(r.order, index)
	}
}

// Indices returns the collected chunk indices in insertion order.
func (r *RebuildSet) Indices() []int { return r.order }

// SetBlock applies the current interaction mode's edit (add or remove) and
// returns the set of chunks whose mesh must be rebuilt before next render.
// An empty set means the edit was a no-op (raycast miss, or add target
// already occupied / out of world).
func (h *BlockHandler) SetBlock() *RebuildSet {
	if h.Mode == ModeAdd {
		return h.AddBlock()
	}
	return h.RemoveBlock()
}

// RemoveBlock requires a current hit; it clears the targeted voxel and
// rebuilds the owning chunk plus any chunk across a boundary the voxel sat
// on, per spec.md §4.3 and the original's rebuild_adjacent_chunks.
func (h *BlockHandler) RemoveBlock() *RebuildSet {
	out := newRebuildSet()
	if !h.hasHit || h.hit.BlockID == 0 {
		return out
	}

	h.hit.Chunk.SetLocal(h.hit.LocalPos[0], h.hit.LocalPos[1], h.hit.LocalPos[2], 0)
	out.add(h.hit.Chunk.Index)

	lx, ly, lz := h.hit.LocalPos[0], h.hit.LocalPos[1], h.hit.LocalPos[2]
	wx, wy, wz := h.hit.WorldPos[0], h.hit.WorldPos[1], h.hit.WorldPos[2]
	size := h.cfg.ChunkSize

	if lx == 0 {
		h.addNeighborRebuild(out, wx-1, wy, wz)
	} else if lx == size-1 {
		h.addNeighborRebuild(out, wx+1, wy, wz)
	}
	if ly == 0 {
		h.addNeighborRebuild(out, wx, wy-1, wz)
	} else if ly == size-1 {
		h.addNeighborRebuild(out, wx, wy+1, wz)
	}
	if lz == 0 {
		h.addNeighborRebuild(out, wx, wy, wz-1)
	} else if lz == size-1 {
		h.addNeighborRebuild(out, wx, wy, wz+1)
	}

	return out
}

func (h *BlockHandler) addNeighborRebuild(out *RebuildSet, wx, wy, wz int) {
	cx, cy, cz, _, _, _ := voxel.WorldToChunkLocal(h.cfg, wx, wy, wz)
	if !voxel.InWorldBounds(h.cfg, cx, cy, cz) {
		return
	}
	out.add(voxel.ChunkIndex(h.cfg, cx, cy, cz))
}

// AddBlock requires a current hit; it writes NewBlockID into the empty cell
// across the targeted face (block_world_position + block_normal). If that
// cell is occupied or out of world, it is a no-op. Otherwise it rebuilds the
// chunk holding the new voxel plus any chunk across a boundary it sits on.
func (h *BlockHandler) AddBlock() *RebuildSet {
	out := newRebuildSet()
	if !h.hasHit || h.hit.BlockID == 0 {
		return out
	}

	wx := h.hit.WorldPos[0] + h.hit.Normal.X
	wy := h.hit.WorldPos[1] + h.hit.Normal.Y
	wz := h.hit.WorldPos[2] + h.hit.Normal.Z

	cx, cy, cz, lx, ly, lz := voxel.WorldToChunkLocal(h.cfg, wx, wy, wz)
	if !voxel.InWorldBounds(h.cfg, cx, cy, cz) {
		return out
	}

	chunk := h.g.Chunk(cx, cy, cz)
	if chunk.LocalBlock(lx, ly, lz) != 0 {
		return out
	}

	chunk.SetLocal(lx, ly, lz, h.NewBlockID)
	out.add(chunk.Index)

	size := h.cfg.ChunkSize
	for axis, l := range [3]int{lx, ly, lz} {
		var off [3]int
		if l == 0 {
			off[axis] = -1
		} else if l == size-1 {
			off[axis] = 1
		} else {
			continue
		}
		h.addNeighborRebuild(out, wx+off[0], wy+off[1], wz+off[2])
	}
	return out
}

// MarkerModel returns the translate-only model matrix for the block
// placement/removal marker, grounded on original_source's
// utils/block_marker/block_marker.py: it previews the add target when in add
// mode, the hit itself otherwise.
func (h *BlockHandler) MarkerModel() (mgl32.Mat4, bool) {
	if !h.hasHit || h.hit.BlockID == 0 {
		return mgl32.Ident4(), false
	}

	var pos mgl32.Vec3
	if h.Mode == ModeAdd {
		pos = mgl32.Vec3{
			float32(h.hit.WorldPos[0] + h.hit.Normal.X),
			float32(h.hit.WorldPos[1] + h.hit.Normal.Y),
			float32(h.hit.WorldPos[2] + h.hit.Normal.Z),
		}
	} else {
		pos = mgl32.Vec3{float32(h.hit.WorldPos[0]), float32(h.hit.WorldPos[1]), float32(h.hit.WorldPos[2])}
	}

	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()), true
}
