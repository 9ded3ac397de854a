// Package meshio defines the boundary between the core and the (external,
// out-of-scope per spec.md §1) GPU renderer: the interface the render driver
// implements to accept a chunk's packed vertex stream, and the opaque handle
// a chunk holds for its currently uploaded mesh.
package meshio

import "github.com/go-gl/mathgl/mgl32"

// Handle is an opaque descriptor of a chunk's uploaded vertex stream. The
// core never inspects it — it only stores whatever the Uploader returns.
type Handle any

// Uploader is implemented by the render driver. UploadMesh uploads a packed
// vertex stream (vertex_stride=4, format "u32 packed" per spec.md §6),
// replacing any prior mesh for that handle, and returns the (possibly
// updated) handle. DrawChunk submits the chunk for rendering with the given
// model matrix, built by the caller as translate(chunk_coord * CHUNK_SIZE).
type Uploader interface {
	UploadMesh(prev Handle, vertices []uint32) Handle
	DrawChunk(h Handle, modelMatrix mgl32.Mat4)
}
