// Package basis holds the minimal orientation data the core consumes from
// the (out-of-scope) camera/input layer: an eye position and an orthonormal
// right/up/forward basis. Nothing here computes view or projection matrices
// — that belongs to the external renderer, per spec.md §1.
package basis

import "github.com/go-gl/mathgl/mgl32"

// Basis is the camera state the raycast and frustum tester need: a position
// plus an orthonormal (right, up, forward) frame.
type Basis struct {
	Eye     mgl32.Vec3
	Forward mgl32.Vec3
	Right   mgl32.Vec3
	Up      mgl32.Vec3
}

// New builds a Basis from an eye position and forward vector, deriving
// right/up the way the teacher's camera does (internal/camera/camera.go,
// updateCameraVectors): right = forward x worldUp, up = right x forward.
func New(eye, forward mgl32.Vec3) Basis {
	f := forward.Normalize()
	worldUp := mgl32.Vec3{0, 1, 0}
	right := f.Cross(worldUp).Normalize()
	up := right.Cross(f).Normalize()
	return Basis{Eye: eye, Forward: f, Right: right, Up: up}
}
