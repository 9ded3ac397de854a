// Package voxelcfg holds the engine's single immutable configuration value.
//
// The source this engine is modeled on kept chunk size, world bounds and FOV
// as package-level globals. Here they live in one Config built once at
// startup and passed by value to every component that needs it.
package voxelcfg

import (
	"errors"
	"fmt"
	"math"
)

// ErrChunkSizeTooLarge is returned when ChunkSize cannot fit the mesh
// builder's 6-bit packed coordinate fields (0..63).
var ErrChunkSizeTooLarge = errors.New("voxelcfg: chunk size exceeds packed coordinate range (max 63)")

// ErrInvalidWorldBounds is returned when any world dimension is non-positive.
var ErrInvalidWorldBounds = errors.New("voxelcfg: world dimensions must be positive")

// ErrInvalidRayDistance is returned when MaxRayDistance is not positive.
var ErrInvalidRayDistance = errors.New("voxelcfg: max ray distance must be positive")

// Config is the engine's immutable configuration. Build one with Default
// (adjusting fields as needed), call Validate, and pass it by value from then
// on.
type Config struct {
	ChunkSize int // edge length in voxels, must be in [1,63]

	WorldWidth  int // chunks on X
	WorldHeight int // chunks on Y
	WorldDepth  int // chunks on Z

	MaxRayDistance float32 // voxel units

	FOVDeg  float32
	Aspect  float32
	Near    float32
	Far     float32
	PitchMaxDeg float32
}

// Default returns the engine's reference configuration: CHUNK_SIZE=48,
// a 10x2x10 world, MAX_RAY_DISTANCE=6, and a 50deg FOV at 16:9.
func Default() Config {
	return Config{
		ChunkSize:      48,
		WorldWidth:     10,
		WorldHeight:    2,
		WorldDepth:     10,
		MaxRayDistance: 6.0,
		FOVDeg:         50,
		Aspect:         16.0 / 9.0,
		Near:           0.1,
		Far:            2000.0,
		PitchMaxDeg:    89.0,
	}
}

// ChunkArea returns CHUNK_SIZE^2.
func (c Config) ChunkArea() int { return c.ChunkSize * c.ChunkSize }

// ChunkVolume returns CHUNK_SIZE^3.
func (c Config) ChunkVolume() int { return c.ChunkArea() * c.ChunkSize }

// WorldArea returns WORLD_WIDTH*WORLD_DEPTH.
func (c Config) WorldArea() int { return c.WorldWidth * c.WorldDepth }

// WorldVolume returns the total chunk count.
func (c Config) WorldVolume() int { return c.WorldArea() * c.WorldHeight }

// ChunkSphereRadius returns (CHUNK_SIZE/2)*sqrt(3), the bounding-sphere
// radius used by the frustum tester.
func (c Config) ChunkSphereRadius() float32 {
	half := float32(c.ChunkSize) / 2.0
	return half * float32(math.Sqrt(3))
}

// VFOVRadians returns the vertical field of view in radians.
func (c Config) VFOVRadians() float32 {
	return float32(c.FOVDeg) * (math.Pi / 180.0)
}

// HFOVRadians returns the horizontal field of view derived from VFOV and
// aspect, matching the source's 2*atan(tan(vfov/2)*aspect) derivation.
func (c Config) HFOVRadians() float32 {
	half := c.VFOVRadians() / 2.0
	return 2.0 * float32(math.Atan(float64(float32(math.Tan(float64(half)))*c.Aspect)))
}

// PitchMaxRadians returns the pitch clamp in radians.
func (c Config) PitchMaxRadians() float32 {
	return c.PitchMaxDeg * (math.Pi / 180.0)
}

// Validate checks the invariants the rest of the engine assumes hold.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 || c.ChunkSize > 63 {
		return fmt.Errorf("%w: got %d", ErrChunkSizeTooLarge, c.ChunkSize)
	}
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 || c.WorldDepth <= 0 {
		return fmt.Errorf("%w: got (%d,%d,%d)", ErrInvalidWorldBounds, c.WorldWidth, c.WorldHeight, c.WorldDepth)
	}
	if c.MaxRayDistance <= 0 {
		return fmt.Errorf("%w: got %f", ErrInvalidRayDistance, c.MaxRayDistance)
	}
	return nil
}
