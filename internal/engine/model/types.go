// Package model builds render-ready meshes from OBJ models and resolves their materials.
package model

import (
	"path/filepath"

	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/pkg/math"
)

// Mesh is a non-indexed triangle mesh: every triangle corner is its own vertex.
// Positions, TexCoords, Normals and Indices always have the same length.
type Mesh struct {
	Positions []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Indices   []uint16 // identity sequence 0..N-1
	Bounds    Bounds
}

// VertexCount returns the number of expanded vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Positions) / 3
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// BuildOptions contains options for mesh building.
type BuildOptions struct {
	// SynthesizeTexCoords gives every corner (0,0) when the file has no vt
	// records instead of failing with ErrIndexOutOfRange.
	SynthesizeTexCoords bool
}

// MaterialRef names a material library next to the model.
type MaterialRef struct {
	BaseDir string
	LibName string
}

// Path returns the material library path.
func (r MaterialRef) Path() string {
	return filepath.Join(r.BaseDir, r.LibName)
}

// TextureRef names a diffuse texture next to the model.
// An empty FileName means the placeholder texture is used.
type TextureRef struct {
	BaseDir  string
	FileName string
}

// Path returns the texture path, or "" for the placeholder.
func (r TextureRef) Path() string {
	if r.FileName == "" {
		return ""
	}
	return filepath.Join(r.BaseDir, r.FileName)
}

// IsPlaceholder reports whether no diffuse map was named.
func (r TextureRef) IsPlaceholder() bool {
	return r.FileName == ""
}

// Model is the result of a successful load, owned by the caller.
type Model struct {
	Index   int
	Path    string
	Mesh    *Mesh
	Texture TextureRef

	// Diffuse holds the placeholder until the texture has been decoded.
	Diffuse *texture.Handle
}

// VertexStride is the number of floats per vertex in Interleaved output.
const VertexStride = 8

// Interleaved packs the mesh as position, normal, texcoord per vertex.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*VertexStride)
	for i, p := range m.Positions {
		pos, n, uv := p.Array(), m.Normals[i].Array(), m.TexCoords[i].Array()
		out = append(out, pos[:]...)
		out = append(out, n[:]...)
		out = append(out, uv[:]...)
	}
	return out
}
