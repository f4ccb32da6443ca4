package model

import (
	"fmt"

	"github.com/Faultbox/objview/pkg/formats"
	"github.com/Faultbox/objview/pkg/math"
)

// BuildMesh expands the indexed corners of obj into a flat Mesh.
// Shared corners are not merged; corner i becomes vertex i.
func BuildMesh(obj *formats.OBJ, opts BuildOptions) (*Mesh, error) {
	// Limits are checked before anything is allocated
	if err := CheckLimits(len(obj.Positions), len(obj.Corners)); err != nil {
		return nil, err
	}

	n := len(obj.Corners)
	synthUV := opts.SynthesizeTexCoords && len(obj.TexCoords) == 0

	mesh := &Mesh{
		Positions: make([]math.Vec3, n),
		TexCoords: make([]math.Vec2, n),
		Normals:   make([]math.Vec3, n),
		Indices:   make([]uint16, n),
	}

	for i, c := range obj.Corners {
		if err := checkIndex("position", i, c.Position, len(obj.Positions)); err != nil {
			return nil, err
		}
		if err := checkIndex("normal", i, c.Normal, len(obj.Normals)); err != nil {
			return nil, err
		}
		if !synthUV {
			if err := checkIndex("texture coordinate", i, c.TexCoord, len(obj.TexCoords)); err != nil {
				return nil, err
			}
			mesh.TexCoords[i] = obj.TexCoords[c.TexCoord]
		}

		mesh.Positions[i] = obj.Positions[c.Position]
		mesh.Normals[i] = obj.Normals[c.Normal]
		mesh.Indices[i] = uint16(i)
	}

	mesh.Bounds = computeBounds(mesh.Positions)
	return mesh, nil
}

// checkIndex reports a zero-based idx outside [0, count) using the file's one-based numbering.
func checkIndex(kind string, corner, idx, count int) error {
	if idx >= 0 && idx < count {
		return nil
	}
	return fmt.Errorf("%w: triangle %d corner %d references %s %d, file has %d",
		ErrIndexOutOfRange, corner/3+1, corner%3+1, kind, idx+1, count)
}

func computeBounds(positions []math.Vec3) Bounds {
	if len(positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}
