package model

import "fmt"

// MaxVertices is the exclusive ceiling on both raw positions and expanded
// corners. Meshes are drawn with 16-bit indices.
const MaxVertices = 65000

// CheckLimits fails with ErrMeshTooLarge when either count reaches MaxVertices.
func CheckLimits(rawVertices, corners int) error {
	if rawVertices >= MaxVertices {
		return fmt.Errorf("%w: %d positions, limit is %d", ErrMeshTooLarge, rawVertices, MaxVertices-1)
	}
	if corners >= MaxVertices {
		return fmt.Errorf("%w: %d triangle corners, limit is %d", ErrMeshTooLarge, corners, MaxVertices-1)
	}
	return nil
}
