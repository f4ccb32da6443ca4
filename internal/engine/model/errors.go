package model

import "errors"

// Model loading errors.
var (
	ErrFileNotFound         = errors.New("model file not found")
	ErrIndexOutOfRange      = errors.New("face index out of range")
	ErrMeshTooLarge         = errors.New("mesh too large")
	ErrMaterialFileNotFound = errors.New("material file not found")
)
