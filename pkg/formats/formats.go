// Package formats provides parsers for the Wavefront OBJ and MTL text formats.
package formats

// Note: only the triangulated OBJ subset (v, vn, vt, f, mtllib) is read, see obj.go
// Note: MTL parsing stops at the first diffuse map, see mtl.go
