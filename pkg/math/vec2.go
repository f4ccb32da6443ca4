package math

// Vec2 is a 2D vector used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Array returns the components as a fixed array.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}
