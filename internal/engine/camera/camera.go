// Package camera provides the orbit camera used by the model viewer.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera rotates around a center point at a given distance.
type OrbitCamera struct {
	Center    mgl32.Vec3
	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera with viewer defaults.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        8,
		RotationX:       0.35,
		FOV:             45,
		Near:            0.1,
		Far:             100,
		MinDistance:     1,
		MaxDistance:     200,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sx, cx := gomath.Sincos(float64(c.RotationX))
	sy, cy := gomath.Sincos(float64(c.RotationY))
	d := float64(c.Distance)
	return c.Center.Add(mgl32.Vec3{
		float32(d * cx * sy),
		float32(d * sx),
		float32(d * cx * cy),
	})
}

// ViewMatrix returns the look-at matrix for the current orbit.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns a perspective projection for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix())
}

// HandleDrag rotates the camera by a mouse delta in pixels.
func (c *OrbitCamera) HandleDrag(dx, dy float32) {
	c.RotationY -= dx * c.DragSensitivity
	c.RotationX = mgl32.Clamp(c.RotationX+dy*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom moves the camera closer for positive wheel deltas.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = mgl32.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// Orbit advances the yaw by a fixed angle.
func (c *OrbitCamera) Orbit(radians float32) {
	c.RotationY += radians
}

// FitToBounds centers the camera on a box and backs off until it is in view.
func (c *OrbitCamera) FitToBounds(lo, hi mgl32.Vec3) {
	c.Center = lo.Add(hi).Mul(0.5)

	size := hi.Sub(lo)
	extent := max(size.X(), size.Y(), size.Z())
	half := float64(mgl32.DegToRad(c.FOV)) / 2
	dist := float32(float64(extent) / 2 / gomath.Tan(half))

	c.Distance = mgl32.Clamp(dist*1.2, c.MinDistance, c.MaxDistance)
	c.Far = max(c.Far, c.Distance*4)
	c.RotationX = 0.35
	c.RotationY = 0
}
