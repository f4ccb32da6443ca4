package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/objview/internal/engine/model"
)

// slotSize is the edge length each model is scaled to fit.
const slotSize = 2.0

// slotX returns the X offset of a one-based slot in a row centered on the origin.
func slotX(index, slots int, spacing float32) float32 {
	return (float32(index-1) - float32(slots-1)/2) * spacing
}

// slotTransform centers a model on its slot along X and scales it to slotSize.
func slotTransform(index, slots int, spacing float32, b model.Bounds) mgl32.Mat4 {
	size := b.Size()
	extent := max(size.X, size.Y, size.Z)
	scale := float32(1)
	if extent > 0 {
		scale = slotSize / extent
	}

	c := b.Center()
	return mgl32.Translate3D(slotX(index, slots, spacing), 0, 0).
		Mul4(mgl32.Scale3D(scale, scale, scale)).
		Mul4(mgl32.Translate3D(-c.X, -c.Y, -c.Z))
}

// rowBounds returns the box enclosing every slot.
func rowBounds(slots int, spacing float32) (lo, hi mgl32.Vec3) {
	half := float32(slotSize) / 2
	first := slotX(1, slots, spacing)
	last := slotX(max(slots, 1), slots, spacing)
	return mgl32.Vec3{first - half, -half, -half}, mgl32.Vec3{last + half, half, half}
}
