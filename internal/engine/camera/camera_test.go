package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPositionAtZeroRotation(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX = 0
	c.RotationY = 0
	c.Distance = 5
	c.Center = mgl32.Vec3{1, 2, 3}

	got := c.Position()
	want := mgl32.Vec3{1, 2, 8}
	if !got.ApproxEqual(want) {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("RotationX = %v, want %v", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("RotationX = %v, want %v", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoom(t *testing.T) {
	tests := []struct {
		name  string
		delta float32
		check func(before, after float32) bool
	}{
		{"in", 1, func(b, a float32) bool { return a < b }},
		{"out", -1, func(b, a float32) bool { return a > b }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			before := c.Distance
			c.HandleZoom(tt.delta)
			if !tt.check(before, c.Distance) {
				t.Errorf("distance %v -> %v", before, c.Distance)
			}
		})
	}

	c := NewOrbitCamera()
	for i := 0; i < 200; i++ {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want clamp to %v", c.Distance, c.MinDistance)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(mgl32.Vec3{-6, -1, -1}, mgl32.Vec3{6, 1, 1})

	if !c.Center.ApproxEqual(mgl32.Vec3{}) {
		t.Errorf("Center = %v, want origin", c.Center)
	}
	if c.Distance <= 6 {
		t.Errorf("Distance = %v, want past the half extent", c.Distance)
	}
	if c.Far < c.Distance {
		t.Errorf("Far = %v behind Distance %v", c.Far, c.Distance)
	}
}
