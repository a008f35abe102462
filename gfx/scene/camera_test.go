package scene

import (
	"math"
	"testing"

	"orrery/gfx/softgl"
)

func near(a, b softgl.Scalar) bool { return math.Abs(float64(a-b)) < 1e-4 }

func TestNewCamera(t *testing.T) {
	c := NewCamera(softgl.V3(0, 10, 20), softgl.Vec3{}, softgl.V3(0, 1, 0))
	if want := softgl.Scalar(math.Sqrt(500)); !near(c.Distance, want) {
		t.Fatalf("Distance = %v, want %v", c.Distance, want)
	}
	if !near(c.Angle, math.Pi/2) {
		t.Fatalf("Angle = %v, want pi/2", c.Angle)
	}
	if !c.Changed {
		t.Fatalf("new camera should be marked changed")
	}
}

func TestCameraOrbitKeepsHeightAndRadius(t *testing.T) {
	c := NewCamera(softgl.V3(10, 4, 0), softgl.V3(1, 0, 1), softgl.V3(0, 1, 0))
	d := c.Distance
	for i := 0; i < 10; i++ {
		c.Orbit(0.7)
		if c.Eye.Y != 4 {
			t.Fatalf("Eye.Y = %v after orbit, want 4", c.Eye.Y)
		}
		dx, dz := c.Eye.X-c.Center.X, c.Eye.Z-c.Center.Z
		if r := softgl.Scalar(math.Hypot(float64(dx), float64(dz))); !near(r, d) {
			t.Fatalf("XZ radius = %v, want %v", r, d)
		}
	}
}

func TestCameraZoomClamps(t *testing.T) {
	c := NewCamera(softgl.V3(0, 0, 20), softgl.Vec3{}, softgl.V3(0, 1, 0))
	c.Zoom(-100)
	if c.Distance != minDistance {
		t.Fatalf("Distance = %v, want %v", c.Distance, minDistance)
	}
	c.Zoom(1000)
	if c.Distance != maxDistance {
		t.Fatalf("Distance = %v, want %v", c.Distance, maxDistance)
	}
	if !near(c.Eye.Z, maxDistance) {
		t.Fatalf("Eye.Z = %v, want %v", c.Eye.Z, maxDistance)
	}
}

func TestCameraMoveCenter(t *testing.T) {
	c := NewCamera(softgl.V3(0, 1, 5), softgl.Vec3{}, softgl.V3(0, 1, 0))
	c.Changed = false
	c.MoveCenter(softgl.V3(1, 2, 3))
	if c.Eye != softgl.V3(1, 3, 8) || c.Center != softgl.V3(1, 2, 3) {
		t.Fatalf("eye %v center %v after move", c.Eye, c.Center)
	}
	if !c.Changed {
		t.Fatalf("MoveCenter did not mark the camera changed")
	}
}

func TestCameraViewLooksAtCenter(t *testing.T) {
	c := NewCamera(softgl.V3(3, 4, 5), softgl.V3(1, 1, 1), softgl.V3(0, 1, 0))
	p := c.View().MulVec4(c.Center.Vec4(1))
	if !near(p.X, 0) || !near(p.Y, 0) || p.Z >= 0 {
		t.Fatalf("center in view space = %+v, want on -Z axis", p)
	}
}
