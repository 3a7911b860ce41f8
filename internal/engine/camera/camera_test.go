package camera

import (
	"testing"

	"github.com/driftlabs/driftline/pkg/math"
)

func TestPitchClamped(t *testing.T) {
	c := NewChaseCamera()

	// Drag way past the clamp range in both directions.
	for i := 0; i < 1000; i++ {
		c.HandleLook(0, -50)
	}
	if c.Pitch > c.MaxPitch {
		t.Errorf("pitch %v exceeds max %v", c.Pitch, c.MaxPitch)
	}
	for i := 0; i < 1000; i++ {
		c.HandleLook(0, 50)
	}
	if c.Pitch < c.MinPitch {
		t.Errorf("pitch %v below min %v", c.Pitch, c.MinPitch)
	}
}

func TestPositionBehindTarget(t *testing.T) {
	c := NewChaseCamera()
	target := math.Vec3{X: 10, Y: 0, Z: 5}

	// Heading 0 faces +Z, so the camera sits at lower Z than the target.
	pos := c.Position(target, 0)
	if pos.Z >= target.Z {
		t.Errorf("camera Z %v not behind target Z %v for heading 0", pos.Z, target.Z)
	}
	if pos.Y <= target.Y {
		t.Errorf("camera Y %v not above target", pos.Y)
	}

	// Heading π/2 faces +X: camera sits at lower X.
	pos = c.Position(target, math.Pi/2)
	if pos.X >= target.X {
		t.Errorf("camera X %v not behind target X %v for heading π/2", pos.X, target.X)
	}
}

func TestRecenterRelaxesFreeLook(t *testing.T) {
	c := NewChaseCamera()
	c.HandleLook(120, 80)
	if c.Yaw == 0 && c.Pitch == 0 {
		t.Fatal("free-look did not move")
	}

	for i := 0; i < 500; i++ {
		c.Recenter()
	}
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Errorf("free-look did not recenter: yaw %v pitch %v", c.Yaw, c.Pitch)
	}
}
