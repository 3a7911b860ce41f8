// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/driftlabs/driftline/pkg/math"
)

// ChaseCamera follows a target from behind its travel direction, with
// free-look yaw/pitch offsets on top. The camera pose is derived fresh
// every frame from the target's pose; nothing here is persisted.
type ChaseCamera struct {
	// Fixed offsets behind and above the target.
	Distance float32
	Height   float32

	// Free-look offsets driven by mouse/touch drag.
	Yaw   float32
	Pitch float32

	// Pitch clamp range.
	MinPitch float32
	MaxPitch float32

	// Sensitivity for HandleLook deltas.
	LookSensitivity float32

	// How quickly free-look recenters per tick when not dragging.
	RecenterRate float32
}

// NewChaseCamera creates a chase camera with arcade-racer defaults.
func NewChaseCamera() *ChaseCamera {
	return &ChaseCamera{
		Distance:        7.0,
		Height:          3.0,
		MinPitch:        -math.Pi / 3,
		MaxPitch:        math.Pi / 3,
		LookSensitivity: 0.005,
		RecenterRate:    0.04,
	}
}

// HandleLook applies a free-look drag delta, clamping pitch.
func (c *ChaseCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.LookSensitivity
	c.Pitch = math.Clamp(c.Pitch-deltaY*c.LookSensitivity, c.MinPitch, c.MaxPitch)
}

// Recenter relaxes the free-look offsets back toward zero by one tick.
func (c *ChaseCamera) Recenter() {
	c.Yaw = math.MoveToward(c.Yaw, 0, c.RecenterRate)
	c.Pitch = math.MoveToward(c.Pitch, 0, c.RecenterRate)
}

// Position returns the camera eye position for a target at the given
// position and heading: behind the target along heading+π, lifted by
// Height, modulated by the free-look offsets.
func (c *ChaseCamera) Position(target math.Vec3, heading float32) math.Vec3 {
	backYaw := heading + math.Pi + c.Yaw

	horiz := c.Distance * math.Cos(c.Pitch)
	return math.Vec3{
		X: target.X + math.Sin(backYaw)*horiz,
		Y: target.Y + c.Height + c.Distance*math.Sin(c.Pitch),
		Z: target.Z + math.Cos(backYaw)*horiz,
	}
}

// ViewMatrix returns the view matrix looking from the chase position at
// the target.
func (c *ChaseCamera) ViewMatrix(target math.Vec3, heading float32) math.Mat4 {
	eye := c.Position(target, heading)

	// Aim slightly above the target so the vehicle sits low in frame.
	center := math.Vec3{X: target.X, Y: target.Y + 1.0, Z: target.Z}
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(eye, center, up)
}
