package entity

import (
	"github.com/driftlabs/driftline/pkg/math"
)

// Sword spin/bob animation rates, per simulation tick.
const (
	swordSpinRate  = 0.03
	swordBobRate   = 0.05
	swordBobHeight = 0.15
)

// Sword is a collectible world item. It spins and bobs in place until a
// vehicle drives within the pickup radius, then it is collected exactly
// once.
type Sword struct {
	position     math.Vec3
	pickupRadius float32

	spin float32
	bob  float32

	collected bool
}

// NewSword places a sword pickup at the given world position.
func NewSword(pos math.Vec3, pickupRadius float32) *Sword {
	return &Sword{
		position:     pos,
		pickupRadius: pickupRadius,
	}
}

// Position returns the sword's world position.
func (s *Sword) Position() math.Vec3 { return s.position }

// Collected reports whether the sword has been picked up.
func (s *Sword) Collected() bool { return s.collected }

// Update advances the idle animation one tick and returns the node
// rotation around Y and vertical offset for rendering.
func (s *Sword) Update() (spin, bobOffset float32) {
	s.spin = math.WrapAngle(s.spin + swordSpinRate)
	s.bob += swordBobRate
	if s.bob > 2*math.Pi {
		s.bob -= 2 * math.Pi
	}
	return s.spin, math.Sin(s.bob) * swordBobHeight
}

// TryPickup collects the sword if the vehicle is within the pickup
// radius on the XZ plane. Returns true exactly once; lingering in the
// radius afterwards does not re-trigger.
func (s *Sword) TryPickup(vehiclePos math.Vec3) bool {
	if s.collected {
		return false
	}
	if vehiclePos.DistanceXZ(s.position) >= s.pickupRadius {
		return false
	}
	s.collected = true
	return true
}
