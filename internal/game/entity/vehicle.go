// Package entity implements game entities (vehicle, collectibles) and
// their mesh factories.
package entity

import (
	"github.com/driftlabs/driftline/pkg/math"
)

// Intent is the per-tick driving input, already reduced to booleans.
// The source (keyboard, touch joystick, synthetic test input) does not
// matter to the kinematics.
type Intent struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
}

// Tuning holds vehicle handling parameters. Units are world units per
// simulation tick.
type Tuning struct {
	Accel           float32
	Decel           float32
	MaxForwardSpeed float32
	MaxReverseSpeed float32
	TurnRate        float32 // max steer intent change per tick
	TurnGain        float32 // heading change per unit speed at full steer
	TurnDeadzone    float32 // no steering below this absolute speed
	ArenaBound      float32 // |x|,|z| soft wall; 0 disables
	MaxTilt         float32 // visual banking at full steer, radians
}

// DefaultTuning returns arcade-style handling defaults.
func DefaultTuning() Tuning {
	return Tuning{
		Accel:           0.008,
		Decel:           0.004,
		MaxForwardSpeed: 0.3,
		MaxReverseSpeed: 0.15,
		TurnRate:        0.08,
		TurnGain:        0.18,
		TurnDeadzone:    0.01,
		ArenaBound:      100,
		MaxTilt:         0.22,
	}
}

// Pose is the renderable transform produced by a vehicle update.
// Tilt is a visual banking angle around the forward axis; it is output
// only and never fed back into the kinematics.
type Pose struct {
	Position math.Vec3
	Heading  float32
	Tilt     float32
}

// Vehicle owns the kinematic state of a player-driven ground vehicle.
// Heading 0 faces +Z; positive heading turns toward +X (left when
// viewed from the chase camera). Y stays at spawn height.
type Vehicle struct {
	position  math.Vec3
	heading   float32
	speed     float32 // signed, negative = reverse
	turnInput float32 // smoothed steer intent in [-1, 1]

	tuning Tuning
}

// NewVehicle creates a vehicle at the given spawn pose.
func NewVehicle(spawn math.Vec3, heading float32, tuning Tuning) *Vehicle {
	return &Vehicle{
		position: spawn,
		heading:  heading,
		tuning:   tuning,
	}
}

// Position returns the vehicle's world position.
func (v *Vehicle) Position() math.Vec3 { return v.position }

// Heading returns the travel direction in radians.
func (v *Vehicle) Heading() float32 { return v.heading }

// Speed returns the signed scalar speed in units per tick.
func (v *Vehicle) Speed() float32 { return v.speed }

// TurnInput returns the current smoothed steer intent.
func (v *Vehicle) TurnInput() float32 { return v.turnInput }

// SetPosition teleports the vehicle, e.g. for a respawn.
func (v *Vehicle) SetPosition(pos math.Vec3, heading float32) {
	v.position = pos
	v.heading = heading
	v.speed = 0
	v.turnInput = 0
}

// Update advances the kinematics by one simulation tick and returns the
// new pose. The update never fails; a non-finite result (which only a
// corrupted tuning could produce) leaves the state unchanged for the
// tick.
func (v *Vehicle) Update(in Intent) Pose {
	t := &v.tuning

	// Longitudinal: throttle, brake/reverse, or natural decay.
	switch {
	case in.Accelerate:
		v.speed += t.Accel
		if v.speed > t.MaxForwardSpeed {
			v.speed = t.MaxForwardSpeed
		}
	case in.Brake:
		v.speed -= t.Decel * 1.5
		if v.speed < -t.MaxReverseSpeed {
			v.speed = -t.MaxReverseSpeed
		}
	default:
		v.speed = math.MoveToward(v.speed, 0, t.Decel)
	}

	// Lateral: steering only bites above the deadzone. At rest the
	// intent is forced to zero so a held key cannot wind it up.
	if math.Abs(v.speed) <= t.TurnDeadzone {
		v.turnInput = 0
	} else {
		var target float32
		if in.SteerLeft {
			target += 1
		}
		if in.SteerRight {
			target -= 1
		}
		v.turnInput = math.MoveToward(v.turnInput, target, t.TurnRate)
	}

	// Turn rate scales with speed: arcade handling, not a tire model.
	heading := math.WrapAngle(v.heading + v.turnInput*math.Abs(v.speed)*t.TurnGain)

	pos := v.position
	pos.X += math.Sin(heading) * v.speed
	pos.Z += math.Cos(heading) * v.speed

	if !pos.IsFinite() || !math.IsFinite(heading) {
		return v.pose()
	}
	v.heading = heading
	v.position = pos

	// Soft wall: clamp to the arena and pay a speed penalty. Not a
	// bounce.
	if t.ArenaBound > 0 {
		hit := false
		if v.position.X > t.ArenaBound {
			v.position.X = t.ArenaBound
			hit = true
		} else if v.position.X < -t.ArenaBound {
			v.position.X = -t.ArenaBound
			hit = true
		}
		if v.position.Z > t.ArenaBound {
			v.position.Z = t.ArenaBound
			hit = true
		} else if v.position.Z < -t.ArenaBound {
			v.position.Z = -t.ArenaBound
			hit = true
		}
		if hit {
			v.speed *= 0.5
		}
	}

	return v.pose()
}

func (v *Vehicle) pose() Pose {
	return Pose{
		Position: v.position,
		Heading:  v.heading,
		Tilt:     -v.turnInput * v.tuning.MaxTilt,
	}
}
