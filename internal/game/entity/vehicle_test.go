package entity

import (
	"testing"

	"github.com/driftlabs/driftline/pkg/math"
)

func testTuning() Tuning {
	t := DefaultTuning()
	t.ArenaBound = 100
	return t
}

func TestVehicleSpeedStaysBounded(t *testing.T) {
	v := NewVehicle(math.Vec3{}, 0, testTuning())

	// Hammer the throttle, then the brake, far past saturation.
	for i := 0; i < 200; i++ {
		v.Update(Intent{Accelerate: true})
		if v.Speed() > v.tuning.MaxForwardSpeed {
			t.Fatalf("tick %d: speed %v exceeds max %v", i, v.Speed(), v.tuning.MaxForwardSpeed)
		}
	}
	for i := 0; i < 200; i++ {
		v.Update(Intent{Brake: true})
		if v.Speed() < -v.tuning.MaxReverseSpeed {
			t.Fatalf("tick %d: speed %v below reverse limit %v", i, v.Speed(), -v.tuning.MaxReverseSpeed)
		}
	}
}

func TestVehicleAccelerationCapsByTick38(t *testing.T) {
	// accel=0.008, cap=0.3: the cap is reached at tick 38 and held.
	tun := testTuning()
	tun.Accel = 0.008
	tun.MaxForwardSpeed = 0.3
	v := NewVehicle(math.Vec3{}, 0, tun)

	for i := 1; i <= 50; i++ {
		v.Update(Intent{Accelerate: true})
		if i >= 38 && v.Speed() != tun.MaxForwardSpeed {
			t.Fatalf("tick %d: speed %v, want capped at %v", i, v.Speed(), tun.MaxForwardSpeed)
		}
	}
}

func TestVehicleNoSteeringAtStandstill(t *testing.T) {
	v := NewVehicle(math.Vec3{}, 0.7, testTuning())

	for i := 0; i < 120; i++ {
		v.Update(Intent{SteerLeft: true})
	}
	if v.Heading() != 0.7 {
		t.Errorf("heading changed to %v while stationary, want 0.7", v.Heading())
	}
	if v.TurnInput() != 0 {
		t.Errorf("turn input wound up to %v while stationary, want 0", v.TurnInput())
	}
}

func TestVehicleSteeringTurnsWhenMoving(t *testing.T) {
	v := NewVehicle(math.Vec3{}, 0, testTuning())

	for i := 0; i < 30; i++ {
		v.Update(Intent{Accelerate: true, SteerLeft: true})
	}
	if v.Heading() <= 0 {
		t.Errorf("heading = %v after steering left at speed, want > 0", v.Heading())
	}
}

func TestVehicleTurnInputRateLimited(t *testing.T) {
	tun := testTuning()
	v := NewVehicle(math.Vec3{}, 0, tun)

	// Get moving first so steering integrates.
	for i := 0; i < 20; i++ {
		v.Update(Intent{Accelerate: true})
	}

	prev := v.TurnInput()
	for i := 0; i < 40; i++ {
		v.Update(Intent{Accelerate: true, SteerRight: true})
		delta := math.Abs(v.TurnInput() - prev)
		if delta > tun.TurnRate+1e-6 {
			t.Fatalf("tick %d: turn input moved by %v, max is %v", i, delta, tun.TurnRate)
		}
		prev = v.TurnInput()
	}
	if v.TurnInput() != -1 {
		t.Errorf("turn input = %v after sustained steer right, want -1", v.TurnInput())
	}
}

func TestVehicleSpeedDecaysMonotonicallyToZero(t *testing.T) {
	v := NewVehicle(math.Vec3{}, 0, testTuning())
	for i := 0; i < 25; i++ {
		v.Update(Intent{Accelerate: true})
	}

	prev := v.Speed()
	reachedZero := false
	for i := 0; i < 200; i++ {
		v.Update(Intent{})
		s := v.Speed()
		if reachedZero {
			if s != 0 {
				t.Fatalf("tick %d: speed %v after reaching zero, want exactly 0", i, s)
			}
			continue
		}
		if s >= prev {
			t.Fatalf("tick %d: speed did not strictly decrease (%v -> %v)", i, prev, s)
		}
		if s == 0 {
			reachedZero = true
		}
		if s < 0 {
			t.Fatalf("tick %d: decay overshot past zero: %v", i, s)
		}
		prev = s
	}
	if !reachedZero {
		t.Error("speed never decayed to exactly zero")
	}
}

func TestVehicleArenaClampHalvesSpeed(t *testing.T) {
	tun := testTuning()
	tun.ArenaBound = 5
	v := NewVehicle(math.Vec3{}, math.Pi/2, tun) // heading +X

	var preClamp float32
	clamped := false
	for i := 0; i < 500; i++ {
		preClamp = v.Speed()
		v.Update(Intent{Accelerate: true})
		if v.Position().X == tun.ArenaBound {
			clamped = true
			// Speed after the clamp tick is half of the post-throttle speed.
			expected := preClamp + tun.Accel
			if expected > tun.MaxForwardSpeed {
				expected = tun.MaxForwardSpeed
			}
			expected *= 0.5
			if v.Speed() != expected {
				t.Errorf("clamped speed = %v, want %v", v.Speed(), expected)
			}
			break
		}
		if v.Position().X > tun.ArenaBound {
			t.Fatalf("position %v escaped the arena bound %v", v.Position().X, tun.ArenaBound)
		}
	}
	if !clamped {
		t.Fatal("vehicle never reached the arena boundary")
	}
}

func TestVehicleTiltFollowsSteerIntent(t *testing.T) {
	v := NewVehicle(math.Vec3{}, 0, testTuning())

	var pose Pose
	for i := 0; i < 40; i++ {
		pose = v.Update(Intent{Accelerate: true, SteerLeft: true})
	}
	if pose.Tilt == 0 {
		t.Error("expected non-zero tilt at full steer")
	}
	if got, want := pose.Tilt, -v.TurnInput()*v.tuning.MaxTilt; got != want {
		t.Errorf("tilt = %v, want %v", got, want)
	}

	// Tilt relaxes with the steer intent once the wheel is released.
	for i := 0; i < 60; i++ {
		pose = v.Update(Intent{Accelerate: true})
	}
	if pose.Tilt != 0 {
		t.Errorf("tilt = %v after relaxing, want 0", pose.Tilt)
	}
}

func TestVehicleSetPositionResets(t *testing.T) {
	v := NewVehicle(math.Vec3{}, 0, testTuning())
	for i := 0; i < 30; i++ {
		v.Update(Intent{Accelerate: true, SteerLeft: true})
	}

	spawn := math.Vec3{X: 1, Y: 0.5, Z: 2}
	v.SetPosition(spawn, 1.5)

	if v.Position() != spawn {
		t.Errorf("position = %v, want %v", v.Position(), spawn)
	}
	if v.Heading() != 1.5 {
		t.Errorf("heading = %v, want 1.5", v.Heading())
	}
	if v.Speed() != 0 || v.TurnInput() != 0 {
		t.Errorf("speed/turn input not reset: %v, %v", v.Speed(), v.TurnInput())
	}
}
