package math

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %v, want 3", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp(-1,0,3) = %v, want 0", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Errorf("Clamp(2,0,3) = %v, want 2", got)
	}
}

func TestMoveToward(t *testing.T) {
	// Stops exactly on target, no overshoot
	if got := MoveToward(0.05, 0, 0.1); got != 0 {
		t.Errorf("MoveToward(0.05,0,0.1) = %v, want 0", got)
	}
	if got := MoveToward(-0.05, 0, 0.1); got != 0 {
		t.Errorf("MoveToward(-0.05,0,0.1) = %v, want 0", got)
	}
	// Normal step
	if got := MoveToward(0, 1, 0.25); got != 0.25 {
		t.Errorf("MoveToward(0,1,0.25) = %v, want 0.25", got)
	}
	// Already at target
	if got := MoveToward(1, 1, 0.25); got != 1 {
		t.Errorf("MoveToward(1,1,0.25) = %v, want 1", got)
	}
}

func TestWrapAngle(t *testing.T) {
	if got := WrapAngle(3 * Pi); got < -Pi || got > Pi {
		t.Errorf("WrapAngle(3π) = %v, out of (-π, π]", got)
	}
	if got := WrapAngle(-3 * Pi); got <= -Pi || got > Pi {
		t.Errorf("WrapAngle(-3π) = %v, out of (-π, π]", got)
	}
	if got := WrapAngle(1.0); got != 1.0 {
		t.Errorf("WrapAngle(1.0) = %v, want 1.0", got)
	}
}

func TestMat4TranslatePoint(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Translate.TransformPoint = %v, want %v", got, want)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translate(4, 5, 6).Mul(Identity())
	if m != Translate(4, 5, 6) {
		t.Errorf("M * I != M")
	}
}
