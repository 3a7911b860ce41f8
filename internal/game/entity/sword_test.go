package entity

import (
	"testing"

	"github.com/driftlabs/driftline/pkg/math"
)

func TestSwordPickupEdgeTriggered(t *testing.T) {
	s := NewSword(math.Vec3{X: 5, Z: 5}, 2)

	// Outside the radius: no pickup.
	if s.TryPickup(math.Vec3{X: 0, Z: 0}) {
		t.Fatal("picked up from outside the radius")
	}
	if s.Collected() {
		t.Fatal("sword marked collected without pickup")
	}

	// Inside: exactly one pickup.
	if !s.TryPickup(math.Vec3{X: 5.5, Z: 5.5}) {
		t.Fatal("pickup failed inside the radius")
	}
	if !s.Collected() {
		t.Fatal("sword not marked collected")
	}

	// Lingering in the radius does not re-trigger.
	for i := 0; i < 10; i++ {
		if s.TryPickup(math.Vec3{X: 5, Z: 5}) {
			t.Fatal("sword collected twice")
		}
	}
}

func TestSwordPickupIgnoresHeight(t *testing.T) {
	s := NewSword(math.Vec3{X: 0, Y: 1.2, Z: 0}, 2)
	if !s.TryPickup(math.Vec3{X: 1, Y: 0, Z: 0}) {
		t.Error("pickup compared full 3D distance; should be planar")
	}
}

func TestSwordAnimationAdvances(t *testing.T) {
	s := NewSword(math.Vec3{}, 2)

	spin1, _ := s.Update()
	spin2, _ := s.Update()
	if spin1 == spin2 {
		t.Error("spin did not advance between ticks")
	}

	// Bob offset stays within its configured amplitude.
	for i := 0; i < 500; i++ {
		_, bob := s.Update()
		if math.Abs(bob) > swordBobHeight+1e-5 {
			t.Fatalf("bob offset %v exceeds amplitude %v", bob, swordBobHeight)
		}
	}
}

func TestBuildVehicleMeshTiers(t *testing.T) {
	low := BuildVehicleMesh(DefaultVehicleMesh(TierLow))
	high := BuildVehicleMesh(DefaultVehicleMesh(TierHigh))

	if len(low.Vertices) == 0 || len(low.Indices) == 0 {
		t.Fatal("low tier vehicle mesh is empty")
	}
	if len(high.Vertices) <= len(low.Vertices) {
		t.Errorf("high tier (%d verts) should carry more detail than low (%d verts)",
			len(high.Vertices), len(low.Vertices))
	}
}

func TestBuildSwordMeshScale(t *testing.T) {
	full := BuildSwordMesh(DefaultSwordMesh(TierHigh))

	half := DefaultSwordMesh(TierHigh)
	half.Scale = 0.5
	halfMesh := BuildSwordMesh(half)

	if len(full.Vertices) != len(halfMesh.Vertices) {
		t.Fatal("scale must not change topology")
	}

	var maxFull, maxHalf float32
	for i := range full.Vertices {
		if y := full.Vertices[i].Position[1]; y > maxFull {
			maxFull = y
		}
		if y := halfMesh.Vertices[i].Position[1]; y > maxHalf {
			maxHalf = y
		}
	}
	if maxHalf >= maxFull {
		t.Errorf("scaled sword (max y %v) not smaller than full (%v)", maxHalf, maxFull)
	}
}
