package entity

import (
	"github.com/driftlabs/driftline/internal/engine/scene"
	"github.com/driftlabs/driftline/pkg/math"
)

// VehicleMeshConfig parameterizes the stylized vehicle mesh.
type VehicleMeshConfig struct {
	BodyColor  [3]float32
	CabinColor [3]float32
	WheelColor [3]float32
	Tier       QualityTier
}

// DefaultVehicleMesh returns the stock paint job at the given tier.
func DefaultVehicleMesh(tier QualityTier) VehicleMeshConfig {
	return VehicleMeshConfig{
		BodyColor:  [3]float32{0.82, 0.12, 0.1},
		CabinColor: [3]float32{0.2, 0.55, 0.85},
		WheelColor: [3]float32{0.12, 0.12, 0.12},
		Tier:       tier,
	}
}

// BuildVehicleMesh assembles the vehicle from primitives: a body box, a
// cabin box and four wheels. The mesh faces +Z, matching heading 0.
func BuildVehicleMesh(cfg VehicleMeshConfig) *scene.Mesh {
	m := scene.Box(1.4, 0.45, 2.8, cfg.BodyColor)
	m.TranslateVerts(math.Vec3{Y: 0.45})

	cabin := scene.Box(1.0, 0.4, 1.2, cfg.CabinColor)
	cabin.TranslateVerts(math.Vec3{Y: 0.85, Z: -0.2})
	m.Append(cabin)

	segments := cfg.Tier.WheelSegments()
	wheelOffsets := []math.Vec3{
		{X: -0.75, Y: 0.3, Z: 0.9},
		{X: 0.75, Y: 0.3, Z: 0.9},
		{X: -0.75, Y: 0.3, Z: -0.9},
		{X: 0.75, Y: 0.3, Z: -0.9},
	}
	for _, off := range wheelOffsets {
		wheel := scene.Cylinder(0.3, 0.25, segments, cfg.WheelColor)
		// Cylinder axis is Y; lay it on its side so the axle runs along X.
		wheel.Transform(math.RotateZ(math.Pi / 2))
		wheel.TranslateVerts(off)
		m.Append(wheel)
	}

	return m
}

// SwordMeshConfig parameterizes the collectible sword mesh. The same
// factory builds the world-pickup instance and the held-on-vehicle
// instance; only the config differs.
type SwordMeshConfig struct {
	BladeColor [3]float32
	GuardColor [3]float32
	GripColor  [3]float32
	Scale      float32
	Tier       QualityTier
}

// DefaultSwordMesh returns the standard sword look at full scale.
func DefaultSwordMesh(tier QualityTier) SwordMeshConfig {
	return SwordMeshConfig{
		BladeColor: [3]float32{0.78, 0.8, 0.86},
		GuardColor: [3]float32{0.85, 0.68, 0.2},
		GripColor:  [3]float32{0.35, 0.2, 0.1},
		Scale:      1,
		Tier:       tier,
	}
}

// BuildSwordMesh assembles a sword pointing up from the origin: grip,
// guard, blade, tip.
func BuildSwordMesh(cfg SwordMeshConfig) *scene.Mesh {
	gripSegments := 6
	if cfg.Tier == TierHigh {
		gripSegments = 12
	}

	m := scene.Cylinder(0.06, 0.35, gripSegments, cfg.GripColor)
	m.TranslateVerts(math.Vec3{Y: 0.175})

	guard := scene.Box(0.5, 0.07, 0.12, cfg.GuardColor)
	guard.TranslateVerts(math.Vec3{Y: 0.38})
	m.Append(guard)

	blade := scene.Box(0.12, 1.0, 0.035, cfg.BladeColor)
	blade.TranslateVerts(math.Vec3{Y: 0.92})
	m.Append(blade)

	tip := scene.Cone(0.07, 0.18, gripSegments, cfg.BladeColor)
	tip.TranslateVerts(math.Vec3{Y: 1.51})
	m.Append(tip)

	if cfg.Scale != 1 && cfg.Scale > 0 {
		m.Transform(math.Scale(cfg.Scale, cfg.Scale, cfg.Scale))
	}

	return m
}
