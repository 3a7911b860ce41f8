package world

import (
	"github.com/driftlabs/driftline/internal/engine/lighting"
	"github.com/driftlabs/driftline/internal/engine/scene"
	"github.com/driftlabs/driftline/internal/game/entity"
	"github.com/driftlabs/driftline/pkg/math"
)

// Level geometry constants.
const (
	gateHalfWidth  = 5.0
	gateHeight     = 6.0
	pillarRadius   = 0.4
	wallHeight     = 1.5
	wallThickness  = 1.0
	groundOverhang = 10.0
)

var (
	groundColor = [3]float32{0.35, 0.55, 0.3}
	wallColor   = [3]float32{0.6, 0.58, 0.55}
	gateColor   = [3]float32{0.9, 0.85, 0.3}
	barColor    = [3]float32{0.85, 0.3, 0.25}
)

// Level holds the built scene nodes for a track so the session can
// update and remove them.
type Level struct {
	Def Definition

	Root       *scene.Node
	GateNodes  []*scene.Node
	SwordNodes []*scene.Node
}

// BuildLevel assembles the level geometry under a single node and
// attaches it to the scene: ground, arena walls, one gate per
// checkpoint and the sword pickups.
func BuildLevel(s *scene.Scene, def Definition, tier entity.QualityTier) *Level {
	lvl := &Level{
		Def:  def,
		Root: scene.NewNode("level:" + def.Name),
	}

	s.SunDir = lighting.SunDirection(35, 55)

	size := (def.ArenaBound + groundOverhang) * 2
	ground := scene.NewNode("ground")
	ground.Mesh = scene.Plane(size, size, groundColor)
	lvl.Root.Add(ground)

	lvl.buildWalls(def.ArenaBound)
	lvl.buildGates(def, tier)

	swordCfg := entity.DefaultSwordMesh(tier)
	for _, p := range def.Swords {
		n := scene.NewNode("sword")
		n.Mesh = entity.BuildSwordMesh(swordCfg)
		n.Position = p.Vec3()
		n.Position.Y += 0.6 // float above the ground
		lvl.Root.Add(n)
		lvl.SwordNodes = append(lvl.SwordNodes, n)
	}

	s.Add(lvl.Root)
	return lvl
}

// buildWalls rings the arena with four low walls at the soft boundary.
func (l *Level) buildWalls(bound float32) {
	span := bound*2 + wallThickness*2
	for _, w := range []struct {
		name string
		pos  math.Vec3
		size [2]float32 // width, depth
	}{
		{"wall-north", math.Vec3{Z: bound + wallThickness/2}, [2]float32{span, wallThickness}},
		{"wall-south", math.Vec3{Z: -bound - wallThickness/2}, [2]float32{span, wallThickness}},
		{"wall-east", math.Vec3{X: bound + wallThickness/2}, [2]float32{wallThickness, span}},
		{"wall-west", math.Vec3{X: -bound - wallThickness/2}, [2]float32{wallThickness, span}},
	} {
		n := scene.NewNode(w.name)
		n.Mesh = scene.Box(w.size[0], wallHeight, w.size[1], wallColor)
		n.Position = w.pos
		n.Position.Y = wallHeight / 2
		l.Root.Add(n)
	}
}

// buildGates puts a pillar pair and crossbar over each checkpoint,
// oriented perpendicular to the direction toward the next one.
func (l *Level) buildGates(def Definition, tier entity.QualityTier) {
	segments := 8
	if tier == entity.TierHigh {
		segments = 16
	}

	cps := def.CheckpointVecs()
	for i, cp := range cps {
		next := cps[(i+1)%len(cps)]
		dir := next.Sub(cp)
		dir.Y = 0
		if dir.Length() < 1e-4 {
			dir = math.Vec3{Z: 1}
		}
		dir = dir.Normalize()

		gate := scene.NewNode("gate")
		gate.Position = cp
		gate.Rotation.Y = math.Atan2(dir.X, dir.Z)

		for _, side := range []float32{-gateHalfWidth, gateHalfWidth} {
			pillar := scene.NewNode("pillar")
			pillar.Mesh = scene.Cylinder(pillarRadius, gateHeight, segments, gateColor)
			pillar.Position = math.Vec3{X: side, Y: gateHeight / 2}
			gate.Add(pillar)
		}

		// The finish gate, where the lap wraps, gets an arch; the rest
		// get a plain crossbar.
		if i == len(cps)-1 {
			arch := scene.NewNode("arch")
			arch.Mesh = scene.TorusSegment(gateHalfWidth, 0.3, math.Pi, segments, 8, barColor)
			arch.Position = math.Vec3{Y: gateHeight}
			gate.Add(arch)
		} else {
			bar := scene.NewNode("crossbar")
			bar.Mesh = scene.Box(gateHalfWidth*2, 0.5, 0.5, barColor)
			bar.Position = math.Vec3{Y: gateHeight}
			gate.Add(bar)
		}

		l.Root.Add(gate)
		l.GateNodes = append(l.GateNodes, gate)
	}
}
