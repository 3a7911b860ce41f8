package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/driftlabs/driftline/pkg/math"
)

// Point is a YAML-friendly world position.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Vec3 converts the point to a math vector.
func (p Point) Vec3() math.Vec3 {
	return math.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Definition describes a track: its checkpoint sequence, arena size and
// spawn pose. Tracks load from YAML files or come from the built-in
// default.
type Definition struct {
	Name             string  `yaml:"name"`
	CheckpointRadius float32 `yaml:"checkpoint_radius"`
	ArenaBound       float32 `yaml:"arena_bound"`
	Spawn            Point   `yaml:"spawn"`
	SpawnHeading     float32 `yaml:"spawn_heading"`
	Checkpoints      []Point `yaml:"checkpoints"`
	Swords           []Point `yaml:"swords"`
}

// DefaultDefinition returns the built-in figure-style circuit.
func DefaultDefinition() Definition {
	return Definition{
		Name:             "Sunset Oval",
		CheckpointRadius: 3,
		ArenaBound:       60,
		Spawn:            Point{X: 0, Y: 0, Z: -30},
		SpawnHeading:     math.Pi / 2,
		Checkpoints: []Point{
			{X: 30, Z: -30},
			{X: 42, Z: 0},
			{X: 30, Z: 30},
			{X: -30, Z: 30},
			{X: -42, Z: 0},
			{X: -30, Z: -30},
			{X: 0, Z: -30},
		},
		Swords: []Point{
			{X: 0, Y: 0, Z: 30},
			{X: 42, Y: 0, Z: -15},
		},
	}
}

// LoadDefinition reads a track definition from a YAML file and
// validates it.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading track %s: %w", path, err)
	}

	def := Definition{}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("parsing track %s: %w", path, err)
	}

	if err := def.Validate(); err != nil {
		return Definition{}, fmt.Errorf("track %s: %w", path, err)
	}
	return def, nil
}

// Validate checks the definition and fills defaults for optional
// fields.
func (d *Definition) Validate() error {
	if len(d.Checkpoints) < 2 {
		return fmt.Errorf("needs at least 2 checkpoints, got %d", len(d.Checkpoints))
	}
	if d.CheckpointRadius <= 0 {
		d.CheckpointRadius = 3
	}
	if d.ArenaBound <= 0 {
		return fmt.Errorf("arena_bound must be positive, got %v", d.ArenaBound)
	}
	for i, cp := range d.Checkpoints {
		if math.Abs(cp.X) > d.ArenaBound || math.Abs(cp.Z) > d.ArenaBound {
			return fmt.Errorf("checkpoint %d at (%v, %v) lies outside arena bound %v",
				i, cp.X, cp.Z, d.ArenaBound)
		}
	}
	if d.Name == "" {
		d.Name = "Unnamed Track"
	}
	return nil
}

// CheckpointVecs returns the checkpoint positions as math vectors.
func (d *Definition) CheckpointVecs() []math.Vec3 {
	cps := make([]math.Vec3, len(d.Checkpoints))
	for i, p := range d.Checkpoints {
		cps[i] = p.Vec3()
	}
	return cps
}
