// Package session owns one race: the vehicle, the track state machine,
// the collectibles and the chase camera, advanced one simulation tick
// at a time by the enclosing game loop.
package session

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/driftlabs/driftline/internal/config"
	"github.com/driftlabs/driftline/internal/engine/camera"
	"github.com/driftlabs/driftline/internal/engine/input"
	"github.com/driftlabs/driftline/internal/engine/scene"
	"github.com/driftlabs/driftline/internal/game/entity"
	"github.com/driftlabs/driftline/internal/game/hud"
	"github.com/driftlabs/driftline/internal/game/world"
	"github.com/driftlabs/driftline/internal/logger"
	"github.com/driftlabs/driftline/pkg/math"
)

// Session is a single race on a single track. All state is mutated only
// from Step, once per simulation tick, on the game loop goroutine.
type Session struct {
	ID uuid.UUID

	scene *scene.Scene
	level *world.Level

	vehicle     *entity.Vehicle
	vehicleNode *scene.Node

	track  *world.RaceTrack
	swords []*entity.Sword

	cam  *camera.ChaseCamera
	hud  *hud.HUD
	tier entity.QualityTier

	collected int
	results   []world.LapEvent

	sfx SFX
}

// SFX is the slice of the audio surface the session cues. A nil SFX is
// silent.
type SFX interface {
	PickupChime()
	LapTone()
}

// swordPickupRadius is how close the vehicle must drive to collect.
const swordPickupRadius = 2.5

// New builds a session on an already-built level: spawns the vehicle
// mesh, seeds the race track and places sword pickups at the level's
// spawn points.
func New(s *scene.Scene, lvl *world.Level, vehCfg config.VehicleConfig, tier entity.QualityTier, h *hud.HUD, start time.Time) (*Session, error) {
	def := lvl.Def

	tuning := entity.Tuning{
		Accel:           vehCfg.Accel,
		Decel:           vehCfg.Decel,
		MaxForwardSpeed: vehCfg.MaxForwardSpeed,
		MaxReverseSpeed: vehCfg.MaxReverseSpeed,
		TurnRate:        vehCfg.TurnRate,
		TurnGain:        vehCfg.TurnGain,
		TurnDeadzone:    vehCfg.TurnDeadzone,
		ArenaBound:      def.ArenaBound,
		MaxTilt:         entity.DefaultTuning().MaxTilt,
	}

	track, err := world.NewRaceTrack(def.CheckpointVecs(), def.CheckpointRadius, start)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:    uuid.New(),
		scene: s,
		level: lvl,
		track: track,
		cam:   camera.NewChaseCamera(),
		hud:   h,
		tier:  tier,
	}

	sess.vehicle = entity.NewVehicle(def.Spawn.Vec3(), def.SpawnHeading, tuning)
	sess.vehicleNode = scene.NewNode("vehicle")
	sess.vehicleNode.Mesh = entity.BuildVehicleMesh(entity.DefaultVehicleMesh(tier))
	sess.vehicleNode.Position = def.Spawn.Vec3()
	sess.vehicleNode.Rotation.Y = def.SpawnHeading
	s.Add(sess.vehicleNode)

	for _, p := range def.Swords {
		sess.swords = append(sess.swords, entity.NewSword(p.Vec3(), swordPickupRadius))
	}

	logger.Info("session started",
		zap.String("id", sess.ID.String()),
		zap.String("track", def.Name),
		zap.Int("checkpoints", len(def.Checkpoints)),
	)

	return sess, nil
}

// Vehicle returns the session's vehicle.
func (s *Session) Vehicle() *entity.Vehicle { return s.vehicle }

// SetSFX attaches sound cues for pickups and laps.
func (s *Session) SetSFX(sfx SFX) { s.sfx = sfx }

// Camera returns the chase camera so callers can tune it.
func (s *Session) Camera() *camera.ChaseCamera { return s.cam }

// Track returns the race track state machine.
func (s *Session) Track() *world.RaceTrack { return s.track }

// Results returns the completed lap events so far.
func (s *Session) Results() []world.LapEvent { return s.results }

// SwordsCollected returns how many pickups the player has grabbed.
func (s *Session) SwordsCollected() int { return s.collected }

// StartRace restarts the lap clock at the moment control is handed to
// the player, so countdown time does not count against the first lap.
func (s *Session) StartRace(now time.Time) {
	s.track.RestartLap(now)
}

// ViewMatrix returns the camera view for the current vehicle pose.
func (s *Session) ViewMatrix() math.Mat4 {
	return s.cam.ViewMatrix(s.vehicle.Position(), s.vehicle.Heading())
}

// Step advances the race by one simulation tick with live input.
func (s *Session) Step(sample input.Sample, now time.Time) {
	s.step(entity.Intent{
		Accelerate: sample.Accelerate,
		Brake:      sample.Brake,
		SteerLeft:  sample.SteerLeft,
		SteerRight: sample.SteerRight,
	}, sample, now)
}

// StepLocked advances one tick with controls disabled (countdown).
// Scenery still animates and the camera still free-looks.
func (s *Session) StepLocked(sample input.Sample, now time.Time) {
	s.step(entity.Intent{}, sample, now)
}

func (s *Session) step(in entity.Intent, sample input.Sample, now time.Time) {
	pose := s.vehicle.Update(in)

	s.vehicleNode.Position = pose.Position
	s.vehicleNode.Rotation.Y = pose.Heading
	s.vehicleNode.Rotation.Z = pose.Tilt

	if sample.LookX != 0 || sample.LookY != 0 {
		s.cam.HandleLook(sample.LookX, sample.LookY)
	} else {
		s.cam.Recenter()
	}

	if ev, lapDone := s.track.CheckCheckpoints(pose.Position, now); lapDone {
		s.results = append(s.results, ev)
		if s.sfx != nil {
			s.sfx.LapTone()
		}
		logger.Info("lap completed",
			zap.Int("lap", ev.Lap),
			zap.Duration("duration", ev.Duration),
			zap.Duration("best", ev.Best),
			zap.Bool("is_best", ev.IsBest),
		)
	}

	s.updateSwords(pose.Position)

	s.hud.Update(s.vehicle.Speed(), s.track.Laps(), s.track.CurrentLapTime(now), s.track.BestLap(), s.collected)
}

// updateSwords animates uncollected pickups and handles collection:
// the world node disappears and a smaller held instance rides on the
// vehicle.
func (s *Session) updateSwords(vehiclePos math.Vec3) {
	for i, sw := range s.swords {
		if sw.Collected() {
			continue
		}

		node := s.level.SwordNodes[i]
		spin, bob := sw.Update()
		node.Rotation.Y = spin
		node.Position.Y = sw.Position().Y + 0.6 + bob

		if sw.TryPickup(vehiclePos) {
			s.collected++
			s.scene.Remove(node)
			s.attachHeldSword()
			if s.sfx != nil {
				s.sfx.PickupChime()
			}
			logger.Info("sword collected", zap.Int("total", s.collected))
		}
	}
}

// attachHeldSword mounts a half-scale sword on the vehicle the first
// time one is collected.
func (s *Session) attachHeldSword() {
	for _, c := range s.vehicleNode.Children() {
		if c.Name == "held-sword" {
			return
		}
	}

	cfg := entity.DefaultSwordMesh(s.tier)
	cfg.Scale = 0.5
	held := scene.NewNode("held-sword")
	held.Mesh = entity.BuildSwordMesh(cfg)
	held.Position = math.Vec3{X: 0, Y: 0.9, Z: -0.6}
	held.Rotation.Z = 0.35
	s.vehicleNode.Add(held)
}

// Reset teleports the vehicle back to the spawn pose. Track progress is
// kept; resetting is a recovery action, not a restart.
func (s *Session) Reset() {
	s.vehicle.SetPosition(s.level.Def.Spawn.Vec3(), s.level.Def.SpawnHeading)
	logger.Info("vehicle reset to spawn")
}
