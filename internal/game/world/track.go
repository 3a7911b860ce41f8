// Package world owns the racing level: track definitions, the
// checkpoint/lap state machine and level geometry assembly.
package world

import (
	"fmt"
	"time"

	"github.com/driftlabs/driftline/pkg/math"
)

// LapEvent reports a completed lap.
type LapEvent struct {
	Lap      int           // 1-based lap number just completed
	Duration time.Duration // this lap's time
	Best     time.Duration // best lap so far, including this one
	IsBest   bool          // whether this lap set the best
}

// RaceTrack tracks checkpoint progress and lap times. The checkpoint
// sequence is fixed at construction and immutable afterwards; only the
// cursor, lap counter and timing state mutate.
type RaceTrack struct {
	checkpoints []math.Vec3
	radius      float32

	cursor   int
	laps     int
	lapStart time.Time
	best     time.Duration // 0 until the first lap completes
}

// NewRaceTrack creates a track from an ordered checkpoint list. start
// seeds the first lap's clock.
func NewRaceTrack(checkpoints []math.Vec3, radius float32, start time.Time) (*RaceTrack, error) {
	if len(checkpoints) == 0 {
		return nil, fmt.Errorf("track needs at least one checkpoint")
	}
	if radius <= 0 {
		return nil, fmt.Errorf("checkpoint radius must be positive, got %v", radius)
	}
	cps := make([]math.Vec3, len(checkpoints))
	copy(cps, checkpoints)
	return &RaceTrack{
		checkpoints: cps,
		radius:      radius,
		lapStart:    start,
	}, nil
}

// Checkpoints returns a copy of the checkpoint sequence.
func (t *RaceTrack) Checkpoints() []math.Vec3 {
	cps := make([]math.Vec3, len(t.checkpoints))
	copy(cps, t.checkpoints)
	return cps
}

// CurrentCheckpoint returns the cursor index of the next checkpoint to
// cross.
func (t *RaceTrack) CurrentCheckpoint() int { return t.cursor }

// Laps returns the number of completed laps.
func (t *RaceTrack) Laps() int { return t.laps }

// BestLap returns the best lap time, or 0 before the first lap.
func (t *RaceTrack) BestLap() time.Duration { return t.best }

// CurrentLapTime returns the elapsed time of the lap in progress.
func (t *RaceTrack) CurrentLapTime(now time.Time) time.Duration {
	return now.Sub(t.lapStart)
}

// RestartLap restarts the running lap clock without touching the
// cursor, lap count, or best time. Used when control is handed to the
// player after the countdown.
func (t *RaceTrack) RestartLap(now time.Time) {
	t.lapStart = now
}

// CheckCheckpoints advances the checkpoint cursor if the vehicle is
// within the checkpoint radius, and reports a LapEvent when the cursor
// wraps past the final checkpoint.
//
// Only the current checkpoint is tested; a vehicle that skips ahead
// past several checkpoints in one tick does not register the
// intermediate ones and must still cross the current one in sequence.
// The advance is edge-triggered per call: one call moves the cursor at
// most once, and re-entering an already-passed checkpoint's radius does
// not double-count because the cursor has moved on.
func (t *RaceTrack) CheckCheckpoints(vehiclePos math.Vec3, now time.Time) (LapEvent, bool) {
	if vehiclePos.DistanceXZ(t.checkpoints[t.cursor]) >= t.radius {
		return LapEvent{}, false
	}

	t.cursor++
	if t.cursor < len(t.checkpoints) {
		return LapEvent{}, false
	}

	// Lap complete: wrap the cursor and roll the clock.
	t.cursor = 0
	t.laps++
	duration := now.Sub(t.lapStart)
	t.lapStart = now

	isBest := t.best == 0 || duration < t.best
	if isBest {
		t.best = duration
	}

	return LapEvent{
		Lap:      t.laps,
		Duration: duration,
		Best:     t.best,
		IsBest:   isBest,
	}, true
}
