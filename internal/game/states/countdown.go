package states

import (
	"time"

	"go.uber.org/zap"

	"github.com/driftlabs/driftline/internal/engine/input"
	"github.com/driftlabs/driftline/internal/game/session"
	"github.com/driftlabs/driftline/internal/logger"
)

// countdownTicks holds the vehicle for three seconds at 60 ticks per
// second before control is handed over.
const countdownTicks = 180

// SFX is the slice of the audio surface the countdown cues. A nil SFX
// is silent.
type SFX interface {
	CountdownBeep()
	StartTone()
}

// Countdown is the pre-race phase: controls are locked, the camera can
// already look around, and scenery animates.
type Countdown struct {
	sess *session.Session
	mgr  *Manager
	sfx  SFX

	ticks    int
	lastSecs int
}

// NewCountdown creates the countdown state.
func NewCountdown(sess *session.Session, mgr *Manager, sfx SFX) *Countdown {
	return &Countdown{sess: sess, mgr: mgr, sfx: sfx}
}

func (c *Countdown) Enter() error {
	c.ticks = countdownTicks
	c.lastSecs = -1
	logger.Info("race countdown started")
	return nil
}

func (c *Countdown) Exit() error {
	return nil
}

func (c *Countdown) Update(sample input.Sample, now time.Time) error {
	c.sess.StepLocked(sample, now)

	secs := (c.ticks + 59) / 60
	if secs != c.lastSecs {
		c.lastSecs = secs
		if c.sfx != nil {
			c.sfx.CountdownBeep()
		}
		logger.Info("countdown", zap.Int("seconds", secs))
	}

	c.ticks--
	if c.ticks <= 0 {
		if c.sfx != nil {
			c.sfx.StartTone()
		}
		c.mgr.Change(NewRacing(c.sess, now))
	}
	return nil
}
