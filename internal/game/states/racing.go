package states

import (
	"time"

	"github.com/driftlabs/driftline/internal/engine/input"
	"github.com/driftlabs/driftline/internal/game/session"
	"github.com/driftlabs/driftline/internal/logger"
)

// Racing is the live race phase: full control, lap timing, pickups.
type Racing struct {
	sess  *session.Session
	start time.Time

	resetHeld bool
}

// NewRacing creates the racing state. The lap clock starts at start.
func NewRacing(sess *session.Session, start time.Time) *Racing {
	return &Racing{sess: sess, start: start}
}

func (r *Racing) Enter() error {
	r.sess.StartRace(r.start)
	logger.Info("race started")
	return nil
}

func (r *Racing) Exit() error {
	return nil
}

func (r *Racing) Update(sample input.Sample, now time.Time) error {
	// Edge-trigger the reset key so holding R teleports once, not
	// every tick.
	if sample.Reset && !r.resetHeld {
		r.sess.Reset()
	}
	r.resetHeld = sample.Reset

	r.sess.Step(sample, now)
	return nil
}
