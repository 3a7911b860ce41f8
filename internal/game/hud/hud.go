// Package hud formats race telemetry for display. State computation
// never touches presentation directly; it hands raw numbers to the HUD,
// which formats them and pushes named fields into an injected Sink.
package hud

import (
	"fmt"
	"time"
)

// Field names pushed to the sink.
const (
	FieldSpeed   = "speed"
	FieldLap     = "lap"
	FieldLapTime = "lap_time"
	FieldBest    = "best_lap"
	FieldSwords  = "swords"
)

// kmhPerUnit converts world-units-per-tick speed to a display km/h.
const kmhPerUnit = 400

// Sink receives formatted HUD fields. Implementations decide where the
// text goes: window title, log line, overlay.
type Sink interface {
	SetField(name, value string)
}

// HUD formats raw race values and feeds a sink.
type HUD struct {
	sink Sink
}

// New creates a HUD bound to the given sink.
func New(sink Sink) *HUD {
	return &HUD{sink: sink}
}

// Update pushes the current race values to the sink, formatted.
func (h *HUD) Update(speed float32, lap int, lapTime, best time.Duration, swords int) {
	kmh := speed * kmhPerUnit
	if kmh < 0 {
		kmh = -kmh
	}
	h.sink.SetField(FieldSpeed, fmt.Sprintf("%.0f km/h", kmh))
	h.sink.SetField(FieldLap, fmt.Sprintf("Lap %d", lap+1))
	h.sink.SetField(FieldLapTime, FormatDuration(lapTime))
	if best > 0 {
		h.sink.SetField(FieldBest, FormatDuration(best))
	} else {
		h.sink.SetField(FieldBest, "--:--.---")
	}
	h.sink.SetField(FieldSwords, fmt.Sprintf("%d", swords))
}

// FormatDuration renders a lap time as m:ss.mmm.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int(d / time.Second)
	millis := int(d/time.Millisecond) % 1000
	return fmt.Sprintf("%d:%02d.%03d", minutes, seconds, millis)
}
