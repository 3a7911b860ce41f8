// Package input handles SDL2 input events and per-frame key state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Sample is the per-frame input snapshot the game consumes: driving
// intents as booleans plus the free-look drag delta. Where it came from
// (keyboard, gamepad hat, synthetic test input) is invisible to
// consumers.
type Sample struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
	Reset      bool

	LookX float32
	LookY float32
}

// Input polls SDL events and tracks held-key state between frames.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool

	mouseDX float32
	mouseDY float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and refreshes held-key state.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.mouseDX = 0
	i.mouseDY = 0

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if e.Repeat == 0 {
					i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
				}
				i.held[e.Keysym.Scancode] = true
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
				delete(i.held, e.Keysym.Scancode)
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsHeld reports whether a key is currently held down.
func (i *Input) IsHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// Sample reduces the current state to the per-frame driving snapshot.
// WASD and arrow keys both drive.
func (i *Input) Sample() Sample {
	return Sample{
		Accelerate: i.held[sdl.SCANCODE_W] || i.held[sdl.SCANCODE_UP],
		Brake:      i.held[sdl.SCANCODE_S] || i.held[sdl.SCANCODE_DOWN],
		SteerLeft:  i.held[sdl.SCANCODE_A] || i.held[sdl.SCANCODE_LEFT],
		SteerRight: i.held[sdl.SCANCODE_D] || i.held[sdl.SCANCODE_RIGHT],
		Reset:      i.held[sdl.SCANCODE_R],
		LookX:      i.mouseDX,
		LookY:      i.mouseDY,
	}
}
