// Package input translates SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKey
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Action Action
	Width  int // Window size for EventResize, in screen coordinates
	Height int
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains the SDL event queue without blocking.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			key := KeyFromScancode(e.Keysym.Scancode)
			if key == KeyUnknown {
				continue
			}
			i.events = append(i.events, Event{
				Type:   EventKey,
				Key:    key,
				Action: keyAction(e.Type, e.Repeat),
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

func keyAction(eventType uint32, repeat uint8) Action {
	switch {
	case eventType == sdl.KEYUP:
		return Release
	case repeat != 0:
		return Repeat
	default:
		return Press
	}
}
