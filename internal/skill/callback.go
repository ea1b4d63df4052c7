// Package skill implements the skill framework for the RPG overlay.
// Provides event-callback declaration, per-class callback registries with
// inheritance, skill instances with level progression, and event dispatch.
// Skill classes register callbacks that fire on named game events
// (player spawn, attack, jump, etc.).
package skill

import (
	"errors"
	"fmt"
)

// ErrNoEvents is returned when a callback is declared without event names.
var ErrNoEvents = errors.New("callback declared with no event names")

// CallbackFunc is the signature for skill event callbacks.
// Receives the skill instance (for reading the current level) and the event.
type CallbackFunc func(s *Skill, ev *Event) error

// Callback is a named event handler declared on a skill class.
// The event names are static metadata attached at declaration time;
// declaring a callback has no side effect beyond carrying them.
type Callback struct {
	name   string
	events []string
	fn     CallbackFunc
}

// newCallback validates and creates a callback declaration.
func newCallback(name string, fn CallbackFunc, events ...string) (Callback, error) {
	if name == "" {
		return Callback{}, errors.New("callback name is empty")
	}
	if fn == nil {
		return Callback{}, fmt.Errorf("callback %q: nil function", name)
	}
	if len(events) == 0 {
		return Callback{}, fmt.Errorf("callback %q: %w", name, ErrNoEvents)
	}
	for _, e := range events {
		if e == "" {
			return Callback{}, fmt.Errorf("callback %q: empty event name", name)
		}
	}

	evs := make([]string, len(events))
	copy(evs, events)

	return Callback{name: name, events: evs, fn: fn}, nil
}

// Name returns the callback's declared name.
func (c Callback) Name() string { return c.name }

// Events returns the event names the callback reacts to.
func (c Callback) Events() []string {
	evs := make([]string, len(c.events))
	copy(evs, c.events)
	return evs
}
