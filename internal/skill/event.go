package skill

import "github.com/udisondev/gorpg/internal/model"

// Event carries game event data to skill callbacks.
// Params holds host-specific values keyed by name (damage, victim, etc.).
type Event struct {
	Name   string
	Player *model.Player // Player whose skill set is reacting
	Params map[string]any
}

// NewEvent creates an event with the given name and owning player.
func NewEvent(name string, player *model.Player) *Event {
	return &Event{
		Name:   name,
		Player: player,
		Params: make(map[string]any, 4),
	}
}

// WithParam sets a named parameter and returns the event for chaining.
func (e *Event) WithParam(key string, value any) *Event {
	if e.Params == nil {
		e.Params = make(map[string]any, 4)
	}
	e.Params[key] = value
	return e
}

// IntParam returns an integer parameter. ok is false if the key is absent
// or holds a non-integer value.
func (e *Event) IntParam(key string) (value int32, ok bool) {
	if e.Params == nil {
		return 0, false
	}
	switch v := e.Params[key].(type) {
	case int32:
		return v, true
	case int:
		return int32(v), true
	case int64:
		return int32(v), true
	default:
		return 0, false
	}
}

// FloatParam returns a float parameter.
func (e *Event) FloatParam(key string) (value float64, ok bool) {
	if e.Params == nil {
		return 0, false
	}
	switch v := e.Params[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// StringParam returns a string parameter.
func (e *Event) StringParam(key string) (value string, ok bool) {
	if e.Params == nil {
		return "", false
	}
	v, ok := e.Params[key].(string)
	return v, ok
}

// BoolParam returns a boolean parameter.
func (e *Event) BoolParam(key string) (value bool, ok bool) {
	if e.Params == nil {
		return false, false
	}
	v, ok := e.Params[key].(bool)
	return v, ok
}

// PlayerParam returns a player parameter (an attacker, a victim).
func (e *Event) PlayerParam(key string) (player *model.Player, ok bool) {
	if e.Params == nil {
		return nil, false
	}
	p, ok := e.Params[key].(*model.Player)
	return p, ok
}
