package skill

import (
	"errors"
	"fmt"
)

const (
	upgradeCostPerLevel     = 5
	downgradeRefundPerLevel = 4
)

// ErrNegativeLevel is returned when a skill level would go below zero.
var ErrNegativeLevel = errors.New("skill level must not be negative")

// Skill is a live instance of a skill class held by a player.
// Holds the mutable level; the callback registry lives on the shared
// class descriptor and is read-only here.
//
// Not safe for concurrent use: the host dispatches events and mutates the
// level on a single game-simulation goroutine.
type Skill struct {
	desc  *ClassDescriptor
	level int32
}

// NewSkill creates a skill instance bound to a class descriptor.
func NewSkill(desc *ClassDescriptor, level int32) (*Skill, error) {
	if desc == nil {
		return nil, errors.New("nil class descriptor")
	}
	if level < 0 {
		return nil, fmt.Errorf("skill %s: level %d: %w", desc.classID, level, ErrNegativeLevel)
	}
	return &Skill{desc: desc, level: level}, nil
}

// Descriptor returns the skill's class descriptor.
func (s *Skill) Descriptor() *ClassDescriptor { return s.desc }

// Level returns the current skill level.
func (s *Skill) Level() int32 { return s.level }

// SetLevel sets the level. Rejects negative values; the max-level ceiling
// is enforced by the leveling driver (see the economy package), not here.
func (s *Skill) SetLevel(level int32) error {
	if level < 0 {
		return fmt.Errorf("skill %s: level %d: %w", s.desc.classID, level, ErrNegativeLevel)
	}
	s.level = level
	return nil
}

// UpgradeCost returns the credit cost of raising the skill one level.
func (s *Skill) UpgradeCost() int32 {
	return (s.level + 1) * upgradeCostPerLevel
}

// DowngradeRefund returns the credits refunded for lowering one level.
func (s *Skill) DowngradeRefund() int32 {
	return s.level * downgradeRefundPerLevel
}

// HandleEvent dispatches a game event to the skill's registered callbacks.
// An event name with no registered callbacks is a normal no-op. Callbacks
// run in registry order; the first error aborts the remaining callbacks
// and propagates to the caller.
func (s *Skill) HandleEvent(ev *Event) error {
	if ev == nil {
		return errors.New("nil event")
	}
	cbs, ok := s.desc.callbacks[ev.Name]
	if !ok {
		return nil
	}
	for _, cb := range cbs {
		if err := cb.fn(s, ev); err != nil {
			return fmt.Errorf("skill %s: callback %s on %q: %w", s.desc.classID, cb.name, ev.Name, err)
		}
	}
	return nil
}
