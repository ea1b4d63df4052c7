package skill

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/udisondev/gorpg/internal/tick"
)

// ErrTickNotImplemented is returned when a timed skill's periodic callback
// fires without the skill providing one. Programmer error: timed skill
// constructors are expected to always bind a tick function.
var ErrTickNotImplemented = errors.New("tick callback not implemented by timed skill")

// TickFunc is the periodic callback of a timed skill.
type TickFunc func(ts *TickSkill) error

// TickSkill is a skill that owns a recurring timer bound to a periodic
// callback. The timer is created at construction and tied 1:1 to the
// instance; Close must be called when the instance is destroyed.
//
// The periodic callback is checked lazily: constructing without one is
// allowed (shared logic reuse), but every trigger then fails with
// ErrTickNotImplemented until SetTickFunc binds an implementation.
//
// The callback binding is synchronized, so SetTickFunc is safe to call
// after the timer has started. The embedded Skill state is not: level
// mutation and dispatch stay on the game-simulation goroutine.
type TickSkill struct {
	*Skill
	mu     sync.Mutex
	tickFn TickFunc
	handle *tick.Handle
}

// NewTickSkill creates a timed skill instance and registers its periodic
// callback with the scheduler at the given interval. fn may be nil; see
// the type comment for the resulting behavior.
func NewTickSkill(desc *ClassDescriptor, level int32, sched *tick.Scheduler, interval time.Duration, fn TickFunc) (*TickSkill, error) {
	if sched == nil {
		return nil, errors.New("nil tick scheduler")
	}

	base, err := NewSkill(desc, level)
	if err != nil {
		return nil, err
	}

	ts := &TickSkill{Skill: base, tickFn: fn}

	handle, err := sched.Start(desc.ClassID(), interval, ts.Tick)
	if err != nil {
		return nil, fmt.Errorf("skill %s: start tick timer: %w", desc.ClassID(), err)
	}
	ts.handle = handle

	return ts, nil
}

// SetTickFunc binds the periodic callback. May be called while the timer
// is running; the next trigger uses the new callback.
func (ts *TickSkill) SetTickFunc(fn TickFunc) {
	ts.mu.Lock()
	ts.tickFn = fn
	ts.mu.Unlock()
}

// Tick invokes the periodic callback once. Called by the scheduler on every
// interval; exposed for hosts that drive ticks manually.
func (ts *TickSkill) Tick() error {
	ts.mu.Lock()
	fn := ts.tickFn
	ts.mu.Unlock()

	if fn == nil {
		return fmt.Errorf("skill %s: %w", ts.desc.classID, ErrTickNotImplemented)
	}
	return fn(ts)
}

// Handle returns the skill's timer handle.
func (ts *TickSkill) Handle() *tick.Handle { return ts.handle }

// Close cancels the recurring timer. Idempotent.
func (ts *TickSkill) Close() {
	ts.handle.Cancel()
}
