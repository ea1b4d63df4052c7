// Package tick implements the recurring-timer scheduler used by timed
// skills. Timers fire a callback at a fixed interval until canceled.
package tick

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// FireFunc is invoked on every timer interval. A returned error is logged;
// the timer keeps running until canceled.
type FireFunc func() error

// Handle represents a running recurring timer.
// Thread-safe: Cancel can be called from any goroutine and is idempotent.
type Handle struct {
	key      string
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	once     sync.Once
}

// Key returns the unique timer key.
func (h *Handle) Key() string { return h.key }

// Interval returns the timer interval.
func (h *Handle) Interval() time.Duration { return h.interval }

// Cancel stops the timer and waits for its goroutine to finish.
func (h *Handle) Cancel() {
	h.once.Do(func() {
		h.cancel()
		<-h.done
	})
}

// Scheduler manages active recurring timers.
// Thread-safe for concurrent timer creation and cancellation.
type Scheduler struct {
	mu      sync.Mutex
	handles map[string]*Handle
	seq     atomic.Uint64
	closed  bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		handles: make(map[string]*Handle, 16),
	}
}

// Start creates and starts a recurring timer. name identifies the timer in
// logs; the returned handle's key is unique even for repeated names.
func (s *Scheduler) Start(name string, interval time.Duration, fn FireFunc) (*Handle, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("timer %q: interval %v must be positive", name, interval)
	}
	if fn == nil {
		return nil, fmt.Errorf("timer %q: nil fire func", name)
	}

	key := fmt.Sprintf("%s#%d", name, s.seq.Add(1))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	h := &Handle{
		key:      key,
		interval: interval,
		cancel:   cancel,
		done:     done,
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		cancel()
		return nil, fmt.Errorf("timer %q: scheduler is shut down", name)
	}
	s.handles[key] = h
	s.mu.Unlock()

	go func() {
		defer close(done)
		defer s.remove(key)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := fn(); err != nil {
					slog.Error("timer callback failed", "timer", key, "error", err)
				}
			}
		}
	}()

	return h, nil
}

// ActiveCount returns the number of running timers.
func (s *Scheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Shutdown cancels all running timers and waits for them to finish.
// The scheduler accepts no new timers afterwards.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	s.closed = true
	handles := make([]*Handle, 0, len(s.handles))
	for _, h := range s.handles {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		h.Cancel()
	}

	slog.Debug("tick scheduler shut down", "cancelled", len(handles))
}

func (s *Scheduler) remove(key string) {
	s.mu.Lock()
	delete(s.handles, key)
	s.mu.Unlock()
}
