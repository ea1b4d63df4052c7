package tick

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_StartAndFire(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()

	var fires atomic.Int32
	h, err := s.Start("regen", 20*time.Millisecond, func() error {
		fires.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if s.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, want 1", s.ActiveCount())
	}

	time.Sleep(110 * time.Millisecond)

	if got := fires.Load(); got < 2 {
		t.Errorf("timer fired %d times, want at least 2", got)
	}

	h.Cancel()
	if s.ActiveCount() != 0 {
		t.Errorf("ActiveCount() after cancel = %d, want 0", s.ActiveCount())
	}
}

func TestScheduler_CancelStopsFiring(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()

	var fires atomic.Int32
	h, err := s.Start("regen", 20*time.Millisecond, func() error {
		fires.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	h.Cancel()
	before := fires.Load()

	time.Sleep(80 * time.Millisecond)
	if got := fires.Load(); got != before {
		t.Errorf("cancelled timer fired: %d -> %d", before, got)
	}

	// Cancel is idempotent
	h.Cancel()
}

func TestScheduler_FailingCallbackKeepsRunning(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()

	var fires atomic.Int32
	_, err := s.Start("flaky", 20*time.Millisecond, func() error {
		fires.Add(1)
		return errors.New("tick failed")
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	time.Sleep(110 * time.Millisecond)
	if got := fires.Load(); got < 2 {
		t.Errorf("timer fired %d times despite errors, want at least 2", got)
	}
}

func TestScheduler_UniqueKeysForSameName(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()

	h1, err := s.Start("regen", time.Hour, func() error { return nil })
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	h2, err := s.Start("regen", time.Hour, func() error { return nil })
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if h1.Key() == h2.Key() {
		t.Errorf("handles share key %q", h1.Key())
	}
	if s.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, want 2", s.ActiveCount())
	}
}

func TestScheduler_Shutdown(t *testing.T) {
	s := NewScheduler()

	for i := 0; i < 3; i++ {
		if _, err := s.Start("regen", time.Hour, func() error { return nil }); err != nil {
			t.Fatalf("Start() error: %v", err)
		}
	}

	s.Shutdown()
	if s.ActiveCount() != 0 {
		t.Errorf("ActiveCount() after shutdown = %d, want 0", s.ActiveCount())
	}

	if _, err := s.Start("late", time.Second, func() error { return nil }); err == nil {
		t.Error("Start() after Shutdown should fail")
	}
}

func TestScheduler_StartValidation(t *testing.T) {
	s := NewScheduler()
	defer s.Shutdown()

	if _, err := s.Start("bad", 0, func() error { return nil }); err == nil {
		t.Error("Start() with zero interval should fail")
	}
	if _, err := s.Start("bad", time.Second, nil); err == nil {
		t.Error("Start() with nil func should fail")
	}
}
