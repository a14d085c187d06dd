package hoverintent

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a Scheduler driven by explicit Advance calls instead of
// wall-clock time. It is used by tests and by anything that needs deterministic
// hover sequencing.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	owner   *ManualScheduler
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{owner: s, due: s.now + d, seq: s.seq, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	t.owner.removeLocked(t)
	return true
}

// Advance moves the clock forward and runs every timer that became due, in due order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		next.stopped = true
		s.removeLocked(next)
		s.now = next.due
		s.mu.Unlock()
		next.fn()
	}
}

// Armed returns the number of timers that are scheduled and not stopped.
func (s *ManualScheduler) Armed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Now returns the scheduler's virtual elapsed time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) nextDueLocked(target time.Duration) *manualTimer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due == s.timers[j].due {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].due < s.timers[j].due
	})
	if s.timers[0].due > target {
		return nil
	}
	return s.timers[0]
}

func (s *ManualScheduler) removeLocked(t *manualTimer) {
	for i, candidate := range s.timers {
		if candidate == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}
