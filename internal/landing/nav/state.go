package nav

import (
	"sync"
	"time"

	"dataskools.io/landing-web/internal/landing/hoverintent"
)

// MenuState owns the single "menu open" flag of the navigation bar. The flag is
// written only through set, which is reached from the hover-intent controller
// and from Focus/Blur on the menu trigger.
type MenuState struct {
	mu       sync.RWMutex
	open     bool
	onChange func(bool)
	intent   *hoverintent.Controller
}

// NewMenuState returns a closed menu driven by a hover-intent controller
// configured with opts.
func NewMenuState(opts ...hoverintent.Option) *MenuState {
	s := &MenuState{}
	s.intent = hoverintent.New(func() { s.set(true) }, func() { s.set(false) }, opts...)
	return s
}

// OnChange registers a callback invoked after every visible state transition.
// It may be called from a timer goroutine.
func (s *MenuState) OnChange(fn func(open bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// IsOpen reports the current visibility.
func (s *MenuState) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// CloseDelay reports the hover-intent close delay.
func (s *MenuState) CloseDelay() time.Duration {
	return s.intent.CloseDelay()
}

// PointerEnter forwards a pointer-enter on the header.
func (s *MenuState) PointerEnter() { s.intent.Enter() }

// PointerLeave forwards a pointer-leave on the header.
func (s *MenuState) PointerLeave() { s.intent.Leave() }

// Focus opens the menu immediately.
func (s *MenuState) Focus() { s.set(true) }

// Blur closes the menu immediately.
func (s *MenuState) Blur() { s.set(false) }

// Close tears the state holder down: pending timers are cancelled and the menu
// is left closed.
func (s *MenuState) Close() {
	s.intent.Stop()
	s.set(false)
}

func (s *MenuState) set(open bool) {
	s.mu.Lock()
	changed := s.open != open
	s.open = open
	fn := s.onChange
	s.mu.Unlock()
	if changed && fn != nil {
		fn(open)
	}
}
