package nav

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dataskools.io/landing-web/internal/landing/hoverintent"
)

type transitions struct {
	mu  sync.Mutex
	log []bool
}

func (tr *transitions) record(open bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.log = append(tr.log, open)
}

func (tr *transitions) snapshot() []bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]bool(nil), tr.log...)
}

func newTestState(t *testing.T, opts ...hoverintent.Option) (*MenuState, *hoverintent.ManualScheduler, *transitions) {
	t.Helper()
	sched := hoverintent.NewManualScheduler()
	state := NewMenuState(append([]hoverintent.Option{hoverintent.WithScheduler(sched)}, opts...)...)
	tr := &transitions{}
	state.OnChange(tr.record)
	t.Cleanup(state.Close)
	return state, sched, tr
}

func TestMenuStateStartsClosed(t *testing.T) {
	t.Parallel()

	state, _, _ := newTestState(t)
	require.False(t, state.IsOpen())
	require.Equal(t, hoverintent.DefaultCloseDelay, state.CloseDelay())
}

func TestMenuStateHoverOpensAndClosesWithDelays(t *testing.T) {
	t.Parallel()

	state, sched, tr := newTestState(t, hoverintent.WithCloseDelay(200*time.Millisecond))

	state.PointerEnter()
	require.False(t, state.IsOpen())
	sched.Advance(hoverintent.OpenDelay)
	require.True(t, state.IsOpen())

	state.PointerLeave()
	sched.Advance(199 * time.Millisecond)
	require.True(t, state.IsOpen(), "menu must stay open until the close delay elapses")
	sched.Advance(time.Millisecond)
	require.False(t, state.IsOpen())

	require.Equal(t, []bool{true, false}, tr.snapshot())
}

func TestMenuStateBriefCrossingNeverOpens(t *testing.T) {
	t.Parallel()

	state, sched, tr := newTestState(t)

	state.PointerEnter()
	sched.Advance(10 * time.Millisecond)
	state.PointerLeave()
	sched.Advance(time.Second)

	require.False(t, state.IsOpen())
	require.Empty(t, tr.snapshot())
}

func TestMenuStateFocusAndBlurAreImmediate(t *testing.T) {
	t.Parallel()

	state, _, tr := newTestState(t)

	state.Focus()
	require.True(t, state.IsOpen())
	state.Focus()
	state.Blur()
	require.False(t, state.IsOpen())

	require.Equal(t, []bool{true, false}, tr.snapshot(), "repeated focus must not emit a transition")
}

func TestMenuStateCloseCancelsPendingOpen(t *testing.T) {
	t.Parallel()

	state, sched, _ := newTestState(t)

	state.PointerEnter()
	state.Close()
	sched.Advance(time.Second)
	require.False(t, state.IsOpen())
	require.Zero(t, sched.Armed())

	state.PointerEnter()
	sched.Advance(time.Second)
	require.False(t, state.IsOpen(), "events after teardown are ignored")
}
