package preview

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/hoverintent"
)

func newTestModel(t *testing.T) (Model, *hoverintent.ManualScheduler) {
	t.Helper()
	sched := hoverintent.NewManualScheduler()
	m := NewModel(content.MustDefault(), WithIntentOptions(hoverintent.WithScheduler(sched)))
	t.Cleanup(m.Close)
	return m, sched
}

func motion(y int) tea.MouseMsg {
	return tea.MouseMsg{X: 4, Y: y, Action: tea.MouseActionMotion}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// drain delivers the pending menu transition to the model.
func drain(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.Init()()
	changed, ok := msg.(MenuChangedMsg)
	require.True(t, ok)
	m, cmd := step(t, m, changed)
	require.NotNil(t, cmd, "the model keeps listening for transitions")
	return m
}

func TestHoverOpensMenuAfterDelay(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t)
	m, _ = step(t, m, motion(0))
	require.True(t, m.Hovering())
	require.Equal(t, 1, sched.Armed())

	sched.Advance(hoverintent.OpenDelay)
	m = drain(t, m)
	require.True(t, m.Open())
	require.Contains(t, m.View(), "COMING SOON")
	require.Contains(t, m.View(), "Datenanalyse")
}

func TestHoverLeaveWithinDelayKeepsMenuClosed(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t)
	m, _ = step(t, m, motion(0))
	sched.Advance(10 * time.Millisecond)
	m, _ = step(t, m, motion(40))
	require.False(t, m.Hovering())
	sched.Advance(time.Second)

	require.False(t, m.Open())
	require.Zero(t, sched.Armed())
	require.NotContains(t, m.View(), "COMING SOON")
}

func TestMotionInsideHeaderDoesNotRearm(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t)
	m, _ = step(t, m, motion(0))
	sched.Advance(15 * time.Millisecond)
	m, _ = step(t, m, motion(1))
	sched.Advance(5 * time.Millisecond)

	m = drain(t, m)
	require.True(t, m.Open(), "moving within the header must not restart the open delay")
}

func TestOpenMenuExtendsHoverZone(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t)
	m, _ = step(t, m, motion(0))
	sched.Advance(hoverintent.OpenDelay)
	m = drain(t, m)

	closedZone := lipgloss.Height(m.renderHeader())
	m, _ = step(t, m, motion(closedZone+2))
	require.True(t, m.Hovering(), "the menu rows belong to the header")
	require.Zero(t, sched.Armed())
}

func TestFocusAndBlurKeys(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = drain(t, m)
	require.True(t, m.Open())

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = drain(t, m)
	require.False(t, m.Open())
}

func TestQuitClosesState(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t)
	m, _ = step(t, m, motion(0))
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Zero(t, sched.Armed())
	require.Empty(t, m.View())
}
