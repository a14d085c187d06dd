// Package preview renders the navigation bar and mega menu in a terminal. The
// menu is driven by the same hover-intent controller the page documents, with
// mouse motion over the header standing in for pointer events.
package preview

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/hoverintent"
	"dataskools.io/landing-web/internal/landing/nav"
)

// MenuChangedMsg reports a menu visibility transition.
type MenuChangedMsg struct {
	Open bool
}

// changeFeed forwards state transitions from timer goroutines to the program.
// It holds at most the latest value so a slow reader never blocks a timer.
type changeFeed struct {
	mu sync.Mutex
	ch chan bool
}

func newChangeFeed() *changeFeed {
	return &changeFeed{ch: make(chan bool, 1)}
}

func (f *changeFeed) publish(open bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.ch:
	default:
	}
	f.ch <- open
}

func (f *changeFeed) wait() tea.Msg {
	return MenuChangedMsg{Open: <-f.ch}
}

// Model is the bubbletea state of the preview.
type Model struct {
	catalog  *content.Catalog
	state    *nav.MenuState
	feed     *changeFeed
	logger   *zap.Logger
	open     bool
	hovering bool
	focused  bool
	width    int
	quitting bool
}

// Option customises NewModel.
type Option func(*modelOptions)

type modelOptions struct {
	intent []hoverintent.Option
	logger *zap.Logger
}

// WithIntentOptions configures the hover-intent controller behind the menu.
func WithIntentOptions(opts ...hoverintent.Option) Option {
	return func(o *modelOptions) {
		o.intent = append(o.intent, opts...)
	}
}

// WithLogger sets the logger used for menu transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(o *modelOptions) {
		o.logger = logger
	}
}

// NewModel builds a preview over cat with a closed menu.
func NewModel(cat *content.Catalog, opts ...Option) Model {
	options := modelOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&options)
	}

	feed := newChangeFeed()
	state := nav.NewMenuState(options.intent...)
	state.OnChange(feed.publish)

	return Model{
		catalog: cat,
		state:   state,
		feed:    feed,
		logger:  options.logger,
		width:   120,
	}
}

// Init starts listening for menu transitions.
func (m Model) Init() tea.Cmd {
	return m.feed.wait
}

// Open reports the menu visibility the view currently shows.
func (m Model) Open() bool {
	return m.open
}

// Hovering reports whether the pointer is inside the header region.
func (m Model) Hovering() bool {
	return m.hovering
}

// Close tears down the menu state and its pending timer.
func (m Model) Close() {
	m.state.Close()
}

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MenuChangedMsg:
		m.open = msg.Open
		m.logger.Debug("menu state changed", zap.Bool("open", msg.Open))
		return m, m.feed.wait
	case tea.MouseMsg:
		inside := msg.Y < m.hoverZoneHeight()
		switch {
		case inside && !m.hovering:
			m.hovering = true
			m.state.PointerEnter()
		case !inside && m.hovering:
			m.hovering = false
			m.state.PointerLeave()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.state.Close()
			return m, tea.Quit
		case "tab":
			m.focused = !m.focused
			if m.focused {
				m.state.Focus()
			} else {
				m.state.Blur()
			}
		case "esc":
			m.focused = false
			m.state.Blur()
		}
		return m, nil
	}
	return m, nil
}

// hoverZoneHeight is the number of rows that count as "inside the header".
// The open menu belongs to the header, so it extends the zone.
func (m Model) hoverZoneHeight() int {
	height := lipgloss.Height(m.renderHeader())
	if m.open {
		height += lipgloss.Height(m.renderMenu())
	}
	return height
}
