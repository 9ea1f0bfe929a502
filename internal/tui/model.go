package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/anonctl/internal/api"
	"github.com/studiowebux/anonctl/internal/controller"
	"github.com/studiowebux/anonctl/internal/store"
	"github.com/studiowebux/anonctl/internal/view"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
)

// Panel focus values
const (
	panelInput  = "input"
	panelResult = "result"
)

// Model represents the TUI state
type Model struct {
	// Core state
	store   *store.Store
	ctrl    *controller.Controller
	client  *api.Client
	version string

	mode         Mode
	activeTab    view.Tab
	focusedPanel string // "input" or "result"

	// Widgets
	input   textarea.Model
	content viewport.Model
	spin    spinner.Model

	// UI state
	width       int
	height      int
	statusMsg   string
	serviceInfo *api.HealthStatus
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.checkHealth())
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case spinner.TickMsg:
		// Keep the spinner ticking only while a request is outstanding.
		if m.store.IsLoading() {
			m.spin, cmd = m.spin.Update(msg)
		}

	case storeChangedMsg:
		// The store notified from outside the event loop (the request
		// goroutine); re-derive the visible tab content.
		m.refreshContent()

	case anonymizeSettledMsg:
		if m.store.Error() == "" {
			m.activeTab = view.TabAnonymized
			m.statusMsg = "Anonymization completed"
		} else {
			m.statusMsg = ""
		}
		m.refreshContent()

	case healthCheckedMsg:
		if msg.err == nil {
			m.serviceInfo = msg.status
			m.statusMsg = ""
		} else {
			m.serviceInfo = nil
			m.statusMsg = "Service unreachable: " + msg.err.Error()
		}
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// selectTab switches the visible tab and re-derives its content.
func (m *Model) selectTab(tab view.Tab) {
	m.activeTab = tab
	m.refreshContent()
	m.content.GotoTop()
}

// refreshContent re-projects the store snapshot into the content viewport.
func (m *Model) refreshContent() {
	m.content.SetContent(m.renderTabContent())
}

// Custom message types
type storeChangedMsg struct{}

type anonymizeSettledMsg struct{}

type healthCheckedMsg struct {
	status *api.HealthStatus
	err    error
}
