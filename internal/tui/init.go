package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/anonctl/internal/api"
	"github.com/studiowebux/anonctl/internal/config"
	"github.com/studiowebux/anonctl/internal/controller"
	"github.com/studiowebux/anonctl/internal/store"
	"github.com/studiowebux/anonctl/internal/view"
)

// inputHeight is the number of text rows in the input panel.
const inputHeight = 6

// New creates a new TUI model
func New(settings config.Settings, version string) Model {
	st := store.New()
	client := api.NewClient(settings.ServerURL, settings.Timeout)

	input := textarea.New()
	input.Placeholder = "Enter text to anonymize..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(inputHeight)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleWarning

	return Model{
		store:        st,
		ctrl:         controller.New(st, client),
		client:       client,
		version:      version,
		mode:         ModeNormal,
		activeTab:    view.TabOriginal,
		focusedPanel: panelInput,
		input:        input,
		content:      viewport.New(80, 20),
		spin:         spin,
	}
}

// Run starts the TUI
func Run(settings config.Settings, version string) error {
	m := New(settings, version)

	p := tea.NewProgram(&m, tea.WithAltScreen())

	// Store notifications fire synchronously on the mutator's goroutine;
	// relay them into the event loop without blocking it. Sending inline
	// would deadlock when the mutation happens during Update.
	m.store.Subscribe(func(store.Snapshot) {
		go p.Send(storeChangedMsg{})
	})

	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// resize recomputes the widget dimensions after a terminal size change.
func (m *Model) resize() {
	m.input.SetWidth(max(20, m.width-4))
	m.input.SetHeight(inputHeight)

	m.content.Width = m.contentWidth()
	// Borders around both panels, tab bar, banner line and status bar.
	m.content.Height = max(3, m.height-inputHeight-9)

	m.refreshContent()
}

// contentWidth is the usable width inside the content panel border.
func (m *Model) contentWidth() int {
	return max(20, m.width-4)
}
