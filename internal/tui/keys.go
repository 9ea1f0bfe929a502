package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/anonctl/internal/view"
)

// handleKeyPress routes key presses based on current mode and focus
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+s":
		return m.startAnonymization()
	}

	if m.mode == ModeHelp {
		switch msg.String() {
		case "esc", "q", "?":
			m.mode = ModeNormal
		}
		return nil
	}

	if m.focusedPanel == panelInput {
		return m.handleInputKeys(msg)
	}
	return m.handleResultKeys(msg)
}

// handleInputKeys feeds keys into the textarea while the input panel has
// focus. The textarea binding is the only writer of the store's input text.
func (m *Model) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "tab":
		m.input.Blur()
		m.focusedPanel = panelResult
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetInputText(m.input.Value())
	m.refreshContent()
	return cmd
}

// handleResultKeys handles navigation while the result panel has focus.
func (m *Model) handleResultKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "i", "tab":
		m.focusedPanel = panelInput
		return m.input.Focus()
	case "a", "enter":
		return m.startAnonymization()
	case "1":
		m.selectTab(view.TabOriginal)
	case "2":
		m.selectTab(view.TabAnonymized)
	case "3":
		m.selectTab(view.TabReplacements)
	case "4":
		m.selectTab(view.TabRisk)
	case "5":
		m.selectTab(view.TabInsights)
	case "h", "left":
		m.selectTab(m.activeTab.Prev())
	case "l", "right":
		m.selectTab(m.activeTab.Next())
	case "y":
		m.copyAnonymizedText()
	case "?":
		m.mode = ModeHelp
	default:
		// j/k, arrows, page keys scroll the content viewport.
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return cmd
	}
	return nil
}
