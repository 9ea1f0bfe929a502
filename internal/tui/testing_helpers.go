package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/anonctl/internal/config"
)

// CreateTestModel creates a Model instance for testing with a dead-end
// server address; nothing talks to the network unless a test makes it.
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	m := New(config.Settings{
		ServerURL: "http://127.0.0.1:1",
		Timeout:   time.Second,
	}, "test-version")

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return &m
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// pressKey feeds a single key press into the model and returns the command.
func pressKey(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}
