package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// healthProbeTimeout bounds the startup health check; it should fail fast,
// unlike an anonymize request.
const healthProbeTimeout = 5 * time.Second

// startAnonymization kicks off one anonymize attempt in a background
// command. The controller enforces the input guard and single flight; the
// loading check here only exists to give immediate status feedback.
func (m *Model) startAnonymization() tea.Cmd {
	if m.store.IsLoading() {
		m.statusMsg = "Anonymization already in progress"
		return nil
	}
	m.statusMsg = ""

	ctrl := m.ctrl
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		ctrl.Run(context.Background())
		return anonymizeSettledMsg{}
	})
}

// copyAnonymizedText puts the anonymized text on the system clipboard.
func (m *Model) copyAnonymizedText() {
	result := m.store.Result()
	if result == nil || result.AnonymizedText == "" {
		m.statusMsg = "Nothing to copy yet"
		return
	}
	if err := clipboard.WriteAll(result.AnonymizedText); err != nil {
		m.statusMsg = fmt.Sprintf("Failed to copy: %v", err)
		return
	}
	m.statusMsg = "Anonymized text copied to clipboard"
}

// checkHealth probes the service health endpoint once at startup.
func (m *Model) checkHealth() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
		defer cancel()
		status, err := client.Health(ctx)
		return healthCheckedMsg{status: status, err: err}
	}
}
