package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/anonctl/internal/view"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorOrange = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#ffa500"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}).
			Padding(0, 1)

	styleTabInactive = lipgloss.NewStyle().
				Foreground(colorGray).
				Padding(0, 1)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleSectionTitle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)
)

// toneStyle maps a risk tone to its display style, neutral by default.
func toneStyle(tone view.Tone) lipgloss.Style {
	switch tone {
	case view.ToneCritical:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	case view.ToneHigh:
		return lipgloss.NewStyle().Foreground(colorRed)
	case view.ToneMedium:
		return lipgloss.NewStyle().Foreground(colorOrange)
	case view.ToneLow:
		return lipgloss.NewStyle().Foreground(colorYellow)
	case view.ToneNegligible:
		return lipgloss.NewStyle().Foreground(colorGreen)
	default:
		return lipgloss.NewStyle().Foreground(colorGray)
	}
}

// renderMain renders the main view: input panel on top, tab bar and result
// panel below, error banner and status bar at the bottom.
func (m Model) renderMain() string {
	snap := m.store.Snapshot()

	inputBorderColor := colorGray
	resultBorderColor := colorGray
	if m.focusedPanel == panelInput {
		inputBorderColor = colorGreen
	} else {
		resultBorderColor = colorGreen
	}

	header := styleTitle.Render("GDPR Text Anonymization") +
		styleSubtle.Render("  anonymize personal identifiable information using AI")

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(inputBorderColor).
		Width(max(22, m.width-2)).
		Render(m.input.View())

	contentBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(resultBorderColor).
		Width(max(22, m.width-2)).
		Height(m.content.Height).
		Render(m.content.View())

	sections := []string{
		header,
		inputBox,
		m.renderTabBar(),
		contentBox,
	}

	if snap.Error != "" {
		sections = append(sections, styleError.Render("Error: "+snap.Error))
	}
	sections = append(sections, m.renderStatusBar(snap.IsLoading))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabBar renders the five tab labels with the active one highlighted.
func (m Model) renderTabBar() string {
	var tabs []string
	for i, tab := range view.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Title())
		if tab == m.activeTab {
			tabs = append(tabs, styleTabActive.Render(label))
		} else {
			tabs = append(tabs, styleTabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStatusBar renders the bottom line: key hints plus transient status.
func (m Model) renderStatusBar(loading bool) string {
	hints := "tab: switch panel | ctrl+s: anonymize | 1-5/h/l: tabs | y: copy | ?: help | q: quit"

	status := m.statusMsg
	if loading {
		status = m.spin.View() + "Anonymizing..."
	} else if status == "" && m.serviceInfo != nil {
		status = fmt.Sprintf("service %s (v%s, %s)", m.serviceInfo.Status, m.serviceInfo.Version, m.serviceInfo.LLMProvider)
	}

	if status == "" {
		return styleSubtle.Render(hints)
	}
	return styleSubtle.Render(hints) + "  " + styleWarning.Render(status)
}

// renderTabContent derives and renders the active tab from the current
// store snapshot.
func (m Model) renderTabContent() string {
	snap := m.store.Snapshot()

	switch m.activeTab {
	case view.TabAnonymized:
		return renderAnonymized(view.ProjectAnonymized(snap))
	case view.TabReplacements:
		return renderReplacements(view.ProjectReplacements(snap))
	case view.TabRisk:
		return renderRisk(view.ProjectRisk(snap))
	case view.TabInsights:
		return renderInsights(view.ProjectInsights(snap))
	default:
		return renderOriginal(view.ProjectOriginal(snap))
	}
}

func renderOriginal(data view.OriginalData) string {
	if data.EmptyNotice != "" {
		return styleSubtle.Render(data.EmptyNotice)
	}
	return data.Text
}

func renderAnonymized(data view.AnonymizedData) string {
	if data.EmptyNotice != "" {
		return styleSubtle.Render(data.EmptyNotice)
	}
	return data.Text
}

func renderReplacements(data view.ReplacementsData) string {
	var b strings.Builder

	b.WriteString(styleSectionTitle.Render("Replacements Performed"))
	b.WriteString("\n\n")

	if data.EmptyNotice != "" {
		b.WriteString(styleSubtle.Render(data.EmptyNotice))
	} else {
		// Align the arrow column on the longest original token.
		longest := 0
		for _, row := range data.Rows {
			if len(row.Original) > longest {
				longest = len(row.Original)
			}
		}
		for _, row := range data.Rows {
			line := fmt.Sprintf("%-*s -> %s", longest, row.Original, styleSuccess.Render(row.Replacement))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if data.ShowIssues {
		b.WriteString("\n")
		b.WriteString(styleError.Render("Validation issues found"))
		b.WriteString("\n")
		b.WriteString(styleSubtle.Render("The following identifiers were detected but not anonymized:"))
		b.WriteString("\n\n")
		for _, issue := range data.Issues {
			b.WriteString(fmt.Sprintf("%s: %s\n", styleWarning.Render(issue.IdentifierType), issue.Value))
			b.WriteString(styleSubtle.Render("  context:  "+issue.Context) + "\n")
			b.WriteString(styleSubtle.Render("  location: "+issue.LocationHint) + "\n")
		}
	}

	return b.String()
}

func renderRisk(data view.RiskData) string {
	if data.EmptyNotice != "" {
		return styleSubtle.Render(data.EmptyNotice)
	}
	a := data.Assessment

	compliance := styleError.Render("✗ No")
	if a.GDPRCompliant {
		compliance = styleSuccess.Render("✓ Yes")
	}

	var b strings.Builder
	b.WriteString(styleSectionTitle.Render("Risk Assessment"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Risk Level:     %s\n", toneStyle(data.Tone).Render(string(a.RiskLevel))))
	b.WriteString(fmt.Sprintf("Overall Score:  %d/100\n", a.OverallScore))
	b.WriteString(fmt.Sprintf("GDPR Compliant: %s\n", compliance))
	b.WriteString(fmt.Sprintf("Confidence:     %s\n", data.Confidence))
	b.WriteString("\n")
	b.WriteString(styleSectionTitle.Render("Reasoning"))
	b.WriteString("\n\n")
	b.WriteString(a.Reasoning)
	b.WriteString("\n\n")
	b.WriteString(styleSubtle.Render("Assessed: " + a.AssessmentDate))
	return b.String()
}

func renderInsights(data view.InsightsData) string {
	if data.EmptyNotice != "" {
		return styleSubtle.Render(data.EmptyNotice)
	}

	status := styleError.Render("✗ Failed")
	if data.Success {
		status = styleSuccess.Render("✓ Success")
	}

	var b strings.Builder
	b.WriteString(styleSectionTitle.Render("Workflow Information"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Status:       %s\n", status))
	b.WriteString(fmt.Sprintf("Iterations:   %d\n", data.Iterations))
	b.WriteString(fmt.Sprintf("LLM Provider: %s\n", data.Provider))
	b.WriteString(fmt.Sprintf("LLM Model:    %s\n", data.Model))
	b.WriteString("\n")
	b.WriteString(styleSectionTitle.Render("Confidence Scores"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Validation:      %s\n", data.ValidationConfidence))
	b.WriteString(fmt.Sprintf("Risk Assessment: %s\n", data.RiskConfidence))
	return b.String()
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("anonctl " + m.version))
	b.WriteString("\n\n")
	b.WriteString(styleSectionTitle.Render("Keys"))
	b.WriteString("\n\n")

	keys := [][2]string{
		{"tab / esc", "switch between input and result panels"},
		{"ctrl+s", "anonymize the entered text (a/enter in the result panel)"},
		{"1-5", "select tab (Original, Anonymized, Replacements, Risk, Insights)"},
		{"h/l, left/right", "previous/next tab"},
		{"j/k, up/down", "scroll the result panel"},
		{"y", "copy the anonymized text to the clipboard"},
		{"?", "toggle this help"},
		{"q / ctrl+c", "quit"},
	}
	for _, k := range keys {
		// Pad before styling so the ANSI codes don't skew the column.
		b.WriteString(fmt.Sprintf("  %s %s\n", styleWarning.Render(fmt.Sprintf("%-18s", k[0])), k[1]))
	}

	b.WriteString("\n")
	b.WriteString(styleSubtle.Render("Press esc, q or ? to close"))
	return b.String()
}
