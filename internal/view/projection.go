// Package view derives the per-tab view data from a store snapshot. Every
// projection is a pure, synchronous function of the snapshot: no I/O, no
// mutation, identical output for identical input. Rendering (colors, layout)
// stays in the tui package; this package decides only what each tab shows.
package view

import (
	"fmt"
	"sort"

	"github.com/studiowebux/anonctl/internal/api"
	"github.com/studiowebux/anonctl/internal/store"
)

// Tab identifies one of the five result views.
type Tab int

const (
	TabOriginal Tab = iota
	TabAnonymized
	TabReplacements
	TabRisk
	TabInsights
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabOriginal, TabAnonymized, TabReplacements, TabRisk, TabInsights}

// Title returns the tab's display label.
func (t Tab) Title() string {
	switch t {
	case TabOriginal:
		return "Original"
	case TabAnonymized:
		return "Anonymized"
	case TabReplacements:
		return "Replacements"
	case TabRisk:
		return "Risk"
	case TabInsights:
		return "Insights"
	default:
		return "Unknown"
	}
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(Tabs) - 1) % len(Tabs))
}

// Empty-state notices, shown when the corresponding result data is absent.
const (
	NoticeNoInput       = "No text entered yet. Enter text in the input panel to get started."
	NoticeNoAnonymized  = "No anonymized text yet. Run anonymize to process your text."
	NoticeNoMappings    = "No replacements yet. Anonymize text to see mappings."
	NoticeEmptyMappings = "No replacements were made."
	NoticeNoRisk        = "No risk assessment yet. Anonymize text to see risk analysis."
	NoticeNoInsights    = "No insights yet. Anonymize text to see workflow information."
)

// TabData is the view bundle for one tab.
type TabData interface {
	isTabData()
}

// OriginalData is the original tab: the raw input text.
type OriginalData struct {
	Text        string
	EmptyNotice string // set when Text is empty
}

// AnonymizedData is the anonymized tab.
type AnonymizedData struct {
	Text        string
	EmptyNotice string // set when no result is present
}

// MappingRow is one original-to-replacement pair.
type MappingRow struct {
	Original    string
	Replacement string
}

// ReplacementsData is the replacements tab: the mapping table plus, when the
// validation verdict warrants it, the unresolved-PII issues section.
type ReplacementsData struct {
	Rows        []MappingRow
	EmptyNotice string // set when no result, or when the mapping table is empty

	// ShowIssues is true only when the service asserts passed == false AND
	// reported at least one issue. A non-empty issue list under passed == true
	// is contract-inconsistent input and stays hidden; passed is authoritative.
	ShowIssues bool
	Issues     []api.ValidationIssue
}

// Tone classifies a risk level for styling. Unrecognized levels map to
// ToneNeutral so a new service-side level renders instead of crashing.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneCritical
	ToneHigh
	ToneMedium
	ToneLow
	ToneNegligible
)

// RiskData is the risk tab: the full assessment with a styling tone.
type RiskData struct {
	Assessment  *api.RiskAssessment
	Tone        Tone
	Confidence  string // formatted percentage
	EmptyNotice string // set when no result is present
}

// InsightsData is the insights tab: workflow metadata and confidence scores.
type InsightsData struct {
	Provider             string
	Model                string
	Iterations           int
	Success              bool
	ValidationConfidence string // formatted percentage, "0.0%" when absent
	RiskConfidence       string
	EmptyNotice          string // set when no result is present
}

func (OriginalData) isTabData()     {}
func (AnonymizedData) isTabData()   {}
func (ReplacementsData) isTabData() {}
func (RiskData) isTabData()         {}
func (InsightsData) isTabData()     {}

// Project derives the view data for the selected tab from the snapshot.
func Project(snap store.Snapshot, tab Tab) TabData {
	switch tab {
	case TabAnonymized:
		return ProjectAnonymized(snap)
	case TabReplacements:
		return ProjectReplacements(snap)
	case TabRisk:
		return ProjectRisk(snap)
	case TabInsights:
		return ProjectInsights(snap)
	default:
		return ProjectOriginal(snap)
	}
}

// ProjectOriginal derives the original tab.
func ProjectOriginal(snap store.Snapshot) OriginalData {
	if snap.InputText == "" {
		return OriginalData{EmptyNotice: NoticeNoInput}
	}
	return OriginalData{Text: snap.InputText}
}

// ProjectAnonymized derives the anonymized tab.
func ProjectAnonymized(snap store.Snapshot) AnonymizedData {
	if snap.Result == nil {
		return AnonymizedData{EmptyNotice: NoticeNoAnonymized}
	}
	return AnonymizedData{Text: snap.Result.AnonymizedText}
}

// ProjectReplacements derives the replacements tab. Rows are ordered by
// original token: the wire format (a JSON object) carries no order, so a
// deterministic one is imposed here.
func ProjectReplacements(snap store.Snapshot) ReplacementsData {
	if snap.Result == nil {
		return ReplacementsData{EmptyNotice: NoticeNoMappings}
	}

	rows := make([]MappingRow, 0, len(snap.Result.Mappings))
	for original, replacement := range snap.Result.Mappings {
		rows = append(rows, MappingRow{Original: original, Replacement: replacement})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Original < rows[j].Original })

	data := ReplacementsData{Rows: rows}
	if len(rows) == 0 {
		data.EmptyNotice = NoticeEmptyMappings
	}

	validation := snap.Result.Validation
	if !validation.Passed && len(validation.Issues) > 0 {
		data.ShowIssues = true
		data.Issues = validation.Issues
	}
	return data
}

// ProjectRisk derives the risk tab.
func ProjectRisk(snap store.Snapshot) RiskData {
	if snap.Result == nil {
		return RiskData{Tone: ToneNeutral, EmptyNotice: NoticeNoRisk}
	}
	assessment := snap.Result.RiskAssessment
	return RiskData{
		Assessment: &assessment,
		Tone:       toneFor(assessment.RiskLevel),
		Confidence: FormatConfidence(assessment.Confidence),
	}
}

// ProjectInsights derives the insights tab.
func ProjectInsights(snap store.Snapshot) InsightsData {
	if snap.Result == nil {
		return InsightsData{
			ValidationConfidence: FormatConfidence(0),
			RiskConfidence:       FormatConfidence(0),
			EmptyNotice:          NoticeNoInsights,
		}
	}
	r := snap.Result
	return InsightsData{
		Provider:             r.LLMProvider,
		Model:                r.LLMModel,
		Iterations:           r.Iterations,
		Success:              r.Success,
		ValidationConfidence: FormatConfidence(r.Validation.Confidence),
		RiskConfidence:       FormatConfidence(r.RiskAssessment.Confidence),
	}
}

// FormatConfidence renders a [0,1] confidence as a one-decimal percentage.
func FormatConfidence(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// toneFor maps a risk level to its styling tone, neutral for anything the
// client does not recognize.
func toneFor(level api.RiskLevel) Tone {
	switch level {
	case api.RiskCritical:
		return ToneCritical
	case api.RiskHigh:
		return ToneHigh
	case api.RiskMedium:
		return ToneMedium
	case api.RiskLow:
		return ToneLow
	case api.RiskNegligible:
		return ToneNegligible
	default:
		return ToneNeutral
	}
}
