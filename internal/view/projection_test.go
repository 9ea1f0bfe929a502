package view

import (
	"reflect"
	"testing"

	"github.com/studiowebux/anonctl/internal/api"
	"github.com/studiowebux/anonctl/internal/store"
)

func sampleResult() *api.AnonymizeResult {
	return &api.AnonymizeResult{
		AnonymizedText: "[PERSON] lives in [LOCATION].",
		Mappings:       map[string]string{"John Doe": "[PERSON]", "Paris": "[LOCATION]"},
		Validation:     api.ValidationResult{Passed: true, Issues: []api.ValidationIssue{}, Reasoning: "ok", Confidence: 0.95},
		RiskAssessment: api.RiskAssessment{
			OverallScore:   10,
			RiskLevel:      api.RiskLow,
			GDPRCompliant:  true,
			Confidence:     0.9,
			Reasoning:      "minimal PII",
			AssessmentDate: "2024-01-01T00:00:00Z",
		},
		Iterations:  1,
		Success:     true,
		LLMProvider: "acme",
		LLMModel:    "m1",
	}
}

func TestProjectOriginal(t *testing.T) {
	empty := ProjectOriginal(store.Snapshot{})
	if empty.EmptyNotice != NoticeNoInput {
		t.Errorf("empty snapshot notice = %q, want %q", empty.EmptyNotice, NoticeNoInput)
	}

	withText := ProjectOriginal(store.Snapshot{InputText: "John Doe lives in Paris."})
	if withText.Text != "John Doe lives in Paris." {
		t.Errorf("Text = %q, want raw input", withText.Text)
	}
	if withText.EmptyNotice != "" {
		t.Error("non-empty input should carry no empty notice")
	}
}

func TestProjectAnonymized(t *testing.T) {
	empty := ProjectAnonymized(store.Snapshot{InputText: "text"})
	if empty.EmptyNotice != NoticeNoAnonymized {
		t.Errorf("empty notice = %q, want %q", empty.EmptyNotice, NoticeNoAnonymized)
	}

	got := ProjectAnonymized(store.Snapshot{Result: sampleResult()})
	if got.Text != "[PERSON] lives in [LOCATION]." {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestProjectReplacements_RowsSortedByOriginal(t *testing.T) {
	got := ProjectReplacements(store.Snapshot{Result: sampleResult()})

	want := []MappingRow{
		{Original: "John Doe", Replacement: "[PERSON]"},
		{Original: "Paris", Replacement: "[LOCATION]"},
	}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("Rows = %v, want %v", got.Rows, want)
	}
	if got.ShowIssues {
		t.Error("passed validation with no issues must not show the issues section")
	}
	if got.EmptyNotice != "" {
		t.Error("two mapping rows should carry no empty notice")
	}
}

func TestProjectReplacements_EmptyStates(t *testing.T) {
	noResult := ProjectReplacements(store.Snapshot{})
	if noResult.EmptyNotice != NoticeNoMappings {
		t.Errorf("no-result notice = %q, want %q", noResult.EmptyNotice, NoticeNoMappings)
	}

	result := sampleResult()
	result.Mappings = map[string]string{}
	noRows := ProjectReplacements(store.Snapshot{Result: result})
	if noRows.EmptyNotice != NoticeEmptyMappings {
		t.Errorf("empty-table notice = %q, want %q", noRows.EmptyNotice, NoticeEmptyMappings)
	}
}

func TestProjectReplacements_IssuesShownOnlyWhenFailed(t *testing.T) {
	issue := api.ValidationIssue{
		IdentifierType: "EMAIL",
		Value:          "john@example.com",
		Context:        "contact john@example.com for details",
		LocationHint:   "paragraph 2",
	}

	failed := sampleResult()
	failed.Validation = api.ValidationResult{Passed: false, Issues: []api.ValidationIssue{issue}}
	got := ProjectReplacements(store.Snapshot{Result: failed})
	if !got.ShowIssues {
		t.Error("failed validation with issues must show the issues section")
	}
	if len(got.Issues) != 1 || got.Issues[0] != issue {
		t.Errorf("Issues = %v, want the reported issue", got.Issues)
	}

	// Contract-inconsistent input: passed is true but issues are non-empty.
	// passed is authoritative for visibility.
	inconsistent := sampleResult()
	inconsistent.Validation = api.ValidationResult{Passed: true, Issues: []api.ValidationIssue{issue}}
	got = ProjectReplacements(store.Snapshot{Result: inconsistent})
	if got.ShowIssues {
		t.Error("issues must stay hidden while passed is true")
	}

	// Failed verdict with an empty list has nothing to show either.
	noIssues := sampleResult()
	noIssues.Validation = api.ValidationResult{Passed: false, Issues: nil}
	got = ProjectReplacements(store.Snapshot{Result: noIssues})
	if got.ShowIssues {
		t.Error("failed validation without issues must not show the section")
	}
}

func TestProjectRisk(t *testing.T) {
	empty := ProjectRisk(store.Snapshot{})
	if empty.EmptyNotice != NoticeNoRisk {
		t.Errorf("empty notice = %q, want %q", empty.EmptyNotice, NoticeNoRisk)
	}
	if empty.Tone != ToneNeutral {
		t.Error("empty risk view should default to the neutral tone")
	}

	got := ProjectRisk(store.Snapshot{Result: sampleResult()})
	if got.Assessment == nil {
		t.Fatal("assessment should be present")
	}
	if got.Assessment.OverallScore != 10 {
		t.Errorf("OverallScore = %d, want 10", got.Assessment.OverallScore)
	}
	if got.Tone != ToneLow {
		t.Errorf("Tone = %v, want ToneLow", got.Tone)
	}
	if got.Confidence != "90.0%" {
		t.Errorf("Confidence = %q, want 90.0%%", got.Confidence)
	}
}

func TestProjectRisk_Tones(t *testing.T) {
	cases := []struct {
		level api.RiskLevel
		want  Tone
	}{
		{api.RiskCritical, ToneCritical},
		{api.RiskHigh, ToneHigh},
		{api.RiskMedium, ToneMedium},
		{api.RiskLow, ToneLow},
		{api.RiskNegligible, ToneNegligible},
		{api.RiskLevel("ELEVATED"), ToneNeutral},
		{api.RiskLevel(""), ToneNeutral},
	}

	for _, tc := range cases {
		result := sampleResult()
		result.RiskAssessment.RiskLevel = tc.level
		got := ProjectRisk(store.Snapshot{Result: result})
		if got.Tone != tc.want {
			t.Errorf("level %q: tone = %v, want %v", tc.level, got.Tone, tc.want)
		}
	}
}

func TestProjectInsights(t *testing.T) {
	empty := ProjectInsights(store.Snapshot{})
	if empty.EmptyNotice != NoticeNoInsights {
		t.Errorf("empty notice = %q, want %q", empty.EmptyNotice, NoticeNoInsights)
	}
	if empty.ValidationConfidence != "0.0%" || empty.RiskConfidence != "0.0%" {
		t.Errorf("absent confidences = (%q, %q), want 0.0%%", empty.ValidationConfidence, empty.RiskConfidence)
	}

	got := ProjectInsights(store.Snapshot{Result: sampleResult()})
	if got.Provider != "acme" || got.Model != "m1" {
		t.Errorf("provider/model = (%q, %q), want (acme, m1)", got.Provider, got.Model)
	}
	if got.Iterations != 1 || !got.Success {
		t.Errorf("iterations/success = (%d, %v), want (1, true)", got.Iterations, got.Success)
	}
	if got.ValidationConfidence != "95.0%" {
		t.Errorf("ValidationConfidence = %q, want 95.0%%", got.ValidationConfidence)
	}
	if got.RiskConfidence != "90.0%" {
		t.Errorf("RiskConfidence = %q, want 90.0%%", got.RiskConfidence)
	}
}

func TestProject_Deterministic(t *testing.T) {
	snap := store.Snapshot{InputText: "John Doe lives in Paris.", Result: sampleResult()}
	for _, tab := range Tabs {
		first := Project(snap, tab)
		second := Project(snap, tab)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("tab %s: two projections of the same snapshot differ", tab.Title())
		}
	}
}

func TestTab_Navigation(t *testing.T) {
	if TabOriginal.Next() != TabAnonymized {
		t.Error("Next from Original should be Anonymized")
	}
	if TabInsights.Next() != TabOriginal {
		t.Error("Next from Insights should wrap to Original")
	}
	if TabOriginal.Prev() != TabInsights {
		t.Error("Prev from Original should wrap to Insights")
	}

	titles := make(map[string]bool)
	for _, tab := range Tabs {
		titles[tab.Title()] = true
	}
	if len(titles) != 5 {
		t.Errorf("expected 5 distinct tab titles, got %d", len(titles))
	}
}

func TestFormatConfidence(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0%"},
		{0.5, "50.0%"},
		{0.954, "95.4%"},
		{1, "100.0%"},
	}
	for _, tc := range cases {
		if got := FormatConfidence(tc.in); got != tc.want {
			t.Errorf("FormatConfidence(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
