package api

// ValidationIssue is a single PII token the service detected but did not
// anonymize. Issues are created by the service's validation pass only.
type ValidationIssue struct {
	IdentifierType string `json:"identifier_type"`
	Value          string `json:"value"`
	Context        string `json:"context"`
	LocationHint   string `json:"location_hint"`
}

// ValidationResult is the outcome of the service's validation pass.
//
// Passed and Issues originate from independent steps of the service workflow,
// so the contract does not guarantee passed == (len(issues) == 0). Render
// whatever the service asserts.
type ValidationResult struct {
	Passed     bool              `json:"passed"`
	Issues     []ValidationIssue `json:"issues"`
	Reasoning  string            `json:"reasoning"`
	Confidence float64           `json:"confidence"`
}

// RiskLevel is the service's privacy-risk classification. It is an open
// enumeration from the client's perspective: the service may introduce new
// levels, so never branch on it without a default arm.
type RiskLevel string

const (
	RiskCritical   RiskLevel = "CRITICAL"
	RiskHigh       RiskLevel = "HIGH"
	RiskMedium     RiskLevel = "MEDIUM"
	RiskLow        RiskLevel = "LOW"
	RiskNegligible RiskLevel = "NEGLIGIBLE"
)

// Known reports whether the level is one the client recognizes.
func (l RiskLevel) Known() bool {
	switch l {
	case RiskCritical, RiskHigh, RiskMedium, RiskLow, RiskNegligible:
		return true
	}
	return false
}

// RiskAssessment is the service's privacy-risk scoring of the anonymized text.
type RiskAssessment struct {
	OverallScore   int       `json:"overall_score"`
	RiskLevel      RiskLevel `json:"risk_level"`
	GDPRCompliant  bool      `json:"gdpr_compliant"`
	Confidence     float64   `json:"confidence"`
	Reasoning      string    `json:"reasoning"`
	AssessmentDate string    `json:"assessment_date"`
}

// AnonymizeResult is the complete response for one anonymization request.
// It is produced atomically by one successful request and never partially
// populated: a body that cannot be decoded in full is rejected by the client.
type AnonymizeResult struct {
	DocumentID     string            `json:"document_id,omitempty"`
	AnonymizedText string            `json:"anonymized_text"`
	Mappings       map[string]string `json:"mappings"`
	Validation     ValidationResult  `json:"validation"`
	RiskAssessment RiskAssessment    `json:"risk_assessment"`
	Iterations     int               `json:"iterations"`
	Success        bool              `json:"success"`
	LLMProvider    string            `json:"llm_provider"`
	LLMModel       string            `json:"llm_model"`
	Error          string            `json:"error,omitempty"`
}

// HealthStatus is the response of the service's health endpoint.
type HealthStatus struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	LLMProvider string `json:"llm_provider"`
}
