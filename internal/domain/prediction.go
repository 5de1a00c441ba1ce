package domain

// Severity levels for flagged sections
type Severity string

const (
	SeverityError      Severity = "error"
	SeveritySecurity   Severity = "security"
	SeverityWarning    Severity = "warning"
	SeverityInfo       Severity = "info"
	SeveritySuggestion Severity = "suggestion"
)

// Severities lists every valid severity, in weight order.
var Severities = []Severity{
	SeverityError,
	SeveritySecurity,
	SeverityWarning,
	SeverityInfo,
	SeveritySuggestion,
}

// Valid reports whether s is one of the known severity tags.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeveritySecurity, SeverityWarning, SeverityInfo, SeveritySuggestion:
		return true
	}
	return false
}

// RiskLevel is the three-level classification of a fused risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FlaggedSection is a single anti-pattern rule hit on one source line.
type FlaggedSection struct {
	Line     int      `json:"line"`
	Code     string   `json:"code"`
	Issue    string   `json:"issue"`
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
}

// DefectPrediction is the fused result of rule matching and statistical
// classification for one piece of source.
type DefectPrediction struct {
	RiskScore       float64          `json:"risk_score"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	FlaggedSections []FlaggedSection `json:"flagged_sections"`
	Confidence      float64          `json:"confidence"`
	IssuesDetected  []string         `json:"issues_detected"`
}
