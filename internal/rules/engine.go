package rules

import (
	"strings"

	"github.com/revguard/cli/internal/domain"
)

// Engine applies the rule catalog line-by-line against raw source.
// Matching is purely textual and has no structural awareness: false
// positives inside string and comment literals are accepted in exchange
// for language independence. Safe for concurrent use.
type Engine struct {
	catalog    *Catalog
	thresholds SmellThresholds
}

// NewEngine creates a pattern rule engine over the given catalog using
// default code-smell thresholds.
func NewEngine(catalog *Catalog) *Engine {
	return NewEngineWithThresholds(catalog, DefaultSmellThresholds())
}

// NewEngineWithThresholds creates a pattern rule engine with custom
// code-smell thresholds.
func NewEngineWithThresholds(catalog *Catalog, thresholds SmellThresholds) *Engine {
	return &Engine{catalog: catalog, thresholds: thresholds}
}

// Catalog returns the engine's rule catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Scan matches every applicable rule against each line of code
// independently. A line may match multiple rules and yields one
// FlaggedSection per match. Output order is rule-major, then
// line-ascending within a rule.
func (e *Engine) Scan(code string, language string) []domain.FlaggedSection {
	lines := strings.Split(code, "\n")
	var flagged []domain.FlaggedSection

	for _, rule := range e.catalog.ForLanguage(language) {
		for i, line := range lines {
			if rule.Matches(line) {
				flagged = append(flagged, domain.FlaggedSection{
					Line:     i + 1,
					Code:     strings.TrimSpace(line),
					Issue:    rule.Message,
					Severity: rule.Severity,
					Rule:     rule.ID,
				})
			}
		}
	}
	return flagged
}

// Summarize counts flagged sections by severity over the fixed severity
// set, defaulting absent severities to 0.
func Summarize(flagged []domain.FlaggedSection) map[domain.Severity]int {
	summary := make(map[domain.Severity]int, len(domain.Severities))
	for _, severity := range domain.Severities {
		summary[severity] = 0
	}
	for _, section := range flagged {
		summary[section.Severity]++
	}
	return summary
}
