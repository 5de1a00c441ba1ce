// Package analyzer wires the structural parser, the pattern rule
// engine, and the statistical classifier into the engine's externally
// visible operations: Parse, Metrics, Analyze, and Summarize.
package analyzer

import (
	"fmt"

	"github.com/revguard/cli/internal/classifier"
	"github.com/revguard/cli/internal/domain"
	"github.com/revguard/cli/internal/parser"
	"github.com/revguard/cli/internal/rules"
)

// Engine is the analysis facade. All components are read-only after
// construction, so an Engine is safe for unlimited concurrent use.
type Engine struct {
	parser     *parser.Parser
	rules      *rules.Engine
	classifier *classifier.Classifier
}

// NewEngine assembles an analysis engine from explicitly constructed
// components.
func NewEngine(p *parser.Parser, r *rules.Engine, c *classifier.Classifier) *Engine {
	return &Engine{parser: p, rules: r, classifier: c}
}

// NewDefaultEngine builds an engine with the embedded rule catalog,
// default smell thresholds, and the process-wide trained classifier.
func NewDefaultEngine() (*Engine, error) {
	catalog, err := rules.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule catalog: %w", err)
	}
	return NewEngine(parser.NewParser(), rules.NewEngine(catalog), classifier.Default()), nil
}

// Rules returns the engine's rule catalog.
func (e *Engine) Rules() *rules.Catalog {
	return e.rules.Catalog()
}

// Parse extracts the structural model for the code.
func (e *Engine) Parse(code, language string) domain.ParseResult {
	return e.parser.Parse(code, language)
}

// Metrics derives size and shape statistics for the code.
func (e *Engine) Metrics(code, language string) domain.Metrics {
	return e.parser.Metrics(code, language)
}

// Analyze runs the full defect analysis: anti-pattern rule matching,
// code-smell detection, and statistical classification, fused into a
// single bounded risk score. It never fails on malformed input code.
func (e *Engine) Analyze(code, language string) domain.DefectPrediction {
	flagged := e.rules.Scan(code, language)

	issues := make([]string, 0, len(flagged))
	for _, section := range flagged {
		issues = append(issues, fmt.Sprintf("Line %d: %s", section.Line, section.Issue))
	}
	issues = append(issues, e.rules.DetectSmells(code)...)

	mlProbability := e.classifier.Classify(code)
	risk, level := FuseScores(PatternScore(flagged), mlProbability)

	return domain.DefectPrediction{
		RiskScore:       risk,
		RiskLevel:       level,
		FlaggedSections: flagged,
		Confidence:      e.classifier.Confidence(),
		IssuesDetected:  issues,
	}
}

// Summarize counts flagged sections by severity over the fixed severity
// set.
func (e *Engine) Summarize(flagged []domain.FlaggedSection) map[domain.Severity]int {
	return rules.Summarize(flagged)
}
