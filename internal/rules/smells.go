package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// SmellThresholds holds the limits for the threshold-based code smells.
// Smell findings are free-text issue summaries, not flagged sections:
// they carry no fixed severity/rule-id pairing.
type SmellThresholds struct {
	// LongLine is the maximum line length in characters.
	LongLine int
	// DeepNesting is the maximum nesting level, derived from leading
	// whitespace width divided by 4, floored.
	DeepNesting int
	// ComplexCondition is the maximum count of boolean-combinator
	// tokens on one line.
	ComplexCondition int
}

// DefaultSmellThresholds returns the standard smell limits.
func DefaultSmellThresholds() SmellThresholds {
	return SmellThresholds{
		LongLine:         120,
		DeepNesting:      4,
		ComplexCondition: 3,
	}
}

// booleanOperatorPattern intentionally matches the combinator words
// without boundaries, so tokens inside identifiers count too; the
// over-match is a preserved precision limitation of the smell.
var booleanOperatorPattern = regexp.MustCompile(`(?i)(and|or|&&|\|\|)`)

// DetectSmells flags lines exceeding the length, nesting, and condition
// thresholds, returning one summary string per finding.
func (e *Engine) DetectSmells(code string) []string {
	var issues []string
	lines := strings.Split(code, "\n")

	for i, line := range lines {
		if len(line) > e.thresholds.LongLine {
			issues = append(issues, fmt.Sprintf("Line %d: Line too long (> %d chars) (%d chars)",
				i+1, e.thresholds.LongLine, len(line)))
		}
	}

	for i, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		nesting := indent / 4
		if nesting > e.thresholds.DeepNesting {
			issues = append(issues, fmt.Sprintf("Line %d: Deep nesting level (> %d) (level %d)",
				i+1, e.thresholds.DeepNesting, nesting))
		}
	}

	for i, line := range lines {
		operators := len(booleanOperatorPattern.FindAllString(line, -1))
		if operators > e.thresholds.ComplexCondition {
			issues = append(issues, fmt.Sprintf("Line %d: Complex boolean condition (> %d operators)",
				i+1, e.thresholds.ComplexCondition))
		}
	}

	return issues
}
