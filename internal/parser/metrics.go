package parser

import (
	"strings"

	"github.com/revguard/cli/internal/domain"
)

// commentMarkers are the line prefixes recognized as comments across
// the supported languages.
var commentMarkers = []string{"#", "//", "/*", "*"}

// Metrics derives size and shape statistics from the source text and
// its structural model. It is a pure function of its inputs.
func (p *Parser) Metrics(code string, language string) domain.Metrics {
	result := p.Parse(code, language)

	m := domain.Metrics{
		ComplexityScore:   result.ComplexityScore,
		FunctionCount:     len(result.Functions),
		ClassCount:        len(result.Classes),
		ImportCount:       len(result.Imports),
		AvgFunctionLength: avgFunctionLength(result.Functions),
	}

	if code == "" {
		return m
	}

	lines := strings.Split(code, "\n")
	m.TotalLines = len(lines)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			m.BlankLines++
		case isComment(trimmed):
			m.CommentLines++
		}
	}
	m.CodeLines = m.TotalLines - m.BlankLines - m.CommentLines
	return m
}

func isComment(trimmed string) bool {
	for _, marker := range commentMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

func avgFunctionLength(functions []domain.Function) float64 {
	if len(functions) == 0 {
		return 0
	}
	total := 0
	for _, f := range functions {
		total += f.EndLine - f.StartLine + 1
	}
	return float64(total) / float64(len(functions))
}
