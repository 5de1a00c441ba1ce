package parser

import (
	"fmt"
	"strings"

	"github.com/revguard/cli/internal/domain"
)

// Parser extracts a structural model (functions, classes, imports,
// globals) from a source snippet. Python gets a full syntax-tree
// extractor; JavaScript/TypeScript and Java use regex-based approximate
// extractors; everything else degrades to a heuristic, metrics-only
// analysis reported through ParseResult.Errors.
//
// A Parser holds no mutable state and is safe for concurrent use.
type Parser struct{}

// NewParser creates a new structural parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the structural model for code declared as the given
// language. It never returns an error: malformed code is the expected
// domain and is reported through the result's Errors slice.
func (p *Parser) Parse(code string, language string) domain.ParseResult {
	switch Classify(language) {
	case LangPython:
		return p.parsePython(code)
	case LangJavaScript, LangTypeScript:
		return p.parseJavaScript(code)
	case LangJava:
		return p.parseJava(code)
	default:
		return p.parseGeneric(code, language)
	}
}

// parseGeneric is the fallback arm for languages without a structural
// extractor: empty model, one diagnostic naming the language, and a
// keyword-count complexity estimate.
func (p *Parser) parseGeneric(code, language string) domain.ParseResult {
	return domain.ParseResult{
		Language:        language,
		Errors:          []string{fmt.Sprintf("No specific parser for %s, using generic analysis", language)},
		ComplexityScore: estimateComplexity(code),
	}
}

// complexityKeywords is the fixed keyword/operator set counted by the
// heuristic complexity estimator. Substring counting is deliberate: it
// matches keywords inside identifiers and literals, a known precision
// limitation of the heuristic arm.
var complexityKeywords = []string{
	"if", "else", "for", "while", "switch", "case", "try", "catch", "&&", "||", "?",
}

// estimateComplexity approximates complexity for languages without
// tree-level support: base 1, +1 per control-flow keyword occurrence,
// scaled to a 0-100 range.
func estimateComplexity(code string) float64 {
	complexity := 1
	for _, kw := range complexityKeywords {
		complexity += strings.Count(code, kw)
	}
	return min100(float64(complexity) * 2)
}

// matchingBrace returns the block starting at the opening brace at
// start and the index of its balanced closing brace. Unterminated
// blocks consume to end-of-text rather than erroring.
func matchingBrace(code string, start int) (string, int) {
	depth := 0
	for i := start; i < len(code); i++ {
		switch code[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return code[start : i+1], i
			}
		}
	}
	return code[start:], len(code)
}

// lineAt returns the 1-indexed line number of byte offset off.
func lineAt(code string, off int) int {
	return strings.Count(code[:off], "\n") + 1
}

func min100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
