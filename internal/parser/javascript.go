package parser

import (
	"regexp"
	"strings"

	"github.com/revguard/cli/internal/domain"
)

// Approximate JavaScript/TypeScript extraction. The patterns cover
// named declarations, arrow-function assignments, and
// function-expression assignments; blocks are delimited by
// brace-balance matching from the first brace after the match.
var (
	jsImportPattern = regexp.MustCompile(`import\s+(?:\{[^}]+\}|\*\s+as\s+\w+|\w+)\s+from\s+['"]([^'"]+)['"]`)

	jsFunctionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:async\s+)?function\s+(\w+)\s*\(([^)]*)\)\s*(?::\s*(\w+))?\s*\{`),
		regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s+)?\([^)]*\)\s*(?::\s*(\w+))?\s*=>\s*\{?`),
		regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s+)?function\s*\([^)]*\)`),
	}

	jsClassPattern = regexp.MustCompile(`class\s+(\w+)(?:\s+extends\s+(\w+))?\s*\{`)
)

// parseJavaScript extracts an approximate structural model from
// JavaScript or TypeScript source using regex patterns.
func (p *Parser) parseJavaScript(code string) domain.ParseResult {
	result := domain.ParseResult{Language: "javascript"}

	for _, m := range jsImportPattern.FindAllStringSubmatch(code, -1) {
		result.Imports = append(result.Imports, m[1])
	}

	for _, pattern := range jsFunctionPatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(code, -1) {
			matched := code[loc[0]:loc[1]]
			name := code[loc[2]:loc[3]]
			startLine := lineAt(code, loc[0])

			body := ""
			endLine := startLine
			if braceIdx := strings.Index(code[loc[0]:], "{"); braceIdx != -1 {
				var endIdx int
				body, endIdx = matchingBrace(code, loc[0]+braceIdx)
				endLine = lineAt(code, endIdx)
			}

			result.Functions = append(result.Functions, domain.Function{
				Name:      name,
				StartLine: startLine,
				EndLine:   endLine,
				Signature: matched,
				Body:      body,
				IsAsync:   strings.Contains(matched, "async"),
			})
		}
	}

	for _, loc := range jsClassPattern.FindAllStringSubmatchIndex(code, -1) {
		name := code[loc[2]:loc[3]]
		var bases []string
		if loc[4] != -1 {
			bases = []string{code[loc[4]:loc[5]]}
		}
		startLine := lineAt(code, loc[0])
		result.Classes = append(result.Classes, domain.Class{
			Name:      name,
			StartLine: startLine,
			// The class body is not delimited by this extractor.
			EndLine: startLine,
			Bases:   bases,
		})
	}

	result.ComplexityScore = estimateComplexity(code)
	return result
}
