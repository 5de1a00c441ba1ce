package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/revguard/cli/internal/domain"
)

var (
	javaImportPattern = regexp.MustCompile(`import\s+([\w.]+);`)
	javaClassPattern  = regexp.MustCompile(`(?:public\s+)?(?:abstract\s+)?class\s+(\w+)(?:\s+extends\s+(\w+))?(?:\s+implements\s+([\w,\s]+))?\s*\{`)
	javaMethodPattern = regexp.MustCompile(`(?:public|private|protected)?\s*(?:static\s+)?(?:final\s+)?(\w+(?:<[^>]+>)?)\s+(\w+)\s*\(([^)]*)\)\s*(?:throws\s+[\w,\s]+)?\s*\{`)

	// Control-flow constructs the method pattern can false-match on.
	javaKeywords = map[string]bool{
		"if": true, "while": true, "for": true, "switch": true, "try": true, "catch": true,
	}
)

// parseJava extracts an approximate structural model from Java source
// using regex patterns. Method and class end lines are not delimited by
// this extractor.
func (p *Parser) parseJava(code string) domain.ParseResult {
	result := domain.ParseResult{Language: "java"}

	for _, m := range javaImportPattern.FindAllStringSubmatch(code, -1) {
		result.Imports = append(result.Imports, m[1])
	}

	for _, loc := range javaClassPattern.FindAllStringSubmatchIndex(code, -1) {
		name := code[loc[2]:loc[3]]
		var bases []string
		if loc[4] != -1 {
			bases = append(bases, code[loc[4]:loc[5]])
		}
		if loc[6] != -1 {
			for _, iface := range strings.Split(code[loc[6]:loc[7]], ",") {
				bases = append(bases, strings.TrimSpace(iface))
			}
		}
		startLine := lineAt(code, loc[0])
		result.Classes = append(result.Classes, domain.Class{
			Name:      name,
			StartLine: startLine,
			EndLine:   startLine,
			Bases:     bases,
		})
	}

	for _, loc := range javaMethodPattern.FindAllStringSubmatchIndex(code, -1) {
		returnType := code[loc[2]:loc[3]]
		name := code[loc[4]:loc[5]]
		params := code[loc[6]:loc[7]]

		if javaKeywords[name] {
			continue
		}

		var parameters []domain.Parameter
		if strings.TrimSpace(params) != "" {
			for _, param := range strings.Split(params, ",") {
				parts := strings.Fields(param)
				if len(parts) >= 2 {
					parameters = append(parameters, domain.Parameter{
						Name: parts[len(parts)-1],
						Type: strings.Join(parts[:len(parts)-1], " "),
					})
				}
			}
		}

		startLine := lineAt(code, loc[0])
		result.Functions = append(result.Functions, domain.Function{
			Name:       name,
			StartLine:  startLine,
			EndLine:    startLine,
			Signature:  fmt.Sprintf("%s %s(%s)", returnType, name, params),
			Parameters: parameters,
			ReturnType: returnType,
		})
	}

	result.ComplexityScore = estimateComplexity(code)
	return result
}
