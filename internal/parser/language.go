package parser

import "strings"

// Language is the closed set of language tags the parser dispatches on.
// Tags outside the set classify as LangOther and take the generic,
// metrics-only arm.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangOther      Language = "other"
)

// Classify maps a caller-supplied language tag onto the closed Language
// set. Matching is case-insensitive and accepts common short aliases.
func Classify(tag string) Language {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "python", "python3", "py":
		return LangPython
	case "javascript", "js", "jsx", "node":
		return LangJavaScript
	case "typescript", "ts", "tsx":
		return LangTypeScript
	case "java":
		return LangJava
	default:
		return LangOther
	}
}
