package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/revguard/cli/internal/domain"
	"github.com/revguard/cli/internal/rules"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityError:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		domain.SeveritySecurity:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		domain.SeverityWarning:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		domain.SeverityInfo:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		domain.SeveritySuggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}

	riskStyles = map[domain.RiskLevel]lipgloss.Style{
		domain.RiskHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		domain.RiskMedium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		domain.RiskLow:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
)

// RenderPrediction returns a formatted, styled string for a defect
// analysis result and its severity summary.
func RenderPrediction(prediction *domain.DefectPrediction, summary map[domain.Severity]int) string {
	if prediction == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("🔍 Defect Analysis"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 32))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Risk Score: %.3f (%s)\n", prediction.RiskScore,
		riskStyles[prediction.RiskLevel].Render(string(prediction.RiskLevel)))
	fmt.Fprintf(&b, "Confidence: %.1f\n\n", prediction.Confidence)

	b.WriteString(headerStyle.Render("Severity Summary"))
	b.WriteString("\n")
	for _, severity := range domain.Severities {
		fmt.Fprintf(&b, "  %-10s %d\n", severity, summary[severity])
	}
	b.WriteString("\n")

	if len(prediction.FlaggedSections) > 0 {
		b.WriteString(headerStyle.Render("Flagged Sections"))
		b.WriteString("\n")
		for _, section := range prediction.FlaggedSections {
			fmt.Fprintf(&b, "  %s line %d: %s [%s]\n",
				severityStyles[section.Severity].Render(fmt.Sprintf("%-10s", section.Severity)),
				section.Line, section.Issue, section.Rule)
			fmt.Fprintf(&b, "             %s\n", section.Code)
		}
		b.WriteString("\n")
	}

	if len(prediction.IssuesDetected) > 0 {
		fmt.Fprintf(&b, "%s (%d)\n", headerStyle.Render("Issues"), len(prediction.IssuesDetected))
		for _, issue := range prediction.IssuesDetected {
			fmt.Fprintf(&b, "  • %s\n", issue)
		}
	} else {
		b.WriteString("No issues detected.\n")
	}

	return b.String()
}

// RenderParseResult returns a formatted string for a structural model.
func RenderParseResult(result *domain.ParseResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", headerStyle.Render("📐 Structure"), result.Language)
	b.WriteString(strings.Repeat("=", 32))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Complexity Score: %.0f\n\n", result.ComplexityScore)

	for _, err := range result.Errors {
		fmt.Fprintf(&b, "  ⚠️  %s\n", err)
	}
	if len(result.Errors) > 0 {
		b.WriteString("\n")
	}

	if len(result.Functions) > 0 {
		fmt.Fprintf(&b, "%s (%d)\n", headerStyle.Render("Functions"), len(result.Functions))
		for _, fn := range result.Functions {
			fmt.Fprintf(&b, "  %s  (lines %d-%d)\n", fn.Signature, fn.StartLine, fn.EndLine)
		}
		b.WriteString("\n")
	}

	if len(result.Classes) > 0 {
		fmt.Fprintf(&b, "%s (%d)\n", headerStyle.Render("Classes"), len(result.Classes))
		for _, cls := range result.Classes {
			bases := ""
			if len(cls.Bases) > 0 {
				bases = fmt.Sprintf(" (%s)", strings.Join(cls.Bases, ", "))
			}
			fmt.Fprintf(&b, "  %s%s  (lines %d-%d, %d methods)\n",
				cls.Name, bases, cls.StartLine, cls.EndLine, len(cls.Methods))
		}
		b.WriteString("\n")
	}

	if len(result.Imports) > 0 {
		fmt.Fprintf(&b, "%s (%d)\n", headerStyle.Render("Imports"), len(result.Imports))
		for _, imp := range result.Imports {
			fmt.Fprintf(&b, "  %s\n", imp)
		}
		b.WriteString("\n")
	}

	if len(result.GlobalVariables) > 0 {
		fmt.Fprintf(&b, "%s (%d)\n", headerStyle.Render("Globals"), len(result.GlobalVariables))
		for _, gv := range result.GlobalVariables {
			fmt.Fprintf(&b, "  %s = %s  (line %d)\n", gv.Name, gv.Value, gv.Line)
		}
	}

	return b.String()
}

// RenderMetrics returns a formatted string for a metrics record.
func RenderMetrics(m *domain.Metrics) string {
	if m == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("📊 Code Metrics"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 32))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Total Lines:      %d", m.TotalLines),
		fmt.Sprintf("Code Lines:       %d", m.CodeLines),
		fmt.Sprintf("Blank Lines:      %d", m.BlankLines),
		fmt.Sprintf("Comment Lines:    %d", m.CommentLines),
		fmt.Sprintf("Functions:        %d", m.FunctionCount),
		fmt.Sprintf("Classes:          %d", m.ClassCount),
		fmt.Sprintf("Imports:          %d", m.ImportCount),
		fmt.Sprintf("Complexity Score: %.0f", m.ComplexityScore),
		fmt.Sprintf("Avg Function Len: %.1f", m.AvgFunctionLength),
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	return b.String()
}

// RenderRules returns a formatted listing of the rule catalog.
func RenderRules(catalog []rules.Rule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d rules)\n", headerStyle.Render("📋 Rule Catalog"), len(catalog))
	b.WriteString(strings.Repeat("=", 32))
	b.WriteString("\n\n")

	for _, rule := range catalog {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			severityStyles[rule.Severity].Render(fmt.Sprintf("%-10s", rule.Severity)),
			rule.ID, rule.Message)
	}

	return b.String()
}
