package analyzer

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/revguard/cli/internal/classifier"
	"github.com/revguard/cli/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewDefaultEngine()
	if err != nil {
		t.Fatalf("NewDefaultEngine() error = %v", err)
	}
	return e
}

func TestAnalyzeDefectiveCode(t *testing.T) {
	e := newTestEngine(t)
	code := "try:\n    data = eval(source)\nexcept:\n    pass\n"

	prediction := e.Analyze(code, "python")

	if len(prediction.FlaggedSections) == 0 {
		t.Fatal("no flagged sections for clearly defective code")
	}
	if prediction.RiskScore <= 0 || prediction.RiskScore > 1 {
		t.Errorf("risk score = %v, want within (0, 1]", prediction.RiskScore)
	}
	if prediction.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8 from a trained classifier", prediction.Confidence)
	}

	var sawBareExcept bool
	for _, section := range prediction.FlaggedSections {
		if section.Rule == "python/bare-except" {
			sawBareExcept = true
			if section.Line != 3 {
				t.Errorf("bare-except line = %d, want 3", section.Line)
			}
		}
	}
	if !sawBareExcept {
		t.Error("bare-except not flagged")
	}

	// Every flagged section is echoed as a line-tagged issue.
	if len(prediction.IssuesDetected) < len(prediction.FlaggedSections) {
		t.Errorf("issues = %d, want at least one per flagged section (%d)",
			len(prediction.IssuesDetected), len(prediction.FlaggedSections))
	}
	if !strings.Contains(prediction.IssuesDetected[0], "Line ") {
		t.Errorf("issues[0] = %q, want line-tagged summary", prediction.IssuesDetected[0])
	}
}

func TestAnalyzeIncludesSmells(t *testing.T) {
	e := newTestEngine(t)
	code := "x = 1\n" + strings.Repeat("y", 130) + "\n"

	prediction := e.Analyze(code, "python")

	var sawSmell bool
	for _, issue := range prediction.IssuesDetected {
		if strings.Contains(issue, "Line too long") {
			sawSmell = true
		}
	}
	if !sawSmell {
		t.Errorf("issues = %v, want the long-line smell included", prediction.IssuesDetected)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	e := newTestEngine(t)
	prediction := e.Analyze("", "python")

	if len(prediction.FlaggedSections) != 0 {
		t.Errorf("flagged = %+v, want none", prediction.FlaggedSections)
	}
	// With no pattern findings the risk is the weighted classifier
	// probability alone.
	wantRisk, wantLevel := FuseScores(0, classifier.Default().Classify(""))
	if prediction.RiskScore != wantRisk {
		t.Errorf("risk = %v, want %v", prediction.RiskScore, wantRisk)
	}
	if prediction.RiskLevel != wantLevel {
		t.Errorf("level = %v, want %v", prediction.RiskLevel, wantLevel)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	e := newTestEngine(t)
	code := "password = 'hunter2'\nif a and b and c and d or e:\n    pass\n"

	first := e.Analyze(code, "python")
	second := e.Analyze(code, "python")
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of the same input differs")
	}
}

func TestAnalyzeRiskLevelConsistent(t *testing.T) {
	e := newTestEngine(t)
	samples := []struct {
		code     string
		language string
	}{
		{"", "python"},
		{"def add(a, b):\n    return a + b\n", "python"},
		{"eval(x)\nexcept:\n    pass\npassword = 'x'\n", "python"},
		{"var a = 1;\neval(input);\n", "javascript"},
		{"System.out.println(x);\n", "java"},
	}

	for _, sample := range samples {
		prediction := e.Analyze(sample.code, sample.language)
		wantLevel := domain.RiskLow
		switch {
		case prediction.RiskScore >= 0.7:
			wantLevel = domain.RiskHigh
		case prediction.RiskScore >= 0.4:
			wantLevel = domain.RiskMedium
		}
		if prediction.RiskLevel != wantLevel {
			t.Errorf("Analyze(%.20q) level = %v, want %v for score %v",
				sample.code, prediction.RiskLevel, wantLevel, prediction.RiskScore)
		}
		if math.Abs(prediction.RiskScore*1000-math.Round(prediction.RiskScore*1000)) > 1e-9 {
			t.Errorf("Analyze(%.20q) score = %v, not rounded to 3 decimals", sample.code, prediction.RiskScore)
		}
	}
}

func TestEngineParseAndMetrics(t *testing.T) {
	e := newTestEngine(t)
	code := "def f(x):\n    return x\n"

	result := e.Parse(code, "python")
	if len(result.Functions) != 1 || result.Functions[0].Name != "f" {
		t.Errorf("Parse() functions = %+v, want [f]", result.Functions)
	}

	m := e.Metrics(code, "python")
	if m.FunctionCount != 1 {
		t.Errorf("Metrics() function count = %d, want 1", m.FunctionCount)
	}
	if m.TotalLines != 3 {
		t.Errorf("Metrics() total lines = %d, want 3", m.TotalLines)
	}
}

func TestEngineSummarize(t *testing.T) {
	e := newTestEngine(t)
	prediction := e.Analyze("except:\n    pass\n", "python")

	summary := e.Summarize(prediction.FlaggedSections)
	if summary[domain.SeverityError] != 1 {
		t.Errorf("summary[error] = %d, want 1", summary[domain.SeverityError])
	}
	if summary[domain.SeverityInfo] != 1 {
		t.Errorf("summary[info] = %d, want 1", summary[domain.SeverityInfo])
	}
	if len(summary) != len(domain.Severities) {
		t.Errorf("summary has %d keys, want every severity present", len(summary))
	}
}
