package parser

import "testing"

func TestMetricsPython(t *testing.T) {
	p := NewParser()
	code := "import os\n\n# helper\ndef f(x):\n    return x\n"
	m := p.Metrics(code, "python")

	// Trailing newline yields a final empty line.
	if m.TotalLines != 6 {
		t.Errorf("total lines = %d, want 6", m.TotalLines)
	}
	if m.BlankLines != 2 {
		t.Errorf("blank lines = %d, want 2", m.BlankLines)
	}
	if m.CommentLines != 1 {
		t.Errorf("comment lines = %d, want 1", m.CommentLines)
	}
	if m.CodeLines != 3 {
		t.Errorf("code lines = %d, want 3", m.CodeLines)
	}
	if m.FunctionCount != 1 || m.ClassCount != 0 || m.ImportCount != 1 {
		t.Errorf("counts = %d functions, %d classes, %d imports", m.FunctionCount, m.ClassCount, m.ImportCount)
	}
	if m.AvgFunctionLength != 2 {
		t.Errorf("avg function length = %v, want 2", m.AvgFunctionLength)
	}
	if m.ComplexityScore != 5 {
		t.Errorf("complexity = %v, want 5", m.ComplexityScore)
	}
}

func TestMetricsLineAccounting(t *testing.T) {
	testCases := []struct {
		name     string
		code     string
		language string
	}{
		{"python", pythonSample, "python"},
		{"javascript", jsSample, "javascript"},
		{"java", javaSample, "java"},
		{"generic", "let x = 1\nprint(x)\n", "lua"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewParser().Metrics(tc.code, tc.language)
			if got := m.CodeLines + m.BlankLines + m.CommentLines; got != m.TotalLines {
				t.Errorf("code+blank+comment = %d, want total %d", got, m.TotalLines)
			}
		})
	}
}

func TestMetricsEmptyInput(t *testing.T) {
	m := NewParser().Metrics("", "python")

	if m.TotalLines != 0 || m.CodeLines != 0 || m.BlankLines != 0 || m.CommentLines != 0 {
		t.Errorf("line counts = %+v, want all zero for empty input", m)
	}
	if m.FunctionCount != 0 || m.ClassCount != 0 {
		t.Errorf("structural counts = %+v, want zero", m)
	}
	if m.AvgFunctionLength != 0 {
		t.Errorf("avg function length = %v, want 0", m.AvgFunctionLength)
	}
}

func TestMetricsCommentMarkers(t *testing.T) {
	code := "// one\n/* two\n * three\n# four\nvalue = 5\n"
	m := NewParser().Metrics(code, "lua")

	if m.CommentLines != 4 {
		t.Errorf("comment lines = %d, want 4", m.CommentLines)
	}
	if m.CodeLines != 1 {
		t.Errorf("code lines = %d, want 1", m.CodeLines)
	}
}
