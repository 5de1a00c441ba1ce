package parser

import "testing"

const jsSample = `import React from 'react';
import { useState } from 'react';

function add(a, b) {
  return a + b;
}

const mul = async (a, b) => {
  return a * b;
};

class Widget extends Base {
  render() {}
}
`

func TestParseJavaScript(t *testing.T) {
	p := NewParser()
	result := p.Parse(jsSample, "javascript")

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	t.Run("imports", func(t *testing.T) {
		want := []string{"react", "react"}
		if len(result.Imports) != len(want) {
			t.Fatalf("imports = %v, want %v", result.Imports, want)
		}
		for i := range want {
			if result.Imports[i] != want[i] {
				t.Errorf("imports[%d] = %q, want %q", i, result.Imports[i], want[i])
			}
		}
	})

	t.Run("functions", func(t *testing.T) {
		if len(result.Functions) != 2 {
			t.Fatalf("functions = %+v, want 2", result.Functions)
		}
		add := result.Functions[0]
		if add.Name != "add" || add.StartLine != 4 || add.EndLine != 6 {
			t.Errorf("add = %q at %d-%d, want add at 4-6", add.Name, add.StartLine, add.EndLine)
		}
		if add.IsAsync {
			t.Error("add.IsAsync = true, want false")
		}
		mul := result.Functions[1]
		if mul.Name != "mul" || mul.StartLine != 8 || mul.EndLine != 10 {
			t.Errorf("mul = %q at %d-%d, want mul at 8-10", mul.Name, mul.StartLine, mul.EndLine)
		}
		if !mul.IsAsync {
			t.Error("mul.IsAsync = false, want true")
		}
	})

	t.Run("classes", func(t *testing.T) {
		if len(result.Classes) != 1 {
			t.Fatalf("classes = %+v, want 1", result.Classes)
		}
		cls := result.Classes[0]
		if cls.Name != "Widget" {
			t.Errorf("class name = %q, want Widget", cls.Name)
		}
		if len(cls.Bases) != 1 || cls.Bases[0] != "Base" {
			t.Errorf("bases = %v, want [Base]", cls.Bases)
		}
		// Regex extraction does not delimit class bodies.
		if cls.StartLine != 12 || cls.EndLine != 12 {
			t.Errorf("lines = %d-%d, want 12-12", cls.StartLine, cls.EndLine)
		}
	})
}

func TestParseTypeScriptReportsJavaScript(t *testing.T) {
	p := NewParser()
	code := "const double = (x: number): number => {\n  return x * 2;\n};\n"
	result := p.Parse(code, "typescript")

	if result.Language != "javascript" {
		t.Errorf("language = %q, want javascript", result.Language)
	}
	if len(result.Functions) != 1 || result.Functions[0].Name != "double" {
		t.Fatalf("functions = %+v, want [double]", result.Functions)
	}
}

func TestParseJavaScriptUnterminatedBody(t *testing.T) {
	p := NewParser()
	code := "function broken(a) {\n  return a;\n"
	result := p.Parse(code, "js")

	if len(result.Functions) != 1 {
		t.Fatalf("functions = %+v, want 1", result.Functions)
	}
	fn := result.Functions[0]
	if fn.EndLine != 3 {
		t.Errorf("end line = %d, want body consumed to end of text", fn.EndLine)
	}
}
