package parser

import "testing"

const javaSample = `import java.util.List;
import java.io.IOException;

public class OrderService extends BaseService implements Runnable, Closeable {
    private final List<String> items;

    public int total(int a, int b) {
        if (a > 0 && b > 0) {
            return a + b;
        } else if (a > 0) {
            return a;
        }
        return b;
    }

    private List<String> getItems() {
        return items;
    }

    public void run() throws IOException {
    }
}
`

func TestParseJava(t *testing.T) {
	p := NewParser()
	result := p.Parse(javaSample, "java")

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Language != "java" {
		t.Errorf("language = %q, want java", result.Language)
	}

	t.Run("imports", func(t *testing.T) {
		want := []string{"java.util.List", "java.io.IOException"}
		if len(result.Imports) != len(want) {
			t.Fatalf("imports = %v, want %v", result.Imports, want)
		}
		for i := range want {
			if result.Imports[i] != want[i] {
				t.Errorf("imports[%d] = %q, want %q", i, result.Imports[i], want[i])
			}
		}
	})

	t.Run("class", func(t *testing.T) {
		if len(result.Classes) != 1 {
			t.Fatalf("classes = %+v, want 1", result.Classes)
		}
		cls := result.Classes[0]
		if cls.Name != "OrderService" {
			t.Errorf("class name = %q, want OrderService", cls.Name)
		}
		wantBases := []string{"BaseService", "Runnable", "Closeable"}
		if len(cls.Bases) != len(wantBases) {
			t.Fatalf("bases = %v, want %v", cls.Bases, wantBases)
		}
		for i := range wantBases {
			if cls.Bases[i] != wantBases[i] {
				t.Errorf("bases[%d] = %q, want %q", i, cls.Bases[i], wantBases[i])
			}
		}
		// Regex extraction does not delimit class bodies.
		if cls.StartLine != 4 || cls.EndLine != 4 {
			t.Errorf("lines = %d-%d, want 4-4", cls.StartLine, cls.EndLine)
		}
	})

	t.Run("methods", func(t *testing.T) {
		// "else if (...)" must not be reported as a method.
		if len(result.Functions) != 3 {
			t.Fatalf("functions = %+v, want 3", result.Functions)
		}

		total := result.Functions[0]
		if total.Name != "total" || total.ReturnType != "int" {
			t.Errorf("functions[0] = %q returning %q, want total returning int", total.Name, total.ReturnType)
		}
		if total.Signature != "int total(int a, int b)" {
			t.Errorf("signature = %q", total.Signature)
		}
		if len(total.Parameters) != 2 {
			t.Fatalf("parameters = %+v, want 2", total.Parameters)
		}
		if total.Parameters[0].Name != "a" || total.Parameters[0].Type != "int" {
			t.Errorf("parameters[0] = %+v", total.Parameters[0])
		}
		if total.StartLine != 7 || total.EndLine != 7 {
			t.Errorf("lines = %d-%d, want 7-7", total.StartLine, total.EndLine)
		}

		getItems := result.Functions[1]
		if getItems.Name != "getItems" || getItems.ReturnType != "List<String>" {
			t.Errorf("functions[1] = %q returning %q, want getItems returning List<String>", getItems.Name, getItems.ReturnType)
		}
		if len(getItems.Parameters) != 0 {
			t.Errorf("parameters = %+v, want none", getItems.Parameters)
		}

		run := result.Functions[2]
		if run.Name != "run" || run.ReturnType != "void" {
			t.Errorf("functions[2] = %q returning %q, want run returning void", run.Name, run.ReturnType)
		}
	})

	if result.ComplexityScore <= 0 {
		t.Errorf("complexity = %v, want > 0", result.ComplexityScore)
	}
}
