package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tspython "github.com/smacker/go-tree-sitter/python"

	"github.com/revguard/cli/internal/domain"
)

// parsePython extracts the structural model from Python source using a
// tree-sitter syntax tree. Syntax failures do not propagate: they are
// recorded as a line-tagged diagnostic with complexity forced to 0 and
// the structural sequences left empty.
func (p *Parser) parsePython(code string) domain.ParseResult {
	result := domain.ParseResult{Language: "python"}
	content := []byte(code)

	parser := sitter.NewParser()
	parser.SetLanguage(tspython.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Parse error: %v", err))
		return result
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		line := firstErrorLine(root)
		result.Errors = append(result.Errors, fmt.Sprintf("Syntax error at line %d: invalid syntax", line))
		return result
	}

	lines := strings.Split(code, "\n")

	collectPythonImports(root, content, &result.Imports)

	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		switch node.Type() {
		case "function_definition":
			result.Functions = append(result.Functions, extractPythonFunction(node, content, lines, "", nil))
		case "class_definition":
			result.Classes = append(result.Classes, extractPythonClass(node, content, lines, nil))
		case "decorated_definition":
			decorators, inner := splitDecorated(node, content)
			if inner == nil {
				continue
			}
			switch inner.Type() {
			case "function_definition":
				result.Functions = append(result.Functions, extractPythonFunction(inner, content, lines, "", decorators))
			case "class_definition":
				result.Classes = append(result.Classes, extractPythonClass(inner, content, lines, decorators))
			}
		case "expression_statement":
			if gv, ok := extractGlobalAssignment(node, content); ok {
				result.GlobalVariables = append(result.GlobalVariables, gv)
			}
		}
	}

	result.ComplexityScore = pythonComplexity(root)
	return result
}

// pythonComplexity walks the whole tree counting branching constructs:
// base 1, +1 per conditional/loop/exception handler, +1 per binary
// boolean combination (which yields N-1 for an N-operand chain), scaled
// to a 0-100 range.
func pythonComplexity(root *sitter.Node) float64 {
	raw := 1 + countBranches(root)
	return min100(float64(raw) * 5)
}

func countBranches(n *sitter.Node) int {
	count := 0
	switch n.Type() {
	case "if_statement", "elif_clause", "while_statement", "for_statement", "except_clause":
		count++
	case "boolean_operator":
		count++
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		count += countBranches(n.NamedChild(i))
	}
	return count
}

// firstErrorLine locates the first error or missing node in the tree
// and returns its 1-indexed line.
func firstErrorLine(n *sitter.Node) int {
	if n.Type() == "ERROR" || n.IsMissing() {
		return int(n.StartPoint().Row) + 1
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && child.HasError() {
			return firstErrorLine(child)
		}
	}
	return int(n.StartPoint().Row) + 1
}

// collectPythonImports records every import in the tree, nested ones
// included, in source order. Duplicates are allowed.
func collectPythonImports(n *sitter.Node, content []byte, imports *[]string) {
	switch n.Type() {
	case "import_statement":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			switch child.Type() {
			case "dotted_name":
				*imports = append(*imports, child.Content(content))
			case "aliased_import":
				if name := child.ChildByFieldName("name"); name != nil {
					*imports = append(*imports, name.Content(content))
				}
			}
		}
	case "import_from_statement":
		module := ""
		moduleNode := n.ChildByFieldName("module_name")
		if moduleNode != nil {
			module = moduleNode.Content(content)
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if moduleNode != nil && child.StartByte() == moduleNode.StartByte() {
				continue
			}
			switch child.Type() {
			case "dotted_name":
				*imports = append(*imports, module+"."+child.Content(content))
			case "aliased_import":
				if name := child.ChildByFieldName("name"); name != nil {
					*imports = append(*imports, module+"."+name.Content(content))
				}
			case "wildcard_import":
				*imports = append(*imports, module+".*")
			}
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		collectPythonImports(n.NamedChild(i), content, imports)
	}
}

// splitDecorated separates a decorated_definition into its rendered
// decorator sources (declaration order, without the leading @) and the
// wrapped definition node.
func splitDecorated(n *sitter.Node, content []byte) ([]string, *sitter.Node) {
	var decorators []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "decorator" {
			decorators = append(decorators, strings.TrimPrefix(child.Content(content), "@"))
		}
	}
	return decorators, n.ChildByFieldName("definition")
}

func extractPythonFunction(node *sitter.Node, content []byte, lines []string, className string, decorators []string) domain.Function {
	name := fieldContent(node, "name", content)
	returnType := fieldContent(node, "return_type", content)
	parameters := extractPythonParameters(node, content)

	// Rebuild the rendered signature from the extracted pieces.
	rendered := make([]string, 0, len(parameters))
	for _, param := range parameters {
		s := param.Name
		if param.Type != "" {
			s += ": " + param.Type
		}
		if param.Default != "" {
			s += " = " + param.Default
		}
		rendered = append(rendered, s)
	}
	signature := fmt.Sprintf("def %s(%s)", name, strings.Join(rendered, ", "))
	if returnType != "" {
		signature += " -> " + returnType
	}

	startLine := int(node.StartPoint().Row) + 1
	endLine := int(node.EndPoint().Row) + 1

	return domain.Function{
		Name:       name,
		StartLine:  startLine,
		EndLine:    endLine,
		Signature:  signature,
		Parameters: parameters,
		ReturnType: returnType,
		Body:       sliceLines(lines, startLine, endLine),
		Decorators: decorators,
		Docstring:  blockDocstring(node.ChildByFieldName("body"), content),
		IsAsync:    strings.HasPrefix(node.Content(content), "async"),
		IsMethod:   className != "",
		ClassName:  className,
	}
}

func extractPythonParameters(node *sitter.Node, content []byte) []domain.Parameter {
	params := node.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}
	var out []domain.Parameter
	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		switch child.Type() {
		case "identifier":
			out = append(out, domain.Parameter{Name: child.Content(content)})
		case "typed_parameter":
			param := domain.Parameter{Type: fieldContent(child, "type", content)}
			if child.NamedChildCount() > 0 {
				param.Name = child.NamedChild(0).Content(content)
			}
			out = append(out, param)
		case "default_parameter":
			out = append(out, domain.Parameter{
				Name:    fieldContent(child, "name", content),
				Default: fieldContent(child, "value", content),
			})
		case "typed_default_parameter":
			out = append(out, domain.Parameter{
				Name:    fieldContent(child, "name", content),
				Type:    fieldContent(child, "type", content),
				Default: fieldContent(child, "value", content),
			})
		}
	}
	return out
}

func extractPythonClass(node *sitter.Node, content []byte, lines []string, decorators []string) domain.Class {
	name := fieldContent(node, "name", content)

	var bases []string
	if superclasses := node.ChildByFieldName("superclasses"); superclasses != nil {
		for i := 0; i < int(superclasses.NamedChildCount()); i++ {
			bases = append(bases, superclasses.NamedChild(i).Content(content))
		}
	}

	cls := domain.Class{
		Name:       name,
		StartLine:  int(node.StartPoint().Row) + 1,
		EndLine:    int(node.EndPoint().Row) + 1,
		Bases:      bases,
		Decorators: decorators,
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return cls
	}
	cls.Docstring = blockDocstring(body, content)

	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch child.Type() {
		case "function_definition":
			cls.Methods = append(cls.Methods, extractPythonFunction(child, content, lines, name, nil))
		case "decorated_definition":
			methodDecorators, inner := splitDecorated(child, content)
			if inner != nil && inner.Type() == "function_definition" {
				cls.Methods = append(cls.Methods, extractPythonFunction(inner, content, lines, name, methodDecorators))
			}
		case "expression_statement":
			if attr, ok := extractClassAttribute(child, content); ok {
				cls.Attributes = append(cls.Attributes, attr)
			}
		}
	}
	return cls
}

// extractClassAttribute recognizes annotated class-body assignments
// such as `count: int = 0` or a bare `count: int`.
func extractClassAttribute(stmt *sitter.Node, content []byte) (domain.Attribute, bool) {
	if stmt.NamedChildCount() == 0 {
		return domain.Attribute{}, false
	}
	assign := stmt.NamedChild(0)
	if assign.Type() != "assignment" {
		return domain.Attribute{}, false
	}
	left := assign.ChildByFieldName("left")
	typeNode := assign.ChildByFieldName("type")
	if left == nil || left.Type() != "identifier" || typeNode == nil {
		return domain.Attribute{}, false
	}
	return domain.Attribute{
		Name: left.Content(content),
		Type: typeNode.Content(content),
		Line: int(assign.StartPoint().Row) + 1,
	}, true
}

// extractGlobalAssignment recognizes plain module-level assignments to
// a single name. Annotated assignments are not recorded as globals.
func extractGlobalAssignment(stmt *sitter.Node, content []byte) (domain.GlobalVariable, bool) {
	if stmt.NamedChildCount() == 0 {
		return domain.GlobalVariable{}, false
	}
	assign := stmt.NamedChild(0)
	if assign.Type() != "assignment" {
		return domain.GlobalVariable{}, false
	}
	left := assign.ChildByFieldName("left")
	right := assign.ChildByFieldName("right")
	if left == nil || right == nil || left.Type() != "identifier" || assign.ChildByFieldName("type") != nil {
		return domain.GlobalVariable{}, false
	}
	return domain.GlobalVariable{
		Name:  left.Content(content),
		Line:  int(assign.StartPoint().Row) + 1,
		Value: right.Content(content),
	}, true
}

// blockDocstring returns the cleaned docstring when the first statement
// of a block is a string literal.
func blockDocstring(body *sitter.Node, content []byte) string {
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}
	return stripStringQuotes(str.Content(content))
}

func stripStringQuotes(s string) string {
	for _, q := range []string{`"""`, "'''", `"`, `'`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return strings.TrimSpace(s[len(q) : len(s)-len(q)])
		}
	}
	return strings.TrimSpace(s)
}

func fieldContent(n *sitter.Node, field string, content []byte) string {
	child := n.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Content(content)
}

// sliceLines joins the 1-indexed inclusive line range, clamping
// out-of-range bounds.
func sliceLines(lines []string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(lines[start-1:end], "\n")
}
