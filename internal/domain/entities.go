package domain

// Parameter is a single declared parameter of a function.
type Parameter struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default string `json:"default,omitempty"`
}

// Function holds the structural information extracted for one function.
// Line numbers are 1-indexed and inclusive; EndLine >= StartLine.
type Function struct {
	Name       string      `json:"name"`
	StartLine  int         `json:"start_line"`
	EndLine    int         `json:"end_line"`
	Signature  string      `json:"signature"`
	Parameters []Parameter `json:"parameters"`
	ReturnType string      `json:"return_type,omitempty"`
	Body       string      `json:"body"`
	Decorators []string    `json:"decorators"`
	Docstring  string      `json:"docstring,omitempty"`
	IsAsync    bool        `json:"is_async"`
	IsMethod   bool        `json:"is_method"`
	ClassName  string      `json:"class_name,omitempty"`
}

// Attribute is a declared class attribute.
type Attribute struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Line int    `json:"line"`
}

// Class holds the structural information extracted for one class.
// Every method's ClassName equals the owning class's Name.
type Class struct {
	Name       string      `json:"name"`
	StartLine  int         `json:"start_line"`
	EndLine    int         `json:"end_line"`
	Bases      []string    `json:"bases"`
	Methods    []Function  `json:"methods"`
	Attributes []Attribute `json:"attributes"`
	Docstring  string      `json:"docstring,omitempty"`
	Decorators []string    `json:"decorators"`
}

// GlobalVariable is a module-level variable assignment.
type GlobalVariable struct {
	Name  string `json:"name"`
	Line  int    `json:"line"`
	Value string `json:"value"`
}

// ParseResult is the complete structural model for one piece of source.
// A non-empty Errors slice signals degraded (not necessarily failed)
// extraction; Functions and Classes may still be partially populated.
type ParseResult struct {
	Language        string           `json:"language"`
	Functions       []Function       `json:"functions"`
	Classes         []Class          `json:"classes"`
	Imports         []string         `json:"imports"`
	GlobalVariables []GlobalVariable `json:"global_variables"`
	Errors          []string         `json:"errors"`
	ComplexityScore float64          `json:"complexity_score"`
}

// Metrics contains size and shape statistics for a piece of source.
type Metrics struct {
	TotalLines        int     `json:"total_lines"`
	CodeLines         int     `json:"code_lines"`
	BlankLines        int     `json:"blank_lines"`
	CommentLines      int     `json:"comment_lines"`
	FunctionCount     int     `json:"functions_count"`
	ClassCount        int     `json:"classes_count"`
	ImportCount       int     `json:"imports_count"`
	ComplexityScore   float64 `json:"complexity_score"`
	AvgFunctionLength float64 `json:"avg_function_length"`
}
