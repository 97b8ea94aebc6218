package domain

// TestFile represents a discovered UI test source file
type TestFile struct {
	Path string // Full path to the file
	Name string // Just the filename, used in messages
}

// FileOutcome records which checks a file passed
type FileOutcome struct {
	Name           string `json:"name"`
	SyntaxChecked  bool   `json:"syntax_checked"`
	SyntaxValid    bool   `json:"syntax_valid"`
	StructureValid bool   `json:"structure_valid"`
	UIPatterns     bool   `json:"ui_patterns"`
	TestMethods    int    `json:"test_methods"`
}

// Valid reports whether the file produced no errors.
func (o FileOutcome) Valid() bool {
	return o.SyntaxValid && o.StructureValid
}
