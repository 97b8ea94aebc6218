package discovery

import (
	"fmt"
	"os"
	"regexp"
)

// testMethodPattern matches XCTest methods such as
//
//	func testTabBarIsVisible() throws {
//	@MainActor func testLaunch() {
var testMethodPattern = regexp.MustCompile(`func\s+(test\w+)\(`)

// Parser extracts test method names from Swift sources
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestMethods returns test method names in declaration order.
// Duplicates (overloads) are reported once.
func (p *Parser) FindTestMethods(content string) []string {
	seen := make(map[string]bool)
	var methods []string
	for _, match := range testMethodPattern.FindAllStringSubmatch(content, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		methods = append(methods, name)
	}
	return methods
}

// FindTestCases reads a file and returns its test method names
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return p.FindTestMethods(string(content)), nil
}
