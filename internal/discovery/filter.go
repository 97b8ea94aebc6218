package discovery

import (
	"path/filepath"
	"strings"

	"uitv/internal/domain"
)

// Filter narrows discovered files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps files whose name matches pattern.
// Supports globs like "*TabBar*UITests.swift" and plain substrings like "Accessibility".
func (f *Filter) FilterByName(files []domain.TestFile, pattern string) []domain.TestFile {
	if pattern == "" {
		return files
	}

	var filtered []domain.TestFile
	for _, file := range files {
		if matchName(file.Name, pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match is anchored; fall back to ordered substring matching
	// so "*Tab*Bar*" also hits "SwiftUITabBarRegisterUITests.swift".
	parts := strings.FieldsFunc(pattern, func(r rune) bool { return r == '*' || r == '?' })
	if len(parts) == 0 {
		return false
	}
	rest := name
	for _, part := range parts {
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return true
}
