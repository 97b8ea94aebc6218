package discovery

import (
	"testing"

	"uitv/internal/domain"
)

func files(names ...string) []domain.TestFile {
	out := make([]domain.TestFile, 0, len(names))
	for _, n := range names {
		out = append(out, domain.TestFile{Path: "/tests/" + n, Name: n})
	}
	return out
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	all := files(
		"TabBarStyleUITests.swift",
		"TabBarActionUITests.swift",
		"TabBarAccessibilityUITests.swift",
		"SwiftUITabBarRegisterUITests.swift",
	)

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{name: "empty pattern returns all", pattern: "", expected: 4},
		{name: "exact glob", pattern: "TabBarStyleUITests.swift", expected: 1},
		{name: "suffix wildcard", pattern: "*ActionUITests.swift", expected: 1},
		{name: "substring wildcard", pattern: "*Ac*", expected: 2},
		{name: "ordered parts", pattern: "*Swift*Register*", expected: 1},
		{name: "parts out of order", pattern: "*Register*Swift", expected: 0},
		{name: "simple contains match", pattern: "Accessibility", expected: 1},
		{name: "no matches", pattern: "*NonExistent*", expected: 0},
		{name: "only wildcards", pattern: "**", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(all, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EmptyList(t *testing.T) {
	result := NewFilter().FilterByName(nil, "*UITests.swift")
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d items", len(result))
	}
}
