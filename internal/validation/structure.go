package validation

import (
	"fmt"
	"regexp"

	"uitv/internal/config"
)

var (
	setUpPattern    = regexp.MustCompile(`override\s+func\s+setUpWithError`)
	tearDownPattern = regexp.MustCompile(`override\s+func\s+tearDownWithError`)
)

// StructureChecker recognizes XCTest class declarations and lifecycle hooks
type StructureChecker struct {
	baseClass    string
	classPattern *regexp.Regexp
}

// NewStructureChecker builds the class pattern from the configured suffix and base class,
// e.g. `class\s+\w+UITests\s*:\s*XCTestCase`
func NewStructureChecker(cfg *config.Config) *StructureChecker {
	pattern := fmt.Sprintf(`class\s+\w+%s\s*:\s*%s`,
		regexp.QuoteMeta(cfg.ClassSuffix),
		regexp.QuoteMeta(cfg.BaseClass),
	)
	return &StructureChecker{
		baseClass:    cfg.BaseClass,
		classPattern: regexp.MustCompile(pattern),
	}
}

// HasTestClass reports whether content declares a matching test class.
func (s *StructureChecker) HasTestClass(content []byte) bool {
	return s.classPattern.Match(content)
}

// HasSetUp reports whether content overrides setUpWithError.
func (s *StructureChecker) HasSetUp(content []byte) bool {
	return setUpPattern.Match(content)
}

// HasTearDown reports whether content overrides tearDownWithError.
func (s *StructureChecker) HasTearDown(content []byte) bool {
	return tearDownPattern.Match(content)
}

// BaseClass returns the required base class name
func (s *StructureChecker) BaseClass() string {
	return s.baseClass
}
