package validation

import (
	"fmt"
	"regexp"
)

// PatternChecker looks for common XCUI assertion idioms
type PatternChecker struct {
	patterns []*regexp.Regexp
}

// NewPatternChecker compiles the given patterns
func NewPatternChecker(patterns []string) (*PatternChecker, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid UI pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &PatternChecker{patterns: compiled}, nil
}

// Matches returns the source of every pattern found in content.
func (p *PatternChecker) Matches(content []byte) []string {
	var found []string
	for _, re := range p.patterns {
		if re.Match(content) {
			found = append(found, re.String())
		}
	}
	return found
}
