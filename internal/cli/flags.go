package cli

import (
	"time"

	"uitv/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	Verbose    bool
	NoColor    bool
	NameFilter string
	NoSyntax   bool
	SyntaxTool string
	Timeout    time.Duration
	JSONOutput string
	Quiet      bool
	TestCases  bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile: f.ConfigFile,
		Verbose:    f.Verbose,
		NoColor:    f.NoColor,
		NameFilter: f.NameFilter,
		NoSyntax:   f.NoSyntax,
		SyntaxTool: f.SyntaxTool,
		Timeout:    f.Timeout,
		JSONOutput: f.JSONOutput,
		Quiet:      f.Quiet,
		TestCases:  f.TestCases,
	}
}
