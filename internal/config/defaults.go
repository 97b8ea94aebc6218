package config

import "time"

const (
	// DefaultTitle is printed in the report header
	DefaultTitle = "TabBarComponent UI Tests Validator"
	// DefaultTestPath is the directory validated when no argument is given
	DefaultTestPath = "TabBarComponentUITests"
	// DefaultExtension is the file extension of UI test sources
	DefaultExtension = ".swift"
	// DefaultSyntaxTool is the compiler front end used for "-parse"
	DefaultSyntaxTool = "swiftc"
	// DefaultSyntaxTimeout bounds a single syntax check
	DefaultSyntaxTimeout = 30 * time.Second
	// DefaultClassSuffix is the required suffix of the test class name
	DefaultClassSuffix = "UITests"
	// DefaultBaseClass is the class the test class must conform to
	DefaultBaseClass = "XCTestCase"
	// SyntaxToolEnv overrides the syntax tool when set
	SyntaxToolEnv = "UITV_SYNTAX_TOOL"
)

// DefaultExcludedFiles are file names never picked up by discovery
var DefaultExcludedFiles = []string{
	"TabBarComponentUITestsLaunchTests.swift",
}

// DefaultUIPatterns are the XCUI idioms a UI test is expected to use
var DefaultUIPatterns = []string{
	`app\.tabBars`,
	`app\.buttons`,
	`app\.staticTexts`,
	`\.firstMatch`,
	`\.exists`,
	`XCTAssert`,
}
