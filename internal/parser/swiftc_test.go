package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const swiftcOutput = `TabBarStyleUITests.swift:14:9: error: expected '}' in class
        func testBroken( {
        ^
TabBarStyleUITests.swift:3:7: note: to match this opening '{'
class TabBarStyleUITests: XCTestCase {
      ^
TabBarStyleUITests.swift:20:13: warning: variable 'tab' was never used
`

func TestSwiftcParser_ParseDiagnostics(t *testing.T) {
	diags := NewSwiftcParser().ParseDiagnostics(swiftcOutput)
	require.Len(t, diags, 3)

	assert.Equal(t, "TabBarStyleUITests.swift", diags[0].File)
	assert.Equal(t, 14, diags[0].Line)
	assert.Equal(t, 9, diags[0].Column)
	assert.Equal(t, "error", diags[0].Severity)
	assert.Equal(t, "expected '}' in class", diags[0].Message)

	assert.Equal(t, "note", diags[1].Severity)
	assert.Equal(t, "warning", diags[2].Severity)
	assert.Equal(t, 1, CountErrors(diags))

	first, ok := FirstError(diags)
	require.True(t, ok)
	assert.Equal(t, 14, first.Line)
}

func TestSwiftcParser_NoDiagnostics(t *testing.T) {
	p := NewSwiftcParser()
	assert.Empty(t, p.ParseDiagnostics(""))
	assert.Empty(t, p.ParseDiagnostics("<unknown>:0: error: unable to load standard library"))

	_, ok := FirstError(nil)
	assert.False(t, ok)
}
