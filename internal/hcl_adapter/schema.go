// This file declares the HCL schema of scenario files, decoded with gohcl.

package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Files       []*FileBlock       `hcl:"file,block"`
	Breakpoints []*BreakpointBlock `hcl:"breakpoint,block"`
	Events      []*EventBlock      `hcl:"event,block"`
	Remain      hcl.Body           `hcl:",remain"`
}

// FileBlock is a parsed suite, __init__ or resource file.
type FileBlock struct {
	Path     string          `hcl:"path,label"`
	Settings *SettingsBlock  `hcl:"settings,block"`
	Tests    []*TestBlock    `hcl:"test,block"`
	Keywords []*KeywordBlock `hcl:"keyword,block"`
}

// SettingsBlock is the settings table of a file. Every setting is either
// a list of cells, e.g. ["Log", "x"], or an object { line = 3, call = [...] }.
type SettingsBlock struct {
	SuiteSetup      hcl.Expression `hcl:"suite_setup,optional"`
	SuiteTeardown   hcl.Expression `hcl:"suite_teardown,optional"`
	TestSetup       hcl.Expression `hcl:"test_setup,optional"`
	TestTeardown    hcl.Expression `hcl:"test_teardown,optional"`
	KeywordTeardown hcl.Expression `hcl:"keyword_teardown,optional"`
	TestTemplate    hcl.Expression `hcl:"test_template,optional"`
	Resources       []string       `hcl:"resources,optional"`
}

// TestBlock is a test case.
type TestBlock struct {
	Name     string         `hcl:"name,label"`
	Line     int            `hcl:"line,optional"`
	Setup    hcl.Expression `hcl:"setup,optional"`
	Teardown hcl.Expression `hcl:"teardown,optional"`
	Template hcl.Expression `hcl:"template,optional"`
	Rows     []*RowBlock    `hcl:"row,block"`
}

// KeywordBlock is a user keyword.
type KeywordBlock struct {
	Name     string         `hcl:"name,label"`
	Line     int            `hcl:"line,optional"`
	Teardown hcl.Expression `hcl:"teardown,optional"`
	Rows     []*RowBlock    `hcl:"row,block"`
}

// RowBlock is one body line split into cells.
type RowBlock struct {
	Line  int      `hcl:"line"`
	Cells []string `hcl:"cells"`
}

// BreakpointBlock is a line breakpoint.
type BreakpointBlock struct {
	Path      string `hcl:"path"`
	Line      int    `hcl:"line"`
	Enabled   *bool  `hcl:"enabled,optional"`
	Condition string `hcl:"condition,optional"`
}

// EventBlock is a runner event. The label is an event type such as
// "suite_started", or one of "suite", "test" and "keyword", which expand
// into the start and end events around the nested blocks.
type EventBlock struct {
	Kind        string        `hcl:"kind,label"`
	Name        string        `hcl:"name,optional"`
	Library     string        `hcl:"library,optional"`
	KeywordType string        `hcl:"type,optional"`
	Path        string        `hcl:"path,optional"`
	Directory   bool          `hcl:"directory,optional"`
	Events      []*EventBlock `hcl:"event,block"`
}
