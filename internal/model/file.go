// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"path"
	"strings"
)

// TestCase is a test case of a suite file.
type TestCase struct {
	Name     string
	Line     int
	Setup    *Setting
	Teardown *Setting
	Template *Setting
	Rows     []Row
}

// UserKeyword is a keyword defined in a suite or resource file.
type UserKeyword struct {
	Name     string
	Line     int
	Teardown *Setting
	Rows     []Row
}

// File is one parsed suite, __init__ or resource file.
type File struct {
	Path      string
	Settings  SettingsTable
	TestCases []*TestCase
	Keywords  []*UserKeyword
}

// Dir returns the directory holding the file.
func (f *File) Dir() string {
	return path.Dir(f.Path)
}

// IsInit reports whether the file is a directory initialization file.
func (f *File) IsInit() bool {
	return IsInitFileName(path.Base(f.Path))
}

// IsInitFileName reports whether base names a directory initialization file,
// e.g. "__init__.robot".
func IsInitFileName(base string) bool {
	return strings.HasPrefix(strings.ToLower(base), "__init__.")
}

// FindTestCase returns the test case with the given name, compared
// case-insensitively.
func (f *File) FindTestCase(name string) (*TestCase, bool) {
	for _, tc := range f.TestCases {
		if strings.EqualFold(tc.Name, name) {
			return tc, true
		}
	}
	return nil, false
}

// TestCaseNames lists the names of all test cases in file order.
func (f *File) TestCaseNames() []string {
	names := make([]string, len(f.TestCases))
	for i, tc := range f.TestCases {
		names[i] = tc.Name
	}
	return names
}

// TemplateFor returns the template keyword applied to the test case. A
// local [Template] wins over the table's Test Template; an empty local
// template disables templating.
func (f *File) TemplateFor(tc *TestCase) (string, bool) {
	setting := tc.Template
	if !setting.IsDefined() {
		setting = f.Settings.TestTemplate
	}
	if !setting.IsDefined() || setting.IsEmpty() {
		return "", false
	}
	return setting.KeywordName(), true
}
