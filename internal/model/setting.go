// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Setting and SettingsTable.
//
// A setting has three observable states and they are all meaningful to
// setup/teardown resolution:
//
//   - absent: the *Setting is nil. Lookup continues in the next ancestor.
//   - present but empty: non-nil with a blank keyword. Lookup stops here and
//     reports that the setting could not be found.
//   - present with a keyword: lookup stops here and the keyword is compared
//     with the running one.
package model

import "strings"

// Setting is a setup, teardown or template setting calling one keyword.
type Setting struct {
	Line    int
	Keyword Token
	Args    []Token
}

// NewSetting creates a setting from plain texts; an empty keyword yields a
// present-but-empty setting.
func NewSetting(line int, keyword string, args ...string) *Setting {
	s := &Setting{Line: line, Keyword: Token{Text: keyword, Line: line, Column: -1, Offset: -1}}
	for _, arg := range args {
		s.Args = append(s.Args, Token{Text: arg, Line: line, Column: -1, Offset: -1})
	}
	return s
}

// IsDefined reports whether the setting is present in its table.
func (s *Setting) IsDefined() bool {
	return s != nil
}

// KeywordName returns the called keyword, or "" when absent or empty.
func (s *Setting) KeywordName() string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(s.Keyword.Text)
}

// IsEmpty reports whether a present setting calls no keyword. A template
// explicitly set to NONE counts as empty.
func (s *Setting) IsEmpty() bool {
	name := s.KeywordName()
	return name == "" || strings.EqualFold(name, "NONE")
}

// SettingsTable is the settings section of one suite, init or resource file.
type SettingsTable struct {
	SuiteSetup      *Setting
	SuiteTeardown   *Setting
	TestSetup       *Setting
	TestTeardown    *Setting
	KeywordTeardown *Setting
	TestTemplate    *Setting
	Resources       []string
}
