// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Token and Row, the smallest pieces of the source model.
// A Row is one line of a test case or keyword body split into cells; every
// cell keeps the place it was read from so that contexts can highlight a
// sub-line region such as the variables of a for loop.
package model

import (
	"strings"
	"unicode/utf8"

	"github.com/vk/framectx/internal/position"
)

// Token is a single cell of a source row.
type Token struct {
	Text   string
	Line   int
	Column int
	Offset int
}

// Position returns where the token starts.
func (t Token) Position() position.Position {
	return position.Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// EndPosition returns the position just after the last character of the
// token. Unknown column or offset stay unknown.
func (t Token) EndPosition() position.Position {
	end := t.Position()
	length := utf8.RuneCountInString(t.Text)
	if end.Column >= 0 {
		end.Column += length
	}
	if end.Offset >= 0 {
		end.Offset += len(t.Text)
	}
	return end
}

// IsBlank reports whether the token carries no text.
func (t Token) IsBlank() bool {
	return strings.TrimSpace(t.Text) == ""
}

// Row is one line of an executable body.
type Row struct {
	Line   int
	Tokens []Token
}

// NewRow builds a row from plain cell texts. Columns and offsets are
// computed as if the cells were separated by four spaces starting at
// lineOffset, which is good enough for rows that were not read from a real
// file.
func NewRow(line, lineOffset int, cells ...string) Row {
	row := Row{Line: line}
	column := 0
	for _, cell := range cells {
		row.Tokens = append(row.Tokens, Token{Text: cell, Line: line, Column: column, Offset: lineOffset + column})
		column += len(cell) + 4
	}
	return row
}

// Cells returns the texts of all tokens.
func (r Row) Cells() []string {
	cells := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		cells[i] = t.Text
	}
	return cells
}

// Significant returns the tokens with leading blank cells removed.
func (r Row) Significant() []Token {
	for i, t := range r.Tokens {
		if !t.IsBlank() {
			return r.Tokens[i:]
		}
	}
	return nil
}

// IsEmpty reports whether the row has no text at all.
func (r Row) IsEmpty() bool {
	return len(r.Significant()) == 0
}

// IsComment reports whether the row's first significant cell starts a comment.
func (r Row) IsComment() bool {
	tokens := r.Significant()
	return len(tokens) > 0 && strings.HasPrefix(strings.TrimSpace(tokens[0].Text), "#")
}
