package executables

import (
	"regexp"
	"strings"

	"github.com/vk/framectx/internal/model"
)

var (
	assignmentPattern = regexp.MustCompile(`^[$@&]\{[^}]+\}\s*=?$`)
	joinKeywords      = map[string]string{
		"IN":          "IN",
		"INRANGE":     "IN RANGE",
		"INZIP":       "IN ZIP",
		"INENUMERATE": "IN ENUMERATE",
	}
)

// Compile groups rows into executable nodes, preserving source order. Empty
// rows, comments and rows without a called keyword produce no node.
func Compile(rows []model.Row) []Node {
	var nodes []Node
	for i := 0; i < len(rows); i++ {
		tokens := rows[i].Significant()
		if len(tokens) == 0 || rows[i].IsComment() {
			continue
		}

		switch {
		case isOldLoopStart(tokens[0].Text):
			loop := &Loop{Header: parseHeader(rows[i], tokens[1:])}
			for i+1 < len(rows) && isContinuation(rows[i+1]) {
				i++
				if p, ok := plainFrom(rows[i], rows[i].Significant()[1:]); ok {
					loop.Body = append(loop.Body, p)
				}
			}
			nodes = append(nodes, loop)

		case isNewLoopStart(tokens[0].Text):
			loop := &Loop{Header: parseHeader(rows[i], tokens[1:])}
			for i+1 < len(rows) {
				i++
				body := rows[i].Significant()
				if len(body) > 0 && strings.TrimSpace(body[0].Text) == "END" {
					break
				}
				if rows[i].IsComment() {
					continue
				}
				if p, ok := plainFrom(rows[i], body); ok {
					loop.Body = append(loop.Body, p)
				}
			}
			nodes = append(nodes, loop)

		default:
			if p, ok := plainFrom(rows[i], tokens); ok {
				nodes = append(nodes, p)
			}
		}
	}
	return nodes
}

// ParseJoin normalizes a loop join keyword ("in  zip" -> "IN ZIP").
func ParseJoin(text string) (string, bool) {
	key := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	join, ok := joinKeywords[key]
	return join, ok
}

func isOldLoopStart(text string) bool {
	return strings.ToUpper(strings.Join(strings.Fields(text), "")) == ":FOR"
}

func isNewLoopStart(text string) bool {
	return strings.TrimSpace(text) == "FOR"
}

func isContinuation(row model.Row) bool {
	tokens := row.Significant()
	return len(tokens) > 0 && strings.TrimSpace(tokens[0].Text) == `\`
}

func parseHeader(row model.Row, tokens []model.Token) LoopHeader {
	header := LoopHeader{Row: row}
	for i, t := range tokens {
		if join, ok := ParseJoin(t.Text); ok {
			header.Join = join
			header.Values = nonBlank(tokens[i+1:])
			return header
		}
		if !t.IsBlank() {
			header.Variables = append(header.Variables, t)
		}
	}
	return header
}

func plainFrom(row model.Row, tokens []model.Token) (*Plain, bool) {
	tokens = nonBlank(tokens)
	p := &Plain{Row: row}
	for len(tokens) > 0 && assignmentPattern.MatchString(strings.TrimSpace(tokens[0].Text)) {
		p.Assignments = append(p.Assignments, tokens[0])
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return nil, false
	}
	p.Action = tokens[0]
	p.Args = tokens[1:]
	return p, true
}

func nonBlank(tokens []model.Token) []model.Token {
	var out []model.Token
	for _, t := range tokens {
		if !t.IsBlank() {
			out = append(out, t)
		}
	}
	return out
}
