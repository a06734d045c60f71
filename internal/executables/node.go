package executables

import (
	"strings"

	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/position"
)

// Node is a single executable element of a body: either *Plain or *Loop.
type Node interface {
	// Line is the line at which the node starts.
	Line() int
	isNode()
}

// Plain is one row calling one keyword.
type Plain struct {
	Row model.Row
	// Assignments are the leading "${var}=" cells, if any.
	Assignments []model.Token
	// Action is the cell naming the called keyword.
	Action model.Token
	Args   []model.Token
}

func (*Plain) isNode() {}

// Line returns the line of the row.
func (p *Plain) Line() int { return p.Row.Line }

// Name returns the keyword called by the row.
func (p *Plain) Name() string { return p.Action.Text }

// CalledName returns the keyword that is executed for this row: the
// template when one applies, the row's own keyword otherwise.
func (p *Plain) CalledName(template string) string {
	if template != "" {
		return template
	}
	return p.Name()
}

// LoopHeader is the declaration row of a for loop.
type LoopHeader struct {
	Row       model.Row
	Variables []model.Token
	Join      string
	Values    []model.Token
}

// VariableNames returns the texts of the declared loop variables.
func (h *LoopHeader) VariableNames() []string { return texts(h.Variables) }

// JoinKeyword returns the canonical join keyword, e.g. "IN ZIP".
func (h *LoopHeader) JoinKeyword() string { return h.Join }

// ValueTexts returns the texts of the iterated values.
func (h *LoopHeader) ValueTexts() []string { return texts(h.Values) }

// VariablesRegion spans from the first declared variable to the end of the
// last one. A header without variables yields the row's line.
func (h *LoopHeader) VariablesRegion() position.Region {
	if len(h.Variables) == 0 {
		return position.LineRegion(h.Row.Line)
	}
	first := h.Variables[0]
	last := h.Variables[len(h.Variables)-1]
	return position.Between(first.Position(), last.EndPosition())
}

// Loop is a for loop with its body.
type Loop struct {
	Header LoopHeader
	Body   []*Plain
}

func (*Loop) isNode() {}

// Line returns the line of the loop header.
func (l *Loop) Line() int { return l.Header.Row.Line }

// BodyNodes returns the body as a node list.
func (l *Loop) BodyNodes() []Node {
	nodes := make([]Node, len(l.Body))
	for i, p := range l.Body {
		nodes[i] = p
	}
	return nodes
}

func texts(tokens []model.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.TrimSpace(t.Text)
	}
	return out
}
