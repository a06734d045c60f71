package contexts

import (
	"fmt"

	"github.com/vk/framectx/internal/breakpoint"
	"github.com/vk/framectx/internal/executables"
	"github.com/vk/framectx/internal/invariant"
	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/names"
	"github.com/vk/framectx/internal/position"
	"github.com/vk/framectx/internal/runevent"
)

// Body is the compiled body of a test case or user keyword, together with
// what is needed to resolve its teardown.
type Body struct {
	Path      string
	Ancestors []*model.File
	Nodes     []executables.Node
	// Template, when set, is called by every plain row instead of the
	// row's own keyword.
	Template string
	Scope    messages.Scope
	// Teardown is the local teardown of the owning element.
	Teardown *model.Setting
}

// ExecutableCall is positioned at one node of a body.
type ExecutableCall struct {
	body   *Body
	index  int
	prev   Context
	lookup BreakpointLookup
}

// NewExecutableCall creates a state positioned at body.Nodes[index]. An
// index of -1 means that nothing was executed yet. prev is the state the
// body was entered from.
func NewExecutableCall(body *Body, index int, prev Context, lookup BreakpointLookup) *ExecutableCall {
	invariant.NotNil(body, "body")
	if prev == nil {
		prev = defaultContext
	}
	return &ExecutableCall{body: body, index: index, prev: prev, lookup: lookup}
}

func (*ExecutableCall) sealed()                          {}
func (*ExecutableCall) IsErroneous() bool                { return false }
func (*ExecutableCall) ErrorMessage() (string, bool)     { return "", false }
func (e *ExecutableCall) AssociatedPath() (string, bool) { return optional(e.body.Path) }
func (e *ExecutableCall) PreviousContext() Context       { return e.prev }

// FileRegion returns the line of the current node, or the unknown region
// when the index points outside the body.
func (e *ExecutableCall) FileRegion() (position.Region, bool) {
	node := e.Current()
	if node == nil {
		return position.UnknownRegion, true
	}
	return position.LineRegion(node.Line()), true
}

// LineBreakpoint returns the breakpoint placed on the current node.
func (e *ExecutableCall) LineBreakpoint() (*breakpoint.Breakpoint, bool) {
	node := e.Current()
	if node == nil {
		return nil, false
	}
	return lineBreakpoint(e.lookup, e.body.Path, node.Line())
}

// Index returns the position of the current node.
func (e *ExecutableCall) Index() int { return e.index }

// Current returns the current node, or nil if there is none.
func (e *ExecutableCall) Current() executables.Node {
	if e.index < 0 || e.index >= len(e.body.Nodes) {
		return nil
	}
	return e.body.Nodes[e.index]
}

// IsOnLastExecutable reports whether the current node is the last one.
func (e *ExecutableCall) IsOnLastExecutable() bool {
	return e.index == len(e.body.Nodes)-1
}

func (e *ExecutableCall) String() string {
	region, _ := e.FileRegion()
	return fmt.Sprintf("ExecutableCall(%s:%d)", e.body.Path, region.Line())
}

// advance matches the keyword against the node following the current one.
// It never looks further ahead.
func (e *ExecutableCall) advance(keyword runevent.RunningKeyword, lookup BreakpointLookup) (Context, error) {
	switch keyword.Kind {
	case runevent.Setup:
		return nil, illegalState(messages.SetupInsideExecution)
	case runevent.Teardown:
		return ResolveSetupOrTeardown(SettingQuery{
			Scope:     e.body.Scope,
			Path:      e.body.Path,
			Local:     e.body.Teardown,
			Ancestors: e.body.Ancestors,
		}, keyword, e, lookup), nil
	case runevent.LoopIteration:
		return nil, illegalState(messages.IterationOutsideLoop)
	}

	next := e.index + 1
	if next >= len(e.body.Nodes) {
		return NewDiagnostic(e.body.Path, position.UnknownRegion, messages.CallNotFound(keyword), e.prev), nil
	}
	node := e.body.Nodes[next]
	region := position.LineRegion(node.Line())

	switch n := node.(type) {
	case *executables.Loop:
		if keyword.Kind != runevent.Loop {
			return NewDiagnostic(e.body.Path, region, messages.LoopFoundInstead(keyword), e.prev), nil
		}
		if !names.IsSameForLoop(&n.Header, keyword) {
			return NewDiagnostic(e.body.Path, region,
				messages.NonMatchingLoop(names.CanonicalForLoopName(&n.Header), keyword.Name), e.prev), nil
		}
	case *executables.Plain:
		called := n.CalledName(e.body.Template)
		if keyword.Kind == runevent.Loop {
			return NewDiagnostic(e.body.Path, region, messages.LoopNotFound(called), e.prev), nil
		}
		if !names.IsCallOf(called, keyword) {
			return NewDiagnostic(e.body.Path, region, messages.NonMatchingCall(keyword, called), e.prev), nil
		}
	default:
		invariant.Invariant(false, "unexpected executable node %T", node)
	}

	invariant.Invariant(next > e.index, "executable index must grow")
	return &ExecutableCall{body: e.body, index: next, prev: e.prev, lookup: lookup}, nil
}
