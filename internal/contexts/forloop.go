package contexts

import (
	"fmt"
	"regexp"

	"github.com/vk/framectx/internal/executables"
	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/position"
	"github.com/vk/framectx/internal/runevent"
)

// ForLoop is entered when a for loop header starts.
type ForLoop struct {
	noBreakpoint
	loop   *executables.Loop
	body   *Body
	path   string
	region position.Region
	err    string
	prev   Context
}

// FindContextForLoop creates the state for a loop starting while current
// is positioned at the loop's executable. A *Diagnostic current state is
// propagated as an erroneous loop at the same place.
func FindContextForLoop(current Context) (Context, error) {
	switch c := current.(type) {
	case *ExecutableCall:
		path := c.body.Path
		switch node := c.Current().(type) {
		case *executables.Loop:
			return &ForLoop{loop: node, body: c.body, path: path, region: position.LineRegion(node.Line()), prev: c}, nil
		case *executables.Plain:
			return &ForLoop{path: path, region: position.LineRegion(node.Line()),
				err: messages.LoopNotFound(node.CalledName(c.body.Template)), prev: c}, nil
		default:
			region, _ := c.FileRegion()
			return &ForLoop{path: path, region: region, err: messages.LoopMissing(), prev: c}, nil
		}
	case *Diagnostic:
		return &ForLoop{path: c.path, region: c.region, err: c.message, prev: c}, nil
	default:
		return nil, illegalState(messages.LoopOutsideExecutable)
	}
}

// Loop returns the located loop, if any.
func (f *ForLoop) Loop() *executables.Loop { return f.loop }

func (*ForLoop) sealed()                               {}
func (f *ForLoop) IsErroneous() bool                   { return f.err != "" }
func (f *ForLoop) ErrorMessage() (string, bool)        { return optional(f.err) }
func (f *ForLoop) AssociatedPath() (string, bool)      { return optional(f.path) }
func (f *ForLoop) FileRegion() (position.Region, bool) { return f.region, true }
func (f *ForLoop) PreviousContext() Context            { return f.prev }

func (f *ForLoop) String() string {
	return fmt.Sprintf("ForLoop(%s:%d)", f.path, f.region.Line())
}

// advance keeps the loop state; the next meaningful transition is an
// iteration.
func (f *ForLoop) advance() (Context, error) {
	return f, nil
}

// ForLoopIteration is entered when one iteration of a loop starts.
type ForLoopIteration struct {
	noBreakpoint
	body   *Body
	path   string
	region position.Region
	err    string
	prev   Context
}

var boundVariable = regexp.MustCompile(`(?:^|,\s*)([$@&]\{[^}]*\})\s*=`)

// FindContextForLoopIteration creates the state for an iteration of the
// loop held by current. bindings are the values reported by the executor,
// e.g. "${x} = 1, ${y} = 2"; the variables must be the declared ones, in
// order.
func FindContextForLoopIteration(current Context, bindings string) (Context, error) {
	loop, ok := current.(*ForLoop)
	if !ok {
		return nil, illegalState(messages.IterationOutsideLoop)
	}
	if loop.IsErroneous() || loop.loop == nil {
		return &ForLoopIteration{path: loop.path, region: loop.region,
			err: messages.NoLoopForIteration(bindings), prev: loop}, nil
	}

	header := &loop.loop.Header
	region := header.VariablesRegion()
	found := BoundVariables(bindings)
	expected := header.VariableNames()
	if !equalNames(found, expected) {
		return &ForLoopIteration{path: loop.path, region: region,
			err: messages.IterationVariablesMismatch(found, expected), prev: loop}, nil
	}

	iteration := &ForLoopIteration{path: loop.path, region: region, prev: loop}
	if len(loop.loop.Body) > 0 {
		body := *loop.body
		body.Nodes = loop.loop.BodyNodes()
		iteration.body = &body
	}
	return iteration, nil
}

// BoundVariables extracts the variable names from iteration bindings.
func BoundVariables(bindings string) []string {
	var out []string
	for _, m := range boundVariable.FindAllStringSubmatch(bindings, -1) {
		out = append(out, m[1])
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (*ForLoopIteration) sealed()                               {}
func (f *ForLoopIteration) IsErroneous() bool                   { return f.err != "" }
func (f *ForLoopIteration) ErrorMessage() (string, bool)        { return optional(f.err) }
func (f *ForLoopIteration) AssociatedPath() (string, bool)      { return optional(f.path) }
func (f *ForLoopIteration) FileRegion() (position.Region, bool) { return f.region, true }
func (f *ForLoopIteration) PreviousContext() Context            { return f.prev }

func (f *ForLoopIteration) String() string {
	return fmt.Sprintf("ForLoopIteration(%s:%d)", f.path, f.region.Line())
}

// advance moves into the loop body. Only ordinary calls run inside a loop;
// an iteration without a body stays where it is.
func (f *ForLoopIteration) advance(keyword runevent.RunningKeyword, lookup BreakpointLookup) (Context, error) {
	if keyword.Kind != runevent.Call {
		return nil, illegalState(messages.OnlyCallsInLoop)
	}
	if f.body == nil {
		return f, nil
	}
	return NewExecutableCall(f.body, -1, f, lookup).advance(keyword, lookup)
}
