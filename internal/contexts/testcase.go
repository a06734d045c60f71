package contexts

import (
	"fmt"

	"github.com/vk/framectx/internal/executables"
	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/position"
	"github.com/vk/framectx/internal/runevent"
)

// TestCase is entered when a test starts.
type TestCase struct {
	noBreakpoint
	test      *model.TestCase
	path      string
	ancestors []*model.File
	template  string
	err       string
	body      *Body
}

// NewTestCase creates a TestCase state. ancestors are the models governing
// the test's file, nearest first, starting with that file. A non-empty
// template replaces the keyword of every plain body row.
func NewTestCase(test *model.TestCase, path string, ancestors []*model.File, template string) *TestCase {
	t := &TestCase{test: test, path: path, ancestors: ancestors, template: template}
	if test != nil {
		t.body = &Body{
			Path:      path,
			Ancestors: ancestors,
			Nodes:     executables.Compile(test.Rows),
			Template:  template,
			Scope:     messages.TestScope,
			Teardown:  test.Teardown,
		}
	}
	return t
}

// NewErroneousTestCase creates a TestCase state for a test which could not
// be located; err explains why.
func NewErroneousTestCase(path string, err string) *TestCase {
	return &TestCase{path: path, err: err}
}

// Test returns the located test, if any.
func (t *TestCase) Test() *model.TestCase { return t.test }

// Template returns the template keyword applied to the test, if any.
func (t *TestCase) Template() string { return t.template }

func (*TestCase) sealed()                          {}
func (t *TestCase) IsErroneous() bool              { return t.err != "" }
func (t *TestCase) ErrorMessage() (string, bool)   { return optional(t.err) }
func (t *TestCase) AssociatedPath() (string, bool) { return optional(t.path) }
func (*TestCase) PreviousContext() Context         { return defaultContext }

// FileRegion returns the line of the test's name.
func (t *TestCase) FileRegion() (position.Region, bool) {
	if t.test == nil {
		return position.Region{}, false
	}
	return position.LineRegion(t.test.Line), true
}

func (t *TestCase) String() string {
	if t.test == nil {
		return "TestCase(?)"
	}
	return fmt.Sprintf("TestCase(%s)", t.test.Name)
}

func (t *TestCase) advance(keyword runevent.RunningKeyword, lookup BreakpointLookup) (Context, error) {
	if keyword.Kind == runevent.LoopIteration {
		return nil, illegalState(messages.IterationOutsideLoop)
	}
	if keyword.Kind.IsSetupOrTeardown() {
		if t.test == nil {
			label := messages.SettingLabel(keyword.Kind, messages.TestScope)
			return NewDiagnostic(t.path, position.UnknownRegion, messages.SetupTeardownNotFound(label, keyword)+t.err, t), nil
		}
		local := t.test.Setup
		if keyword.Kind == runevent.Teardown {
			local = t.test.Teardown
		}
		return ResolveSetupOrTeardown(SettingQuery{
			Scope:     messages.TestScope,
			Path:      t.path,
			Local:     local,
			Ancestors: t.ancestors,
		}, keyword, t, lookup), nil
	}
	if t.test == nil {
		return NewDiagnostic(t.path, position.UnknownRegion, messages.CallNotFound(keyword)+t.err, t), nil
	}
	return NewExecutableCall(t.body, -1, t, lookup).advance(keyword, lookup)
}
