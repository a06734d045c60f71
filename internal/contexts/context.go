package contexts

import (
	"errors"

	"github.com/vk/framectx/internal/breakpoint"
	"github.com/vk/framectx/internal/position"
)

// Context is one of the states of the resolution machine: *Default,
// *Unknown, *Diagnostic, *Suite, *TestCase, *KeywordOfUser,
// *KeywordFromLibrary, *ExecutableCall, *ForLoop, *ForLoopIteration or
// *SetupOrTeardown.
type Context interface {
	IsErroneous() bool
	ErrorMessage() (string, bool)
	AssociatedPath() (string, bool)
	FileRegion() (position.Region, bool)
	LineBreakpoint() (*breakpoint.Breakpoint, bool)
	PreviousContext() Context

	sealed()
}

// BreakpointLookup finds the line breakpoint at a location.
type BreakpointLookup interface {
	LineBreakpoint(path string, line int) (*breakpoint.Breakpoint, bool)
}

// LookupFunc adapts a function to BreakpointLookup.
type LookupFunc func(path string, line int) (*breakpoint.Breakpoint, bool)

// LineBreakpoint calls f.
func (f LookupFunc) LineBreakpoint(path string, line int) (*breakpoint.Breakpoint, bool) {
	return f(path, line)
}

// NoBreakpoints is a lookup that never finds anything.
var NoBreakpoints BreakpointLookup = LookupFunc(func(string, int) (*breakpoint.Breakpoint, bool) {
	return nil, false
})

// ErrIllegalState is matched by every error reporting a misuse of the
// machine.
var ErrIllegalState = errors.New("illegal debug context state")

// IllegalStateError is returned when a transition is requested which can
// never happen for the current state.
type IllegalStateError struct {
	Message string
}

func (e *IllegalStateError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrIllegalState) hold.
func (e *IllegalStateError) Is(target error) bool {
	return target == ErrIllegalState
}

func illegalState(message string) error {
	return &IllegalStateError{Message: message}
}

// lineBreakpoint asks lookup for a breakpoint when the location is known.
func lineBreakpoint(lookup BreakpointLookup, path string, line int) (*breakpoint.Breakpoint, bool) {
	if lookup == nil || path == "" || line < 0 {
		return nil, false
	}
	return lookup.LineBreakpoint(path, line)
}

func optional(s string) (string, bool) {
	return s, s != ""
}

// noBreakpoint is embedded by states which never answer breakpoints.
type noBreakpoint struct{}

func (noBreakpoint) LineBreakpoint() (*breakpoint.Breakpoint, bool) { return nil, false }
