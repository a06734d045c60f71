package contexts

import (
	"fmt"

	"github.com/vk/framectx/internal/breakpoint"
	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/position"
)

// SetupOrTeardown is positioned at the setting calling a setup or teardown
// keyword. It wraps exactly one call.
type SetupOrTeardown struct {
	path   string
	line   int
	prev   Context
	lookup BreakpointLookup
}

// NewSetupOrTeardown creates a SetupOrTeardown state entered from prev.
func NewSetupOrTeardown(path string, line int, prev Context, lookup BreakpointLookup) *SetupOrTeardown {
	if prev == nil {
		prev = defaultContext
	}
	return &SetupOrTeardown{path: path, line: line, prev: prev, lookup: lookup}
}

func (*SetupOrTeardown) sealed()                               {}
func (*SetupOrTeardown) IsErroneous() bool                     { return false }
func (*SetupOrTeardown) ErrorMessage() (string, bool)          { return "", false }
func (s *SetupOrTeardown) AssociatedPath() (string, bool)      { return optional(s.path) }
func (s *SetupOrTeardown) FileRegion() (position.Region, bool) { return position.LineRegion(s.line), true }
func (s *SetupOrTeardown) PreviousContext() Context            { return s.prev }

// LineBreakpoint returns the breakpoint placed on the setting line.
func (s *SetupOrTeardown) LineBreakpoint() (*breakpoint.Breakpoint, bool) {
	return lineBreakpoint(s.lookup, s.path, s.line)
}

func (s *SetupOrTeardown) String() string {
	return fmt.Sprintf("SetupOrTeardown(%s:%d)", s.path, s.line)
}

func (s *SetupOrTeardown) advance() (Context, error) {
	return nil, illegalState(messages.SingleSetupOrTeardownCall)
}
