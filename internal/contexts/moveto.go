package contexts

import (
	"github.com/vk/framectx/internal/invariant"
	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/position"
	"github.com/vk/framectx/internal/runevent"
)

// MoveTo returns the state reached from current when the executor is about
// to run keyword. Mismatches with the source model produce erroneous
// states; requests that can never be valid for current return an error
// matching ErrIllegalState.
func MoveTo(current Context, keyword runevent.RunningKeyword, lookup BreakpointLookup) (Context, error) {
	invariant.NotNil(current, "current context")
	if lookup == nil {
		lookup = NoBreakpoints
	}

	switch c := current.(type) {
	case *Default:
		return NewDiagnostic("", position.UnknownRegion, messages.CallNotFound(keyword), c), nil
	case *Unknown:
		return NewDiagnostic("", position.UnknownRegion, messages.CallNotFound(keyword), c), nil
	case *Diagnostic:
		return NewDiagnostic(c.path, c.region, messages.CallNotFound(keyword), c.prev), nil
	case *Suite:
		return c.advance(keyword, lookup)
	case *TestCase:
		return c.advance(keyword, lookup)
	case *KeywordOfUser:
		return c.advance(keyword, lookup)
	case *KeywordFromLibrary:
		return c, nil
	case *ExecutableCall:
		return c.advance(keyword, lookup)
	case *ForLoop:
		return c.advance()
	case *ForLoopIteration:
		return c.advance(keyword, lookup)
	case *SetupOrTeardown:
		return c.advance()
	default:
		invariant.Invariant(false, "unknown context %T", current)
		return nil, nil
	}
}
