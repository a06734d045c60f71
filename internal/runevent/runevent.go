// Package runevent defines the keyword events reported by a running test
// executor, as consumed by the context resolution engine.
package runevent

import (
	"fmt"
	"strings"
)

// Kind tells how the executor is calling a keyword.
type Kind int

const (
	// Call is an ordinary keyword call from a body row.
	Call Kind = iota
	// Setup is a keyword run as suite, test or keyword setup.
	Setup
	// Teardown is a keyword run as suite, test or keyword teardown.
	Teardown
	// Loop is the header of a for loop.
	Loop
	// LoopIteration is a single iteration of a for loop.
	LoopIteration
)

func (k Kind) String() string {
	switch k {
	case Call:
		return "CALL"
	case Setup:
		return "SETUP"
	case Teardown:
		return "TEARDOWN"
	case Loop:
		return "LOOP"
	case LoopIteration:
		return "LOOP_ITERATION"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsSetupOrTeardown reports whether k is Setup or Teardown.
func (k Kind) IsSetupOrTeardown() bool {
	return k == Setup || k == Teardown
}

// IsOrdinary reports whether k calls a single keyword (Call, Setup or Teardown).
func (k Kind) IsOrdinary() bool {
	return k == Call || k.IsSetupOrTeardown()
}

// RunningKeyword is a single keyword event. For Loop events Name holds the
// canonical loop header text, e.g. "${x} IN [ 1 | 2 | 3 ]".
type RunningKeyword struct {
	Library string
	Name    string
	Kind    Kind
}

// New creates a RunningKeyword.
func New(library, name string, kind Kind) RunningKeyword {
	return RunningKeyword{Library: library, Name: name, Kind: kind}
}

// String renders the keyword the way the executor reports it: "lib.name",
// or just "name" when there is no library.
func (k RunningKeyword) String() string {
	if k.Library == "" {
		return k.Name
	}
	return k.Library + "." + k.Name
}

// ParseKind maps a keyword type name reported by the executor onto a Kind.
// Both short ("Setup") and scoped ("Suite Setup", "Test Teardown") forms are
// accepted.
func ParseKind(typeName string) (Kind, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(typeName), " "))
	switch normalized {
	case "keyword", "kw", "call":
		return Call, nil
	case "for", "loop", "for loop":
		return Loop, nil
	case "for item", "foritem", "iteration", "for iteration":
		return LoopIteration, nil
	}
	if strings.HasSuffix(normalized, "setup") {
		return Setup, nil
	}
	if strings.HasSuffix(normalized, "teardown") {
		return Teardown, nil
	}
	return Call, fmt.Errorf("unknown keyword type '%s'", typeName)
}
