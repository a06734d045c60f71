// Package messages is the catalog of diagnostic texts produced when a
// running keyword cannot be located in the source model. Every function is
// pure: the text depends only on its arguments.
//
// Detail lines end with a newline so that they can be concatenated under a
// headline such as CallNotFound.
package messages

import (
	"fmt"
	"strings"

	"github.com/vk/framectx/internal/runevent"
)

// Scope tells which element a setup or teardown belongs to.
type Scope int

const (
	SuiteScope Scope = iota
	TestScope
	KeywordScope
)

// SettingLabel names the setting a setup or teardown comes from, e.g.
// "Test Setup" or "Keyword Teardown". Kinds other than Setup and Teardown
// have no label.
func SettingLabel(kind runevent.Kind, scope Scope) string {
	var prefix string
	switch scope {
	case SuiteScope:
		prefix = "Suite"
	case TestScope:
		prefix = "Test"
	case KeywordScope:
		prefix = "Keyword"
	}
	switch kind {
	case runevent.Setup:
		return prefix + " Setup"
	case runevent.Teardown:
		return prefix + " Teardown"
	default:
		return ""
	}
}

// CallNotFound is the headline used when no executable matches.
func CallNotFound(keyword runevent.RunningKeyword) string {
	return fmt.Sprintf("Unable to find executable call of '%s' keyword\n", keyword)
}

// LoopFoundInstead reports an ordinary call meeting a loop in the source.
func LoopFoundInstead(keyword runevent.RunningKeyword) string {
	return CallNotFound(keyword) + ":FOR loop was found instead\n"
}

// NonMatchingCall reports a call meeting a row calling another keyword.
func NonMatchingCall(keyword runevent.RunningKeyword, found string) string {
	return CallNotFound(keyword) + fmt.Sprintf("An executable was found but seem to call non-matching keyword '%s'\n", found)
}

// LoopNotFound reports a loop event meeting a plain row.
func LoopNotFound(found string) string {
	return fmt.Sprintf("Unable to find :FOR loop\nAn executable was found calling '%s' keyword\n", found)
}

// LoopMissing reports a loop starting where no executable was reached yet.
func LoopMissing() string {
	return "Unable to find :FOR loop\n"
}

// NonMatchingLoop reports a loop event meeting a loop of another shape.
func NonMatchingLoop(found, executed string) string {
	return fmt.Sprintf("Unable to find matching :FOR loop\n':FOR %s' was found but ':FOR %s' is being executed\n", found, executed)
}

// SetupTeardownNotFound is the headline for failed setting resolution.
func SetupTeardownNotFound(label string, keyword runevent.RunningKeyword) string {
	return fmt.Sprintf("Unable to find %s call of '%s' keyword\n", label, keyword)
}

// SettingMissing reports a setting that is absent or defines no keyword.
func SettingMissing(label string) string {
	return fmt.Sprintf("%s setting could not be found in this suite\n", label)
}

// SettingNonMatching reports a setting calling another keyword.
func SettingNonMatching(label, found string) string {
	return fmt.Sprintf("%s setting was found but seem to call non-matching keyword '%s'\n", label, found)
}

// MissingInitFile reports a suite whose __init__ file is not known. An
// empty location is rendered as <unknown>.
func MissingInitFile(suite, location string) string {
	if location == "" {
		location = "<unknown>"
	}
	return fmt.Sprintf("The suite '%s' is located in workspace at %s but the debugger couldn't find __init__ file inside this directory\n", suite, location)
}

// SuiteNotFound reports a suite file that is not part of the workspace.
func SuiteNotFound(suite, location string) string {
	if location == "" {
		location = "<unknown>"
	}
	return fmt.Sprintf("Unable to find suite '%s' at %s in the workspace\n", suite, location)
}

// TestNotFound reports a test missing from its suite file.
func TestNotFound(test, suitePath string) string {
	return fmt.Sprintf("Unable to find test '%s' in suite file '%s'\n", test, suitePath)
}

// TestSuiteUnknown reports a test started in a suite which was not located.
func TestSuiteUnknown(test string) string {
	return fmt.Sprintf("Unable to find test '%s' because its suite is not known\n", test)
}

// KeywordNotFound reports a keyword which cannot be searched for at all.
func KeywordNotFound(keyword string) string {
	return fmt.Sprintf("Unable to find keyword '%s'\n", keyword)
}

// KeywordAmbiguous reports a keyword name matching several definitions.
func KeywordAmbiguous(keyword string, locations []string) string {
	return fmt.Sprintf("Unable to find keyword '%s': it is defined in %s\n", keyword, strings.Join(locations, ", "))
}

// DidYouMean lists close candidates; it is empty when there are none.
func DidYouMean(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return fmt.Sprintf("Did you mean: %s\n", strings.Join(candidates, ", "))
}

// NoLoopForIteration reports an iteration of a loop which was not located.
func NoLoopForIteration(bindings string) string {
	return fmt.Sprintf("No loop found for iteration of '%s'\n", bindings)
}

// IterationVariablesMismatch reports iteration bindings naming other
// variables than the loop declares.
func IterationVariablesMismatch(found, expected []string) string {
	return fmt.Sprintf("The loop is iterating with [%s] variables but [%s] were expected\n",
		strings.Join(found, ", "), strings.Join(expected, ", "))
}

// Fixed texts of protocol violations.
const (
	SetupInsideExecution      = "Setup keyword cannot be called when already executing keywords inside test case or other keyword"
	SetupOrTeardownInKeyword  = "Setup or Teardown keyword cannot be called when user keyword is about to start"
	OnlySuiteSetupOrTeardown  = "Only suite setup or teardown keyword call is possible in current context"
	LoopOutsideExecutable     = "For loop can only be called when already context was moved to executable call"
	IterationOutsideLoop      = "For loop iteration can only be called when already context was moved to for-loop context"
	OnlyCallsInLoop           = "Only normal keyword can be called when executing loop"
	SingleSetupOrTeardownCall = "Only single keyword can be called as setup or teardown, so it is impossible to move to next one if already positioned at first one"
)
