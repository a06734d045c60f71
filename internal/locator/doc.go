// Package locator finds the source elements which the executor reports as
// started: suites, tests and keywords. It is the bridge between the names
// and paths carried by runner events and the parsed model.Workspace, and it
// produces the entry state of each new stack frame.
//
// Nothing found is never an error here. A missing suite, test or keyword
// yields an erroneous state whose message explains what was searched for,
// so that the debugger can keep following the execution.
package locator
