// Package stacktrace keeps the debugger's view of the call stack of a
// running test execution.
//
// # Frames
//
// Every suite, test, keyword, for loop and loop iteration being executed is
// represented by a Frame. A frame owns the current state of the resolution
// machine from the contexts package: when a child keyword is about to start
// the parent frame's state is moved to the matching executable, so that the
// frame always points at the line being run.
//
// # Builder
//
// The Builder consumes runner events in the order the executor emits them
// and keeps a Stacktrace up to date. A keyword produces four events:
//
//	KeywordAboutToStart  the parent frame moves to the call
//	KeywordStarted       a frame for the keyword itself is pushed
//	KeywordAboutToEnd    that frame is popped
//	KeywordEnded         a setup or teardown frame moves back out of the call
//
// Stacktrace is safe for concurrent readers; the Builder itself must be
// driven from a single goroutine.
package stacktrace
