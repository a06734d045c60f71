// Package contexts resolves where in the source model a running executor
// currently is.
//
// A Context is an immutable state. MoveTo takes the current state and the
// keyword the executor is about to run and returns the next state. Data that
// does not match the executor is reported as an erroneous state (usually a
// *Diagnostic) which stays navigable; using the machine out of order is
// reported as an error matching ErrIllegalState.
//
// Every state keeps a link to the state it was entered from. Following
// PreviousContext always ends at the Default state, which links to itself.
package contexts
