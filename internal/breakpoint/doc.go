// Package breakpoint provides line breakpoints and an ephemeral, thread-safe
// in-memory store of them.
//
// # Purpose
//
// Contexts ask "is there a breakpoint at this line of this file?" while the
// executor reports keywords. The Store answers that question and keeps the
// hit counters of breakpoints the debugger actually stopped at.
//
// # Concurrency Model
//
// The store uses sync.Map keyed by "path:line". Lookups come from the
// goroutine replaying executor events while breakpoints may be toggled from
// elsewhere; every key is independent so no global lock is needed.
package breakpoint
