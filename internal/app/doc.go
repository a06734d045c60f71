// Package app contains the core application logic. It loads a scenario,
// replays its runner events through the stacktrace builder and reports the
// frames seen at every breakpoint stop, decoupled from any specific
// entrypoint like a CLI.
package app
