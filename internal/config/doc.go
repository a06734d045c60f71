// Package config defines the format-agnostic scenario model for the
// application, along with the Loader interface for reading it from
// various sources.
//
// A scenario describes a workspace of parsed suite and resource files, the
// breakpoints set by the user and the stream of runner events to replay
// against them. Concrete loaders, such as the HCL one, are provided in
// separate packages.
package config
