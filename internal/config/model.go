package config

import (
	"github.com/vk/framectx/internal/breakpoint"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/stacktrace"
)

// Model is the unified, format-agnostic representation of a scenario.
type Model struct {
	Workspace   *model.Workspace
	Breakpoints []*breakpoint.Breakpoint
	// Events are the runner events in the order they are replayed.
	Events []stacktrace.Event
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{Workspace: model.NewWorkspace()}
}

// BreakpointStore returns a store holding the model's breakpoints.
func (m *Model) BreakpointStore() *breakpoint.Store {
	return breakpoint.NewStore(m.Breakpoints...)
}
