package stacktrace

import (
	"fmt"
	"slices"

	"github.com/vk/framectx/internal/breakpoint"
	"github.com/vk/framectx/internal/contexts"
	"github.com/vk/framectx/internal/invariant"
	"github.com/vk/framectx/internal/position"
	"github.com/vk/framectx/internal/runevent"
)

// Category tells which element a frame represents.
type Category int

const (
	SuiteFrame Category = iota
	TestFrame
	KeywordFrame
	ForFrame
	ForItemFrame
)

func (c Category) String() string {
	switch c {
	case SuiteFrame:
		return "SUITE"
	case TestFrame:
		return "TEST"
	case KeywordFrame:
		return "KEYWORD"
	case ForFrame:
		return "FOR"
	case ForItemFrame:
		return "FOR_ITEM"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Frame is one element of the stack.
type Frame struct {
	Name     string
	Category Category
	Level    int

	entry           contexts.Context
	current         contexts.Context
	loadedResources []string
}

// NewFrame creates a frame entered with ctx.
func NewFrame(name string, category Category, level int, ctx contexts.Context, loadedResources ...string) *Frame {
	invariant.NotNil(ctx, "frame context")
	return &Frame{
		Name:            name,
		Category:        category,
		Level:           level,
		entry:           ctx,
		current:         ctx,
		loadedResources: slices.Clone(loadedResources),
	}
}

// Context returns the current state of the frame.
func (f *Frame) Context() contexts.Context { return f.current }

// EntryContext returns the state the frame was created with.
func (f *Frame) EntryContext() contexts.Context { return f.entry }

// LoadedResources returns a copy of the resources imported by the suite.
func (f *Frame) LoadedResources() []string { return slices.Clone(f.loadedResources) }

// AddLoadedResource records a resource imported while the suite runs. Only
// suite frames import resources.
func (f *Frame) AddLoadedResource(path string) {
	invariant.Precondition(f.Category == SuiteFrame, "resources can only be loaded into suite frames, got %s", f.Category)
	if !slices.Contains(f.loadedResources, path) {
		f.loadedResources = append(f.loadedResources, path)
	}
}

// IsErroneous reports whether the frame's state is erroneous.
func (f *Frame) IsErroneous() bool { return f.current.IsErroneous() }

// ErrorMessage returns the message of an erroneous state, or "".
func (f *Frame) ErrorMessage() string {
	msg, _ := f.current.ErrorMessage()
	return msg
}

// CurrentPath returns the file the frame currently points into.
func (f *Frame) CurrentPath() (string, bool) { return f.current.AssociatedPath() }

// FileRegion returns the region the frame currently points at.
func (f *Frame) FileRegion() (position.Region, bool) { return f.current.FileRegion() }

// LineBreakpoint returns the breakpoint at the frame's current line.
func (f *Frame) LineBreakpoint() (*breakpoint.Breakpoint, bool) { return f.current.LineBreakpoint() }

// IsLibraryKeyword reports whether the frame runs a library keyword.
func (f *Frame) IsLibraryKeyword() bool {
	_, ok := f.current.(*contexts.KeywordFromLibrary)
	return ok
}

// MoveTo advances the frame's state to the keyword about to run.
func (f *Frame) MoveTo(keyword runevent.RunningKeyword, lookup contexts.BreakpointLookup) error {
	next, err := contexts.MoveTo(f.current, keyword, lookup)
	if err != nil {
		return err
	}
	f.current = next
	return nil
}

// MoveOut returns the frame to the state it had before its current call.
func (f *Frame) MoveOut() {
	f.current = f.current.PreviousContext()
}

func (f *Frame) String() string {
	return fmt.Sprintf("%s %s [%d] %v", f.Category, f.Name, f.Level, f.current)
}
