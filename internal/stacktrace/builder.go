package stacktrace

import (
	"context"
	"fmt"

	"github.com/vk/framectx/internal/breakpoint"
	"github.com/vk/framectx/internal/contexts"
	"github.com/vk/framectx/internal/ctxlog"
	"github.com/vk/framectx/internal/invariant"
	"github.com/vk/framectx/internal/runevent"
)

// Locator finds the entry states of starting elements.
type Locator interface {
	FindContextForSuite(ctx context.Context, name, path string, isDirectory bool) *contexts.Suite
	FindContextForTestCase(ctx context.Context, name, suitePath string) *contexts.TestCase
	FindContextForKeyword(ctx context.Context, library, name, suitePath string, loadedResources []string) contexts.Context
}

// Breakpoints is looked up by frame states and told about hits.
type Breakpoints interface {
	contexts.BreakpointLookup
	Hit(path string, line int) bool
}

// Builder keeps a Stacktrace in line with runner events.
type Builder struct {
	stack       *Stacktrace
	locator     Locator
	breakpoints Breakpoints

	// resources imported before the first suite started
	pendingResources []string
}

// NewBuilder creates a Builder updating stack.
func NewBuilder(stack *Stacktrace, locator Locator, breakpoints Breakpoints) *Builder {
	invariant.NotNil(stack, "stacktrace")
	invariant.NotNil(locator, "locator")
	invariant.NotNil(breakpoints, "breakpoints")
	return &Builder{stack: stack, locator: locator, breakpoints: breakpoints}
}

// Stack returns the stack being built.
func (b *Builder) Stack() *Stacktrace { return b.stack }

// Handle dispatches ev to its handler. The returned breakpoint is non-nil
// when the executor should suspend before the keyword about to start.
func (b *Builder) Handle(ctx context.Context, ev Event) (*breakpoint.Breakpoint, error) {
	ctxlog.FromContext(ctx).Debug("Handling runner event.", "event", ev.String(), "depth", b.stack.Size())

	switch ev.Type {
	case SuiteStarted:
		b.SuiteStarted(ctx, ev)
	case SuiteEnded:
		return nil, b.SuiteEnded(ctx, ev)
	case TestStarted:
		return nil, b.TestStarted(ctx, ev)
	case TestEnded:
		return nil, b.TestEnded(ctx, ev)
	case KeywordAboutToStart:
		return b.KeywordAboutToStart(ctx, ev)
	case KeywordStarted:
		return nil, b.KeywordStarted(ctx, ev)
	case KeywordAboutToEnd:
		return nil, b.KeywordAboutToEnd(ctx, ev)
	case KeywordEnded:
		return nil, b.KeywordEnded(ctx, ev)
	case ResourceImport:
		b.ResourceImport(ctx, ev)
	case Closed:
		b.Closed(ctx)
	default:
		return nil, fmt.Errorf("unsupported event %s", ev.Type)
	}
	return nil, nil
}

// SuiteStarted pushes a suite frame holding the resources imported so far.
func (b *Builder) SuiteStarted(ctx context.Context, ev Event) {
	level := 0
	if parent, ok := b.stack.Peek(); ok {
		level = parent.Level + 1
	}
	suite := b.locator.FindContextForSuite(ctx, ev.Name, ev.Path, ev.IsDirectory)
	b.stack.Push(NewFrame(ev.Name, SuiteFrame, level, suite, b.pendingResources...))
	b.pendingResources = nil
}

func (b *Builder) SuiteEnded(ctx context.Context, ev Event) error {
	return b.pop(ev, SuiteFrame)
}

// TestStarted pushes a test frame for a test of the innermost suite.
func (b *Builder) TestStarted(ctx context.Context, ev Event) error {
	parent, ok := b.stack.Peek()
	if !ok {
		return fmt.Errorf("test '%s' started outside of any suite: %w", ev.Name, contexts.ErrIllegalState)
	}
	suitePath, _ := b.suitePath()
	test := b.locator.FindContextForTestCase(ctx, ev.Name, suitePath)
	b.stack.Push(NewFrame(ev.Name, TestFrame, parent.Level+1, test))
	return nil
}

func (b *Builder) TestEnded(ctx context.Context, ev Event) error {
	return b.pop(ev, TestFrame)
}

// KeywordAboutToStart moves the top frame to the keyword's call. It returns
// the breakpoint to suspend at, if the new position has an enabled one.
func (b *Builder) KeywordAboutToStart(ctx context.Context, ev Event) (*breakpoint.Breakpoint, error) {
	keyword, err := keywordOf(ev)
	if err != nil {
		return nil, err
	}
	frame, ok := b.stack.Peek()
	if !ok {
		return nil, fmt.Errorf("keyword '%s' started outside of any suite: %w", keyword, contexts.ErrIllegalState)
	}

	// A diagnostic left by the body must not hide the element's own setup
	// and teardown settings.
	if _, diagnosed := frame.current.(*contexts.Diagnostic); diagnosed && keyword.Kind.IsSetupOrTeardown() {
		frame.current = frame.entry
	}

	if err := frame.MoveTo(keyword, b.breakpoints); err != nil {
		return nil, fmt.Errorf("keyword '%s' cannot start in %s frame '%s': %w", keyword, frame.Category, frame.Name, err)
	}

	logger := ctxlog.FromContext(ctx)
	if frame.IsErroneous() {
		logger.Debug("Frame moved to erroneous state.", "frame", frame.Name, "error", frame.ErrorMessage())
	}
	bp, ok := frame.LineBreakpoint()
	if !ok || !b.breakpoints.Hit(bp.Path, bp.Line) {
		return nil, nil
	}
	logger.Debug("Breakpoint hit.", "breakpoint", bp.String(), "hits", bp.HitCount())
	return bp, nil
}

// KeywordStarted pushes the frame of the starting keyword. Loops and loop
// iterations get FOR and FOR_ITEM frames entered from the parent frame.
func (b *Builder) KeywordStarted(ctx context.Context, ev Event) error {
	keyword, err := keywordOf(ev)
	if err != nil {
		return err
	}
	parent, ok := b.stack.Peek()
	if !ok {
		return fmt.Errorf("keyword '%s' started outside of any suite: %w", keyword, contexts.ErrIllegalState)
	}

	switch keyword.Kind {
	case runevent.Loop:
		loop, err := contexts.FindContextForLoop(parent.Context())
		if err != nil {
			return fmt.Errorf("loop '%s': %w", keyword.Name, err)
		}
		b.stack.Push(NewFrame(keyword.Name, ForFrame, parent.Level+1, loop))
	case runevent.LoopIteration:
		iteration, err := contexts.FindContextForLoopIteration(parent.Context(), keyword.Name)
		if err != nil {
			return fmt.Errorf("loop iteration '%s': %w", keyword.Name, err)
		}
		b.stack.Push(NewFrame(keyword.Name, ForItemFrame, parent.Level+1, iteration))
	default:
		suitePath, _ := b.suitePath()
		found := b.locator.FindContextForKeyword(ctx, ev.Library, ev.Name, suitePath, b.loadedResources())
		frame := NewFrame(keyword.String(), KeywordFrame, parent.Level+1, found)
		if frame.IsLibraryKeyword() {
			frame.Level = parent.Level
		}
		b.stack.Push(frame)
	}
	return nil
}

// KeywordAboutToEnd pops the frame pushed by KeywordStarted.
func (b *Builder) KeywordAboutToEnd(ctx context.Context, ev Event) error {
	return b.pop(ev, KeywordFrame, ForFrame, ForItemFrame)
}

// KeywordEnded moves the top frame out of a finished setup or teardown, so
// that the element's next setting is resolved from its own state.
func (b *Builder) KeywordEnded(ctx context.Context, ev Event) error {
	keyword, err := keywordOf(ev)
	if err != nil {
		return err
	}
	if !keyword.Kind.IsSetupOrTeardown() {
		return nil
	}
	frame, ok := b.stack.Peek()
	if !ok {
		return fmt.Errorf("keyword '%s' ended outside of any suite: %w", keyword, contexts.ErrIllegalState)
	}
	frame.MoveOut()
	return nil
}

// ResourceImport records a resource imported by the innermost suite, or
// keeps it for the next suite when none runs yet.
func (b *Builder) ResourceImport(ctx context.Context, ev Event) {
	suite, ok := b.stack.FirstSatisfying(func(f *Frame) bool { return f.Category == SuiteFrame })
	if !ok {
		b.pendingResources = append(b.pendingResources, ev.Path)
		return
	}
	suite.AddLoadedResource(ev.Path)
	ctxlog.FromContext(ctx).Debug("Resource imported.", "suite", suite.Name, "resource", ev.Path)
}

// Closed drops the whole stack.
func (b *Builder) Closed(ctx context.Context) {
	b.stack.Destroy()
	b.pendingResources = nil
}

func (b *Builder) pop(ev Event, categories ...Category) error {
	top, ok := b.stack.Peek()
	if !ok {
		return fmt.Errorf("%s received with empty stack: %w", ev.Type, contexts.ErrIllegalState)
	}
	for _, c := range categories {
		if top.Category == c {
			b.stack.Pop()
			return nil
		}
	}
	return fmt.Errorf("%s received while %s frame '%s' is on top: %w", ev.Type, top.Category, top.Name, contexts.ErrIllegalState)
}

// suitePath returns the file of the innermost suite.
func (b *Builder) suitePath() (string, bool) {
	suite, ok := b.stack.FirstSatisfying(func(f *Frame) bool { return f.Category == SuiteFrame })
	if !ok {
		return "", false
	}
	return suite.EntryContext().AssociatedPath()
}

// loadedResources collects the resources of all running suites, innermost
// first.
func (b *Builder) loadedResources() []string {
	var all []string
	for _, f := range b.stack.Frames() {
		if f.Category == SuiteFrame {
			all = append(all, f.loadedResources...)
		}
	}
	return all
}

func keywordOf(ev Event) (runevent.RunningKeyword, error) {
	kind, err := runevent.ParseKind(ev.KeywordType)
	if err != nil {
		return runevent.RunningKeyword{}, fmt.Errorf("event %s: %w", ev, err)
	}
	return runevent.New(ev.Library, ev.Name, kind), nil
}
