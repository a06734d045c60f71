package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/framectx/internal/breakpoint"
	"github.com/vk/framectx/internal/stacktrace"
)

// FrameView is a printable snapshot of one stack frame.
type FrameView struct {
	Name     string
	Category string
	Level    int
	Path     string
	Line     int
	Error    string
}

// Stop is the stack captured when a breakpoint was hit. Frames are top-first.
type Stop struct {
	Breakpoint string
	Frames     []FrameView
}

func newStop(bp *breakpoint.Breakpoint, stack *stacktrace.Stacktrace) Stop {
	stop := Stop{Breakpoint: bp.String()}
	for _, f := range stack.Frames() {
		view := FrameView{
			Name:     f.Name,
			Category: f.Category.String(),
			Level:    f.Level,
			Line:     -1,
			Error:    f.ErrorMessage(),
		}
		view.Path, _ = f.CurrentPath()
		if region, ok := f.FileRegion(); ok {
			view.Line = region.Start.Line
		}
		stop.Frames = append(stop.Frames, view)
	}
	return stop
}

// Write renders the stop in a gdb-like backtrace format.
func (s Stop) Write(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Stopped at %s\n", s.Breakpoint)
	for i, f := range s.Frames {
		location := "?"
		if f.Path != "" {
			location = f.Path
			if f.Line >= 0 {
				location = fmt.Sprintf("%s:%d", f.Path, f.Line)
			}
		}
		fmt.Fprintf(&sb, "  #%d %-8s %s [%d] at %s\n", i, f.Category, f.Name, f.Level, location)
		if f.Error != "" {
			fmt.Fprintf(&sb, "     error: %s\n", strings.TrimRight(f.Error, "\n"))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
