package stacktrace

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Stacktrace is the ordered set of frames of a running execution.
type Stacktrace struct {
	mu     sync.RWMutex
	frames []*Frame // bottom first
}

// New creates an empty stack.
func New() *Stacktrace {
	return &Stacktrace{}
}

// Push puts f on top of the stack.
func (s *Stacktrace) Push(f *Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, f)
}

// Pop removes and returns the top frame.
func (s *Stacktrace) Pop() (*Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return nil, false
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top, true
}

// Peek returns the top frame.
func (s *Stacktrace) Peek() (*Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.frames) == 0 {
		return nil, false
	}
	return s.frames[len(s.frames)-1], true
}

func (s *Stacktrace) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames)
}

func (s *Stacktrace) IsEmpty() bool {
	return s.Size() == 0
}

// Destroy removes all frames.
func (s *Stacktrace) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = nil
}

// Frames returns the frames from top to bottom.
func (s *Stacktrace) Frames() []*Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	frames := slices.Clone(s.frames)
	slices.Reverse(frames)
	return frames
}

// FirstSatisfying returns the topmost frame for which pred holds.
func (s *Stacktrace) FirstSatisfying(pred func(*Frame) bool) (*Frame, bool) {
	for _, f := range s.Frames() {
		if pred(f) {
			return f, true
		}
	}
	return nil, false
}

// Parent returns the frame directly below f.
func (s *Stacktrace) Parent(f *Frame) (*Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.Index(s.frames, f)
	if i <= 0 {
		return nil, false
	}
	return s.frames[i-1], true
}

// CurrentPath returns the path the top frame points into.
func (s *Stacktrace) CurrentPath() (string, bool) {
	top, ok := s.Peek()
	if !ok {
		return "", false
	}
	return top.CurrentPath()
}

// HasCategoryOnTop reports whether the top frame is of category c.
func (s *Stacktrace) HasCategoryOnTop(c Category) bool {
	top, ok := s.Peek()
	return ok && top.Category == c
}

func (s *Stacktrace) String() string {
	var parts []string
	for _, f := range s.Frames() {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
