package breakpoint

import (
	"fmt"
	"path"
	"sync"
	"sync/atomic"
)

// Breakpoint is a line breakpoint.
type Breakpoint struct {
	Path      string
	Line      int
	Enabled   bool
	Condition string

	hits atomic.Int64
}

// New creates an enabled breakpoint.
func New(p string, line int) *Breakpoint {
	return &Breakpoint{Path: path.Clean(p), Line: line, Enabled: true}
}

// HitCount returns how many times the breakpoint was hit.
func (b *Breakpoint) HitCount() int64 {
	return b.hits.Load()
}

func (b *Breakpoint) String() string {
	return fmt.Sprintf("%s:%d", b.Path, b.Line)
}

// Store is an in-memory breakpoint store.
type Store struct {
	breakpoints sync.Map // Key: "path:line", Value: *Breakpoint
}

// NewStore creates a store holding the given breakpoints.
func NewStore(breakpoints ...*Breakpoint) *Store {
	s := &Store{}
	for _, b := range breakpoints {
		s.Add(b)
	}
	return s
}

func key(p string, line int) string {
	return fmt.Sprintf("%s:%d", path.Clean(p), line)
}

// Add stores a breakpoint, replacing the one at the same location.
func (s *Store) Add(b *Breakpoint) {
	s.breakpoints.Store(key(b.Path, b.Line), b)
}

// Remove deletes the breakpoint at the location, if any.
func (s *Store) Remove(p string, line int) {
	s.breakpoints.Delete(key(p, line))
}

// LineBreakpoint returns the breakpoint at the given location. It never
// modifies the store.
func (s *Store) LineBreakpoint(p string, line int) (*Breakpoint, bool) {
	v, ok := s.breakpoints.Load(key(p, line))
	if !ok {
		return nil, false
	}
	return v.(*Breakpoint), true
}

// Hit increments the hit counter of an enabled breakpoint at the location
// and reports whether the debugger should suspend there.
func (s *Store) Hit(p string, line int) bool {
	b, ok := s.LineBreakpoint(p, line)
	if !ok || !b.Enabled {
		return false
	}
	b.hits.Add(1)
	return true
}

// All returns every stored breakpoint in no particular order.
func (s *Store) All() []*Breakpoint {
	var all []*Breakpoint
	s.breakpoints.Range(func(_, v any) bool {
		all = append(all, v.(*Breakpoint))
		return true
	})
	return all
}
