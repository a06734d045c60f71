package breakpoint

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LineBreakpoint(t *testing.T) {
	s := NewStore(New("/ws/suite.robot", 6))

	b, ok := s.LineBreakpoint("/ws/./suite.robot", 6)
	require.True(t, ok)
	assert.Equal(t, "/ws/suite.robot:6", b.String())

	_, ok = s.LineBreakpoint("/ws/suite.robot", 7)
	assert.False(t, ok)

	s.Remove("/ws/suite.robot", 6)
	_, ok = s.LineBreakpoint("/ws/suite.robot", 6)
	assert.False(t, ok)
}

func TestStore_Hit(t *testing.T) {
	disabled := New("/s.robot", 2)
	disabled.Enabled = false
	enabled := New("/s.robot", 3)
	s := NewStore(disabled, enabled)

	assert.False(t, s.Hit("/s.robot", 1))
	assert.False(t, s.Hit("/s.robot", 2))
	assert.True(t, s.Hit("/s.robot", 3))

	assert.Equal(t, int64(0), disabled.HitCount())
	assert.Equal(t, int64(1), enabled.HitCount())
	assert.Len(t, s.All(), 2)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	numGoroutines := 50

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(line int) {
			defer wg.Done()
			s.Add(New(fmt.Sprintf("/f%d.robot", line%5), line))
			s.Hit("/f0.robot", 0)
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.All(), numGoroutines)
}
