package contexts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framectx/internal/breakpoint"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/runevent"
)

const suitePath = "/ws/suite.robot"

func kw(lib, name string, kind runevent.Kind) runevent.RunningKeyword {
	return runevent.New(lib, name, kind)
}

func call(lib, name string) runevent.RunningKeyword {
	return kw(lib, name, runevent.Call)
}

// row creates a body row at the given line.
func row(line int, cells ...string) model.Row {
	return model.NewRow(line, line*100, cells...)
}

func suiteFile(settings model.SettingsTable) *model.File {
	return &model.File{Path: suitePath, Settings: settings}
}

// requireDiagnostic asserts that ctx is erroneous and that its message
// contains the expected text.
func requireDiagnostic(t *testing.T, ctx Context, expected string) {
	t.Helper()
	require.NotNil(t, ctx)
	require.True(t, ctx.IsErroneous(), "expected erroneous context, got %v", ctx)
	msg, ok := ctx.ErrorMessage()
	require.True(t, ok)
	assert.Contains(t, msg, expected)
}

// requireIllegalState asserts that err reports a protocol violation with
// exactly the given message.
func requireIllegalState(t *testing.T, err error, expected string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrIllegalState)
	assert.EqualError(t, err, expected)
}

func requirePath(t *testing.T, ctx Context, expected string) {
	t.Helper()
	path, ok := ctx.AssociatedPath()
	require.True(t, ok)
	assert.Equal(t, expected, path)
}

func lookupAt(path string, line int) (BreakpointLookup, *breakpoint.Breakpoint) {
	bp := breakpoint.New(path, line)
	return breakpoint.NewStore(bp), bp
}
