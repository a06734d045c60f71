package contexts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framectx/internal/executables"
	"github.com/vk/framectx/internal/messages"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/position"
	"github.com/vk/framectx/internal/runevent"
)

func bodyOf(scope messages.Scope, rows ...model.Row) *Body {
	return &Body{Path: suitePath, Nodes: executables.Compile(rows), Scope: scope}
}

func TestExecutableCall_NoSourceAssociated(t *testing.T) {
	ctx := NewExecutableCall(&Body{}, 0, nil, nil)

	assert.False(t, ctx.IsErroneous())
	_, ok := ctx.AssociatedPath()
	assert.False(t, ok)
	region, ok := ctx.FileRegion()
	require.True(t, ok)
	assert.Equal(t, position.UnknownRegion, region)
	assert.Same(t, DefaultContext(), ctx.PreviousContext())
}

func TestExecutableCall_RegionIsTheLineOfCurrentNode(t *testing.T) {
	ctx := NewExecutableCall(bodyOf(messages.TestScope, row(42, "log", "1")), 0, nil, nil)

	requirePath(t, ctx, suitePath)
	region, ok := ctx.FileRegion()
	require.True(t, ok)
	assert.Equal(t, position.Region{Start: position.AtLine(42), End: position.AtLine(42)}, region)
}

func TestExecutableCall_LineBreakpointIsProvidedThroughLookup(t *testing.T) {
	lookup, bp := lookupAt(suitePath, 42)
	ctx := NewExecutableCall(bodyOf(messages.TestScope, row(42, "log", "1")), 0, nil, lookup)

	found, ok := ctx.LineBreakpoint()
	require.True(t, ok)
	assert.Same(t, bp, found)

	_, ok = NewExecutableCall(bodyOf(messages.TestScope, row(43, "log", "1")), 0, nil, lookup).LineBreakpoint()
	assert.False(t, ok)
}

func TestExecutableCall_IsOnLastExecutable(t *testing.T) {
	body := bodyOf(messages.TestScope, row(1, "a"), row(2, "b"), row(3, "c"))

	assert.False(t, NewExecutableCall(body, 0, nil, nil).IsOnLastExecutable())
	assert.False(t, NewExecutableCall(body, 1, nil, nil).IsOnLastExecutable())
	assert.True(t, NewExecutableCall(body, 2, nil, nil).IsOnLastExecutable())
}

func TestExecutableCall_SetupIsIllegal(t *testing.T) {
	for _, scope := range []messages.Scope{messages.TestScope, messages.KeywordScope} {
		ctx := NewExecutableCall(bodyOf(scope, row(1, "a"), row(2, "b")), 0, nil, nil)

		_, err := MoveTo(ctx, kw("lib", "kw", runevent.Setup), nil)
		requireIllegalState(t, err, "Setup keyword cannot be called when already executing keywords inside test case or other keyword")
	}
}

func TestExecutableCall_Advance(t *testing.T) {
	loopRows := []model.Row{
		row(1, "log", "10"),
		row(2, ":FOR", "${x}", "IN", "1", "2", "3"),
		row(3, `\`, "log", "${x}"),
		row(4, "write", "${x}"),
	}

	testCases := []struct {
		name      string
		index     int
		keyword   runevent.RunningKeyword
		wantError string
		wantLine  int
	}{
		{
			name:      "moving outside the executables",
			index:     2,
			keyword:   call("lib", "kw"),
			wantError: "Unable to find executable call of 'lib.kw' keyword\n",
		},
		{
			name:      "ordinary call but loop found",
			index:     0,
			keyword:   call("lib", "kw"),
			wantError: "Unable to find executable call of 'lib.kw' keyword\n:FOR loop was found instead\n",
		},
		{
			name:      "loop but ordinary call found",
			index:     -1,
			keyword:   kw("", "${x} IN [ 1 | 2 | 3 ]", runevent.Loop),
			wantError: "Unable to find :FOR loop\nAn executable was found calling 'log' keyword\n",
		},
		{
			name:    "different loop found",
			index:   0,
			keyword: kw("", "${y} IN [ 1 | 2 | 3 | 4 ]", runevent.Loop),
			wantError: "Unable to find matching :FOR loop\n" +
				"':FOR ${x} IN [ 1 | 2 | 3 ]' was found but ':FOR ${y} IN [ 1 | 2 | 3 | 4 ]' is being executed\n",
		},
		{
			name:      "non matching keyword",
			index:     -1,
			keyword:   call("lib", "kw"),
			wantError: "Unable to find executable call of 'lib.kw' keyword\nAn executable was found but seem to call non-matching keyword 'log'\n",
		},
		{
			name:     "matching keyword",
			index:    -1,
			keyword:  call("BuiltIn", "Log"),
			wantLine: 1,
		},
		{
			name:     "matching loop",
			index:    0,
			keyword:  kw("", "${x} IN [ 1 | 2 | 3 ]", runevent.Loop),
			wantLine: 2,
		},
		{
			name:     "call after loop",
			index:    1,
			keyword:  call("", "write"),
			wantLine: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry := NewTestCase(&model.TestCase{Name: "t"}, suitePath, nil, "")
			ctx := NewExecutableCall(bodyOf(messages.TestScope, loopRows...), tc.index, entry, nil)

			next, err := MoveTo(ctx, tc.keyword, nil)
			require.NoError(t, err)
			requirePath(t, next, suitePath)
			assert.Same(t, entry, next.PreviousContext())

			if tc.wantError != "" {
				requireDiagnostic(t, next, tc.wantError)
				return
			}
			require.False(t, next.IsErroneous())
			exec, ok := next.(*ExecutableCall)
			require.True(t, ok)
			assert.Greater(t, exec.Index(), tc.index)
			region, _ := exec.FileRegion()
			assert.Equal(t, tc.wantLine, region.Line())
		})
	}
}

func TestExecutableCall_TemplateIsUsedForMatching(t *testing.T) {
	body := bodyOf(messages.TestScope, row(5, "1", "2"), row(6, "3", "4"))
	body.Template = "lib.Add"

	next, err := MoveTo(NewExecutableCall(body, -1, nil, nil), call("lib", "add"), nil)
	require.NoError(t, err)
	assert.False(t, next.IsErroneous())

	next, err = MoveTo(next, call("lib", "other"), nil)
	require.NoError(t, err)
	requireDiagnostic(t, next, "non-matching keyword 'lib.Add'")
}

func TestExecutableCall_Teardown(t *testing.T) {
	rows := []model.Row{row(1, "log", "1")}

	t.Run("empty local test teardown", func(t *testing.T) {
		body := bodyOf(messages.TestScope, rows...)
		body.Teardown = model.NewSetting(9, "")
		ctx := NewExecutableCall(body, 0, nil, nil)

		next, err := MoveTo(ctx, kw("lib", "kw", runevent.Teardown), nil)
		require.NoError(t, err)
		requireDiagnostic(t, next, "Unable to find Test Teardown call of 'lib.kw' keyword\nTest Teardown setting could not be found in this suite\n")
		assert.Same(t, ctx, next.PreviousContext())
	})

	t.Run("empty local keyword teardown", func(t *testing.T) {
		body := bodyOf(messages.KeywordScope, rows...)
		body.Teardown = model.NewSetting(9, "")
		ctx := NewExecutableCall(body, 0, nil, nil)

		next, err := MoveTo(ctx, kw("lib", "kw", runevent.Teardown), nil)
		require.NoError(t, err)
		requireDiagnostic(t, next, "Unable to find Keyword Teardown call of 'lib.kw' keyword\nKeyword Teardown setting could not be found in this suite\n")
		assert.Same(t, ctx, next.PreviousContext())
	})

	t.Run("non matching local teardown", func(t *testing.T) {
		body := bodyOf(messages.TestScope, rows...)
		body.Teardown = model.NewSetting(9, "non-matching")
		ctx := NewExecutableCall(body, 0, nil, nil)

		next, err := MoveTo(ctx, kw("lib", "kw", runevent.Teardown), nil)
		require.NoError(t, err)
		requireDiagnostic(t, next, "Test Teardown setting was found but seem to call non-matching keyword 'non-matching'\n")
	})

	t.Run("teardown defined nowhere", func(t *testing.T) {
		body := bodyOf(messages.TestScope, rows...)
		body.Ancestors = []*model.File{suiteFile(model.SettingsTable{})}
		ctx := NewExecutableCall(body, 0, nil, nil)

		next, err := MoveTo(ctx, kw("lib", "kw", runevent.Teardown), nil)
		require.NoError(t, err)
		requireDiagnostic(t, next, "Unable to find Test Teardown call of 'lib.kw' keyword\n")
		msg, _ := next.ErrorMessage()
		assert.Equal(t, "Unable to find Test Teardown call of 'lib.kw' keyword\n", msg)
	})

	t.Run("matching teardown in parent settings", func(t *testing.T) {
		lookup, bp := lookupAt("/ws/__init__.robot", 3)
		parent := &model.File{Path: "/ws/__init__.robot", Settings: model.SettingsTable{TestTeardown: model.NewSetting(3, "kw", "1")}}
		body := bodyOf(messages.TestScope, rows...)
		body.Ancestors = []*model.File{suiteFile(model.SettingsTable{}), parent}
		ctx := NewExecutableCall(body, 0, nil, nil)

		next, err := MoveTo(ctx, kw("lib", "kw", runevent.Teardown), lookup)
		require.NoError(t, err)
		require.IsType(t, &SetupOrTeardown{}, next)
		assert.False(t, next.IsErroneous())
		requirePath(t, next, "/ws/__init__.robot")
		assert.Same(t, ctx, next.PreviousContext())
		found, ok := next.LineBreakpoint()
		require.True(t, ok)
		assert.Same(t, bp, found)
	})
}
