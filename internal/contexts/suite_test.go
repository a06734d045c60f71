package contexts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framectx/internal/model"
	"github.com/vk/framectx/internal/runevent"
)

func resolverOf(file *model.File) SuiteFileResolver {
	return func(string) (*model.File, bool) { return file, file != nil }
}

func TestSuite_ErroneousOnlyWithMessage(t *testing.T) {
	assert.False(t, NewSuite("suite", "", true, nil).IsErroneous())
	assert.False(t, NewSuite("suite", suitePath, false, resolverOf(nil)).IsErroneous())

	bad := NewErroneousSuite("suite", "/ws/suite", true, "error2")
	assert.True(t, bad.IsErroneous())
	msg, _ := bad.ErrorMessage()
	assert.Contains(t, msg, "error2")
	assert.True(t, bad.IsDirectory())
	_, hasRegion := bad.FileRegion()
	assert.False(t, hasRegion)
}

func TestSuite_OnlySetupOrTeardownIsLegal(t *testing.T) {
	ctx := NewErroneousSuite("suite", suitePath, false, "error2")

	for _, kind := range []runevent.Kind{runevent.Call, runevent.Loop, runevent.LoopIteration} {
		_, err := MoveTo(ctx, kw("_", "_", kind), nil)
		requireIllegalState(t, err, "Only suite setup or teardown keyword call is possible in current context")
	}
}

func TestSuite_ErroneousSuitePropagatesItsError(t *testing.T) {
	ctx := NewErroneousSuite("suite", suitePath, false, "error")

	next, err := MoveTo(ctx, kw("lib", "kw", runevent.Setup), nil)
	require.NoError(t, err)
	requireDiagnostic(t, next, "Unable to find Suite Setup call of 'lib.kw' keyword\nerror")
	assert.Same(t, ctx, next.PreviousContext())
}

func TestSuite_MissingInitFile(t *testing.T) {
	next, err := MoveTo(NewSuite("suite", "/ws/suite", true, resolverOf(nil)), kw("lib", "kw", runevent.Teardown), nil)
	require.NoError(t, err)
	requireDiagnostic(t, next, "Unable to find Suite Teardown call of 'lib.kw' keyword\n"+
		"The suite 'suite' is located in workspace at /ws/suite but the debugger couldn't find __init__ file inside this directory\n")

	next, err = MoveTo(NewSuite("suite", "", true, nil), kw("lib", "kw", runevent.Setup), nil)
	require.NoError(t, err)
	requireDiagnostic(t, next, "The suite 'suite' is located in workspace at <unknown> but")
}

func TestSuite_SettingsOfTheSuiteFile(t *testing.T) {
	testCases := []struct {
		name      string
		kind      runevent.Kind
		settings  model.SettingsTable
		wantError string
	}{
		{
			name:      "no settings",
			kind:      runevent.Setup,
			wantError: "Unable to find Suite Setup call of 'lib.kw' keyword\nSuite Setup setting could not be found in this suite\n",
		},
		{
			name:      "only the other setting",
			kind:      runevent.Setup,
			settings:  model.SettingsTable{SuiteTeardown: model.NewSetting(2, "kw", "1")},
			wantError: "Suite Setup setting could not be found in this suite\n",
		},
		{
			name:      "empty teardown",
			kind:      runevent.Teardown,
			settings:  model.SettingsTable{SuiteTeardown: model.NewSetting(2, "")},
			wantError: "Unable to find Suite Teardown call of 'lib.kw' keyword\nSuite Teardown setting could not be found in this suite\n",
		},
		{
			name:      "non matching setup",
			kind:      runevent.Setup,
			settings:  model.SettingsTable{SuiteSetup: model.NewSetting(2, "non-matching")},
			wantError: "Suite Setup setting was found but seem to call non-matching keyword 'non-matching'\n",
		},
		{
			name:     "matching teardown",
			kind:     runevent.Teardown,
			settings: model.SettingsTable{SuiteTeardown: model.NewSetting(2, "kw", "1")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewSuite("suite", suitePath, false, resolverOf(suiteFile(tc.settings)))

			next, err := MoveTo(ctx, kw("lib", "kw", tc.kind), nil)
			require.NoError(t, err)
			requirePath(t, next, suitePath)
			assert.Same(t, ctx, next.PreviousContext())
			if tc.wantError != "" {
				requireDiagnostic(t, next, tc.wantError)
				return
			}
			assert.False(t, next.IsErroneous())
			region, _ := next.FileRegion()
			assert.Equal(t, 2, region.Line())
		})
	}
}
